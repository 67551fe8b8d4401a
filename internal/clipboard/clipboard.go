// ============================================================================
// pwdgen - Passwort-Generator
// ============================================================================
//
// Package:     clipboard
// Description: Write-only clipboard backends (system, OSC52, auto)
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package clipboard

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	pwerrors "github.com/msto63/pwdgen/pkg/core/errors"
)

// Backend names accepted by New
const (
	BackendSystem = "system"
	BackendOSC52  = "osc52"
	BackendAuto   = "auto"
)

// ErrClipboardUnavailable is returned when the clipboard cannot be written
var ErrClipboardUnavailable = pwerrors.New(pwerrors.CodeClipboardUnavailable, "clipboard unavailable")

var errUnsupported = errors.New("no clipboard utility available (install xclip, xsel or wl-clipboard)")

// Writer places text on a clipboard. Implementations clear the clipboard
// before writing.
type Writer interface {
	WriteAll(text string) error
	Name() string
}

// New returns the backend named by backend. out receives OSC52 sequences
// and defaults to os.Stderr.
func New(backend string, out io.Writer) (Writer, error) {
	if out == nil {
		out = os.Stderr
	}

	switch strings.ToLower(backend) {
	case BackendSystem, "":
		return NewSystem(), nil
	case BackendOSC52:
		return NewOSC52(out), nil
	case BackendAuto:
		return &fallback{primary: NewSystem(), secondary: NewOSC52(out)}, nil
	default:
		return nil, pwerrors.Newf(pwerrors.CodeInvalidConfig, "unknown clipboard backend %q", backend)
	}
}

// System writes to the operating system clipboard
type System struct {
	write       func(string) error
	unsupported func() bool
}

// NewSystem returns the system clipboard backend
func NewSystem() *System {
	return &System{
		write:       clipboard.WriteAll,
		unsupported: func() bool { return clipboard.Unsupported },
	}
}

// Name implements Writer
func (s *System) Name() string { return BackendSystem }

// Available reports whether a system clipboard utility was found
func (s *System) Available() bool {
	return !s.unsupported()
}

// WriteAll clears the clipboard, then writes text
func (s *System) WriteAll(text string) error {
	if s.unsupported() {
		return unavailable(errUnsupported)
	}
	if err := s.write(""); err != nil {
		return unavailable(err)
	}
	if err := s.write(text); err != nil {
		return unavailable(err)
	}
	return nil
}

// OSC52 writes the clipboard through the terminal with OSC 52 escape
// sequences, which also works over SSH
type OSC52 struct {
	out  io.Writer
	tmux bool
	// screen wraps sequences for GNU screen
	screen bool
}

// NewOSC52 returns an OSC52 backend writing to out
func NewOSC52(out io.Writer) *OSC52 {
	term := os.Getenv("TERM")
	return &OSC52{
		out:    out,
		tmux:   os.Getenv("TMUX") != "",
		screen: strings.HasPrefix(term, "screen"),
	}
}

// Name implements Writer
func (o *OSC52) Name() string { return BackendOSC52 }

// WriteAll clears the clipboard, then writes text
func (o *OSC52) WriteAll(text string) error {
	if _, err := o.wrap(osc52.Clear()).WriteTo(o.out); err != nil {
		return unavailable(err)
	}
	if _, err := o.wrap(osc52.New(text)).WriteTo(o.out); err != nil {
		return unavailable(err)
	}
	return nil
}

func (o *OSC52) wrap(seq osc52.Sequence) osc52.Sequence {
	switch {
	case o.tmux:
		return seq.Tmux()
	case o.screen:
		return seq.Screen()
	default:
		return seq
	}
}

// fallback uses primary and switches to secondary when primary fails
type fallback struct {
	primary   Writer
	secondary Writer
}

func (f *fallback) Name() string { return BackendAuto }

func (f *fallback) WriteAll(text string) error {
	err := f.primary.WriteAll(text)
	if err == nil {
		return nil
	}
	if err2 := f.secondary.WriteAll(text); err2 != nil {
		return unavailable(errors.Join(err, err2))
	}
	return nil
}

func unavailable(err error) error {
	if coded, ok := err.(*pwerrors.Error); ok && coded.Code() == pwerrors.CodeClipboardUnavailable {
		return err
	}
	return pwerrors.WrapWithCode(err, pwerrors.CodeClipboardUnavailable, "clipboard unavailable")
}
