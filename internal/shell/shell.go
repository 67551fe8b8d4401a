// ============================================================================
// pwdgen - Passwort-Generator
// ============================================================================
//
// Package:     shell
// Description: Application state and the Generate / Copy / Reset actions
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package shell holds the application state behind the pwdgen window: the
// three parameters, the current result set and the actions operating on
// them. It has no dependency on a UI toolkit.
//
// The result pane is either EMPTY or POPULATED. Generate always leads to
// POPULATED, Reset always to EMPTY, and Copy is only enabled while the pane
// is POPULATED. The enabled state is derived from the pane, never stored.
package shell

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/msto63/pwdgen/internal/clipboard"
	"github.com/msto63/pwdgen/internal/generator"
	pwerrors "github.com/msto63/pwdgen/pkg/core/errors"
	"github.com/msto63/pwdgen/pkg/core/logging"
)

// ErrEmptyCopyRequest is reported when Copy is invoked without passwords
var ErrEmptyCopyRequest = pwerrors.New(pwerrors.CodeEmptyCopyRequest, "nothing to copy")

// PaneState describes the result pane
type PaneState int

const (
	PaneEmpty PaneState = iota
	PanePopulated
)

// String returns the string representation of the pane state
func (s PaneState) String() string {
	switch s {
	case PaneEmpty:
		return "EMPTY"
	case PanePopulated:
		return "POPULATED"
	default:
		return "UNKNOWN"
	}
}

// ResultSet is one batch of generated passwords
type ResultSet struct {
	ID         string
	Passwords  []string
	Length     int
	Complexity generator.Complexity
	CreatedAt  time.Time
}

// Text returns the passwords joined by newlines
func (r *ResultSet) Text() string {
	if r == nil {
		return ""
	}
	return strings.Join(r.Passwords, "\n")
}

// PasswordGenerator produces batches of passwords
type PasswordGenerator interface {
	GenerateN(number, length int, complexity generator.Complexity) ([]string, error)
}

// Shell owns the parameters and the current result set
type Shell struct {
	params Parameters
	gen    PasswordGenerator
	clip   clipboard.Writer
	logger *logging.Logger
	result *ResultSet
}

// New creates a shell with an EMPTY pane
func New(params Parameters, gen PasswordGenerator, clip clipboard.Writer, logger *logging.Logger) *Shell {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Shell{
		params: params,
		gen:    gen,
		clip:   clip,
		logger: logger.Named("shell"),
	}
}

// Params returns a copy of the current parameters
func (s *Shell) Params() Parameters {
	return s.params
}

// SetLength sets the password length, clamped to its range
func (s *Shell) SetLength(v int) int { return s.params.Length.Set(v) }

// SetNumber sets the number of passwords, clamped to its range
func (s *Shell) SetNumber(v int) int { return s.params.Number.Set(v) }

// SetComplexity sets the complexity tier, clamped to its range
func (s *Shell) SetComplexity(v int) int { return s.params.Complexity.Set(v) }

// StepParam moves the named parameter by delta and returns the new value
func (s *Shell) StepParam(name string, delta int) int {
	switch name {
	case ParamLength:
		return s.params.Length.Step(delta)
	case ParamNumber:
		return s.params.Number.Step(delta)
	case ParamComplexity:
		return s.params.Complexity.Step(delta)
	default:
		return 0
	}
}

// PaneState returns EMPTY or POPULATED
func (s *Shell) PaneState() PaneState {
	if s.result == nil {
		return PaneEmpty
	}
	return PanePopulated
}

// CopyEnabled reports whether the Copy action is available
func (s *Shell) CopyEnabled() bool {
	return s.PaneState() == PanePopulated
}

// Result returns the current result set, nil while the pane is EMPTY
func (s *Shell) Result() *ResultSet {
	return s.result
}

// PaneText returns the text shown in the result pane
func (s *Shell) PaneText() string {
	return s.result.Text()
}

// Generate replaces the result set with Number fresh passwords. On failure
// the pane keeps its previous content and an error notification is
// returned; on success the returned notification is nil.
func (s *Shell) Generate() *Notification {
	number := s.params.Number.Current()
	length := s.params.Length.Current()
	complexity := s.params.ComplexityTier()

	passwords, err := s.gen.GenerateN(number, length, complexity)
	if err != nil {
		s.logger.LogError(pwerrors.Wrap(err, "generate passwords"))
		n := errorNotification("Generation failed", err)
		return &n
	}

	s.result = &ResultSet{
		ID:         uuid.NewString(),
		Passwords:  passwords,
		Length:     length,
		Complexity: complexity,
		CreatedAt:  time.Now(),
	}

	s.logger.Info("passwords generated", logging.Fields{
		"result_id":  s.result.ID,
		"number":     number,
		"length":     length,
		"complexity": complexity.Name(),
		"created_at": s.result.CreatedAt,
	})
	return nil
}

// Copy writes the pane text, followed by one newline, to the clipboard.
// With an EMPTY pane the clipboard is left untouched and a warning is
// returned.
func (s *Shell) Copy() Notification {
	if s.PaneState() == PaneEmpty {
		s.logger.LogError(ErrEmptyCopyRequest)
		return warningNotification()
	}

	log := s.logger.WithField("result_id", s.result.ID)
	if s.clip == nil {
		err := pwerrors.New(pwerrors.CodeClipboardUnavailable, "no clipboard configured")
		log.LogError(err)
		return errorNotification("Clipboard error", err)
	}

	if err := s.clip.WriteAll(s.PaneText() + "\n"); err != nil {
		log.LogError(pwerrors.WrapWithCode(err, pwerrors.CodeClipboardUnavailable, "copy passwords"))
		return errorNotification("Clipboard error", err)
	}

	log.Info("passwords copied", logging.Field("backend", s.clip.Name()))
	return confirmationNotification()
}

// Reset restores the default parameters and clears the pane
func (s *Shell) Reset() {
	s.params.Reset()
	s.result = nil
	s.logger.Debug("shell reset")
}
