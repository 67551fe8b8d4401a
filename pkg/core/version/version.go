// ============================================================================
// pwdgen - Passwort-Generator
// ============================================================================
//
// Package:     version
// Description: Central version management for pwdgen
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Build information, set via -ldflags "-X ...".
var (
	Version   = "1.0.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

// Component versions
const (
	Generator = "1.0.0"
	Window    = "1.0.0"
	CLI       = "1.0.0"
)

// Components lists the component names in display order
var Components = []string{"generator", "window", "cli"}

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "generator":
		return Generator
	case "window":
		return Window
	case "cli":
		return CLI
	default:
		return Version
	}
}

// Info describes the running binary
type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string

	// Components maps component names to their versions
	Components map[string]string
}

// Get returns the build information of the running binary
func Get() Info {
	components := make(map[string]string, len(Components))
	for _, name := range Components {
		components[name] = ComponentVersion(name)
	}

	return Info{
		Version:    Version,
		GitCommit:  GitCommit,
		BuildDate:  BuildDate,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
		Components: components,
	}
}

// String renders the information as shown by "pwdgen version"
func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "pwdgen v%s\n", i.Version)
	fmt.Fprintf(&b, "  Git Commit: %s\n", i.GitCommit)
	fmt.Fprintf(&b, "  Build Date: %s\n", i.BuildDate)
	fmt.Fprintf(&b, "  Go Version: %s\n", i.GoVersion)
	fmt.Fprintf(&b, "  OS/Arch:    %s\n", i.Platform)

	b.WriteString("\nKomponenten:\n")
	for _, name := range Components {
		if v, ok := i.Components[name]; ok {
			fmt.Fprintf(&b, "  %-10s v%s\n", name, v)
		}
	}
	return b.String()
}
