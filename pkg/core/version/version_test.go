package version

import (
	"regexp"
	"runtime"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"Version", Version},
		{"Generator", Generator},
		{"Window", Window},
		{"CLI", CLI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !semverRegex.MatchString(tt.version) {
				t.Errorf("%s version %q does not match semver format (x.y.z)", tt.name, tt.version)
			}
		})
	}
}

func TestComponentVersion(t *testing.T) {
	tests := []struct {
		name      string
		component string
		expected  string
	}{
		{"generator", "generator", Generator},
		{"window", "window", Window},
		{"cli", "cli", CLI},
		{"unknown component", "unknown", Version},
		{"empty component", "", Version},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComponentVersion(tt.component); got != tt.expected {
				t.Errorf("ComponentVersion(%q) = %q, want %q", tt.component, got, tt.expected)
			}
		})
	}
}

func TestGet(t *testing.T) {
	info := Get()
	if info.Version != Version {
		t.Errorf("Version = %q, want %q", info.Version, Version)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", info.GoVersion, runtime.Version())
	}

	for _, name := range Components {
		if info.Components[name] != ComponentVersion(name) {
			t.Errorf("Components[%q] = %q, want %q", name, info.Components[name], ComponentVersion(name))
		}
	}

	out := info.String()
	for _, want := range []string{"pwdgen v" + Version, "Git Commit: " + GitCommit, runtime.GOOS + "/" + runtime.GOARCH,
		"Komponenten:", "generator  v" + Generator, "window     v" + Window, "cli        v" + CLI} {
		if !strings.Contains(out, want) {
			t.Errorf("String() missing %q:\n%s", want, out)
		}
	}
}
