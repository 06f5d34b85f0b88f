package ui

import (
	"os"
	"strings"
	"testing"
)

// restoreTheme resets the global theme after a test.
func restoreTheme(t *testing.T) {
	t.Helper()
	saved := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(saved) })
}

func TestSetTheme(t *testing.T) {
	restoreTheme(t)
	tests := []struct {
		name string
		want string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"none", "none"},
		{"unknown", "dark"},
	}
	for _, tt := range tests {
		SetTheme(tt.name)
		if got := GetCurrentTheme().Name; got != tt.want {
			t.Errorf("SetTheme(%q) selected %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestInitTheme(t *testing.T) {
	restoreTheme(t)

	t.Run("flag disables colors", func(t *testing.T) {
		InitTheme(true)
		if GetCurrentTheme().Colored() {
			t.Error("--no-color should select the colorless theme")
		}
	})

	t.Run("NO_COLOR disables colors", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		InitTheme(false)
		if GetCurrentTheme().Name != "none" {
			t.Errorf("theme = %q, want none", GetCurrentTheme().Name)
		}
	})

	t.Run("default is dark", func(t *testing.T) {
		if _, set := os.LookupEnv("NO_COLOR"); set {
			t.Skip("NO_COLOR is set in the test environment")
		}
		InitTheme(false)
		if GetCurrentTheme().Name != "dark" {
			t.Errorf("theme = %q, want dark", GetCurrentTheme().Name)
		}
	})
}

func TestColorHelpers(t *testing.T) {
	restoreTheme(t)

	SetCurrentTheme(NoColorTheme)
	for _, f := range []func() string{ColorRed, ColorGreen, ColorYellow, ColorBlue, ColorMagenta, ColorGrey, ColorBold, ColorUnderline, ColorReset} {
		if f() != "" {
			t.Errorf("colorless theme returned %q", f())
		}
	}

	SetCurrentTheme(DarkTheme)
	if ColorRed() != DarkTheme.Error || ColorReset() != "\033[0m" {
		t.Error("color helpers should read the active theme")
	}
}

func TestPanel(t *testing.T) {
	restoreTheme(t)
	SetCurrentTheme(NoColorTheme)

	out := Panel("Result", []string{"successes: 3", "expected: 2.86"})
	for _, want := range []string{"Result", "successes: 3", "expected: 2.86", "╭", "╯"} {
		if !strings.Contains(out, want) {
			t.Errorf("Panel output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Errorf("colorless panel should not contain escape codes:\n%s", out)
	}
}

