package output

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestResolveColorMode(t *testing.T) {
	tests := []struct {
		name      string
		colorMode string
		isTTY     bool
		want      bool
	}{
		{name: "never disables on TTY", colorMode: "never", isTTY: true, want: false},
		{name: "always enables on non-TTY", colorMode: "always", isTTY: false, want: true},
		{name: "auto uses TTY true", colorMode: "auto", isTTY: true, want: true},
		{name: "auto uses TTY false", colorMode: "auto", isTTY: false, want: false},
		{name: "empty string defaults to auto", colorMode: "", isTTY: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveColorMode(tt.colorMode, tt.isTTY); got != tt.want {
				t.Errorf("ResolveColorMode(%q, %v) = %v, want %v", tt.colorMode, tt.isTTY, got, tt.want)
			}
		})
	}
}

func TestValidateColorMode(t *testing.T) {
	for _, mode := range append([]string{""}, ColorModes...) {
		if err := ValidateColorMode(mode); err != nil {
			t.Errorf("ValidateColorMode(%q) error = %v", mode, err)
		}
	}

	err := ValidateColorMode("rainbow")
	if err == nil {
		t.Fatal("ValidateColorMode(rainbow) expected error")
	}
	if GetExitCode(err) != ExitUserError {
		t.Errorf("exit code = %d, want %d", GetExitCode(err), ExitUserError)
	}
}

func TestIsTTY_Buffer(t *testing.T) {
	var buf bytes.Buffer
	if IsTTY(&buf) {
		t.Error("IsTTY(buffer) should return false")
	}
}

func TestNewPrinter_Styles(t *testing.T) {
	empty := lipgloss.NewStyle()

	plain := NewPrinter(&bytes.Buffer{}, false, ResolveColorMode("never", true))
	if plain.IsTTY() {
		t.Error("printer should report non-TTY when color=never")
	}
	if plain.styles.Error.GetForeground() != empty.GetForeground() {
		t.Error("Error style should have no foreground color when color=never")
	}

	styled := NewPrinter(&bytes.Buffer{}, false, ResolveColorMode("always", false))
	if !styled.IsTTY() {
		t.Error("printer should report TTY when color=always")
	}
	if styled.styles.Error.GetForeground() == empty.GetForeground() {
		t.Error("Error style should have foreground color when color=always")
	}
}

func TestPlainPrinter_NoANSI(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Error(NewUserError("unknown timezone"))
	printer.Section("Dates")
	printer.Table([]string{"Date", "Words"}, [][]string{{"2024-01-01", "3"}})

	if containsANSI(buf.String()) {
		t.Errorf("plain output should contain no ANSI codes, got: %q", buf.String())
	}
}

// containsANSI checks if a string contains ANSI escape sequences.
func containsANSI(s string) bool {
	for i := range len(s) - 1 {
		if s[i] == '\033' && s[i+1] == '[' {
			return true
		}
	}
	return false
}
