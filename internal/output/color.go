package output

import (
	"fmt"
	"io"
	"os"
	"slices"
)

// ColorModes are the accepted values of the --color flag.
var ColorModes = []string{"auto", "always", "never"}

// ValidateColorMode rejects --color values other than ColorModes.
// An empty value means "auto".
func ValidateColorMode(mode string) error {
	if mode == "" || slices.Contains(ColorModes, mode) {
		return nil
	}
	return NewUserError(fmt.Sprintf("invalid --color value %q (want auto, always or never)", mode))
}

// ResolveColorMode decides whether to style output. "never" and "always"
// override detection; anything else uses isTTY.
func ResolveColorMode(colorMode string, isTTY bool) bool {
	switch colorMode {
	case "never":
		return false
	case "always":
		return true
	default:
		return isTTY
	}
}

// IsTTY reports whether writer is a terminal.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
