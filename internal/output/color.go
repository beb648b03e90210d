package output

import (
	"io"
	"os"
)

// ColorModes lists the accepted values of the --color flag.
var ColorModes = []string{"auto", "always", "never"}

// ValidColorMode reports whether mode is one of ColorModes.
func ValidColorMode(mode string) bool {
	for _, m := range ColorModes {
		if m == mode {
			return true
		}
	}
	return false
}

// ResolveColorMode determines the effective isTTY value from the --color
// flag and actual TTY detection:
//   - "never":  always disable colors
//   - "always": always enable colors
//   - anything else: use the detected isTTY value
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

// IsTTY checks if a writer is a terminal.
// Returns true only for an *os.File that is a character device.
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
