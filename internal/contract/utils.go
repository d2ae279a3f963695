package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/tjo-photometry/colorcurve/schema"
)

// Status label constants.
const (
	ConnectedValue    = "Connected"    // Store reachable
	DisconnectedValue = "Disconnected" // Store unreachable or disabled
)

// Color variables for console output.
var (
	TargetColor     = color.New(color.FgYellow, color.Bold) // TargetColor marks the star under study.
	ComparisonColor = color.New(color.FgGreen)              // ComparisonColor matches the green used on the plots.
	GoodColor       = color.New(color.FgGreen, color.Bold)  // GoodColor marks healthy status.
	BadColor        = color.New(color.FgRed, color.Bold)    // BadColor marks failures.
)

// GetPlainRoleLabel returns the plain text label of a role.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainRoleLabel(role schema.Role) string {
	switch role {
	case schema.TargetRole:
		return "Target"
	case schema.ComparisonRole:
		return "Comparison"
	default:
		return string(role)
	}
}

// GetColorRoleLabel returns a colored role label for console output (table).
func GetColorRoleLabel(role schema.Role) string {
	text := GetPlainRoleLabel(role)
	if role == schema.TargetRole {
		return TargetColor.Sprint(text)
	}
	return ComparisonColor.Sprint(text)
}

// GetStatusLabel returns a colored connection label.
func GetStatusLabel(connected bool) string {
	if connected {
		return GoodColor.Sprint(ConnectedValue)
	}
	return BadColor.Sprint(DisconnectedValue)
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for run history.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".colorcurve_history.db"
	}
	return filepath.Join(homeDir, ".colorcurve_history.db")
}

// TruncatePath truncates a file path to a maximum width with ellipsis prefix.
// Requires maxWidth > 3 to ensure there's space for both the "..." prefix and at least one character of content.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// sortedStrings returns a sorted copy of the input.
func sortedStrings(in []string) []string {
	out := slices.Clone(in)
	slices.Sort(out)
	return out
}
