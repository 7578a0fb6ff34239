package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
	"github.com/fatih/color"
)

// Impact label constants.
const (
	SevereValue   = "Severe"   // Severe value
	HighValue     = "High"     // High value
	ModerateValue = "Moderate" // Moderate value
	LowValue      = "Low"      // Low value
)

// Color variables for console output.
var (
	SevereColor   = color.New(color.FgRed, color.Bold)     // SevereColor represents standard danger.
	HighColor     = color.New(color.FgMagenta, color.Bold) // HighColor represents strong, distinct warning.
	ModerateColor = color.New(color.FgYellow)              // ModerateColor represents standard caution, not bold.
	LowColor      = color.New(color.FgCyan)                // LowColor represents informational / low-priority signal.
)

// GetPlainLabel returns a plain text label for an impact score (mean or single value).
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(impact float64) string {
	switch {
	case impact >= 4.5:
		return SevereValue
	case impact >= 3.5:
		return HighValue
	case impact >= 2.5:
		return ModerateValue
	default:
		return LowValue
	}
}

// GetColorLabel returns a colored impact label for console output (table).
func GetColorLabel(impact float64) string {
	text := GetPlainLabel(impact)

	switch text {
	case SevereValue:
		return SevereColor.Sprint(text)
	case HighValue:
		return HighColor.Sprint(text)
	case ModerateValue:
		return ModerateColor.Sprint(text)
	default: // "Low"
		return LowColor.Sprint(text)
	}
}

// GetStatusColor returns the console color for a pipeline run status.
// Only a failed run is presented as an error.
func GetStatusColor(status schema.RunStatus) *color.Color {
	switch status {
	case schema.StatusFailed:
		return SevereColor
	case schema.StatusSuccess:
		return color.New(color.FgGreen)
	default:
		return LowColor
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path means os.Stdout.
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

// GetDBFilePath returns the path to the default SQLite DB file of the record store.
func GetDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultDBFileName
	}
	return filepath.Join(homeDir, defaultDBFileName)
}

// TruncateLabel truncates a free-text label to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for the "..." and at least one character.
func TruncateLabel(label string, maxWidth int) string {
	runes := []rune(label)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return label
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
