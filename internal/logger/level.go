package logger

import (
	"fmt"
	"math"
	"strings"
)

// A Level is a logging verbosity threshold.
type Level int8

const (
	DebugLevel Level = iota - 1
	InfoLevel        // the default (zero value)
	WarnLevel
	ErrorLevel

	noLevel Level = math.MaxInt8 // discards everything
)

// AllLevels returns the known logging levels, from the most to the least verbose.
func AllLevels() []Level { return []Level{DebugLevel, InfoLevel, WarnLevel, ErrorLevel} }

// AllLevelStrings returns the names of the known logging levels, from the most to the least verbose.
func AllLevelStrings() []string {
	var (
		levels = AllLevels()
		result = make([]string, len(levels))
	)

	for i, lvl := range levels {
		result[i] = lvl.String()
	}

	return result
}

// String returns the lower-case name of the level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	case noLevel:
		return "none"
	}

	return fmt.Sprintf("level(%d)", l)
}

// ParseLevel converts a level name, as given on the command line or in the environment, into a Level
// (case is ignored). An unknown name is an error.
func ParseLevel(text string) (Level, error) {
	switch strings.ToLower(text) {
	case "debug", "verbose", "trace":
		return DebugLevel, nil
	case "info", "": // make the zero value useful
		return InfoLevel, nil
	case "warn":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	}

	return Level(0), fmt.Errorf("unrecognized logging level: %q", text)
}
