package wavesort

import (
	"os"
	"strconv"
)

// Level identifies which sort kernel Sort dispatches to.
type Level int

const (
	// LevelPortable indicates the bounds-checked pure Go implementation.
	LevelPortable Level = iota

	// LevelUnchecked indicates the raw pointer window kernel.
	LevelUnchecked
)

// String returns a human-readable name for the dispatch level.
func (l Level) String() string {
	switch l {
	case LevelPortable:
		return "portable"
	case LevelUnchecked:
		return "unchecked"
	default:
		return "unknown"
	}
}

// currentLevel is the kernel selected for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel Level

// currentName is the human-readable name of the selected kernel.
// Set by init() in dispatch_*.go files.
var currentName string

// CurrentLevel returns the kernel Sort dispatches to.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentName returns a human-readable name for the selected kernel.
// For example: "unchecked", "portable".
func CurrentName() string {
	return currentName
}

// NoAccelEnv checks if the WSORT_NO_ACCEL environment variable is set.
// When set, Sort uses the portable implementation regardless of which
// kernels were compiled in. This is useful for testing and debugging.
func NoAccelEnv() bool {
	val := os.Getenv("WSORT_NO_ACCEL")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
