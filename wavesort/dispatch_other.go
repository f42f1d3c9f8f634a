//go:build !amd64 && !arm64

package wavesort

func init() {
	// Architectures the unchecked kernel has not been exercised on fall
	// back to the portable implementation. SortUnchecked is still
	// available directly when compiled in.
	currentLevel = LevelPortable
	currentName = "portable"
}
