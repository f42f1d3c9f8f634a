//go:build arm64

package wavesort

import "golang.org/x/sys/cpu"

func init() {
	// Check for WSORT_NO_ACCEL and the noaccel build tag first.
	if NoAccelEnv() || !accelAvailable {
		currentLevel = LevelPortable
		currentName = "portable"
		return
	}

	// ARM64 (AArch64) always has ASIMD, it is part of the ARMv8-A base
	// architecture. We check it for consistency with the amd64 path.
	if cpu.ARM64.HasASIMD {
		currentLevel = LevelUnchecked
		currentName = "unchecked"
	} else {
		currentLevel = LevelPortable
		currentName = "portable"
	}
}
