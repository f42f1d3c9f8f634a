// Copyright 2025 wsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build amd64

package wavesort

import "golang.org/x/sys/cpu"

func init() {
	// Check if the accelerated kernel is disabled via environment variable
	// or was excluded from the build.
	if NoAccelEnv() || !accelAvailable {
		currentLevel = LevelPortable
		currentName = "portable"
		return
	}

	// Note: cpu.X86.HasSSE2 is always true on amd64, it is part of the
	// architecture baseline. We check it for consistency with the arm64
	// path and to leave room for feature-gated kernels.
	if cpu.X86.HasSSE2 {
		currentLevel = LevelUnchecked
		currentName = "unchecked"
	} else {
		currentLevel = LevelPortable
		currentName = "portable"
	}
}
