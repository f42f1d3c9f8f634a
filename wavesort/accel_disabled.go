//go:build noaccel

package wavesort

// Stub for noaccel builds. Sort never routes here because the dispatch
// level stays at LevelPortable and Accelerated stays nil.

// accelAvailable is false when the unchecked kernel is excluded from the
// build.
var accelAvailable = false

// SortUnchecked is not compiled in under the noaccel build tag.
func SortUnchecked(data []int32) { panic("wavesort: unchecked kernel not built") }
