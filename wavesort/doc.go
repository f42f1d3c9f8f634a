// Package wavesort provides an in-place, O(1) extra space sort for int32
// slices built around a growing sorted suffix.
//
// # Algorithm
//
// WaveSort sorts by expanding a sorted suffix of the buffer in geometric
// steps:
//   - Upwave grows the suffix, widening the working window until it covers
//     the requested range
//   - Downwave merges the unsorted prefix of a window into its sorted
//     suffix by partitioning around the suffix median and rotating the two
//     blocks into place
//   - Insertion sort handles windows of 32 elements or fewer
//
// The partition step is a Hoare-style two-cursor scan and the block move is
// an in-place rotation, so no auxiliary buffer is ever allocated. The sort
// is not stable.
//
// # Kernels
//
// Two implementations share the exact same control flow:
//   - SortPortable uses ordinary bounds-checked slice indexing
//   - SortUnchecked runs the same state machine over a raw pointer window,
//     eliding per-access bounds checks
//
// Sort picks between them at runtime; see CurrentLevel and CurrentName for
// what was selected. The Accelerated variable is the swap point for the
// fast kernel and accepts any sort with the same contract.
//
// # Example Usage
//
//	import "github.com/RustedBytes/wsort/wavesort"
//
//	func ProcessData(data []int32) {
//	    wavesort.Sort(data) // In-place ascending sort
//	}
//
//	func CheckSorted(data []int32) bool {
//	    return wavesort.IsSorted(data)
//	}
//
// # Build Requirements
//
// The unchecked kernel is plain Go and needs no special hardware. It can be
// excluded with the noaccel build tag, forced off at startup with the
// WSORT_NO_ACCEL environment variable, and built with per-access bounds
// assertions using the wavesortdebug build tag.
package wavesort
