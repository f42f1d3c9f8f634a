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

package wavesort

// downwave sorts the inclusive window a[start..end] given that the suffix
// a[sortedStart..end] is already sorted. The unsorted prefix is partitioned
// around the suffix median, the low half of the suffix is rotated in front
// of the high prefix block, and the two resulting subwindows are handled
// independently. Requires start <= sortedStart <= end; all reads and writes
// stay inside the window.
func downwave(a []int32, start, sortedStart, end int) {
	if sortedStart == start {
		return
	}
	if end-start <= insertionThreshold {
		insertionSort(a[start : end+1])
		return
	}

	// Pivot from the middle of the sorted suffix.
	p := sortedStart + (end-sortedStart)/2
	m := partition(a, start, sortedStart, p)

	if m == sortedStart {
		// The whole prefix is below the pivot.
		if p == sortedStart {
			if sortedStart > 0 {
				upwave(a, start, sortedStart-1)
			}
			return
		}
		if p > 0 {
			downwave(a, start, sortedStart, p-1)
		}
		return
	}

	// Move the suffix half at or below the pivot in front of the high
	// prefix block.
	blockSwap(a, m, sortedStart, p)

	if m == start {
		// The whole prefix is at or above the pivot.
		if p == sortedStart {
			upwave(a, m+1, end)
			return
		}
		next := p + 1
		downwave(a, m+next-sortedStart, next, end)
		return
	}

	if p == sortedStart {
		// Only the pivot element came out of the suffix; sort both sides
		// outright.
		if m > 0 {
			upwave(a, start, m-1)
		}
		upwave(a, m+1, end)
		return
	}

	// The pivot now sits at split with everything before it at or below
	// the pivot value, so the window falls apart into two independent
	// subwindows.
	split := m + (p - sortedStart)
	if split > 0 {
		downwave(a, start, m, split-1)
	}
	downwave(a, split+1, p+1, end)
}

// upwave sorts the inclusive window a[start..end] from scratch. It seeds a
// sorted suffix at the right edge and folds geometrically growing spans of
// the prefix into it with downwave until the suffix covers the window.
func upwave(a []int32, start, end int) {
	if start == end {
		return
	}
	if end-start <= insertionThreshold {
		insertionSort(a[start : end+1])
		return
	}

	sortedStart := end
	leftBound := end - 1
	totalLen := end - start + 1
	for {
		downwave(a, leftBound, sortedStart, end)
		sortedStart = leftBound

		// Expansion ends once the suffix covers a quarter of the window.
		sortedLen := end - sortedStart + 1
		if totalLen < 4*sortedLen {
			break
		}

		leftBound = end - (2*sortedLen + 1)
		if leftBound < start {
			leftBound = start
		}
		if sortedStart == start {
			break
		}
	}
	downwave(a, start, sortedStart, end)
}
