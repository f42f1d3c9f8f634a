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

// insertionThreshold: windows of this many elements or fewer are handled by
// insertion sort instead of the wave machinery.
const insertionThreshold = 32

// Accelerated is the fast kernel invoked by Sort when the dispatch level is
// LevelUnchecked. It defaults to SortUnchecked and is nil under the noaccel
// build tag. Any function that sorts the slice ascending in place may be
// swapped in; the slice header carries the buffer and its length.
var Accelerated func(data []int32)

// Sort sorts data in-place in ascending order. It routes to the accelerated
// kernel when one is enabled (see CurrentLevel) and to SortPortable
// otherwise. The sort is O(n log n) time and O(1) extra space, and is not
// stable.
func Sort(data []int32) {
	if len(data) < 2 {
		return
	}
	if currentLevel == LevelUnchecked && Accelerated != nil {
		Accelerated(data)
		return
	}
	SortPortable(data)
}

// SortPortable sorts data in-place in ascending order using bounds-checked
// slice indexing throughout. It is the reference implementation that the
// accelerated kernel is validated against.
func SortPortable(data []int32) {
	n := len(data)
	if n < 2 {
		return
	}
	if n <= insertionThreshold {
		insertionSort(data)
		return
	}
	upwave(data, 0, n-1)
}

// insertionSort is insertion sort for small windows.
func insertionSort(a []int32) {
	for i := 1; i < len(a); i++ {
		key := a[i]
		j := i - 1
		for j >= 0 && a[j] > key {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = key
	}
}

// IsSorted reports whether data is in ascending order.
func IsSorted(data []int32) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}
