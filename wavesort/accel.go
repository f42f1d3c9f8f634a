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

//go:build !noaccel

package wavesort

// accelAvailable is true when the unchecked kernel is compiled in.
var accelAvailable = true

func init() {
	Accelerated = SortUnchecked
}

// SortUnchecked sorts data in-place in ascending order using the unchecked
// kernel: the same wave state machine as SortPortable, run over a raw
// pointer window with no per-access bounds checks.
func SortUnchecked(data []int32) {
	n := len(data)
	if n < 2 {
		return
	}
	w := newWindow(data)
	if n <= insertionThreshold {
		uncheckedInsertion(w, 0, n-1)
		return
	}
	uncheckedUpwave(w, 0, n-1)
}

// uncheckedInsertion is insertion sort over the inclusive window w[lo..hi].
func uncheckedInsertion(w window, lo, hi int) {
	for i := lo + 1; i <= hi; i++ {
		key := w.get(i)
		j := i - 1
		for j >= lo && w.get(j) > key {
			w.set(j+1, w.get(j))
			j--
		}
		w.set(j+1, key)
	}
}

// uncheckedPartition mirrors partition over a raw window.
func uncheckedPartition(w window, l, r, p int) int {
	pivot := w.get(p)
	i, j := l, r
	for {
		for w.get(i) < pivot {
			i++
			if i == j {
				return i
			}
		}
		for {
			if j == i {
				return i
			}
			j--
			if w.get(j) <= pivot {
				break
			}
		}
		w.swap(i, j)
	}
}

func uncheckedSwapRange(w window, i, j, n int) {
	for k := 0; k < n; k++ {
		w.swap(i+k, j+k)
	}
}

func uncheckedRotate(w window, l, m, r int) {
	i := m - l
	j := r - m

	for i != j {
		if i > j {
			uncheckedSwapRange(w, m-i, m, j)
			i -= j
		} else {
			uncheckedSwapRange(w, m-i, m+j-i, i)
			j -= i
		}
	}
	// i == j
	uncheckedSwapRange(w, m-i, m, i)
}

func uncheckedBlockSwap(w window, m, r, p int) {
	if r == m {
		return
	}
	uncheckedRotate(w, m, r, p+1)
}

// uncheckedDownwave runs the downwave state machine over a raw window; see
// downwave for the contract and the branch structure.
func uncheckedDownwave(w window, start, sortedStart, end int) {
	if sortedStart == start {
		return
	}
	if end-start <= insertionThreshold {
		uncheckedInsertion(w, start, end)
		return
	}

	p := sortedStart + (end-sortedStart)/2
	m := uncheckedPartition(w, start, sortedStart, p)

	if m == sortedStart {
		if p == sortedStart {
			if sortedStart > 0 {
				uncheckedUpwave(w, start, sortedStart-1)
			}
			return
		}
		if p > 0 {
			uncheckedDownwave(w, start, sortedStart, p-1)
		}
		return
	}

	uncheckedBlockSwap(w, m, sortedStart, p)

	if m == start {
		if p == sortedStart {
			uncheckedUpwave(w, m+1, end)
			return
		}
		next := p + 1
		uncheckedDownwave(w, m+next-sortedStart, next, end)
		return
	}

	if p == sortedStart {
		if m > 0 {
			uncheckedUpwave(w, start, m-1)
		}
		uncheckedUpwave(w, m+1, end)
		return
	}

	split := m + (p - sortedStart)
	if split > 0 {
		uncheckedDownwave(w, start, m, split-1)
	}
	uncheckedDownwave(w, split+1, p+1, end)
}

// uncheckedUpwave runs the upwave state machine over a raw window; see
// upwave for the contract.
func uncheckedUpwave(w window, start, end int) {
	if start == end {
		return
	}
	if end-start <= insertionThreshold {
		uncheckedInsertion(w, start, end)
		return
	}

	sortedStart := end
	leftBound := end - 1
	totalLen := end - start + 1
	for {
		uncheckedDownwave(w, leftBound, sortedStart, end)
		sortedStart = leftBound

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
	uncheckedDownwave(w, start, sortedStart, end)
}
