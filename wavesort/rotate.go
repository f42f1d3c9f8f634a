package wavesort

// swapRange swaps the n elements starting at i with the n elements
// starting at j. The ranges must not overlap.
func swapRange(a []int32, i, j, n int) {
	for k := 0; k < n; k++ {
		a[i+k], a[j+k] = a[j+k], a[i+k]
	}
}

// rotate exchanges the two consecutive blocks u = a[l:m] and v = a[m:r],
// turning 'u v' into 'v u' using block swaps of the smaller side.
// Assumes non-degenerate arguments: l < m && m < r.
func rotate(a []int32, l, m, r int) {
	i := m - l
	j := r - m

	for i != j {
		if i > j {
			swapRange(a, m-i, m, j)
			i -= j
		} else {
			swapRange(a, m-i, m+j-i, i)
			j -= i
		}
	}
	// i == j
	swapRange(a, m-i, m, i)
}

// blockSwap merges the partitioned block a[m:r] with the sorted suffix head
// a[r:p+1] by rotating the window a[m:p+1] left by r-m positions. A zero
// length left block is a no-op. Requires m <= r <= p.
func blockSwap(a []int32, m, r, p int) {
	if r == m {
		return
	}
	rotate(a, m, r, p+1)
}
