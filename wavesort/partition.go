package wavesort

// partition partitions a[l:r] around the pivot value read from a[p] before
// any element moves. It returns the split index m with a[l:m] < pivot and
// a[m:r] >= pivot. The two cursors scan toward each other Hoare-style, so
// every write stays inside a[l:r]; the pivot position itself is only read.
// Requires l < r.
func partition(a []int32, l, r, p int) int {
	pivot := a[p]
	i, j := l, r
	for {
		for a[i] < pivot {
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
			if a[j] <= pivot {
				break
			}
		}
		a[i], a[j] = a[j], a[i]
	}
}
