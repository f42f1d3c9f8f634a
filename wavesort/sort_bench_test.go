package wavesort

import (
	"math/rand"
	"slices"
	"testing"
)

// Generate random data for benchmarks
func generateInt32(n int) []int32 {
	data := make([]int32, n)
	for i := range data {
		data[i] = rand.Int31n(10000) - 5000
	}
	return data
}

// Dispatching entry point benchmarks
func BenchmarkSort_1000(b *testing.B) {
	benchmarkSort(b, 1000)
}

func BenchmarkSort_10000(b *testing.B) {
	benchmarkSort(b, 10000)
}

func BenchmarkSort_100000(b *testing.B) {
	benchmarkSort(b, 100000)
}

func BenchmarkSort_1000000(b *testing.B) {
	benchmarkSort(b, 1000000)
}

func benchmarkSort(b *testing.B, n int) {
	// Generate reference data
	ref := generateInt32(n)
	data := make([]int32, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		Sort(data)
	}
}

// Portable kernel benchmarks
func BenchmarkSortPortable_1000(b *testing.B) {
	benchmarkSortPortable(b, 1000)
}

func BenchmarkSortPortable_10000(b *testing.B) {
	benchmarkSortPortable(b, 10000)
}

func BenchmarkSortPortable_100000(b *testing.B) {
	benchmarkSortPortable(b, 100000)
}

func BenchmarkSortPortable_1000000(b *testing.B) {
	benchmarkSortPortable(b, 1000000)
}

func benchmarkSortPortable(b *testing.B, n int) {
	ref := generateInt32(n)
	data := make([]int32, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		SortPortable(data)
	}
}

// Unchecked kernel benchmarks
func BenchmarkSortUnchecked_1000(b *testing.B) {
	benchmarkSortUnchecked(b, 1000)
}

func BenchmarkSortUnchecked_10000(b *testing.B) {
	benchmarkSortUnchecked(b, 10000)
}

func BenchmarkSortUnchecked_100000(b *testing.B) {
	benchmarkSortUnchecked(b, 100000)
}

func BenchmarkSortUnchecked_1000000(b *testing.B) {
	benchmarkSortUnchecked(b, 1000000)
}

func benchmarkSortUnchecked(b *testing.B, n int) {
	if !accelAvailable {
		b.Skip("unchecked kernel not built")
	}
	ref := generateInt32(n)
	data := make([]int32, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		SortUnchecked(data)
	}
}

// Standard library comparison benchmarks
func BenchmarkStdlib_1000(b *testing.B) {
	benchmarkStdlib(b, 1000)
}

func BenchmarkStdlib_10000(b *testing.B) {
	benchmarkStdlib(b, 10000)
}

func BenchmarkStdlib_100000(b *testing.B) {
	benchmarkStdlib(b, 100000)
}

func BenchmarkStdlib_1000000(b *testing.B) {
	benchmarkStdlib(b, 1000000)
}

func benchmarkStdlib(b *testing.B, n int) {
	ref := generateInt32(n)
	data := make([]int32, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		slices.Sort(data)
	}
}

// Primitive benchmarks
func BenchmarkPartition_100000(b *testing.B) {
	ref := generateInt32(100000)
	data := make([]int32, len(ref))
	n := len(ref)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		partition(data, 0, n-1, n-1)
	}
}

func BenchmarkBlockSwap_100000(b *testing.B) {
	ref := generateInt32(100000)
	data := make([]int32, len(ref))
	n := len(ref)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		blockSwap(data, 0, n/3, n-1)
	}
}
