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

// Command wavebench times the wavesort kernels against the standard
// library on reproducibly generated data.
//
// Usage:
//
//	wavebench -n 10000000 -seed 1 -runs 5
//
// Every implementation sorts the same generator stream, each timed run
// works on a fresh copy, and every result is verified before it counts.
// The process exits non-zero if any implementation produces unsorted
// output.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"slices"
	"time"

	"github.com/RustedBytes/wsort/wavesort"
	"github.com/dustin/go-humanize"
	"gonum.org/v1/gonum/stat"
)

var (
	numSamples = flag.Int("n", 10_000_000, "number of int32 samples to sort")
	seed       = flag.Uint64("seed", 1, "generator seed")
	runs       = flag.Int("runs", 5, "timed runs per implementation")
)

func main() {
	flag.Parse()

	if *numSamples < 0 {
		fmt.Fprintf(os.Stderr, "Error: -n must be non-negative\n")
		os.Exit(1)
	}
	if *runs < 1 {
		fmt.Fprintf(os.Stderr, "Error: -runs must be at least 1\n")
		os.Exit(1)
	}

	fmt.Printf("wavesort kernel: %s (%s/%s)\n", wavesort.CurrentName(), runtime.GOOS, runtime.GOARCH)
	fmt.Printf("Generating %s samples (seed %d)...\n\n", humanize.Comma(int64(*numSamples)), *seed)

	ref := make([]int32, *numSamples)
	lcgFill(ref, *seed)

	type contender struct {
		name string
		fn   func([]int32)
	}
	var contenders []contender
	if wavesort.CurrentLevel() == wavesort.LevelUnchecked {
		contenders = append(contenders, contender{"WaveSort unchecked", wavesort.SortUnchecked})
	}
	contenders = append(contenders,
		contender{"WaveSort portable", wavesort.SortPortable},
		contender{"slices.Sort", func(data []int32) { slices.Sort(data) }},
	)

	failed := false
	data := make([]int32, len(ref))
	for _, c := range contenders {
		secs := make([]float64, 0, *runs)
		ok := true
		for r := 0; r < *runs; r++ {
			copy(data, ref)
			start := time.Now()
			c.fn(data)
			elapsed := time.Since(start).Seconds()
			if !wavesort.IsSorted(data) {
				fmt.Fprintf(os.Stderr, "FAILURE: %s produced unsorted output\n", c.name)
				failed = true
				ok = false
				break
			}
			secs = append(secs, elapsed)
		}
		if !ok {
			continue
		}

		mean := stat.Mean(secs, nil)
		sd := 0.0
		if len(secs) > 1 {
			sd = stat.StdDev(secs, nil)
		}
		fmt.Printf("%-19s %9.6f s  (stddev %.6f over %d runs)\n", c.name+":", mean, sd, len(secs))
	}

	if failed {
		os.Exit(1)
	}
}

// lcgFill fills data with the reference linear congruential generator:
// seed' = seed*1103515245 + 12345, sample = (seed' / 65536) mod 2^31.
func lcgFill(data []int32, seed uint64) {
	for i := range data {
		seed = seed*1103515245 + 12345
		data[i] = int32(seed / 65536 % 2147483648)
	}
}
