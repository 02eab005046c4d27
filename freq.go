package huffzip

import (
	"sort"
)

// FreqTable maps each distinct byte value of an input to its number of
// occurrences.  A byte that never occurs has no entry.
type FreqTable map[byte]uint64

// CountBytes scans data once and returns the frequency table for it.  An
// empty input yields an empty table.
func CountBytes(data []byte) FreqTable {
	ft := make(FreqTable)
	for _, b := range data {
		ft[b]++
	}
	return ft
}

// Total returns the sum of all counts, which equals the length of the input
// the table was built from.
func (ft FreqTable) Total() uint64 {
	var sum uint64
	for _, count := range ft {
		sum += count
	}
	return sum
}

// Symbols returns the distinct byte values in the table in ascending order.
//
// The order exists for serialization and debug output only; tree
// construction depends solely on the comparator in tree.go, never on
// iteration order.
//
func (ft FreqTable) Symbols() []byte {
	out := make([]byte, 0, len(ft))
	for b := range ft {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clone returns a copy of the table.
func (ft FreqTable) Clone() FreqTable {
	dupe := make(FreqTable, len(ft))
	for b, count := range ft {
		dupe[b] = count
	}
	return dupe
}
