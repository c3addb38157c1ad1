// Package stats computes descriptive statistics over a filtered trip dataset.
//
// Every "most common" value is a mode with an explicit tie-break: among
// values sharing the highest count, the one that appears first in row order
// wins. Sorted counts use the same rule for equal counts.
package stats

import (
	"errors"
	"sort"
)

// ErrEmptyDataset is returned by every aggregator when there are no trips.
var ErrEmptyDataset = errors.New("dataset has no trips")

// frequency counts occurrences and remembers first-seen order.
type frequency[K comparable] struct {
	counts map[K]int
	order  []K
}

func newFrequency[K comparable]() *frequency[K] {
	return &frequency[K]{counts: make(map[K]int)}
}

func (f *frequency[K]) add(k K) {
	if _, ok := f.counts[k]; !ok {
		f.order = append(f.order, k)
	}
	f.counts[k]++
}

func (f *frequency[K]) len() int {
	return len(f.order)
}

// mode returns the most frequent key and its count. ok is false when
// nothing was counted.
func (f *frequency[K]) mode() (key K, count int, ok bool) {
	for _, k := range f.order {
		if c := f.counts[k]; c > count {
			key, count, ok = k, c, true
		}
	}
	return key, count, ok
}

// sorted returns keys by descending count, ties in first-seen order.
func (f *frequency[K]) sorted() []K {
	keys := make([]K, len(f.order))
	copy(keys, f.order)
	sort.SliceStable(keys, func(i, j int) bool {
		return f.counts[keys[i]] > f.counts[keys[j]]
	})
	return keys
}

func (f *frequency[K]) count(k K) int {
	return f.counts[k]
}
