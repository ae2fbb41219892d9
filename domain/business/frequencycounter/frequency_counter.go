package frequencycounter

import "sort"

// Frequency value with the amount of times it was counted
type Frequency[T comparable] struct {
	Value T   `json:"value"`
	Count int `json:"count"`
}

// FrequencyCounter struct that counts how many times each value appears
// + counters: amount of appearances of each value
// + order: values in the order they were first seen. Ties are resolved with it
type FrequencyCounter[T comparable] struct {
	counters map[T]int
	order    []T
}

func NewFrequencyCounter[T comparable]() *FrequencyCounter[T] {
	return &FrequencyCounter[T]{
		counters: make(map[T]int),
	}
}

// UpdateCounter adds one appearance of value
func (fc *FrequencyCounter[T]) UpdateCounter(value T) {
	if _, ok := fc.counters[value]; !ok {
		fc.order = append(fc.order, value)
	}
	fc.counters[value] += 1
}

// GetCounter returns the amount of appearances of value
func (fc *FrequencyCounter[T]) GetCounter(value T) int {
	return fc.counters[value]
}

// Total returns the amount of values counted
func (fc *FrequencyCounter[T]) Total() int {
	total := 0
	for _, counter := range fc.counters {
		total += counter
	}
	return total
}

// IsEmpty returns true if nothing was counted yet
func (fc *FrequencyCounter[T]) IsEmpty() bool {
	return len(fc.order) == 0
}

// Mode returns the most frequent value. If two values have the same amount of appearances
// the one seen first wins. The boolean is false if nothing was counted.
func (fc *FrequencyCounter[T]) Mode() (T, bool) {
	var mode T
	if fc.IsEmpty() {
		return mode, false
	}

	best := -1
	for _, value := range fc.order {
		if fc.counters[value] > best {
			mode = value
			best = fc.counters[value]
		}
	}
	return mode, true
}

// Frequencies returns every value with its counter, ordered by descending count.
// Values with the same count keep the order in which they were first seen.
func (fc *FrequencyCounter[T]) Frequencies() []Frequency[T] {
	frequencies := make([]Frequency[T], 0, len(fc.order))
	for _, value := range fc.order {
		frequencies = append(frequencies, Frequency[T]{Value: value, Count: fc.counters[value]})
	}

	sort.SliceStable(frequencies, func(i, j int) bool {
		return frequencies[i].Count > frequencies[j].Count
	})
	return frequencies
}
