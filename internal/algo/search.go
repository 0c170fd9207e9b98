// Package algo contains ordered-search and slice-editing primitives
// used by the tree machinery.
package algo

import "sort"

const searchThreshold = 32

// FindGTE returns the index of the first element in sorted that
// compares >= target: the insertion index, which may equal len(sorted).
func FindGTE[E any](sorted []E, target E, cmp func(a, b E) int) int {
	if len(sorted) < searchThreshold {
		for i, e := range sorted {
			if cmp(e, target) >= 0 {
				return i
			}
		}
		return len(sorted)
	}

	return sort.Search(len(sorted), func(i int) bool {
		return cmp(sorted[i], target) >= 0
	})
}

// FindGT is FindGTE with strict inequality.
func FindGT[E any](sorted []E, target E, cmp func(a, b E) int) int {
	if len(sorted) < searchThreshold {
		for i, e := range sorted {
			if cmp(e, target) > 0 {
				return i
			}
		}
		return len(sorted)
	}

	return sort.Search(len(sorted), func(i int) bool {
		return cmp(sorted[i], target) > 0
	})
}

// InsertAt inserts value at index, shifting the tail right.
func InsertAt[E any](slice []E, index int, value E) []E {
	slice = append(slice, value)
	copy(slice[index+1:], slice[index:])
	slice[index] = value
	return slice
}

// RemoveAt removes the element at index from slice.
func RemoveAt[E any](slice []E, index int) []E {
	return append(slice[:index], slice[index+1:]...)
}
