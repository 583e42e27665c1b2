// File: slicex.go
// Title: Slice Utilities and Subset Generation
// Description: Implements generic slice helpers and power-set style subset
//              enumeration with a minimum cardinality filter. Subsets are
//              produced in ascending bitmask order with element order
//              preserved.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation

package slicex

import (
	"fmt"
	"strings"
)

// Clone returns a shallow copy of the slice. A nil slice stays nil.
func Clone[T any](slice []T) []T {
	if slice == nil {
		return nil
	}
	result := make([]T, len(slice))
	copy(result, slice)
	return result
}

// Contains reports whether the slice holds the given element
func Contains[T comparable](slice []T, element T) bool {
	for _, item := range slice {
		if item == element {
			return true
		}
	}
	return false
}

// Chunk splits the slice into consecutive pieces of at most size elements.
// A size below 1 yields nil.
func Chunk[T any](slice []T, size int) [][]T {
	if size < 1 || len(slice) == 0 {
		return nil
	}

	chunks := make([][]T, 0, (len(slice)+size-1)/size)
	for start := 0; start < len(slice); start += size {
		end := start + size
		if end > len(slice) {
			end = len(slice)
		}
		chunks = append(chunks, slice[start:end:end])
	}
	return chunks
}

// Join renders the elements separated by separator
func Join[T any](slice []T, separator string) string {
	if len(slice) == 0 {
		return ""
	}

	var builder strings.Builder
	for i, item := range slice {
		if i > 0 {
			builder.WriteString(separator)
		}
		fmt.Fprintf(&builder, "%v", item)
	}
	return builder.String()
}

// MaxSubsetItems bounds the input length of Subsets; the bitmask counter
// overflows beyond it
const MaxSubsetItems = 62

// Subsets enumerates every subset of items holding at least minLength
// elements. Each subset preserves the input element order, and subsets are
// emitted in ascending bitmask order: for [a b c] that is [], [a], [b],
// [a b], [c], [a c], [b c], [a b c], filtered by minLength. A minLength of
// zero or less includes the empty subset.
//
// Enumeration is exponential in len(items); inputs longer than
// MaxSubsetItems are rejected and yield nil.
func Subsets[T any](items []T, minLength int) [][]T {
	n := len(items)
	if n > MaxSubsetItems {
		return nil
	}
	total := 1 << n

	var result [][]T
	for mask := 0; mask < total; mask++ {
		subset := make([]T, 0, n)
		for bit := 0; bit < n; bit++ {
			if mask&(1<<bit) != 0 {
				subset = append(subset, items[bit])
			}
		}
		if len(subset) >= minLength {
			result = append(result, subset)
		}
	}
	return result
}
