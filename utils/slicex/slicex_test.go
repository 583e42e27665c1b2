// File: slicex_test.go
// Title: Slice Utilities Tests
// Description: Test suite for slice helpers and subset enumeration order,
//              cardinality filtering, and element-order preservation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial test implementation

package slicex

import (
	"reflect"
	"testing"
)

func TestClone(t *testing.T) {
	original := []int{1, 2, 3}
	clone := Clone(original)

	clone[0] = 99
	if original[0] != 1 {
		t.Error("Clone must not alias the original backing array")
	}
	if Clone[int](nil) != nil {
		t.Error("Clone of nil should stay nil")
	}
}

func TestContains(t *testing.T) {
	if !Contains([]string{"a", "b"}, "b") {
		t.Error("Contains should find present element")
	}
	if Contains([]string{"a", "b"}, "c") {
		t.Error("Contains should not find absent element")
	}
	if Contains[int](nil, 1) {
		t.Error("Contains on nil slice should be false")
	}
}

func TestChunk(t *testing.T) {
	testCases := []struct {
		name  string
		input []int
		size  int
		want  [][]int
	}{
		{
			name:  "even split",
			input: []int{1, 2, 3, 4},
			size:  2,
			want:  [][]int{{1, 2}, {3, 4}},
		},
		{
			name:  "remainder chunk",
			input: []int{1, 2, 3, 4, 5},
			size:  2,
			want:  [][]int{{1, 2}, {3, 4}, {5}},
		},
		{
			name:  "size larger than slice",
			input: []int{1, 2},
			size:  10,
			want:  [][]int{{1, 2}},
		},
		{
			name:  "invalid size",
			input: []int{1, 2},
			size:  0,
			want:  nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Chunk(tc.input, tc.size)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Chunk(%v, %d) = %v, want %v", tc.input, tc.size, got, tc.want)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	if got := Join([]int{1, 2, 3}, ", "); got != "1, 2, 3" {
		t.Errorf("Join = %q, want %q", got, "1, 2, 3")
	}
	if got := Join([]string{"solo"}, "-"); got != "solo" {
		t.Errorf("Join = %q, want %q", got, "solo")
	}
	if got := Join[int](nil, ","); got != "" {
		t.Errorf("Join of nil = %q, want empty", got)
	}
}

func TestSubsets(t *testing.T) {
	testCases := []struct {
		name      string
		input     []int
		minLength int
		want      [][]int
	}{
		{
			name:      "minimum length two",
			input:     []int{1, 2, 3},
			minLength: 2,
			want:      [][]int{{1, 2}, {1, 3}, {2, 3}, {1, 2, 3}},
		},
		{
			name:      "full power set includes empty subset",
			input:     []int{1, 2},
			minLength: 0,
			want:      [][]int{{}, {1}, {2}, {1, 2}},
		},
		{
			name:      "minimum one drops only the empty subset",
			input:     []int{1, 2},
			minLength: 1,
			want:      [][]int{{1}, {2}, {1, 2}},
		},
		{
			name:      "minimum above cardinality yields nothing",
			input:     []int{1, 2},
			minLength: 3,
			want:      nil,
		},
		{
			name:      "empty input with zero minimum",
			input:     []int{},
			minLength: 0,
			want:      [][]int{{}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Subsets(tc.input, tc.minLength)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Subsets(%v, %d) = %v, want %v", tc.input, tc.minLength, got, tc.want)
			}
		})
	}
}

func TestSubsetsPreservesElementOrder(t *testing.T) {
	got := Subsets([]string{"x", "y", "z"}, 2)
	for _, subset := range got {
		last := -1
		for _, element := range subset {
			var pos int
			switch element {
			case "x":
				pos = 0
			case "y":
				pos = 1
			case "z":
				pos = 2
			}
			if pos <= last {
				t.Fatalf("subset %v violates input element order", subset)
			}
			last = pos
		}
	}
}

func TestSubsetsRejectsOversizedInput(t *testing.T) {
	if got := Subsets(make([]int, MaxSubsetItems+1), 0); got != nil {
		t.Errorf("inputs beyond MaxSubsetItems must yield nil, got %d subsets", len(got))
	}
}

func TestSubsetsCount(t *testing.T) {
	// 2^5 subsets of a 5 element slice
	if got := len(Subsets([]int{1, 2, 3, 4, 5}, 0)); got != 32 {
		t.Errorf("expected 32 subsets, got %d", got)
	}
}
