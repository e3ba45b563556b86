package coca

import (
	"slices"
	"testing"
)

// seqOf returns a fresh single-use sequence over vs.
func seqOf[T any](vs []T) func(yield func(T) bool) {
	return func(yield func(T) bool) {
		for _, v := range vs {
			if !yield(v) {
				return
			}
		}
	}
}

func TestWindowPairs(t *testing.T) {
	var got [][]int
	for w := range Window(seqOf([]int{1, 2, 3, 4}), 2) {
		got = append(got, w)
	}
	want := [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}
	if len(got) != len(want) {
		t.Fatalf("got %d windows, want %d", len(got), len(want))
	}
	for i := range got {
		if !slices.Equal(got[i], want[i]) {
			t.Errorf("window %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWindowSizeThree(t *testing.T) {
	var got [][]string
	for w := range Window(seqOf([]string{"a", "b", "c"}), 3) {
		got = append(got, w)
	}
	want := [][]string{{"", "", "a"}, {"", "a", "b"}, {"a", "b", "c"}}
	if len(got) != len(want) {
		t.Fatalf("got %d windows, want %d", len(got), len(want))
	}
	for i := range got {
		if !slices.Equal(got[i], want[i]) {
			t.Errorf("window %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWindowPointerSentinel(t *testing.T) {
	one, two := 1, 2
	var got [][]*int
	for w := range Window(seqOf([]*int{&one, &two}), 2) {
		got = append(got, w)
	}
	if len(got) != 2 {
		t.Fatalf("got %d windows, want 2", len(got))
	}
	if got[0][0] != nil || got[0][1] != &one {
		t.Errorf("first window = %v, want [nil &one]", got[0])
	}
	if got[1][0] != &one || got[1][1] != &two {
		t.Errorf("second window = %v, want [&one &two]", got[1])
	}
}

func TestWindowEarlyBreak(t *testing.T) {
	n := 0
	for range Window(seqOf([]int{1, 2, 3, 4, 5}), 2) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("consumed %d windows, want 2", n)
	}
}

func TestWindowYieldsFreshSlices(t *testing.T) {
	var got [][]int
	for w := range Window(seqOf([]int{1, 2, 3}), 2) {
		got = append(got, w)
	}
	// Retained windows must not alias each other.
	got[0][1] = 99
	if got[1][0] == 99 {
		t.Error("windows share backing storage")
	}
}
