package slicest

import "testing"

func TestMapAndReduce(t *testing.T) {
	in := []int{1, 2, 3}
	doubled := Map(in, func(v int) int { return v * 2 })
	if len(doubled) != 3 || doubled[2] != 6 {
		t.Fatalf("unexpected map result: %v", doubled)
	}
	sum := ReduceD(in, 10, func(v, acc int) int { return acc + v })
	if sum != 16 {
		t.Fatalf("expected 16, got %d", sum)
	}
}

func TestFilter(t *testing.T) {
	got := Filter([]int{1, 2, 3, 4}, func(v int) bool { return v%2 == 0 })
	if len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Fatalf("unexpected filter result: %v", got)
	}
	if Filter([]int{}, func(int) bool { return true }) != nil {
		t.Fatalf("expected nil for empty input")
	}
}

func TestMaxBy(t *testing.T) {
	if got := MaxBy([]int{-5, -2, -9}, func(v int) int { return v }); got != -2 {
		t.Fatalf("expected -2, got %d", got)
	}
	if got := MaxBy([]int(nil), func(v int) int { return v }); got != 0 {
		t.Fatalf("expected 0 for empty slice, got %d", got)
	}
}
