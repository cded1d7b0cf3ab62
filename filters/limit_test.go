package filters

import (
	"iter"
	"testing"
)

// countingSeq yields 0..n-1 and records how many values were produced.
func countingSeq(n int, produced *int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			*produced++
			if !yield(i) {
				return
			}
		}
	}
}

func collect(seq iter.Seq[int]) []int {
	var out []int
	for v := range seq {
		out = append(out, v)
	}
	return out
}

func TestLimitZeroPassesThrough(t *testing.T) {
	var produced int
	got := collect(Limit(countingSeq(5, &produced), 0))
	if len(got) != 5 {
		t.Fatalf("limit 0: got %d values, want all 5", len(got))
	}
}

func TestLimitCapsAndPreservesOrder(t *testing.T) {
	var produced int
	got := collect(Limit(countingSeq(5, &produced), 3))
	if len(got) != 3 {
		t.Fatalf("got %d values, want 3", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("order broken at %d: got %d", i, v)
		}
	}
	// The fourth element must never have been pulled from the source.
	if produced != 3 {
		t.Fatalf("source produced %d values, want 3", produced)
	}
}

func TestLimitLargerThanSequence(t *testing.T) {
	var produced int
	got := collect(Limit(countingSeq(3, &produced), 10))
	if len(got) != 3 {
		t.Fatalf("got %d values, want 3", len(got))
	}
}

func TestLimitConsumerBreaksEarly(t *testing.T) {
	var produced int
	for range Limit(countingSeq(100, &produced), 50) {
		break
	}
	if produced != 1 {
		t.Fatalf("source produced %d values after early break, want 1", produced)
	}
}
