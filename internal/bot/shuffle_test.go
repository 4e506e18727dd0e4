package bot

import "testing"

func TestDisplayOrderDeterministicPerIndex(t *testing.T) {
	for idx := 0; idx < 10; idx++ {
		first := displayOrder(idx, 5)
		second := displayOrder(idx, 5)
		if len(first) != 5 {
			t.Fatalf("index %d: len = %d", idx, len(first))
		}
		for i := range first {
			if first[i] != second[i] {
				t.Fatalf("index %d: re-render changed order: %v vs %v", idx, first, second)
			}
		}
	}
}

func TestDisplayOrderIsPermutation(t *testing.T) {
	order := displayOrder(3, 7)
	seen := make(map[int]bool, len(order))
	for _, i := range order {
		if i < 0 || i >= 7 || seen[i] {
			t.Fatalf("not a permutation: %v", order)
		}
		seen[i] = true
	}
	if len(seen) != 7 {
		t.Fatalf("not a permutation: %v", order)
	}
}

func TestDisplayOrderEdgeSizes(t *testing.T) {
	if got := displayOrder(0, 0); len(got) != 0 {
		t.Fatalf("n=0: %v", got)
	}
	if got := displayOrder(0, 1); len(got) != 1 || got[0] != 0 {
		t.Fatalf("n=1: %v", got)
	}
}
