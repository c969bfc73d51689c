package isomorphism

import "testing"

func TestBinomial(t *testing.T) {
	tests := []struct {
		n, k uint64
		exp  uint64
	}{
		{0, 0, 1},
		{5, 0, 1},
		{5, 5, 1},
		{5, 6, 0},
		{79, 2, 3081},
		{16, 4, 1820},
		{14, 2, 91},
	}
	for _, test := range tests {
		if got := binomial(test.n, test.k); got != test.exp {
			t.Errorf("binomial(%d,%d) = %d, want %d", test.n, test.k, got, test.exp)
		}
	}
}

func TestMultichoose(t *testing.T) {
	tests := []struct {
		n, k uint64
		exp  uint64
	}{
		{1, 3, 1},
		{13, 1, 13},
		{78, 2, 3081},
		{13, 4, 1820},
		{5, 0, 1},
	}
	for _, test := range tests {
		if got := multichoose(test.n, test.k); got != test.exp {
			t.Errorf("multichoose(%d,%d) = %d, want %d", test.n, test.k, got, test.exp)
		}
	}
}

func TestCombinadicRankUnrankBijection(t *testing.T) {
	const n, k = 10, 3
	total := binomial(n, k)
	seen := make(map[uint64][]uint64)
	for a := uint64(0); a < n; a++ {
		for b := a + 1; b < n; b++ {
			for c := b + 1; c < n; c++ {
				sorted := []uint64{a, b, c}
				rank := combinadicRank(sorted)
				if rank >= total {
					t.Fatalf("combinadicRank(%v) = %d, out of range [0,%d)", sorted, rank, total)
				}
				if other, dup := seen[rank]; dup {
					t.Fatalf("rank %d produced by both %v and %v", rank, other, sorted)
				}
				seen[rank] = sorted
				back := combinadicUnrank(rank, k)
				if !uint64SliceEqual(back, sorted) {
					t.Fatalf("combinadicUnrank(combinadicRank(%v)) = %v, want %v", sorted, back, sorted)
				}
			}
		}
	}
	if uint64(len(seen)) != total {
		t.Errorf("saw %d distinct ranks, want %d", len(seen), total)
	}
}

func TestCwrRankUnrankBijection(t *testing.T) {
	const n, k = 4, 3
	total := multichoose(n, k)
	seen := make(map[uint64][]uint64)
	for a := uint64(0); a < n; a++ {
		for b := a; b < n; b++ {
			for c := b; c < n; c++ {
				sorted := []uint64{a, b, c}
				rank := cwrRank(sorted)
				if rank >= total {
					t.Fatalf("cwrRank(%v) = %d, out of range [0,%d)", sorted, rank, total)
				}
				if other, dup := seen[rank]; dup {
					t.Fatalf("rank %d produced by both %v and %v", rank, other, sorted)
				}
				seen[rank] = sorted
				back := cwrUnrank(rank, k, n)
				if !uint64SliceEqual(back, sorted) {
					t.Fatalf("cwrUnrank(cwrRank(%v)) = %v, want %v", sorted, back, sorted)
				}
			}
		}
	}
	if uint64(len(seen)) != total {
		t.Errorf("saw %d distinct ranks, want %d", len(seen), total)
	}
}

func uint64SliceEqual(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
