package isomorphism

import "math/bits"

// Rankset is a bitmask over a deck's ranks: bit k set means rank k is
// present. It is the compact representation of which ranks a single suit
// holds.
type Rankset uint32

// binomialTriangle is a precomputed table of C(n, k) for n, k <= MaxRanks+1,
// used by the colex ranking of small (<= MaxRanks-bit) ranksets. Larger
// binomial coefficients (suit-size products, combination-with-repetition
// ranks) are computed on the fly by [binomial] in combinadic.go, since those
// universes are far larger than MaxRanks+1.
var binomialTriangle [MaxRanks + 2][MaxRanks + 2]uint64

func init() {
	for n := 0; n <= MaxRanks+1; n++ {
		binomialTriangle[n][0] = 1
		for k := 1; k <= n; k++ {
			binomialTriangle[n][k] = binomialTriangle[n-1][k-1] + binomialTriangle[n-1][k]
		}
	}
}

// binom returns C(n, k) for n, k within the precomputed triangle, 0 if
// k > n or either argument is negative.
func binom(n, k int) uint64 {
	if n < 0 || k < 0 || k > n || n > MaxRanks+1 {
		return 0
	}
	return binomialTriangle[n][k]
}

// ColexRank returns the colex index of mask among all k-subsets of its
// universe, where k = popcount(mask). It is a bijection onto
// [0, C(n,k)) for whatever universe size the caller is working in,
// since colex rank depends only on which bit positions are set, not on
// the universe's size.
func ColexRank(mask Rankset) uint64 {
	var rank uint64
	j := 1
	m := uint32(mask)
	for m != 0 {
		i := bits.TrailingZeros32(m)
		rank += binom(i, j)
		j++
		m &= m - 1
	}
	return rank
}

// ColexUnrank is the inverse of [ColexRank]: it returns the k-subset mask
// whose colex index (among k-subsets of {0..n-1}) equals index. It returns
// false if index >= C(n,k).
func ColexUnrank(index uint64, k, n int) (Rankset, bool) {
	if index >= binom(n, k) {
		return 0, false
	}
	var mask Rankset
	for j := k; j >= 1; j-- {
		// Find the greatest i such that C(i,j) <= index.
		i := j - 1
		for binom(i+1, j) <= index {
			i++
		}
		index -= binom(i, j)
		mask |= 1 << uint(i)
	}
	return mask, true
}

// Popcount returns the number of ranks present in the rankset.
func (r Rankset) Popcount() int {
	return bits.OnesCount32(uint32(r))
}

// Has reports whether rank is present in the rankset.
func (r Rankset) Has(rank int) bool {
	return r&(1<<uint(rank)) != 0
}

// With returns the rankset with rank added.
func (r Rankset) With(rank int) Rankset {
	return r | 1<<uint(rank)
}

// RanksetChoose selects the pop-sized subset of remaining whose colex index
// within remaining's own universe equals value, and returns that subset
// along with what remains of remaining afterward. It is the primitive
// [Indexer.Unindex] uses to peel one round's rankset off of a suit's
// remaining rank universe.
func RanksetChoose(remaining Rankset, pop int, value uint64) (chosen, rest Rankset, ok bool) {
	n := remaining.Popcount()
	sub, ok := ColexUnrank(value, pop, n)
	if !ok {
		return 0, 0, false
	}
	// sub is a colex-ranked subset of {0..n-1}; map its bits onto the
	// actual rank positions present in remaining, in ascending order.
	var chosenMask Rankset
	idx := 0
	m := uint32(remaining)
	for m != 0 {
		rankPos := bits.TrailingZeros32(m)
		if sub.Has(idx) {
			chosenMask = chosenMask.With(rankPos)
		}
		idx++
		m &= m - 1
	}
	return chosenMask, remaining &^ chosenMask, true
}
