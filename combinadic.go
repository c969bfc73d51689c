package isomorphism

// This file implements the general "combinadic" rank/unrank used for
// combinations with repetition (multichoose) over equal-suit groups.
// Unlike [ColexRank]/[ColexUnrank] in rankset.go, which work over the
// small, fixed rank universe and so can use a precomputed binomial triangle
// and a bitmask representation, the universes here are suit-size products
// -- up to 720720 for one suit holding all seven cards of a Hold'em river
// hand -- so values are plain sorted []uint64 slices and binomial
// coefficients are computed on the fly.

// binomial returns C(n, k) for arbitrary nonnegative n, k, computed
// iteratively to avoid overflow for the magnitudes this package deals with
// (round sizes up to the low billions comfortably fit in uint64).
func binomial(n, k uint64) uint64 {
	if k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	var result uint64 = 1
	for i := uint64(0); i < k; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}

// multichoose returns C(n+k-1, k), the number of size-k multisets drawn from
// n items -- the block size of one equal-suit group of size k, each member
// holding one of n possible rankset histories.
func multichoose(n, k uint64) uint64 {
	if k == 0 {
		return 1
	}
	return binomial(n+k-1, k)
}

// combinadicRank returns the colex rank of sorted (strictly increasing)
// among all k-subsets of a large universe, i.e. sum_i C(sorted[i], i+1).
func combinadicRank(sorted []uint64) uint64 {
	var rank uint64
	for i, v := range sorted {
		rank += binomial(v, uint64(i+1))
	}
	return rank
}

// combinadicUnrank is the inverse of combinadicRank: given a rank and a
// subset size k, it returns the strictly increasing k-subset whose colex
// rank equals rank.
func combinadicUnrank(rank uint64, k int) []uint64 {
	out := make([]uint64, k)
	for j := k; j >= 1; j-- {
		// Find the greatest v such that C(v, j) <= rank.
		v := uint64(j - 1)
		for binomial(v+1, uint64(j)) <= rank {
			v++
		}
		rank -= binomial(v, uint64(j))
		out[j-1] = v
	}
	return out
}

// cwrRank ranks a sorted (non-decreasing) tuple of k values, each drawn from
// [0, n) with repetition allowed, among all such multisets -- the standard
// "add i to element i" reduction to a combination without repetition.
func cwrRank(sortedVals []uint64) uint64 {
	shifted := make([]uint64, len(sortedVals))
	for i, v := range sortedVals {
		shifted[i] = v + uint64(i)
	}
	return combinadicRank(shifted)
}

// cwrUnrank is the inverse of cwrRank: given a rank, subset size k, and
// universe size n, it returns the sorted (non-decreasing) k-multiset whose
// cwr rank equals rank.
func cwrUnrank(rank uint64, k int, n uint64) []uint64 {
	shifted := combinadicUnrank(rank, k)
	out := make([]uint64, k)
	for i, v := range shifted {
		out[i] = v - uint64(i)
	}
	return out
}
