package isomorphism

import "sort"

// Unindex recovers a canonical representative hand for index at round: a
// flat, round-ordered slice of cards (length
// [Deck.CumulativeCardsThroughRound](round)) that [Indexer.IndexLast] (or
// [Indexer.IndexAll]'s round-th entry) maps back to index.
//
// It returns [ErrRoundOutOfRange] if round is not a valid round for the
// indexer's deck, and [ErrIndexOutOfRange] if index is not less than
// [Indexer.Size](round).
func (ix *Indexer) Unindex(round int, index uint64) ([]Card, error) {
	if round < 0 || len(ix.configs) <= round {
		return nil, ErrRoundOutOfRange
	}
	if ix.roundSize[round] <= index {
		return nil, ErrIndexOutOfRange
	}
	configs := ix.configs[round]

	// Step 1: locate the configuration owning this index via binary search
	// on offsets.
	i := sort.Search(len(configs), func(k int) bool {
		return index < configs[k].offset
	}) - 1
	cfg := configs[i]
	local := index - cfg.offset

	// Step 2: decompose local back through the group mixed-radix, in
	// reverse group order (the last group is the least significant digit
	// of the forward composition in [Indexer.IndexNextRound]).
	groupVals := make([]uint64, len(cfg.groups))
	acc := local
	for k := len(cfg.groups) - 1; k >= 0; k-- {
		blockSize := multichoose(cfg.groups[k].suitSize, uint64(cfg.groups[k].size))
		groupVals[k] = acc % blockSize
		acc /= blockSize
	}

	numRanks := ix.deck.NumRanks()
	numSuits := ix.deck.NumSuits()
	roundMasks := make([][]Rankset, round+1)
	for r := range roundMasks {
		roundMasks[r] = make([]Rankset, numSuits)
	}

	suit := 0
	for gi, g := range cfg.groups {
		var compounds []uint64
		if g.size == 1 {
			compounds = []uint64{groupVals[gi]}
		} else {
			compounds = cwrUnrank(groupVals[gi], g.size, g.suitSize)
		}
		// Per-round digit sizes are fully determined by the group's
		// cumulative-count history, so unlike the group-level mixed
		// radix, no separate lookup is needed here.
		limits := make([]int, round+1)
		counts := make([]int, round+1)
		prevCum := 0
		for r := 0; r <= round; r++ {
			counts[r] = g.cums[r] - prevCum
			limits[r] = numRanks - prevCum
			prevCum = g.cums[r]
		}
		for _, compound := range compounds {
			subranks := make([]uint64, round+1)
			c := compound
			for r := round; r >= 0; r-- {
				b := binom(limits[r], counts[r])
				subranks[r] = c % b
				c /= b
			}
			remaining := fullMask(numRanks)
			for r := 0; r <= round; r++ {
				chosen, rest, ok := RanksetChoose(remaining, counts[r], subranks[r])
				if !ok {
					return nil, ErrIndexOutOfRange
				}
				roundMasks[r][suit] = chosen
				remaining = rest
			}
			suit++
		}
	}

	cardsOut := make([]Card, 0, ix.deck.CumulativeCardsThroughRound(round))
	for r := 0; r <= round; r++ {
		for s := 0; s < numSuits; s++ {
			m := roundMasks[r][s]
			for rank := 0; rank < numRanks; rank++ {
				if m.Has(rank) {
					cardsOut = append(cardsOut, NewCard(s, rank))
				}
			}
		}
	}
	return cardsOut, nil
}

// fullMask returns a rankset with the low numRanks bits set.
func fullMask(numRanks int) Rankset {
	return Rankset(1<<uint(numRanks)) - 1
}
