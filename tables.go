package isomorphism

// Indexer holds the immutable tables derived from a [Deck]: the canonical
// suit configurations for every round, their block sizes and offsets, and
// the total index-space size per round. Construction is the expensive,
// one-time step, happening once at indexer creation; afterward every query
// method is a pure function of (tables, inputs) safe to call from any
// number of goroutines concurrently.
type Indexer struct {
	deck       *Deck
	configs    [][]configuration // configs[round][i]
	configKeys []map[string]int  // configKeys[round][shapeKey] -> i
	roundSize  []uint64          // roundSize[round] = Size(round)
}

// NewIndexer builds the lookup tables for deck. This is the only
// non-trivial construction step in the package; everything after it is
// arithmetic over the resulting tables, failing only on the documented
// round, index and card-input checks.
func NewIndexer(deck *Deck) (*Indexer, error) {
	if deck == nil {
		return nil, ErrInvalidDeck
	}
	configs, keys := buildConfigurations(deck)
	roundSize := make([]uint64, deck.NumRounds())
	for r, round := range configs {
		var total uint64
		for _, cfg := range round {
			total += cfg.blockSize
		}
		roundSize[r] = total
	}
	return &Indexer{
		deck:       deck,
		configs:    configs,
		configKeys: keys,
		roundSize:  roundSize,
	}, nil
}

// Deck returns the deck the indexer was built for.
func (ix *Indexer) Deck() *Deck {
	return ix.deck
}

// Size returns the number of distinct isomorphism classes through round,
// i.e. the exclusive upper bound on indices [Indexer.IndexAll],
// [Indexer.IndexLast], and [Indexer.IndexNextRound] can produce for that
// round.
func (ix *Indexer) Size(round int) (uint64, error) {
	if round < 0 || len(ix.roundSize) <= round {
		return 0, ErrRoundOutOfRange
	}
	return ix.roundSize[round], nil
}

// NumConfigurations returns the number of distinct canonical suit
// configurations at round, mostly useful for diagnostics and tests.
func (ix *Indexer) NumConfigurations(round int) (int, error) {
	if round < 0 || len(ix.configs) <= round {
		return 0, ErrRoundOutOfRange
	}
	return len(ix.configs[round]), nil
}
