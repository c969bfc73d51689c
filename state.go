package isomorphism

// State is the persistent, mutable accumulator behind the incremental
// indexing interface. It holds, per suit, the cumulative rankset dealt so
// far, the compound subrank encoding that rankset's round-by-round
// history, and the history itself (used to locate the matching canonical
// configuration on the next call). A State must be confined to one
// goroutine at a time; distinct States are fully independent.
type State struct {
	round        int
	suitRankset  []Rankset
	suitCompound []uint64
	suitCums     [][]int
}

// StateInit creates a fresh [State] for incrementally indexing a hand dealt
// with ix's deck. The returned state is in the "fresh" (round 0) position
// of the incremental indexer's state machine.
func (ix *Indexer) StateInit() *State {
	s := ix.deck.NumSuits()
	st := &State{
		suitRankset:  make([]Rankset, s),
		suitCompound: make([]uint64, s),
		suitCums:     make([][]int, s),
	}
	for i := range st.suitCums {
		st.suitCums[i] = []int{}
	}
	return st
}

// Round returns the next round this state will fold in (i.e. how many
// rounds have been processed so far).
func (st *State) Round() int {
	return st.round
}
