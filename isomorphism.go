// Package isomorphism maps multi-round poker hands to a dense integer index
// shared by every hand that is equivalent under suit relabeling, and back.
//
// Given a [Deck] describing how many ranks and suits are in play and how
// many private and public cards are dealt on each round, an [Indexer] built
// from it computes, for any hand valid in that deck:
//
//   - [Indexer.Size]: the count of distinct isomorphism classes through a
//     round;
//   - [Indexer.IndexAll] / [Indexer.IndexLast]: a compact integer identifying
//     a hand's isomorphism class;
//   - [Indexer.Unindex]: a canonical representative hand for an index;
//   - [State] plus [Indexer.IndexNextRound]: the same indexing, incrementally,
//     as new cards are revealed round by round.
//
// Table construction happens once, at [NewIndexer]; after that, all query
// operations are pure functions of (tables, inputs) and are safe to call
// concurrently from multiple goroutines. A [State] value mutated by
// [Indexer.IndexNextRound] must be confined to one goroutine at a time, but
// distinct State values are fully independent.
package isomorphism

// Error is a sentinel error, following the same immutable-string-constant
// pattern as the rest of this package's error values.
type Error string

// Error satisfies the [error] interface.
func (err Error) Error() string {
	return string(err)
}

// Error values.
const (
	// ErrInvalidDeck is returned by [NewDeck] when the deck's ranks, suits,
	// private, or public card counts violate the deck's invariants.
	ErrInvalidDeck Error = "invalid deck"
	// ErrInvalidCard is returned when a card falls outside the deck's
	// configured ranks or suits.
	ErrInvalidCard Error = "invalid card"
	// ErrRoundOutOfRange is returned by [Indexer.Size] and [Indexer.Unindex]
	// when asked about a round the deck does not have.
	ErrRoundOutOfRange Error = "round out of range"
	// ErrIndexOutOfRange is returned by [Indexer.Unindex] when the index is
	// not less than [Indexer.Size] of the requested round.
	ErrIndexOutOfRange Error = "index out of range"
	// ErrTerminalState is returned by [Indexer.IndexNextRound] when the
	// state has already been advanced through the deck's final round.
	ErrTerminalState Error = "state machine already at terminal round"
	// ErrWrongCardCount is returned when the number of cards passed to an
	// indexing operation does not match what the deck declares for that
	// round.
	ErrWrongCardCount Error = "wrong card count for round"
)
