package isomorphism

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser renders the title-cased labels used by [Deck.Describe] and
// [Indexer.ConfigDescription], using Unicode-aware case folding rather than
// the deprecated strings.Title.
var titleCaser = cases.Title(language.AmericanEnglish)

// Describe renders a human-readable summary of the deck's shape: ranks,
// suits, rounds, and how many cards each round deals. It is diagnostic
// output only, never consulted by [NewIndexer] or the indexing driver.
func (d *Deck) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d ranks, %d suits, %d round", d.numRanks, d.numSuits, d.NumRounds())
	if d.NumRounds() != 1 {
		b.WriteByte('s')
	}
	for r, n := range d.cardsPerRound {
		fmt.Fprintf(&b, "; round %d deals %d card", r, n)
		if n != 1 {
			b.WriteByte('s')
		}
	}
	return titleCaser.String(b.String())
}

// ConfigDescription renders a human-readable summary of one canonical suit
// configuration at round: its interchangeable-suit groups and how many
// cards each group's suits hold.
func (ix *Indexer) ConfigDescription(round, i int) (string, error) {
	if round < 0 || len(ix.configs) <= round {
		return "", ErrRoundOutOfRange
	}
	if i < 0 || len(ix.configs[round]) <= i {
		return "", ErrIndexOutOfRange
	}
	cfg := ix.configs[round][i]
	parts := make([]string, 0, len(cfg.groups))
	for _, g := range cfg.groups {
		suitWord := "suit"
		if g.size != 1 {
			suitWord = "suits"
		}
		cardWord := "card"
		if g.lastCum() != 1 {
			cardWord = "cards"
		}
		parts = append(parts, fmt.Sprintf("%d %s holding %d %s", g.size, suitWord, g.lastCum(), cardWord))
	}
	raw := cfg.counts()
	counts := make([]string, len(raw))
	for j, n := range raw {
		counts[j] = fmt.Sprintf("%d", n)
	}
	return titleCaser.String(fmt.Sprintf("round %d configuration %d: %s (per-suit counts %s)",
		round, i, strings.Join(parts, ", "), strings.Join(counts, ","))), nil
}
