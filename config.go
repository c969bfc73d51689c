package isomorphism

import "sort"

// group is one equivalence class of suits within a [configuration]: a set
// of suits that have held an identical sequence of per-round cumulative
// card counts since round 0, and are therefore mutually interchangeable.
type group struct {
	size     int    // number of suits in this class
	cums     []int  // cumulative card count per round, through the round this group exists at
	suitSize uint64 // count of distinct rankset histories available to one suit in this class
}

// lastCum returns the group's cumulative count through its most recent
// round, 0 if the group has no history yet (the round-(-1) root group).
func (g group) lastCum() int {
	if len(g.cums) == 0 {
		return 0
	}
	return g.cums[len(g.cums)-1]
}

// configuration is one canonical suit configuration at a given round: an
// ordered list of groups, plus the block size and offset the indexing
// driver uses to place hands within the round's index space.
//
// Which suits tie for equal size is not stored as a separate bitmask: it
// falls directly out of groups[i].size > 1 for each group.
type configuration struct {
	groups    []group
	blockSize uint64 // size of this configuration's index block
	offset    uint64 // prefix-sum base within the round's index space
}

// counts returns the full per-suit cumulative-count vector for this
// configuration's suits in canonical order. Used by [Indexer.ConfigDescription];
// not on the indexing hot path.
func (c *configuration) counts() []int {
	var out []int
	for _, g := range c.groups {
		for i := 0; i < g.size; i++ {
			out = append(out, g.lastCum())
		}
	}
	return out
}

// buildConfigurations enumerates, for every round, the canonical suit
// configurations and the block-size/offset tables derived from them. It
// returns, per round, the configuration list and a lookup map from a
// canonical group-shape key (see [shapeKey]) to that configuration's index
// -- used by the indexing driver to find, in O(1) amortized, which
// configuration a concrete hand's sorted suit histories belong to.
//
// This collapses a two-pass count-then-tabulate construction into one pass:
// Go slices grow on demand, so there is no need to count configurations
// before allocating storage for them the way a fixed-size-array approach
// would. The three conceptual steps -- enumerate, tabulate suit sizes,
// prefix-sum offsets -- remain distinct below.
func buildConfigurations(deck *Deck) ([][]configuration, []map[string]int) {
	numRounds := deck.NumRounds()
	numRanks := deck.NumRanks()
	cardsPerRound := deck.CardsPerRound()

	// The round-(-1) root: a single group holding all suits, no history, and
	// exactly one (empty) rankset history per suit so far -- suitSize starts
	// at the multiplicative identity, not its zero value.
	parents := [][]group{{{size: deck.NumSuits(), suitSize: 1}}}

	configs := make([][]configuration, numRounds)
	keys := make([]map[string]int, numRounds)

	for r := 0; r < numRounds; r++ {
		var round []configuration
		roundKeys := make(map[string]int)
		for _, parent := range parents {
			for _, childGroups := range distributeRound(parent, cardsPerRound[r], numRanks) {
				blockSize := uint64(1)
				for _, g := range childGroups {
					blockSize *= multichoose(g.suitSize, uint64(g.size))
				}
				key := shapeKey(childGroups)
				if _, dup := roundKeys[key]; dup {
					// Unreachable by construction (distinct group shapes
					// yield distinct keys), kept as a defensive guard.
					continue
				}
				roundKeys[key] = len(round)
				round = append(round, configuration{groups: childGroups, blockSize: blockSize})
			}
		}
		// Prefix-sum block sizes into offsets, done here in place rather
		// than overwriting a shared array the way a fixed-size-array
		// approach would.
		var offset uint64
		for i := range round {
			round[i].offset = offset
			offset += round[i].blockSize
		}
		configs[r] = round
		keys[r] = roundKeys
		next := make([][]group, len(round))
		for i, cfg := range round {
			next[i] = cfg.groups
		}
		parents = next
	}
	return configs, keys
}

// distributeRound enumerates every way of distributing total new cards
// across parents (the prior round's groups), respecting each group's
// remaining-rank cap, and splitting each group non-increasingly among its
// own suits. It returns one []group per resulting child configuration.
func distributeRound(parents []group, total, numRanks int) [][]group {
	return distributeGroups(parents, 0, total, numRanks, nil)
}

func distributeGroups(parents []group, idx, remaining, numRanks int, acc []group) [][]group {
	if idx == len(parents) {
		if remaining == 0 {
			out := make([]group, len(acc))
			copy(out, acc)
			return [][]group{out}
		}
		return nil
	}
	p := parents[idx]
	limit := numRanks - p.lastCum()
	maxA := p.size * limit
	if remaining < maxA {
		maxA = remaining
	}
	var results [][]group
	for a := 0; a <= maxA; a++ {
		for _, part := range nonIncreasingPartitions(a, p.size, limit) {
			sub := splitByValue(part, p, limit)
			next := make([]group, len(acc)+len(sub))
			copy(next, acc)
			copy(next[len(acc):], sub)
			results = append(results, distributeGroups(parents, idx+1, remaining-a, numRanks, next)...)
		}
	}
	return results
}

// splitByValue merges consecutive equal values in the non-increasing
// partition part (all drawn from parent group p) into new sub-groups: two
// suits that get dealt the same number of new cards, on top of an already
// identical history, remain interchangeable.
func splitByValue(part []int, p group, limit int) []group {
	var out []group
	i := 0
	for i < len(part) {
		j := i
		for j < len(part) && part[j] == part[i] {
			j++
		}
		v := part[i]
		cums := make([]int, len(p.cums)+1)
		copy(cums, p.cums)
		cums[len(p.cums)] = p.lastCum() + v
		out = append(out, group{
			size:     j - i,
			cums:     cums,
			suitSize: p.suitSize * binom(limit, v),
		})
		i = j
	}
	return out
}

// nonIncreasingPartitions returns every partition of total into exactly n
// non-negative parts, sorted non-increasing, each part no larger than
// limit.
func nonIncreasingPartitions(total, n, limit int) [][]int {
	return partitionsBounded(total, n, limit, limit)
}

// partitionsBounded is the recursive worker: parts must additionally be no
// larger than maxPart, which keeps the sequence non-increasing.
func partitionsBounded(total, n, maxPart, limit int) [][]int {
	if n == 0 {
		if total == 0 {
			return [][]int{{}}
		}
		return nil
	}
	hi := maxPart
	if limit < hi {
		hi = limit
	}
	if total < hi {
		hi = total
	}
	lo := (total + n - 1) / n // ceil(total/n): smallest feasible leading part
	var out [][]int
	for part := hi; part >= lo; part-- {
		for _, rest := range partitionsBounded(total-part, n-1, part, limit) {
			row := make([]int, 0, n)
			row = append(row, part)
			row = append(row, rest...)
			out = append(out, row)
		}
	}
	return out
}

// shapeKey renders a canonical, order-preserving key for a list of groups,
// used both to populate buildConfigurations's lookup maps and, via
// [historyKey], to look a concrete hand's sorted suit histories up against
// them. Two group lists produce the same key iff they have the same
// sequence of (size, cumulative-history) pairs.
func shapeKey(groups []group) string {
	buf := make([]byte, 0, 16*len(groups))
	for _, g := range groups {
		buf = append(buf, byte(g.size), byte(len(g.cums)))
		for _, c := range g.cums {
			buf = append(buf, byte(c))
		}
		buf = append(buf, '|')
	}
	return string(buf)
}

// historyKey groups consecutive equal histories in sortedHistories (which
// must already be sorted descending, see [sortSuitsCanonically]) and
// renders the same key format as [shapeKey], so the two can be compared
// directly for table lookup.
func historyKey(sortedHistories [][]int) string {
	buf := make([]byte, 0, 16*len(sortedHistories))
	i := 0
	for i < len(sortedHistories) {
		j := i
		for j < len(sortedHistories) && intSliceEqual(sortedHistories[j], sortedHistories[i]) {
			j++
		}
		h := sortedHistories[i]
		buf = append(buf, byte(j-i), byte(len(h)))
		for _, c := range h {
			buf = append(buf, byte(c))
		}
		buf = append(buf, '|')
		i = j
	}
	return string(buf)
}

func intSliceEqual(a, b []int) bool {
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

// sortSuitsCanonically sorts suit indices [0,len(histories)) descending by
// their cumulative-count history (lexicographic, most recent round last),
// the canonical ordering the indexing driver requires ("cumcount
// descending"). Ties (identical full histories) keep their relative order,
// so callers that need a further tie-break (e.g. by current-round rankset
// colex) can stable-sort the already-tied runs afterward.
func sortSuitsCanonically(histories [][]int) []int {
	order := make([]int, len(histories))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return historyGreater(histories[order[i]], histories[order[j]])
	})
	return order
}

// historyGreater reports whether history a sorts strictly before history b
// in the descending canonical order, i.e. whether a > b lexicographically.
func historyGreater(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	return false
}
