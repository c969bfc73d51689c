package isomorphism

import "testing"

func TestNewDeckScenarios(t *testing.T) {
	tests := []struct {
		name          string
		numRanks      int
		numSuits      int
		private       []int
		public        []int
		cardsPerRound []int
		cumPerRound   []int
		size          int
	}{
		{
			name:          "kuhn",
			numRanks:      3,
			numSuits:      1,
			private:       []int{1, 1},
			public:        []int{0},
			cardsPerRound: []int{1},
			cumPerRound:   []int{1},
			size:          3,
		},
		{
			name:          "leduc",
			numRanks:      3,
			numSuits:      2,
			private:       []int{1, 1},
			public:        []int{0, 1},
			cardsPerRound: []int{1, 1},
			cumPerRound:   []int{1, 2},
			size:          6,
		},
		{
			name:          "texas hold'em",
			numRanks:      13,
			numSuits:      4,
			private:       []int{2, 2},
			public:        []int{0, 3, 1, 1},
			cardsPerRound: []int{2, 3, 1, 1},
			cumPerRound:   []int{2, 5, 6, 7},
			size:          52,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d, err := NewDeck(test.numRanks, test.numSuits, test.private, test.public)
			if err != nil {
				t.Fatalf("NewDeck: unexpected error: %v", err)
			}
			if got := d.NumRanks(); got != test.numRanks {
				t.Errorf("NumRanks() = %d, want %d", got, test.numRanks)
			}
			if got := d.NumSuits(); got != test.numSuits {
				t.Errorf("NumSuits() = %d, want %d", got, test.numSuits)
			}
			if got := d.NumRounds(); got != len(test.public) {
				t.Errorf("NumRounds() = %d, want %d", got, len(test.public))
			}
			if got := d.Size(); got != test.size {
				t.Errorf("Size() = %d, want %d", got, test.size)
			}
			if got := d.CardsPerRound(); !intsEqual(got, test.cardsPerRound) {
				t.Errorf("CardsPerRound() = %v, want %v", got, test.cardsPerRound)
			}
			if got := d.CumulativeCardsPerRound(); !intsEqual(got, test.cumPerRound) {
				t.Errorf("CumulativeCardsPerRound() = %v, want %v", got, test.cumPerRound)
			}
			for r := range test.cardsPerRound {
				if got := d.CardsOnRound(r); got != test.cardsPerRound[r] {
					t.Errorf("CardsOnRound(%d) = %d, want %d", r, got, test.cardsPerRound[r])
				}
				if got := d.CumulativeCardsThroughRound(r); got != test.cumPerRound[r] {
					t.Errorf("CumulativeCardsThroughRound(%d) = %d, want %d", r, got, test.cumPerRound[r])
				}
			}
			expPrivateTotal := 0
			for _, n := range test.private {
				expPrivateTotal += n
			}
			if got := d.PrivateCardCount(); got != expPrivateTotal {
				t.Errorf("PrivateCardCount() = %d, want %d", got, expPrivateTotal)
			}
		})
	}
}

func TestNewDeckErrors(t *testing.T) {
	tests := []struct {
		name     string
		numRanks int
		numSuits int
		private  []int
		public   []int
	}{
		{"ranks zero", 0, 4, []int{2}, []int{0}},
		{"ranks too big", MaxRanks + 1, 4, []int{2}, []int{0}},
		{"suits zero", 13, 0, []int{2}, []int{0}},
		{"suits too big", 13, MaxSuits + 1, []int{2}, []int{0}},
		{"no rounds", 13, 4, []int{2}, nil},
		{"too many rounds", 13, 4, []int{2}, make([]int, MaxRounds+1)},
		{"negative private", 13, 4, []int{-1}, []int{0}},
		{"mismatched private counts", 13, 4, []int{2, 3}, []int{0}},
		{"negative public", 13, 4, []int{2}, []int{-1}},
		{"too many cards dealt", 3, 1, []int{2, 2}, []int{0}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := NewDeck(test.numRanks, test.numSuits, test.private, test.public); err != ErrInvalidDeck {
				t.Errorf("NewDeck(%s) error = %v, want %v", test.name, err, ErrInvalidDeck)
			}
		})
	}
}

func TestDeckPrivatePublicCardsCopies(t *testing.T) {
	d, err := NewDeck(13, 4, []int{2, 2}, []int{0, 3, 1, 1})
	if err != nil {
		t.Fatalf("NewDeck: unexpected error: %v", err)
	}
	priv := d.PrivateCards()
	priv[0] = 99
	if d.PrivateCards()[0] == 99 {
		t.Errorf("PrivateCards() leaked internal slice")
	}
	pub := d.PublicCards()
	pub[0] = 99
	if d.PublicCards()[0] == 99 {
		t.Errorf("PublicCards() leaked internal slice")
	}
}

func intsEqual(a, b []int) bool {
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
