package deck

import "testing"

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "letters",
			input: "7h 8d 9c As",
			expected: []Card{
				{Rank: Seven, Suit: Hearts},
				{Rank: Eight, Suit: Diamonds},
				{Rank: Nine, Suit: Clubs},
				{Rank: Ace, Suit: Spades},
			},
		},
		{
			name:  "symbols and commas",
			input: "10♥,J♦, Q♣",
			expected: []Card{
				{Rank: Ten, Suit: Hearts},
				{Rank: Jack, Suit: Diamonds},
				{Rank: Queen, Suit: Clubs},
			},
		},
		{
			name:  "case insensitive with T for ten",
			input: "tS kH",
			expected: []Card{
				{Rank: Ten, Suit: Spades},
				{Rank: King, Suit: Hearts},
			},
		},
		{
			name:    "rank below deck",
			input:   "5h",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "7x",
			wantErr: true,
		},
		{
			name:    "missing suit",
			input:   "7",
			wantErr: true,
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCards() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !cardsEqual(got, tt.expected) {
				t.Errorf("ParseCards() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMustParseCardsPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParseCards() should panic on invalid input")
		}
	}()
	MustParseCards("invalid")
}

func TestCardString(t *testing.T) {
	tests := map[Card]string{
		NewCard(Six, Hearts):    "6♥",
		NewCard(Ten, Diamonds):  "10♦",
		NewCard(Jack, Clubs):    "J♣",
		NewCard(Ace, Spades):    "A♠",
		{Rank: 3, Suit: Hearts}: "?♥",
	}
	for card, want := range tests {
		if got := card.String(); got != want {
			t.Errorf("%#v.String() = %q, want %q", card, got, want)
		}
	}
}

func TestCardValid(t *testing.T) {
	if !NewCard(Six, Hearts).Valid() || !NewCard(Ace, Spades).Valid() {
		t.Error("deck bounds should be valid")
	}
	for _, c := range []Card{{Rank: 5, Suit: Hearts}, {Rank: 15, Suit: Hearts}, {Rank: Seven, Suit: 4}, {Rank: Seven, Suit: -1}} {
		if c.Valid() {
			t.Errorf("%#v should be invalid", c)
		}
	}
}

func TestCardLess(t *testing.T) {
	if !NewCard(Ace, Hearts).Less(NewCard(Six, Diamonds)) {
		t.Error("suit should order before rank")
	}
	if !NewCard(Six, Clubs).Less(NewCard(Seven, Clubs)) {
		t.Error("rank should order within a suit")
	}
	if NewCard(Seven, Clubs).Less(NewCard(Seven, Clubs)) {
		t.Error("a card is not less than itself")
	}
}

func cardsEqual(a, b []Card) bool {
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
