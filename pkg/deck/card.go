package deck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when parsing text that does not name one of the 52 cards
var ErrInvalidCard = errors.New("invalid card")

// Suit is a suit of a card
type Suit int

// Suit constants
const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits contains all four suits in a fixed order
var Suits = [4]Suit{Clubs, Diamonds, Hearts, Spades}

// String returns the one-letter form of the suit
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	}

	return "?"
}

// constants for face cards
// deuce through ten use their face value
const (
	Jack   = 11
	Queen  = 12
	King   = 13
	Ace    = 14
	LowAce = 1
)

// Card is an individual playing card
// Cards are plain values: compare Rank for strength, == for identity.
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// String returns the two-character form of the card (e.g., "Ah", "Td", "2c")
func (c Card) String() string {
	return rankToChar(c.Rank) + c.Suit.String()
}

// AceLowRank returns the rank with aces counted low
func (c Card) AceLowRank() int {
	if c.Rank == Ace {
		return LowAce
	}

	return c.Rank
}

// MarshalJSON encodes the card as its two-character form
func (c Card) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// UnmarshalJSON decodes a card from its two-character form
func (c *Card) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	card, err := ParseCard(s)
	if err != nil {
		return err
	}

	*c = card
	return nil
}

// ParseCard parses a card from its textual form
// The rank is one of 2-9, T, J, Q, K, A (T may be written "10") and the
// suit is one of c, d, h, s.
func ParseCard(s string) (Card, error) {
	if len(s) < 2 || len(s) > 3 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	rank, err := charToRank(s[:len(s)-1])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	suit, err := charToSuit(s[len(s)-1])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a comma-separated list of cards
func ParseCards(s string) ([]Card, error) {
	if s == "" {
		return []Card{}, nil
	}

	parts := strings.Split(s, ",")
	cards := make([]Card, len(parts))
	for i, part := range parts {
		card, err := ParseCard(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// MustCard parses a card and panics on failure
// Intended for tests and static card lists.
func MustCard(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(err)
	}

	return card
}

// MustCards parses a comma-separated list of cards and panics on failure
// Intended for tests and static card lists.
func MustCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}

	return cards
}

func rankToChar(rank int) string {
	switch {
	case rank >= 2 && rank <= 9:
		return string(rune('0' + rank))
	case rank == 10:
		return "T"
	case rank == Jack:
		return "J"
	case rank == Queen:
		return "Q"
	case rank == King:
		return "K"
	case rank == Ace:
		return "A"
	}

	return "?"
}

func charToRank(s string) (int, error) {
	switch strings.ToUpper(s) {
	case "T", "10":
		return 10, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	case "A":
		return Ace, nil
	}

	if len(s) == 1 && s[0] >= '2' && s[0] <= '9' {
		return int(s[0] - '0'), nil
	}

	return 0, ErrInvalidCard
}

func charToSuit(b byte) (Suit, error) {
	switch b {
	case 'c', 'C':
		return Clubs, nil
	case 'd', 'D':
		return Diamonds, nil
	case 'h', 'H':
		return Hearts, nil
	case 's', 'S':
		return Spades, nil
	}

	return 0, ErrInvalidCard
}
