package deck

import "strings"

// Hand is a collection of cards
type Hand []Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// HasCard returns true if the card is in the hand
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c == card {
			return true
		}
	}

	return false
}

// Clone returns a copy of the hand
func (h Hand) Clone() Hand {
	if h == nil {
		return nil
	}

	clone := make(Hand, len(h))
	copy(clone, h)
	return clone
}

// String returns a comma-separated list of the cards
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}

	return strings.Join(parts, ",")
}
