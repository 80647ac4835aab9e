package deck

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"math/rand"
)

// ErrEmptyDeck is returned when drawing from an exhausted deck
var ErrEmptyDeck = errors.New("deck is empty")

// Deck is a deck of cards
type Deck struct {
	Cards []Card
}

// New returns a new 52-card deck in a fixed order
// Call Shuffle before dealing.
func New() *Deck {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}

	return &Deck{Cards: cards}
}

// Stacked returns a deck that deals the given cards in order
// Intended for tests and scripted hands.
func Stacked(cards ...Card) *Deck {
	c := make([]Card, len(cards))
	copy(c, cards)
	return &Deck{Cards: c}
}

// Shuffle will shuffle the deck using the given seed
func (d *Deck) Shuffle(seed int64) {
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Draw will draw the top card from the deck
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) == 0 {
		return Card{}, ErrEmptyDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]
	return card, nil
}

// CanDraw returns true if there are at least n cards left
func (d *Deck) CanDraw(n int) bool {
	return len(d.Cards) >= n
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// HashCode returns a hash of the current deck order
func (d *Deck) HashCode() string {
	h := sha256.New()
	for _, c := range d.Cards {
		h.Write([]byte(c.String()))
	}

	return hex.EncodeToString(h.Sum(nil))
}
