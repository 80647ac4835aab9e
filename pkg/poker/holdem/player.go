package holdem

import "nolimitholdem-server/pkg/deck"

// Status is a seat's standing in the current hand
type Status int

// Status constants
const (
	// StatusActive can still act this hand
	StatusActive Status = iota
	// StatusFolded surrendered the hand
	StatusFolded
	// StatusAllIn has no chips behind but contests the pot
	StatusAllIn
	// StatusOut has no chips and is not dealt in
	StatusOut
)

// String returns the name of the status
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusFolded:
		return "folded"
	case StatusAllIn:
		return "all-in"
	case StatusOut:
		return "out"
	}

	return "unknown"
}

// MarshalJSON encodes the status as its name
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// player tracks one seat's chips and cards over a single hand
type player struct {
	seat        int
	stack       int
	bet         int // wagered this street
	contributed int // wagered this hand
	status      Status
	hole        deck.Hand
	acted       bool
	canRaise    bool
}

// inHand returns true if the seat still contests the pot
func (p *player) inHand() bool {
	return p.status == StatusActive || p.status == StatusAllIn
}

// wager moves chips from the stack until the street total reaches target,
// or the stack runs dry
func (p *player) wager(target int) int {
	amount := min(target-p.bet, p.stack)
	p.stack -= amount
	p.bet += amount
	p.contributed += amount
	if p.stack == 0 {
		p.status = StatusAllIn
	}

	return amount
}

// maxTotal is the largest street total the seat can reach
func (p *player) maxTotal() int {
	return p.bet + p.stack
}
