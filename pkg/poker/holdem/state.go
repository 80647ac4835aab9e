package holdem

import "nolimitholdem-server/pkg/deck"

// SeatState is the public view of one seat
type SeatState struct {
	Seat   int    `json:"seat"`
	Stack  int    `json:"stack"`
	Bet    int    `json:"bet"`
	Status Status `json:"status"`
}

// State is the public view of the table: everything every player may see.
// Hole cards are not included; they come from HoleCards for the owning seat.
type State struct {
	Street     Street      `json:"street"`
	Board      deck.Hand   `json:"board"`
	Pots       []Pot       `json:"pots"`
	Seats      []SeatState `json:"seats"`
	Dealer     int         `json:"dealer"`
	Current    int         `json:"current"`
	CurrentBet int         `json:"currentBet"`
	MinRaise   int         `json:"minRaise"`
	Results    []Result    `json:"results,omitempty"`
}

// State returns a snapshot of the public game state
func (g *Game) State() *State {
	seats := make([]SeatState, len(g.players))
	for i, p := range g.players {
		seats[i] = SeatState{
			Seat:   p.seat,
			Stack:  p.stack,
			Bet:    p.bet,
			Status: p.status,
		}
	}

	return &State{
		Street:     g.street,
		Board:      g.board.Clone(),
		Pots:       g.Pots(),
		Seats:      seats,
		Dealer:     g.dealer,
		Current:    g.current,
		CurrentBet: g.currentBet,
		MinRaise:   g.minRaise,
		Results:    g.Results(),
	}
}

// ToCall returns the chips the seat owes to match the current bet,
// capped at its stack
func (s *State) ToCall(seat int) int {
	owed := s.CurrentBet - s.Seats[seat].Bet
	return max(0, min(owed, s.Seats[seat].Stack))
}

// MinRaiseTo returns the smallest street total a full raise must reach
func (s *State) MinRaiseTo() int {
	return s.CurrentBet + s.MinRaise
}
