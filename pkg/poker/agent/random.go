package agent

import (
	"nolimitholdem-server/internal/rng"
	"nolimitholdem-server/pkg/deck"
	"nolimitholdem-server/pkg/poker/holdem"
)

// Random plays a loose, unpredictable game. It never folds when checking
// is free.
type Random struct {
	r rng.Generator
}

// NewRandom returns a Random agent drawing from the given source
func NewRandom(r rng.Generator) *Random {
	return &Random{r: r}
}

// Act implements Agent
func (a *Random) Act(state *holdem.State, seat int, hole deck.Hand) holdem.Action {
	toCall := state.ToCall(seat)

	if toCall == 0 {
		switch a.r.Intn(10) {
		case 0, 1, 2:
			if state.CurrentBet == 0 {
				return openBet(state, seat, state.MinRaise*(1+a.r.Intn(3)))
			}
			return raiseTo(state, seat, state.MinRaiseTo())
		default:
			return holdem.Check()
		}
	}

	switch a.r.Intn(10) {
	case 0, 1:
		return holdem.Fold()
	case 2:
		return raiseTo(state, seat, state.MinRaiseTo())
	case 3:
		return holdem.AllIn()
	default:
		return holdem.Call()
	}
}

// openBet bets the amount, going all-in when it covers the stack
func openBet(state *holdem.State, seat, amount int) holdem.Action {
	if amount >= maxTotal(state, seat) {
		return holdem.AllIn()
	}

	return holdem.Bet(amount)
}

// raiseTo raises to the street total, going all-in when it covers the stack
func raiseTo(state *holdem.State, seat, to int) holdem.Action {
	if to >= maxTotal(state, seat) {
		return holdem.AllIn()
	}

	return holdem.Raise(to)
}

func maxTotal(state *holdem.State, seat int) int {
	return state.Seats[seat].Stack + state.Seats[seat].Bet
}
