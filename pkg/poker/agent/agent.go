// Package agent provides decision-makers that can play seats at a hold'em
// table: a calling station, a random player, and a configurable bot.
package agent

import (
	"nolimitholdem-server/pkg/deck"
	"nolimitholdem-server/pkg/poker/holdem"
)

// Agent produces one action for a seat on the clock. Implementations see
// only the public table state plus their own hole cards.
type Agent interface {
	Act(state *holdem.State, seat int, hole deck.Hand) holdem.Action
}

// Caller calls any bet and otherwise checks
type Caller struct{}

// Act implements Agent
func (Caller) Act(state *holdem.State, seat int, hole deck.Hand) holdem.Action {
	if state.ToCall(seat) > 0 {
		return holdem.Call()
	}

	return holdem.Check()
}

// Folder folds to any bet and otherwise checks
type Folder struct{}

// Act implements Agent
func (Folder) Act(state *holdem.State, seat int, hole deck.Hand) holdem.Action {
	if state.ToCall(seat) > 0 {
		return holdem.Fold()
	}

	return holdem.Check()
}
