package holdem

import (
	"errors"
	"fmt"
)

// ErrOutOfTurn is returned when a seat acts out of turn
var ErrOutOfTurn = errors.New("not this seat's turn")

// ErrHandInProgress is returned when a new hand is dealt mid-hand
var ErrHandInProgress = errors.New("hand is in progress")

// ErrNotEnoughPlayers is returned when fewer than two seats have chips
var ErrNotEnoughPlayers = errors.New("not enough players with chips")

// IllegalActionError reports an action the betting rules do not allow.
// The game state is unchanged after a rejected action.
type IllegalActionError struct {
	Action ActionType
	Reason string
}

// Error implements the error interface
func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("illegal %s: %s", e.Action, e.Reason)
}

func newIllegalAction(action ActionType, format string, args ...interface{}) *IllegalActionError {
	return &IllegalActionError{
		Action: action,
		Reason: fmt.Sprintf(format, args...),
	}
}
