package holdem

import (
	"fmt"
	"strings"
)

// ActionType identifies a betting decision
type ActionType int

// ActionType constants
const (
	ActionFold ActionType = iota
	ActionCheck
	ActionCall
	ActionBet
	ActionRaise
	ActionAllIn
)

// String returns the name of the action type
func (t ActionType) String() string {
	switch t {
	case ActionFold:
		return "fold"
	case ActionCheck:
		return "check"
	case ActionCall:
		return "call"
	case ActionBet:
		return "bet"
	case ActionRaise:
		return "raise"
	case ActionAllIn:
		return "all-in"
	}

	return "unknown"
}

// MarshalJSON encodes the action type as its name
func (t ActionType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON decodes an action type from its name
func (t *ActionType) UnmarshalJSON(data []byte) error {
	parsed, err := ParseActionType(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

// ParseActionType parses an action type name
func ParseActionType(s string) (ActionType, error) {
	for t := ActionFold; t <= ActionAllIn; t++ {
		if t.String() == strings.ToLower(s) {
			return t, nil
		}
	}

	return 0, fmt.Errorf("unknown action %q", s)
}

// Action is a single decision by the seat on the clock.
// Amount is the total wagered for the street: for a bet it is the bet size,
// for a raise it is the raise-to total. Fold, check, call, and all-in
// ignore Amount.
type Action struct {
	Type   ActionType `json:"type"`
	Amount int        `json:"amount,omitempty"`
}

// String returns a human-readable form of the action
func (a Action) String() string {
	switch a.Type {
	case ActionBet, ActionRaise:
		return fmt.Sprintf("%s %d", a.Type, a.Amount)
	}

	return a.Type.String()
}

// Fold returns a fold action
func Fold() Action { return Action{Type: ActionFold} }

// Check returns a check action
func Check() Action { return Action{Type: ActionCheck} }

// Call returns a call action
func Call() Action { return Action{Type: ActionCall} }

// Bet returns a bet action for the given street total
func Bet(amount int) Action { return Action{Type: ActionBet, Amount: amount} }

// Raise returns a raise action to the given street total
func Raise(to int) Action { return Action{Type: ActionRaise, Amount: to} }

// AllIn returns an all-in action
func AllIn() Action { return Action{Type: ActionAllIn} }
