package holdem

// eventType labels a hand history entry
type eventType string

// Event labels
const (
	eventSmallBlind eventType = "small-blind"
	eventBigBlind   eventType = "big-blind"
	eventFold       eventType = "fold"
	eventCheck      eventType = "check"
	eventCall       eventType = "call"
	eventBet        eventType = "bet"
	eventRaise      eventType = "raise"
	eventAllIn      eventType = "all-in"
	eventWin        eventType = "win"
)

// Event is one entry in a hand's history
type Event struct {
	Seat   int       `json:"seat"`
	Type   eventType `json:"type"`
	Amount int       `json:"amount"`
	Street Street    `json:"street"`
}
