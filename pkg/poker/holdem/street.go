package holdem

// Street tracks the phase of a hand
type Street int

// Street constants, in hand order
const (
	StreetDealing Street = iota
	StreetPreFlop
	StreetFlop
	StreetTurn
	StreetRiver
	StreetShowdown
	StreetSettled
)

// String returns the name of the street
func (s Street) String() string {
	switch s {
	case StreetDealing:
		return "dealing"
	case StreetPreFlop:
		return "pre-flop"
	case StreetFlop:
		return "flop"
	case StreetTurn:
		return "turn"
	case StreetRiver:
		return "river"
	case StreetShowdown:
		return "showdown"
	case StreetSettled:
		return "settled"
	}

	return "unknown"
}

// MarshalJSON encodes the street as its name
func (s Street) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// isBetting returns true if the street has a betting round
func (s Street) isBetting() bool {
	return s >= StreetPreFlop && s <= StreetRiver
}
