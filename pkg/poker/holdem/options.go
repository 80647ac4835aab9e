package holdem

import "errors"

// Options configures a game
type Options struct {
	// SmallBlind is posted by the seat left of the dealer (the dealer when heads-up)
	SmallBlind int
	// BigBlind is posted by the seat left of the small blind
	BigBlind int
	// Seed makes the whole run of hands reproducible; each hand still
	// shuffles a fresh deck. 0 draws a random seed.
	Seed int64
}

// DefaultOptions returns the default game options
func DefaultOptions() Options {
	return Options{
		SmallBlind: 25,
		BigBlind:   50,
	}
}

func validateOptions(opts Options) error {
	if opts.SmallBlind <= 0 {
		return errors.New("small blind must be greater than zero")
	}

	if opts.BigBlind < opts.SmallBlind {
		return errors.New("big blind cannot be less than the small blind")
	}

	return nil
}
