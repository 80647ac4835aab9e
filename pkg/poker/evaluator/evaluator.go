// Package evaluator scores poker hands. Five scores exactly five cards and
// Seven scores the best five-card hand within seven. Scores are HandValues
// and compare directly: the greater value is the stronger hand.
package evaluator

import (
	"errors"
	"fmt"

	"nolimitholdem-server/pkg/deck"
)

// ErrWrongCardCount is returned when the input has the wrong number of cards
var ErrWrongCardCount = errors.New("wrong number of cards")

// ErrDuplicateCard is returned when the input contains the same card twice
var ErrDuplicateCard = errors.New("duplicate card")

// Five evaluates exactly five distinct cards
func Five(cards []deck.Card) (HandValue, error) {
	if err := validate(cards, 5); err != nil {
		return 0, err
	}

	return evaluate(cards), nil
}

// Seven evaluates the best five-card hand from exactly seven distinct cards
func Seven(cards []deck.Card) (HandValue, error) {
	if err := validate(cards, 7); err != nil {
		return 0, err
	}

	return evaluate(cards), nil
}

func validate(cards []deck.Card, want int) error {
	if len(cards) != want {
		return fmt.Errorf("%w: want %d, got %d", ErrWrongCardCount, want, len(cards))
	}

	for i, a := range cards {
		for _, b := range cards[i+1:] {
			if a == b {
				return fmt.Errorf("%w: %s", ErrDuplicateCard, a)
			}
		}
	}

	return nil
}

// evaluate scores five or seven distinct cards. For seven cards the result
// equals the maximum over all five-card subsets; tests hold it to that
// baseline (see enumerate).
func evaluate(cards []deck.Card) HandValue {
	var counts [15]int8
	var rankMask uint16
	var suitMasks [4]uint16
	var suitCounts [4]int8

	for _, c := range cards {
		counts[c.Rank]++
		rankMask |= 1 << uint(c.Rank)
		suitMasks[c.Suit] |= 1 << uint(c.Rank)
		suitCounts[c.Suit]++
	}

	flushSuit := -1
	for s, n := range suitCounts {
		if n >= 5 {
			flushSuit = s
		}
	}

	if flushSuit >= 0 {
		if high := straightHigh(suitMasks[flushSuit]); high != 0 {
			return newHandValue(StraightFlush, high)
		}
	}

	// group ranks by multiplicity, strongest first
	var quad, trips int
	var pairs, singles []int
	for rank := deck.Ace; rank >= 2; rank-- {
		switch counts[rank] {
		case 4:
			quad = rank
		case 3:
			if trips == 0 {
				trips = rank
			} else {
				// a second set can only fill the pair slot
				pairs = append(pairs, rank)
			}
		case 2:
			pairs = append(pairs, rank)
		case 1:
			singles = append(singles, rank)
		}
	}

	if quad != 0 {
		kicker := 0
		for rank := deck.Ace; rank >= 2; rank-- {
			if rank != quad && counts[rank] > 0 {
				kicker = rank
				break
			}
		}

		return newHandValue(FourOfAKind, quad, kicker)
	}

	if trips != 0 && len(pairs) > 0 {
		return newHandValue(FullHouse, trips, pairs[0])
	}

	if flushSuit >= 0 {
		return newHandValue(Flush, topRanks(suitMasks[flushSuit], 5)...)
	}

	if high := straightHigh(rankMask); high != 0 {
		return newHandValue(Straight, high)
	}

	if trips != 0 {
		return newHandValue(ThreeOfAKind, trips, singles[0], singles[1])
	}

	if len(pairs) >= 2 {
		kicker := 0
		if len(singles) > 0 {
			kicker = singles[0]
		}
		// with three pairs the lowest pair only contributes a kicker card
		if len(pairs) > 2 && pairs[2] > kicker {
			kicker = pairs[2]
		}

		return newHandValue(TwoPair, pairs[0], pairs[1], kicker)
	}

	if len(pairs) == 1 {
		return newHandValue(Pair, pairs[0], singles[0], singles[1], singles[2])
	}

	return newHandValue(HighCard, singles[:5]...)
}

// straightHigh returns the high rank of the best straight in the rank
// bitmask, or 0 if there is none. The wheel (A-2-3-4-5) counts as five-high.
func straightHigh(rankMask uint16) int {
	const run = 0x1f // five consecutive ranks

	for high := deck.Ace; high >= 6; high-- {
		if rankMask>>(uint(high)-4)&run == run {
			return high
		}
	}

	const wheel = 1<<deck.Ace | 1<<5 | 1<<4 | 1<<3 | 1<<2
	if rankMask&wheel == wheel {
		return 5
	}

	return 0
}

// topRanks returns the n highest ranks set in the mask, descending
func topRanks(rankMask uint16, n int) []int {
	ranks := make([]int, 0, n)
	for rank := deck.Ace; rank >= 2 && len(ranks) < n; rank-- {
		if rankMask&(1<<uint(rank)) != 0 {
			ranks = append(ranks, rank)
		}
	}

	return ranks
}

// sevenChooseFive holds every way to pick five of seven card positions
var sevenChooseFive = buildSevenChooseFive()

func buildSevenChooseFive() [21][5]int {
	var combos [21][5]int
	n := 0
	for a := 0; a < 3; a++ {
		for b := a + 1; b < 4; b++ {
			for c := b + 1; c < 5; c++ {
				for d := c + 1; d < 6; d++ {
					for e := d + 1; e < 7; e++ {
						combos[n] = [5]int{a, b, c, d, e}
						n++
					}
				}
			}
		}
	}

	return combos
}

// enumerate scores seven cards by evaluating all 21 five-card subsets.
// It is the reference for evaluate and is kept for tests and benchmarks.
func enumerate(cards []deck.Card) HandValue {
	var best HandValue
	var five [5]deck.Card
	for _, combo := range sevenChooseFive {
		for i, idx := range combo {
			five[i] = cards[idx]
		}

		if v := evaluate(five[:]); v > best {
			best = v
		}
	}

	return best
}
