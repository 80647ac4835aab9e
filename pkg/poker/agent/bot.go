package agent

import (
	"fmt"
	"strings"

	"nolimitholdem-server/internal/rng"
	"nolimitholdem-server/pkg/deck"
	"nolimitholdem-server/pkg/poker/evaluator"
	"nolimitholdem-server/pkg/poker/holdem"
)

// Difficulty selects a bot profile preset
type Difficulty int

// Difficulty constants
const (
	Easy Difficulty = iota
	Medium
	Hard
)

// ParseDifficulty parses a difficulty name
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(s) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}

	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// Profile shapes a bot's decisions. All knobs run 0 to 1.
type Profile struct {
	// Tightness raises the strength needed to put chips in
	Tightness float64
	// Aggression turns calls into raises
	Aggression float64
	// Bluff is how often the bot applies pressure with nothing
	Bluff float64
}

// ProfileFor returns the preset profile for the difficulty
func ProfileFor(d Difficulty) Profile {
	switch d {
	case Easy:
		return Profile{Tightness: 0.2, Aggression: 0.2, Bluff: 0.1}
	case Hard:
		return Profile{Tightness: 0.6, Aggression: 0.6, Bluff: 0.2}
	}

	return Profile{Tightness: 0.4, Aggression: 0.4, Bluff: 0.15}
}

// Bot plays by hand strength, shaped by its profile and position
type Bot struct {
	profile Profile
	r       rng.Generator
}

// NewBot returns a bot with the given profile
func NewBot(profile Profile, r rng.Generator) *Bot {
	return &Bot{profile: profile, r: r}
}

// Act implements Agent
func (b *Bot) Act(state *holdem.State, seat int, hole deck.Hand) holdem.Action {
	strength := b.strength(state, hole)
	strength += b.positionBonus(state, seat)

	toCall := state.ToCall(seat)
	threshold := 0.25 + b.profile.Tightness*0.4

	if toCall == 0 {
		// free to see the next card; bet only with a hand or a bluff
		if strength > threshold+0.15 || b.roll(b.profile.Bluff) {
			if b.roll(b.profile.Aggression + 0.3) {
				return b.openOrRaise(state, seat)
			}
		}

		return holdem.Check()
	}

	// scale the bar with the price: big bets need big hands
	price := float64(toCall) / float64(state.CurrentBet+potTotal(state))
	bar := threshold + price*0.3

	switch {
	case strength >= bar+0.25 && b.roll(b.profile.Aggression):
		return b.openOrRaise(state, seat)
	case strength >= bar:
		return holdem.Call()
	case b.roll(b.profile.Bluff / 2):
		return b.openOrRaise(state, seat)
	}

	return holdem.Fold()
}

func (b *Bot) openOrRaise(state *holdem.State, seat int) holdem.Action {
	if state.CurrentBet == 0 {
		return openBet(state, seat, state.MinRaise*(2+b.r.Intn(2)))
	}

	return raiseTo(state, seat, state.MinRaiseTo())
}

// strength scores the hand from 0 to 1
func (b *Bot) strength(state *holdem.State, hole deck.Hand) float64 {
	if len(state.Board) == 0 {
		return preflopStrength(hole)
	}

	return madeHandStrength(hole, state.Board)
}

// positionBonus loosens up late position
func (b *Bot) positionBonus(state *holdem.State, seat int) float64 {
	n := len(state.Seats)
	fromButton := (seat - state.Dealer + n) % n
	if fromButton == 0 || fromButton == n-1 {
		return 0.05
	}

	if fromButton <= n/3 {
		return -0.05
	}

	return 0
}

func (b *Bot) roll(chance float64) bool {
	return b.r.Intn(1000) < int(chance*1000)
}

func potTotal(state *holdem.State) int {
	total := 0
	for _, pot := range state.Pots {
		total += pot.Amount
	}

	return total
}

// preflopStrength scores two hole cards: pairs by rank, otherwise high
// cards with a bonus for suits and connectedness
func preflopStrength(hole deck.Hand) float64 {
	if len(hole) != 2 {
		return 0
	}

	hi, lo := hole[0].Rank, hole[1].Rank
	if lo > hi {
		hi, lo = lo, hi
	}

	if hi == lo {
		return 0.55 + float64(hi-2)/float64(deck.Ace-2)*0.45
	}

	score := float64(hi+lo-4) / float64(2*deck.Ace-4) * 0.45
	if hole[0].Suit == hole[1].Suit {
		score += 0.08
	}

	switch gap := hi - lo; gap {
	case 1:
		score += 0.08
	case 2:
		score += 0.04
	case 3:
		score += 0.02
	}

	return score
}

// madeHandStrength scores the best hand available with the current board
func madeHandStrength(hole deck.Hand, board deck.Hand) float64 {
	value := bestValue(append(hole.Clone(), board...))
	category := float64(value.Category())

	top := 0.0
	if tiebreaks := value.Tiebreaks(); len(tiebreaks) > 0 {
		top = float64(tiebreaks[0]-2) / float64(deck.Ace-2)
	}

	return (category + top) / float64(evaluator.StraightFlush+1)
}

// bestValue evaluates five, six, or seven known cards
func bestValue(cards []deck.Card) evaluator.HandValue {
	switch len(cards) {
	case 5:
		value, err := evaluator.Five(cards)
		if err != nil {
			return 0
		}
		return value

	case 6:
		var best evaluator.HandValue
		five := make([]deck.Card, 0, 5)
		for omit := range cards {
			five = five[:0]
			for i, c := range cards {
				if i != omit {
					five = append(five, c)
				}
			}

			if value, err := evaluator.Five(five); err == nil && value > best {
				best = value
			}
		}
		return best

	case 7:
		value, err := evaluator.Seven(cards)
		if err != nil {
			return 0
		}
		return value
	}

	return 0
}
