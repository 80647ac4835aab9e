package holdem

import (
	"sort"

	"github.com/sirupsen/logrus"
	"nolimitholdem-server/pkg/poker/evaluator"
)

// Result is one seat's winnings from a settled hand
type Result struct {
	Seat  int `json:"seat"`
	Chips int `json:"chips"`
}

// settleUncontested ends the hand when one seat remains: they take every
// pot without showing a hand, so no evaluation happens
func (g *Game) settleUncontested() {
	var winner *player
	for _, p := range g.players {
		if p.inHand() {
			winner = p
			break
		}
	}

	total := g.PotTotal()
	winner.stack += total
	g.results = []Result{{Seat: winner.seat, Chips: total}}
	g.record(winner.seat, eventWin, total)

	g.street = StreetSettled
	g.current = -1

	g.log.WithFields(logrus.Fields{
		"seat":  winner.seat,
		"chips": total,
	}).Info("hand won uncontested")
}

// settle runs the showdown: every pot goes to the best seven-card hand
// among its eligible seats, ties split evenly, and any odd chip goes to the
// first tied seat clockwise from the dealer's left
func (g *Game) settle() {
	g.street = StreetShowdown
	g.current = -1

	values := make(map[int]evaluator.HandValue)
	g.categories = make(map[int]evaluator.Category)
	for _, p := range g.players {
		if !p.inHand() {
			continue
		}

		value, err := evaluator.Seven(append(g.board.Clone(), p.hole...))
		if err != nil {
			// two hole cards and a full board are always evaluable
			panic(err)
		}

		values[p.seat] = value
		g.categories[p.seat] = value.Category()
	}

	winnings := make(map[int]int)
	start := (g.dealer + 1) % len(g.players)
	for _, pot := range g.Pots() {
		winners := potWinners(pot, values)
		sort.Slice(winners, func(i, j int) bool {
			n := len(g.players)
			return (winners[i]+n-start)%n < (winners[j]+n-start)%n
		})

		share := pot.Amount / len(winners)
		remainder := pot.Amount % len(winners)
		for i, seat := range winners {
			amount := share
			if i < remainder {
				amount++
			}

			winnings[seat] += amount
		}
	}

	g.results = g.results[:0]
	for _, p := range g.players {
		chips, ok := winnings[p.seat]
		if !ok {
			continue
		}

		p.stack += chips
		g.results = append(g.results, Result{Seat: p.seat, Chips: chips})
		g.record(p.seat, eventWin, chips)

		g.log.WithFields(logrus.Fields{
			"seat":  p.seat,
			"chips": chips,
			"hand":  values[p.seat].String(),
		}).Info("showdown win")
	}

	g.street = StreetSettled
}

func potWinners(pot Pot, values map[int]evaluator.HandValue) []int {
	var best evaluator.HandValue
	var winners []int
	for _, seat := range pot.Eligible {
		switch value := values[seat]; {
		case value > best:
			best = value
			winners = []int{seat}
		case value == best:
			winners = append(winners, seat)
		}
	}

	return winners
}
