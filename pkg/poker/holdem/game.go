// Package holdem implements a no-limit Texas hold'em table: blinds, betting
// rounds, side pots, and showdown. A Game plays one hand at a time; chips
// persist across hands and the button rotates between them.
package holdem

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
	"nolimitholdem-server/internal/rng"
	"nolimitholdem-server/pkg/deck"
	"nolimitholdem-server/pkg/poker/evaluator"
)

const maxSeats = 10

// Game is a single no-limit Texas hold'em table
type Game struct {
	log  logrus.FieldLogger
	opts Options

	deck    *deck.Deck
	board   deck.Hand
	players []*player
	dealer  int
	street  Street

	current    int // seat on the clock, -1 when nobody is
	currentBet int
	minRaise   int

	results    []Result
	categories map[int]evaluator.Category
	history    []Event

	// shuffle draws a fresh deck seed per hand; seeding it makes a whole
	// run of hands reproducible without repeating a deck order
	shuffle *rand.Rand

	// nextDeck, when set, is dealt as-is on the next hand
	nextDeck *deck.Deck
}

// NewGame returns a new table with the given starting stacks, one seat per entry
func NewGame(logger logrus.FieldLogger, stacks []int, opts Options) (*Game, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if len(stacks) < 2 {
		return nil, fmt.Errorf("at least two seats are required, got %d", len(stacks))
	}

	if len(stacks) > maxSeats {
		return nil, fmt.Errorf("at most %d seats are allowed, got %d", maxSeats, len(stacks))
	}

	players := make([]*player, len(stacks))
	for seat, stack := range stacks {
		if stack <= 0 {
			return nil, fmt.Errorf("seat %d starting stack must be greater than zero", seat)
		}

		players[seat] = &player{seat: seat, stack: stack}
	}

	seed := opts.Seed
	if seed == 0 {
		seed = rng.Crypto{}.Int63()
	}

	return &Game{
		log:     logger,
		opts:    opts,
		players: players,
		dealer:  len(players) - 1, // the first hand puts the button on seat 0
		street:  StreetDealing,
		current: -1,
		shuffle: rand.New(rand.NewSource(seed)),
	}, nil
}

// NewHand shuffles up and deals the next hand: the button moves, hole cards
// go out, and the blinds are posted
func (g *Game) NewHand() error {
	if g.street != StreetDealing && g.street != StreetSettled {
		return ErrHandInProgress
	}

	funded := 0
	for _, p := range g.players {
		if p.stack > 0 {
			funded++
		}
	}
	if funded < 2 {
		return ErrNotEnoughPlayers
	}

	g.board = nil
	g.results = nil
	g.categories = nil
	g.history = nil
	g.advanceDealer()

	if g.nextDeck != nil {
		g.deck = g.nextDeck
		g.nextDeck = nil
	} else {
		g.deck = deck.New()
		g.deck.Shuffle(g.shuffle.Int63())
	}

	for _, p := range g.players {
		p.bet = 0
		p.contributed = 0
		p.hole = nil
		p.acted = false
		p.canRaise = true
		if p.stack > 0 {
			p.status = StatusActive
		} else {
			p.status = StatusOut
		}
	}

	if err := g.dealHoleCards(); err != nil {
		return err
	}

	g.street = StreetPreFlop
	sb, bb := g.blindSeats()
	g.postBlind(sb, g.opts.SmallBlind, eventSmallBlind)
	g.postBlind(bb, g.opts.BigBlind, eventBigBlind)

	g.currentBet = g.players[bb].bet
	g.minRaise = g.opts.BigBlind

	g.log.WithFields(logrus.Fields{
		"dealer":     g.dealer,
		"smallBlind": sb,
		"bigBlind":   bb,
	}).Info("new hand")

	g.current = g.nextToAct(bb)
	if g.current < 0 {
		// the blinds put everyone all-in
		g.runOut()
	}

	return nil
}

// advanceDealer moves the button to the next seat with chips
func (g *Game) advanceDealer() {
	for i := 1; i <= len(g.players); i++ {
		seat := (g.dealer + i) % len(g.players)
		if g.players[seat].stack > 0 {
			g.dealer = seat
			return
		}
	}
}

// blindSeats returns the small and big blind seats. Heads-up, the dealer
// posts the small blind.
func (g *Game) blindSeats() (int, int) {
	if g.countDealtIn() == 2 {
		return g.dealer, g.nextDealtIn(g.dealer)
	}

	sb := g.nextDealtIn(g.dealer)
	return sb, g.nextDealtIn(sb)
}

func (g *Game) postBlind(seat, amount int, event eventType) {
	p := g.players[seat]
	paid := p.wager(min(amount, p.maxTotal()))
	g.record(seat, event, paid)
}

// dealHoleCards deals two cards to every seat in the hand, one at a time,
// starting left of the dealer
func (g *Game) dealHoleCards() error {
	for pass := 0; pass < 2; pass++ {
		for i := 1; i <= len(g.players); i++ {
			p := g.players[(g.dealer+i)%len(g.players)]
			if p.status != StatusActive {
				continue
			}

			card, err := g.deck.Draw()
			if err != nil {
				return err
			}

			p.hole.AddCard(card)
		}
	}

	return nil
}

func (g *Game) countDealtIn() int {
	n := 0
	for _, p := range g.players {
		if p.status == StatusActive {
			n++
		}
	}

	return n
}

func (g *Game) nextDealtIn(from int) int {
	for i := 1; i <= len(g.players); i++ {
		seat := (from + i) % len(g.players)
		if g.players[seat].status == StatusActive {
			return seat
		}
	}

	return from
}

// countActive counts seats that can still make a decision
func (g *Game) countActive() int {
	n := 0
	for _, p := range g.players {
		if p.status == StatusActive {
			n++
		}
	}

	return n
}

// contenders counts seats still contesting the pot
func (g *Game) contenders() int {
	n := 0
	for _, p := range g.players {
		if p.inHand() {
			n++
		}
	}

	return n
}

// Street returns the current street
func (g *Game) Street() Street {
	return g.street
}

// Board returns a copy of the community cards
func (g *Game) Board() deck.Hand {
	return g.board.Clone()
}

// Dealer returns the seat with the button
func (g *Game) Dealer() int {
	return g.dealer
}

// CurrentSeat returns the seat on the clock, or -1 if nobody is
func (g *Game) CurrentSeat() int {
	return g.current
}

// CurrentBet returns the street total a seat must match to stay in
func (g *Game) CurrentBet() int {
	return g.currentBet
}

// MinRaise returns the smallest legal raise increment
func (g *Game) MinRaise() int {
	return g.minRaise
}

// NumSeats returns the number of seats at the table
func (g *Game) NumSeats() int {
	return len(g.players)
}

// Stack returns the chips behind for the seat
func (g *Game) Stack(seat int) int {
	return g.players[seat].stack
}

// HoleCards returns a copy of the seat's hole cards
func (g *Game) HoleCards(seat int) deck.Hand {
	return g.players[seat].hole.Clone()
}

// Results returns the winnings from the last settled hand, by seat order.
// It returns nil while a hand is in progress.
func (g *Game) Results() []Result {
	if g.street != StreetSettled {
		return nil
	}

	results := make([]Result, len(g.results))
	copy(results, g.results)
	return results
}

// ShowdownCategories returns each contender's hand category from the last
// showdown, or nil if the hand ended uncontested
func (g *Game) ShowdownCategories() map[int]evaluator.Category {
	if g.categories == nil {
		return nil
	}

	categories := make(map[int]evaluator.Category, len(g.categories))
	for seat, category := range g.categories {
		categories[seat] = category
	}

	return categories
}

// History returns the events of the current hand in order
func (g *Game) History() []Event {
	events := make([]Event, len(g.history))
	copy(events, g.history)
	return events
}

func (g *Game) record(seat int, event eventType, amount int) {
	g.history = append(g.history, Event{
		Seat:   seat,
		Type:   event,
		Amount: amount,
		Street: g.street,
	})
}
