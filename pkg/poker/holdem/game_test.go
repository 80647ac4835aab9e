package holdem

import (
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nolimitholdem-server/pkg/deck"
)

func testLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func testOptions() Options {
	return Options{SmallBlind: 5, BigBlind: 10}
}

// stackDeck arranges the next deal so each seat receives the given hole
// cards and the board runs out as given. Assumes every seat is dealt in and
// the button is moving to seat 0 (the first hand of a game).
func stackDeck(t *testing.T, g *Game, holes []string, board string) {
	t.Helper()

	n := len(g.players)
	require.Len(t, holes, n)

	parsed := make([][]deck.Card, n)
	for seat, s := range holes {
		parsed[seat] = deck.MustCards(s)
		require.Len(t, parsed[seat], 2)
	}

	var cards []deck.Card
	for pass := 0; pass < 2; pass++ {
		for i := 1; i <= n; i++ {
			seat := i % n
			cards = append(cards, parsed[seat][pass])
		}
	}
	cards = append(cards, deck.MustCards(board)...)

	g.nextDeck = deck.Stacked(cards...)
}

func newTestGame(t *testing.T, stacks []int, holes []string, board string) *Game {
	t.Helper()

	g, err := NewGame(testLogger(), stacks, testOptions())
	require.NoError(t, err)
	stackDeck(t, g, holes, board)
	require.NoError(t, g.NewHand())
	return g
}

// totalChips counts every chip at the table, in stacks or wagered
func totalChips(g *Game) int {
	total := g.PotTotal()
	for _, p := range g.players {
		total += p.stack
	}

	return total
}

func TestNewGame_validation(t *testing.T) {
	a := assert.New(t)

	_, err := NewGame(testLogger(), []int{1000}, testOptions())
	a.EqualError(err, "at least two seats are required, got 1")

	_, err = NewGame(testLogger(), make([]int, 11), testOptions())
	a.EqualError(err, "at most 10 seats are allowed, got 11")

	_, err = NewGame(testLogger(), []int{1000, 0}, testOptions())
	a.EqualError(err, "seat 1 starting stack must be greater than zero")

	_, err = NewGame(testLogger(), []int{1000, 1000}, Options{SmallBlind: 0, BigBlind: 10})
	a.EqualError(err, "small blind must be greater than zero")

	_, err = NewGame(testLogger(), []int{1000, 1000}, Options{SmallBlind: 10, BigBlind: 5})
	a.EqualError(err, "big blind cannot be less than the small blind")
}

func TestNewHand_blindsAndOrder(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(t, []int{1000, 1000, 1000},
		[]string{"Ah,Kh", "2c,7d", "9s,9c"}, "5h,6h,7h,8h,Jc")

	a.Equal(StreetPreFlop, g.Street())
	a.Equal(0, g.Dealer())

	// seat 1 posts the small blind, seat 2 the big blind
	a.Equal(5, g.players[1].bet)
	a.Equal(10, g.players[2].bet)
	a.Equal(995, g.Stack(1))
	a.Equal(990, g.Stack(2))
	a.Equal(10, g.CurrentBet())
	a.Equal(10, g.MinRaise())

	// first to act is left of the big blind
	a.Equal(0, g.CurrentSeat())

	// two hole cards each, none on the board yet
	for seat := 0; seat < 3; seat++ {
		a.Len(g.HoleCards(seat), 2)
	}
	a.Empty(g.Board())
	a.Equal(deck.MustCards("Ah,Kh"), []deck.Card(g.HoleCards(0)))

	a.Nil(g.Results())
}

func TestNewHand_headsUpDealerIsSmallBlind(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(t, []int{1000, 1000},
		[]string{"Ah,Kh", "2c,7d"}, "5h,6h,9d,8h,Jc")

	a.Equal(0, g.Dealer())
	a.Equal(5, g.players[0].bet)
	a.Equal(10, g.players[1].bet)

	// the dealer acts first pre-flop when heads-up
	a.Equal(0, g.CurrentSeat())
}

func TestNewHand_errors(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(t, []int{1000, 1000},
		[]string{"Ah,Kh", "2c,7d"}, "5h,6h,9d,8h,Jc")
	a.ErrorIs(g.NewHand(), ErrHandInProgress)

	// fold out the hand, then bust a player so the next deal is impossible
	a.NoError(g.Act(0, Fold()))
	a.Equal(StreetSettled, g.Street())

	g.players[0].stack = 0
	a.ErrorIs(g.NewHand(), ErrNotEnoughPlayers)
}

func TestNewHand_buttonRotationSkipsBustedSeats(t *testing.T) {
	a := assert.New(t)

	g, err := NewGame(testLogger(), []int{1000, 1000, 1000, 1000}, testOptions())
	require.NoError(t, err)

	require.NoError(t, g.NewHand())
	a.Equal(0, g.Dealer())
	foldOut(t, g)

	require.NoError(t, g.NewHand())
	a.Equal(1, g.Dealer())
	foldOut(t, g)

	// bust seat 2; the button skips it
	g.players[2].stack = 0
	require.NoError(t, g.NewHand())
	a.Equal(3, g.Dealer())
	a.Equal(StatusOut, g.players[2].status)
	a.Empty(g.HoleCards(2))
}

// foldOut folds every seat until the hand settles
func foldOut(t *testing.T, g *Game) {
	t.Helper()
	for g.Street().isBetting() {
		require.NoError(t, g.Act(g.CurrentSeat(), Fold()))
	}
	require.Equal(t, StreetSettled, g.Street())
}

func TestNewHand_seededDecksVaryPerHand(t *testing.T) {
	a := assert.New(t)

	opts := Options{SmallBlind: 5, BigBlind: 10, Seed: 42}

	// a seed fixes the run, not a single deck order
	deckHashes := func(t *testing.T) []string {
		t.Helper()

		g, err := NewGame(testLogger(), []int{1000, 1000, 1000}, opts)
		require.NoError(t, err)

		hashes := make([]string, 3)
		for hand := range hashes {
			require.NoError(t, g.NewHand())
			hashes[hand] = g.deck.HashCode()
			foldOut(t, g)
		}

		return hashes
	}

	hashes := deckHashes(t)
	a.NotEqual(hashes[0], hashes[1])
	a.NotEqual(hashes[1], hashes[2])

	// the same seed replays the same decks across runs
	a.Equal(hashes, deckHashes(t))
}

func TestGame_chipConservationOverRandomHands(t *testing.T) {
	a := assert.New(t)

	g, err := NewGame(testLogger(), []int{200, 500, 1000, 50}, Options{
		SmallBlind: 5,
		BigBlind:   10,
		Seed:       99,
	})
	require.NoError(t, err)

	const total = 1750
	r := rand.New(rand.NewSource(7))

	for hand := 0; hand < 200; hand++ {
		if err := g.NewHand(); err != nil {
			a.ErrorIs(err, ErrNotEnoughPlayers)
			break
		}

		for steps := 0; g.Street().isBetting(); steps++ {
			require.Less(t, steps, 1000, "betting never terminated")

			seat := g.CurrentSeat()
			actions := g.LegalActions(seat)
			require.NotEmpty(t, actions)

			action := actions[r.Intn(len(actions))]
			require.NoError(t, g.Act(seat, action))
			a.Equal(total, totalChips(g))
		}

		a.Equal(StreetSettled, g.Street())
		a.Equal(total, totalChips(g))

		// every settled hand pays out the full pot
		paid := 0
		for _, result := range g.Results() {
			paid += result.Chips
		}
		a.Equal(g.PotTotal(), paid)
	}
}

func TestGame_stateSnapshot(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(t, []int{1000, 1000, 1000},
		[]string{"Ah,Kh", "2c,7d", "9s,9c"}, "5h,6h,7h,8h,Jc")

	state := g.State()
	a.Equal(StreetPreFlop, state.Street)
	a.Equal(0, state.Dealer)
	a.Equal(0, state.Current)
	a.Equal(10, state.CurrentBet)
	a.Equal(10, state.MinRaise)
	a.Equal(10, state.ToCall(0))
	a.Equal(5, state.ToCall(1))
	a.Equal(20, state.MinRaiseTo())
	a.Len(state.Seats, 3)
	a.Equal(StatusActive, state.Seats[0].Status)
	a.Empty(state.Board)
	a.Nil(state.Results)

	// a snapshot is detached from the game
	state.Board.AddCard(deck.MustCard("2d"))
	a.Empty(g.Board())
}
