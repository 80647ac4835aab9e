// Command simulate plays bot-vs-bot hold'em hands and reports the outcome
// of each hand and the final stacks.
package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"nolimitholdem-server/internal/rng"
	"nolimitholdem-server/pkg/poker/agent"
	"nolimitholdem-server/pkg/poker/holdem"
)

var (
	hands      = flag.Int("hands", 100, "maximum number of hands to play")
	seats      = flag.Int("seats", 4, "number of bot seats")
	stack      = flag.Int("stack", 5000, "starting stack per seat")
	smallBlind = flag.Int("small-blind", 25, "small blind")
	bigBlind   = flag.Int("big-blind", 50, "big blind")
	difficulty = flag.String("difficulty", "medium", "bot difficulty: easy, medium, or hard")
	seed       = flag.Int64("seed", 0, "seed for reproducible simulations (0 for random)")
	verbose    = flag.Bool("v", false, "log every action")
)

func main() {
	_ = godotenv.Load()
	flag.Parse()

	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	if err := run(logger); err != nil {
		logger.Fatal(err)
	}
}

func run(logger *logrus.Logger) error {
	parsed, err := agent.ParseDifficulty(*difficulty)
	if err != nil {
		return err
	}

	gameSeed := *seed
	if gameSeed == 0 {
		gameSeed = rng.Crypto{}.Int63()
	}

	stacks := make([]int, *seats)
	agents := make([]agent.Agent, *seats)
	source := rand.New(rand.NewSource(gameSeed))
	for seat := range stacks {
		stacks[seat] = *stack
		agents[seat] = agent.NewBot(agent.ProfileFor(parsed), seededGenerator{source})
	}

	game, err := holdem.NewGame(logger, stacks, holdem.Options{
		SmallBlind: *smallBlind,
		BigBlind:   *bigBlind,
		Seed:       gameSeed,
	})
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"seats": *seats,
		"hands": *hands,
		"seed":  gameSeed,
	}).Info("starting simulation")

	played := 0
	for ; played < *hands; played++ {
		results, err := agent.PlayHand(logger, game, agents)
		if errors.Is(err, holdem.ErrNotEnoughPlayers) {
			break
		} else if err != nil {
			return err
		}

		logger.WithFields(logrus.Fields{
			"hand":    played + 1,
			"results": formatResults(results),
			"board":   game.Board().String(),
		}).Info("hand settled")
	}

	logger.WithField("hands", played).Info("simulation finished")
	for seat := 0; seat < game.NumSeats(); seat++ {
		logger.WithFields(logrus.Fields{
			"seat":  seat,
			"stack": game.Stack(seat),
		}).Info("final stack")
	}

	return nil
}

func formatResults(results []holdem.Result) string {
	parts := make([]string, len(results))
	for i, result := range results {
		parts[i] = fmt.Sprintf("seat %d +%d", result.Seat, result.Chips)
	}

	return strings.Join(parts, " ")
}

type seededGenerator struct {
	r *rand.Rand
}

func (g seededGenerator) Intn(n int) int {
	return g.r.Intn(n)
}
