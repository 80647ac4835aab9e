package mux

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"nolimitholdem-server/internal/config"
	"nolimitholdem-server/internal/rng"
	"nolimitholdem-server/internal/token"
	"nolimitholdem-server/pkg/poker/agent"
	"nolimitholdem-server/pkg/poker/holdem"
)

// humanSeat is where the table creator sits; the bots fill the rest
const humanSeat = 0

// liveTable is one bot table and the human seat playing it
type liveTable struct {
	mu     sync.Mutex
	id     string
	log    logrus.FieldLogger
	game   *holdem.Game
	agents []agent.Agent
}

// registry holds the live tables by UUID
type registry struct {
	mu     sync.RWMutex
	tables map[string]*liveTable
}

func newRegistry() *registry {
	return &registry{tables: make(map[string]*liveTable)}
}

func (r *registry) add(t *liveTable) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables[t.id] = t
}

func (r *registry) get(id string) (*liveTable, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tables[id]
	return t, ok
}

func withTable(ctx context.Context, t *liveTable) context.Context {
	return context.WithValue(ctx, ctxTableKey, t)
}

func tableFromContext(ctx context.Context) *liveTable {
	return ctx.Value(ctxTableKey).(*liveTable)
}

type postTableRequest struct {
	BotSeats      int    `json:"botSeats"`
	Difficulty    string `json:"difficulty"`
	StartingStack int    `json:"startingStack"`
	SmallBlind    int    `json:"smallBlind"`
	BigBlind      int    `json:"bigBlind"`
}

type postTableResponse struct {
	ID    string `json:"id"`
	Seat  int    `json:"seat"`
	Token string `json:"token"`
}

func (m *Mux) postTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg := config.Instance()
		req := postTableRequest{
			BotSeats:      cfg.Game.BotSeats,
			Difficulty:    "medium",
			StartingStack: cfg.Game.StartingStack,
			SmallBlind:    cfg.Game.SmallBlind,
			BigBlind:      cfg.Game.BigBlind,
		}

		if r.ContentLength > 0 {
			if !decodeRequest(w, r, &req) {
				return
			}
		}

		tbl, err := newLiveTable(req)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		m.tables.add(tbl)

		signed, err := token.Sign(tbl.id, humanSeat)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusCreated, postTableResponse{
			ID:    tbl.id,
			Seat:  humanSeat,
			Token: signed,
		})
	}
}

func newLiveTable(req postTableRequest) (*liveTable, error) {
	if req.BotSeats < 1 {
		return nil, errors.New("at least one bot seat is required")
	}

	difficulty, err := agent.ParseDifficulty(req.Difficulty)
	if err != nil {
		return nil, err
	}

	seats := req.BotSeats + 1
	stacks := make([]int, seats)
	agents := make([]agent.Agent, seats)
	for seat := range stacks {
		stacks[seat] = req.StartingStack
		if seat != humanSeat {
			agents[seat] = agent.NewBot(agent.ProfileFor(difficulty), rng.Crypto{})
		}
	}

	id := uuid.New().String()
	log := logrus.WithField("table", id)

	game, err := holdem.NewGame(log, stacks, holdem.Options{
		SmallBlind: req.SmallBlind,
		BigBlind:   req.BigBlind,
	})
	if err != nil {
		return nil, err
	}

	return &liveTable{
		id:     id,
		log:    log,
		game:   game,
		agents: agents,
	}, nil
}

func (m *Mux) getTableUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tbl := tableFromContext(r.Context())

		tbl.mu.Lock()
		state := tbl.game.State()
		tbl.mu.Unlock()

		writeJSON(w, http.StatusOK, state)
	}
}

// deal starts the next hand and lets the bots act up to the human's turn
func (t *liveTable) deal() error {
	if err := t.game.NewHand(); err != nil {
		return err
	}

	t.advanceBots()
	return nil
}

// act applies the human's action, then lets the bots respond
func (t *liveTable) act(seat int, action holdem.Action) error {
	if err := t.game.Act(seat, action); err != nil {
		return err
	}

	t.advanceBots()
	return nil
}

// advanceBots plays every bot decision until the human is on the clock or
// the hand is over. A bot that misfires is downgraded to a call, a check,
// or a fold.
func (t *liveTable) advanceBots() {
	for seat := t.game.CurrentSeat(); seat >= 0 && seat != humanSeat; seat = t.game.CurrentSeat() {
		bot := t.agents[seat]
		action := bot.Act(t.game.State(), seat, t.game.HoleCards(seat))

		if err := t.game.Act(seat, action); err == nil {
			continue
		}

		for _, action := range []holdem.Action{holdem.Call(), holdem.Check(), holdem.Fold()} {
			if err := t.game.Act(seat, action); err == nil {
				break
			}
		}
	}
}
