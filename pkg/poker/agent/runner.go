package agent

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"nolimitholdem-server/pkg/poker/holdem"
)

// maxActionsPerHand bounds a hand so a misbehaving agent cannot stall it
const maxActionsPerHand = 500

// PlayHand deals one hand and drives it to settlement, asking each seat's
// agent for a decision when it is on the clock. An agent that picks an
// illegal action is downgraded to a call, a check, or a fold, in that order.
func PlayHand(logger logrus.FieldLogger, g *holdem.Game, agents []Agent) ([]holdem.Result, error) {
	if len(agents) != g.NumSeats() {
		return nil, fmt.Errorf("need %d agents, got %d", g.NumSeats(), len(agents))
	}

	if err := g.NewHand(); err != nil {
		return nil, err
	}

	for actions := 0; g.CurrentSeat() >= 0; actions++ {
		if actions >= maxActionsPerHand {
			return nil, errors.New("hand did not settle")
		}

		seat := g.CurrentSeat()
		action := agents[seat].Act(g.State(), seat, g.HoleCards(seat))

		if err := g.Act(seat, action); err != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"seat":   seat,
				"action": action.String(),
			}).Warn("agent chose an illegal action")

			if err := fallback(g, seat); err != nil {
				return nil, err
			}
		}
	}

	return g.Results(), nil
}

func fallback(g *holdem.Game, seat int) error {
	for _, action := range []holdem.Action{holdem.Call(), holdem.Check(), holdem.Fold()} {
		if err := g.Act(seat, action); err == nil {
			return nil
		}
	}

	return fmt.Errorf("seat %d has no usable action", seat)
}
