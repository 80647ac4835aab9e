package holdem

import "github.com/sirupsen/logrus"

// Act applies one action for the seat on the clock. A rejected action
// returns a typed error and leaves the game untouched.
func (g *Game) Act(seat int, action Action) error {
	if seat < 0 || seat >= len(g.players) {
		return newIllegalAction(action.Type, "no seat %d at the table", seat)
	}

	if !g.street.isBetting() || seat != g.current {
		return ErrOutOfTurn
	}

	p := g.players[seat]

	switch action.Type {
	case ActionFold:
		p.status = StatusFolded
		g.record(seat, eventFold, 0)

	case ActionCheck:
		if p.bet != g.currentBet {
			return newIllegalAction(ActionCheck, "%d to call", g.currentBet-p.bet)
		}

		g.record(seat, eventCheck, 0)

	case ActionCall:
		if g.currentBet <= p.bet {
			return newIllegalAction(ActionCall, "nothing to call")
		}

		paid := p.wager(g.currentBet)
		g.record(seat, eventCall, paid)

	case ActionBet:
		if g.currentBet != 0 {
			return newIllegalAction(ActionBet, "there is already a bet of %d", g.currentBet)
		}

		if action.Amount <= 0 {
			return newIllegalAction(ActionBet, "bet must be greater than zero")
		}

		if action.Amount > p.maxTotal() {
			return newIllegalAction(ActionBet, "bet of %d exceeds stack of %d", action.Amount, p.stack)
		}

		if action.Amount < g.opts.BigBlind && action.Amount != p.maxTotal() {
			return newIllegalAction(ActionBet, "minimum bet is %d", g.opts.BigBlind)
		}

		p.wager(action.Amount)
		g.record(seat, eventBet, action.Amount)
		g.registerWager(p)

	case ActionRaise:
		if g.currentBet == 0 {
			return newIllegalAction(ActionRaise, "nothing to raise")
		}

		if err := g.validateRaise(p, action.Amount); err != nil {
			return err
		}

		p.wager(action.Amount)
		g.record(seat, eventRaise, action.Amount)
		g.registerWager(p)

	case ActionAllIn:
		target := p.maxTotal()
		if target > g.currentBet && !p.canRaise {
			return newIllegalAction(ActionAllIn, "raising is closed for this seat")
		}

		p.wager(target)
		g.record(seat, eventAllIn, target)
		g.registerWager(p)

	default:
		return newIllegalAction(action.Type, "unknown action")
	}

	p.acted = true

	g.log.WithFields(logrus.Fields{
		"seat":   seat,
		"action": action.String(),
		"street": g.street.String(),
	}).Debug("action")

	g.afterAction()
	return nil
}

func (g *Game) validateRaise(p *player, to int) error {
	if !p.canRaise {
		return newIllegalAction(ActionRaise, "raising is closed for this seat")
	}

	maxTotal := p.maxTotal()
	if maxTotal <= g.currentBet {
		return newIllegalAction(ActionRaise, "stack only covers a call")
	}

	if to > maxTotal {
		return newIllegalAction(ActionRaise, "raise to %d exceeds maximum of %d", to, maxTotal)
	}

	if minTarget := g.currentBet + g.minRaise; to < minTarget && to != maxTotal {
		return newIllegalAction(ActionRaise, "minimum raise is to %d", minTarget)
	}

	return nil
}

// registerWager folds a completed wager into the table bet. A full raise
// reopens the action for everyone; a short all-in lets the others continue
// but does not let a seat that already acted raise again.
func (g *Game) registerWager(p *player) {
	if p.bet <= g.currentBet {
		return
	}

	delta := p.bet - g.currentBet
	full := delta >= g.minRaise
	if full {
		g.minRaise = delta
	}
	g.currentBet = p.bet

	for _, q := range g.players {
		if q == p || q.status != StatusActive {
			continue
		}

		if full {
			q.canRaise = true
		} else if q.acted {
			q.canRaise = false
		}
		q.acted = false
	}
}

// afterAction decides who is next on the clock, ends the street, or ends
// the hand
func (g *Game) afterAction() {
	if g.contenders() == 1 {
		g.settleUncontested()
		return
	}

	if next := g.nextToAct(g.current); next >= 0 {
		g.current = next
		return
	}

	g.finishStreet()
}

// nextToAct finds the next seat owing a decision, scanning clockwise from
// the given seat. A lone active seat that has matched the bet owes nothing:
// with everyone else all-in there is no action left to take.
func (g *Game) nextToAct(from int) int {
	contested := g.countActive() >= 2
	for i := 1; i <= len(g.players); i++ {
		seat := (from + i) % len(g.players)
		p := g.players[seat]
		if p.status != StatusActive {
			continue
		}

		if p.bet < g.currentBet {
			return seat
		}

		if !p.acted && contested {
			return seat
		}
	}

	return -1
}

// finishStreet closes the betting round and moves the hand forward, running
// the board out if nobody is left to act
func (g *Game) finishStreet() {
	g.current = -1

	for g.street != StreetRiver {
		g.dealNextStreet()

		if first := g.nextToAct(g.dealer); first >= 0 {
			g.current = first
			return
		}
	}

	g.settle()
}

// runOut finishes a hand that has no decisions left
func (g *Game) runOut() {
	g.current = -1
	g.finishStreet()
}

// dealNextStreet puts out the next community cards and resets the
// street's betting state
func (g *Game) dealNextStreet() {
	n := 1
	if g.street == StreetPreFlop {
		n = 3
	}

	for i := 0; i < n; i++ {
		card, err := g.deck.Draw()
		if err != nil {
			// a 52-card deck always covers a full hand
			panic(err)
		}

		g.board.AddCard(card)
	}

	g.street++
	g.currentBet = 0
	g.minRaise = g.opts.BigBlind
	for _, p := range g.players {
		p.bet = 0
		p.acted = false
		p.canRaise = true
	}

	g.log.WithFields(logrus.Fields{
		"street": g.street.String(),
		"board":  g.board.String(),
	}).Debug("dealt street")
}

// LegalActions lists what the seat may do right now, with the minimum
// amount filled in for bets and raises. It returns nil when the seat is
// not on the clock.
func (g *Game) LegalActions(seat int) []Action {
	if !g.street.isBetting() || seat != g.current {
		return nil
	}

	p := g.players[seat]
	actions := []Action{Fold()}

	if p.bet == g.currentBet {
		actions = append(actions, Check())
	} else {
		actions = append(actions, Call())
	}

	if g.currentBet == 0 && p.stack > 0 {
		actions = append(actions, Bet(min(g.opts.BigBlind, p.maxTotal())))
	}

	if g.currentBet > 0 && p.maxTotal() > g.currentBet && p.canRaise {
		actions = append(actions, Raise(min(g.currentBet+g.minRaise, p.maxTotal())))
	}

	if p.stack > 0 && (p.maxTotal() <= g.currentBet || p.canRaise) {
		actions = append(actions, AllIn())
	}

	return actions
}
