package texasholdem

import (
	"errors"
	"fmt"

	"quicksandpoker/pkg/poker/action"
	"quicksandpoker/pkg/poker/handrank"

	"github.com/sirupsen/logrus"
)

// ErrStreetOver is an error when an action is attempted after the street's
// betting finished
var ErrStreetOver = errors.New("betting street is over")

// PlayerError is a recoverable rejection of a player's decision.
// The engine's state is untouched and the same player is asked again.
type PlayerError string

func (p PlayerError) Error() string {
	return string(p)
}

func newPlayerError(format string, a ...interface{}) PlayerError {
	return PlayerError(fmt.Sprintf(format, a...))
}

// CurrentTurn returns the player whose decision is pending
func (g *Game) CurrentTurn() (*Player, error) {
	if !g.inRound || g.roundOver {
		return nil, ErrRoundOver
	}

	if g.streetOver {
		return nil, ErrStreetOver
	}

	return g.players[g.turnIndex], nil
}

// AmountToCall returns how many chips the player must add to match the
// street's current bet
func (g *Game) AmountToCall(p *Player) int {
	return g.currentBet - p.bet
}

// LegalActions returns the actions the player may take on their turn.
// A call or raise the stack cannot cover is not offered; going all-in is
// not supported.
func (g *Game) LegalActions(p *Player) []action.Action {
	toCall := g.AmountToCall(p)

	actions := make([]action.Action, 0, 3)
	if toCall == 0 {
		actions = append(actions, action.Check)
	} else if toCall <= p.chips {
		actions = append(actions, action.Call)
	}

	if p.chips > toCall {
		actions = append(actions, action.Raise)
	}

	return append(actions, action.Fold)
}

// Act applies the command for the player currently in turn.
// An illegal command is rejected with a PlayerError and no state change;
// the turn stays with the same player.
func (g *Game) Act(cmd action.Command) error {
	p, err := g.CurrentTurn()
	if err != nil {
		return err
	}

	toCall := g.AmountToCall(p)

	switch cmd.Action {
	case action.Fold:
		p.folded = true

	case action.Check:
		if toCall != 0 {
			return newPlayerError("you cannot check with ${%d} to call", toCall)
		}

		p.settled = true

	case action.Call:
		if toCall == 0 {
			return newPlayerError("you cannot call without an active bet")
		}

		if toCall > p.chips {
			return newPlayerError("calling ${%d} exceeds your stack of ${%d}", toCall, p.chips)
		}

		g.pot += p.pay(toCall)
		p.settled = true

	case action.Raise:
		if cmd.Amount <= 0 {
			return newPlayerError("raise amount must be greater than zero")
		}

		if toCall+cmd.Amount > p.chips {
			return newPlayerError("raising by ${%d} exceeds your stack of ${%d}", cmd.Amount, p.chips)
		}

		g.pot += p.pay(toCall + cmd.Amount)
		g.currentBet = p.bet

		// everyone else must respond to the new bet
		for _, other := range g.players {
			if other != p && !other.folded {
				other.settled = false
			}
		}
		p.settled = true

	default:
		return newPlayerError("unknown action: %s", string(cmd.Action))
	}

	g.logger.WithFields(logrus.Fields{
		"round":  g.roundID,
		"street": g.street.String(),
		"player": p.Name,
		"pot":    g.pot,
	}).Info(cmd.Action.LogMessage(cmd.Amount))

	switch {
	case g.activeCount() == 1:
		// everyone else folded: the round ends without further streets
		g.streetOver = true
		g.roundOver = true
	case g.pendingCount() == 0:
		g.streetOver = true
	default:
		g.turnIndex = g.nextPendingFrom((g.turnIndex + 1) % len(g.players))
	}

	g.notify()
	return nil
}

// pendingCount returns the number of players still owing a decision on
// this street
func (g *Game) pendingCount() int {
	count := 0
	for _, p := range g.players {
		if !p.folded && !p.settled {
			count++
		}
	}

	return count
}

// nextPendingFrom returns the first seat at or after index that still
// owes a decision
func (g *Game) nextPendingFrom(index int) int {
	n := len(g.players)
	for i := 0; i < n; i++ {
		seat := (index + i) % n
		if p := g.players[seat]; !p.folded && !p.settled {
			return seat
		}
	}

	panic("no player is pending")
}

// PlayStreet runs the current betting street to completion, asking each
// seat's decision source in turn. Rejected decisions are re-offered to the
// same player.
func (g *Game) PlayStreet() error {
	for {
		p, err := g.CurrentTurn()
		if err == ErrStreetOver || err == ErrRoundOver {
			return nil
		} else if err != nil {
			return err
		}

		turn, err := g.TurnState(p)
		if err != nil {
			return err
		}

		cmd, err := p.source.Decide(turn)
		if err != nil {
			return err
		}

		if err := g.Act(cmd); err != nil {
			var playerErr PlayerError
			if errors.As(err, &playerErr) {
				g.logger.WithField("player", p.Name).WithError(err).Warn("rejected action")
				continue
			}

			return err
		}
	}
}

// TurnState builds the decision snapshot for the player.
// The equity estimate is only computed for human seats; it is the one
// expensive call and the policy never looks at it.
func (g *Game) TurnState(p *Player) (*TurnState, error) {
	score, err := handrank.Evaluate(append(p.hand.Clone(), g.community...))
	if err != nil {
		return nil, err
	}

	turn := &TurnState{
		RoundID:      g.roundID,
		Street:       g.street,
		PlayerName:   p.Name,
		Hole:         p.hand,
		Community:    g.community,
		Pot:          g.pot,
		CurrentBet:   g.currentBet,
		AmountToCall: g.AmountToCall(p),
		Stack:        p.chips,
		BigBlind:     g.options.BigBlind,
		LegalActions: g.LegalActions(p),
		HandScore:    score,
	}

	if !p.automated {
		opponents := g.activeCount() - 1
		if opponents < 1 {
			opponents = 1
		}

		prob, err := g.estimator.Estimate(p.hand, g.community, opponents)
		if err != nil {
			return nil, err
		}

		turn.WinProbability = &prob
	}

	return turn, nil
}
