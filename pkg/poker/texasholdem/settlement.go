package texasholdem

import (
	"errors"
	"sort"

	"quicksandpoker/pkg/deck"
	"quicksandpoker/pkg/poker/handrank"

	"github.com/sirupsen/logrus"
)

// ErrRoundNotOver is an error when settlement is requested before the
// round finished
var ErrRoundNotOver = errors.New("round is not over")

// ShowdownHand is one contesting player's revealed hand at settlement
type ShowdownHand struct {
	Name   string         `json:"name"`
	Hole   deck.Hand      `json:"hole"`
	Score  handrank.Score `json:"score"`
	Winner bool           `json:"winner"`
	Payout int            `json:"payout"`

	seat int
}

// Settlement is the outcome of a round
type Settlement struct {
	Pot      int             `json:"pot"`
	Winners  []string        `json:"winners"`
	Showdown []*ShowdownHand `json:"showdown,omitempty"`
}

// Settle pays out the pot and closes the round.
// If one player remains they take the pot without showing their cards.
// Otherwise every contesting hand is evaluated against the board; ties
// split the pot evenly and any odd chips go to the first winner in seat
// order after the dealer.
func (g *Game) Settle() (*Settlement, error) {
	if !g.inRound {
		return nil, ErrRoundNotOver
	}

	if !g.roundOver {
		return nil, ErrRoundNotOver
	}

	settlement := &Settlement{Pot: g.pot}

	if g.activeCount() == 1 {
		winner := g.players[g.nextActiveFrom(0)]
		winner.chips += g.pot
		settlement.Winners = []string{winner.Name}
	} else {
		hands, err := g.showdownHands()
		if err != nil {
			return nil, err
		}

		winners := make([]*ShowdownHand, 0, len(hands))
		for _, h := range hands {
			if h.Score.Equal(hands[0].Score) {
				winners = append(winners, h)
			}
		}

		// winners retain showdown ordering, which starts at the seat
		// after the dealer, so the first entry takes the odd chips
		share := g.pot / len(winners)
		remainder := g.pot % len(winners)

		for i, h := range winners {
			payout := share
			if i == 0 {
				payout += remainder
			}

			h.Winner = true
			h.Payout = payout
			g.players[h.seat].chips += payout
			settlement.Winners = append(settlement.Winners, h.Name)
		}

		settlement.Showdown = hands
	}

	g.pot = 0
	g.inRound = false

	g.logger.WithFields(logrus.Fields{
		"round":   g.roundID,
		"pot":     settlement.Pot,
		"winners": settlement.Winners,
	}).Info("round settled")

	g.notify()
	return settlement, nil
}

// showdownHands evaluates every contesting hand and returns them best
// first. Players with equal scores keep their seat order, starting at the
// seat after the dealer.
func (g *Game) showdownHands() ([]*ShowdownHand, error) {
	n := len(g.players)
	hands := make([]*ShowdownHand, 0, g.activeCount())

	for i := 1; i <= n; i++ {
		seat := (g.dealerIndex + i) % n
		p := g.players[seat]
		if p.folded {
			continue
		}

		score, err := handrank.Evaluate(append(p.hand.Clone(), g.community...))
		if err != nil {
			return nil, err
		}

		hands = append(hands, &ShowdownHand{
			Name:  p.Name,
			Hole:  p.hand,
			Score: score,
			seat:  seat,
		})
	}

	sort.SliceStable(hands, func(i, j int) bool {
		return hands[j].Score.Less(hands[i].Score)
	})

	return hands, nil
}
