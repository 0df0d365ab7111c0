package texasholdem

import (
	"errors"
	"fmt"

	"quicksandpoker/internal/rng"
	"quicksandpoker/pkg/deck"
	"quicksandpoker/pkg/poker/equity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrRoundInProgress is an error when a round is started before the
// previous round settled
var ErrRoundInProgress = errors.New("round is in progress")

// ErrRoundOver is an error when an action is attempted after the round ended
var ErrRoundOver = errors.New("round is over")

// Game is a multi-round game of Texas Hold'em between one human and
// several automated opponents.
// The game owns the deck and the round state; players own their stack and
// hole cards. All mutation happens on the single active turn.
type Game struct {
	id      uuid.UUID
	logger  logrus.FieldLogger
	options Options
	random  rng.Generator

	players     []*Player
	dealerIndex int

	deck       *deck.Deck
	community  deck.Hand
	pot        int
	currentBet int

	roundID    uuid.UUID
	street     Street
	turnIndex  int
	streetOver bool
	roundOver  bool
	inRound    bool

	estimator *equity.Estimator

	// Observer, if set, receives a read-only snapshot after every state change
	Observer func(state *GameState)
}

// NewGame returns a new game seating the provided players.
// Every player starts with the configured stack. Randomness for shuffling
// is drawn from g.
func NewGame(logger logrus.FieldLogger, players []*Player, opts Options, g rng.Generator) (*Game, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if len(players) < 2 {
		return nil, errors.New("there must be at least two players")
	}

	names := make(map[string]bool)
	for _, p := range players {
		if names[p.Name] {
			return nil, fmt.Errorf("duplicate player name: %s", p.Name)
		}

		names[p.Name] = true
		p.chips = opts.StartingChips
	}

	id := uuid.New()
	return &Game{
		id:      id,
		logger:  logger.WithField("game", id),
		options: opts,
		random:  g,
		players: players,
		// the first rotation puts the button on seat 0
		dealerIndex: len(players) - 1,
		street:      StreetShowdown,
		estimator: &equity.Estimator{
			Trials:  opts.EquityTrials,
			Workers: opts.EquityWorkers,
		},
	}, nil
}

// Players returns the seats in table order
func (g *Game) Players() []*Player {
	return g.players
}

// Pot returns the chips in the pot
func (g *Game) Pot() int {
	return g.pot
}

// CurrentBet returns the street's table-high bet
func (g *Game) CurrentBet() int {
	return g.currentBet
}

// Community returns the community cards revealed so far
func (g *Game) Community() deck.Hand {
	return g.community
}

// Street returns the current betting phase
func (g *Game) Street() Street {
	return g.street
}

// Dealer returns the player on the button
func (g *Game) Dealer() *Player {
	return g.players[g.dealerIndex]
}

// RoundOver returns true once the round reached settlement, either at
// showdown or because all but one player folded
func (g *Game) RoundOver() bool {
	return g.roundOver
}

// StartRound begins a new round: fresh deck, rotated button, two hole
// cards per player, and the forced blinds.
func (g *Game) StartRound() error {
	if g.inRound {
		return ErrRoundInProgress
	}

	for _, p := range g.players {
		if p.chips <= 0 {
			return fmt.Errorf("%s has no chips and cannot be seated", p.Name)
		}
	}

	n := len(g.players)
	g.dealerIndex = (g.dealerIndex + 1) % n
	g.roundID = uuid.New()

	g.deck = deck.New(g.random)
	g.deck.Shuffle()

	g.community = make(deck.Hand, 0, 5)
	g.pot = 0
	g.currentBet = 0
	g.roundOver = false
	g.inRound = true

	for _, p := range g.players {
		p.newRound()
	}

	for i := 0; i < 2; i++ {
		for _, p := range g.players {
			card, err := g.deck.Draw()
			if err != nil {
				return err
			}

			p.hand.AddCard(card)
		}
	}

	smallBlindIndex := (g.dealerIndex + 1) % n
	bigBlindIndex := (g.dealerIndex + 2) % n

	g.pot += g.players[smallBlindIndex].pay(g.options.SmallBlind)
	g.pot += g.players[bigBlindIndex].pay(g.options.BigBlind)
	g.currentBet = g.options.BigBlind

	g.street = StreetPreFlop
	g.beginBetting((bigBlindIndex + 1) % n)

	g.logger.WithFields(logrus.Fields{
		"round":      g.roundID,
		"dealer":     g.Dealer().Name,
		"smallBlind": g.players[smallBlindIndex].Name,
		"bigBlind":   g.players[bigBlindIndex].Name,
		"pot":        g.pot,
	}).Info("round started")

	g.notify()
	return nil
}

// NextStreet reveals the next community cards and opens a new betting
// street. After the river it moves the round to showdown.
func (g *Game) NextStreet() error {
	if !g.inRound {
		return ErrRoundOver
	}

	if !g.streetOver {
		return errors.New("betting street is not over")
	}

	if g.roundOver {
		return ErrRoundOver
	}

	var dealCount int
	switch g.street {
	case StreetPreFlop:
		dealCount = 3
	case StreetFlop, StreetTurn:
		dealCount = 1
	case StreetRiver:
		g.street = StreetShowdown
		g.roundOver = true
		g.notify()
		return nil
	default:
		return fmt.Errorf("cannot advance from street %s", g.street)
	}

	cards, err := g.deck.Deal(dealCount)
	if err != nil {
		return err
	}
	g.community = append(g.community, cards...)

	for _, p := range g.players {
		p.newStreet()
	}
	g.currentBet = 0

	g.street++
	g.beginBetting((g.dealerIndex + 1) % len(g.players))

	g.logger.WithFields(logrus.Fields{
		"round":     g.roundID,
		"street":    g.street.String(),
		"community": g.community.String(),
	}).Info("street dealt")

	g.notify()
	return nil
}

// beginBetting opens a betting street starting at the first non-folded
// seat at or after start. Every contesting player owes a decision; the
// street ends once none remain pending.
func (g *Game) beginBetting(start int) {
	if g.activeCount() < 2 {
		g.streetOver = true
		return
	}

	g.turnIndex = g.nextPendingFrom(start)
	g.streetOver = false
}

// activeCount returns the number of players still contesting the pot
func (g *Game) activeCount() int {
	count := 0
	for _, p := range g.players {
		if !p.folded {
			count++
		}
	}

	return count
}

// nextActiveFrom returns the first non-folded seat at or after index
func (g *Game) nextActiveFrom(index int) int {
	n := len(g.players)
	for i := 0; i < n; i++ {
		seat := (index + i) % n
		if !g.players[seat].folded {
			return seat
		}
	}

	panic("all players folded")
}

// PlayRound runs a full round: every street of betting, then settlement.
// StartRound must have been called.
func (g *Game) PlayRound() (*Settlement, error) {
	if !g.inRound {
		return nil, errors.New("round has not been started")
	}

	for !g.roundOver {
		if err := g.PlayStreet(); err != nil {
			return nil, err
		}

		if err := g.NextStreet(); err != nil && err != ErrRoundOver {
			return nil, err
		}
	}

	return g.Settle()
}

// RemoveBrokePlayers unseats the players who have no chips left and
// returns them. The button stays with the same player when they survive
// the cut.
func (g *Game) RemoveBrokePlayers() ([]*Player, error) {
	if g.inRound {
		return nil, ErrRoundInProgress
	}

	dealer := g.Dealer()

	kept := make([]*Player, 0, len(g.players))
	removed := make([]*Player, 0)
	for _, p := range g.players {
		if p.chips > 0 {
			kept = append(kept, p)
		} else {
			removed = append(removed, p)
		}
	}

	if len(removed) == 0 {
		return nil, nil
	}

	g.players = kept
	g.dealerIndex = len(kept) - 1
	for i, p := range kept {
		if p == dealer {
			g.dealerIndex = i
		}
	}

	for _, p := range removed {
		g.logger.WithField("player", p.Name).Info("player left the table broke")
	}

	return removed, nil
}

func (g *Game) notify() {
	if g.Observer != nil {
		g.Observer(g.State())
	}
}
