package texasholdem

import (
	"quicksandpoker/pkg/deck"
	"quicksandpoker/pkg/poker/action"
	"quicksandpoker/pkg/poker/handrank"

	"github.com/google/uuid"
)

// TurnState is the read-only snapshot handed to a DecisionSource when its
// player must act. It contains everything the decision may legally depend
// on; opponents' hole cards are never included.
type TurnState struct {
	RoundID      uuid.UUID       `json:"roundId"`
	Street       Street          `json:"street"`
	PlayerName   string          `json:"playerName"`
	Hole         deck.Hand       `json:"hole"`
	Community    deck.Hand       `json:"community"`
	Pot          int             `json:"pot"`
	CurrentBet   int             `json:"currentBet"`
	AmountToCall int             `json:"amountToCall"`
	Stack        int             `json:"stack"`
	BigBlind     int             `json:"bigBlind"`
	LegalActions []action.Action `json:"legalActions"`
	HandScore    handrank.Score  `json:"handScore"`

	// WinProbability is the Monte-Carlo equity estimate in percent.
	// It is only computed for human seats.
	WinProbability *float64 `json:"winProbability,omitempty"`
}

// PlayerState is a player's public view in a GameState snapshot
type PlayerState struct {
	Name      string    `json:"name"`
	Chips     int       `json:"chips"`
	Bet       int       `json:"bet"`
	Folded    bool      `json:"folded"`
	Automated bool      `json:"automated"`
	Dealer    bool      `json:"dealer"`
	InTurn    bool      `json:"inTurn"`
	Hole      deck.Hand `json:"hole,omitempty"`
}

// GameState is a table snapshot published to the Observer after every
// state change. Hole cards appear only for human seats, or for every
// contesting seat once the round reaches showdown.
type GameState struct {
	GameID    uuid.UUID      `json:"gameId"`
	RoundID   uuid.UUID      `json:"roundId"`
	Street    Street         `json:"street"`
	Community deck.Hand      `json:"community"`
	Pot       int            `json:"pot"`
	Players   []*PlayerState `json:"players"`
	RoundOver bool           `json:"roundOver"`
}

// State builds the current table snapshot
func (g *Game) State() *GameState {
	players := make([]*PlayerState, len(g.players))
	for i, p := range g.players {
		ps := &PlayerState{
			Name:      p.Name,
			Chips:     p.chips,
			Bet:       p.bet,
			Folded:    p.folded,
			Automated: p.automated,
			Dealer:    i == g.dealerIndex,
			InTurn:    g.inRound && !g.streetOver && i == g.turnIndex,
		}

		if !p.automated || (g.street == StreetShowdown && !p.folded) {
			ps.Hole = p.hand
		}

		players[i] = ps
	}

	return &GameState{
		GameID:    g.id,
		RoundID:   g.roundID,
		Street:    g.street,
		Community: g.community,
		Pot:       g.pot,
		Players:   players,
		RoundOver: g.roundOver,
	}
}
