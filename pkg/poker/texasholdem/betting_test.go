package texasholdem

import (
	"testing"

	"quicksandpoker/internal/rng"
	"quicksandpoker/pkg/poker/action"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestGame_Act_checkAround(t *testing.T) {
	a := assert.New(t)
	game := setupRound(t, "alice", "bob", "carol", "dave")

	// dealer alice, blinds bob and carol, action on dave
	assertCurrentTurn(t, game, "dave")
	assertAct(t, game, action.Call)

	assertCurrentTurn(t, game, "alice")
	assertAct(t, game, action.Call)

	assertCurrentTurn(t, game, "bob")
	assertAct(t, game, action.Call, "small blind completes for five")
	a.Equal(990, game.players[1].Chips())

	// the big blind still gets an option
	assertCurrentTurn(t, game, "carol")
	assertAct(t, game, action.Check)

	a.Equal(40, game.Pot())
	a.False(game.RoundOver())

	_, err := game.CurrentTurn()
	a.Equal(ErrStreetOver, err)
}

func TestGame_Act_raiseReopensAction(t *testing.T) {
	a := assert.New(t)
	game := setupRound(t, "alice", "bob", "carol", "dave")

	assertAct(t, game, action.Call)            // dave
	assertAct(t, game, action.Call)            // alice
	assertActAmount(t, game, action.Raise, 20) // bob raises to 30

	a.Equal(30, game.CurrentBet())

	// everyone who already called owes another decision
	assertCurrentTurn(t, game, "carol")
	assertAct(t, game, action.Call)

	assertCurrentTurn(t, game, "dave")
	assertAct(t, game, action.Call)

	assertCurrentTurn(t, game, "alice")
	assertAct(t, game, action.Fold)

	_, err := game.CurrentTurn()
	a.Equal(ErrStreetOver, err)
	a.Equal(100, game.Pot())
}

func TestGame_Act_foldByFirstActor(t *testing.T) {
	a := assert.New(t)
	game := setupRound(t, "alice", "bob", "carol", "dave")

	// the opening seat folding must not end the street
	assertCurrentTurn(t, game, "dave")
	assertAct(t, game, action.Fold)

	assertCurrentTurn(t, game, "alice")
	assertAct(t, game, action.Call)
	assertAct(t, game, action.Call)
	assertAct(t, game, action.Check)

	a.Equal(30, game.Pot())
	a.False(game.RoundOver())
}

func TestGame_Act_foldOut(t *testing.T) {
	a := assert.New(t)
	game := setupRound(t, "alice", "bob", "carol", "dave")

	assertAct(t, game, action.Fold) // dave
	assertAct(t, game, action.Fold) // alice
	assertAct(t, game, action.Fold) // bob

	// carol's big blind takes the pot uncontested
	a.True(game.RoundOver())

	settlement, err := game.Settle()
	a.NoError(err)
	a.Equal([]string{"carol"}, settlement.Winners)
	a.Equal(15, settlement.Pot)
	a.Nil(settlement.Showdown, "no cards are shown")
	a.Equal(1005, game.players[2].Chips())
	a.Equal(4000, totalChips(game))
}

func TestGame_Act_rejectsIllegalActions(t *testing.T) {
	a := assert.New(t)
	game := setupRound(t, "alice", "bob", "carol")

	// action on alice with ten to call
	assertCurrentTurn(t, game, "alice")
	assertActFailed(t, game, action.Check, 0, "you cannot check with ${10} to call")
	assertActFailed(t, game, action.Raise, 0, "raise amount must be greater than zero")
	assertActFailed(t, game, action.Raise, 991, "raising by ${991} exceeds your stack of ${1000}")
	assertActFailed(t, game, "allin", 0, "unknown action: allin")

	// a rejected action leaves the turn and the pot untouched
	assertCurrentTurn(t, game, "alice")
	a.Equal(15, game.Pot())
	a.Equal(1000, game.players[0].Chips())

	assertAct(t, game, action.Call)
	assertAct(t, game, action.Call)

	assertCurrentTurn(t, game, "carol")
	assertActFailed(t, game, action.Call, 0, "you cannot call without an active bet")

	game.players[2].chips = 5
	assertActAmount(t, game, action.Raise, 5) // carol raises all she has

	assertCurrentTurn(t, game, "alice")
	game.players[0].chips = 3
	assertActFailed(t, game, action.Call, 0, "calling ${5} exceeds your stack of ${3}")
}

func TestGame_LegalActions(t *testing.T) {
	a := assert.New(t)
	game := setupRound(t, "alice", "bob", "carol")

	alice := game.players[0]
	a.Equal([]action.Action{action.Call, action.Raise, action.Fold}, game.LegalActions(alice))

	carol := game.players[2] // big blind, nothing to call
	a.Equal([]action.Action{action.Check, action.Raise, action.Fold}, game.LegalActions(carol))

	alice.chips = 10
	a.Equal([]action.Action{action.Call, action.Fold}, game.LegalActions(alice), "no chips left to raise")

	alice.chips = 5
	a.Equal([]action.Action{action.Fold}, game.LegalActions(alice), "cannot cover the call")
}

func TestGame_PlayStreet(t *testing.T) {
	a := assert.New(t)

	script := map[string][]action.Command{
		"alice": {action.NewCommand(action.Call), action.NewCommand(action.Fold)},
		"bob":   {action.NewCommand(action.Call), action.NewRaise(20)},
		"carol": {action.NewCommand(action.Check), action.NewCommand(action.Call)},
	}

	scripted := func(name string) DecisionSource {
		return DecisionFunc(func(turn *TurnState) (action.Command, error) {
			cmds := script[name]
			cmd := cmds[0]
			script[name] = cmds[1:]
			return cmd, nil
		})
	}

	players := []*Player{
		NewPlayer("alice", scripted("alice")),
		NewPlayer("bob", scripted("bob")),
		NewPlayer("carol", scripted("carol")),
	}

	opts := DefaultOptions()
	opts.EquityTrials = 50

	game, err := NewGame(logrus.StandardLogger(), players, opts, rng.NewSeeded(3))
	a.NoError(err)
	a.NoError(game.StartRound())

	// pre-flop: alice calls, bob completes, carol checks her option
	a.NoError(game.PlayStreet())
	a.Equal(30, game.Pot())

	a.NoError(game.NextStreet())
	a.Equal(StreetFlop, game.Street())

	// flop: bob raises, carol calls, alice folds
	a.NoError(game.PlayStreet())
	a.Equal(70, game.Pot())
	a.True(game.players[0].Folded())
	a.False(game.RoundOver())
}

func TestGame_TurnState(t *testing.T) {
	a := assert.New(t)
	game := setupRound(t, "alice", "bob")

	p, err := game.CurrentTurn()
	a.NoError(err)

	turn, err := game.TurnState(p)
	a.NoError(err)
	a.Equal(game.roundID, turn.RoundID)
	a.Equal(StreetPreFlop, turn.Street)
	a.Equal(p.Name, turn.PlayerName)
	a.Len(turn.Hole, 2)
	a.Len(turn.Community, 0)
	a.Equal(15, turn.Pot)
	a.Equal(10, turn.CurrentBet)
	a.Equal(10, turn.BigBlind)
	a.NotEmpty(turn.LegalActions)

	a.NotNil(turn.WinProbability, "human seats get an equity estimate")
	a.GreaterOrEqual(*turn.WinProbability, 0.0)
	a.LessOrEqual(*turn.WinProbability, 100.0)
}
