package texasholdem

import (
	"testing"

	"quicksandpoker/internal/rng"
	"quicksandpoker/pkg/poker/action"
	"quicksandpoker/pkg/poker/ai"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func setupPlayers(names ...string) []*Player {
	players := make([]*Player, len(names))
	for i, name := range names {
		players[i] = NewPlayer(name, nil)
	}

	return players
}

func setupGame(t *testing.T, names ...string) *Game {
	t.Helper()

	game, err := NewGame(logrus.StandardLogger(), setupPlayers(names...), DefaultOptions(), rng.NewSeeded(42))
	assert.NoError(t, err)
	assert.NotNil(t, game)

	return game
}

func setupRound(t *testing.T, names ...string) *Game {
	t.Helper()

	game := setupGame(t, names...)
	assert.NoError(t, game.StartRound())

	return game
}

func assertAct(t *testing.T, game *Game, a action.Action, msgAndArgs ...interface{}) {
	t.Helper()
	assertActAmount(t, game, a, 0, msgAndArgs...)
}

func assertActAmount(t *testing.T, game *Game, a action.Action, amount int, msgAndArgs ...interface{}) {
	t.Helper()
	assert.NoError(t, game.Act(action.Command{Action: a, Amount: amount}), msgAndArgs...)
}

func assertActFailed(t *testing.T, game *Game, a action.Action, amount int, expectedErr string, msgAndArgs ...interface{}) {
	t.Helper()

	err := game.Act(action.Command{Action: a, Amount: amount})
	assert.EqualError(t, err, expectedErr, msgAndArgs...)

	var playerErr PlayerError
	assert.ErrorAs(t, err, &playerErr, msgAndArgs...)
}

func assertCurrentTurn(t *testing.T, game *Game, name string, msgAndArgs ...interface{}) {
	t.Helper()

	p, err := game.CurrentTurn()
	assert.NoError(t, err, msgAndArgs...)
	assert.Equal(t, name, p.Name, msgAndArgs...)
}

// checkDown drives every remaining street with calls and checks until the
// round reaches showdown
func checkDown(t *testing.T, game *Game) {
	t.Helper()

	for !game.RoundOver() {
		for {
			p, err := game.CurrentTurn()
			if err == ErrStreetOver || err == ErrRoundOver {
				break
			}
			assert.NoError(t, err)

			if game.AmountToCall(p) > 0 {
				assertAct(t, game, action.Call)
			} else {
				assertAct(t, game, action.Check)
			}
		}

		if err := game.NextStreet(); err != nil {
			assert.Equal(t, ErrRoundOver, err)
		}
	}
}

func newTestPolicy() *ai.Policy {
	return ai.New(rng.NewSeeded(1))
}

func totalChips(game *Game) int {
	total := game.Pot()
	for _, p := range game.Players() {
		total += p.Chips()
	}

	return total
}
