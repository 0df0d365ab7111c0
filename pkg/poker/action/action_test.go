package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	a := assert.New(t)

	act, err := FromString("fold")
	a.NoError(err)
	a.Equal(Fold, act)

	act, err = FromString("bet")
	a.EqualError(err, "unknown action for identifier: bet")
	a.Equal(Action(""), act)
}

func TestAction_LogMessage(t *testing.T) {
	a := assert.New(t)
	a.Equal("folded", Fold.LogMessage(0))
	a.Equal("checked", Check.LogMessage(0))
	a.Equal("called ${25}", Call.LogMessage(25))
	a.Equal("raised by ${50}", Raise.LogMessage(50))
}

func TestParseCommand(t *testing.T) {
	a := assert.New(t)

	runTest := func(t *testing.T, input string, expected Command, expectedErr string) {
		t.Helper()

		cmd, err := ParseCommand(input)
		if expectedErr != "" {
			a.EqualError(err, expectedErr)
			return
		}

		a.NoError(err)
		a.Equal(expected, cmd)
	}

	runTest(t, "fold", NewCommand(Fold), "")
	runTest(t, "CHECK", NewCommand(Check), "")
	runTest(t, "  call  ", NewCommand(Call), "")
	runTest(t, "raise 20", NewRaise(20), "")
	runTest(t, "", Command{}, "empty action")
	runTest(t, "shove", Command{}, "unknown action for identifier: shove")
	runTest(t, "call 20", Command{}, "Call does not take an amount")
	runTest(t, "raise", Command{}, "raise requires an amount")
	runTest(t, "raise twenty", Command{}, "invalid raise amount: twenty")
	runTest(t, "raise 0", Command{}, "raise amount must be greater than zero")
	runTest(t, "raise -5", Command{}, "raise amount must be greater than zero")
}

func TestCommand_String(t *testing.T) {
	assert.Equal(t, "raise 20", NewRaise(20).String())
	assert.Equal(t, "check", NewCommand(Check).String())
}
