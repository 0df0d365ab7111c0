package action

import (
	"fmt"
	"strconv"
	"strings"
)

// Command is an action paired with its raise amount.
// Amount is only meaningful for a raise, where it is the number of chips
// added on top of the amount needed to call.
type Command struct {
	Action Action `json:"action"`
	Amount int    `json:"amount"`
}

// NewCommand returns a Command for the given action with no amount
func NewCommand(a Action) Command {
	return Command{Action: a}
}

// NewRaise returns a raise Command for the given amount
func NewRaise(amount int) Command {
	return Command{Action: Raise, Amount: amount}
}

// ParseCommand parses a decision string.
// The grammar is `fold`, `check`, `call`, or `raise <amount>` where
// <amount> is a positive integer.
func ParseCommand(s string) (Command, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty action")
	}

	a, err := FromString(fields[0])
	if err != nil {
		return Command{}, err
	}

	if a != Raise {
		if len(fields) > 1 {
			return Command{}, fmt.Errorf("%s does not take an amount", a)
		}

		return Command{Action: a}, nil
	}

	if len(fields) != 2 {
		return Command{}, fmt.Errorf("raise requires an amount")
	}

	amount, err := strconv.Atoi(fields[1])
	if err != nil {
		return Command{}, fmt.Errorf("invalid raise amount: %s", fields[1])
	}

	if amount <= 0 {
		return Command{}, fmt.Errorf("raise amount must be greater than zero")
	}

	return Command{Action: Raise, Amount: amount}, nil
}

func (c Command) String() string {
	if c.Action == Raise {
		return fmt.Sprintf("raise %d", c.Amount)
	}

	return string(c.Action)
}
