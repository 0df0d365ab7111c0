package ai

import (
	"quicksandpoker/internal/rng"
	"quicksandpoker/pkg/deck"
	"quicksandpoker/pkg/poker/action"
	"quicksandpoker/pkg/poker/handrank"
)

// premiumRank is the rank a hole card must exceed for the pre-flop
// "two big cards" shortcut
const premiumRank = 11

// Situation is everything the policy looks at for one decision.
// The policy is stateless across turns: no opponent modeling, no pot odds
// beyond the fixed thresholds.
type Situation struct {
	Hole         deck.Hand
	Community    deck.Hand
	Category     handrank.Category
	AmountToCall int
	Stack        int
	Pot          int
	BigBlind     int
}

// Policy decides actions for automated players.
// Bluffing branches draw from the supplied generator, so a seeded generator
// reproduces a game exactly.
type Policy struct {
	r rng.Generator
}

// New returns a Policy drawing randomness from g
func New(g rng.Generator) *Policy {
	return &Policy{r: g}
}

// Decide maps a Situation to a command.
// The returned command is always legal for the situation: raises are sized
// within the stack and a call the stack cannot cover degrades to a fold.
func (p *Policy) Decide(s Situation) action.Command {
	if len(s.Community) == 0 {
		return p.preFlop(s)
	}

	return p.postFlop(s)
}

func (p *Policy) preFlop(s Situation) action.Command {
	strong := s.Category >= handrank.OnePair || (len(s.Hole) == 2 &&
		s.Hole[0].Rank > premiumRank && s.Hole[1].Rank > premiumRank)

	if strong {
		if s.AmountToCall == 0 {
			return p.raiseOrCall(s, s.BigBlind*2)
		}

		if s.AmountToCall <= s.BigBlind*3 {
			return p.callOrFold(s)
		}

		return action.NewCommand(action.Fold)
	}

	if s.AmountToCall == 0 {
		return action.NewCommand(action.Check)
	}

	if s.AmountToCall <= s.BigBlind {
		return p.callOrFold(s)
	}

	return action.NewCommand(action.Fold)
}

func (p *Policy) postFlop(s Situation) action.Command {
	switch {
	case s.Category >= handrank.ThreeOfAKind:
		// strong made hand: raise 70% of the time
		if p.chance(70) {
			amount := s.Pot / 2
			if amount < s.BigBlind {
				amount = s.BigBlind
			}

			return p.raiseOrCall(s, amount)
		}

		if s.AmountToCall > 0 {
			return p.callOrFold(s)
		}

		return action.NewCommand(action.Check)

	case s.Category >= handrank.OnePair:
		if s.AmountToCall == 0 {
			if p.chance(30) {
				return p.raiseOrCall(s, s.BigBlind*2)
			}

			return action.NewCommand(action.Check)
		}

		if s.AmountToCall <= s.BigBlind*3 {
			return p.callOrFold(s)
		}

		return action.NewCommand(action.Fold)

	default:
		if s.AmountToCall == 0 {
			return action.NewCommand(action.Check)
		}

		// bluff-catch small bets 30% of the time
		if s.AmountToCall <= s.BigBlind && p.chance(30) {
			return p.callOrFold(s)
		}

		return action.NewCommand(action.Fold)
	}
}

// raiseOrCall raises by amount, shrinking the raise to fit the stack.
// If the stack cannot raise at all, it degrades to a call or check.
func (p *Policy) raiseOrCall(s Situation, amount int) action.Command {
	if maxRaise := s.Stack - s.AmountToCall; amount > maxRaise {
		amount = maxRaise
	}

	if amount <= 0 {
		if s.AmountToCall == 0 {
			return action.NewCommand(action.Check)
		}

		return p.callOrFold(s)
	}

	return action.NewRaise(amount)
}

// callOrFold calls when the stack covers the bet, otherwise folds
func (p *Policy) callOrFold(s Situation) action.Command {
	if s.AmountToCall > s.Stack {
		return action.NewCommand(action.Fold)
	}

	return action.NewCommand(action.Call)
}

// chance returns true pct percent of the time
func (p *Policy) chance(pct int) bool {
	return p.r.Intn(100) < pct
}
