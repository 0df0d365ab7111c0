package texasholdem

import (
	"quicksandpoker/pkg/deck"
	"quicksandpoker/pkg/poker/action"
	"quicksandpoker/pkg/poker/ai"
)

// DecisionSource produces a command for a player on their turn.
// The interactive shell and the automated policy are the two variants;
// the engine does not care which is behind a seat.
type DecisionSource interface {
	Decide(turn *TurnState) (action.Command, error)
}

// DecisionFunc adapts a function to a DecisionSource
type DecisionFunc func(turn *TurnState) (action.Command, error)

// Decide calls the function
func (f DecisionFunc) Decide(turn *TurnState) (action.Command, error) {
	return f(turn)
}

// PolicySource drives a seat with the automated decision policy
type PolicySource struct {
	policy *ai.Policy
}

// NewPolicySource returns a DecisionSource backed by the policy
func NewPolicySource(policy *ai.Policy) *PolicySource {
	return &PolicySource{policy: policy}
}

// Decide maps the turn snapshot onto the policy
func (s *PolicySource) Decide(turn *TurnState) (action.Command, error) {
	return s.policy.Decide(ai.Situation{
		Hole:         turn.Hole,
		Community:    turn.Community,
		Category:     turn.HandScore.Category,
		AmountToCall: turn.AmountToCall,
		Stack:        turn.Stack,
		Pot:          turn.Pot,
		BigBlind:     turn.BigBlind,
	}), nil
}

// Player is a seat at the table
type Player struct {
	Name string

	chips     int
	hand      deck.Hand
	folded    bool
	bet       int
	settled   bool
	automated bool
	source    DecisionSource
}

// NewPlayer returns a human-driven player
func NewPlayer(name string, source DecisionSource) *Player {
	return &Player{
		Name:   name,
		source: source,
	}
}

// NewAutomatedPlayer returns a policy-driven player
func NewAutomatedPlayer(name string, policy *ai.Policy) *Player {
	return &Player{
		Name:      name,
		automated: true,
		source:    NewPolicySource(policy),
	}
}

// Chips returns the player's stack
func (p *Player) Chips() int {
	return p.chips
}

// Hand returns the player's hole cards
func (p *Player) Hand() deck.Hand {
	return p.hand
}

// Folded returns true if the player folded this round
func (p *Player) Folded() bool {
	return p.folded
}

// Bet returns the chips the player has committed this street
func (p *Player) Bet() int {
	return p.bet
}

// Automated returns true if the seat is policy-driven
func (p *Player) Automated() bool {
	return p.automated
}

// newRound resets the per-round state
func (p *Player) newRound() {
	p.hand = make(deck.Hand, 0, 2)
	p.bet = 0
	p.settled = false
	p.folded = false
}

// newStreet resets the per-street state
func (p *Player) newStreet() {
	p.bet = 0
	p.settled = false
}

// pay commits chips to the pot, capped at the stack for forced bets
func (p *Player) pay(amount int) int {
	if amount > p.chips {
		amount = p.chips
	}

	p.chips -= amount
	p.bet += amount

	return amount
}
