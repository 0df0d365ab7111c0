package equity

import (
	"errors"
	"fmt"
	"time"

	"quicksandpoker/internal/rng"
	"quicksandpoker/pkg/deck"
	"quicksandpoker/pkg/poker/handrank"
)

// ErrNotEnoughCards is an error when the unseen pool cannot cover the
// community completion plus every opponent's hole cards
var ErrNotEnoughCards = errors.New("not enough unseen cards for the requested simulation")

// Estimator approximates a player's chance of winning at showdown by
// repeatedly completing the unknown cards and re-evaluating every hand.
// Trials are statistically independent; each worker owns a private
// generator so no shuffle state is shared across trials.
type Estimator struct {
	// Trials is the number of simulations per estimate
	Trials int
	// Workers is the number of goroutines the trials are split across
	Workers int
	// Seed makes estimates reproducible when non-zero
	Seed int64
}

// New returns an Estimator
func New(trials, workers int) *Estimator {
	return &Estimator{
		Trials:  trials,
		Workers: workers,
	}
}

// Estimate returns the win probability, in percent [0, 100], of the hole
// cards against the given number of opponents. Ties count as wins; splits
// are not tracked separately. The result is approximate: repeated calls
// differ by sampling noise, and more trials only tighten the variance.
func (e *Estimator) Estimate(hole deck.Hand, community deck.Hand, opponents int) (float64, error) {
	if len(hole) != 2 {
		return 0, fmt.Errorf("hole must be exactly 2 cards, got %d", len(hole))
	}

	switch len(community) {
	case 0, 3, 4, 5:
	default:
		return 0, fmt.Errorf("community must be 0, 3, 4, or 5 cards, got %d", len(community))
	}

	if opponents < 1 {
		return 0, fmt.Errorf("opponents must be at least 1, got %d", opponents)
	}

	pool := unseenPool(hole, community)
	need := (5 - len(community)) + 2*opponents
	if len(pool) < need {
		return 0, ErrNotEnoughCards
	}

	trials := e.Trials
	if trials < 1 {
		trials = 1
	}

	workers := e.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > trials {
		workers = trials
	}

	seed := e.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	perWorker := trials / workers
	remainder := trials % workers

	results := make(chan int, workers)
	for w := 0; w < workers; w++ {
		workerTrials := perWorker
		if w < remainder {
			workerTrials++
		}

		go func(workerTrials int, g rng.Generator) {
			wins := 0
			local := make(deck.Hand, len(pool))
			copy(local, pool)

			for i := 0; i < workerTrials; i++ {
				if simulate(g, local, hole, community, opponents) {
					wins++
				}
			}

			results <- wins
		}(workerTrials, rng.NewSeeded(seed+int64(w)))
	}

	wins := 0
	for w := 0; w < workers; w++ {
		wins += <-results
	}

	return float64(wins) / float64(trials) * 100, nil
}

// simulate runs a single trial: shuffle the unseen pool, complete the
// community, deal every opponent two cards, and compare best hands.
// Returns true unless an opponent strictly beats the player.
func simulate(g rng.Generator, pool, hole, community deck.Hand, opponents int) bool {
	shuffle(g, pool)

	board := make(deck.Hand, len(community), 5)
	copy(board, community)

	next := 0
	for len(board) < 5 {
		board = append(board, pool[next])
		next++
	}

	playerScore, err := handrank.Evaluate(append(hole.Clone(), board...))
	if err != nil {
		panic(err)
	}

	for opp := 0; opp < opponents; opp++ {
		oppHand := append(deck.Hand{pool[next], pool[next+1]}, board...)
		next += 2

		oppScore, err := handrank.Evaluate(oppHand)
		if err != nil {
			panic(err)
		}

		if playerScore.Less(oppScore) {
			return false
		}
	}

	return true
}

// unseenPool returns the 52-card deck minus the player's known cards
func unseenPool(hole, community deck.Hand) deck.Hand {
	pool := make(deck.Hand, 0, 52)
	for _, suit := range deck.Suits {
		for rank := 2; rank <= deck.Ace; rank++ {
			card := &deck.Card{Rank: rank, Suit: suit}
			if hole.HasCard(card) || community.HasCard(card) {
				continue
			}

			pool = append(pool, card)
		}
	}

	return pool
}

func shuffle(g rng.Generator, cards deck.Hand) {
	for j := len(cards) - 1; j > 0; j-- {
		i := g.Intn(j + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
