package handrank

import (
	"errors"
	"sort"

	"quicksandpoker/pkg/deck"
)

const handSize = 5

// maxCards is a hole hand plus a full community board
const maxCards = 7

// ErrTooManyCards is an error when more than seven cards are evaluated
var ErrTooManyCards = errors.New("cannot evaluate more than seven cards")

// ErrDuplicateCard is an error when the same card appears twice
var ErrDuplicateCard = errors.New("duplicate card in hand")

// Evaluate returns the Score of the best five-card hand the cards can make.
// Five cards are classified directly. Six or seven cards are scored by
// exhaustively evaluating every five-card subset and keeping the maximum.
// Fewer than five cards produce a high-card Score of the held ranks sorted
// descending; that partial signal is for display only and must never be used
// for settlement.
func Evaluate(cards deck.Hand) (Score, error) {
	if len(cards) > maxCards {
		return Score{}, ErrTooManyCards
	}

	seen := make(map[deck.Card]bool, len(cards))
	for _, c := range cards {
		if seen[*c] {
			return Score{}, ErrDuplicateCard
		}
		seen[*c] = true
	}

	if len(cards) < handSize {
		return Score{Category: HighCard, TieBreaks: ranksDescending(cards)}, nil
	}

	if len(cards) == handSize {
		return evaluateFive(cards), nil
	}

	var best Score
	for _, subset := range fiveCardSubsets(len(cards)) {
		five := make(deck.Hand, handSize)
		for i, idx := range subset {
			five[i] = cards[idx]
		}

		if score := evaluateFive(five); best.Less(score) {
			best = score
		}
	}

	return best, nil
}

// evaluateFive classifies exactly five cards
func evaluateFive(cards deck.Hand) Score {
	ranks := ranksDescending(cards)

	isFlush := true
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			isFlush = false
			break
		}
	}

	isStraight, straightHigh := checkStraight(ranks)

	if isFlush && isStraight {
		if straightHigh == deck.Ace {
			return Score{Category: RoyalFlush, TieBreaks: []int{}}
		}

		return Score{Category: StraightFlush, TieBreaks: []int{straightHigh}}
	}

	count := make(map[int]int, handSize)
	for _, r := range ranks {
		count[r]++
	}

	if quad, ok := rankWithCount(count, 4); ok {
		return Score{Category: FourOfAKind, TieBreaks: append([]int{quad}, kickers(ranks, quad)...)}
	}

	trip, hasTrip := rankWithCount(count, 3)
	pairs := ranksWithCount(count, 2)

	if hasTrip && len(pairs) == 1 {
		return Score{Category: FullHouse, TieBreaks: []int{trip, pairs[0]}}
	}

	if isFlush {
		return Score{Category: Flush, TieBreaks: ranks}
	}

	if isStraight {
		return Score{Category: Straight, TieBreaks: []int{straightHigh}}
	}

	if hasTrip {
		return Score{Category: ThreeOfAKind, TieBreaks: append([]int{trip}, kickers(ranks, trip)...)}
	}

	if len(pairs) == 2 {
		kicker := kickers(ranks, pairs[0], pairs[1])
		return Score{Category: TwoPair, TieBreaks: []int{pairs[0], pairs[1], kicker[0]}}
	}

	if len(pairs) == 1 {
		return Score{Category: OnePair, TieBreaks: append([]int{pairs[0]}, kickers(ranks, pairs[0])...)}
	}

	return Score{Category: HighCard, TieBreaks: ranks}
}

// checkStraight reports whether five descending ranks form a run and the
// rank of the run's top card. The wheel (A-2-3-4-5) is a straight whose
// high card is the five, not the ace.
func checkStraight(ranks []int) (bool, int) {
	for i := 1; i < len(ranks); i++ {
		if ranks[i] == ranks[i-1] {
			return false, 0
		}
	}

	if ranks[0]-ranks[len(ranks)-1] == 4 {
		return true, ranks[0]
	}

	// wheel: ace plays low under the 5-4-3-2
	if ranks[0] == deck.Ace && ranks[1] == 5 && ranks[len(ranks)-1] == 2 && ranks[1]-ranks[len(ranks)-1] == 3 {
		return true, 5
	}

	return false, 0
}

func ranksDescending(cards deck.Hand) []int {
	ranks := make([]int, len(cards))
	for i, c := range cards {
		ranks[i] = c.Rank
	}

	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))
	return ranks
}

func rankWithCount(count map[int]int, n int) (int, bool) {
	best, found := 0, false
	for rank, c := range count {
		if c == n && rank > best {
			best = rank
			found = true
		}
	}

	return best, found
}

// ranksWithCount returns the ranks appearing exactly n times, highest first
func ranksWithCount(count map[int]int, n int) []int {
	ranks := make([]int, 0, 2)
	for rank, c := range count {
		if c == n {
			ranks = append(ranks, rank)
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))
	return ranks
}

// kickers returns the ranks not excluded, highest first
func kickers(ranks []int, exclude ...int) []int {
	out := make([]int, 0, len(ranks))
Outer:
	for _, r := range ranks {
		for _, ex := range exclude {
			if r == ex {
				continue Outer
			}
		}

		out = append(out, r)
	}

	return out
}
