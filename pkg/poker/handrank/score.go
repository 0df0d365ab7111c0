package handrank

import "fmt"

// Category is a poker hand category, i.e., royal flush
type Category int

// Constants for category, weakest first
const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	case RoyalFlush:
		return "Royal flush"
	default:
		panic(fmt.Sprintf("unknown category: %d", c))
	}
}

// Score is the rank of the best five-card hand a set of cards can make.
// Scores order by category, then lexicographically by the tie-break ranks
// (most significant first). Scores are computed on demand and never stored.
type Score struct {
	Category  Category `json:"category"`
	TieBreaks []int    `json:"tieBreaks"`
}

// Compare returns a negative number if s ranks below other, zero if the
// hands tie exactly, and a positive number if s ranks above other.
func (s Score) Compare(other Score) int {
	if s.Category != other.Category {
		return int(s.Category) - int(other.Category)
	}

	n := len(s.TieBreaks)
	if len(other.TieBreaks) < n {
		n = len(other.TieBreaks)
	}

	for i := 0; i < n; i++ {
		if s.TieBreaks[i] != other.TieBreaks[i] {
			return s.TieBreaks[i] - other.TieBreaks[i]
		}
	}

	return len(s.TieBreaks) - len(other.TieBreaks)
}

// Less returns true if s ranks below other
func (s Score) Less(other Score) bool {
	return s.Compare(other) < 0
}

// Equal returns true if the hands tie on category and every tie-break rank
func (s Score) Equal(other Score) bool {
	return s.Compare(other) == 0
}

func (s Score) String() string {
	return s.Category.String()
}
