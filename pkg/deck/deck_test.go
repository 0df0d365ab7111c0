package deck

import (
	"quicksandpoker/internal/rng"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	a := assert.New(t)
	d := New(rng.NewSeeded(0))

	a.Equal(52, d.CardsLeft())
	a.Equal(Card{Rank: 2, Suit: Clubs}, *d.Cards[0])
	a.Equal(Card{Rank: Ace, Suit: Spades}, *d.Cards[51])
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	d1 := New(rng.NewSeeded(1))
	unshuffled := d1.HashCode()
	d1.Shuffle()
	a.NotEqual(unshuffled, d1.HashCode())

	// same seed, same order
	d2 := New(rng.NewSeeded(1))
	d2.Shuffle()
	a.Equal(d1.HashCode(), d2.HashCode())

	// no card may appear twice
	seen := make(map[Card]bool)
	for _, card := range d1.Cards {
		a.False(seen[*card], "card %s appeared twice", card)
		seen[*card] = true
	}
	a.Len(seen, 52)

	// a re-shuffle rebuilds the full deck first
	_, _ = d1.Deal(10)
	d1.Shuffle()
	a.Equal(52, d1.CardsLeft())
}

func TestDeck_Draw(t *testing.T) {
	a := assert.New(t)
	d := New(rng.NewSeeded(0))

	a.True(d.CanDraw(52))
	a.False(d.CanDraw(53))

	for i := 0; i < 52; i++ {
		card, err := d.Draw()
		a.NotNil(card)
		a.NoError(err)
	}

	card, err := d.Draw()
	a.Nil(card)
	a.Equal(ErrEndOfDeck, err)
}

func TestDeck_Deal(t *testing.T) {
	a := assert.New(t)
	d := New(rng.NewSeeded(0))
	d.Shuffle()

	cards, err := d.Deal(3)
	a.NoError(err)
	a.Len(cards, 3)
	a.Equal(49, d.CardsLeft())

	// failure must not consume cards
	cards, err = d.Deal(50)
	a.Equal(ErrEndOfDeck, err)
	a.Nil(cards)
	a.Equal(49, d.CardsLeft())
}
