package deck

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_AddCard(t *testing.T) {
	a := assert.New(t)

	h := make(Hand, 0)
	h.AddCard(CardFromString("5h"))
	h.AddCard(CardFromString("14s"))

	a.Equal("5h,14s", h.String())
	a.True(h.HasCard(CardFromString("5h")))
	a.False(h.HasCard(CardFromString("5s")))
}

func TestHand_Sort(t *testing.T) {
	h := Hand(CardsFromString("14s,2c,13c,3d"))
	sort.Sort(h)

	assert.Equal(t, "2c,13c,3d,14s", h.String())
}

func TestHand_Clone(t *testing.T) {
	a := assert.New(t)

	h := Hand(CardsFromString("2c,3c"))
	clone := h.Clone()
	clone[0] = CardFromString("14s")

	a.Equal("2c,3c", h.String())
	a.Equal("14s,3c", clone.String())
	a.Equal(CardFromString("2c"), h.FirstCard())
	a.Nil(Hand{}.FirstCard())
}
