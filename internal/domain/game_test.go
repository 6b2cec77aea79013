package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameState_FirstCardDrawn(t *testing.T) {
	g := NewGameState(DefaultGameSettings(), TeamA, "p1", 10)

	assert.Equal(t, 1, g.CurrentRound)
	assert.Equal(t, 6, g.TotalRounds)
	assert.Equal(t, TeamA, g.CurrentTurn.ActiveTeam)
	assert.Equal(t, "p1", g.CurrentTurn.ClueGiverID)
	assert.Equal(t, TurnWaiting, g.CurrentTurn.Status)

	// First card is already in the discard pile
	assert.Len(t, g.CardDeck, 9)
	require.Len(t, g.UsedCards, 1)
	assert.Equal(t, g.UsedCards[0], g.CurrentTurn.CurrentCardIndex)
}

func TestDrawNextCard_DeckMultisetInvariant(t *testing.T) {
	const deckSize = 10
	g := NewGameState(DefaultGameSettings(), TeamA, "p1", deckSize)

	// Draw far past the deck size to force reshuffles
	for i := 0; i < deckSize*3; i++ {
		g.DrawNextCard()

		assert.Equal(t, deckSize, len(g.CardDeck)+len(g.UsedCards),
			"cards lost or duplicated after draw %d", i)

		seen := make(map[int]bool, deckSize)
		for _, idx := range g.CardDeck {
			assert.False(t, seen[idx], "duplicate card index %d", idx)
			seen[idx] = true
		}
		for _, idx := range g.UsedCards {
			assert.False(t, seen[idx], "duplicate card index %d", idx)
			seen[idx] = true
		}
		for idx := 0; idx < deckSize; idx++ {
			assert.True(t, seen[idx], "card index %d vanished", idx)
		}
	}
}

func TestDrawNextCard_ReshuffleOnEmpty(t *testing.T) {
	g := NewGameState(DefaultGameSettings(), TeamA, "p1", 3)

	// Exhaust the draw pile
	g.DrawNextCard()
	g.DrawNextCard()
	require.Empty(t, g.CardDeck)
	require.Len(t, g.UsedCards, 3)

	// Next draw recycles the discard pile
	g.DrawNextCard()
	assert.Len(t, g.CardDeck, 2)
	assert.Len(t, g.UsedCards, 1)
	assert.Equal(t, g.UsedCards[0], g.CurrentTurn.CurrentCardIndex)
}

func TestAdvanceClueGiver(t *testing.T) {
	g := NewGameState(DefaultGameSettings(), TeamA, "p1", 5)
	roster := []string{"p1", "p2", "p3"}

	assert.Equal(t, "p2", g.AdvanceClueGiver(TeamA, roster))
	assert.Equal(t, "p3", g.AdvanceClueGiver(TeamA, roster))
	assert.Equal(t, "p1", g.AdvanceClueGiver(TeamA, roster))
}

func TestAdvanceClueGiver_EmptyRoster(t *testing.T) {
	g := NewGameState(DefaultGameSettings(), TeamA, "p1", 5)
	g.ClueGiverIndex[TeamB] = 2

	assert.Equal(t, "", g.AdvanceClueGiver(TeamB, nil))
	assert.Equal(t, 0, g.ClueGiverIndex[TeamB])
}

func TestAdjustClueGiverIndex_AlwaysInRange(t *testing.T) {
	// For every roster size, removal position, and rotation pointer, the
	// adjusted pointer must land in [0, newLen) (or 0 when the team empties).
	for size := 1; size <= 5; size++ {
		for removed := 0; removed < size; removed++ {
			for current := 0; current < size; current++ {
				name := fmt.Sprintf("size=%d removed=%d current=%d", size, removed, current)
				t.Run(name, func(t *testing.T) {
					g := NewGameState(DefaultGameSettings(), TeamA, "p1", 5)
					g.ClueGiverIndex[TeamA] = current

					newLen := size - 1
					g.AdjustClueGiverIndex(TeamA, removed, newLen)

					got := g.ClueGiverIndex[TeamA]
					if newLen == 0 {
						assert.Equal(t, 0, got)
					} else {
						assert.GreaterOrEqual(t, got, 0)
						assert.Less(t, got, newLen)
					}
				})
			}
		}
	}
}

func TestWinner(t *testing.T) {
	testCases := []struct {
		scoreA, scoreB int
		expected       string
	}{
		{3, 1, "A"},
		{1, 3, "B"},
		{2, 2, WinnerTie},
		{0, 0, WinnerTie},
	}

	for _, tc := range testCases {
		g := NewGameState(DefaultGameSettings(), TeamA, "p1", 5)
		g.Scores[TeamA] = tc.scoreA
		g.Scores[TeamB] = tc.scoreB
		assert.Equal(t, tc.expected, g.Winner(), "scores %d-%d", tc.scoreA, tc.scoreB)
	}
}
