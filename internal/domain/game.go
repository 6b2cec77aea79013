package domain

import (
	"math/rand"
	"time"
)

// GameSettings holds configurable game parameters.
type GameSettings struct {
	TurnDuration time.Duration `json:"turnDuration"`
	MaxRounds    int           `json:"maxRounds"`
	AllowSkips   bool          `json:"allowSkips"`
	SkipPenalty  int           `json:"skipPenalty"`
}

// DefaultGameSettings returns the default game settings.
func DefaultGameSettings() GameSettings {
	return GameSettings{
		TurnDuration: 60 * time.Second,
		MaxRounds:    6,
		AllowSkips:   true,
		SkipPenalty:  0,
	}
}

// TurnState is the live state of a single team's timed turn. One instance is
// live at a time and is replaced wholesale on each turn transition.
type TurnState struct {
	ActiveTeam       Team          `json:"activeTeam"`
	ClueGiverID      string        `json:"clueGiverId"`
	CurrentCardIndex int           `json:"currentCardIndex"`
	TurnScore        int           `json:"turnScore"`
	SkipsUsed        int           `json:"skipsUsed"`
	BuzzCount        int           `json:"buzzCount"`
	TimerStartedAt   time.Time     `json:"timerStartedAt"`
	TimerDuration    time.Duration `json:"timerDuration"`
	Status           TurnStatus    `json:"status"`

	// Set only while buzzing: when the clock froze and how much was left.
	TimerPausedAt       time.Time     `json:"timerPausedAt"`
	RemainingWhenPaused time.Duration `json:"remainingTimeWhenPaused"`
}

// TurnResult is the immutable record of one completed turn.
type TurnResult struct {
	Round        int    `json:"round"`
	Team         Team   `json:"team"`
	ClueGiverID  string `json:"clueGiverId"`
	CardsCorrect int    `json:"cardsCorrect"`
	CardsSkipped int    `json:"cardsSkipped"`
	BuzzCount    int    `json:"buzzCount"`
	FinalScore   int    `json:"finalScore"`
}

// GameState holds everything scoped to one started game. It is nil while the
// room sits in the lobby and is discarded on restart.
type GameState struct {
	CurrentRound   int          `json:"currentRound"`
	TotalRounds    int          `json:"totalRounds"`
	CurrentTurn    *TurnState   `json:"currentTurn"`
	Scores         map[Team]int `json:"scores"`
	ClueGiverIndex map[Team]int `json:"clueGiverIndex"`
	TurnHistory    []TurnResult `json:"turnHistory"`

	// Draw pile and discard pile of card indices. Together they always hold
	// exactly one occurrence of every card in play; the current turn's card
	// sits in UsedCards.
	CardDeck  []int `json:"cardDeck"`
	UsedCards []int `json:"usedCards"`
}

// NewGameState shuffles a deck of deckSize card indices and builds the first
// turn in waiting state for the given starting team and clue giver. The first
// card is drawn immediately.
func NewGameState(settings GameSettings, startingTeam Team, clueGiverID string, deckSize int) *GameState {
	indices := rand.Perm(deckSize)

	return &GameState{
		CurrentRound: 1,
		TotalRounds:  settings.MaxRounds,
		CurrentTurn: &TurnState{
			ActiveTeam:       startingTeam,
			ClueGiverID:      clueGiverID,
			CurrentCardIndex: indices[0],
			TimerDuration:    settings.TurnDuration,
			Status:           TurnWaiting,
		},
		Scores:         map[Team]int{TeamA: 0, TeamB: 0},
		ClueGiverIndex: map[Team]int{TeamA: 0, TeamB: 0},
		TurnHistory:    make([]TurnResult, 0),
		CardDeck:       indices[1:],
		UsedCards:      []int{indices[0]},
	}
}

// DrawNextCard moves the top card of the draw pile into the discard pile and
// onto the current turn. When the draw pile is empty the discard pile is
// reshuffled back in, so no card is ever lost or duplicated.
func (g *GameState) DrawNextCard() int {
	if len(g.CardDeck) == 0 {
		g.CardDeck = g.UsedCards
		rand.Shuffle(len(g.CardDeck), func(i, j int) {
			g.CardDeck[i], g.CardDeck[j] = g.CardDeck[j], g.CardDeck[i]
		})
		g.UsedCards = []int{}
	}

	next := g.CardDeck[0]
	g.CardDeck = g.CardDeck[1:]
	g.UsedCards = append(g.UsedCards, next)
	g.CurrentTurn.CurrentCardIndex = next
	return next
}

// AdvanceClueGiver rotates the clue-giver pointer for a team and returns the
// next clue giver's ID, guarding against an empty roster.
func (g *GameState) AdvanceClueGiver(team Team, roster []string) string {
	if len(roster) == 0 {
		g.ClueGiverIndex[team] = 0
		return ""
	}

	next := (g.ClueGiverIndex[team] + 1) % len(roster)
	g.ClueGiverIndex[team] = next
	return roster[next]
}

// AdjustClueGiverIndex repairs a team's rotation pointer after a roster
// removal so it stays within [0, newLen). removedIdx is the position the
// removed player occupied.
func (g *GameState) AdjustClueGiverIndex(team Team, removedIdx, newLen int) {
	current := g.ClueGiverIndex[team]
	switch {
	case newLen == 0:
		g.ClueGiverIndex[team] = 0
	case removedIdx < current:
		g.ClueGiverIndex[team] = current - 1
	case current >= newLen:
		g.ClueGiverIndex[team] = current % newLen
	}
}

// CompletedTurns returns how many turns have finished.
func (g *GameState) CompletedTurns() int {
	return len(g.TurnHistory)
}

// Winner compares final scores: the higher team wins, equal scores tie.
func (g *GameState) Winner() string {
	switch {
	case g.Scores[TeamA] > g.Scores[TeamB]:
		return string(TeamA)
	case g.Scores[TeamB] > g.Scores[TeamA]:
		return string(TeamB)
	default:
		return WinnerTie
	}
}

// WinnerTie is the GAME_OVER winner value when scores are level.
const WinnerTie = "tie"
