package domain

// Team identifies one of the two fixed teams.
type Team string

const (
	TeamA Team = "A"
	TeamB Team = "B"

	// TeamNone means the player has not picked a team yet.
	TeamNone Team = ""
)

// Valid reports whether the team is one of the two playable teams.
func (t Team) Valid() bool {
	return t == TeamA || t == TeamB
}

// Opponent returns the other team.
func (t Team) Opponent() Team {
	if t == TeamA {
		return TeamB
	}
	return TeamA
}

// RoomStatus represents the lifecycle state of a room.
type RoomStatus string

const (
	StatusLobby    RoomStatus = "lobby"    // Waiting for players and team selection
	StatusPlaying  RoomStatus = "playing"  // Game in progress
	StatusFinished RoomStatus = "finished" // Game over, waiting for restart
)

// String returns the string representation of the status.
func (s RoomStatus) String() string {
	return string(s)
}

// TurnStatus represents the state of the current turn.
type TurnStatus string

const (
	TurnWaiting TurnStatus = "waiting" // Card drawn, clue giver has not started the clock
	TurnActive  TurnStatus = "active"  // Timer running, cards being resolved
	TurnBuzzing TurnStatus = "buzzing" // Timer frozen, awaiting buzz acknowledgment
	TurnEnded   TurnStatus = "ended"
)

// String returns the string representation of the turn status.
func (s TurnStatus) String() string {
	return string(s)
}
