package domain

import "time"

// MessageType labels a server-to-client message.
type MessageType string

const (
	MsgRoomState         MessageType = "ROOM_STATE"
	MsgPlayerJoined      MessageType = "PLAYER_JOINED"
	MsgPlayerLeft        MessageType = "PLAYER_LEFT"
	MsgPlayerReconnected MessageType = "PLAYER_RECONNECTED"
	MsgPlayerRemoved     MessageType = "PLAYER_REMOVED"
	MsgHostChanged       MessageType = "HOST_CHANGED"
	MsgTeamUpdated       MessageType = "TEAM_UPDATED"
	MsgGameStarted       MessageType = "GAME_STARTED"
	MsgTurnStarted       MessageType = "TURN_STARTED"
	MsgCardChanged       MessageType = "CARD_CHANGED"
	MsgBuzzerPressed     MessageType = "BUZZER_PRESSED"
	MsgBuzzDismissed     MessageType = "BUZZ_DISMISSED"
	MsgScoreUpdated      MessageType = "SCORE_UPDATED"
	MsgTurnEnded         MessageType = "TURN_ENDED"
	MsgGameOver          MessageType = "GAME_OVER"
	MsgReturnedToLobby   MessageType = "RETURNED_TO_LOBBY"
	MsgError             MessageType = "ERROR"
	MsgPong              MessageType = "PONG"
)

// ServerMessage is the envelope for every server-to-client message.
type ServerMessage struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// NewMessage creates a server message.
func NewMessage(msgType MessageType, payload interface{}) *ServerMessage {
	return &ServerMessage{Type: msgType, Payload: payload}
}

// Removal reasons for PLAYER_REMOVED.
const (
	ReasonDisconnectTimeout = "disconnect_timeout"
	ReasonKicked            = "kicked"
)

// Game-over reasons.
const (
	ReasonTeamForfeit = "team_forfeit"
)

// RoomStatePayload is the full snapshot sent to a joining or reconnecting
// connection only.
type RoomStatePayload struct {
	Room     *Room      `json:"room"`
	Game     *GameState `json:"game"`
	PlayerID string     `json:"playerId"`
}

// PlayerJoinedPayload announces a new player to everyone else.
type PlayerJoinedPayload struct {
	Player *Player `json:"player"`
}

// PlayerLeftPayload announces a disconnect (the player may still return).
type PlayerLeftPayload struct {
	PlayerID string `json:"playerId"`
}

// PlayerReconnectedPayload announces a reconnect within the grace period.
type PlayerReconnectedPayload struct {
	PlayerID string `json:"playerId"`
}

// PlayerRemovedPayload announces a permanent removal.
type PlayerRemovedPayload struct {
	PlayerID string `json:"playerId"`
	Reason   string `json:"reason"`
}

// HostChangedPayload announces a host handover.
type HostChangedPayload struct {
	NewHostID string `json:"newHostId"`
}

// TeamUpdatedPayload announces a roster change. Team is empty when the player
// left their team.
type TeamUpdatedPayload struct {
	PlayerID string `json:"playerId"`
	Team     Team   `json:"team"`
}

// GameStartedPayload carries the freshly initialized game.
type GameStartedPayload struct {
	Game *GameState `json:"game"`
}

// TurnStartedPayload carries the started turn. Card is filtered per
// recipient: guessers receive nil.
type TurnStartedPayload struct {
	Turn *TurnState `json:"turn"`
	Card *TabooCard `json:"card"`
}

// CardChangedPayload carries the current card, filtered per recipient.
type CardChangedPayload struct {
	Card      *TabooCard `json:"card"`
	TurnScore int        `json:"turnScore"`
}

// BuzzerPressedPayload freezes the countdown on every client consistently.
type BuzzerPressedPayload struct {
	BuzzedBy            string        `json:"buzzedBy"`
	BuzzerName          string        `json:"buzzerName"`
	TimerPausedAt       time.Time     `json:"timerPausedAt"`
	RemainingWhenPaused time.Duration `json:"remainingTimeWhenPaused"`
}

// BuzzDismissedPayload resumes the countdown. AutoDismissed is set when the
// clue giver failed to acknowledge within the buzz timeout.
type BuzzDismissedPayload struct {
	TimerStartedAt time.Time     `json:"timerStartedAt"`
	TimerDuration  time.Duration `json:"timerDuration"`
	AutoDismissed  bool          `json:"autoDismissed,omitempty"`
}

// ScoreUpdatedPayload carries running team scores plus the turn score.
type ScoreUpdatedPayload struct {
	Scores    map[Team]int `json:"scores"`
	TurnScore int          `json:"turnScore"`
}

// TurnEndedPayload carries the finished turn's result and the next turn.
type TurnEndedPayload struct {
	Result   TurnResult `json:"result"`
	NextTurn *TurnState `json:"nextTurn"`
}

// GameOverPayload declares the winner. Reason is set for forfeits.
type GameOverPayload struct {
	Winner      string       `json:"winner"`
	FinalScores map[Team]int `json:"finalScores"`
	Reason      string       `json:"reason,omitempty"`
}

// ReturnedToLobbyPayload carries the reset room after a restart.
type ReturnedToLobbyPayload struct {
	Room *Room `json:"room"`
}

// ErrorPayload is sent only to the offending connection.
type ErrorPayload struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// PongPayload answers a PING.
type PongPayload struct {
	ServerTime time.Time `json:"serverTime"`
}
