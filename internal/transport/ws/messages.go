package ws

import (
	"encoding/json"

	"taboo/internal/domain"
)

// MessageType represents the type of an inbound WebSocket message
type MessageType string

// Client → Server message types
const (
	MsgJoinRoom    MessageType = "JOIN_ROOM"
	MsgSelectTeam  MessageType = "SELECT_TEAM"
	MsgLeaveTeam   MessageType = "LEAVE_TEAM"
	MsgStartGame   MessageType = "START_GAME"
	MsgStartTurn   MessageType = "START_TURN"
	MsgCardCorrect MessageType = "CARD_CORRECT"
	MsgCardSkip    MessageType = "CARD_SKIP"
	MsgBuzz        MessageType = "BUZZ"
	MsgDismissBuzz MessageType = "DISMISS_BUZZ"
	MsgRestartGame MessageType = "RESTART_GAME"
	MsgPing        MessageType = "PING"
)

// ClientMessage represents a message from client to server. Payloads are
// decoded per type by the handler.
type ClientMessage struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// JoinRoomPayload is the payload for JOIN_ROOM. PlayerID is set when the
// client is reconnecting with an identity recovered from local storage.
type JoinRoomPayload struct {
	PlayerName string `json:"playerName"`
	PlayerID   string `json:"playerId,omitempty"`
}

// SelectTeamPayload is the payload for SELECT_TEAM
type SelectTeamPayload struct {
	Team domain.Team `json:"team"`
}

// Error codes
const (
	ErrCodeInvalidMessage  = "INVALID_MESSAGE"
	ErrCodeRoomFull        = "ROOM_FULL"
	ErrCodeNotHost         = "NOT_HOST"
	ErrCodeGameInProgress  = "GAME_IN_PROGRESS"
	ErrCodeEmptyTeam       = "EMPTY_TEAM"
	ErrCodeInvalidTeam     = "INVALID_TEAM"
	ErrCodeSkipsNotAllowed = "SKIPS_NOT_ALLOWED"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)
