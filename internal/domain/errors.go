package domain

import "errors"

// Domain errors
var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomFull        = errors.New("room is full")
	ErrPlayerNotFound  = errors.New("player not found")
	ErrNotHost         = errors.New("only host can perform this action")
	ErrGameInProgress  = errors.New("game is already in progress")
	ErrGameNotStarted  = errors.New("no game in progress")
	ErrEmptyTeam       = errors.New("each team needs at least one player")
	ErrInvalidTeam     = errors.New("invalid team")
	ErrSkipsNotAllowed = errors.New("skipping is not allowed")
	ErrEmptyPlayerName = errors.New("player name cannot be empty")
)
