package app

import (
	"crypto/rand"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"taboo/internal/config"
	"taboo/internal/domain"
)

const (
	// DefaultRoomCodeLength is the default length for room codes
	DefaultRoomCodeLength = 5

	// StaleRoomTimeout is how long before an empty room is cleaned up
	StaleRoomTimeout = 2 * time.Hour
)

// RoomCodeChars are characters used for room codes (no ambiguous chars)
const RoomCodeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// RoomHub manages all active room sessions. Rooms are fully independent of
// each other; the hub only keys them by code.
type RoomHub struct {
	sessions       map[string]*RoomSession
	mu             sync.RWMutex
	roomCodeLength int
	sessionCfg     SessionConfig
	logger         *slog.Logger
	done           chan struct{}
}

// NewRoomHub creates a hub whose sessions inherit the game configuration.
func NewRoomHub(cfg *config.Config, logger *slog.Logger) *RoomHub {
	codeLength := DefaultRoomCodeLength
	if cfg != nil && cfg.Game.RoomCodeLength > 0 {
		codeLength = cfg.Game.RoomCodeLength
	}

	sessionCfg := DefaultSessionConfig()
	if cfg != nil {
		sessionCfg = SessionConfig{
			Settings: domain.GameSettings{
				TurnDuration: cfg.Game.TurnDuration,
				MaxRounds:    cfg.Game.MaxRounds,
				AllowSkips:   cfg.Game.AllowSkips,
				SkipPenalty:  cfg.Game.SkipPenalty,
			},
			MaxPlayers:           cfg.Game.MaxPlayers,
			ReconnectGracePeriod: cfg.Game.ReconnectGracePeriod,
			CleanupCheckInterval: cfg.Game.CleanupCheckInterval,
			BuzzTimeout:          cfg.Game.BuzzTimeout,
		}
	}

	hub := &RoomHub{
		sessions:       make(map[string]*RoomSession),
		roomCodeLength: codeLength,
		sessionCfg:     sessionCfg,
		logger:         logger,
		done:           make(chan struct{}),
	}

	// Start cleanup goroutine
	go hub.cleanupLoop()

	return hub
}

// CreateRoom creates a new room with a generated code.
func (h *RoomHub) CreateRoom() (*RoomSession, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var roomCode string
	for attempts := 0; attempts < 10; attempts++ {
		roomCode = h.generateRoomCode()
		if _, exists := h.sessions[roomCode]; !exists {
			break
		}
	}
	if _, exists := h.sessions[roomCode]; exists {
		return nil, fmt.Errorf("failed to generate unique room code")
	}

	session := NewRoomSession(roomCode, Cards, h.sessionCfg, h.logger)
	h.sessions[roomCode] = session

	h.logger.Info("room created", "roomCode", roomCode)

	return session, nil
}

// GetOrCreate returns the session for a code, materializing the room on
// first attach. Codes are case-insensitive.
func (h *RoomHub) GetOrCreate(roomCode string) *RoomSession {
	roomCode = strings.ToUpper(roomCode)

	h.mu.Lock()
	defer h.mu.Unlock()

	if session, ok := h.sessions[roomCode]; ok {
		return session
	}

	session := NewRoomSession(roomCode, Cards, h.sessionCfg, h.logger)
	h.sessions[roomCode] = session

	h.logger.Info("room created on first attach", "roomCode", roomCode)

	return session
}

// GetSession returns a room session by code.
func (h *RoomHub) GetSession(roomCode string) (*RoomSession, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	session, ok := h.sessions[strings.ToUpper(roomCode)]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	return session, nil
}

// GetSessionCount returns the number of active rooms.
func (h *RoomHub) GetSessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// GetTotalPlayerCount returns the total number of players across all rooms.
func (h *RoomHub) GetTotalPlayerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, session := range h.sessions {
		total += session.PlayerCount()
	}
	return total
}

// Close shuts down the hub and all sessions.
func (h *RoomHub) Close() {
	close(h.done)

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, session := range h.sessions {
		session.Close()
	}
	h.sessions = make(map[string]*RoomSession)
}

// generateRoomCode generates a random room code
func (h *RoomHub) generateRoomCode() string {
	b := make([]byte, h.roomCodeLength)
	rand.Read(b)

	code := make([]byte, h.roomCodeLength)
	for i := range code {
		code[i] = RoomCodeChars[int(b[i])%len(RoomCodeChars)]
	}

	return string(code)
}

// cleanupLoop periodically cleans up stale rooms
func (h *RoomHub) cleanupLoop() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-h.done:
			return
		case <-ticker.C:
			h.cleanupStaleRooms()
		}
	}
}

// cleanupStaleRooms removes rooms that have sat empty for too long
func (h *RoomHub) cleanupStaleRooms() {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := time.Now()
	stale := make([]string, 0)

	for roomCode, session := range h.sessions {
		if session.PlayerCount() == 0 && now.Sub(session.CreatedAt()) > StaleRoomTimeout {
			stale = append(stale, roomCode)
		}
	}

	for _, roomCode := range stale {
		if session, ok := h.sessions[roomCode]; ok {
			session.Close()
			delete(h.sessions, roomCode)
			h.logger.Info("stale room cleaned up", "roomCode", roomCode)
		}
	}
}
