package app

import (
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"taboo/internal/domain"
)

// ClientConnection represents a connected client
type ClientConnection interface {
	Send(message interface{}) error
	ConnID() string
	Close() error
}

// SessionConfig carries the per-room knobs derived from server configuration.
type SessionConfig struct {
	Settings             domain.GameSettings
	MaxPlayers           int // 0 means unlimited
	ReconnectGracePeriod time.Duration
	CleanupCheckInterval time.Duration
	BuzzTimeout          time.Duration
}

// DefaultSessionConfig returns the stock rule set.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		Settings:             domain.DefaultGameSettings(),
		ReconnectGracePeriod: 30 * time.Second,
		CleanupCheckInterval: 10 * time.Second,
		BuzzTimeout:          10 * time.Second,
	}
}

// buzzPenalty is the fixed deduction when a buzz is acknowledged or times
// out. Independent of the configurable skip penalty.
const buzzPenalty = 1

// RoomSession is the per-room coordinator. It owns all authoritative state
// for one room (membership, game, turn, pending alarm intents) and processes
// every inbound message and timer fire under a single lock, so handlers
// always observe a consistent snapshot.
type RoomSession struct {
	mu   sync.Mutex
	room *domain.Room
	game *domain.GameState
	deck []domain.TabooCard
	cfg  SessionConfig

	conns       map[string]ClientConnection // conn id -> connection
	connPlayers map[string]string           // conn id -> player id

	alarms     alarmQueue
	alarmTimer *time.Timer

	logger *slog.Logger
	closed bool

	// Overridable in tests to drive timer races deterministically.
	now      func() time.Time
	armAlarm func(at time.Time)
}

// NewRoomSession creates a lobby-state room coordinator for the given code.
func NewRoomSession(code string, deck []domain.TabooCard, cfg SessionConfig, logger *slog.Logger) *RoomSession {
	s := &RoomSession{
		room:        domain.NewRoom(code, cfg.Settings),
		deck:        deck,
		cfg:         cfg,
		conns:       make(map[string]ClientConnection),
		connPlayers: make(map[string]string),
		logger:      logger.With("roomCode", code),
		now:         time.Now,
	}
	s.armAlarm = s.armTimer
	return s
}

// ============ Connection lifecycle ============

// Attach registers a new transport connection. The connection stays anonymous
// until its JOIN_ROOM message binds it to a player.
func (s *RoomSession) Attach(conn ClientConnection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conns[conn.ConnID()] = conn
}

// Detach handles a transport close: the bound player is marked disconnected
// and a cleanup alarm is scheduled for the grace period. If the active clue
// giver drops mid-turn the turn ends immediately instead of letting the room
// idle out the clock.
func (s *RoomSession) Detach(connID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.conns, connID)
	playerID, bound := s.connPlayers[connID]
	if !bound {
		return
	}
	delete(s.connPlayers, connID)

	player, ok := s.room.GetPlayer(playerID)
	if !ok {
		return
	}

	player.IsConnected = false
	player.LastSeen = s.now()

	s.broadcast(domain.NewMessage(domain.MsgPlayerLeft, &domain.PlayerLeftPayload{PlayerID: playerID}))

	if playerID == s.room.HostID {
		s.assignNewHost()
	}

	if s.game != nil && s.game.CurrentTurn.ClueGiverID == playerID &&
		(s.game.CurrentTurn.Status == domain.TurnActive || s.game.CurrentTurn.Status == domain.TurnBuzzing) {
		s.logger.Info("clue giver disconnected mid-turn, ending turn", "playerID", playerID)
		if s.game.CurrentTurn.Status == domain.TurnBuzzing {
			// A frozen clock must not outlive its clue giver.
			s.alarms.cancel(AlarmBuzzTimeout)
			s.game.CurrentTurn.Status = domain.TurnActive
		}
		s.endTurn()
	}

	s.scheduleAlarm(AlarmPlayerCleanup, s.now().Add(s.cfg.ReconnectGracePeriod))
}

// HandleJoin processes JOIN_ROOM. A known playerID is treated as a
// reconnection and recovers the player's seat; otherwise a fresh player is
// created, the first of whom becomes host.
func (s *RoomSession) HandleJoin(connID, playerName, playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if playerID != "" {
		if player, ok := s.room.GetPlayer(playerID); ok {
			player.IsConnected = true
			player.LastSeen = s.now()
			s.connPlayers[connID] = playerID

			// The pending cleanup intent needs no explicit cancel: the sweep
			// re-checks IsConnected before removing.
			s.sendRoomState(connID, playerID)
			s.broadcastExcept(connID, domain.NewMessage(domain.MsgPlayerReconnected,
				&domain.PlayerReconnectedPayload{PlayerID: playerID}))

			s.logger.Info("player reconnected", "playerID", playerID)
			return nil
		}
	}

	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return domain.ErrEmptyPlayerName
	}

	if s.cfg.MaxPlayers > 0 && s.room.PlayerCount() >= s.cfg.MaxPlayers {
		return domain.ErrRoomFull
	}

	newID := uuid.New().String()
	player := s.room.AddPlayer(newID, playerName)
	s.connPlayers[connID] = newID

	s.sendRoomState(connID, newID)
	s.broadcastExcept(connID, domain.NewMessage(domain.MsgPlayerJoined,
		&domain.PlayerJoinedPayload{Player: player}))

	s.logger.Info("player joined", "playerID", newID, "name", playerName, "isHost", player.IsHost)
	return nil
}

// ============ Lobby actions ============

// SelectTeam moves the sender onto a team roster.
func (s *RoomSession) SelectTeam(connID string, team domain.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !team.Valid() {
		return domain.ErrInvalidTeam
	}

	playerID, bound := s.connPlayers[connID]
	if !bound {
		return nil
	}

	if s.room.SelectTeam(playerID, team) {
		s.broadcast(domain.NewMessage(domain.MsgTeamUpdated,
			&domain.TeamUpdatedPayload{PlayerID: playerID, Team: team}))
	}
	return nil
}

// LeaveTeam detaches the sender from their roster.
func (s *RoomSession) LeaveTeam(connID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	playerID, bound := s.connPlayers[connID]
	if !bound {
		return nil
	}

	if s.room.LeaveTeam(playerID) {
		s.broadcast(domain.NewMessage(domain.MsgTeamUpdated,
			&domain.TeamUpdatedPayload{PlayerID: playerID, Team: domain.TeamNone}))
	}
	return nil
}

// ============ Game lifecycle ============

// StartGame initializes a game. Host only; both teams must be non-empty.
func (s *RoomSession) StartGame(connID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	playerID, bound := s.connPlayers[connID]
	if !bound {
		return nil
	}

	if playerID != s.room.HostID {
		return domain.ErrNotHost
	}
	if s.game != nil || s.room.Status == domain.StatusPlaying {
		return domain.ErrGameInProgress
	}
	if len(s.room.Teams[domain.TeamA]) == 0 || len(s.room.Teams[domain.TeamB]) == 0 {
		return domain.ErrEmptyTeam
	}

	startingTeam := domain.TeamA
	if rand.Intn(2) == 1 {
		startingTeam = domain.TeamB
	}
	clueGiverID := s.room.Teams[startingTeam][0]

	s.game = domain.NewGameState(s.room.Settings, startingTeam, clueGiverID, len(s.deck))
	s.room.Status = domain.StatusPlaying

	s.logger.Info("game started", "startingTeam", startingTeam, "clueGiver", clueGiverID)

	s.broadcast(domain.NewMessage(domain.MsgGameStarted, &domain.GameStartedPayload{Game: s.game}))
	s.sendCardToPlayers()
	return nil
}

// RestartGame discards the game and returns the room to the lobby. Host only.
func (s *RoomSession) RestartGame(connID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	playerID, bound := s.connPlayers[connID]
	if !bound {
		return nil
	}
	if playerID != s.room.HostID {
		return domain.ErrNotHost
	}

	s.room.Status = domain.StatusLobby
	s.game = nil
	s.alarms.clear()
	s.stopTimer()

	s.logger.Info("game restarted")

	s.broadcast(domain.NewMessage(domain.MsgReturnedToLobby,
		&domain.ReturnedToLobbyPayload{Room: s.room}))
	return nil
}

// ============ Turn actions ============

// StartTurn starts the countdown. Clue giver only, from waiting only.
func (s *RoomSession) StartTurn(connID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	playerID, bound := s.connPlayers[connID]
	if !bound || s.game == nil {
		return nil
	}
	turn := s.game.CurrentTurn
	if playerID != turn.ClueGiverID || turn.Status != domain.TurnWaiting {
		return nil
	}

	now := s.now()
	turn.Status = domain.TurnActive
	turn.TimerStartedAt = now
	turn.TimerDuration = s.room.Settings.TurnDuration

	s.alarms.cancel(AlarmTurnEnd)
	s.scheduleAlarm(AlarmTurnEnd, now.Add(turn.TimerDuration))

	s.broadcastTurnStarted()
	return nil
}

// CardCorrect scores the current card and draws the next. Clue giver only,
// while active only. The timer keeps running.
func (s *RoomSession) CardCorrect(connID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	turn, ok := s.activeTurnFor(connID)
	if !ok {
		return nil
	}

	turn.TurnScore++
	s.game.Scores[turn.ActiveTeam]++
	s.game.DrawNextCard()

	s.broadcastScores()
	s.sendCardToPlayers()
	return nil
}

// CardSkip discards the current card, applying the configured penalty. Clue
// giver only, while active only, and only when skips are allowed.
func (s *RoomSession) CardSkip(connID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	turn, ok := s.activeTurnFor(connID)
	if !ok {
		return nil
	}
	if !s.room.Settings.AllowSkips {
		return domain.ErrSkipsNotAllowed
	}

	turn.SkipsUsed++
	if s.room.Settings.SkipPenalty > 0 {
		s.game.Scores[turn.ActiveTeam] -= s.room.Settings.SkipPenalty
	}
	s.game.DrawNextCard()

	s.broadcastScores()
	s.sendCardToPlayers()
	return nil
}

// Buzz freezes the countdown pending clue-giver acknowledgment. Non-active
// team only, while active only.
func (s *RoomSession) Buzz(connID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	playerID, bound := s.connPlayers[connID]
	if !bound || s.game == nil {
		return nil
	}
	player, ok := s.room.GetPlayer(playerID)
	if !ok {
		return nil
	}

	turn := s.game.CurrentTurn
	if !player.Team.Valid() || player.Team == turn.ActiveTeam {
		return nil
	}
	if turn.Status != domain.TurnActive {
		return nil
	}

	now := s.now()
	remaining := turn.TimerDuration - now.Sub(turn.TimerStartedAt)
	if remaining < 0 {
		remaining = 0
	}

	turn.TimerPausedAt = now
	turn.RemainingWhenPaused = remaining
	turn.Status = domain.TurnBuzzing
	turn.BuzzCount++

	// The paused clock must never expire on its own.
	s.alarms.cancel(AlarmTurnEnd)
	s.scheduleAlarm(AlarmBuzzTimeout, now.Add(s.cfg.BuzzTimeout))

	s.broadcast(domain.NewMessage(domain.MsgBuzzerPressed, &domain.BuzzerPressedPayload{
		BuzzedBy:            playerID,
		BuzzerName:          player.Name,
		TimerPausedAt:       now,
		RemainingWhenPaused: remaining,
	}))
	return nil
}

// DismissBuzz acknowledges a buzz and resumes the turn. Clue giver only,
// while buzzing only.
func (s *RoomSession) DismissBuzz(connID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	playerID, bound := s.connPlayers[connID]
	if !bound || s.game == nil {
		return nil
	}
	turn := s.game.CurrentTurn
	if playerID != turn.ClueGiverID || turn.Status != domain.TurnBuzzing {
		return nil
	}

	s.resumeFromBuzz(false)
	return nil
}

// handleBuzzTimeout fires when the clue giver fails to acknowledge in time;
// the game must not stall on an unresponsive clue giver.
func (s *RoomSession) handleBuzzTimeout() {
	if s.game == nil || s.game.CurrentTurn.Status != domain.TurnBuzzing {
		return
	}
	s.resumeFromBuzz(true)
}

// resumeFromBuzz applies the buzz penalty, resumes the frozen countdown, and
// moves to the next card. Shared by DISMISS_BUZZ and the buzz timeout.
func (s *RoomSession) resumeFromBuzz(autoDismissed bool) {
	turn := s.game.CurrentTurn

	if score := s.game.Scores[turn.ActiveTeam] - buzzPenalty; score > 0 {
		s.game.Scores[turn.ActiveTeam] = score
	} else {
		s.game.Scores[turn.ActiveTeam] = 0
	}

	now := s.now()
	remaining := turn.RemainingWhenPaused

	turn.TimerStartedAt = now
	turn.TimerDuration = remaining
	turn.TimerPausedAt = time.Time{}
	turn.RemainingWhenPaused = 0
	turn.Status = domain.TurnActive

	s.alarms.cancel(AlarmBuzzTimeout)

	if remaining <= 0 {
		s.endTurn()
		return
	}
	s.scheduleAlarm(AlarmTurnEnd, now.Add(remaining))

	s.game.DrawNextCard()

	s.broadcast(domain.NewMessage(domain.MsgBuzzDismissed, &domain.BuzzDismissedPayload{
		TimerStartedAt: now,
		TimerDuration:  remaining,
		AutoDismissed:  autoDismissed,
	}))
	s.broadcastScores()
	s.sendCardToPlayers()
}

// endTurn records the turn result and either ends the game or sets up the
// next turn in waiting state.
func (s *RoomSession) endTurn() {
	if s.game == nil {
		return
	}
	turn := s.game.CurrentTurn
	if turn.Status == domain.TurnBuzzing {
		// A paused timer must never silently expire.
		s.logger.Warn("turn end fired while buzzing, ignoring")
		return
	}

	s.alarms.cancel(AlarmTurnEnd)

	result := domain.TurnResult{
		Round:        s.game.CurrentRound,
		Team:         turn.ActiveTeam,
		ClueGiverID:  turn.ClueGiverID,
		CardsCorrect: turn.TurnScore,
		CardsSkipped: turn.SkipsUsed,
		BuzzCount:    turn.BuzzCount,
		FinalScore:   turn.TurnScore,
	}
	s.game.TurnHistory = append(s.game.TurnHistory, result)

	// Each team plays once per round.
	if s.game.CompletedTurns() >= s.game.TotalRounds*2 {
		s.endGame()
		return
	}

	nextTeam := turn.ActiveTeam.Opponent()
	if nextTeam == domain.TeamA {
		s.game.CurrentRound++
	}

	nextClueGiver := s.game.AdvanceClueGiver(nextTeam, s.room.Teams[nextTeam])
	cardIndex := s.game.DrawNextCard()

	nextTurn := &domain.TurnState{
		ActiveTeam:       nextTeam,
		ClueGiverID:      nextClueGiver,
		CurrentCardIndex: cardIndex,
		TimerDuration:    s.room.Settings.TurnDuration,
		Status:           domain.TurnWaiting,
	}
	s.game.CurrentTurn = nextTurn

	s.broadcast(domain.NewMessage(domain.MsgTurnEnded, &domain.TurnEndedPayload{
		Result:   result,
		NextTurn: nextTurn,
	}))
	s.sendCardToPlayers()
}

func (s *RoomSession) endGame() {
	s.room.Status = domain.StatusFinished

	s.logger.Info("game over", "winner", s.game.Winner(),
		"scoreA", s.game.Scores[domain.TeamA], "scoreB", s.game.Scores[domain.TeamB])

	s.broadcast(domain.NewMessage(domain.MsgGameOver, &domain.GameOverPayload{
		Winner:      s.game.Winner(),
		FinalScores: s.game.Scores,
	}))
}

// forfeit ends the game when a team's roster empties mid-game.
func (s *RoomSession) forfeit(emptyTeam domain.Team) {
	winner := emptyTeam.Opponent()
	s.room.Status = domain.StatusFinished

	s.alarms.clear()
	s.stopTimer()

	finalScores := map[domain.Team]int{domain.TeamA: 0, domain.TeamB: 0}
	if s.game != nil {
		finalScores = s.game.Scores
	}

	s.logger.Info("game forfeited", "emptyTeam", emptyTeam, "winner", winner)

	s.broadcast(domain.NewMessage(domain.MsgGameOver, &domain.GameOverPayload{
		Winner:      string(winner),
		FinalScores: finalScores,
		Reason:      domain.ReasonTeamForfeit,
	}))
}

// ============ Cleanup sweep ============

// processPlayerCleanup removes players whose disconnect outlived the grace
// period, then re-polls at a fixed interval while anyone is still
// disconnected. Polling bounds alarm churn at the cost of coarser latency.
func (s *RoomSession) processPlayerCleanup() {
	now := s.now()

	for _, player := range s.room.DisconnectedPlayers() {
		if now.Sub(player.LastSeen) >= s.cfg.ReconnectGracePeriod {
			s.removePlayer(player.ID)
		}
	}

	if len(s.room.DisconnectedPlayers()) > 0 {
		s.scheduleAlarm(AlarmPlayerCleanup, now.Add(s.cfg.CleanupCheckInterval))
	}
}

func (s *RoomSession) removePlayer(playerID string) {
	player, ok := s.room.GetPlayer(playerID)
	if !ok {
		return
	}

	if player.Team.Valid() {
		team := player.Team
		removedIdx := s.room.RemoveFromRoster(team, playerID)
		if removedIdx >= 0 && s.game != nil {
			s.game.AdjustClueGiverIndex(team, removedIdx, len(s.room.Teams[team]))
		}

		if len(s.room.Teams[team]) == 0 && s.room.Status == domain.StatusPlaying {
			s.forfeit(team)
			return
		}
	}

	s.room.DeletePlayer(playerID)

	if playerID == s.room.HostID {
		s.assignNewHost()
	}

	s.logger.Info("player removed after grace period", "playerID", playerID)

	s.broadcast(domain.NewMessage(domain.MsgPlayerRemoved, &domain.PlayerRemovedPayload{
		PlayerID: playerID,
		Reason:   domain.ReasonDisconnectTimeout,
	}))
}

func (s *RoomSession) assignNewHost() {
	if newHostID := s.room.AssignNewHost(); newHostID != "" {
		s.broadcast(domain.NewMessage(domain.MsgHostChanged,
			&domain.HostChangedPayload{NewHostID: newHostID}))
	}
}

// ============ Alarm plumbing ============

// scheduleAlarm queues an intent and re-arms the single timer if the new
// intent is the earliest. Caller must hold the lock.
func (s *RoomSession) scheduleAlarm(alarmType AlarmType, at time.Time) {
	if fireAt, rearm := s.alarms.add(AlarmIntent{Type: alarmType, ScheduledFor: at}); rearm {
		s.armAlarm(fireAt)
	}
}

// onAlarm is the single wake-up handler: it drains every due intent, not
// just one, then re-arms for the minimum of whatever remains.
func (s *RoomSession) onAlarm() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	now := s.now()
	for _, intent := range s.alarms.takeDue(now) {
		switch intent.Type {
		case AlarmTurnEnd:
			s.endTurn()
		case AlarmPlayerCleanup:
			s.processPlayerCleanup()
		case AlarmBuzzTimeout:
			s.handleBuzzTimeout()
		}
	}

	if fireAt, ok := s.alarms.rearm(); ok {
		s.armAlarm(fireAt)
	}
}

func (s *RoomSession) armTimer(at time.Time) {
	d := at.Sub(s.now())
	if d < 0 {
		d = 0
	}
	if s.alarmTimer == nil {
		s.alarmTimer = time.AfterFunc(d, s.onAlarm)
	} else {
		s.alarmTimer.Reset(d)
	}
}

func (s *RoomSession) stopTimer() {
	if s.alarmTimer != nil {
		s.alarmTimer.Stop()
	}
}

// ============ Broadcast helpers ============

// broadcast fans a message out to every open connection. Sends are
// non-blocking at the transport layer, so this never stalls the coordinator.
func (s *RoomSession) broadcast(msg *domain.ServerMessage) {
	for _, conn := range s.conns {
		if err := conn.Send(msg); err != nil {
			s.logger.Debug("send failed", "connID", conn.ConnID(), "error", err)
		}
	}
}

func (s *RoomSession) broadcastExcept(excludeConnID string, msg *domain.ServerMessage) {
	for id, conn := range s.conns {
		if id == excludeConnID {
			continue
		}
		if err := conn.Send(msg); err != nil {
			s.logger.Debug("send failed", "connID", id, "error", err)
		}
	}
}

func (s *RoomSession) sendTo(connID string, msg *domain.ServerMessage) {
	if conn, ok := s.conns[connID]; ok {
		if err := conn.Send(msg); err != nil {
			s.logger.Debug("send failed", "connID", connID, "error", err)
		}
	}
}

func (s *RoomSession) broadcastScores() {
	s.broadcast(domain.NewMessage(domain.MsgScoreUpdated, &domain.ScoreUpdatedPayload{
		Scores:    s.game.Scores,
		TurnScore: s.game.CurrentTurn.TurnScore,
	}))
}

// sendRoomState sends the full snapshot to one connection, plus the current
// card if a game is running and the viewer's role may see it.
func (s *RoomSession) sendRoomState(connID, playerID string) {
	s.sendTo(connID, domain.NewMessage(domain.MsgRoomState, &domain.RoomStatePayload{
		Room:     s.room,
		Game:     s.game,
		PlayerID: playerID,
	}))

	if s.game != nil && s.room.Status == domain.StatusPlaying {
		s.sendCardTo(connID, playerID)
	}
}

// cardFor applies the visibility rule: clue giver and opponents see the card,
// guessers get nil. Computed fresh per viewer on every state change.
func (s *RoomSession) cardFor(playerID string) *domain.TabooCard {
	player, ok := s.room.GetPlayer(playerID)
	if !ok {
		return nil
	}

	turn := s.game.CurrentTurn
	isClueGiver := playerID == turn.ClueGiverID
	isOpponent := player.Team.Valid() && player.Team != turn.ActiveTeam

	if isClueGiver || isOpponent {
		card := s.deck[turn.CurrentCardIndex]
		return &card
	}
	return nil
}

func (s *RoomSession) sendCardTo(connID, playerID string) {
	s.sendTo(connID, domain.NewMessage(domain.MsgCardChanged, &domain.CardChangedPayload{
		Card:      s.cardFor(playerID),
		TurnScore: s.game.CurrentTurn.TurnScore,
	}))
}

// sendCardToPlayers pushes a per-recipient card payload to every bound
// connection.
func (s *RoomSession) sendCardToPlayers() {
	if s.game == nil {
		return
	}
	for connID, playerID := range s.connPlayers {
		s.sendCardTo(connID, playerID)
	}
}

// broadcastTurnStarted sends TURN_STARTED with a per-recipient card.
func (s *RoomSession) broadcastTurnStarted() {
	for connID, playerID := range s.connPlayers {
		s.sendTo(connID, domain.NewMessage(domain.MsgTurnStarted, &domain.TurnStartedPayload{
			Turn: s.game.CurrentTurn,
			Card: s.cardFor(playerID),
		}))
	}
}

// ============ Internal helpers ============

// activeTurnFor returns the current turn when the sender is the clue giver
// and the turn is active; the precondition failures are silent no-ops.
func (s *RoomSession) activeTurnFor(connID string) (*domain.TurnState, bool) {
	playerID, bound := s.connPlayers[connID]
	if !bound || s.game == nil {
		return nil, false
	}
	turn := s.game.CurrentTurn
	if playerID != turn.ClueGiverID || turn.Status != domain.TurnActive {
		return nil, false
	}
	return turn, true
}

// ============ Read-only accessors (hub / HTTP probe) ============

// Code returns the room code.
func (s *RoomSession) Code() string {
	return s.room.Code
}

// CreatedAt returns when the room was created.
func (s *RoomSession) CreatedAt() time.Time {
	return s.room.CreatedAt
}

// Probe summarizes the room for the pre-join HTTP check.
type Probe struct {
	Exists      bool              `json:"exists"`
	Status      domain.RoomStatus `json:"status"`
	PlayerCount int               `json:"playerCount"`
	CanJoin     bool              `json:"canJoin"`
}

// Probe reports room state without mutating anything. A room counts as
// existing once it has players or has left the lobby.
func (s *RoomSession) Probe() Probe {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := s.room.PlayerCount()
	return Probe{
		Exists:      count > 0 || s.room.Status != domain.StatusLobby,
		Status:      s.room.Status,
		PlayerCount: count,
		CanJoin:     s.room.Status == domain.StatusLobby,
	}
}

// PlayerCount returns the number of players in the room.
func (s *RoomSession) PlayerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.room.PlayerCount()
}

// Close shuts the session down, stopping the alarm timer and closing every
// connection.
func (s *RoomSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	s.alarms.clear()
	s.stopTimer()

	for _, conn := range s.conns {
		conn.Close()
	}
	s.conns = make(map[string]ClientConnection)
	s.connPlayers = make(map[string]string)
}
