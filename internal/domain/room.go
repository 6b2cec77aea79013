package domain

import "time"

// Player represents a player in a room. The ID is stable across reconnects;
// clients resend it on JOIN_ROOM to recover their seat.
type Player struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Team        Team      `json:"team,omitempty"`
	IsHost      bool      `json:"isHost"`
	IsConnected bool      `json:"isConnected"`
	LastSeen    time.Time `json:"lastSeen"`
}

// NewPlayer creates a connected player.
func NewPlayer(id, name string, isHost bool) *Player {
	return &Player{
		ID:          id,
		Name:        name,
		Team:        TeamNone,
		IsHost:      isHost,
		IsConnected: true,
		LastSeen:    time.Now(),
	}
}

// Room holds all membership state for one game session.
type Room struct {
	Code      string             `json:"code"`
	HostID    string             `json:"hostId"`
	Status    RoomStatus         `json:"status"`
	Players   map[string]*Player `json:"players"`
	Teams     map[Team][]string  `json:"teams"`
	Settings  GameSettings       `json:"settings"`
	CreatedAt time.Time          `json:"createdAt"`
}

// NewRoom creates an empty lobby room with the given code and settings.
func NewRoom(code string, settings GameSettings) *Room {
	return &Room{
		Code:    code,
		Status:  StatusLobby,
		Players: make(map[string]*Player),
		Teams: map[Team][]string{
			TeamA: {},
			TeamB: {},
		},
		Settings:  settings,
		CreatedAt: time.Now(),
	}
}

// AddPlayer registers a new player. The first player becomes host.
func (r *Room) AddPlayer(id, name string) *Player {
	isFirst := len(r.Players) == 0
	player := NewPlayer(id, name, isFirst)
	r.Players[id] = player
	if isFirst {
		r.HostID = id
	}
	return player
}

// GetPlayer returns a player by ID.
func (r *Room) GetPlayer(id string) (*Player, bool) {
	p, ok := r.Players[id]
	return p, ok
}

// SelectTeam moves a player onto the given team, detaching them from their
// current roster first. Re-selecting the same team is harmless.
func (r *Room) SelectTeam(playerID string, team Team) bool {
	player, ok := r.Players[playerID]
	if !ok || !team.Valid() {
		return false
	}

	if player.Team.Valid() {
		r.removeFromRoster(player.Team, playerID)
	}

	player.Team = team
	r.Teams[team] = append(r.Teams[team], playerID)
	return true
}

// LeaveTeam detaches a player from their roster. No-op if not on a team.
func (r *Room) LeaveTeam(playerID string) bool {
	player, ok := r.Players[playerID]
	if !ok || !player.Team.Valid() {
		return false
	}

	r.removeFromRoster(player.Team, playerID)
	player.Team = TeamNone
	return true
}

// RemoveFromRoster detaches a player ID from a team roster and returns the
// position it occupied, or -1 if the ID was not on the roster.
func (r *Room) RemoveFromRoster(team Team, playerID string) int {
	return r.removeFromRoster(team, playerID)
}

func (r *Room) removeFromRoster(team Team, playerID string) int {
	roster := r.Teams[team]
	for i, id := range roster {
		if id == playerID {
			r.Teams[team] = append(roster[:i], roster[i+1:]...)
			return i
		}
	}
	return -1
}

// DeletePlayer removes the player record entirely.
func (r *Room) DeletePlayer(playerID string) {
	delete(r.Players, playerID)
}

// AssignNewHost promotes the first connected non-host player and demotes the
// old host. Returns the new host ID, or "" if nobody is eligible.
func (r *Room) AssignNewHost() string {
	for _, player := range r.Players {
		if player.IsConnected && player.ID != r.HostID {
			oldHostID := r.HostID
			r.HostID = player.ID
			player.IsHost = true
			if oldHost, ok := r.Players[oldHostID]; ok {
				oldHost.IsHost = false
			}
			return player.ID
		}
	}
	return ""
}

// DisconnectedPlayers returns every player currently marked disconnected.
func (r *Room) DisconnectedPlayers() []*Player {
	var out []*Player
	for _, p := range r.Players {
		if !p.IsConnected {
			out = append(out, p)
		}
	}
	return out
}

// PlayerCount returns the number of players in the room.
func (r *Room) PlayerCount() int {
	return len(r.Players)
}
