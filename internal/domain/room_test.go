package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPlayer_FirstBecomesHost(t *testing.T) {
	r := NewRoom("ABCDE", DefaultGameSettings())

	alice := r.AddPlayer("id1", "alice")
	bob := r.AddPlayer("id2", "bob")

	assert.True(t, alice.IsHost)
	assert.False(t, bob.IsHost)
	assert.Equal(t, "id1", r.HostID)
	assert.Equal(t, 2, r.PlayerCount())
}

func TestSelectTeam_MovesBetweenRosters(t *testing.T) {
	r := NewRoom("ABCDE", DefaultGameSettings())
	r.AddPlayer("id1", "alice")

	require.True(t, r.SelectTeam("id1", TeamA))
	assert.Equal(t, []string{"id1"}, r.Teams[TeamA])
	assert.Equal(t, TeamA, r.Players["id1"].Team)

	// Switching teams detaches from the old roster first
	require.True(t, r.SelectTeam("id1", TeamB))
	assert.Empty(t, r.Teams[TeamA])
	assert.Equal(t, []string{"id1"}, r.Teams[TeamB])
	assert.Equal(t, TeamB, r.Players["id1"].Team)

	// Re-selecting the same team does not duplicate the entry
	require.True(t, r.SelectTeam("id1", TeamB))
	assert.Equal(t, []string{"id1"}, r.Teams[TeamB])
}

func TestSelectTeam_UnknownPlayer(t *testing.T) {
	r := NewRoom("ABCDE", DefaultGameSettings())
	assert.False(t, r.SelectTeam("nope", TeamA))
}

func TestLeaveTeam(t *testing.T) {
	r := NewRoom("ABCDE", DefaultGameSettings())
	r.AddPlayer("id1", "alice")
	r.SelectTeam("id1", TeamA)

	require.True(t, r.LeaveTeam("id1"))
	assert.Empty(t, r.Teams[TeamA])
	assert.Equal(t, TeamNone, r.Players["id1"].Team)

	// Not on a team: no-op
	assert.False(t, r.LeaveTeam("id1"))
}

func TestRemoveFromRoster_ReturnsPosition(t *testing.T) {
	r := NewRoom("ABCDE", DefaultGameSettings())
	for _, id := range []string{"id1", "id2", "id3"} {
		r.AddPlayer(id, id)
		r.SelectTeam(id, TeamA)
	}

	assert.Equal(t, 1, r.RemoveFromRoster(TeamA, "id2"))
	assert.Equal(t, []string{"id1", "id3"}, r.Teams[TeamA])
	assert.Equal(t, -1, r.RemoveFromRoster(TeamA, "id2"))
}

func TestAssignNewHost(t *testing.T) {
	r := NewRoom("ABCDE", DefaultGameSettings())
	r.AddPlayer("id1", "alice")
	bob := r.AddPlayer("id2", "bob")

	// Only connected players are eligible
	bob.IsConnected = true
	newHost := r.AssignNewHost()

	assert.Equal(t, "id2", newHost)
	assert.Equal(t, "id2", r.HostID)
	assert.True(t, bob.IsHost)
	assert.False(t, r.Players["id1"].IsHost)
}

func TestAssignNewHost_NobodyEligible(t *testing.T) {
	r := NewRoom("ABCDE", DefaultGameSettings())
	r.AddPlayer("id1", "alice")

	assert.Equal(t, "", r.AssignNewHost())
	assert.Equal(t, "id1", r.HostID)
}
