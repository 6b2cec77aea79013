package app

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taboo/internal/domain"
)

func newTestHub(t *testing.T) *RoomHub {
	t.Helper()
	hub := NewRoomHub(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(hub.Close)
	return hub
}

func TestCreateRoom_CodeFormat(t *testing.T) {
	hub := newTestHub(t)

	for i := 0; i < 20; i++ {
		session, err := hub.CreateRoom()
		require.NoError(t, err)

		code := session.Code()
		assert.Len(t, code, DefaultRoomCodeLength)
		for _, c := range code {
			assert.True(t, strings.ContainsRune(RoomCodeChars, c),
				"code %q contains ambiguous character %q", code, c)
		}
	}

	assert.Equal(t, 20, hub.GetSessionCount())
}

func TestGetOrCreate_CaseInsensitiveSameInstance(t *testing.T) {
	hub := newTestHub(t)

	first := hub.GetOrCreate("abcde")
	second := hub.GetOrCreate("ABCDE")

	assert.Same(t, first, second)
	assert.Equal(t, "ABCDE", first.Code())
	assert.Equal(t, 1, hub.GetSessionCount())
}

func TestGetSession_NotFound(t *testing.T) {
	hub := newTestHub(t)

	_, err := hub.GetSession("ZZZZZ")
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestGetSession_FindsCreatedRoom(t *testing.T) {
	hub := newTestHub(t)

	created, err := hub.CreateRoom()
	require.NoError(t, err)

	found, err := hub.GetSession(strings.ToLower(created.Code()))
	require.NoError(t, err)
	assert.Same(t, created, found)
}

func TestProbe_UnmaterializedRoomLooksAbsent(t *testing.T) {
	hub := newTestHub(t)
	session := hub.GetOrCreate("FRESH")

	probe := session.Probe()
	assert.False(t, probe.Exists)
	assert.True(t, probe.CanJoin)
	assert.Equal(t, 0, probe.PlayerCount)
	assert.Equal(t, domain.StatusLobby, probe.Status)
}

func TestTotalPlayerCount(t *testing.T) {
	hub := newTestHub(t)

	a := hub.GetOrCreate("AAAAA")
	b := hub.GetOrCreate("BBBBB")

	for i, session := range []*RoomSession{a, a, b} {
		conn := newMockConn(string(rune('x' + i)))
		session.Attach(conn)
		require.NoError(t, session.HandleJoin(conn.ConnID(), "player", ""))
	}

	assert.Equal(t, 3, hub.GetTotalPlayerCount())
}
