package room

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/moyugame/letter-rush/internal/apperrors"
	"github.com/moyugame/letter-rush/internal/dictionary"
	"github.com/moyugame/letter-rush/internal/testutil"
)

// testConfig returns a config with millisecond-scale timers so
// timer-driven tests finish quickly.
func testConfig() Config {
	return Config{
		Rounds:             3,
		RoundDuration:      60 * time.Millisecond,
		BreakDuration:      30 * time.Millisecond,
		MaxPlayers:         4,
		ClaimCooldown:      0,
		SpawnIntervalEmpty: 5 * time.Millisecond,
		SpawnIntervalFull:  25 * time.Millisecond,
	}
}

func newTestManager(cfg Config) *RoomManager {
	return NewRoomManager(cfg, dictionary.Default(), nil)
}

func (r *Room) snapshot() (phase Phase, round int, poolLen int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Phase, r.RoundIdx, len(r.Pool)
}

func TestJoinRoom_CreatesRoomLazily(t *testing.T) {
	t.Parallel()

	rm := newTestManager(testConfig())
	c1 := testutil.NewSimpleClient("p1", "Alice")

	require.NoError(t, rm.JoinRoom(c1, "abc", "Alice"))

	// Code is canonicalized to uppercase
	room := rm.GetRoom("ABC")
	require.NotNil(t, room)
	assert.Same(t, room, rm.GetRoom("abc"))
	assert.Equal(t, "ABC", c1.GetRoom())

	phase, round, _ := room.snapshot()
	assert.Equal(t, PhaseLobby, phase)
	assert.Equal(t, -1, round)

	// First member becomes host
	state := c1.LastState()
	require.NotNil(t, state)
	assert.Equal(t, "p1", state.HostID)
}

func TestJoinRoom_EmptyCodeRejected(t *testing.T) {
	t.Parallel()

	rm := newTestManager(testConfig())
	c1 := testutil.NewSimpleClient("p1", "Alice")

	err := rm.JoinRoom(c1, "   ", "Alice")
	assert.ErrorIs(t, err, apperrors.ErrBadRoomCode)
	assert.Equal(t, 0, rm.RoomCount())
}

func TestJoinRoom_NameSanitized(t *testing.T) {
	t.Parallel()

	rm := newTestManager(testConfig())

	c1 := testutil.NewSimpleClient("p1", "")
	require.NoError(t, rm.JoinRoom(c1, "R1", "   "))
	state := c1.LastState()
	require.NotNil(t, state)
	assert.Equal(t, DefaultName, state.You.Name)

	c2 := testutil.NewSimpleClient("p2", "")
	long := strings.Repeat("x", 40)
	require.NoError(t, rm.JoinRoom(c2, "R1", long))
	state = c2.LastState()
	require.NotNil(t, state)
	assert.Len(t, []rune(state.You.Name), MaxNameLen)
}

func TestJoinRoom_FullRoomRejected(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	rm := newTestManager(cfg)

	for i, id := range []string{"p1", "p2", "p3", "p4"} {
		c := testutil.NewSimpleClient(id, "P")
		require.NoError(t, rm.JoinRoom(c, "FULL", "P"), "player %d", i)
	}

	late := testutil.NewSimpleClient("p5", "Late")
	err := rm.JoinRoom(late, "FULL", "Late")
	assert.ErrorIs(t, err, apperrors.ErrRoomFull)
	assert.Empty(t, late.GetRoom())
}

func TestJoinRoom_AfterStartRejectedForNewcomers(t *testing.T) {
	t.Parallel()

	rm := newTestManager(testConfig())
	c1 := testutil.NewSimpleClient("p1", "Alice")
	c2 := testutil.NewSimpleClient("p2", "Bob")
	require.NoError(t, rm.JoinRoom(c1, "R1", "Alice"))
	require.NoError(t, rm.JoinRoom(c2, "R1", "Bob"))

	room := rm.GetRoom("R1")
	require.NoError(t, room.Start("p1"))

	// Newcomer cannot join a running game
	c3 := testutil.NewSimpleClient("p3", "Carol")
	assert.ErrorIs(t, rm.JoinRoom(c3, "R1", "Carol"), apperrors.ErrGameStarted)

	// But a member re-joining is idempotent
	assert.NoError(t, rm.JoinRoom(c1, "R1", "Alice"))
}

func TestStart_Validation(t *testing.T) {
	t.Parallel()

	rm := newTestManager(testConfig())
	c1 := testutil.NewSimpleClient("p1", "Alice")
	require.NoError(t, rm.JoinRoom(c1, "R1", "Alice"))
	room := rm.GetRoom("R1")

	// Solo start is rejected
	assert.ErrorIs(t, room.Start("p1"), apperrors.ErrNotEnoughPlayers)

	c2 := testutil.NewSimpleClient("p2", "Bob")
	require.NoError(t, rm.JoinRoom(c2, "R1", "Bob"))

	// Non-host cannot start
	assert.ErrorIs(t, room.Start("p2"), apperrors.ErrNotHost)
	// Stranger cannot start
	assert.ErrorIs(t, room.Start("nope"), apperrors.ErrNotInRoom)

	// Host with 2 players succeeds
	require.NoError(t, room.Start("p1"))
	phase, round, poolLen := room.snapshot()
	assert.Equal(t, PhasePlaying, phase)
	assert.Equal(t, 0, round)
	assert.Equal(t, PoolCap, poolLen)

	// Starting twice is rejected
	assert.ErrorIs(t, room.Start("p1"), apperrors.ErrGameStarted)
}

func TestLeave_HostSuccession(t *testing.T) {
	t.Parallel()

	rm := newTestManager(testConfig())
	c1 := testutil.NewSimpleClient("p1", "Alice")
	c2 := testutil.NewSimpleClient("p2", "Bob")
	c3 := testutil.NewSimpleClient("p3", "Carol")
	require.NoError(t, rm.JoinRoom(c1, "R1", "Alice"))
	require.NoError(t, rm.JoinRoom(c2, "R1", "Bob"))
	require.NoError(t, rm.JoinRoom(c3, "R1", "Carol"))

	// Host leaves: next player in join order takes over
	rm.LeaveRoom(c1)
	state := c2.LastState()
	require.NotNil(t, state)
	assert.Equal(t, "p2", state.HostID)
	assert.Empty(t, c1.GetRoom())

	// Roster keeps join order
	require.Len(t, state.Players, 2)
	assert.Equal(t, "p2", state.Players[0].ID)
	assert.Equal(t, "p3", state.Players[1].ID)
}

func TestLeave_LastPlayerDestroysRoom(t *testing.T) {
	t.Parallel()

	rm := newTestManager(testConfig())
	c1 := testutil.NewSimpleClient("p1", "Alice")
	c2 := testutil.NewSimpleClient("p2", "Bob")
	require.NoError(t, rm.JoinRoom(c1, "R1", "Alice"))
	require.NoError(t, rm.JoinRoom(c2, "R1", "Bob"))

	room := rm.GetRoom("R1")
	require.NoError(t, room.Start("p1"))

	rm.LeaveRoom(c1)
	rm.LeaveRoom(c2)
	assert.Nil(t, rm.GetRoom("R1"))
	assert.Equal(t, 0, rm.RoomCount())

	// All timers are cancelled: no further broadcasts arrive
	before := len(c2.SentMessages())
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, before, len(c2.SentMessages()))
}

func TestJoinRoom_ClientContract(t *testing.T) {
	t.Parallel()

	rm := newTestManager(testConfig())

	c := new(testutil.MockClient)
	c.On("GetID").Return("p1")
	c.On("SetRoom", "R1").Once()
	c.On("SendMessage", mock.AnythingOfType("*protocol.Message"))

	require.NoError(t, rm.JoinRoom(c, "r1", "Alice"))
	c.AssertExpectations(t)
}

func TestLeave_NotInRoomIsNoop(t *testing.T) {
	t.Parallel()

	rm := newTestManager(testConfig())
	c := testutil.NewSimpleClient("p1", "Alice")

	assert.NotPanics(t, func() { rm.LeaveRoom(c) })
}
