package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moyugame/letter-rush/internal/dictionary"
	"github.com/moyugame/letter-rush/internal/game/room"
	"github.com/moyugame/letter-rush/internal/protocol"
	"github.com/moyugame/letter-rush/internal/protocol/codec"
	"github.com/moyugame/letter-rush/internal/testutil"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	cfg := room.DefaultConfig()
	cfg.RoundDuration = time.Hour
	rm := room.NewRoomManager(cfg, dictionary.Default(), nil)
	return NewHandler(HandlerDeps{RoomManager: rm})
}

func lastError(t *testing.T, c *testutil.SimpleClient) *protocol.ErrorPayload {
	t.Helper()
	msgs := c.MessagesOfType(protocol.MsgError)
	require.NotEmpty(t, msgs)
	payload, err := codec.ParsePayload[protocol.ErrorPayload](msgs[len(msgs)-1])
	require.NoError(t, err)
	return payload
}

func TestHandler_JoinAndStart(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	c1 := testutil.NewSimpleClient("p1", "Alice")
	c2 := testutil.NewSimpleClient("p2", "Bob")

	h.Handle(c1, codec.MustNewMessage(protocol.MsgJoin, protocol.JoinPayload{RoomCode: "room1", Name: "Alice"}))
	h.Handle(c2, codec.MustNewMessage(protocol.MsgJoin, protocol.JoinPayload{RoomCode: "ROOM1", Name: "Bob"}))

	// Both canonicalize to the same room
	assert.Equal(t, "ROOM1", c1.GetRoom())
	assert.Equal(t, "ROOM1", c2.GetRoom())

	h.Handle(c1, codec.MustNewMessage(protocol.MsgStart, protocol.StartPayload{}))

	state := c2.LastState()
	require.NotNil(t, state)
	assert.Equal(t, string(room.PhasePlaying), state.Phase)
	assert.Len(t, state.Pool, room.PoolCap)
}

func TestHandler_StartOutsideRoom(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	c := testutil.NewSimpleClient("p1", "Alice")

	h.Handle(c, codec.MustNewMessage(protocol.MsgStart, protocol.StartPayload{}))
	assert.Equal(t, protocol.ErrCodeNotInRoom, lastError(t, c).Code)
}

func TestHandler_GameErrorsCarryProtocolCodes(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	c1 := testutil.NewSimpleClient("p1", "Alice")

	h.Handle(c1, codec.MustNewMessage(protocol.MsgJoin, protocol.JoinPayload{RoomCode: "R1", Name: "Alice"}))

	// Solo start is refused with the dedicated code
	h.Handle(c1, codec.MustNewMessage(protocol.MsgStart, protocol.StartPayload{}))
	assert.Equal(t, protocol.ErrCodeNotEnoughPlayers, lastError(t, c1).Code)

	// Claiming before the game starts is refused too
	h.Handle(c1, codec.MustNewMessage(protocol.MsgClaimTile, protocol.ClaimTilePayload{RoomCode: "R1", PoolIndex: 0}))
	assert.Equal(t, protocol.ErrCodeGameNotStart, lastError(t, c1).Code)
}

func TestHandler_JoinSwitchesRooms(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	c := testutil.NewSimpleClient("p1", "Alice")

	h.Handle(c, codec.MustNewMessage(protocol.MsgJoin, protocol.JoinPayload{RoomCode: "R1", Name: "Alice"}))
	h.Handle(c, codec.MustNewMessage(protocol.MsgJoin, protocol.JoinPayload{RoomCode: "R2", Name: "Alice"}))

	assert.Equal(t, "R2", c.GetRoom())
}

func TestHandler_UnknownMessageType(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	c := testutil.NewSimpleClient("p1", "Alice")

	h.Handle(c, &protocol.Message{Type: "teleport"})
	assert.Equal(t, protocol.ErrCodeInvalidMsg, lastError(t, c).Code)
}

func TestHandler_PingPong(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	c := testutil.NewSimpleClient("p1", "Alice")

	h.Handle(c, codec.MustNewMessage(protocol.MsgPing, protocol.PingPayload{Timestamp: 12345}))

	pongs := c.MessagesOfType(protocol.MsgPong)
	require.Len(t, pongs, 1)
	payload, err := codec.ParsePayload[protocol.PongPayload](pongs[0])
	require.NoError(t, err)
	assert.Equal(t, int64(12345), payload.ClientTimestamp)
	assert.NotZero(t, payload.ServerTimestamp)
}

func TestHandler_LeaderboardDisabled(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	c := testutil.NewSimpleClient("p1", "Alice")

	h.Handle(c, codec.MustNewMessage(protocol.MsgGetLeaderboard, protocol.GetLeaderboardPayload{Limit: 10}))
	assert.Equal(t, protocol.ErrCodeUnknown, lastError(t, c).Code)
}
