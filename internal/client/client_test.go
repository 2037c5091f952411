package client

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moyugame/letter-rush/internal/protocol"
	"github.com/moyugame/letter-rush/internal/protocol/codec"
)

var upgrader = websocket.Upgrader{}

func echoHandler(w http.ResponseWriter, r *http.Request) {
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer c.Close()
	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			break
		}
		// simple echo
		_ = c.WriteMessage(mt, message)
	}
}

func newEchoClient(t *testing.T) *Client {
	t.Helper()
	s := httptest.NewServer(http.HandlerFunc(echoHandler))
	t.Cleanup(s.Close)

	wsURL := "ws" + strings.TrimPrefix(s.URL, "http")
	client := NewClient(wsURL)
	require.NoError(t, client.Connect())
	t.Cleanup(client.Close)
	return client
}

func TestClient_ConnectAndSend(t *testing.T) {
	client := newEchoClient(t)

	time.Sleep(100 * time.Millisecond)
	assert.True(t, client.IsConnected())

	msg := codec.MustNewMessage(protocol.MsgPing, protocol.PingPayload{Timestamp: 123456})
	require.NoError(t, client.SendMessage(msg))

	// The echo server bounces the encoded message straight back
	received, err := client.ReceiveWithTimeout(1 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, protocol.MsgPing, received.Type)
}

func TestClient_ActionHelpersEncodeRequests(t *testing.T) {
	client := newEchoClient(t)

	require.NoError(t, client.Join("r1", "Alice"))
	msg, err := client.ReceiveWithTimeout(1 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, protocol.MsgJoin, msg.Type)
	join, err := codec.ParsePayload[protocol.JoinPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, "r1", join.RoomCode)
	assert.Equal(t, "Alice", join.Name)

	require.NoError(t, client.SubmitWord("r1", []int{2, 0, 1}))
	msg, err = client.ReceiveWithTimeout(1 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, protocol.MsgSubmitWord, msg.Type)
	submit, err := codec.ParsePayload[protocol.SubmitWordPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, submit.Indices)
}

func TestClient_SendAfterClose(t *testing.T) {
	client := newEchoClient(t)
	client.Close()

	err := client.SendMessage(codec.MustNewMessage(protocol.MsgPing, protocol.PingPayload{}))
	assert.Error(t, err)
	assert.False(t, client.IsConnected())
}
