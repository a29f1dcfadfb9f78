package burnroom

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cydxin/burnroom/message"
	"github.com/cydxin/burnroom/response"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newWsFixture(t *testing.T) (*Engine, *httptest.Server) {
	t.Helper()
	e := NewEngine(WithPasswordCost(bcrypt.MinCost))
	ctx, cancel := context.WithCancel(context.Background())
	e.Start(ctx)
	srv := httptest.NewServer(e.HandleWS())
	t.Cleanup(func() {
		srv.Close()
		e.Stop()
		cancel()
	})
	return e, srv
}

func dialWs(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(v))
}

func TestWs_DeliversRoomMessages(t *testing.T) {
	e, srv := newWsFixture(t)
	room := mustCreateRoom(t, e, 1)
	mustJoinRoom(t, e, room.JoinToken, 2)

	alice := dialWs(t, srv, "user_id=1&name=alice")
	bob := dialWs(t, srv, "user_id=2&name=bob")
	require.Eventually(t, func() bool {
		return e.WsServer.IsOnline(1) && e.WsServer.IsOnline(2)
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, alice.WriteJSON(message.Req{Type: message.WsTypeMessage, RoomID: room.RoomID, Text: "hi bob"}))

	var in message.Instruction
	readFrame(t, bob, &in)
	assert.Equal(t, int64(2), in.RecipientID)
	assert.Equal(t, message.ActionSendText, in.Action)
	assert.Equal(t, "alice: hi bob", in.Payload.Text)
	assert.Equal(t, room.RoomID, in.Payload.RoomID)
}

func TestWs_ErrorFrames(t *testing.T) {
	e, srv := newWsFixture(t)
	room := mustCreateRoom(t, e, 1)

	eve := dialWs(t, srv, "user_id=3&name=eve")
	require.Eventually(t, func() bool { return e.WsServer.IsOnline(3) }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, eve.WriteMessage(websocket.TextMessage, []byte("not json")))
	var wsErr message.WsError
	readFrame(t, eve, &wsErr)
	assert.Equal(t, "error", wsErr.Type)
	assert.Equal(t, response.CodeParamError, wsErr.Code)

	require.NoError(t, eve.WriteJSON(message.Req{RoomID: room.RoomID, Text: "let me in", PacketID: "p-1"}))
	readFrame(t, eve, &wsErr)
	assert.Equal(t, response.CodePermissionDeny, wsErr.Code)
	assert.Equal(t, "p-1", wsErr.PacketID)
}

func TestWs_FansOutToEveryDevice(t *testing.T) {
	e, srv := newWsFixture(t)
	room := mustCreateRoom(t, e, 1)
	mustJoinRoom(t, e, room.JoinToken, 2)

	phone := dialWs(t, srv, "user_id=2")
	laptop := dialWs(t, srv, "user_id=2")
	alice := dialWs(t, srv, "user_id=1&name=alice")
	require.Eventually(t, func() bool {
		return e.WsServer.IsOnline(1) && e.WsServer.ConnCount(2) == 2
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, alice.WriteJSON(message.Req{RoomID: room.RoomID, Text: "ping"}))
	for _, conn := range []*websocket.Conn{phone, laptop} {
		var in message.Instruction
		readFrame(t, conn, &in)
		assert.Equal(t, "alice: ping", in.Payload.Text)
	}
}
