package burnroom

import (
	"encoding/json"

	"github.com/cydxin/burnroom/message"
	"github.com/cydxin/burnroom/response"
)

// bindWsHandlers 将 WS 回调从 engine.go 抽出来，避免 engine.go 臃肿。
// 放在包根目录（同 WsServer/engine.go 同级），可以直接访问 Engine 与 Client。
func (e *Engine) bindWsHandlers() {
	e.WsServer.onMessage = func(client *Client, msg []byte) {
		if client == nil {
			return
		}
		var req message.Req
		if err := json.Unmarshal(msg, &req); err != nil {
			e.sendWsError(client.UserID, response.CodeParamError, "invalid message format", "")
			return
		}

		// 心跳：只刷新在线状态
		if req.Type == message.WsTypeTouch {
			if req.RoomID != "" {
				_ = e.Touch(req.RoomID, client.UserID)
			}
			return
		}

		if req.RoomID == "" {
			e.sendWsError(client.UserID, response.CodeParamError, "room_id is required", req.PacketID)
			return
		}
		if _, err := e.HandleEvent(req.ToEvent(client.UserID, client.Name)); err != nil {
			e.sendWsError(client.UserID, response.CodeOf(err), err.Error(), req.PacketID)
		}
	}
}

func (e *Engine) sendWsError(userID int64, code int, msg string, packetID string) {
	b, _ := json.Marshal(message.WsError{Type: "error", Code: code, Msg: msg, PacketID: packetID})
	e.WsServer.SendToUser(userID, b)
}
