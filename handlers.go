package burnroom

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/cydxin/burnroom/response"
	"github.com/cydxin/burnroom/service"
)

/*
	net/http 版本的入口，不依赖 gin。
	身份由上游完成认证，这里只读取 user_id / name。
*/

// HandleWS 返回 WebSocket 的 Handler
// 客户端连接：ws://host/ws?user_id=1001&name=alice
func (e *Engine) HandleWS() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, name, code := e.identityFromRequest(r)
		if code != 0 {
			status := http.StatusUnauthorized
			if code == response.CodeBanned {
				status = http.StatusForbidden
			}
			response.Error(code, http.StatusText(status)).WriteJSONWithStatus(w, status)
			return
		}
		e.WsServer.ServeWS(w, r, userID, name)
	}
}

// HandleResolveInvite 邀请链接解析为房间号，房间不存在或已过期返回对应业务码
// @Summary 解析邀请
// @Tags 房间
// @Produce json
// @Param token query string true "邀请 token"
// @Success 200 {object} response.Response "data 为 room_id"
// @Router /invite [get]
func (e *Engine) HandleResolveInvite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(r.URL.Query().Get("token"))
		if token == "" {
			response.Error(response.CodeParamError, "token is required").WriteJSON(w)
			return
		}
		roomID := e.ResolveInvite(r.Context(), token)
		if _, err := e.Rooms.Get(roomID); err != nil {
			response.FromError(err).WriteJSON(w)
			return
		}
		response.Success(map[string]string{"room_id": roomID}).WriteJSON(w)
	}
}

// identityFromRequest 读取身份，失败时返回业务码
func (e *Engine) identityFromRequest(r *http.Request) (int64, string, int) {
	raw := strings.TrimSpace(r.Header.Get("X-User-ID"))
	if raw == "" {
		raw = strings.TrimSpace(r.URL.Query().Get("user_id"))
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		return 0, "", response.CodeUserInvalid
	}
	if e.Users.IsGloballyBanned(userID) {
		return 0, "", response.CodeOf(service.ErrBanned)
	}
	name := strings.TrimSpace(r.Header.Get("X-User-Name"))
	if name == "" {
		name = strings.TrimSpace(r.URL.Query().Get("name"))
	}
	if name == "" {
		name = "user" + raw
	}
	return userID, name, 0
}
