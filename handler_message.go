package burnroom

import (
	"net/http"
	"strconv"
	"time"

	"github.com/cydxin/burnroom/message"
	"github.com/cydxin/burnroom/response"
	"github.com/gin-gonic/gin"
)

// -------------------- 消息（Message）相关接口 --------------------

type SendMessageReq struct {
	RoomID   string       `json:"room_id" binding:"required"`
	Kind     message.Kind `json:"kind"` // 默认 text
	Text     string       `json:"text"`
	Caption  string       `json:"caption"`
	FileName string       `json:"file_name"`
	FilePath string       `json:"file_path"`
	FileSize int64        `json:"file_size"`
	MimeType string       `json:"mime_type"`
	ReplyTo  int64        `json:"reply_to"`
}

// GinHandleSendMessage 发送消息
// @Summary 发送消息
// @Description 校验后写入房间，并通过 WS 投递给其他成员
// @Tags 消息
// @Accept json
// @Produce json
// @Param req body SendMessageReq true "消息"
// @Success 200 {object} response.Response{data=service.RouteResult} "投递计划"
// @Failure 400 {object} response.Response "请求错误"
// @Security UserID
// @Router /message/send [post]
func (e *Engine) GinHandleSendMessage(ctx *gin.Context) {
	var req SendMessageReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	uid, name, ok := currentUser(ctx)
	if !ok {
		return
	}
	ev := message.Req{
		RoomID:   req.RoomID,
		Kind:     req.Kind,
		Text:     req.Text,
		Caption:  req.Caption,
		FileName: req.FileName,
		FilePath: req.FilePath,
		FileSize: req.FileSize,
		MimeType: req.MimeType,
		ReplyTo:  req.ReplyTo,
	}.ToEvent(uid, name)
	res, err := e.HandleEvent(ev)
	writeResult(ctx, res, err)
}

type MessageActionReq struct {
	RoomID    string `json:"room_id" binding:"required"`
	MessageID int64  `json:"message_id" binding:"required"`
}

// GinHandleRevokeMessage 撤回消息
// @Summary 撤回消息
// @Description 发送者或管理员可撤回，消息从房间中删除
// @Tags 消息
// @Accept json
// @Produce json
// @Param req body MessageActionReq true "消息"
// @Success 200 {object} response.Response "成功"
// @Security UserID
// @Router /message/revoke [post]
func (e *Engine) GinHandleRevokeMessage(ctx *gin.Context) {
	var req MessageActionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	uid, _, ok := currentUser(ctx)
	if !ok {
		return
	}
	writeResult(ctx, nil, e.RevokeMessage(req.RoomID, uid, req.MessageID))
}

type EditMessageReq struct {
	RoomID    string `json:"room_id" binding:"required"`
	MessageID int64  `json:"message_id" binding:"required"`
	Content   string `json:"content" binding:"required"`
}

// GinHandleEditMessage 编辑消息
// @Summary 编辑消息
// @Description 文本替换正文，媒体替换说明文字
// @Tags 消息
// @Accept json
// @Produce json
// @Param req body EditMessageReq true "新内容"
// @Success 200 {object} response.Response{data=service.Message} "编辑后的消息"
// @Security UserID
// @Router /message/edit [post]
func (e *Engine) GinHandleEditMessage(ctx *gin.Context) {
	var req EditMessageReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	uid, _, ok := currentUser(ctx)
	if !ok {
		return
	}
	msg, err := e.EditMessage(req.RoomID, uid, req.MessageID, req.Content)
	writeResult(ctx, msg, err)
}

// GinHandleEditHistory 编辑历史
// @Summary 编辑历史
// @Tags 消息
// @Produce json
// @Param room_id query string true "房间号"
// @Param message_id query int64 true "消息ID"
// @Success 200 {object} response.Response{data=[]service.EditRecord} "历史"
// @Security UserID
// @Router /message/edit-history [get]
func (e *Engine) GinHandleEditHistory(ctx *gin.Context) {
	uid, _, ok := currentUser(ctx)
	if !ok {
		return
	}
	mid, err := strconv.ParseInt(ctx.Query("message_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "invalid message_id"))
		return
	}
	res, err := e.EditHistory(ctx.Query("room_id"), uid, mid)
	writeResult(ctx, res, err)
}

// GinHandleHistory 最近消息
// @Summary 最近消息
// @Tags 消息
// @Produce json
// @Param room_id query string true "房间号"
// @Param limit query int false "数量，默认 50"
// @Success 200 {object} response.Response{data=[]service.Message} "消息列表"
// @Security UserID
// @Router /message/history [get]
func (e *Engine) GinHandleHistory(ctx *gin.Context) {
	uid, _, ok := currentUser(ctx)
	if !ok {
		return
	}
	res, err := e.History(ctx.Query("room_id"), uid, queryInt(ctx, "limit", 50))
	writeResult(ctx, res, err)
}

// GinHandleSearch 搜索消息
// @Summary 搜索消息
// @Description 关键字不区分大小写，最新的在前
// @Tags 消息
// @Produce json
// @Param room_id query string true "房间号"
// @Param keyword query string true "关键字"
// @Param limit query int false "数量，默认 20"
// @Success 200 {object} response.Response{data=[]service.Message} "消息列表"
// @Security UserID
// @Router /message/search [get]
func (e *Engine) GinHandleSearch(ctx *gin.Context) {
	uid, _, ok := currentUser(ctx)
	if !ok {
		return
	}
	keyword := ctx.Query("keyword")
	if keyword == "" {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "keyword is required"))
		return
	}
	res, err := e.Search(ctx.Query("room_id"), uid, keyword, queryInt(ctx, "limit", 20))
	writeResult(ctx, res, err)
}

type ForwardReq struct {
	RoomID    string `json:"room_id" binding:"required"`
	MessageID int64  `json:"message_id" binding:"required"`
	ToRoomID  string `json:"to_room_id" binding:"required"`
}

// GinHandleForward 转发消息
// @Summary 转发消息
// @Description 转发者必须同时是两个房间的成员
// @Tags 消息
// @Accept json
// @Produce json
// @Param req body ForwardReq true "转发参数"
// @Success 200 {object} response.Response{data=service.RouteResult} "投递计划"
// @Security UserID
// @Router /message/forward [post]
func (e *Engine) GinHandleForward(ctx *gin.Context) {
	var req ForwardReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	uid, name, ok := currentUser(ctx)
	if !ok {
		return
	}
	res, err := e.Forward(req.RoomID, req.MessageID, req.ToRoomID, uid, name)
	writeResult(ctx, res, err)
}

type ScheduleReq struct {
	RoomID  string `json:"room_id" binding:"required"`
	Text    string `json:"text" binding:"required"`
	Minutes int    `json:"minutes" binding:"required"` // 1-1440
}

// GinHandleSchedule 定时消息
// @Summary 定时消息
// @Description 1-1440 分钟后发送；房间先关闭则不会发送
// @Tags 消息
// @Accept json
// @Produce json
// @Param req body ScheduleReq true "定时参数"
// @Success 200 {object} response.Response{data=service.ScheduledSend} "定时任务"
// @Security UserID
// @Router /message/schedule [post]
func (e *Engine) GinHandleSchedule(ctx *gin.Context) {
	var req ScheduleReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	uid, name, ok := currentUser(ctx)
	if !ok {
		return
	}
	res, err := e.ScheduleSend(req.RoomID, uid, name, req.Text, time.Duration(req.Minutes)*time.Minute)
	writeResult(ctx, res, err)
}

// GinHandlePin 置顶消息
// @Summary 置顶消息
// @Description 管理员操作，最多 3 条
// @Tags 消息
// @Accept json
// @Produce json
// @Param req body MessageActionReq true "消息"
// @Success 200 {object} response.Response "成功"
// @Security UserID
// @Router /message/pin [post]
func (e *Engine) GinHandlePin(ctx *gin.Context) {
	e.messageAction(ctx, e.PinMessage)
}

// GinHandleUnpin 取消置顶
// @Summary 取消置顶
// @Tags 消息
// @Accept json
// @Produce json
// @Param req body MessageActionReq true "消息"
// @Success 200 {object} response.Response "成功"
// @Security UserID
// @Router /message/unpin [post]
func (e *Engine) GinHandleUnpin(ctx *gin.Context) {
	e.messageAction(ctx, e.UnpinMessage)
}

func (e *Engine) messageAction(ctx *gin.Context, fn func(roomID string, actorID, messageID int64) error) {
	var req MessageActionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	uid, _, ok := currentUser(ctx)
	if !ok {
		return
	}
	writeResult(ctx, nil, fn(req.RoomID, uid, req.MessageID))
}

// GinHandlePinned 置顶列表
// @Summary 置顶列表
// @Tags 消息
// @Produce json
// @Param room_id query string true "房间号"
// @Success 200 {object} response.Response{data=[]service.Message} "消息列表"
// @Security UserID
// @Router /message/pinned [get]
func (e *Engine) GinHandlePinned(ctx *gin.Context) {
	uid, _, ok := currentUser(ctx)
	if !ok {
		return
	}
	res, err := e.PinnedMessages(ctx.Query("room_id"), uid)
	writeResult(ctx, res, err)
}
