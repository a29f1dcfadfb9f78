package burnroom

import (
	"net/http"

	"github.com/cydxin/burnroom/response"
	"github.com/gin-gonic/gin"
)

// -------------------- 自动回复（AutoReply） --------------------

type AutoReplyReq struct {
	RoomID  string `json:"room_id" binding:"required"`
	Keyword string `json:"keyword" binding:"required"`
	Reply   string `json:"reply"`
}

// GinHandleAddAutoReply 添加自动回复
// @Summary 添加自动回复
// @Description 管理员操作；关键字不区分大小写，同名关键字覆盖
// @Tags 内容
// @Accept json
// @Produce json
// @Param req body AutoReplyReq true "规则"
// @Success 200 {object} response.Response "成功"
// @Security UserID
// @Router /autoreply [post]
func (e *Engine) GinHandleAddAutoReply(ctx *gin.Context) {
	var req AutoReplyReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	uid, _, ok := currentUser(ctx)
	if !ok {
		return
	}
	writeResult(ctx, nil, e.AddAutoReply(req.RoomID, uid, req.Keyword, req.Reply))
}

// GinHandleRemoveAutoReply 删除自动回复
// @Summary 删除自动回复
// @Tags 内容
// @Accept json
// @Produce json
// @Param req body AutoReplyReq true "规则（reply 忽略）"
// @Success 200 {object} response.Response "成功"
// @Security UserID
// @Router /autoreply [delete]
func (e *Engine) GinHandleRemoveAutoReply(ctx *gin.Context) {
	var req AutoReplyReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	uid, _, ok := currentUser(ctx)
	if !ok {
		return
	}
	writeResult(ctx, nil, e.RemoveAutoReply(req.RoomID, uid, req.Keyword))
}

// GinHandleListAutoReplies 自动回复列表
// @Summary 自动回复列表
// @Tags 内容
// @Produce json
// @Param room_id query string true "房间号"
// @Success 200 {object} response.Response{data=[]service.AutoReply} "规则列表"
// @Security UserID
// @Router /autoreply [get]
func (e *Engine) GinHandleListAutoReplies(ctx *gin.Context) {
	uid, _, ok := currentUser(ctx)
	if !ok {
		return
	}
	res, err := e.AutoReplies(ctx.Query("room_id"), uid)
	writeResult(ctx, res, err)
}

// -------------------- 模板（Template） --------------------

type TemplateReq struct {
	RoomID  string `json:"room_id" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Content string `json:"content"`
}

// GinHandleAddTemplate 保存模板
// @Summary 保存模板
// @Tags 内容
// @Accept json
// @Produce json
// @Param req body TemplateReq true "模板"
// @Success 200 {object} response.Response "成功"
// @Security UserID
// @Router /template [post]
func (e *Engine) GinHandleAddTemplate(ctx *gin.Context) {
	var req TemplateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	uid, _, ok := currentUser(ctx)
	if !ok {
		return
	}
	writeResult(ctx, nil, e.AddTemplate(req.RoomID, uid, req.Name, req.Content))
}

// GinHandleRemoveTemplate 删除模板
// @Summary 删除模板
// @Tags 内容
// @Accept json
// @Produce json
// @Param req body TemplateReq true "模板（content 忽略）"
// @Success 200 {object} response.Response "成功"
// @Security UserID
// @Router /template [delete]
func (e *Engine) GinHandleRemoveTemplate(ctx *gin.Context) {
	var req TemplateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	uid, _, ok := currentUser(ctx)
	if !ok {
		return
	}
	writeResult(ctx, nil, e.RemoveTemplate(req.RoomID, uid, req.Name))
}

// GinHandleListTemplates 模板列表
// @Summary 模板列表
// @Tags 内容
// @Produce json
// @Param room_id query string true "房间号"
// @Success 200 {object} response.Response{data=[]service.Template} "模板列表"
// @Security UserID
// @Router /template [get]
func (e *Engine) GinHandleListTemplates(ctx *gin.Context) {
	uid, _, ok := currentUser(ctx)
	if !ok {
		return
	}
	res, err := e.Templates(ctx.Query("room_id"), uid)
	writeResult(ctx, res, err)
}

// GinHandleSendTemplate 发送模板
// @Summary 发送模板
// @Description 以模板内容发送一条文本消息
// @Tags 内容
// @Accept json
// @Produce json
// @Param req body TemplateReq true "模板名"
// @Success 200 {object} response.Response{data=service.RouteResult} "投递计划"
// @Security UserID
// @Router /template/send [post]
func (e *Engine) GinHandleSendTemplate(ctx *gin.Context) {
	var req TemplateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	uid, name, ok := currentUser(ctx)
	if !ok {
		return
	}
	res, err := e.SendTemplate(req.RoomID, uid, name, req.Name)
	writeResult(ctx, res, err)
}

// -------------------- 投票（Poll） --------------------

type CreatePollReq struct {
	RoomID   string   `json:"room_id" binding:"required"`
	Question string   `json:"question" binding:"required"`
	Options  []string `json:"options" binding:"required"`
}

// GinHandleCreatePoll 发起投票
// @Summary 发起投票
// @Description 2-10 个选项，以文本消息发出
// @Tags 内容
// @Accept json
// @Produce json
// @Param req body CreatePollReq true "投票"
// @Success 200 {object} response.Response{data=service.Poll} "投票"
// @Security UserID
// @Router /poll [post]
func (e *Engine) GinHandleCreatePoll(ctx *gin.Context) {
	var req CreatePollReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	uid, name, ok := currentUser(ctx)
	if !ok {
		return
	}
	res, err := e.CreatePoll(req.RoomID, uid, name, req.Question, req.Options)
	writeResult(ctx, res, err)
}

// GinHandleGetPoll 查询投票
// @Summary 查询投票
// @Tags 内容
// @Produce json
// @Param room_id query string true "房间号"
// @Param poll_id query string true "投票ID"
// @Success 200 {object} response.Response{data=service.Poll} "投票"
// @Security UserID
// @Router /poll [get]
func (e *Engine) GinHandleGetPoll(ctx *gin.Context) {
	uid, _, ok := currentUser(ctx)
	if !ok {
		return
	}
	res, err := e.Poll(ctx.Query("room_id"), uid, ctx.Query("poll_id"))
	writeResult(ctx, res, err)
}
