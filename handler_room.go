package burnroom

import (
	"net/http"
	"strconv"
	"time"

	"github.com/cydxin/burnroom/middleware"
	"github.com/cydxin/burnroom/response"
	"github.com/gin-gonic/gin"
)

// -------------------- 公共辅助 --------------------

// currentUser 取身份中间件写入的用户，不存在时直接写 401
func currentUser(ctx *gin.Context) (int64, string, bool) {
	uid, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeUserInvalid, "user_id not found"))
		return 0, "", false
	}
	return uid, middleware.UserName(ctx), true
}

// writeResult 业务错误统一 HTTP 200 + 业务码
func writeResult(ctx *gin.Context, data interface{}, err error) {
	if err != nil {
		ctx.JSON(http.StatusOK, response.FromError(err))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(data))
}

func queryInt(ctx *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(ctx.Query(key))
	if err != nil {
		return def
	}
	return v
}

// -------------------- 房间（Room）相关接口 --------------------

type CreateRoomReq struct {
	TTLHours   int    `json:"ttl_hours"`   // 0 使用默认值
	MaxMembers int    `json:"max_members"` // 0 使用默认值
	Password   string `json:"password"`
}

// GinHandleCreateRoom 创建房间
// @Summary 创建房间
// @Description 创建一个临时房间，返回邀请 token；超过个人房间上限返回 20006
// @Tags 房间
// @Accept json
// @Produce json
// @Param req body CreateRoomReq false "创建参数"
// @Success 200 {object} response.Response{data=CreateRoomResult} "房间信息"
// @Failure 400 {object} response.Response "请求错误"
// @Security UserID
// @Router /room/create [post]
func (e *Engine) GinHandleCreateRoom(ctx *gin.Context) {
	var req CreateRoomReq
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
			return
		}
	}
	if req.TTLHours < 0 || req.MaxMembers < 0 {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "ttl_hours/max_members must not be negative"))
		return
	}
	uid, _, ok := currentUser(ctx)
	if !ok {
		return
	}

	res, err := e.CreateRoom(ctx.Request.Context(), uid, CreateRoomOptions{
		TTL:        time.Duration(req.TTLHours) * time.Hour,
		MaxMembers: req.MaxMembers,
		Password:   req.Password,
	})
	writeResult(ctx, res, err)
}

type JoinRoomReq struct {
	Token    string `json:"token" binding:"required"` // 邀请 token 或房间号
	Password string `json:"password"`
}

// GinHandleJoinRoom 加入房间
// @Summary 加入房间
// @Description 通过邀请 token 或房间号加入；已是成员时直接成功
// @Tags 房间
// @Accept json
// @Produce json
// @Param req body JoinRoomReq true "加入参数"
// @Success 200 {object} response.Response{data=service.JoinResult} "加入结果"
// @Failure 400 {object} response.Response "请求错误"
// @Security UserID
// @Router /room/join [post]
func (e *Engine) GinHandleJoinRoom(ctx *gin.Context) {
	var req JoinRoomReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	uid, name, ok := currentUser(ctx)
	if !ok {
		return
	}
	res, err := e.JoinRoom(ctx.Request.Context(), req.Token, uid, name, req.Password)
	writeResult(ctx, res, err)
}

type RoomIDReq struct {
	RoomID string `json:"room_id" binding:"required"`
}

// GinHandleLeaveRoom 离开房间
// @Summary 离开房间
// @Tags 房间
// @Accept json
// @Produce json
// @Param req body RoomIDReq true "房间号"
// @Success 200 {object} response.Response "成功"
// @Security UserID
// @Router /room/leave [post]
func (e *Engine) GinHandleLeaveRoom(ctx *gin.Context) {
	var req RoomIDReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	uid, name, ok := currentUser(ctx)
	if !ok {
		return
	}
	writeResult(ctx, nil, e.LeaveRoom(req.RoomID, uid, name))
}

// GinHandleCloseRoom 关闭房间
// @Summary 关闭房间
// @Description 只有创建者可以关闭，关闭后消息与成员全部清空
// @Tags 房间
// @Accept json
// @Produce json
// @Param req body RoomIDReq true "房间号"
// @Success 200 {object} response.Response{data=service.CloseResult} "关闭结果"
// @Security UserID
// @Router /room/close [post]
func (e *Engine) GinHandleCloseRoom(ctx *gin.Context) {
	var req RoomIDReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	uid, _, ok := currentUser(ctx)
	if !ok {
		return
	}
	res, err := e.CloseRoom(ctx.Request.Context(), req.RoomID, uid)
	writeResult(ctx, res, err)
}

// GinHandleRoomInfo 房间信息
// @Summary 房间信息
// @Tags 房间
// @Produce json
// @Param room_id query string true "房间号"
// @Success 200 {object} response.Response{data=RoomInfo} "房间信息"
// @Security UserID
// @Router /room/info [get]
func (e *Engine) GinHandleRoomInfo(ctx *gin.Context) {
	uid, _, ok := currentUser(ctx)
	if !ok {
		return
	}
	res, err := e.RoomInfo(ctx.Query("room_id"), uid)
	writeResult(ctx, res, err)
}

// GinHandleMyRooms 我创建的房间
// @Summary 我创建的房间
// @Tags 房间
// @Produce json
// @Success 200 {object} response.Response{data=[]string} "房间号列表"
// @Security UserID
// @Router /room/mine [get]
func (e *Engine) GinHandleMyRooms(ctx *gin.Context) {
	uid, _, ok := currentUser(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, response.Success(e.Users.OwnedRooms(uid)))
}

type SetPasswordReq struct {
	RoomID   string `json:"room_id" binding:"required"`
	Password string `json:"password"` // 空串表示取消密码
}

// GinHandleSetPassword 设置房间密码
// @Summary 设置房间密码
// @Tags 房间
// @Accept json
// @Produce json
// @Param req body SetPasswordReq true "密码"
// @Success 200 {object} response.Response "成功"
// @Security UserID
// @Router /room/password [post]
func (e *Engine) GinHandleSetPassword(ctx *gin.Context) {
	var req SetPasswordReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	uid, _, ok := currentUser(ctx)
	if !ok {
		return
	}
	writeResult(ctx, nil, e.SetRoomPassword(req.RoomID, uid, req.Password))
}

type ExtendRoomReq struct {
	RoomID string `json:"room_id" binding:"required"`
	Hours  int    `json:"hours" binding:"required"`
}

// GinHandleExtendRoom 延长有效期
// @Summary 延长有效期
// @Description 从当前时间起重新计算，1-72 小时
// @Tags 房间
// @Accept json
// @Produce json
// @Param req body ExtendRoomReq true "延长参数"
// @Success 200 {object} response.Response "新的过期时间"
// @Security UserID
// @Router /room/extend [post]
func (e *Engine) GinHandleExtendRoom(ctx *gin.Context) {
	var req ExtendRoomReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	uid, _, ok := currentUser(ctx)
	if !ok {
		return
	}
	expiresAt, err := e.ExtendRoom(ctx.Request.Context(), req.RoomID, uid, time.Duration(req.Hours)*time.Hour)
	writeResult(ctx, map[string]any{"expires_at": expiresAt}, err)
}

type SetMaxMembersReq struct {
	RoomID     string `json:"room_id" binding:"required"`
	MaxMembers int    `json:"max_members" binding:"required"`
}

// GinHandleSetMaxMembers 修改人数上限
// @Summary 修改人数上限
// @Tags 房间
// @Accept json
// @Produce json
// @Param req body SetMaxMembersReq true "上限"
// @Success 200 {object} response.Response "成功"
// @Security UserID
// @Router /room/max-members [post]
func (e *Engine) GinHandleSetMaxMembers(ctx *gin.Context) {
	var req SetMaxMembersReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	uid, _, ok := currentUser(ctx)
	if !ok {
		return
	}
	writeResult(ctx, nil, e.SetMaxMembers(req.RoomID, uid, req.MaxMembers))
}

// GinHandleOnlineUsers 在线成员
// @Summary 在线成员
// @Description 最近 5 分钟内活跃过的成员
// @Tags 房间
// @Produce json
// @Param room_id query string true "房间号"
// @Success 200 {object} response.Response{data=[]int64} "用户ID列表"
// @Security UserID
// @Router /room/online [get]
func (e *Engine) GinHandleOnlineUsers(ctx *gin.Context) {
	uid, _, ok := currentUser(ctx)
	if !ok {
		return
	}
	res, err := e.OnlineUsers(ctx.Query("room_id"), uid)
	writeResult(ctx, res, err)
}

// GinHandleRoomStats 活动统计
// @Summary 活动统计
// @Tags 房间
// @Produce json
// @Param room_id query string true "房间号"
// @Success 200 {object} response.Response{data=service.RoomStats} "统计"
// @Security UserID
// @Router /room/stats [get]
func (e *Engine) GinHandleRoomStats(ctx *gin.Context) {
	uid, _, ok := currentUser(ctx)
	if !ok {
		return
	}
	res, err := e.Stats(ctx.Query("room_id"), uid)
	writeResult(ctx, res, err)
}

// GinHandleUserStatus 成员状态
// @Summary 成员状态
// @Tags 房间
// @Produce json
// @Param room_id query string true "房间号"
// @Param target_id query int64 true "目标用户ID"
// @Success 200 {object} response.Response "状态"
// @Security UserID
// @Router /room/status [get]
func (e *Engine) GinHandleUserStatus(ctx *gin.Context) {
	if _, _, ok := currentUser(ctx); !ok {
		return
	}
	target, err := strconv.ParseInt(ctx.Query("target_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "invalid target_id"))
		return
	}
	status, err := e.UserStatus(ctx.Query("room_id"), target)
	writeResult(ctx, map[string]any{"user_id": target, "status": status}, err)
}

// -------------------- 管理 --------------------

type MemberActionReq struct {
	RoomID   string `json:"room_id" binding:"required"`
	TargetID int64  `json:"target_id" binding:"required"`
}

// GinHandleBanMember 拉黑成员
// @Summary 拉黑成员
// @Description 管理员操作，被拉黑的用户会被移出房间
// @Tags 房间管理
// @Accept json
// @Produce json
// @Param req body MemberActionReq true "目标"
// @Success 200 {object} response.Response "成功"
// @Security UserID
// @Router /room/ban [post]
func (e *Engine) GinHandleBanMember(ctx *gin.Context) {
	e.memberAction(ctx, e.BanMember)
}

// GinHandleUnbanMember 解除拉黑
// @Summary 解除拉黑
// @Tags 房间管理
// @Accept json
// @Produce json
// @Param req body MemberActionReq true "目标"
// @Success 200 {object} response.Response "成功"
// @Security UserID
// @Router /room/unban [post]
func (e *Engine) GinHandleUnbanMember(ctx *gin.Context) {
	e.memberAction(ctx, e.UnbanMember)
}

// GinHandleMuteMember 禁言
// @Summary 禁言
// @Tags 房间管理
// @Accept json
// @Produce json
// @Param req body MemberActionReq true "目标"
// @Success 200 {object} response.Response "成功"
// @Security UserID
// @Router /room/mute [post]
func (e *Engine) GinHandleMuteMember(ctx *gin.Context) {
	e.memberAction(ctx, e.MuteMember)
}

// GinHandleUnmuteMember 解除禁言
// @Summary 解除禁言
// @Tags 房间管理
// @Accept json
// @Produce json
// @Param req body MemberActionReq true "目标"
// @Success 200 {object} response.Response "成功"
// @Security UserID
// @Router /room/unmute [post]
func (e *Engine) GinHandleUnmuteMember(ctx *gin.Context) {
	e.memberAction(ctx, e.UnmuteMember)
}

func (e *Engine) memberAction(ctx *gin.Context, fn func(roomID string, actorID, targetID int64) error) {
	var req MemberActionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	uid, _, ok := currentUser(ctx)
	if !ok {
		return
	}
	writeResult(ctx, nil, fn(req.RoomID, uid, req.TargetID))
}

type SetAdminReq struct {
	RoomID   string `json:"room_id" binding:"required"`
	TargetID int64  `json:"target_id" binding:"required"`
	IsAdmin  bool   `json:"is_admin"`
}

// GinHandleSetAdmin 设置/取消管理员
// @Summary 设置/取消管理员
// @Description 只有创建者可以操作
// @Tags 房间管理
// @Accept json
// @Produce json
// @Param req body SetAdminReq true "参数"
// @Success 200 {object} response.Response "成功"
// @Security UserID
// @Router /room/admin [post]
func (e *Engine) GinHandleSetAdmin(ctx *gin.Context) {
	var req SetAdminReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	uid, _, ok := currentUser(ctx)
	if !ok {
		return
	}
	writeResult(ctx, nil, e.SetAdmin(req.RoomID, uid, req.TargetID, req.IsAdmin))
}

type AnnounceReq struct {
	RoomID string `json:"room_id" binding:"required"`
	Text   string `json:"text"` // 空串表示清除
}

// GinHandleAnnounce 发布公告
// @Summary 发布公告
// @Tags 房间管理
// @Accept json
// @Produce json
// @Param req body AnnounceReq true "公告"
// @Success 200 {object} response.Response "成功"
// @Security UserID
// @Router /room/announce [post]
func (e *Engine) GinHandleAnnounce(ctx *gin.Context) {
	var req AnnounceReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	uid, _, ok := currentUser(ctx)
	if !ok {
		return
	}
	writeResult(ctx, nil, e.SetAnnouncement(req.RoomID, uid, req.Text))
}

// -------------------- 导出 --------------------

// GinHandleExportRoom 导出聊天记录
// @Summary 导出聊天记录
// @Description 管理员操作，返回 JSON 文档
// @Tags 房间管理
// @Produce json
// @Param room_id query string true "房间号"
// @Success 200 {object} response.Response{data=service.ExportDocument} "导出文档"
// @Security UserID
// @Router /room/export [get]
func (e *Engine) GinHandleExportRoom(ctx *gin.Context) {
	uid, _, ok := currentUser(ctx)
	if !ok {
		return
	}
	doc, err := e.ExportRoom(ctx.Query("room_id"), uid)
	writeResult(ctx, doc, err)
}

// GinHandleArchiveRoom 导出并归档
// @Summary 导出并归档
// @Description 需要配置数据库
// @Tags 房间管理
// @Accept json
// @Produce json
// @Param req body RoomIDReq true "房间号"
// @Success 200 {object} response.Response{data=models.RoomExport} "归档记录"
// @Security UserID
// @Router /room/export/archive [post]
func (e *Engine) GinHandleArchiveRoom(ctx *gin.Context) {
	var req RoomIDReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	uid, _, ok := currentUser(ctx)
	if !ok {
		return
	}
	rec, err := e.ArchiveRoom(req.RoomID, uid)
	writeResult(ctx, rec, err)
}

// GinHandleListArchives 归档列表
// @Summary 归档列表
// @Tags 房间管理
// @Produce json
// @Param room_id query string true "房间号"
// @Param limit query int false "数量"
// @Success 200 {object} response.Response{data=[]models.RoomExport} "归档记录"
// @Security UserID
// @Router /room/export/archive [get]
func (e *Engine) GinHandleListArchives(ctx *gin.Context) {
	uid, _, ok := currentUser(ctx)
	if !ok {
		return
	}
	roomID := ctx.Query("room_id")
	if _, err := e.requireAdmin(roomID, uid); err != nil {
		writeResult(ctx, nil, err)
		return
	}
	list, err := e.Exports.ListArchives(roomID, queryInt(ctx, "limit", 20))
	writeResult(ctx, list, err)
}
