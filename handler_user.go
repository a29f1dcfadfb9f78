package burnroom

import (
	"net/http"

	"github.com/cydxin/burnroom/response"
	"github.com/gin-gonic/gin"
)

// -------------------- 用户（User）相关接口 --------------------

// GinHandleSettings 个人设置
// @Summary 个人设置
// @Description 语言、欢迎语、拥有的房间
// @Tags 用户
// @Produce json
// @Success 200 {object} response.Response{data=UserSettings} "设置"
// @Security UserID
// @Router /user/settings [get]
func (e *Engine) GinHandleSettings(ctx *gin.Context) {
	uid, _, ok := currentUser(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, response.Success(e.Settings(uid)))
}

type SetLanguageReq struct {
	Language string `json:"language" binding:"required"`
}

// GinHandleSetLanguage 设置语言
// @Summary 设置语言
// @Tags 用户
// @Accept json
// @Produce json
// @Param req body SetLanguageReq true "语言代码"
// @Success 200 {object} response.Response "成功"
// @Security UserID
// @Router /user/language [post]
func (e *Engine) GinHandleSetLanguage(ctx *gin.Context) {
	var req SetLanguageReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	uid, _, ok := currentUser(ctx)
	if !ok {
		return
	}
	writeResult(ctx, nil, e.SetLanguage(uid, req.Language))
}

type SetWelcomeReq struct {
	Text string `json:"text"` // 空串关闭
}

// GinHandleSetWelcome 设置欢迎语
// @Summary 设置欢迎语
// @Tags 用户
// @Accept json
// @Produce json
// @Param req body SetWelcomeReq true "欢迎语"
// @Success 200 {object} response.Response "成功"
// @Security UserID
// @Router /user/welcome [post]
func (e *Engine) GinHandleSetWelcome(ctx *gin.Context) {
	var req SetWelcomeReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	uid, _, ok := currentUser(ctx)
	if !ok {
		return
	}
	writeResult(ctx, nil, e.SetWelcomeMessage(uid, req.Text))
}

type GlobalBanReq struct {
	TargetID int64 `json:"target_id" binding:"required"`
}

// GinHandleGlobalBan 全局封禁
// @Summary 全局封禁
// @Description 仅全局管理员；被封禁用户无法创建、加入房间或发送消息
// @Tags 用户
// @Accept json
// @Produce json
// @Param req body GlobalBanReq true "目标用户"
// @Success 200 {object} response.Response "成功"
// @Security UserID
// @Router /user/global-ban [post]
func (e *Engine) GinHandleGlobalBan(ctx *gin.Context) {
	e.globalAction(ctx, e.BanGlobally)
}

// GinHandleGlobalUnban 解除全局封禁
// @Summary 解除全局封禁
// @Tags 用户
// @Accept json
// @Produce json
// @Param req body GlobalBanReq true "目标用户"
// @Success 200 {object} response.Response "成功"
// @Security UserID
// @Router /user/global-unban [post]
func (e *Engine) GinHandleGlobalUnban(ctx *gin.Context) {
	e.globalAction(ctx, e.UnbanGlobally)
}

func (e *Engine) globalAction(ctx *gin.Context, fn func(actorID, targetID int64) error) {
	var req GlobalBanReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	uid, _, ok := currentUser(ctx)
	if !ok {
		return
	}
	writeResult(ctx, nil, fn(uid, req.TargetID))
}
