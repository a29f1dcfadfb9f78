package burnroom

import (
	"github.com/cydxin/burnroom/docs"
	"github.com/cydxin/burnroom/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

/* 路由按模块拆分在：
- handler_room.go
- handler_message.go
- handler_content.go
- handler_user.go
*/

// GinIdentityMiddleware 使用 Engine 的 UserDirectory 做全局封禁检查
func (e *Engine) GinIdentityMiddleware() gin.HandlerFunc {
	return middleware.GinIdentityMiddleware(e.Users, nil)
}

// RegisterRoutes 注册全部路由：/ws、/invite、/metrics、/swagger 以及 /api/v1 业务接口
func (e *Engine) RegisterRoutes(r *gin.Engine) {
	r.GET("/ws", gin.WrapF(e.HandleWS()))
	r.GET("/invite", gin.WrapF(e.HandleResolveInvite()))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	RegisterSwagger(r, "")

	api := r.Group("/api/v1", e.GinIdentityMiddleware())

	room := api.Group("/room")
	room.POST("/create", e.GinHandleCreateRoom)
	room.POST("/join", e.GinHandleJoinRoom)
	room.POST("/leave", e.GinHandleLeaveRoom)
	room.POST("/close", e.GinHandleCloseRoom)
	room.GET("/info", e.GinHandleRoomInfo)
	room.GET("/mine", e.GinHandleMyRooms)
	room.POST("/password", e.GinHandleSetPassword)
	room.POST("/extend", e.GinHandleExtendRoom)
	room.POST("/max-members", e.GinHandleSetMaxMembers)
	room.GET("/online", e.GinHandleOnlineUsers)
	room.GET("/stats", e.GinHandleRoomStats)
	room.GET("/status", e.GinHandleUserStatus)
	room.POST("/ban", e.GinHandleBanMember)
	room.POST("/unban", e.GinHandleUnbanMember)
	room.POST("/mute", e.GinHandleMuteMember)
	room.POST("/unmute", e.GinHandleUnmuteMember)
	room.POST("/admin", e.GinHandleSetAdmin)
	room.POST("/announce", e.GinHandleAnnounce)
	room.GET("/export", e.GinHandleExportRoom)
	room.POST("/export/archive", e.GinHandleArchiveRoom)
	room.GET("/export/archive", e.GinHandleListArchives)

	msg := api.Group("/message")
	msg.POST("/send", e.GinHandleSendMessage)
	msg.POST("/revoke", e.GinHandleRevokeMessage)
	msg.POST("/edit", e.GinHandleEditMessage)
	msg.GET("/edit-history", e.GinHandleEditHistory)
	msg.GET("/history", e.GinHandleHistory)
	msg.GET("/search", e.GinHandleSearch)
	msg.POST("/forward", e.GinHandleForward)
	msg.POST("/schedule", e.GinHandleSchedule)
	msg.POST("/pin", e.GinHandlePin)
	msg.POST("/unpin", e.GinHandleUnpin)
	msg.GET("/pinned", e.GinHandlePinned)

	api.POST("/autoreply", e.GinHandleAddAutoReply)
	api.DELETE("/autoreply", e.GinHandleRemoveAutoReply)
	api.GET("/autoreply", e.GinHandleListAutoReplies)
	api.POST("/template", e.GinHandleAddTemplate)
	api.DELETE("/template", e.GinHandleRemoveTemplate)
	api.GET("/template", e.GinHandleListTemplates)
	api.POST("/template/send", e.GinHandleSendTemplate)
	api.POST("/poll", e.GinHandleCreatePoll)
	api.GET("/poll", e.GinHandleGetPoll)

	user := api.Group("/user")
	user.GET("/settings", e.GinHandleSettings)
	user.POST("/language", e.GinHandleSetLanguage)
	user.POST("/welcome", e.GinHandleSetWelcome)
	user.POST("/global-ban", e.GinHandleGlobalBan)
	user.POST("/global-unban", e.GinHandleGlobalUnban)
}

// RegisterSwagger 挂载 Swagger UI：/swagger/index.html。
// host 为空时沿用 docs 里的默认值，部署在网关后面时传外部地址。
func RegisterSwagger(r gin.IRoutes, host string) {
	if host != "" {
		docs.SwaggerInfo.Host = host
	}
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.DefaultModelsExpandDepth(-1)))
}
