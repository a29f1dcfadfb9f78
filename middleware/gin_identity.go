package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/cydxin/burnroom/response"
	"github.com/gin-gonic/gin"
)

const (
	// ContextUserIDKey gin context 里保存 user id 的 key
	ContextUserIDKey   = "user_id"
	ContextUserNameKey = "user_name"
)

// BanChecker 全局封禁查询（UserDirectory 实现）
type BanChecker interface {
	IsGloballyBanned(userID int64) bool
}

// IdentityOptions 可选配置。
type IdentityOptions struct {
	// UserIDHeader 默认 X-User-ID
	UserIDHeader string
	// UserNameHeader 默认 X-User-Name
	UserNameHeader string
	// QueryKey 默认 user_id
	QueryKey string
}

func (o *IdentityOptions) withDefaults() IdentityOptions {
	if o == nil {
		return IdentityOptions{UserIDHeader: "X-User-ID", UserNameHeader: "X-User-Name", QueryKey: "user_id"}
	}
	out := *o
	if out.UserIDHeader == "" {
		out.UserIDHeader = "X-User-ID"
	}
	if out.UserNameHeader == "" {
		out.UserNameHeader = "X-User-Name"
	}
	if out.QueryKey == "" {
		out.QueryKey = "user_id"
	}
	return out
}

/*
	GinIdentityMiddleware Gin 身份中间件：

- 用户身份由上游（聊天平台 / 网关）完成认证，这里只读取结果
- 优先从 X-User-ID 读取，没有再从 query 读取（默认 user_id=xxx）
- 全局封禁的用户直接 403

使用：router.Use(middleware.GinIdentityMiddleware(users, nil))
*/
func GinIdentityMiddleware(bans BanChecker, opt *IdentityOptions) gin.HandlerFunc {
	cfg := opt.withDefaults()

	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(cfg.UserIDHeader))
		if raw == "" {
			raw = strings.TrimSpace(c.Query(cfg.QueryKey))
		}
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Response{
				Code: response.CodeUserInvalid,
				Msg:  "missing user id",
			})
			return
		}
		uid, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || uid <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Response{
				Code: response.CodeUserInvalid,
				Msg:  "invalid user id",
			})
			return
		}
		if bans != nil && bans.IsGloballyBanned(uid) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Response{
				Code: response.CodeBanned,
				Msg:  "user is banned",
			})
			return
		}

		name := strings.TrimSpace(c.GetHeader(cfg.UserNameHeader))
		if name == "" {
			name = strings.TrimSpace(c.Query("name"))
		}
		if name == "" {
			name = "user" + raw
		}

		c.Set(ContextUserIDKey, uid)
		c.Set(ContextUserNameKey, name)
		c.Next()
	}
}

// UserID 从 gin.Context 取当前用户
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(ContextUserIDKey)
	if !ok {
		return 0, false
	}
	uid, ok := v.(int64)
	return uid, ok
}

// UserName 从 gin.Context 取当前用户展示名
func UserName(c *gin.Context) string {
	return c.GetString(ContextUserNameKey)
}
