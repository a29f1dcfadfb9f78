package response

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/cydxin/burnroom/service"
)

// Response 统一响应结构
type Response struct {
	Code int         `json:"code" example:"0"`                    // 业务状态码
	Msg  string      `json:"msg" example:"success"`               // 提示消息
	Data interface{} `json:"data,omitempty" swaggertype:"object"` // 响应数据
}

// 业务状态码定义
// 使用说明：
// - 中间件层：使用 HTTP 状态码（401/403/500）
// - 业务层：HTTP 200 + 业务状态码
const (
	CodeSuccess        = 0     // 成功
	CodeParamError     = 10001 // 参数错误
	CodeUserInvalid    = 10004 // 缺少/无效的用户身份
	CodePermissionDeny = 10005 // 权限不足
	CodeRoomNotFound   = 20001 // 房间不存在或已关闭
	CodeRoomExpired    = 20002 // 房间已过期
	CodeRoomFull       = 20003 // 房间已满
	CodeBanned         = 20004 // 被拉黑
	CodeBadPassword    = 20005 // 房间密码错误
	CodeQuotaExceeded  = 20006 // 创建房间数已达上限
	CodeValidation     = 20007 // 内容校验失败
	CodeRoomInactive   = 20008 // 房间已停用
	CodeInternalError  = 99999 // 内部错误
)

// Success 成功响应
func Success(data interface{}, args ...string) *Response {
	msg := "success"
	for _, arg := range args {
		msg = arg
	}
	return &Response{
		Code: CodeSuccess,
		Msg:  msg,
		Data: data,
	}
}

// Error 错误响应
func Error(code int, msg string) *Response {
	return &Response{
		Code: code,
		Msg:  msg,
	}
}

// FromError 把核心错误映射为业务状态码
func FromError(err error) *Response {
	return Error(CodeOf(err), err.Error())
}

// CodeOf 核心错误对应的业务状态码
func CodeOf(err error) int {
	switch {
	case err == nil:
		return CodeSuccess
	case errors.Is(err, service.ErrNotFound):
		return CodeRoomNotFound
	case errors.Is(err, service.ErrExpired):
		return CodeRoomExpired
	case errors.Is(err, service.ErrFull):
		return CodeRoomFull
	case errors.Is(err, service.ErrBanned):
		return CodeBanned
	case errors.Is(err, service.ErrBadPassword):
		return CodeBadPassword
	case errors.Is(err, service.ErrPermissionDenied):
		return CodePermissionDeny
	case errors.Is(err, service.ErrQuotaExceeded):
		return CodeQuotaExceeded
	case errors.Is(err, service.ErrValidationFailed):
		return CodeValidation
	case errors.Is(err, service.ErrRoomInactive):
		return CodeRoomInactive
	default:
		return CodeInternalError
	}
}

// WriteJSON 写入 JSON 响应（默认 HTTP 200）
func (r *Response) WriteJSON(w http.ResponseWriter) {
	r.WriteJSONWithStatus(w, http.StatusOK)
}

// WriteJSONWithStatus 写入 JSON 响应（指定 HTTP 状态码）
// 用于中间件层面的身份校验失败等场景（如 401）
func (r *Response) WriteJSONWithStatus(w http.ResponseWriter, httpStatus int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	if err := json.NewEncoder(w).Encode(r); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
