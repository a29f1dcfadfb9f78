package service

import (
	"errors"
	"fmt"
)

// 核心错误分类，全部可由调用方恢复；调用方用 errors.Is 判断并选择给用户的提示。
var (
	ErrNotFound         = errors.New("not found")
	ErrExpired          = errors.New("room expired")
	ErrFull             = errors.New("room is full")
	ErrBanned           = errors.New("user is banned")
	ErrBadPassword      = errors.New("bad room password")
	ErrPermissionDenied = errors.New("permission denied")
	ErrQuotaExceeded    = errors.New("room quota exceeded")
	ErrValidationFailed = errors.New("validation failed")
	ErrRoomInactive     = errors.New("room is inactive")

	// ErrNotCreator 非创建者关闭房间
	ErrNotCreator = fmt.Errorf("%w: not the room creator", ErrPermissionDenied)
)

// ValidationError 内容校验失败（大小/类型/长度）
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidationFailed }

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
