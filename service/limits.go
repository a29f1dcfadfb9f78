package service

import (
	"time"

	"github.com/cydxin/burnroom/message"
)

// Limits 核心读取的全部配置（只读）
type Limits struct {
	MaxMembersPerRoom  int
	MaxRoomsPerUser    int
	RoomTTL            time.Duration
	MaxMessageLength   int
	MaxFileSize        int64
	AllowedMime        map[message.Kind][]string
	MaxPinned          int
	OnlineWindow       time.Duration // "/online" 判定在线的窗口
	PresenceReapWindow time.Duration // 房间内部清理 presence 的窗口
	DefaultLanguage    string
	SupportedLanguages []string
	// MediaDir 非空时媒体消息的 file_path 必须是 {MediaDir}/{roomID}_*
	MediaDir string
}

// DefaultAllowedMime 默认媒体类型白名单；sticker 不做类型校验
func DefaultAllowedMime() map[message.Kind][]string {
	return map[message.Kind][]string{
		message.KindPhoto:     {"image/jpeg", "image/png", "image/gif"},
		message.KindVideo:     {"video/mp4", "video/mpeg"},
		message.KindDocument:  {"application/pdf", "application/msword", "text/plain"},
		message.KindVoice:     {"audio/mpeg", "audio/ogg"},
		message.KindAnimation: {"image/gif", "video/mp4"},
	}
}

// DefaultLimits 默认配置
func DefaultLimits() Limits {
	return Limits{
		MaxMembersPerRoom:  50,
		MaxRoomsPerUser:    3,
		RoomTTL:            24 * time.Hour,
		MaxMessageLength:   4096,
		MaxFileSize:        20 * 1024 * 1024,
		AllowedMime:        DefaultAllowedMime(),
		MaxPinned:          3,
		OnlineWindow:       300 * time.Second,
		PresenceReapWindow: 1800 * time.Second,
		DefaultLanguage:    "zh",
		SupportedLanguages: []string{"zh", "en"},
	}
}

func (l Limits) withDefaults() Limits {
	d := DefaultLimits()
	if l.MaxMembersPerRoom <= 0 {
		l.MaxMembersPerRoom = d.MaxMembersPerRoom
	}
	if l.MaxRoomsPerUser <= 0 {
		l.MaxRoomsPerUser = d.MaxRoomsPerUser
	}
	if l.RoomTTL <= 0 {
		l.RoomTTL = d.RoomTTL
	}
	if l.MaxMessageLength <= 0 {
		l.MaxMessageLength = d.MaxMessageLength
	}
	if l.MaxFileSize <= 0 {
		l.MaxFileSize = d.MaxFileSize
	}
	if l.AllowedMime == nil {
		l.AllowedMime = d.AllowedMime
	}
	if l.MaxPinned <= 0 {
		l.MaxPinned = d.MaxPinned
	}
	if l.OnlineWindow <= 0 {
		l.OnlineWindow = d.OnlineWindow
	}
	if l.PresenceReapWindow <= 0 {
		l.PresenceReapWindow = d.PresenceReapWindow
	}
	if l.DefaultLanguage == "" {
		l.DefaultLanguage = d.DefaultLanguage
	}
	if len(l.SupportedLanguages) == 0 {
		l.SupportedLanguages = d.SupportedLanguages
	}
	return l
}

func (l Limits) mimeAllowed(kind message.Kind, mime string) (checked, ok bool) {
	list, exists := l.AllowedMime[kind]
	if !exists {
		return false, true
	}
	for _, m := range list {
		if m == mime {
			return true, true
		}
	}
	return true, false
}
