package burnroom

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cydxin/burnroom/cons"
	"github.com/cydxin/burnroom/service"
)

const (
	minExtend = time.Hour
	maxExtend = 72 * time.Hour
)

// RoomInfo 房间概览
type RoomInfo struct {
	RoomID        string                `json:"room_id"`
	CreatorID     int64                 `json:"creator_id"`
	CreatedAt     time.Time             `json:"created_at"`
	ExpiresAt     time.Time             `json:"expires_at"`
	RemainingText string                `json:"remaining_text"`
	MemberCount   int                   `json:"member_count"`
	MaxMembers    int                   `json:"max_members"`
	OnlineCount   int                   `json:"online_count"`
	HasPassword   bool                  `json:"has_password"`
	Announcement  *service.Announcement `json:"announcement,omitempty"`
	Status        service.UserStatus    `json:"status"`
}

// RoomInfo 任何人都能查看房间概览，Status 为 viewer 在房间中的状态
func (e *Engine) RoomInfo(roomID string, viewerID int64) (*RoomInfo, error) {
	room, err := e.Rooms.Get(roomID)
	if err != nil {
		return nil, err
	}
	now := e.Service.Clock.Now()
	return &RoomInfo{
		RoomID:        room.ID(),
		CreatorID:     room.CreatorID(),
		CreatedAt:     room.CreatedAt(),
		ExpiresAt:     room.ExpiresAt(),
		RemainingText: service.FormatDuration(room.ExpiresAt().Sub(now)),
		MemberCount:   room.MemberCount(),
		MaxMembers:    room.MaxMembers(),
		OnlineCount:   len(room.OnlineUsers(now)),
		HasPassword:   room.HasPassword(),
		Announcement:  room.Announcement(),
		Status:        room.UserStatus(viewerID, now),
	}, nil
}

// BanMember 管理员拉黑成员；只有创建者能拉黑其他管理员
func (e *Engine) BanMember(roomID string, actorID, targetID int64) error {
	room, err := e.requireAdmin(roomID, actorID)
	if err != nil {
		return err
	}
	if room.IsCreator(targetID) || (room.IsAdmin(targetID) && !room.IsCreator(actorID)) {
		return service.ErrPermissionDenied
	}
	notify := room.Members()
	if !room.BanUser(targetID) {
		return service.ErrRoomInactive
	}
	e.dispatch(e.Router.NoticePlan(notify, cons.EventRoomMemberBanned, roomID, map[string]any{"user_id": targetID}))
	return nil
}

func (e *Engine) UnbanMember(roomID string, actorID, targetID int64) error {
	room, err := e.requireAdmin(roomID, actorID)
	if err != nil {
		return err
	}
	if !room.UnbanUser(targetID) {
		return service.ErrNotFound
	}
	return nil
}

// MuteMember 禁言；管理员之间只有创建者可以操作
func (e *Engine) MuteMember(roomID string, actorID, targetID int64) error {
	room, err := e.requireAdmin(roomID, actorID)
	if err != nil {
		return err
	}
	if room.IsCreator(targetID) || (room.IsAdmin(targetID) && !room.IsCreator(actorID)) {
		return service.ErrPermissionDenied
	}
	if !room.Mute(targetID) {
		return service.ErrNotFound
	}
	e.dispatch(e.Router.NoticePlan(room.Members(), cons.EventRoomUserMute, roomID, map[string]any{"user_id": targetID}))
	return nil
}

func (e *Engine) UnmuteMember(roomID string, actorID, targetID int64) error {
	room, err := e.requireAdmin(roomID, actorID)
	if err != nil {
		return err
	}
	if !room.Unmute(targetID) {
		return service.ErrNotFound
	}
	e.dispatch(e.Router.NoticePlan(room.Members(), cons.EventRoomUserUnmute, roomID, map[string]any{"user_id": targetID}))
	return nil
}

// SetAdmin 设置/取消管理员，只有创建者可以操作，目标必须是成员
func (e *Engine) SetAdmin(roomID string, actorID, targetID int64, isAdmin bool) error {
	room, err := e.requireCreator(roomID, actorID)
	if err != nil {
		return err
	}
	if !room.IsMember(targetID) {
		return service.ErrNotFound
	}
	ok := false
	if isAdmin {
		ok = room.AddAdmin(targetID)
	} else {
		ok = room.RemoveAdmin(targetID)
	}
	if !ok {
		return service.ErrPermissionDenied
	}
	e.dispatch(e.Router.NoticePlan(room.Members(), cons.EventRoomAdminSet, roomID, map[string]any{
		"user_id":  targetID,
		"is_admin": isAdmin,
	}))
	return nil
}

// SetRoomPassword 空串表示取消密码
func (e *Engine) SetRoomPassword(roomID string, actorID int64, password string) error {
	room, err := e.requireCreator(roomID, actorID)
	if err != nil {
		return err
	}
	return room.SetPassword(password)
}

// SetAnnouncement 发布公告并通知全部成员，text 为空表示清除
func (e *Engine) SetAnnouncement(roomID string, actorID int64, text string) error {
	room, err := e.requireAdmin(roomID, actorID)
	if err != nil {
		return err
	}
	if !room.SetAnnouncement(text, actorID, e.Service.Clock.Now()) {
		return service.ErrRoomInactive
	}
	e.dispatch(e.Router.AnnouncePlan(room, room.Announcement()))
	return nil
}

// ExtendRoom 创建者延长有效期，从当前时间起算
func (e *Engine) ExtendRoom(ctx context.Context, roomID string, actorID int64, d time.Duration) (time.Time, error) {
	if d < minExtend || d > maxExtend {
		return time.Time{}, &service.ValidationError{Field: "hours", Reason: "must be between 1 and 72"}
	}
	room, err := e.requireCreator(roomID, actorID)
	if err != nil {
		return time.Time{}, err
	}
	now := e.Service.Clock.Now()
	expiresAt, ok := room.ExtendExpiry(now, d)
	if !ok {
		return time.Time{}, service.ErrExpired
	}
	if e.Invites != nil {
		if err := e.Invites.Extend(ctx, roomID, expiresAt.Sub(now)); err != nil {
			e.log.Warn().Err(err).Str("room_id", roomID).Msg("extend invites failed")
		}
	}
	e.dispatch(e.Router.NoticePlan(room.Members(), cons.EventRoomExtended, roomID, map[string]any{"expires_at": expiresAt}))
	return expiresAt, nil
}

// SetMaxMembers 不能低于当前人数
func (e *Engine) SetMaxMembers(roomID string, actorID int64, n int) error {
	room, err := e.requireCreator(roomID, actorID)
	if err != nil {
		return err
	}
	if !room.SetMaxMembers(n) {
		return &service.ValidationError{Field: "max_members", Reason: "below current member count"}
	}
	return nil
}

// UserStatus 查询某用户在房间中的状态
func (e *Engine) UserStatus(roomID string, userID int64) (service.UserStatus, error) {
	room, err := e.Rooms.Get(roomID)
	if err != nil {
		return "", err
	}
	return room.UserStatus(userID, e.Service.Clock.Now()), nil
}

// -------------------- 全局 --------------------

// BanGlobally 只有全局管理员可以操作；全局管理员不能被封禁
func (e *Engine) BanGlobally(actorID, targetID int64) error {
	if !e.Users.IsGlobalAdmin(actorID) || e.Users.IsGlobalAdmin(targetID) {
		return service.ErrPermissionDenied
	}
	e.Users.BanGlobally(targetID)
	e.log.Info().Int64("actor_id", actorID).Int64("user_id", targetID).Msg("user banned globally")
	return nil
}

func (e *Engine) UnbanGlobally(actorID, targetID int64) error {
	if !e.Users.IsGlobalAdmin(actorID) {
		return service.ErrPermissionDenied
	}
	e.Users.UnbanGlobally(targetID)
	return nil
}

func (e *Engine) SetLanguage(userID int64, lang string) error {
	if !e.Users.SetLanguage(userID, lang) {
		return &service.ValidationError{Field: "language", Reason: "unsupported language " + lang}
	}
	return nil
}

// SetWelcomeMessage 创建者的欢迎语，加入其房间时发给新成员；空串表示关闭
func (e *Engine) SetWelcomeMessage(userID int64, text string) error {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) > e.Service.Limits.MaxMessageLength {
		return &service.ValidationError{Field: "welcome", Reason: "too long"}
	}
	e.Users.SetWelcomeMessage(userID, text)
	return nil
}

// UserSettings 用户的个人设置
type UserSettings struct {
	UserID         int64    `json:"user_id"`
	Language       string   `json:"language"`
	Welcome        string   `json:"welcome"`
	OwnedRooms     []string `json:"owned_rooms"`
	GlobalAdmin    bool     `json:"global_admin"`
	GloballyBanned bool     `json:"globally_banned"`
}

func (e *Engine) Settings(userID int64) UserSettings {
	return UserSettings{
		UserID:         userID,
		Language:       e.Users.Language(userID),
		Welcome:        e.Users.WelcomeMessage(userID),
		OwnedRooms:     e.Users.OwnedRooms(userID),
		GlobalAdmin:    e.Users.IsGlobalAdmin(userID),
		GloballyBanned: e.Users.IsGloballyBanned(userID),
	}
}
