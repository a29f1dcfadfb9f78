package service

import (
	"sync"
	"time"

	"github.com/cydxin/burnroom/message"
	"golang.org/x/crypto/bcrypt"
)

// UserStatus 用户在房间内的状态
type UserStatus string

const (
	StatusNotJoined UserStatus = "not_joined"
	StatusBanned    UserStatus = "banned"
	StatusMuted     UserStatus = "muted"
	StatusCreator   UserStatus = "creator"
	StatusAdmin     UserStatus = "admin"
	StatusOnline    UserStatus = "online"
	StatusOffline   UserStatus = "offline"
)

// CloseReason 房间销毁原因
type CloseReason string

const (
	CloseReasonClosed  CloseReason = "closed"
	CloseReasonExpired CloseReason = "expired"
)

// Announcement 房间公告
type Announcement struct {
	Text  string    `json:"text"`
	SetBy int64     `json:"set_by"`
	SetAt time.Time `json:"set_at"`
}

// JoinResult 加入成功后的房间快照
type JoinResult struct {
	RoomID      string        `json:"room_id"`
	MemberCount int           `json:"member_count"`
	MaxMembers  int           `json:"max_members"`
	ExpiresAt   time.Time     `json:"expires_at"`
	Remaining   time.Duration `json:"remaining"`
}

// CloseResult 房间销毁结果：调用方据此通知成员、清理媒体文件。
type CloseResult struct {
	RoomID     string      `json:"room_id"`
	CreatorID  int64       `json:"creator_id"`
	Reason     CloseReason `json:"reason"`
	Notify     []int64     `json:"notify"`
	MediaPaths []string    `json:"media_paths,omitempty"`
}

type roomOptions struct {
	ttl          time.Duration
	maxMembers   int
	maxPinned    int
	onlineWindow time.Duration
	reapWindow   time.Duration
	passwordCost int
	passwordHash []byte
}

// Room 一个房间的全部内存状态，所有访问都经过 mu。
// active 只会从 true 变为 false 一次，之后任何修改都会被拒绝。
type Room struct {
	mu sync.RWMutex

	id        string
	creatorID int64
	createdAt time.Time
	expiresAt time.Time

	maxMembers   int
	maxPinned    int
	onlineWindow time.Duration
	reapWindow   time.Duration
	passwordCost int

	members      map[int64]struct{}
	admins       map[int64]struct{}
	banned       map[int64]struct{}
	muted        map[int64]struct{}
	passwordHash []byte
	announcement *Announcement

	messages      []*Message
	lastMessageID int64
	editHistory   map[int64][]EditRecord
	pinned        []int64
	autoReplies   []AutoReply
	templates     map[string]Template
	polls         map[string]Poll

	presence       map[int64]time.Time
	scheduledSends []ScheduledSend

	active bool
}

func newRoom(id string, creatorID int64, now time.Time, opt roomOptions) *Room {
	r := &Room{
		id:           id,
		creatorID:    creatorID,
		createdAt:    now,
		expiresAt:    now.Add(opt.ttl),
		maxMembers:   opt.maxMembers,
		maxPinned:    opt.maxPinned,
		onlineWindow: opt.onlineWindow,
		reapWindow:   opt.reapWindow,
		passwordCost: opt.passwordCost,
		passwordHash: opt.passwordHash,
		members:      map[int64]struct{}{creatorID: {}},
		admins:       map[int64]struct{}{creatorID: {}},
		banned:       make(map[int64]struct{}),
		muted:        make(map[int64]struct{}),
		editHistory:  make(map[int64][]EditRecord),
		templates:    make(map[string]Template),
		polls:        make(map[string]Poll),
		presence:     map[int64]time.Time{creatorID: now},
		active:       true,
	}
	if r.maxPinned <= 0 {
		r.maxPinned = 3
	}
	return r
}

func (r *Room) ID() string       { return r.id }
func (r *Room) CreatorID() int64 { return r.creatorID }

func (r *Room) CreatedAt() time.Time { return r.createdAt }

func (r *Room) ExpiresAt() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.expiresAt
}

// IsActive 房间是否仍可用
func (r *Room) IsActive() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// IsExpired now 已超过 expiresAt
func (r *Room) IsExpired(now time.Time) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return now.After(r.expiresAt)
}

func (r *Room) MaxMembers() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.maxMembers
}

// -------------------- 成员 --------------------

// Members 成员快照
func (r *Room) Members() []int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return keys(r.members)
}

func (r *Room) MemberCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members)
}

func (r *Room) IsMember(userID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.members[userID]
	return ok
}

// CanJoin 未被拉黑且未满员
func (r *Room) CanJoin(userID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, banned := r.banned[userID]
	return !banned && len(r.members) < r.maxMembers
}

// IsFull 是否满员
func (r *Room) IsFull() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members) >= r.maxMembers
}

// join 在房间锁内做惰性过期检查，保证过期时刻之后不可能再加入成功。
func (r *Room) join(now time.Time, userID int64, password string) (JoinResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.active {
		return JoinResult{}, ErrNotFound
	}
	if now.After(r.expiresAt) {
		return JoinResult{}, ErrExpired
	}
	if _, ok := r.members[userID]; !ok {
		if len(r.members) >= r.maxMembers {
			return JoinResult{}, ErrFull
		}
		if _, banned := r.banned[userID]; banned {
			return JoinResult{}, ErrBanned
		}
		if !r.checkPasswordLocked(password) {
			return JoinResult{}, ErrBadPassword
		}
		r.members[userID] = struct{}{}
	}
	r.presence[userID] = now

	return JoinResult{
		RoomID:      r.id,
		MemberCount: len(r.members),
		MaxMembers:  r.maxMembers,
		ExpiresAt:   r.expiresAt,
		Remaining:   r.expiresAt.Sub(now),
	}, nil
}

// leave 幂等移除
func (r *Room) leave(userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.members[userID]; !ok {
		return false
	}
	delete(r.members, userID)
	delete(r.presence, userID)
	return true
}

// -------------------- 权限 --------------------

func (r *Room) IsCreator(userID int64) bool { return userID == r.creatorID }

// IsAdmin 创建者永远是管理员
func (r *Room) IsAdmin(userID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.isAdminLocked(userID)
}

func (r *Room) isAdminLocked(userID int64) bool {
	if userID == r.creatorID {
		return true
	}
	_, ok := r.admins[userID]
	return ok
}

// Admins 管理员快照（含创建者）
func (r *Room) Admins() []int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return keys(r.admins)
}

// AddAdmin 添加管理员；被拉黑的用户不能成为管理员
func (r *Room) AddAdmin(userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active {
		return false
	}
	if _, banned := r.banned[userID]; banned {
		return false
	}
	r.admins[userID] = struct{}{}
	return true
}

// RemoveAdmin 创建者不能被移除管理员权限
func (r *Room) RemoveAdmin(userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active || userID == r.creatorID {
		return false
	}
	if _, ok := r.admins[userID]; !ok {
		return false
	}
	delete(r.admins, userID)
	return true
}

// BanUser 拉黑并踢出；对创建者无效
func (r *Room) BanUser(userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active || userID == r.creatorID {
		return false
	}
	r.banned[userID] = struct{}{}
	delete(r.members, userID)
	delete(r.admins, userID)
	delete(r.muted, userID)
	delete(r.presence, userID)
	return true
}

// UnbanUser 解除拉黑，不会自动重新加入
func (r *Room) UnbanUser(userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active {
		return false
	}
	if _, ok := r.banned[userID]; !ok {
		return false
	}
	delete(r.banned, userID)
	return true
}

func (r *Room) IsBanned(userID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.banned[userID]
	return ok
}

// Mute 禁言成员；创建者不能被禁言
func (r *Room) Mute(userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active || userID == r.creatorID {
		return false
	}
	if _, ok := r.members[userID]; !ok {
		return false
	}
	r.muted[userID] = struct{}{}
	return true
}

func (r *Room) Unmute(userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active {
		return false
	}
	if _, ok := r.muted[userID]; !ok {
		return false
	}
	delete(r.muted, userID)
	return true
}

func (r *Room) IsMuted(userID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.muted[userID]
	return ok
}

// hashPassword 空串返回 nil；cost 为 0 时用 bcrypt.DefaultCost
func hashPassword(password string, cost int) ([]byte, error) {
	if password == "" {
		return nil, nil
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, invalid("password", "%v", err)
	}
	return hash, nil
}

// SetPassword 设置密码，空串表示取消密码。哈希在锁外计算。
func (r *Room) SetPassword(password string) error {
	hash, err := hashPassword(password, r.passwordCost)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active {
		return ErrRoomInactive
	}
	r.passwordHash = hash
	return nil
}

// HasPassword 是否设置了密码
func (r *Room) HasPassword() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.passwordHash != nil
}

func (r *Room) checkPasswordLocked(password string) bool {
	if r.passwordHash == nil {
		return true
	}
	return bcrypt.CompareHashAndPassword(r.passwordHash, []byte(password)) == nil
}

// SetAnnouncement 发布公告，text 为空表示清除
func (r *Room) SetAnnouncement(text string, userID int64, now time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active || !r.isAdminLocked(userID) {
		return false
	}
	if text == "" {
		r.announcement = nil
		return true
	}
	r.announcement = &Announcement{Text: text, SetBy: userID, SetAt: now}
	return true
}

// Announcement 当前公告，没有则返回 nil
func (r *Room) Announcement() *Announcement {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.announcement == nil {
		return nil
	}
	a := *r.announcement
	return &a
}

// ExtendExpiry 从 now 起重新计算过期时间（与原 /extend 行为一致）
func (r *Room) ExtendExpiry(now time.Time, d time.Duration) (time.Time, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active || d <= 0 || now.After(r.expiresAt) {
		return r.expiresAt, false
	}
	r.expiresAt = now.Add(d)
	return r.expiresAt, true
}

// SetMaxMembers 修改成员上限，不能低于当前人数
func (r *Room) SetMaxMembers(n int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active || n <= 0 || n < len(r.members) {
		return false
	}
	r.maxMembers = n
	return true
}

// UserStatus 用户在房间中的状态
func (r *Room) UserStatus(userID int64, now time.Time) UserStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, banned := r.banned[userID]; banned {
		return StatusBanned
	}
	if _, ok := r.members[userID]; !ok {
		return StatusNotJoined
	}
	if _, ok := r.muted[userID]; ok {
		return StatusMuted
	}
	if userID == r.creatorID {
		return StatusCreator
	}
	if _, ok := r.admins[userID]; ok {
		return StatusAdmin
	}
	if r.isOnlineLocked(userID, now) {
		return StatusOnline
	}
	return StatusOffline
}

// -------------------- 生命周期 --------------------

// close 标记为不可用并清空消息与成员，返回需要通知的成员和媒体文件。
// force=false 时只有创建者可以关闭。
func (r *Room) close(requesterID int64, force bool, reason CloseReason) (CloseResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.active {
		return CloseResult{}, ErrNotFound
	}
	if !force && requesterID != r.creatorID {
		return CloseResult{}, ErrNotCreator
	}

	res := CloseResult{
		RoomID:    r.id,
		CreatorID: r.creatorID,
		Reason:    reason,
		Notify:    keys(r.members),
	}
	for _, m := range r.messages {
		if m.Payload.Path != "" {
			res.MediaPaths = append(res.MediaPaths, m.Payload.Path)
		}
	}

	r.active = false
	r.messages = nil
	r.members = make(map[int64]struct{})
	r.pinned = nil
	r.editHistory = make(map[int64][]EditRecord)
	r.presence = make(map[int64]time.Time)
	r.scheduledSends = nil
	return res, nil
}

func (r *Room) expiredAndActive(now time.Time) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active && now.After(r.expiresAt)
}

// view 查询时的惰性检查
func (r *Room) view(now time.Time) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.active {
		return ErrNotFound
	}
	if now.After(r.expiresAt) {
		return ErrExpired
	}
	return nil
}

func keys(m map[int64]struct{}) []int64 {
	out := make([]int64, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// messageKindCounts 统计用的零值表
func messageKindCounts() map[message.Kind]int {
	out := make(map[message.Kind]int, len(message.Kinds))
	for _, k := range message.Kinds {
		out[k] = 0
	}
	return out
}
