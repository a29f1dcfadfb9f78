package service

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/cydxin/burnroom/metrics"
	"github.com/google/uuid"
)

// RoomRegistry 房间注册表：只负责 id -> *Room 的增删查。
// 注册表锁与房间锁不会嵌套持有：先在房间锁内完成状态变更，释放后再进注册表锁删除。
type RoomRegistry struct {
	*Service
	users *UserDirectory

	mu    sync.RWMutex
	rooms map[string]*Room
}

func NewRoomRegistry(s *Service, users *UserDirectory) *RoomRegistry {
	s.Log.Info().Msg("NewRoomRegistry")
	return &RoomRegistry{Service: s, users: users, rooms: make(map[string]*Room)}
}

// Create 分配房间号并创建房间。ttl/maxMembers 为 0 时取默认配置。
func (g *RoomRegistry) Create(creatorID int64, ttl time.Duration, maxMembers int) (*Room, error) {
	return g.CreateWithPassword(creatorID, ttl, maxMembers, "")
}

// CreateWithPassword 密码在房间登记前就已设置好
func (g *RoomRegistry) CreateWithPassword(creatorID int64, ttl time.Duration, maxMembers int, password string) (*Room, error) {
	hash, err := hashPassword(password, g.PasswordCost)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = g.Limits.RoomTTL
	}
	if maxMembers <= 0 {
		maxMembers = g.Limits.MaxMembersPerRoom
	}
	now := g.Clock.Now()

	g.mu.Lock()
	id := g.newRoomIDLocked()
	if err := g.users.ReserveRoom(creatorID, id); err != nil {
		g.mu.Unlock()
		g.Log.Debug().Int64("creator_id", creatorID).Err(err).Msg("room create refused")
		return nil, err
	}
	room := newRoom(id, creatorID, now, roomOptions{
		ttl:          ttl,
		maxMembers:   maxMembers,
		maxPinned:    g.Limits.MaxPinned,
		onlineWindow: g.Limits.OnlineWindow,
		reapWindow:   g.Limits.PresenceReapWindow,
		passwordCost: g.PasswordCost,
		passwordHash: hash,
	})
	g.rooms[id] = room
	g.mu.Unlock()

	metrics.RoomsCreated.Inc()
	metrics.RoomsActive.Inc()
	g.Log.Info().Str("room_id", id).Int64("creator_id", creatorID).Time("expires_at", room.ExpiresAt()).Msg("room created")
	return room, nil
}

// newRoomIDLocked 取 UUID 前 8 位，冲突则重试
func (g *RoomRegistry) newRoomIDLocked() string {
	for {
		id := uuid.New().String()[:8]
		if _, exists := g.rooms[id]; !exists {
			return id
		}
	}
}

func (g *RoomRegistry) lookup(roomID string) *Room {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.rooms[roomID]
}

// Get 不存在或已关闭返回 ErrNotFound；过期但尚未被清理返回 ErrExpired
func (g *RoomRegistry) Get(roomID string) (*Room, error) {
	room := g.lookup(roomID)
	if room == nil {
		return nil, ErrNotFound
	}
	if err := room.view(g.Clock.Now()); err != nil {
		return nil, err
	}
	return room, nil
}

// Join 检查顺序：过期、已是成员、满员、黑名单、密码
func (g *RoomRegistry) Join(roomID string, userID int64, password string) (JoinResult, error) {
	room := g.lookup(roomID)
	if room == nil {
		metrics.JoinsRejected.WithLabelValues(reasonOf(ErrNotFound)).Inc()
		return JoinResult{}, ErrNotFound
	}
	res, err := room.join(g.Clock.Now(), userID, password)
	if err != nil {
		metrics.JoinsRejected.WithLabelValues(reasonOf(err)).Inc()
		g.Log.Debug().Str("room_id", roomID).Int64("user_id", userID).Err(err).Msg("join rejected")
		return JoinResult{}, err
	}
	return res, nil
}

// Leave 幂等；返回用户此前是否在房间内
func (g *RoomRegistry) Leave(roomID string, userID int64) (bool, error) {
	room := g.lookup(roomID)
	if room == nil {
		return false, ErrNotFound
	}
	return room.leave(userID), nil
}

// Close 只有创建者可以关闭
func (g *RoomRegistry) Close(roomID string, requesterID int64) (CloseResult, error) {
	room := g.lookup(roomID)
	if room == nil {
		return CloseResult{}, ErrNotFound
	}
	res, err := room.close(requesterID, false, CloseReasonClosed)
	if err != nil {
		return CloseResult{}, err
	}
	g.remove(room, res)
	return res, nil
}

// SweepExpired 关闭所有已过期的房间，不做创建者校验
func (g *RoomRegistry) SweepExpired(now time.Time) []CloseResult {
	start := time.Now()
	defer func() {
		metrics.SweepDuration.WithLabelValues("expiry").Observe(time.Since(start).Seconds())
	}()

	var out []CloseResult
	for _, room := range g.List() {
		if !room.expiredAndActive(now) {
			continue
		}
		res, err := room.close(0, true, CloseReasonExpired)
		if err != nil {
			// 与 Close 并发时已被关闭
			continue
		}
		g.remove(room, res)
		out = append(out, res)
	}
	if len(out) > 0 {
		g.Log.Info().Int("count", len(out)).Msg("expired rooms swept")
	}
	return out
}

// SweepPresence 清理所有房间的过期 presence，返回删除总数
func (g *RoomRegistry) SweepPresence(now time.Time) int {
	start := time.Now()
	defer func() {
		metrics.SweepDuration.WithLabelValues("presence").Observe(time.Since(start).Seconds())
	}()

	n := 0
	for _, room := range g.List() {
		n += room.CullStalePresence(now)
	}
	if n > 0 {
		g.Log.Debug().Int("count", n).Msg("stale presence culled")
	}
	return n
}

func (g *RoomRegistry) remove(room *Room, res CloseResult) {
	g.mu.Lock()
	if cur, ok := g.rooms[room.id]; ok && cur == room {
		delete(g.rooms, room.id)
	}
	g.mu.Unlock()

	g.users.RegisterRoomClosed(res.CreatorID, res.RoomID)
	metrics.RoomsClosed.WithLabelValues(string(res.Reason)).Inc()
	metrics.RoomsActive.Dec()
	g.Log.Info().Str("room_id", res.RoomID).Str("reason", string(res.Reason)).Int("notify", len(res.Notify)).Msg("room removed")
}

// List 按房间号排序的快照
func (g *RoomRegistry) List() []*Room {
	g.mu.RLock()
	out := make([]*Room, 0, len(g.rooms))
	for _, r := range g.rooms {
		out = append(out, r)
	}
	g.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

func (g *RoomRegistry) Count() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.rooms)
}

// reasonOf 错误对应的 metrics label
func reasonOf(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrExpired):
		return "expired"
	case errors.Is(err, ErrFull):
		return "full"
	case errors.Is(err, ErrBanned):
		return "banned"
	case errors.Is(err, ErrBadPassword):
		return "bad_password"
	case errors.Is(err, ErrPermissionDenied):
		return "permission_denied"
	case errors.Is(err, ErrQuotaExceeded):
		return "quota"
	case errors.Is(err, ErrValidationFailed):
		return "validation"
	case errors.Is(err, ErrRoomInactive):
		return "inactive"
	default:
		return "other"
	}
}
