package service

import (
	"fmt"
	"sort"
	"sync"
)

type userEntry struct {
	rooms    map[string]struct{}
	language string
	welcome  string
}

// UserDirectory 进程内的用户信息：房间配额、语言、欢迎语、全局封禁与全局管理员
type UserDirectory struct {
	*Service

	mu           sync.RWMutex
	users        map[int64]*userEntry
	globalBans   map[int64]struct{}
	globalAdmins map[int64]struct{}
}

func NewUserDirectory(s *Service, globalAdmins ...int64) *UserDirectory {
	d := &UserDirectory{
		Service:      s,
		users:        make(map[int64]*userEntry),
		globalBans:   make(map[int64]struct{}),
		globalAdmins: make(map[int64]struct{}, len(globalAdmins)),
	}
	for _, uid := range globalAdmins {
		d.globalAdmins[uid] = struct{}{}
	}
	return d
}

func (d *UserDirectory) entryLocked(userID int64) *userEntry {
	e, ok := d.users[userID]
	if !ok {
		e = &userEntry{rooms: make(map[string]struct{})}
		d.users[userID] = e
	}
	return e
}

// CanCreateRoom 未被全局封禁且房间数未达上限
func (d *UserDirectory) CanCreateRoom(userID int64) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if _, banned := d.globalBans[userID]; banned {
		return false
	}
	e, ok := d.users[userID]
	return !ok || len(e.rooms) < d.Limits.MaxRoomsPerUser
}

// ReserveRoom 原子地检查配额并登记房间
func (d *UserDirectory) ReserveRoom(userID int64, roomID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, banned := d.globalBans[userID]; banned {
		return fmt.Errorf("%w: globally banned", ErrQuotaExceeded)
	}
	e := d.entryLocked(userID)
	if len(e.rooms) >= d.Limits.MaxRoomsPerUser {
		return ErrQuotaExceeded
	}
	e.rooms[roomID] = struct{}{}
	return nil
}

func (d *UserDirectory) RegisterRoomCreated(userID int64, roomID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entryLocked(userID).rooms[roomID] = struct{}{}
}

// RegisterRoomClosed 释放配额，重复调用无副作用
func (d *UserDirectory) RegisterRoomClosed(userID int64, roomID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if e, ok := d.users[userID]; ok {
		delete(e.rooms, roomID)
	}
}

// OwnedRooms 用户创建且仍在登记中的房间
func (d *UserDirectory) OwnedRooms(userID int64) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	e, ok := d.users[userID]
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(e.rooms))
	for id := range e.rooms {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// -------------------- 全局封禁 / 管理员 --------------------

func (d *UserDirectory) BanGlobally(userID int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.globalBans[userID] = struct{}{}
}

func (d *UserDirectory) UnbanGlobally(userID int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.globalBans, userID)
}

func (d *UserDirectory) IsGloballyBanned(userID int64) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.globalBans[userID]
	return ok
}

func (d *UserDirectory) IsGlobalAdmin(userID int64) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.globalAdmins[userID]
	return ok
}

func (d *UserDirectory) AddGlobalAdmin(userID int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.globalAdmins[userID] = struct{}{}
}

// -------------------- 偏好 --------------------

// SetLanguage 只接受 SupportedLanguages 中的语言
func (d *UserDirectory) SetLanguage(userID int64, lang string) bool {
	supported := false
	for _, l := range d.Limits.SupportedLanguages {
		if l == lang {
			supported = true
			break
		}
	}
	if !supported {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entryLocked(userID).language = lang
	return true
}

// Language 未设置时返回默认语言
func (d *UserDirectory) Language(userID int64) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if e, ok := d.users[userID]; ok && e.language != "" {
		return e.language
	}
	return d.Limits.DefaultLanguage
}

func (d *UserDirectory) SetWelcomeMessage(userID int64, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entryLocked(userID).welcome = text
}

func (d *UserDirectory) WelcomeMessage(userID int64) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if e, ok := d.users[userID]; ok {
		return e.welcome
	}
	return ""
}
