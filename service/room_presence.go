package service

import (
	"sort"
	"time"
)

// Touch 记录最后活跃时间
func (r *Room) Touch(userID int64, now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active {
		return
	}
	r.presence[userID] = now
}

// LastActive 最后活跃时间
func (r *Room) LastActive(userID int64) (time.Time, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.presence[userID]
	return t, ok
}

// OnlineUsers onlineWindow 内活跃过的成员。只读，不删除任何记录。
func (r *Room) OnlineUsers(now time.Time) []int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.onlineLocked(now)
}

func (r *Room) onlineLocked(now time.Time) []int64 {
	out := make([]int64, 0)
	for uid := range r.members {
		if r.isOnlineLocked(uid, now) {
			out = append(out, uid)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (r *Room) isOnlineLocked(userID int64, now time.Time) bool {
	last, ok := r.presence[userID]
	return ok && now.Sub(last) < r.onlineWindow
}

// CullStalePresence 删除超过 presenceReapWindow 的记录，返回删除条数
func (r *Room) CullStalePresence(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for uid, last := range r.presence {
		if now.Sub(last) >= r.reapWindow {
			delete(r.presence, uid)
			n++
		}
	}
	return n
}

// PresenceSize 当前 presence 条数
func (r *Room) PresenceSize() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.presence)
}
