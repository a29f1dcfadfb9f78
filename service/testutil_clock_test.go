package service

import (
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// fakeClock 测试用时钟，只在 Advance/Set 时前进
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// newTestService 默认配置 + 假时钟 + 最低 bcrypt cost
func newTestService(t *testing.T, clock *fakeClock, limits Limits) *Service {
	t.Helper()
	return NewBase(&Service{
		Limits:       limits,
		Clock:        clock,
		Log:          zerolog.Nop(),
		PasswordCost: bcrypt.MinCost,
	})
}

// newTestRegistry 返回注册表和它使用的用户目录
func newTestRegistry(t *testing.T, clock *fakeClock, limits Limits) (*RoomRegistry, *UserDirectory) {
	t.Helper()
	s := newTestService(t, clock, limits)
	users := NewUserDirectory(s)
	return NewRoomRegistry(s, users), users
}

func mustCreate(t *testing.T, g *RoomRegistry, creatorID int64) *Room {
	t.Helper()
	room, err := g.Create(creatorID, 0, 0)
	if err != nil {
		t.Fatalf("Create(%d): %v", creatorID, err)
	}
	return room
}

func mustJoin(t *testing.T, g *RoomRegistry, roomID string, userID int64) {
	t.Helper()
	if _, err := g.Join(roomID, userID, ""); err != nil {
		t.Fatalf("Join(%s, %d): %v", roomID, userID, err)
	}
}
