package service

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomRegistry_CreateQuota(t *testing.T) {
	clock := newFakeClock()
	g, users := newTestRegistry(t, clock, Limits{MaxRoomsPerUser: 2})

	a := mustCreate(t, g, 1)
	mustCreate(t, g, 1)
	_, err := g.Create(1, 0, 0)
	assert.ErrorIs(t, err, ErrQuotaExceeded)
	assert.Equal(t, 2, g.Count())
	assert.Len(t, users.OwnedRooms(1), 2)

	// 关闭后释放配额
	_, err = g.Close(a.ID(), 1)
	require.NoError(t, err)
	mustCreate(t, g, 1)
}

func TestRoomRegistry_CreateGloballyBanned(t *testing.T) {
	clock := newFakeClock()
	g, users := newTestRegistry(t, clock, Limits{})
	users.BanGlobally(7)

	_, err := g.Create(7, 0, 0)
	assert.ErrorIs(t, err, ErrQuotaExceeded)
	assert.False(t, users.CanCreateRoom(7))
	assert.Empty(t, users.OwnedRooms(7))
	assert.Equal(t, 0, g.Count())
}

func TestRoomRegistry_CreateOverrides(t *testing.T) {
	clock := newFakeClock()
	g, _ := newTestRegistry(t, clock, Limits{})

	room, err := g.Create(1, 2*time.Hour, 5)
	require.NoError(t, err)
	assert.Equal(t, clock.Now().Add(2*time.Hour), room.ExpiresAt())
	assert.Equal(t, 5, room.MaxMembers())
	assert.Len(t, room.ID(), 8)
}

func TestRoomRegistry_CreateWithPassword(t *testing.T) {
	clock := newFakeClock()
	g, _ := newTestRegistry(t, clock, Limits{})

	room, err := g.CreateWithPassword(1, 0, 0, "s3cret")
	require.NoError(t, err)
	// 登记时已带密码，不存在无密码可加入的窗口
	assert.True(t, room.HasPassword())
	_, err = g.Join(room.ID(), 2, "")
	assert.ErrorIs(t, err, ErrBadPassword)
	_, err = g.Join(room.ID(), 2, "s3cret")
	assert.NoError(t, err)

	plain, err := g.CreateWithPassword(1, 0, 0, "")
	require.NoError(t, err)
	assert.False(t, plain.HasPassword())
}

func TestRoomRegistry_GetExpiredVsNotFound(t *testing.T) {
	clock := newFakeClock()
	g, _ := newTestRegistry(t, clock, Limits{RoomTTL: time.Hour})
	room := mustCreate(t, g, 1)

	_, err := g.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := g.Get(room.ID())
	require.NoError(t, err)
	assert.Same(t, room, got)

	clock.Advance(time.Hour + time.Second)
	_, err = g.Get(room.ID())
	assert.ErrorIs(t, err, ErrExpired)
}

func TestRoomRegistry_LeaveIdempotent(t *testing.T) {
	clock := newFakeClock()
	g, _ := newTestRegistry(t, clock, Limits{})
	room := mustCreate(t, g, 1)
	mustJoin(t, g, room.ID(), 2)

	was, err := g.Leave(room.ID(), 2)
	require.NoError(t, err)
	assert.True(t, was)
	was, err = g.Leave(room.ID(), 2)
	require.NoError(t, err)
	assert.False(t, was)

	_, err = g.Leave("missing", 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRoomRegistry_CloseRequiresCreator(t *testing.T) {
	clock := newFakeClock()
	g, _ := newTestRegistry(t, clock, Limits{})
	room := mustCreate(t, g, 1)
	mustJoin(t, g, room.ID(), 2)

	_, err := g.Close(room.ID(), 2)
	assert.ErrorIs(t, err, ErrNotCreator)
	assert.Equal(t, 1, g.Count())

	res, err := g.Close(room.ID(), 1)
	require.NoError(t, err)
	assert.Equal(t, CloseReasonClosed, res.Reason)
	assert.Equal(t, 0, g.Count())

	_, err = g.Close(room.ID(), 1)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = g.Join(room.ID(), 3, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRoomRegistry_SweepExpired(t *testing.T) {
	clock := newFakeClock()
	g, users := newTestRegistry(t, clock, Limits{RoomTTL: time.Hour})
	short := mustCreate(t, g, 1)
	long, err := g.Create(2, 3*time.Hour, 0)
	require.NoError(t, err)
	mustJoin(t, g, short.ID(), 3)

	clock.Advance(time.Hour)
	assert.Empty(t, g.SweepExpired(clock.Now()), "expiry is strictly after expiresAt")

	clock.Advance(time.Minute)
	results := g.SweepExpired(clock.Now())
	require.Len(t, results, 1)
	assert.Equal(t, short.ID(), results[0].RoomID)
	assert.Equal(t, CloseReasonExpired, results[0].Reason)
	assert.ElementsMatch(t, []int64{1, 3}, results[0].Notify)

	assert.Equal(t, 1, g.Count())
	assert.Empty(t, users.OwnedRooms(1))
	_, err = g.Get(long.ID())
	assert.NoError(t, err)

	assert.Empty(t, g.SweepExpired(clock.Now()))
}

func TestRoomRegistry_SweepPresence(t *testing.T) {
	clock := newFakeClock()
	g, _ := newTestRegistry(t, clock, Limits{PresenceReapWindow: 10 * time.Minute})
	a := mustCreate(t, g, 1)
	mustCreate(t, g, 2)
	mustJoin(t, g, a.ID(), 3)

	clock.Advance(10 * time.Minute)
	assert.Equal(t, 3, g.SweepPresence(clock.Now()))
	assert.Equal(t, 0, g.SweepPresence(clock.Now()))
}

// 并发加入不会超过成员上限
func TestRoomRegistry_ConcurrentJoinRespectsCapacity(t *testing.T) {
	clock := newFakeClock()
	g, _ := newTestRegistry(t, clock, Limits{MaxMembersPerRoom: 10})
	room := mustCreate(t, g, 1)

	var ok, full int32
	var wg sync.WaitGroup
	for i := int64(100); i < 150; i++ {
		wg.Add(1)
		go func(uid int64) {
			defer wg.Done()
			_, err := g.Join(room.ID(), uid, "")
			switch {
			case err == nil:
				atomic.AddInt32(&ok, 1)
			case errors.Is(err, ErrFull):
				atomic.AddInt32(&full, 1)
			default:
				t.Errorf("unexpected join error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(9), ok)
	assert.Equal(t, int32(41), full)
	assert.Equal(t, 10, room.MemberCount())
}

// 并发关闭与清理只会成功一次
func TestRoomRegistry_ConcurrentCloseAndSweep(t *testing.T) {
	clock := newFakeClock()
	g, users := newTestRegistry(t, clock, Limits{RoomTTL: time.Minute, MaxRoomsPerUser: 1})
	room := mustCreate(t, g, 1)
	clock.Advance(2 * time.Minute)

	var closed int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, err := g.Close(room.ID(), 1); err == nil {
				atomic.AddInt32(&closed, 1)
			}
		}()
		go func() {
			defer wg.Done()
			atomic.AddInt32(&closed, int32(len(g.SweepExpired(clock.Now()))))
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), closed)
	assert.Equal(t, 0, g.Count())
	assert.True(t, users.CanCreateRoom(1))
}

// 并发创建不会超过个人配额
func TestRoomRegistry_ConcurrentCreateRespectsQuota(t *testing.T) {
	clock := newFakeClock()
	g, _ := newTestRegistry(t, clock, Limits{MaxRoomsPerUser: 3})

	var created int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := g.Create(1, 0, 0); err == nil {
				atomic.AddInt32(&created, 1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(3), created)
	assert.Equal(t, 3, g.Count())
}
