package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cydxin/burnroom/cons"
	"github.com/cydxin/burnroom/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingDispatcher 记录所有投递的指令
type recordingDispatcher struct {
	mu   sync.Mutex
	sent []message.Instruction
}

func (d *recordingDispatcher) Dispatch(plan []message.Instruction) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent = append(d.sent, plan...)
}

func (d *recordingDispatcher) all() []message.Instruction {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]message.Instruction, len(d.sent))
	copy(out, d.sent)
	return out
}

func newSchedulerFixture(t *testing.T, limits Limits) (*Scheduler, *RoomRegistry, *fakeClock, *recordingDispatcher) {
	t.Helper()
	clock := newFakeClock()
	s := newTestService(t, clock, limits)
	g := NewRoomRegistry(s, NewUserDirectory(s))
	sc := NewScheduler(s, g, NewMessageRouter(s))
	d := &recordingDispatcher{}
	sc.SetDispatcher(d)
	t.Cleanup(sc.Stop)
	return sc, g, clock, d
}

func TestScheduler_ScheduleSendValidation(t *testing.T) {
	sc, g, _, _ := newSchedulerFixture(t, Limits{})
	room := mustCreate(t, g, 1)

	_, err := sc.ScheduleSend(room.ID(), 1, "alice", "hi", 30*time.Second)
	assert.ErrorIs(t, err, ErrValidationFailed)
	_, err = sc.ScheduleSend(room.ID(), 1, "alice", "hi", 1441*time.Minute)
	assert.ErrorIs(t, err, ErrValidationFailed)
	_, err = sc.ScheduleSend(room.ID(), 1, "alice", "", time.Minute)
	assert.ErrorIs(t, err, ErrValidationFailed)
	_, err = sc.ScheduleSend("missing", 1, "alice", "hi", time.Minute)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, sc.Pending())
}

func TestScheduler_FireDelivers(t *testing.T) {
	sc, g, clock, d := newSchedulerFixture(t, Limits{})
	room := mustCreate(t, g, 1)
	mustJoin(t, g, room.ID(), 2)

	entry, err := sc.ScheduleSend(room.ID(), 1, "alice", "reminder", 10*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, clock.Now().Add(10*time.Minute), entry.DeliverAt)
	assert.Equal(t, 1, sc.Pending())
	require.Len(t, room.ScheduledSends(), 1)

	sc.fire(room.ID(), entry.ID)

	assert.Equal(t, 0, sc.Pending())
	assert.Empty(t, room.ScheduledSends())
	sent := d.all()
	require.Len(t, sent, 1)
	assert.Equal(t, int64(2), sent[0].RecipientID)
	assert.Equal(t, cons.EventScheduled, sent[0].Event)
	assert.Equal(t, "alice: reminder", sent[0].Payload.Text)
	assert.Equal(t, 1, room.MessageCount())

	// 重复触发不会重复发送
	sc.fire(room.ID(), entry.ID)
	assert.Len(t, d.all(), 1)
}

func TestScheduler_FireAfterCloseIsNoop(t *testing.T) {
	sc, g, _, d := newSchedulerFixture(t, Limits{})
	room := mustCreate(t, g, 1)
	mustJoin(t, g, room.ID(), 2)

	entry, err := sc.ScheduleSend(room.ID(), 1, "alice", "later", time.Hour)
	require.NoError(t, err)
	_, err = g.Close(room.ID(), 1)
	require.NoError(t, err)

	sc.fire(room.ID(), entry.ID)
	assert.Empty(t, d.all())
	assert.Equal(t, 0, room.MessageCount())
}

func TestScheduler_FireMutedSenderDropped(t *testing.T) {
	sc, g, _, d := newSchedulerFixture(t, Limits{})
	room := mustCreate(t, g, 1)
	mustJoin(t, g, room.ID(), 2)

	entry, err := sc.ScheduleSend(room.ID(), 2, "bob", "later", time.Hour)
	require.NoError(t, err)
	require.True(t, room.Mute(2))

	sc.fire(room.ID(), entry.ID)
	assert.Empty(t, d.all())
}

func TestScheduler_FireDropsSenderNoLongerAllowed(t *testing.T) {
	sc, g, _, d := newSchedulerFixture(t, Limits{})
	room := mustCreate(t, g, 1)
	mustJoin(t, g, room.ID(), 2)
	mustJoin(t, g, room.ID(), 3)

	left, err := sc.ScheduleSend(room.ID(), 2, "bob", "from a ghost", time.Hour)
	require.NoError(t, err)
	banned, err := sc.ScheduleSend(room.ID(), 3, "carol", "from a banned user", time.Hour)
	require.NoError(t, err)

	_, err = g.Leave(room.ID(), 2)
	require.NoError(t, err)
	g.users.BanGlobally(3)

	sc.fire(room.ID(), left.ID)
	sc.fire(room.ID(), banned.ID)
	assert.Empty(t, d.all())
	assert.Equal(t, 0, room.MessageCount())
	assert.Empty(t, room.ScheduledSends())
}

func TestScheduler_RunExpirySweepCallsOnExpired(t *testing.T) {
	sc, g, clock, _ := newSchedulerFixture(t, Limits{RoomTTL: time.Hour})
	room := mustCreate(t, g, 1)

	var got []CloseResult
	sc.OnExpired = func(res CloseResult) { got = append(got, res) }

	assert.Empty(t, sc.RunExpirySweep(clock.Now()))
	clock.Advance(2 * time.Hour)
	res := sc.RunExpirySweep(clock.Now())
	require.Len(t, res, 1)
	require.Len(t, got, 1)
	assert.Equal(t, room.ID(), got[0].RoomID)
	assert.Equal(t, CloseReasonExpired, got[0].Reason)
}

func TestScheduler_StartStop(t *testing.T) {
	sc, g, clock, _ := newSchedulerFixture(t, Limits{RoomTTL: time.Hour})
	sc.SweepInterval = 5 * time.Millisecond
	sc.PresenceSweepInterval = 5 * time.Millisecond
	mustCreate(t, g, 1)

	var mu sync.Mutex
	expired := 0
	sc.OnExpired = func(CloseResult) {
		mu.Lock()
		expired++
		mu.Unlock()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sc.Start(ctx)
	sc.Start(ctx) // 重复启动无效

	clock.Advance(2 * time.Hour)
	require.Eventually(t, func() bool { return g.Count() == 0 }, time.Second, 5*time.Millisecond)

	sc.Stop()
	mu.Lock()
	assert.Equal(t, 1, expired)
	mu.Unlock()
}
