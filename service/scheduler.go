package service

import (
	"context"
	"sync"
	"time"

	"github.com/cydxin/burnroom/cons"
	"github.com/cydxin/burnroom/message"
	"github.com/cydxin/burnroom/metrics"
	"github.com/google/uuid"
)

const (
	DefaultSweepInterval         = 30 * time.Minute
	DefaultPresenceSweepInterval = 5 * time.Minute

	MinScheduleDelay = time.Minute
	MaxScheduleDelay = 24 * time.Hour
)

// Dispatcher 执行出站指令（默认由 WsServer 实现）
type Dispatcher interface {
	Dispatch(plan []message.Instruction)
}

// Scheduler 后台任务：过期清理、presence 清理、定时消息
type Scheduler struct {
	*Service
	registry *RoomRegistry
	router   *MessageRouter

	SweepInterval         time.Duration
	PresenceSweepInterval time.Duration

	// OnExpired 每个被清理的过期房间回调一次
	OnExpired func(CloseResult)

	mu         sync.Mutex
	dispatcher Dispatcher
	timers     map[string]*time.Timer
	cancel     context.CancelFunc
	wg         sync.WaitGroup
}

func NewScheduler(s *Service, registry *RoomRegistry, router *MessageRouter) *Scheduler {
	return &Scheduler{
		Service:               s,
		registry:              registry,
		router:                router,
		SweepInterval:         DefaultSweepInterval,
		PresenceSweepInterval: DefaultPresenceSweepInterval,
		timers:                make(map[string]*time.Timer),
	}
}

// SetDispatcher 定时消息的投递出口
func (sc *Scheduler) SetDispatcher(d Dispatcher) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.dispatcher = d
}

// Start 启动两个 ticker；重复调用无效
func (sc *Scheduler) Start(ctx context.Context) {
	sc.mu.Lock()
	if sc.cancel != nil {
		sc.mu.Unlock()
		return
	}
	ctx, sc.cancel = context.WithCancel(ctx)
	sc.mu.Unlock()

	sc.wg.Add(2)
	go sc.loop(ctx, sc.SweepInterval, func() { sc.RunExpirySweep(sc.Clock.Now()) })
	go sc.loop(ctx, sc.PresenceSweepInterval, func() { sc.RunPresenceSweep(sc.Clock.Now()) })
	sc.Log.Info().Dur("sweep", sc.SweepInterval).Dur("presence", sc.PresenceSweepInterval).Msg("scheduler started")
}

func (sc *Scheduler) loop(ctx context.Context, every time.Duration, fn func()) {
	defer sc.wg.Done()
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn()
		}
	}
}

// Stop 停止 ticker 并取消所有未触发的定时消息
func (sc *Scheduler) Stop() {
	sc.mu.Lock()
	cancel := sc.cancel
	sc.cancel = nil
	for id, t := range sc.timers {
		t.Stop()
		delete(sc.timers, id)
	}
	sc.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	sc.wg.Wait()
}

// RunExpirySweep 执行一次过期清理
func (sc *Scheduler) RunExpirySweep(now time.Time) []CloseResult {
	results := sc.registry.SweepExpired(now)
	if sc.OnExpired != nil {
		for _, res := range results {
			sc.OnExpired(res)
		}
	}
	return results
}

// RunPresenceSweep 执行一次 presence 清理
func (sc *Scheduler) RunPresenceSweep(now time.Time) int {
	return sc.registry.SweepPresence(now)
}

// ScheduleSend 延迟 delay 后以 sender 身份发送文本，delay 取值 1 分钟到 24 小时
func (sc *Scheduler) ScheduleSend(roomID string, senderID int64, senderName, text string, delay time.Duration) (ScheduledSend, error) {
	if delay < MinScheduleDelay || delay > MaxScheduleDelay {
		return ScheduledSend{}, invalid("delay", "must be between %s and %s", MinScheduleDelay, MaxScheduleDelay)
	}
	if err := sc.router.Validate(message.Event{Kind: message.KindText, Text: text}); err != nil {
		return ScheduledSend{}, err
	}
	room, err := sc.registry.Get(roomID)
	if err != nil {
		return ScheduledSend{}, err
	}

	entry := ScheduledSend{
		ID:         uuid.NewString(),
		RoomID:     roomID,
		DeliverAt:  sc.Clock.Now().Add(delay),
		Text:       text,
		SenderID:   senderID,
		SenderName: senderName,
	}
	if err := room.addScheduledSend(entry); err != nil {
		return ScheduledSend{}, err
	}

	sc.mu.Lock()
	sc.timers[entry.ID] = time.AfterFunc(delay, func() { sc.fire(roomID, entry.ID) })
	sc.mu.Unlock()

	metrics.ScheduledSends.WithLabelValues("scheduled").Inc()
	sc.Log.Debug().Str("room_id", roomID).Str("id", entry.ID).Time("deliver_at", entry.DeliverAt).Msg("send scheduled")
	return entry, nil
}

// fire 触发时重新查房间并取出自己的条目，任何一步失败都静默放弃
func (sc *Scheduler) fire(roomID, id string) {
	sc.mu.Lock()
	delete(sc.timers, id)
	dispatcher := sc.dispatcher
	sc.mu.Unlock()

	room, err := sc.registry.Get(roomID)
	if err != nil {
		metrics.ScheduledSends.WithLabelValues("dropped").Inc()
		return
	}
	entry, ok := room.takeScheduledSend(id)
	if !ok {
		metrics.ScheduledSends.WithLabelValues("dropped").Inc()
		return
	}
	// 触发时与即时发送同样要求：仍是成员且未被全局封禁
	if !room.IsMember(entry.SenderID) || sc.registry.users.IsGloballyBanned(entry.SenderID) {
		metrics.ScheduledSends.WithLabelValues("dropped").Inc()
		sc.Log.Debug().Str("room_id", roomID).Str("id", id).Int64("sender_id", entry.SenderID).Msg("scheduled send dropped, sender gone")
		return
	}
	res, err := sc.router.Route(room, message.Event{
		SenderID:   entry.SenderID,
		SenderName: entry.SenderName,
		RoomID:     roomID,
		Kind:       message.KindText,
		Text:       entry.Text,
	})
	if err != nil {
		metrics.ScheduledSends.WithLabelValues("dropped").Inc()
		sc.Log.Debug().Str("room_id", roomID).Str("id", id).Err(err).Msg("scheduled send dropped")
		return
	}
	for i := range res.Plan {
		if res.Plan[i].Event == "" {
			res.Plan[i].Event = cons.EventScheduled
		}
	}
	if dispatcher != nil {
		dispatcher.Dispatch(res.Plan)
	}
	metrics.ScheduledSends.WithLabelValues("delivered").Inc()
}

// Pending 尚未触发的定时消息数
func (sc *Scheduler) Pending() int {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return len(sc.timers)
}
