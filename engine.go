package burnroom

import (
	"context"
	"errors"
	"time"

	"github.com/cydxin/burnroom/cons"
	"github.com/cydxin/burnroom/message"
	"github.com/cydxin/burnroom/service"
	"github.com/rs/zerolog"
)

type Engine struct {
	config *Config
	log    zerolog.Logger

	Service   *service.Service
	Users     *service.UserDirectory
	Rooms     *service.RoomRegistry
	Router    *service.MessageRouter
	Scheduler *service.Scheduler
	Exports   *service.ExportService
	Invites   *service.InviteService // 未配置 Redis 时为 nil
	WsServer  *WsServer

	dispatcher service.Dispatcher
}

// NewEngine 创建实例
// 使用选项模式传入配置，Option回调
func NewEngine(opts ...Option) *Engine {
	c := &Config{Logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}

	base := service.NewBase(&service.Service{
		DB:           c.DB,
		RDB:          c.RDB,
		Limits:       c.Limits,
		Clock:        c.Clock,
		Log:          c.Logger,
		PasswordCost: c.PasswordCost,
	})

	e := &Engine{config: c, log: c.Logger, Service: base}

	// 初始化 WS，默认由 WsServer 投递出站指令
	e.WsServer = NewWsServer(c.Logger)
	e.dispatcher = c.Dispatcher
	if e.dispatcher == nil {
		e.dispatcher = e.WsServer
	}

	// 初始化各个 Service
	e.Users = service.NewUserDirectory(base, c.GlobalAdmins...)
	e.Rooms = service.NewRoomRegistry(base, e.Users)
	e.Router = service.NewMessageRouter(base)
	e.Scheduler = service.NewScheduler(base, e.Rooms, e.Router)
	if c.Scheduler.SweepInterval > 0 {
		e.Scheduler.SweepInterval = c.Scheduler.SweepInterval
	}
	if c.Scheduler.PresenceSweepInterval > 0 {
		e.Scheduler.PresenceSweepInterval = c.Scheduler.PresenceSweepInterval
	}
	e.Scheduler.SetDispatcher(e.dispatcher)
	e.Scheduler.OnExpired = func(res service.CloseResult) {
		e.finishRoom(context.Background(), res)
	}
	e.Exports = service.NewExportService(base)
	if c.RDB != nil {
		e.Invites = service.NewInviteService(c.RDB)
	}

	e.bindWsHandlers()

	// 迁移表
	if c.DB != nil {
		if err := e.AutoMigrate(); err != nil {
			e.log.Error().Err(err).Msg("AutoMigrate failed")
		}
	}
	return e
}

// Start 启动 WS hub 与后台清理任务，ctx 取消后 hub 退出
func (e *Engine) Start(ctx context.Context) {
	go e.WsServer.Run(ctx)
	e.Scheduler.Start(ctx)
}

// Stop 停止后台任务（不关闭已有的 WS 连接）
func (e *Engine) Stop() {
	e.Scheduler.Stop()
}

func (e *Engine) dispatch(plan []message.Instruction) {
	if len(plan) == 0 || e.dispatcher == nil {
		return
	}
	e.dispatcher.Dispatch(plan)
}

// -------------------- 房间生命周期 --------------------

type CreateRoomOptions struct {
	TTL        time.Duration
	MaxMembers int
	Password   string
}

// CreateRoomResult 创建房间的返回
type CreateRoomResult struct {
	RoomID     string    `json:"room_id"`
	CreatorID  int64     `json:"creator_id"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
	JoinToken  string    `json:"join_token"`
	InviteLink string    `json:"invite_link"`
}

// CreateRoom 创建房间并生成邀请 token；未配置 Redis 时 token 就是房间号
func (e *Engine) CreateRoom(ctx context.Context, creatorID int64, opt CreateRoomOptions) (*CreateRoomResult, error) {
	room, err := e.Rooms.CreateWithPassword(creatorID, opt.TTL, opt.MaxMembers, opt.Password)
	if err != nil {
		return nil, err
	}

	token := room.ID()
	if e.Invites != nil {
		ttl := room.ExpiresAt().Sub(e.Service.Clock.Now())
		if t, err := e.Invites.Issue(ctx, room.ID(), ttl); err != nil {
			e.log.Warn().Err(err).Str("room_id", room.ID()).Msg("issue invite token failed, fallback to room id")
		} else {
			token = t
		}
	}

	return &CreateRoomResult{
		RoomID:     room.ID(),
		CreatorID:  creatorID,
		CreatedAt:  room.CreatedAt(),
		ExpiresAt:  room.ExpiresAt(),
		JoinToken:  token,
		InviteLink: service.Link(e.config.InviteBaseURL, token),
	}, nil
}

// ResolveInvite token -> 房间号；token 不在 Redis 中时按房间号处理
func (e *Engine) ResolveInvite(ctx context.Context, token string) string {
	if e.Invites == nil {
		return token
	}
	roomID, err := e.Invites.Resolve(ctx, token)
	if err != nil {
		if !errors.Is(err, service.ErrNotFound) {
			e.log.Warn().Err(err).Msg("resolve invite failed")
		}
		return token
	}
	return roomID
}

// JoinRoom 通过邀请 token 或房间号加入
func (e *Engine) JoinRoom(ctx context.Context, token string, userID int64, name, password string) (*service.JoinResult, error) {
	if e.Users.IsGloballyBanned(userID) {
		return nil, service.ErrBanned
	}
	roomID := e.ResolveInvite(ctx, token)
	room, err := e.Rooms.Get(roomID)
	if err != nil {
		return nil, err
	}
	wasMember := room.IsMember(userID)

	res, err := e.Rooms.Join(roomID, userID, password)
	if err != nil {
		return nil, err
	}
	if wasMember {
		return &res, nil
	}

	var plan []message.Instruction
	others := without(room.Members(), userID)
	plan = append(plan, e.Router.NoticePlan(others, cons.EventRoomMemberJoined, roomID, map[string]any{
		"user_id":      userID,
		"name":         name,
		"member_count": res.MemberCount,
	})...)
	if welcome := e.Users.WelcomeMessage(room.CreatorID()); welcome != "" {
		plan = append(plan, message.Instruction{
			RecipientID: userID,
			Action:      message.ActionSendText,
			Payload:     message.Payload{RoomID: roomID, Text: welcome},
		})
	}
	if a := room.Announcement(); a != nil {
		plan = append(plan, e.Router.NoticePlan([]int64{userID}, cons.EventRoomNoticeSet, roomID, map[string]any{"text": a.Text})...)
	}
	e.dispatch(plan)
	return &res, nil
}

// LeaveRoom 幂等，离开成功时通知其他成员
func (e *Engine) LeaveRoom(roomID string, userID int64, name string) error {
	left, err := e.Rooms.Leave(roomID, userID)
	if err != nil {
		return err
	}
	if !left {
		return nil
	}
	if room, err := e.Rooms.Get(roomID); err == nil {
		e.dispatch(e.Router.NoticePlan(room.Members(), cons.EventRoomMemberLeft, roomID, map[string]any{
			"user_id": userID,
			"name":    name,
		}))
	}
	return nil
}

// CloseRoom 创建者关闭房间
func (e *Engine) CloseRoom(ctx context.Context, roomID string, requesterID int64) (*service.CloseResult, error) {
	res, err := e.Rooms.Close(roomID, requesterID)
	if err != nil {
		return nil, err
	}
	e.finishRoom(ctx, res)
	return &res, nil
}

// finishRoom 关闭与过期共用的收尾：通知成员、删除媒体文件、注销邀请 token
func (e *Engine) finishRoom(ctx context.Context, res service.CloseResult) {
	e.dispatch(e.Router.ClosePlan(res))

	if e.config.MediaReleaser != nil {
		if err := e.config.MediaReleaser.Release(res.RoomID, res.MediaPaths); err != nil {
			e.log.Error().Err(err).Str("room_id", res.RoomID).Msg("release media failed")
		}
	}
	if e.Invites != nil {
		if err := e.Invites.RevokeRoom(ctx, res.RoomID); err != nil {
			e.log.Error().Err(err).Str("room_id", res.RoomID).Msg("revoke invites failed")
		}
	}
}

// -------------------- 消息 --------------------

// HandleEvent 入站事件的统一入口：校验、写入并投递
func (e *Engine) HandleEvent(ev message.Event) (*service.RouteResult, error) {
	res, err := e.route(ev)
	if err != nil {
		return nil, err
	}
	e.dispatch(res.Plan)
	return res, nil
}

// route 全局封禁、成员身份检查后写入房间，不投递
func (e *Engine) route(ev message.Event) (*service.RouteResult, error) {
	if e.Users.IsGloballyBanned(ev.SenderID) {
		return nil, service.ErrBanned
	}
	room, err := e.requireMember(ev.RoomID, ev.SenderID)
	if err != nil {
		return nil, err
	}
	return e.Router.Route(room, ev)
}

// Touch 刷新在线状态
func (e *Engine) Touch(roomID string, userID int64) error {
	room, err := e.requireMember(roomID, userID)
	if err != nil {
		return err
	}
	room.Touch(userID, e.Service.Clock.Now())
	return nil
}

// -------------------- 权限辅助 --------------------

func (e *Engine) requireMember(roomID string, userID int64) (*service.Room, error) {
	room, err := e.Rooms.Get(roomID)
	if err != nil {
		return nil, err
	}
	if !room.IsMember(userID) {
		if room.IsBanned(userID) {
			return nil, service.ErrBanned
		}
		return nil, service.ErrPermissionDenied
	}
	return room, nil
}

func (e *Engine) requireAdmin(roomID string, userID int64) (*service.Room, error) {
	room, err := e.Rooms.Get(roomID)
	if err != nil {
		return nil, err
	}
	if !room.IsAdmin(userID) {
		return nil, service.ErrPermissionDenied
	}
	return room, nil
}

func (e *Engine) requireCreator(roomID string, userID int64) (*service.Room, error) {
	room, err := e.Rooms.Get(roomID)
	if err != nil {
		return nil, err
	}
	if !room.IsCreator(userID) {
		return nil, service.ErrNotCreator
	}
	return room, nil
}

func without(ids []int64, drop int64) []int64 {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id != drop {
			out = append(out, id)
		}
	}
	return out
}
