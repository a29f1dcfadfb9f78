package burnroom

import (
	"fmt"
	"strings"
	"time"

	"github.com/cydxin/burnroom/cons"
	"github.com/cydxin/burnroom/message"
	"github.com/cydxin/burnroom/models"
	"github.com/cydxin/burnroom/service"
	"github.com/google/uuid"
)

const (
	minPollOptions = 2
	maxPollOptions = 10
)

// RevokeMessage 发送者或管理员撤回消息
func (e *Engine) RevokeMessage(roomID string, actorID, messageID int64) error {
	room, err := e.requireMember(roomID, actorID)
	if err != nil {
		return err
	}
	msg, ok := room.Message(messageID)
	if !ok {
		return service.ErrNotFound
	}
	if msg.SenderID != actorID && !room.IsAdmin(actorID) {
		return service.ErrPermissionDenied
	}
	recipients := room.Members()
	if !room.RevokeMessage(messageID) {
		return service.ErrNotFound
	}
	e.dispatch(e.Router.RevokePlan(roomID, messageID, recipients))
	return nil
}

// EditMessage 发送者或管理员编辑消息
func (e *Engine) EditMessage(roomID string, actorID, messageID int64, content string) (*service.Message, error) {
	if err := e.Router.Validate(message.Event{Kind: message.KindText, Text: content}); err != nil {
		return nil, err
	}
	room, err := e.requireMember(roomID, actorID)
	if err != nil {
		return nil, err
	}
	if _, ok := room.Message(messageID); !ok {
		return nil, service.ErrNotFound
	}
	if !room.EditMessage(messageID, actorID, content, e.Service.Clock.Now()) {
		return nil, service.ErrPermissionDenied
	}
	msg, _ := room.Message(messageID)
	e.dispatch(e.Router.EditPlan(room, msg, actorID))
	return &msg, nil
}

func (e *Engine) EditHistory(roomID string, viewerID, messageID int64) ([]service.EditRecord, error) {
	room, err := e.requireMember(roomID, viewerID)
	if err != nil {
		return nil, err
	}
	return room.EditHistory(messageID), nil
}

// PinMessage 置顶；超过上限返回校验错误
func (e *Engine) PinMessage(roomID string, actorID, messageID int64) error {
	room, err := e.requireAdmin(roomID, actorID)
	if err != nil {
		return err
	}
	if _, ok := room.Message(messageID); !ok {
		return service.ErrNotFound
	}
	if !room.Pin(messageID, actorID) {
		return &service.ValidationError{Field: "pinned", Reason: "pin limit reached"}
	}
	return nil
}

func (e *Engine) UnpinMessage(roomID string, actorID, messageID int64) error {
	room, err := e.requireAdmin(roomID, actorID)
	if err != nil {
		return err
	}
	if !room.Unpin(messageID, actorID) {
		return service.ErrNotFound
	}
	return nil
}

func (e *Engine) PinnedMessages(roomID string, viewerID int64) ([]service.Message, error) {
	room, err := e.requireMember(roomID, viewerID)
	if err != nil {
		return nil, err
	}
	return room.Pinned(), nil
}

// -------------------- 自动回复 / 模板 --------------------

func (e *Engine) AddAutoReply(roomID string, actorID int64, keyword, reply string) error {
	room, err := e.requireAdmin(roomID, actorID)
	if err != nil {
		return err
	}
	if !room.AddAutoReply(keyword, reply, actorID, e.Service.Clock.Now()) {
		return &service.ValidationError{Field: "keyword", Reason: "keyword and reply are required"}
	}
	return nil
}

func (e *Engine) RemoveAutoReply(roomID string, actorID int64, keyword string) error {
	room, err := e.requireAdmin(roomID, actorID)
	if err != nil {
		return err
	}
	if !room.RemoveAutoReply(keyword, actorID) {
		return service.ErrNotFound
	}
	return nil
}

func (e *Engine) AutoReplies(roomID string, viewerID int64) ([]service.AutoReply, error) {
	room, err := e.requireMember(roomID, viewerID)
	if err != nil {
		return nil, err
	}
	return room.AutoReplies(), nil
}

func (e *Engine) AddTemplate(roomID string, actorID int64, name, content string) error {
	room, err := e.requireAdmin(roomID, actorID)
	if err != nil {
		return err
	}
	if !room.AddTemplate(name, content, actorID, e.Service.Clock.Now()) {
		return &service.ValidationError{Field: "name", Reason: "name and content are required"}
	}
	return nil
}

func (e *Engine) RemoveTemplate(roomID string, actorID int64, name string) error {
	room, err := e.requireAdmin(roomID, actorID)
	if err != nil {
		return err
	}
	if !room.RemoveTemplate(name, actorID) {
		return service.ErrNotFound
	}
	return nil
}

func (e *Engine) Templates(roomID string, viewerID int64) ([]service.Template, error) {
	room, err := e.requireMember(roomID, viewerID)
	if err != nil {
		return nil, err
	}
	return room.Templates(), nil
}

// SendTemplate 以模板内容发送一条文本消息
func (e *Engine) SendTemplate(roomID string, senderID int64, senderName, name string) (*service.RouteResult, error) {
	room, err := e.requireMember(roomID, senderID)
	if err != nil {
		return nil, err
	}
	content, ok := room.Template(name)
	if !ok {
		return nil, service.ErrNotFound
	}
	return e.HandleEvent(message.Event{
		SenderID:   senderID,
		SenderName: senderName,
		RoomID:     roomID,
		Kind:       message.KindText,
		Text:       content,
	})
}

// -------------------- 投票 / 定时 / 转发 --------------------

// CreatePoll 以文本消息发出投票并记录，不统计投票结果
func (e *Engine) CreatePoll(roomID string, creatorID int64, creatorName, question string, options []string) (*service.Poll, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, &service.ValidationError{Field: "question", Reason: "required"}
	}
	if len(options) < minPollOptions || len(options) > maxPollOptions {
		return nil, &service.ValidationError{Field: "options", Reason: fmt.Sprintf("need %d to %d options", minPollOptions, maxPollOptions)}
	}
	room, err := e.requireMember(roomID, creatorID)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString(question)
	for i, opt := range options {
		fmt.Fprintf(&b, "\n%d. %s", i+1, opt)
	}
	res, err := e.route(message.Event{
		SenderID:   creatorID,
		SenderName: creatorName,
		RoomID:     roomID,
		Kind:       message.KindText,
		Text:       b.String(),
	})
	if err != nil {
		return nil, err
	}
	for i := range res.Plan {
		if res.Plan[i].Event == "" {
			res.Plan[i].Event = cons.EventPoll
		}
	}

	pollID := uuid.New().String()[:8]
	poll := service.Poll{
		MessageID: res.MessageID,
		Question:  question,
		Options:   options,
		CreatorID: creatorID,
		CreatedAt: e.Service.Clock.Now(),
	}
	if !room.AddPoll(pollID, poll) {
		return nil, service.ErrRoomInactive
	}
	e.dispatch(res.Plan)
	p, _ := room.Poll(pollID)
	return &p, nil
}

func (e *Engine) Poll(roomID string, viewerID int64, pollID string) (*service.Poll, error) {
	room, err := e.requireMember(roomID, viewerID)
	if err != nil {
		return nil, err
	}
	p, ok := room.Poll(pollID)
	if !ok {
		return nil, service.ErrNotFound
	}
	return &p, nil
}

// ScheduleSend 定时消息，delay 为 1 到 1440 分钟
func (e *Engine) ScheduleSend(roomID string, senderID int64, senderName, text string, delay time.Duration) (*service.ScheduledSend, error) {
	if _, err := e.requireMember(roomID, senderID); err != nil {
		return nil, err
	}
	s, err := e.Scheduler.ScheduleSend(roomID, senderID, senderName, text, delay)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Forward 转发到另一个房间，转发者必须同时是两个房间的成员
func (e *Engine) Forward(srcRoomID string, messageID int64, dstRoomID string, actorID int64, actorName string) (*service.RouteResult, error) {
	src, err := e.requireMember(srcRoomID, actorID)
	if err != nil {
		return nil, err
	}
	dst, err := e.requireMember(dstRoomID, actorID)
	if err != nil {
		return nil, err
	}
	res, err := e.Router.Forward(src, messageID, dst, actorID, actorName)
	if err != nil {
		return nil, err
	}
	e.dispatch(res.Plan)
	return res, nil
}

// -------------------- 查询 --------------------

func (e *Engine) History(roomID string, viewerID int64, limit int) ([]service.Message, error) {
	room, err := e.requireMember(roomID, viewerID)
	if err != nil {
		return nil, err
	}
	return room.History(limit), nil
}

func (e *Engine) Search(roomID string, viewerID int64, keyword string, limit int) ([]service.Message, error) {
	room, err := e.requireMember(roomID, viewerID)
	if err != nil {
		return nil, err
	}
	return room.Search(keyword, limit), nil
}

func (e *Engine) Stats(roomID string, viewerID int64) (*service.RoomStats, error) {
	room, err := e.requireMember(roomID, viewerID)
	if err != nil {
		return nil, err
	}
	s := room.Stats(e.Service.Clock.Now())
	return &s, nil
}

func (e *Engine) OnlineUsers(roomID string, viewerID int64) ([]int64, error) {
	room, err := e.requireMember(roomID, viewerID)
	if err != nil {
		return nil, err
	}
	return room.OnlineUsers(e.Service.Clock.Now()), nil
}

// ExportRoom 管理员导出聊天记录
func (e *Engine) ExportRoom(roomID string, actorID int64) (*service.ExportDocument, error) {
	room, err := e.requireAdmin(roomID, actorID)
	if err != nil {
		return nil, err
	}
	doc := e.Exports.Build(room)
	return &doc, nil
}

// ArchiveRoom 导出并保存到数据库
func (e *Engine) ArchiveRoom(roomID string, actorID int64) (*models.RoomExport, error) {
	room, err := e.requireAdmin(roomID, actorID)
	if err != nil {
		return nil, err
	}
	return e.Exports.Archive(room, actorID)
}
