package service

import (
	"sort"
	"unicode/utf8"

	"github.com/cydxin/burnroom/cons"
	"github.com/cydxin/burnroom/message"
	"github.com/cydxin/burnroom/metrics"
)

// RouteResult 消息写入成功后的广播计划
type RouteResult struct {
	MessageID int64                 `json:"message_id"`
	Plan      []message.Instruction `json:"plan"`
}

// MessageRouter 校验入站事件、写入房间并生成出站指令。
// 不直接投递，投递由调用方完成。
type MessageRouter struct {
	*Service
}

func NewMessageRouter(s *Service) *MessageRouter {
	return &MessageRouter{Service: s}
}

// Route 校验顺序：房间可用、发送者未被拉黑/禁言、媒体大小与类型、文本长度。
// 校验失败时不写入任何内容。
func (m *MessageRouter) Route(room *Room, ev message.Event) (*RouteResult, error) {
	if err := m.check(room, ev); err != nil {
		metrics.MessagesRejected.WithLabelValues(reasonOf(err)).Inc()
		m.Log.Debug().Str("room_id", room.ID()).Int64("sender_id", ev.SenderID).Err(err).Msg("event rejected")
		return nil, err
	}

	msg := &Message{
		SenderID:   ev.SenderID,
		SenderName: ev.SenderName,
		Kind:       ev.Kind,
		ReplyTo:    ev.ReplyTo,
		CreatedAt:  m.Clock.Now(),
		Payload: Payload{
			Text:     ev.Text,
			Path:     ev.FilePath,
			Caption:  ev.Caption,
			FileName: ev.FileName,
			MimeType: ev.MimeType,
			FileSize: ev.FileSize,
		},
	}
	if ev.Kind == message.KindSticker {
		msg.Payload.Caption = ""
	}

	// 房间锁内会再次检查 active / banned / muted
	id, recipients, err := room.record(msg)
	if err != nil {
		metrics.MessagesRejected.WithLabelValues(reasonOf(err)).Inc()
		return nil, err
	}

	plan := make([]message.Instruction, 0, len(recipients)+1)
	for _, uid := range recipients {
		plan = append(plan, render(uid, room.ID(), msg))
	}
	if ev.Kind == message.KindText {
		if reply, ok := room.CheckAutoReply(ev.Text); ok {
			plan = append(plan, message.Instruction{
				RecipientID: ev.SenderID,
				Action:      message.ActionSendText,
				Event:       cons.EventAutoReply,
				Payload:     message.Payload{Text: reply, RoomID: room.ID()},
			})
		}
	}

	metrics.MessagesRouted.WithLabelValues(string(ev.Kind)).Inc()
	return &RouteResult{MessageID: id, Plan: plan}, nil
}

func (m *MessageRouter) check(room *Room, ev message.Event) error {
	if !room.IsActive() {
		return ErrRoomInactive
	}
	if room.IsBanned(ev.SenderID) {
		return ErrBanned
	}
	if room.IsMuted(ev.SenderID) {
		return ErrPermissionDenied
	}
	return m.Validate(ev)
}

// Validate 只做内容校验（大小/类型/路径/长度）
func (m *MessageRouter) Validate(ev message.Event) error {
	if !ev.Kind.Valid() {
		return invalid("kind", "unknown message kind %q", ev.Kind)
	}
	if ev.Kind.IsMedia() {
		if ev.FileSize > m.Limits.MaxFileSize {
			return invalid("file_size", "%d exceeds limit %d", ev.FileSize, m.Limits.MaxFileSize)
		}
		if checked, ok := m.Limits.mimeAllowed(ev.Kind, ev.MimeType); checked && !ok {
			return invalid("mime_type", "%q not allowed for %s", ev.MimeType, ev.Kind)
		}
		if m.Limits.MediaDir != "" && ev.FilePath != "" && !InMediaDir(m.Limits.MediaDir, ev.RoomID, ev.FilePath) {
			return invalid("file_path", "not a media file of room %s", ev.RoomID)
		}
		return nil
	}
	if ev.Text == "" {
		return invalid("text", "empty message")
	}
	if n := utf8.RuneCountInString(ev.Text); n > m.Limits.MaxMessageLength {
		return invalid("text", "length %d exceeds limit %d", n, m.Limits.MaxMessageLength)
	}
	return nil
}

// render 带 "<name>: " 前缀的出站消息；贴纸不带说明文字
func render(recipientID int64, roomID string, msg *Message) message.Instruction {
	p := message.Payload{RoomID: roomID, MessageID: msg.ID}
	switch msg.Kind {
	case message.KindText:
		p.Text = msg.SenderName + ": " + msg.Payload.Text
	case message.KindSticker:
		p.Path = msg.Payload.Path
	default:
		p.Path = msg.Payload.Path
		p.FileName = msg.Payload.FileName
		if msg.Payload.Caption != "" {
			p.Caption = msg.SenderName + ": " + msg.Payload.Caption
		} else {
			p.Caption = msg.SenderName
		}
	}
	return message.Instruction{RecipientID: recipientID, Action: message.SendAction(msg.Kind), Payload: p}
}

// Forward 把 src 中的一条消息以转发者身份写入 dst，并通知 dst 的其他成员
func (m *MessageRouter) Forward(src *Room, messageID int64, dst *Room, forwarderID int64, forwarderName string) (*RouteResult, error) {
	orig, ok := src.Message(messageID)
	if !ok {
		return nil, ErrNotFound
	}
	if !dst.IsActive() {
		return nil, ErrRoomInactive
	}
	if dst.IsBanned(forwarderID) {
		return nil, ErrBanned
	}

	msg := &Message{
		SenderID:   forwarderID,
		SenderName: forwarderName,
		Kind:       orig.Kind,
		Payload:    orig.Payload,
		CreatedAt:  m.Clock.Now(),
	}
	id, recipients, err := dst.record(msg)
	if err != nil {
		return nil, err
	}

	plan := make([]message.Instruction, 0, len(recipients))
	for _, uid := range recipients {
		in := render(uid, dst.ID(), msg)
		in.Action = message.ActionForward
		in.Event = cons.EventForward
		in.Payload.Args = map[string]any{
			"kind":        string(orig.Kind),
			"from_room":   src.ID(),
			"from_sender": orig.SenderName,
		}
		plan = append(plan, in)
	}
	metrics.MessagesRouted.WithLabelValues(string(orig.Kind)).Inc()
	return &RouteResult{MessageID: id, Plan: plan}, nil
}

// RevokePlan 撤回通知：recipients 为撤回前的成员快照
func (m *MessageRouter) RevokePlan(roomID string, messageID int64, recipients []int64) []message.Instruction {
	plan := make([]message.Instruction, 0, len(recipients))
	for _, uid := range sorted(recipients) {
		plan = append(plan, message.Instruction{
			RecipientID: uid,
			Action:      message.ActionDeleteMessage,
			Event:       cons.EventRecall,
			Payload:     message.Payload{RoomID: roomID, MessageID: messageID},
		})
	}
	return plan
}

// EditPlan 编辑通知，发给除编辑者以外的成员
func (m *MessageRouter) EditPlan(room *Room, msg Message, editorID int64) []message.Instruction {
	var plan []message.Instruction
	for _, uid := range sorted(room.Members()) {
		if uid == editorID {
			continue
		}
		plan = append(plan, message.Instruction{
			RecipientID: uid,
			Action:      message.ActionSendText,
			Event:       cons.EventMessageEdited,
			Payload: message.Payload{
				RoomID:    room.ID(),
				MessageID: msg.ID,
				Text:      msg.Payload.Content(msg.Kind),
			},
		})
	}
	return plan
}

// AnnouncePlan 公告通知，发给全部成员
func (m *MessageRouter) AnnouncePlan(room *Room, a *Announcement) []message.Instruction {
	text := ""
	if a != nil {
		text = a.Text
	}
	return m.NoticePlan(room.Members(), cons.EventRoomNoticeSet, room.ID(), map[string]any{"text": text})
}

// ClosePlan 房间关闭/到期通知
func (m *MessageRouter) ClosePlan(res CloseResult) []message.Instruction {
	event := cons.EventRoomClosed
	if res.Reason == CloseReasonExpired {
		event = cons.EventRoomExpired
	}
	return m.NoticePlan(res.Notify, event, res.RoomID, nil)
}

// NoticePlan 通用系统通知，文案由传输层根据 Event 和 Args 渲染
func (m *MessageRouter) NoticePlan(recipients []int64, event, roomID string, args map[string]any) []message.Instruction {
	plan := make([]message.Instruction, 0, len(recipients))
	for _, uid := range sorted(recipients) {
		plan = append(plan, message.Instruction{
			RecipientID: uid,
			Action:      message.ActionSendText,
			Event:       event,
			Payload:     message.Payload{RoomID: roomID, Args: args},
		})
	}
	return plan
}

func sorted(ids []int64) []int64 {
	out := make([]int64, len(ids))
	copy(out, ids)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
