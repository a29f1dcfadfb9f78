package service

import (
	"sort"
	"strings"
	"time"

	"github.com/cydxin/burnroom/message"
)

// Payload 消息内容：文本放 Text，媒体放 Path/Caption/FileName
type Payload struct {
	Text     string `json:"text,omitempty"`
	Path     string `json:"path,omitempty"`
	Caption  string `json:"caption,omitempty"`
	FileName string `json:"file_name,omitempty"`
	MimeType string `json:"mime_type,omitempty"`
	FileSize int64  `json:"file_size,omitempty"`
}

// Content 导出/展示用的正文：媒体取说明文字
func (p Payload) Content(kind message.Kind) string {
	if kind == message.KindText {
		return p.Text
	}
	return p.Caption
}

// Message 房间消息
type Message struct {
	ID           int64        `json:"message_id"`
	SenderID     int64        `json:"sender_id"`
	SenderName   string       `json:"sender_name"`
	Kind         message.Kind `json:"kind"`
	Payload      Payload      `json:"payload"`
	ReplyTo      int64        `json:"reply_to,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	Edited       bool         `json:"edited"`
	LastEditedAt time.Time    `json:"last_edited_at,omitempty"`
}

// EditRecord 一次编辑前的内容
type EditRecord struct {
	Previous Payload   `json:"previous"`
	EditedBy int64     `json:"edited_by"`
	EditedAt time.Time `json:"edited_at"`
}

// AutoReply 自动回复规则，Keyword 已转小写
type AutoReply struct {
	Keyword   string    `json:"keyword"`
	Response  string    `json:"response"`
	CreatorID int64     `json:"creator_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Template 消息模板
type Template struct {
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	CreatorID int64     `json:"creator_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Poll 投票记录。Votes 只做保留字段，核心不统计投票。
type Poll struct {
	ID        string        `json:"poll_id"`
	MessageID int64         `json:"message_id"`
	Question  string        `json:"question"`
	Options   []string      `json:"options"`
	CreatorID int64         `json:"creator_id"`
	CreatedAt time.Time     `json:"created_at"`
	Votes     map[int64]int `json:"votes"`
}

// ScheduledSend 定时消息（Scheduler 中 timer 的镜像）
type ScheduledSend struct {
	ID         string    `json:"id"`
	RoomID     string    `json:"room_id"`
	DeliverAt  time.Time `json:"deliver_at"`
	Text       string    `json:"text"`
	SenderID   int64     `json:"sender_id"`
	SenderName string    `json:"sender_name"`
}

// RoomStats 活动统计
type RoomStats struct {
	MessageKinds  map[message.Kind]int `json:"message_kinds"`
	TotalMessages int                  `json:"total_messages"`
	MemberCount   int                  `json:"member_count"`
	OnlineCount   int                  `json:"online_count"`
	Elapsed       time.Duration        `json:"elapsed"`
	Remaining     time.Duration        `json:"remaining"`
	ElapsedText   string               `json:"elapsed_text"`
	RemainingText string               `json:"remaining_text"`
}

// -------------------- 消息 --------------------

// PostMessage 追加消息并分配下一个 ID
func (r *Room) PostMessage(senderID int64, kind message.Kind, payload Payload, now time.Time) (int64, error) {
	id, _, err := r.record(&Message{SenderID: senderID, Kind: kind, Payload: payload, CreatedAt: now})
	return id, err
}

// record 在一个临界区内完成：状态检查、写入、取接收人快照。
// 接收人不含发送者。
func (r *Room) record(m *Message) (int64, []int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.active {
		return 0, nil, ErrRoomInactive
	}
	if _, banned := r.banned[m.SenderID]; banned {
		return 0, nil, ErrBanned
	}
	if _, muted := r.muted[m.SenderID]; muted {
		return 0, nil, ErrPermissionDenied
	}

	r.lastMessageID++
	m.ID = r.lastMessageID
	r.messages = append(r.messages, m)
	r.presence[m.SenderID] = m.CreatedAt

	recipients := make([]int64, 0, len(r.members))
	for uid := range r.members {
		if uid != m.SenderID {
			recipients = append(recipients, uid)
		}
	}
	sort.Slice(recipients, func(i, j int) bool { return recipients[i] < recipients[j] })
	return m.ID, recipients, nil
}

func (r *Room) findLocked(messageID int64) (int, *Message) {
	for i, m := range r.messages {
		if m.ID == messageID {
			return i, m
		}
	}
	return -1, nil
}

// Message 按 ID 取消息副本
func (r *Room) Message(messageID int64) (Message, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, m := r.findLocked(messageID)
	if m == nil {
		return Message{}, false
	}
	return *m, true
}

// RevokeMessage 物理删除消息，后续 ID 不重排；同时取消置顶
func (r *Room) RevokeMessage(messageID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active {
		return false
	}
	i, m := r.findLocked(messageID)
	if m == nil {
		return false
	}
	r.messages = append(r.messages[:i], r.messages[i+1:]...)
	r.unpinLocked(messageID)
	return true
}

// EditMessage 只有原发送者或管理员可以编辑；先记历史再修改。
// 文本消息替换正文，媒体消息替换说明文字。
func (r *Room) EditMessage(messageID, editorID int64, newContent string, now time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active {
		return false
	}
	_, m := r.findLocked(messageID)
	if m == nil {
		return false
	}
	if m.SenderID != editorID && !r.isAdminLocked(editorID) {
		return false
	}

	r.editHistory[messageID] = append(r.editHistory[messageID], EditRecord{
		Previous: m.Payload,
		EditedBy: editorID,
		EditedAt: now,
	})
	if m.Kind == message.KindText {
		m.Payload.Text = newContent
	} else {
		m.Payload.Caption = newContent
	}
	m.Edited = true
	m.LastEditedAt = now
	return true
}

// EditHistory 编辑历史（按时间顺序）
func (r *Room) EditHistory(messageID int64) []EditRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h := r.editHistory[messageID]
	out := make([]EditRecord, len(h))
	copy(out, h)
	return out
}

// History 最近 limit 条消息，limit<=0 返回全部
func (r *Room) History(limit int) []Message {
	r.mu.RLock()
	defer r.mu.RUnlock()
	msgs := r.messages
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	out := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, *m)
	}
	return out
}

// Search 按关键字（不区分大小写）搜索正文/说明文字/文件名，按时间倒序
func (r *Room) Search(keyword string, limit int) []Message {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Message
	for i := len(r.messages) - 1; i >= 0; i-- {
		m := r.messages[i]
		hay := strings.ToLower(m.Payload.Text + "\n" + m.Payload.Caption + "\n" + m.Payload.FileName)
		if !strings.Contains(hay, kw) {
			continue
		}
		out = append(out, *m)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// MessageCount 当前消息条数
func (r *Room) MessageCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.messages)
}

// -------------------- 置顶 --------------------

// Pin 置顶消息；已置顶时直接返回 true
func (r *Room) Pin(messageID, userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active || !r.isAdminLocked(userID) {
		return false
	}
	if _, m := r.findLocked(messageID); m == nil {
		return false
	}
	for _, id := range r.pinned {
		if id == messageID {
			return true
		}
	}
	if len(r.pinned) >= r.maxPinned {
		return false
	}
	r.pinned = append(r.pinned, messageID)
	return true
}

// Unpin 取消置顶
func (r *Room) Unpin(messageID, userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active || !r.isAdminLocked(userID) {
		return false
	}
	return r.unpinLocked(messageID)
}

func (r *Room) unpinLocked(messageID int64) bool {
	for i, id := range r.pinned {
		if id == messageID {
			r.pinned = append(r.pinned[:i], r.pinned[i+1:]...)
			return true
		}
	}
	return false
}

// Pinned 置顶消息（按置顶顺序）
func (r *Room) Pinned() []Message {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Message, 0, len(r.pinned))
	for _, id := range r.pinned {
		if _, m := r.findLocked(id); m != nil {
			out = append(out, *m)
		}
	}
	return out
}

// -------------------- 自动回复 --------------------

// AddAutoReply 添加规则；关键字已存在时原位更新回复内容
func (r *Room) AddAutoReply(keyword, response string, userID int64, now time.Time) bool {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" || response == "" {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active || !r.isAdminLocked(userID) {
		return false
	}
	rule := AutoReply{Keyword: kw, Response: response, CreatorID: userID, CreatedAt: now}
	for i := range r.autoReplies {
		if r.autoReplies[i].Keyword == kw {
			r.autoReplies[i] = rule
			return true
		}
	}
	r.autoReplies = append(r.autoReplies, rule)
	return true
}

func (r *Room) RemoveAutoReply(keyword string, userID int64) bool {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active || !r.isAdminLocked(userID) {
		return false
	}
	for i := range r.autoReplies {
		if r.autoReplies[i].Keyword == kw {
			r.autoReplies = append(r.autoReplies[:i], r.autoReplies[i+1:]...)
			return true
		}
	}
	return false
}

// CheckAutoReply 子串匹配、不区分大小写，按添加顺序第一个命中的规则生效
func (r *Room) CheckAutoReply(text string) (string, bool) {
	lower := strings.ToLower(text)
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rule := range r.autoReplies {
		if strings.Contains(lower, rule.Keyword) {
			return rule.Response, true
		}
	}
	return "", false
}

func (r *Room) AutoReplies() []AutoReply {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]AutoReply, len(r.autoReplies))
	copy(out, r.autoReplies)
	return out
}

// -------------------- 模板 --------------------

func (r *Room) AddTemplate(name, content string, userID int64, now time.Time) bool {
	name = strings.TrimSpace(name)
	if name == "" || content == "" {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active || !r.isAdminLocked(userID) {
		return false
	}
	r.templates[name] = Template{Name: name, Content: content, CreatorID: userID, CreatedAt: now}
	return true
}

func (r *Room) RemoveTemplate(name string, userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active || !r.isAdminLocked(userID) {
		return false
	}
	if _, ok := r.templates[name]; !ok {
		return false
	}
	delete(r.templates, name)
	return true
}

// Template 任何成员都可以读取模板
func (r *Room) Template(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.templates[name]
	return t.Content, ok
}

// Templates 按名称排序
func (r *Room) Templates() []Template {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Template, 0, len(r.templates))
	for _, t := range r.templates {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// -------------------- 投票 --------------------

// AddPoll 只做记录
func (r *Room) AddPoll(pollID string, p Poll) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active {
		return false
	}
	if _, exists := r.polls[pollID]; exists {
		return false
	}
	p.ID = pollID
	if p.Votes == nil {
		p.Votes = make(map[int64]int)
	}
	r.polls[pollID] = p
	return true
}

func (r *Room) Poll(pollID string) (Poll, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.polls[pollID]
	return p, ok
}

// -------------------- 定时消息 --------------------

func (r *Room) addScheduledSend(s ScheduledSend) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active {
		return ErrRoomInactive
	}
	r.scheduledSends = append(r.scheduledSends, s)
	return nil
}

// takeScheduledSend 触发时取出自己的条目；房间关闭时列表已清空，取不到即放弃发送
func (r *Room) takeScheduledSend(id string) (ScheduledSend, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active {
		return ScheduledSend{}, false
	}
	for i, s := range r.scheduledSends {
		if s.ID == id {
			r.scheduledSends = append(r.scheduledSends[:i], r.scheduledSends[i+1:]...)
			return s, true
		}
	}
	return ScheduledSend{}, false
}

// ScheduledSends 待发送的定时消息
func (r *Room) ScheduledSends() []ScheduledSend {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ScheduledSend, len(r.scheduledSends))
	copy(out, r.scheduledSends)
	return out
}

// -------------------- 统计 --------------------

// Stats 按类型统计消息、成员数、在线数、已运行/剩余时间
func (r *Room) Stats(now time.Time) RoomStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := messageKindCounts()
	for _, m := range r.messages {
		if _, ok := kinds[m.Kind]; ok {
			kinds[m.Kind]++
		}
	}
	elapsed := now.Sub(r.createdAt)
	remaining := r.expiresAt.Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	return RoomStats{
		MessageKinds:  kinds,
		TotalMessages: len(r.messages),
		MemberCount:   len(r.members),
		OnlineCount:   len(r.onlineLocked(now)),
		Elapsed:       elapsed,
		Remaining:     remaining,
		ElapsedText:   FormatDuration(elapsed),
		RemainingText: FormatDuration(remaining),
	}
}
