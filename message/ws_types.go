package message

// WS 上行消息类型
const (
	WsTypeMessage = "message" // 默认：发送消息
	WsTypeTouch   = "touch"   // 心跳：只刷新在线状态
)

// Action 出站动作
type Action string

const (
	ActionSendText      Action = "send-text"
	ActionSendPhoto     Action = "send-photo"
	ActionSendVideo     Action = "send-video"
	ActionSendDocument  Action = "send-document"
	ActionSendVoice     Action = "send-voice"
	ActionSendSticker   Action = "send-sticker"
	ActionSendAnimation Action = "send-animation"
	ActionDeleteMessage Action = "delete-message"
	ActionForward       Action = "forward-message"
)

// SendAction 返回发送某类消息对应的动作
func SendAction(k Kind) Action {
	switch k {
	case KindPhoto:
		return ActionSendPhoto
	case KindVideo:
		return ActionSendVideo
	case KindDocument:
		return ActionSendDocument
	case KindVoice:
		return ActionSendVoice
	case KindSticker:
		return ActionSendSticker
	case KindAnimation:
		return ActionSendAnimation
	default:
		return ActionSendText
	}
}

// Payload 出站内容。文本放 Text，媒体放 Path/Caption/FileName。
type Payload struct {
	Text      string `json:"text,omitempty"`
	Path      string `json:"path,omitempty"`
	Caption   string `json:"caption,omitempty"`
	FileName  string `json:"file_name,omitempty"`
	RoomID    string `json:"room_id,omitempty"`
	MessageID int64  `json:"message_id,omitempty"`
	// Args 系统通知的模板参数，由传输层按用户语言渲染
	Args map[string]any `json:"args,omitempty"`
}

// Instruction 核心返回给传输层的一条待执行动作。
// 核心从不直接调用传输层，只返回这个列表。
type Instruction struct {
	RecipientID int64   `json:"recipient_id"`
	Action      Action  `json:"action"`
	Event       string  `json:"event,omitempty"` // 系统通知事件（cons.Event*），普通消息为空
	Payload     Payload `json:"payload"`
}

// WsError 下行错误包
type WsError struct {
	Type     string `json:"type"` // error
	Code     int    `json:"code"`
	Msg      string `json:"msg"`
	PacketID string `json:"packet_id,omitempty"`
}
