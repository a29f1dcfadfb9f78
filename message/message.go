package message

// Kind 消息类型
type Kind string

const (
	KindText      Kind = "text"
	KindPhoto     Kind = "photo"
	KindVideo     Kind = "video"
	KindDocument  Kind = "document"
	KindVoice     Kind = "voice"
	KindSticker   Kind = "sticker"
	KindAnimation Kind = "animation"
)

// Kinds 全部消息类型（统计时按此顺序输出）
var Kinds = []Kind{KindText, KindPhoto, KindVideo, KindDocument, KindVoice, KindSticker, KindAnimation}

// Valid 是否为已知类型
func (k Kind) Valid() bool {
	for _, v := range Kinds {
		if v == k {
			return true
		}
	}
	return false
}

// IsMedia 除文本外都视为媒体
func (k Kind) IsMedia() bool {
	return k.Valid() && k != KindText
}

// Event 入站事件：由外部传输层解析好后交给核心。
// RoomID 由调用方根据会话状态解析（核心不保存“当前房间”）。
type Event struct {
	SenderID   int64  `json:"sender_id"`
	SenderName string `json:"sender_name"`
	RoomID     string `json:"room_id"`
	Kind       Kind   `json:"kind"`
	Text       string `json:"text,omitempty"`      // 文本消息内容
	Caption    string `json:"caption,omitempty"`   // 媒体说明文字
	FileName   string `json:"file_name,omitempty"` // 文件名（document）
	FilePath   string `json:"file_path,omitempty"` // 传输层下载后的本地路径
	FileSize   int64  `json:"file_size,omitempty"`
	MimeType   string `json:"mime_type,omitempty"`
	ReplyTo    int64  `json:"reply_to,omitempty"` // 回复的消息 ID
}

// Req WS 上行消息
type Req struct {
	Type     string `json:"type"` // WS 消息类型：message/touch
	RoomID   string `json:"room_id"`
	Kind     Kind   `json:"kind"`
	Text     string `json:"text"`
	Caption  string `json:"caption"`
	FileName string `json:"file_name"`
	FilePath string `json:"file_path"`
	FileSize int64  `json:"file_size"`
	MimeType string `json:"mime_type"`
	ReplyTo  int64  `json:"reply_to"`
	PacketID string `json:"packet_id"` // 包ID
}

// ToEvent 把 WS 上行包转换成核心事件
func (r Req) ToEvent(senderID int64, senderName string) Event {
	kind := r.Kind
	if kind == "" {
		kind = KindText
	}
	return Event{
		SenderID:   senderID,
		SenderName: senderName,
		RoomID:     r.RoomID,
		Kind:       kind,
		Text:       r.Text,
		Caption:    r.Caption,
		FileName:   r.FileName,
		FilePath:   r.FilePath,
		FileSize:   r.FileSize,
		MimeType:   r.MimeType,
		ReplyTo:    r.ReplyTo,
	}
}
