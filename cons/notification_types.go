package cons

// 房间系统通知事件（Instruction.Event），文案由传输层按语言渲染
const (
	EventRoomClosed       = "room.closed"        // 创建者关闭房间
	EventRoomExpired      = "room.expired"       // 房间到期自动销毁
	EventRoomMemberJoined = "room.member.joined" // 成员加入
	EventRoomMemberLeft   = "room.member.left"   // 成员离开
	EventRoomMemberBanned = "room.member.banned" // 成员被拉黑（踢出去）
	EventRoomUserMute     = "room.user.mute"     // 成员禁言
	EventRoomUserUnmute   = "room.user.unmute"   // 解除禁言
	EventRoomAdminSet     = "room.admin.set"     // 设置管理员
	EventRoomNoticeSet    = "room.notice.set"    // 公告发布/清除
	EventRoomExtended     = "room.expire.extend" // 延长有效期
)

// 消息相关通知
const (
	EventMessageEdited = "message.edited" // 消息被编辑
	EventRecall        = "recall"         // 消息撤回
	EventForward       = "forward"        // 转发
	EventAutoReply     = "auto_reply"     // 触发自动回复
	EventScheduled     = "scheduled"      // 定时消息送达
	EventPoll          = "poll"           // 新投票
)
