package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/cydxin/burnroom"
	"github.com/cydxin/burnroom/message"
	"github.com/cydxin/burnroom/service"
	"github.com/rs/zerolog"
)

// logDispatcher 示例：把出站指令交给自己的传输层（这里只打印，再转给内置 WS）
type logDispatcher struct {
	ws *burnroom.WsServer
}

func (d *logDispatcher) Dispatch(plan []message.Instruction) {
	for _, in := range plan {
		log.Printf("-> %d %s %s %q", in.RecipientID, in.Action, in.Event, in.Payload.Text)
	}
	if d.ws != nil {
		d.ws.Dispatch(plan)
	}
}

func main() {
	// 不依赖 gin，只用 net/http；不配置 DB/Redis 时邀请 token 退化为房间号，导出不能归档
	d := &logDispatcher{}
	engine := burnroom.NewEngine(
		burnroom.WithLogger(zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()),
		burnroom.WithLimits(service.Limits{MaxRoomsPerUser: 5, RoomTTL: 2 * time.Hour}),
		burnroom.WithDispatcher(d),
		burnroom.WithGlobalAdmins(1),
	)
	d.ws = engine.WsServer

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	engine.Start(ctx)
	defer engine.Stop()

	// 预先创建一个房间，方便直接用 ws 测试
	res, err := engine.CreateRoom(ctx, 1, burnroom.CreateRoomOptions{})
	if err != nil {
		log.Fatal("创建房间失败:", err)
	}
	log.Printf("房间 %s，加入 token：%s", res.RoomID, res.JoinToken)

	mux := http.NewServeMux()
	// 客户端连接：ws://localhost:8080/ws?user_id=1001&name=alice
	// 发送：{"type":"message","room_id":"xxx","kind":"text","text":"hi"}
	mux.Handle("/ws", engine.HandleWS())
	mux.Handle("/invite", engine.HandleResolveInvite())

	log.Println("Burn Room 示例启动在 :8080")
	if err := http.ListenAndServe(":8080", mux); err != nil {
		log.Fatal("服务器启动失败:", err)
	}
}
