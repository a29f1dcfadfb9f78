package service

import (
	"testing"
	"time"

	"github.com/cydxin/burnroom/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContentRoom(t *testing.T) (*Room, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	g, _ := newTestRegistry(t, clock, Limits{})
	room := mustCreate(t, g, 1)
	mustJoin(t, g, room.ID(), 2)
	mustJoin(t, g, room.ID(), 3)
	return room, clock
}

func post(t *testing.T, room *Room, clock *fakeClock, sender int64, text string) int64 {
	t.Helper()
	id, err := room.PostMessage(sender, message.KindText, Payload{Text: text}, clock.Now())
	require.NoError(t, err)
	return id
}

func TestRoom_MessageIDsAreMonotonic(t *testing.T) {
	room, clock := newContentRoom(t)

	a := post(t, room, clock, 1, "a")
	b := post(t, room, clock, 2, "b")
	require.True(t, room.RevokeMessage(b))
	c := post(t, room, clock, 3, "c")

	assert.Equal(t, int64(1), a)
	assert.Equal(t, int64(2), b)
	assert.Equal(t, int64(3), c, "ids are never reused after revoke")
	assert.Equal(t, 2, room.MessageCount())
	assert.False(t, room.RevokeMessage(b))
}

func TestRoom_RecordRejects(t *testing.T) {
	room, clock := newContentRoom(t)

	require.True(t, room.Mute(2))
	_, err := room.PostMessage(2, message.KindText, Payload{Text: "x"}, clock.Now())
	assert.ErrorIs(t, err, ErrPermissionDenied)

	require.True(t, room.BanUser(3))
	_, err = room.PostMessage(3, message.KindText, Payload{Text: "x"}, clock.Now())
	assert.ErrorIs(t, err, ErrBanned)

	assert.Equal(t, 0, room.MessageCount())
}

func TestRoom_EditHistory(t *testing.T) {
	room, clock := newContentRoom(t)
	id := post(t, room, clock, 2, "v1")

	assert.False(t, room.EditMessage(id, 3, "nope", clock.Now()), "other member")

	clock.Advance(time.Minute)
	require.True(t, room.EditMessage(id, 2, "v2", clock.Now()))
	clock.Advance(time.Minute)
	require.True(t, room.EditMessage(id, 1, "v3", clock.Now()), "admin may edit")

	msg, ok := room.Message(id)
	require.True(t, ok)
	assert.Equal(t, "v3", msg.Payload.Text)
	assert.True(t, msg.Edited)
	assert.Equal(t, clock.Now(), msg.LastEditedAt)

	h := room.EditHistory(id)
	require.Len(t, h, 2)
	assert.Equal(t, "v1", h[0].Previous.Text)
	assert.Equal(t, int64(2), h[0].EditedBy)
	assert.Equal(t, "v2", h[1].Previous.Text)
	assert.Equal(t, int64(1), h[1].EditedBy)
}

func TestRoom_EditMediaReplacesCaption(t *testing.T) {
	room, clock := newContentRoom(t)
	id, err := room.PostMessage(2, message.KindPhoto, Payload{Path: "/m/p.jpg", Caption: "old"}, clock.Now())
	require.NoError(t, err)

	require.True(t, room.EditMessage(id, 2, "new", clock.Now()))
	msg, _ := room.Message(id)
	assert.Equal(t, "new", msg.Payload.Caption)
	assert.Equal(t, "/m/p.jpg", msg.Payload.Path)
	assert.Empty(t, msg.Payload.Text)
}

func TestRoom_HistoryAndSearch(t *testing.T) {
	room, clock := newContentRoom(t)
	post(t, room, clock, 1, "Hello world")
	post(t, room, clock, 2, "nothing here")
	_, err := room.PostMessage(3, message.KindDocument, Payload{Path: "/m/r.pdf", FileName: "HELLO.pdf"}, clock.Now())
	require.NoError(t, err)
	post(t, room, clock, 2, "hello again")

	h := room.History(2)
	require.Len(t, h, 2)
	assert.Equal(t, int64(3), h[0].ID)
	assert.Equal(t, int64(4), h[1].ID)
	assert.Len(t, room.History(0), 4)

	found := room.Search("hello", 0)
	require.Len(t, found, 3)
	assert.Equal(t, []int64{4, 3, 1}, []int64{found[0].ID, found[1].ID, found[2].ID})

	assert.Len(t, room.Search("HELLO", 1), 1)
	assert.Empty(t, room.Search("  ", 0))
}

func TestRoom_PinLimitAndRevokeUnpins(t *testing.T) {
	room, clock := newContentRoom(t)
	ids := []int64{
		post(t, room, clock, 1, "a"),
		post(t, room, clock, 1, "b"),
		post(t, room, clock, 1, "c"),
		post(t, room, clock, 1, "d"),
	}

	assert.False(t, room.Pin(ids[0], 2), "non admin")
	for _, id := range ids[:3] {
		require.True(t, room.Pin(id, 1))
	}
	assert.True(t, room.Pin(ids[0], 1), "already pinned")
	assert.False(t, room.Pin(ids[3], 1), "limit reached")
	assert.False(t, room.Pin(99, 1), "unknown message")

	require.True(t, room.RevokeMessage(ids[1]))
	pinned := room.Pinned()
	require.Len(t, pinned, 2)
	assert.Equal(t, ids[0], pinned[0].ID)
	assert.Equal(t, ids[2], pinned[1].ID)

	assert.True(t, room.Pin(ids[3], 1))
	assert.True(t, room.Unpin(ids[3], 1))
	assert.False(t, room.Unpin(ids[3], 1))
}

func TestRoom_AutoReplyFirstMatchWins(t *testing.T) {
	room, clock := newContentRoom(t)

	assert.False(t, room.AddAutoReply("hi", "x", 2, clock.Now()), "non admin")
	assert.False(t, room.AddAutoReply(" ", "x", 1, clock.Now()))
	require.True(t, room.AddAutoReply("Price", "see pinned", 1, clock.Now()))
	require.True(t, room.AddAutoReply("price list", "never", 1, clock.Now()))

	reply, ok := room.CheckAutoReply("what is the PRICE list?")
	require.True(t, ok)
	assert.Equal(t, "see pinned", reply)

	// 同名关键字原位更新，顺序不变
	require.True(t, room.AddAutoReply("price", "updated", 1, clock.Now()))
	rules := room.AutoReplies()
	require.Len(t, rules, 2)
	assert.Equal(t, "price", rules[0].Keyword)
	assert.Equal(t, "updated", rules[0].Response)

	_, ok = room.CheckAutoReply("hello")
	assert.False(t, ok)

	// 普通成员删不掉，规则继续生效
	assert.False(t, room.RemoveAutoReply("price", 2))
	reply, ok = room.CheckAutoReply("well, the price?")
	require.True(t, ok)
	assert.Equal(t, "updated", reply)

	assert.True(t, room.RemoveAutoReply("PRICE", 1))
	assert.False(t, room.RemoveAutoReply("price", 1))
	reply, _ = room.CheckAutoReply("price list")
	assert.Equal(t, "never", reply)
}

func TestRoom_Templates(t *testing.T) {
	room, clock := newContentRoom(t)

	assert.False(t, room.AddTemplate("rules", "be nice", 3, clock.Now()))
	require.True(t, room.AddTemplate("rules", "be nice", 1, clock.Now()))
	require.True(t, room.AddTemplate("faq", "read pinned", 1, clock.Now()))

	content, ok := room.Template("rules")
	require.True(t, ok)
	assert.Equal(t, "be nice", content)

	list := room.Templates()
	require.Len(t, list, 2)
	assert.Equal(t, "faq", list[0].Name)

	assert.True(t, room.RemoveTemplate("faq", 1))
	assert.False(t, room.RemoveTemplate("faq", 1))
	_, ok = room.Template("faq")
	assert.False(t, ok)
}

func TestRoom_Polls(t *testing.T) {
	room, clock := newContentRoom(t)

	require.True(t, room.AddPoll("p1", Poll{Question: "lunch?", Options: []string{"a", "b"}, CreatorID: 2, CreatedAt: clock.Now()}))
	assert.False(t, room.AddPoll("p1", Poll{}), "duplicate id")

	p, ok := room.Poll("p1")
	require.True(t, ok)
	assert.Equal(t, "p1", p.ID)
	assert.NotNil(t, p.Votes)
	_, ok = room.Poll("p2")
	assert.False(t, ok)
}

func TestRoom_Stats(t *testing.T) {
	room, clock := newContentRoom(t)
	post(t, room, clock, 1, "a")
	post(t, room, clock, 2, "b")
	_, err := room.PostMessage(3, message.KindSticker, Payload{Path: "/m/s.webp"}, clock.Now())
	require.NoError(t, err)

	clock.Advance(2 * time.Hour)
	s := room.Stats(clock.Now())
	assert.Equal(t, 3, s.TotalMessages)
	assert.Equal(t, 2, s.MessageKinds[message.KindText])
	assert.Equal(t, 1, s.MessageKinds[message.KindSticker])
	assert.Equal(t, 0, s.MessageKinds[message.KindVideo])
	assert.Equal(t, 3, s.MemberCount)
	assert.Equal(t, 0, s.OnlineCount)
	assert.Equal(t, 2*time.Hour, s.Elapsed)
	assert.Equal(t, 22*time.Hour, s.Remaining)
	assert.Equal(t, "22:00:00", s.RemainingText)
}
