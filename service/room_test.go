package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoom_CreatorIsMemberAndAdmin(t *testing.T) {
	clock := newFakeClock()
	g, _ := newTestRegistry(t, clock, Limits{})
	room := mustCreate(t, g, 1)

	assert.True(t, room.IsMember(1))
	assert.True(t, room.IsAdmin(1))
	assert.True(t, room.IsCreator(1))
	assert.Equal(t, 1, room.MemberCount())
	assert.Equal(t, clock.Now().Add(24*time.Hour), room.ExpiresAt())
	assert.Equal(t, StatusCreator, room.UserStatus(1, clock.Now()))
}

func TestRoom_JoinOrder(t *testing.T) {
	clock := newFakeClock()
	g, _ := newTestRegistry(t, clock, Limits{MaxMembersPerRoom: 2})
	room := mustCreate(t, g, 1)
	require.NoError(t, room.SetPassword("secret"))

	_, err := g.Join(room.ID(), 2, "wrong")
	assert.ErrorIs(t, err, ErrBadPassword)

	res, err := g.Join(room.ID(), 2, "secret")
	require.NoError(t, err)
	assert.Equal(t, 2, res.MemberCount)
	assert.Equal(t, 24*time.Hour, res.Remaining)

	// 已是成员：不再检查满员与密码
	_, err = g.Join(room.ID(), 2, "")
	assert.NoError(t, err)

	// 满员先于黑名单
	room.BanUser(3)
	_, err = g.Join(room.ID(), 3, "secret")
	assert.ErrorIs(t, err, ErrFull)

	require.True(t, room.SetMaxMembers(3))
	_, err = g.Join(room.ID(), 3, "secret")
	assert.ErrorIs(t, err, ErrBanned)
}

func TestRoom_JoinAfterExpiry(t *testing.T) {
	clock := newFakeClock()
	g, _ := newTestRegistry(t, clock, Limits{RoomTTL: time.Hour})
	room := mustCreate(t, g, 1)

	clock.Advance(time.Hour)
	mustJoin(t, g, room.ID(), 2) // 恰好到期时刻仍可加入

	clock.Advance(time.Second)
	_, err := g.Join(room.ID(), 3, "")
	assert.ErrorIs(t, err, ErrExpired)
	assert.False(t, room.IsMember(3))
}

func TestRoom_BanKicksAndCreatorImmune(t *testing.T) {
	clock := newFakeClock()
	g, _ := newTestRegistry(t, clock, Limits{})
	room := mustCreate(t, g, 1)
	mustJoin(t, g, room.ID(), 2)
	require.True(t, room.AddAdmin(2))
	require.True(t, room.Mute(2))

	assert.False(t, room.BanUser(1), "creator cannot be banned")
	assert.True(t, room.BanUser(2))
	assert.False(t, room.IsMember(2))
	assert.False(t, room.IsAdmin(2))
	assert.False(t, room.IsMuted(2))
	assert.Equal(t, StatusBanned, room.UserStatus(2, clock.Now()))

	assert.False(t, room.AddAdmin(2), "banned user cannot become admin")

	assert.True(t, room.UnbanUser(2))
	assert.False(t, room.UnbanUser(2))
	assert.False(t, room.IsMember(2), "unban does not rejoin")
	assert.Equal(t, StatusNotJoined, room.UserStatus(2, clock.Now()))
}

func TestRoom_AdminManagement(t *testing.T) {
	clock := newFakeClock()
	g, _ := newTestRegistry(t, clock, Limits{})
	room := mustCreate(t, g, 1)
	mustJoin(t, g, room.ID(), 2)

	assert.True(t, room.AddAdmin(2))
	assert.ElementsMatch(t, []int64{1, 2}, room.Admins())
	assert.Equal(t, StatusAdmin, room.UserStatus(2, clock.Now()))

	assert.False(t, room.RemoveAdmin(1), "creator stays admin")
	assert.True(t, room.RemoveAdmin(2))
	assert.False(t, room.RemoveAdmin(2))
	assert.False(t, room.IsAdmin(2))
}

func TestRoom_MuteRules(t *testing.T) {
	clock := newFakeClock()
	g, _ := newTestRegistry(t, clock, Limits{})
	room := mustCreate(t, g, 1)
	mustJoin(t, g, room.ID(), 2)

	assert.False(t, room.Mute(1))
	assert.False(t, room.Mute(9), "non member")
	assert.True(t, room.Mute(2))
	assert.Equal(t, StatusMuted, room.UserStatus(2, clock.Now()))
	assert.True(t, room.Unmute(2))
	assert.False(t, room.Unmute(2))
}

func TestRoom_PasswordClear(t *testing.T) {
	clock := newFakeClock()
	g, _ := newTestRegistry(t, clock, Limits{})
	room := mustCreate(t, g, 1)

	require.NoError(t, room.SetPassword("pw"))
	assert.True(t, room.HasPassword())
	require.NoError(t, room.SetPassword(""))
	assert.False(t, room.HasPassword())
	mustJoin(t, g, room.ID(), 2)
}

func TestRoom_Announcement(t *testing.T) {
	clock := newFakeClock()
	g, _ := newTestRegistry(t, clock, Limits{})
	room := mustCreate(t, g, 1)
	mustJoin(t, g, room.ID(), 2)

	assert.Nil(t, room.Announcement())
	assert.False(t, room.SetAnnouncement("hi", 2, clock.Now()), "only admins")
	assert.True(t, room.SetAnnouncement("hi", 1, clock.Now()))

	a := room.Announcement()
	require.NotNil(t, a)
	assert.Equal(t, "hi", a.Text)
	assert.Equal(t, int64(1), a.SetBy)

	assert.True(t, room.SetAnnouncement("", 1, clock.Now()))
	assert.Nil(t, room.Announcement())
}

func TestRoom_ExtendAndMaxMembers(t *testing.T) {
	clock := newFakeClock()
	g, _ := newTestRegistry(t, clock, Limits{RoomTTL: time.Hour})
	room := mustCreate(t, g, 1)
	mustJoin(t, g, room.ID(), 2)

	clock.Advance(30 * time.Minute)
	exp, ok := room.ExtendExpiry(clock.Now(), 2*time.Hour)
	require.True(t, ok)
	assert.Equal(t, clock.Now().Add(2*time.Hour), exp)

	_, ok = room.ExtendExpiry(clock.Now(), 0)
	assert.False(t, ok)

	assert.False(t, room.SetMaxMembers(1), "below current member count")
	assert.True(t, room.SetMaxMembers(2))
	assert.True(t, room.IsFull())
	assert.False(t, room.CanJoin(3))
}

func TestRoom_CloseOnlyOnce(t *testing.T) {
	clock := newFakeClock()
	g, _ := newTestRegistry(t, clock, Limits{})
	room := mustCreate(t, g, 1)
	mustJoin(t, g, room.ID(), 2)
	_, err := room.PostMessage(2, "photo", Payload{Path: "/tmp/a.jpg"}, clock.Now())
	require.NoError(t, err)

	_, err = room.close(2, false, CloseReasonClosed)
	assert.True(t, errors.Is(err, ErrNotCreator))
	assert.True(t, errors.Is(err, ErrPermissionDenied))

	res, err := room.close(1, false, CloseReasonClosed)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2}, res.Notify)
	assert.Equal(t, []string{"/tmp/a.jpg"}, res.MediaPaths)
	assert.False(t, room.IsActive())
	assert.Equal(t, 0, room.MessageCount())
	assert.Equal(t, 0, room.MemberCount())

	_, err = room.close(1, true, CloseReasonExpired)
	assert.ErrorIs(t, err, ErrNotFound)

	// 关闭后的修改全部被拒绝
	assert.False(t, room.AddAdmin(2))
	assert.False(t, room.BanUser(2))
	assert.False(t, room.SetMaxMembers(10))
	assert.ErrorIs(t, room.SetPassword("x"), ErrRoomInactive)
	_, err = room.PostMessage(1, "text", Payload{Text: "late"}, clock.Now())
	assert.ErrorIs(t, err, ErrRoomInactive)
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{-time.Second, "00:00:00"},
		{90 * time.Second, "00:01:30"},
		{25*time.Hour + 3*time.Minute + 4*time.Second, "1d 01:03:04"},
	}
	for _, c := range cases {
		if got := FormatDuration(c.d); got != c.want {
			t.Fatalf("FormatDuration(%v) = %q, want %q", c.d, got, c.want)
		}
	}
}
