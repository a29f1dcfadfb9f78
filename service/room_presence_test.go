package service

import (
	"testing"
	"time"
)

func TestRoom_OnlineWindowIsReadOnly(t *testing.T) {
	clock := newFakeClock()
	g, _ := newTestRegistry(t, clock, Limits{OnlineWindow: 5 * time.Minute, PresenceReapWindow: 30 * time.Minute})
	room := mustCreate(t, g, 1)
	mustJoin(t, g, room.ID(), 2)

	clock.Advance(4 * time.Minute)
	room.Touch(2, clock.Now())

	clock.Advance(time.Minute)
	online := room.OnlineUsers(clock.Now())
	if len(online) != 1 || online[0] != 2 {
		t.Fatalf("expected [2] online, got %v", online)
	}
	// 查询在线不会删除任何记录
	if n := room.PresenceSize(); n != 2 {
		t.Fatalf("expected 2 presence entries, got %d", n)
	}
	if room.UserStatus(1, clock.Now()) != StatusCreator {
		t.Fatalf("creator status should win over offline")
	}
	if s := room.UserStatus(2, clock.Now()); s != StatusOnline {
		t.Fatalf("expected online, got %s", s)
	}
}

func TestRoom_CullStalePresence(t *testing.T) {
	clock := newFakeClock()
	g, _ := newTestRegistry(t, clock, Limits{OnlineWindow: 5 * time.Minute, PresenceReapWindow: 30 * time.Minute})
	room := mustCreate(t, g, 1)
	mustJoin(t, g, room.ID(), 2)

	clock.Advance(10 * time.Minute)
	room.Touch(2, clock.Now())

	clock.Advance(20 * time.Minute)
	if n := room.CullStalePresence(clock.Now()); n != 1 {
		t.Fatalf("expected 1 culled (creator at 30m), got %d", n)
	}
	if _, ok := room.LastActive(1); ok {
		t.Fatalf("creator presence should be culled")
	}
	if _, ok := room.LastActive(2); !ok {
		t.Fatalf("user 2 presence should remain")
	}
	if s := room.UserStatus(2, clock.Now()); s != StatusOffline {
		t.Fatalf("expected offline, got %s", s)
	}
	// 成员身份不受影响
	if !room.IsMember(1) {
		t.Fatalf("culling presence must not remove members")
	}
}

func TestRoom_TouchAfterCloseIgnored(t *testing.T) {
	clock := newFakeClock()
	g, _ := newTestRegistry(t, clock, Limits{})
	room := mustCreate(t, g, 1)
	if _, err := g.Close(room.ID(), 1); err != nil {
		t.Fatalf("Close: %v", err)
	}
	room.Touch(1, clock.Now())
	if n := room.PresenceSize(); n != 0 {
		t.Fatalf("expected no presence after close, got %d", n)
	}
}
