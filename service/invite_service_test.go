package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func newTestInvites(t *testing.T) (*InviteService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewInviteService(rdb), mr
}

func TestInviteService_IssueAndResolve(t *testing.T) {
	svc, mr := newTestInvites(t)
	ctx := context.Background()

	token, err := svc.Issue(ctx, "abcd1234", time.Hour)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if len(token) != 32 {
		t.Fatalf("expected 32 hex chars, got %q", token)
	}

	roomID, err := svc.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if roomID != "abcd1234" {
		t.Fatalf("expected abcd1234, got %q", roomID)
	}

	if ttl := mr.TTL("br:invite:" + token); ttl != time.Hour {
		t.Fatalf("expected 1h ttl, got %v", ttl)
	}

	mr.FastForward(time.Hour + time.Second)
	if _, err := svc.Resolve(ctx, token); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after ttl, got %v", err)
	}
}

func TestInviteService_IssueExpiredRoom(t *testing.T) {
	svc, _ := newTestInvites(t)
	if _, err := svc.Issue(context.Background(), "r", 0); err != ErrExpired {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestInviteService_ExtendAndRevoke(t *testing.T) {
	svc, mr := newTestInvites(t)
	ctx := context.Background()

	t1, err := svc.Issue(ctx, "room1", time.Hour)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	t2, err := svc.Issue(ctx, "room1", time.Hour)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	other, err := svc.Issue(ctx, "room2", time.Hour)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if err := svc.Extend(ctx, "room1", 5*time.Hour); err != nil {
		t.Fatalf("Extend: %v", err)
	}
	if ttl := mr.TTL("br:invite:" + t2); ttl != 5*time.Hour {
		t.Fatalf("expected 5h ttl, got %v", ttl)
	}
	if err := svc.Extend(ctx, "nobody", time.Hour); err != nil {
		t.Fatalf("Extend empty: %v", err)
	}

	if err := svc.RevokeRoom(ctx, "room1"); err != nil {
		t.Fatalf("RevokeRoom: %v", err)
	}
	for _, tok := range []string{t1, t2} {
		if _, err := svc.Resolve(ctx, tok); err != ErrNotFound {
			t.Fatalf("expected revoked token, got %v", err)
		}
	}
	if mr.Exists("br:room_invites:room1") {
		t.Fatalf("room invite set should be deleted")
	}
	if _, err := svc.Resolve(ctx, other); err != nil {
		t.Fatalf("other room token should survive: %v", err)
	}
	if err := svc.RevokeRoom(ctx, "room1"); err != nil {
		t.Fatalf("RevokeRoom twice: %v", err)
	}
}

func TestInviteService_NilClient(t *testing.T) {
	var svc *InviteService
	if _, err := svc.Resolve(context.Background(), "x"); err == nil {
		t.Fatalf("expected error for nil service")
	}
}

func TestLink(t *testing.T) {
	if got := Link("", "tok"); got != "tok" {
		t.Fatalf("got %q", got)
	}
	if got := Link("https://t.me/bot?start=", "tok"); got != "https://t.me/bot?start=tok" {
		t.Fatalf("got %q", got)
	}
}
