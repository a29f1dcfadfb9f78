package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// InviteService 邀请 token 的生成、解析与注销。
// Redis Key 设计：
// - br:invite:{token} -> roomID (String, TTL = 房间剩余有效期)
// - br:room_invites:{roomID} -> Set(token1, token2, ...)
//
// 房间关闭时 SMEMBERS 再批量 DEL，旧链接立即失效。
type InviteService struct {
	rdb *redis.Client
}

func NewInviteService(rdb *redis.Client) *InviteService {
	return &InviteService{rdb: rdb}
}

func (s *InviteService) ensure() error {
	if s == nil || s.rdb == nil {
		return fmt.Errorf("redis client is nil")
	}
	return nil
}

func (s *InviteService) inviteKey(token string) string {
	return "br:invite:" + token
}

func (s *InviteService) roomInvitesKey(roomID string) string {
	return "br:room_invites:" + roomID
}

// GenerateToken 生成随机 token，不包含房间信息
func (s *InviteService) GenerateToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Issue 为房间生成一个邀请 token，ttl 一般取房间剩余时间
func (s *InviteService) Issue(ctx context.Context, roomID string, ttl time.Duration) (string, error) {
	if err := s.ensure(); err != nil {
		return "", err
	}
	if ttl <= 0 {
		return "", ErrExpired
	}
	token, err := s.GenerateToken()
	if err != nil {
		return "", err
	}

	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, s.inviteKey(token), roomID, ttl)
	pipe.SAdd(ctx, s.roomInvitesKey(roomID), token)
	pipe.Expire(ctx, s.roomInvitesKey(roomID), ttl+time.Hour)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve token -> roomID；不存在或已过期返回 ErrNotFound
func (s *InviteService) Resolve(ctx context.Context, token string) (string, error) {
	if err := s.ensure(); err != nil {
		return "", err
	}
	roomID, err := s.rdb.Get(ctx, s.inviteKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return roomID, nil
}

// Extend 房间延期后同步延长该房间全部 token
func (s *InviteService) Extend(ctx context.Context, roomID string, ttl time.Duration) error {
	if err := s.ensure(); err != nil {
		return err
	}
	tokens, err := s.rdb.SMembers(ctx, s.roomInvitesKey(roomID)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	if len(tokens) == 0 {
		return nil
	}
	pipe := s.rdb.TxPipeline()
	for _, t := range tokens {
		pipe.Expire(ctx, s.inviteKey(t), ttl)
	}
	pipe.Expire(ctx, s.roomInvitesKey(roomID), ttl+time.Hour)
	_, err = pipe.Exec(ctx)
	return err
}

// RevokeRoom 注销房间的全部 token
func (s *InviteService) RevokeRoom(ctx context.Context, roomID string) error {
	if err := s.ensure(); err != nil {
		return err
	}
	tokens, err := s.rdb.SMembers(ctx, s.roomInvitesKey(roomID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return err
	}

	pipe := s.rdb.TxPipeline()
	for _, t := range tokens {
		pipe.Del(ctx, s.inviteKey(t))
	}
	pipe.Del(ctx, s.roomInvitesKey(roomID))
	_, err = pipe.Exec(ctx)
	return err
}

// Link 拼接邀请链接，baseURL 为空时只返回 token
func Link(baseURL, token string) string {
	if baseURL == "" {
		return token
	}
	return baseURL + token
}
