package service

import (
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Service 基础服务，包含可选的存储依赖和共享配置。
// 房间状态只存在内存里，DB/RDB 只服务于周边能力（导出归档、邀请 token）。
type Service struct {
	DB  *gorm.DB
	RDB *redis.Client

	Limits Limits
	Clock  Clock
	Log    zerolog.Logger

	// PasswordCost bcrypt cost，0 表示 bcrypt.DefaultCost
	PasswordCost int
}

// NewBase 补齐默认值后返回基础服务
func NewBase(s *Service) *Service {
	if s == nil {
		s = &Service{Log: zerolog.Nop()}
	}
	if s.Clock == nil {
		s.Clock = SystemClock{}
	}
	s.Limits = s.Limits.withDefaults()
	return s
}
