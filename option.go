package burnroom

import (
	"time"

	"github.com/cydxin/burnroom/service"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type SchedulerConfig struct {
	SweepInterval         time.Duration
	PresenceSweepInterval time.Duration
}

type Config struct {
	DB     *gorm.DB
	RDB    *redis.Client
	Logger zerolog.Logger
	Limits service.Limits
	Clock  service.Clock

	Scheduler SchedulerConfig

	// MediaReleaser 房间销毁后清理媒体文件；为空时不清理
	MediaReleaser service.MediaReleaser
	// Dispatcher 出站指令的投递方；为空时使用内置 WsServer
	Dispatcher service.Dispatcher

	GlobalAdmins []int64
	PasswordCost int

	// InviteBaseURL 邀请链接前缀，例如 "https://t.me/xxx_bot?start="
	InviteBaseURL string
}

type Option func(*Config)

func WithDB(db *gorm.DB) Option {
	return func(c *Config) {
		c.DB = db
	}
}

func WithRDB(RDB *redis.Client) Option {
	return func(c *Config) {
		c.RDB = RDB
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

// WithLimits 未设置的字段取默认值
func WithLimits(l service.Limits) Option {
	return func(c *Config) {
		c.Limits = l
	}
}

func WithClock(clock service.Clock) Option {
	return func(c *Config) {
		c.Clock = clock
	}
}

func WithSchedulerIntervals(sweep, presence time.Duration) Option {
	return func(c *Config) {
		c.Scheduler.SweepInterval = sweep
		c.Scheduler.PresenceSweepInterval = presence
	}
}

func WithMediaReleaser(m service.MediaReleaser) Option {
	return func(c *Config) {
		c.MediaReleaser = m
	}
}

func WithDispatcher(d service.Dispatcher) Option {
	return func(c *Config) {
		c.Dispatcher = d
	}
}

func WithGlobalAdmins(ids ...int64) Option {
	return func(c *Config) {
		c.GlobalAdmins = append(c.GlobalAdmins, ids...)
	}
}

// WithPasswordCost 房间密码的 bcrypt cost
func WithPasswordCost(cost int) Option {
	return func(c *Config) {
		c.PasswordCost = cost
	}
}

func WithInviteBaseURL(url string) Option {
	return func(c *Config) {
		c.InviteBaseURL = url
	}
}
