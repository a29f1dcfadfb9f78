package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cydxin/burnroom/message"
	"github.com/cydxin/burnroom/service"
	"github.com/joho/godotenv"
)

// Config 进程级配置，全部来自环境变量（开发环境可用 .env）
type Config struct {
	Port          string
	Env           string
	MySQLDSN      string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	Limits                service.Limits
	SweepInterval         time.Duration
	PresenceSweepInterval time.Duration
	ArchiveRetention      time.Duration // 0 表示不清理导出归档

	MediaDir      string
	GlobalAdmins  []int64
	InviteBaseURL string
}

// Load 读取配置，未设置的项使用默认值
func Load() *Config {
	_ = godotenv.Load()

	d := service.DefaultLimits()
	cfg := &Config{
		Port:          getEnv("PORT", "6789"),
		Env:           getEnv("ENV", "development"),
		MySQLDSN:      os.Getenv("MYSQL_DSN"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		Limits: service.Limits{
			MaxMembersPerRoom:  getEnvInt("MAX_MEMBERS_PER_ROOM", d.MaxMembersPerRoom),
			MaxRoomsPerUser:    getEnvInt("MAX_ROOMS_PER_USER", d.MaxRoomsPerUser),
			RoomTTL:            time.Duration(getEnvInt("ROOM_TTL_HOURS", int(d.RoomTTL/time.Hour))) * time.Hour,
			MaxMessageLength:   getEnvInt("MAX_MESSAGE_LENGTH", d.MaxMessageLength),
			MaxFileSize:        int64(getEnvInt("MAX_FILE_SIZE_BYTES", int(d.MaxFileSize))),
			AllowedMime:        allowedMime(d.AllowedMime),
			MaxPinned:          d.MaxPinned,
			OnlineWindow:       time.Duration(getEnvInt("ONLINE_WINDOW_SECONDS", int(d.OnlineWindow/time.Second))) * time.Second,
			PresenceReapWindow: time.Duration(getEnvInt("PRESENCE_REAP_WINDOW_SECONDS", int(d.PresenceReapWindow/time.Second))) * time.Second,
			DefaultLanguage:    getEnv("DEFAULT_LANGUAGE", d.DefaultLanguage),
			SupportedLanguages: splitList(getEnv("SUPPORTED_LANGUAGES", strings.Join(d.SupportedLanguages, ","))),
			MediaDir:           os.Getenv("MEDIA_DIR"),
		},
		SweepInterval:         time.Duration(getEnvInt("CLEANUP_INTERVAL_MINUTES", 30)) * time.Minute,
		PresenceSweepInterval: time.Duration(getEnvInt("PRESENCE_SWEEP_MINUTES", 5)) * time.Minute,
		ArchiveRetention:      time.Duration(getEnvInt("ARCHIVE_RETENTION_DAYS", 0)) * 24 * time.Hour,

		MediaDir:      os.Getenv("MEDIA_DIR"),
		GlobalAdmins:  parseIDs(os.Getenv("GLOBAL_ADMIN_IDS")),
		InviteBaseURL: os.Getenv("INVITE_BASE_URL"),
	}

	if cfg.Env == "production" && cfg.RedisAddr == "" {
		panic("REDIS_ADDR is required in production")
	}
	return cfg
}

// IsDevelopment 开发环境使用彩色控制台日志
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// allowedMime 每种媒体类型可用 ALLOWED_MIME_<KIND> 覆盖，例如 ALLOWED_MIME_PHOTO=image/jpeg,image/webp
func allowedMime(def map[message.Kind][]string) map[message.Kind][]string {
	out := make(map[message.Kind][]string, len(def))
	for k, v := range def {
		out[k] = v
	}
	for _, kind := range message.Kinds {
		if !kind.IsMedia() || kind == message.KindSticker {
			continue
		}
		if raw := os.Getenv("ALLOWED_MIME_" + strings.ToUpper(string(kind))); raw != "" {
			out[kind] = splitList(raw)
		}
	}
	return out
}

func parseIDs(raw string) []int64 {
	var ids []int64
	for _, s := range splitList(raw) {
		if id, err := strconv.ParseInt(s, 10, 64); err == nil && id > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return defaultValue
	}
	return v
}
