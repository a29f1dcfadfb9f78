package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	prefix = "eph_"
)

// RoomExport 房间聊天记录导出归档。房间本身不落库，只有管理员主动导出的 JSON 文档会保存。
type RoomExport struct {
	ID           uint64         `gorm:"primarykey"`
	ExportID     string         `gorm:"size:36;uniqueIndex;not null"` // 对外导出 ID
	RoomID       string         `gorm:"size:16;index;not null"`       // 房间号
	CreatorID    int64          `gorm:"index;not null"`               // 房间创建者
	RequestedBy  int64          `gorm:"not null"`                     // 发起导出的管理员
	MessageCount int            `gorm:"not null;default:0"`
	Document     datatypes.JSON `gorm:"type:json"` // 导出文档
	CreatedAt    time.Time
}

func (RoomExport) TableName() string {
	return prefix + "room_export"
}

// BeforeCreate 自动生成 ExportID
func (e *RoomExport) BeforeCreate(tx *gorm.DB) error {
	if e.ExportID == "" {
		e.ExportID = uuid.New().String()
	}
	return nil
}
