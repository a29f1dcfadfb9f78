package models

import (
	"time"

	"gorm.io/gorm"
)

// ExportDAO 封装 RoomExport 相关的数据库操作
type ExportDAO struct {
	db *gorm.DB
}

// NewExportDAO 创建 ExportDAO 实例
func NewExportDAO(db *gorm.DB) *ExportDAO {
	return &ExportDAO{db: db}
}

// Create 保存导出记录
func (dao *ExportDAO) Create(e *RoomExport) error {
	return dao.db.Create(e).Error
}

// FindByExportID 根据导出 ID 查找
func (dao *ExportDAO) FindByExportID(exportID string) (*RoomExport, error) {
	var e RoomExport
	err := dao.db.Where("export_id = ?", exportID).First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// FindByRoomID 某房间的导出记录，最新的在前
func (dao *ExportDAO) FindByRoomID(roomID string, limit int) ([]RoomExport, error) {
	var exports []RoomExport
	err := dao.db.Where("room_id = ?", roomID).
		Order("created_at DESC").
		Limit(limit).
		Find(&exports).Error
	return exports, err
}

// DeleteOlderThan 清理早于 t 的归档
func (dao *ExportDAO) DeleteOlderThan(t time.Time) (int64, error) {
	res := dao.db.Where("created_at < ?", t).Delete(&RoomExport{})
	return res.RowsAffected, res.Error
}
