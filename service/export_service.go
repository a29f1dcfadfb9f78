package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cydxin/burnroom/message"
	"github.com/cydxin/burnroom/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ExportDocument 导出文档，字段名保持与已有导出文件一致
type ExportDocument struct {
	RoomID    string          `json:"roomId"`
	CreatedAt string          `json:"createdAt"`
	Messages  []ExportMessage `json:"messages"`
}

// ExportMessage 导出的一条消息：Type 为 text 或 media，MediaType 只在媒体消息上出现
type ExportMessage struct {
	UserID    int64  `json:"userId"`
	UserName  string `json:"userName"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Content   string `json:"content"`
	MediaType string `json:"mediaType,omitempty"`
}

// ExportService 生成导出文档，配置了 DB 时可以归档
type ExportService struct {
	*Service
	dao *models.ExportDAO
}

func NewExportService(s *Service) *ExportService {
	es := &ExportService{Service: s}
	if s.DB != nil {
		es.dao = models.NewExportDAO(s.DB)
	}
	return es
}

// Build 当前消息日志的快照
func (s *ExportService) Build(room *Room) ExportDocument {
	history := room.History(0)
	doc := ExportDocument{
		RoomID:    room.ID(),
		CreatedAt: room.CreatedAt().UTC().Format(time.RFC3339),
		Messages:  make([]ExportMessage, 0, len(history)),
	}
	for _, m := range history {
		em := ExportMessage{
			UserID:    m.SenderID,
			UserName:  m.SenderName,
			Type:      "text",
			Timestamp: m.CreatedAt.UTC().Format(time.RFC3339),
			Content:   m.Payload.Content(m.Kind),
		}
		if m.Kind != message.KindText {
			em.Type = "media"
			em.MediaType = string(m.Kind)
		}
		doc.Messages = append(doc.Messages, em)
	}
	return doc
}

// Marshal 输出带缩进的 JSON
func (s *ExportService) Marshal(doc ExportDocument) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// Archive 导出并落库
func (s *ExportService) Archive(room *Room, requestedBy int64) (*models.RoomExport, error) {
	if s.dao == nil {
		return nil, fmt.Errorf("export archive: database not configured")
	}
	doc := s.Build(room)
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	rec := &models.RoomExport{
		RoomID:       room.ID(),
		CreatorID:    room.CreatorID(),
		RequestedBy:  requestedBy,
		MessageCount: len(doc.Messages),
		Document:     datatypes.JSON(raw),
		CreatedAt:    s.Clock.Now(),
	}
	if err := s.dao.Create(rec); err != nil {
		s.Log.Error().Err(err).Str("room_id", room.ID()).Msg("archive export failed")
		return nil, err
	}
	s.Log.Info().Str("room_id", room.ID()).Str("export_id", rec.ExportID).Int("messages", rec.MessageCount).Msg("room exported")
	return rec, nil
}

// FindArchive 按导出 ID 读取归档
func (s *ExportService) FindArchive(exportID string) (*models.RoomExport, error) {
	if s.dao == nil {
		return nil, ErrNotFound
	}
	rec, err := s.dao.FindByExportID(exportID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return rec, err
}

// ListArchives 房间的归档列表
func (s *ExportService) ListArchives(roomID string, limit int) ([]models.RoomExport, error) {
	if s.dao == nil {
		return []models.RoomExport{}, nil
	}
	if limit <= 0 {
		limit = 20
	}
	return s.dao.FindByRoomID(roomID, limit)
}

// PruneArchives 删除早于 before 的归档
func (s *ExportService) PruneArchives(before time.Time) (int64, error) {
	if s.dao == nil {
		return 0, nil
	}
	return s.dao.DeleteOlderThan(before)
}
