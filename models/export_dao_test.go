package models

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// TestRoomExportBeforeCreate 测试 RoomExport.BeforeCreate 自动生成 ExportID (UUID)
func TestRoomExportBeforeCreate(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New failed: %v", err)
	}
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("gorm.Open failed: %v", err)
	}
	dao := NewExportDAO(db)

	t.Run("AutoGenerateUUID", func(t *testing.T) {
		rec := &RoomExport{RoomID: "abcd1234", CreatorID: 1, RequestedBy: 1}

		mock.ExpectExec("INSERT INTO `eph_room_export`").
			WillReturnResult(sqlmock.NewResult(1, 1))

		if err := dao.Create(rec); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if _, err := uuid.Parse(rec.ExportID); err != nil {
			t.Errorf("ExportID should be a valid UUID, got: %s, error: %v", rec.ExportID, err)
		}
		if rec.ID != 1 {
			t.Errorf("expected ID 1, got %d", rec.ID)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unfulfilled expectations: %v", err)
		}
	})

	t.Run("PreserveExistingExportID", func(t *testing.T) {
		custom := uuid.New().String()
		rec := &RoomExport{ExportID: custom, RoomID: "abcd1234", CreatorID: 1, RequestedBy: 1}

		mock.ExpectExec("INSERT INTO `eph_room_export`").
			WillReturnResult(sqlmock.NewResult(2, 1))

		if err := dao.Create(rec); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if rec.ExportID != custom {
			t.Errorf("ExportID should be preserved: expected %s, got %s", custom, rec.ExportID)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unfulfilled expectations: %v", err)
		}
	})

	t.Run("FindByExportID", func(t *testing.T) {
		now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows([]string{"id", "export_id", "room_id", "creator_id", "requested_by", "message_count", "document", "created_at"}).
			AddRow(3, "e3", "abcd1234", 1, 2, 7, []byte(`{"roomId":"abcd1234"}`), now)
		mock.ExpectQuery("SELECT \\* FROM `eph_room_export` WHERE export_id = \\?").
			WillReturnRows(rows)

		rec, err := dao.FindByExportID("e3")
		if err != nil {
			t.Fatalf("FindByExportID failed: %v", err)
		}
		if rec.RoomID != "abcd1234" || rec.MessageCount != 7 || rec.RequestedBy != 2 {
			t.Errorf("unexpected record: %#v", rec)
		}
		if string(rec.Document) != `{"roomId":"abcd1234"}` {
			t.Errorf("unexpected document: %s", rec.Document)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unfulfilled expectations: %v", err)
		}
	})
}

func TestRoomExportTableName(t *testing.T) {
	if got := (RoomExport{}).TableName(); got != "eph_room_export" {
		t.Fatalf("expected eph_room_export, got %s", got)
	}
}
