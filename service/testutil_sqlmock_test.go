package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// newArchiveService 导出服务 + sqlmock 数据库。
// mysql dialector 只用于生成 `?` 占位符的 SQL，不连真实 MySQL；
// 测试结束时检查全部 SQL 期望都已命中。
func newArchiveService(t *testing.T, clock *fakeClock) (*ExportService, *Service, sqlmock.Sqlmock) {
	t.Helper()

	sqldb, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqldb, SkipInitializeWithVersion: true}), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		_ = sqldb.Close()
		t.Fatalf("gorm.Open: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("sql expectations: %v", err)
		}
		_ = sqldb.Close()
	})

	s := newTestService(t, clock, Limits{})
	s.DB = db
	return NewExportService(s), s, mock
}
