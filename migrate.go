package burnroom

import (
	"fmt"
	"time"

	"github.com/cydxin/burnroom/models"
)

// AutoMigrate 建表：目前只有导出归档表
func (e *Engine) AutoMigrate() error {
	if e.config.DB == nil {
		return fmt.Errorf("database not configured")
	}
	if err := e.config.DB.AutoMigrate(&models.RoomExport{}); err != nil {
		return fmt.Errorf("migrate %s: %w", models.RoomExport{}.TableName(), err)
	}
	e.log.Info().Str("table", models.RoomExport{}.TableName()).Msg("AutoMigrate done")
	return nil
}

// PruneArchives 删除早于 retention 的导出归档，retention<=0 时不做任何事
func (e *Engine) PruneArchives(retention time.Duration) (int64, error) {
	if retention <= 0 || e.config.DB == nil {
		return 0, nil
	}
	n, err := e.Exports.PruneArchives(e.Service.Clock.Now().Add(-retention))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		e.log.Info().Int64("deleted", n).Dur("retention", retention).Msg("archives pruned")
	}
	return n, nil
}
