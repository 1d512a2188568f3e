package port

import (
	"context"

	"cover-meter/internal/domain/entity"
)

// SummaryNotifier сообщает пользователю итог прогона
type SummaryNotifier interface {
	Notify(ctx context.Context, summary *entity.BatchRunSummary) error
}
