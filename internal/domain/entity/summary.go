package entity

import (
	"fmt"
	"time"
)

// BatchRunSummary итог обработки каталога.
type BatchRunSummary struct {
	RunID      string
	Directory  string
	ReportPath string

	Attempted int // файлы, переданные в алгоритм измерения
	Succeeded int // файлы, попавшие в отчёт
	Skipped   int // файлы с неизвестным типом
	Failed    int // файлы, которые не удалось измерить

	MeanCoverage   float64
	StdDevCoverage float64

	StartedAt  time.Time
	FinishedAt time.Time
}

// Duration время выполнения прогона
func (s *BatchRunSummary) Duration() time.Duration {
	if s.FinishedAt.IsZero() {
		return 0
	}
	return s.FinishedAt.Sub(s.StartedAt)
}

// Message текст итогового уведомления для пользователя.
func (s *BatchRunSummary) Message() string {
	return fmt.Sprintf("Successfully processed %d images.\n\nReport location: %s", s.Succeeded, s.ReportPath)
}

// Details расширенная сводка: счётчики и статистика покрытия.
func (s *BatchRunSummary) Details() string {
	return fmt.Sprintf(
		"%s\n\nAttempted: %d\nSkipped: %d\nFailed: %d\nMean cover: %.2f%% (std dev %.2f%%)",
		s.Message(), s.Attempted, s.Skipped, s.Failed, s.MeanCoverage*100, s.StdDevCoverage*100,
	)
}
