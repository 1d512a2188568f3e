package port

import "cover-meter/internal/domain/entity"

// ReportSink построчная запись отчёта. Только добавление.
type ReportSink interface {
	Append(m entity.CoverageMeasurement) error

	// Path расположение отчёта
	Path() string

	Close() error
}

// ReportOpener открывает отчёт для каталога на время одного прогона
type ReportOpener interface {
	OpenReport(dir string) (ReportSink, error)
}
