package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cover-meter/internal/domain/entity"
	"cover-meter/internal/domain/port"
)

// ReportFileName имя отчёта в каталоге с изображениями
const ReportFileName = "Results.csv"

// CSVReportOpener открывает <dir>/Results.csv на дозапись.
type CSVReportOpener struct{}

func NewCSVReportOpener() *CSVReportOpener {
	return &CSVReportOpener{}
}

// OpenReport пишет шапку, только если файл новый или пустой.
func (o *CSVReportOpener) OpenReport(dir string) (port.ReportSink, error) {
	path := filepath.Join(dir, ReportFileName)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open report: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat report: %w", err)
	}

	// шапку пишем как есть: csv.Writer взял бы " Total Pixels" в кавычки
	if info.Size() == 0 {
		if _, err := f.WriteString(strings.Join(entity.ReportHeader, ",") + "\n"); err != nil {
			f.Close()
			return nil, fmt.Errorf("write report header: %w", err)
		}
	}

	return &CSVReport{path: path, file: f, w: csv.NewWriter(f)}, nil
}

// CSVReport отчёт в файле. Каждая строка сразу сбрасывается в файл.
type CSVReport struct {
	path   string
	file   *os.File
	w      *csv.Writer
	closed bool
}

func (r *CSVReport) Path() string {
	return r.path
}

// Append добавляет строку измерения.
func (r *CSVReport) Append(m entity.CoverageMeasurement) error {
	if r.closed {
		return errors.New("report is closed")
	}
	return r.write(entity.ReportRow(m))
}

func (r *CSVReport) write(record []string) error {
	if err := r.w.Write(record); err != nil {
		return fmt.Errorf("write report row: %w", err)
	}
	r.w.Flush()
	if err := r.w.Error(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return nil
}

// Close закрывает файл. Повторный вызов ничего не делает.
func (r *CSVReport) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	r.w.Flush()
	flushErr := r.w.Error()
	closeErr := r.file.Close()

	if flushErr != nil {
		return fmt.Errorf("flush report: %w", flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close report: %w", closeErr)
	}
	return nil
}

// Проверка реализации интерфейса
var _ port.ReportOpener = (*CSVReportOpener)(nil)
var _ port.ReportSink = (*CSVReport)(nil)
