package storage

import (
	"errors"
	"path/filepath"
	"sync"

	"cover-meter/internal/domain/entity"
	"cover-meter/internal/domain/port"
)

// MemoryReport in-memory отчёт, для тестов и пробных прогонов
type MemoryReport struct {
	mu         sync.RWMutex
	path       string
	rows       []entity.CoverageMeasurement
	closeCalls int
}

func NewMemoryReport(path string) *MemoryReport {
	return &MemoryReport{path: path}
}

func (r *MemoryReport) Path() string {
	return r.path
}

// Append сохраняет измерение в порядке поступления
func (r *MemoryReport) Append(m entity.CoverageMeasurement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closeCalls > 0 {
		return errors.New("report is closed")
	}
	r.rows = append(r.rows, m)
	return nil
}

func (r *MemoryReport) Close() error {
	r.mu.Lock()
	r.closeCalls++
	r.mu.Unlock()
	return nil
}

// Rows копия записанных измерений
func (r *MemoryReport) Rows() []entity.CoverageMeasurement {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.CoverageMeasurement, len(r.rows))
	copy(out, r.rows)
	return out
}

// CloseCalls сколько раз вызывался Close
func (r *MemoryReport) CloseCalls() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.closeCalls
}

// MemoryReportOpener выдаёт MemoryReport для каждого каталога и запоминает их.
type MemoryReportOpener struct {
	mu      sync.Mutex
	reports map[string]*MemoryReport
	Err     error
}

func NewMemoryReportOpener() *MemoryReportOpener {
	return &MemoryReportOpener{reports: make(map[string]*MemoryReport)}
}

func (o *MemoryReportOpener) OpenReport(dir string) (port.ReportSink, error) {
	if o.Err != nil {
		return nil, o.Err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	r := NewMemoryReport(filepath.Join(dir, ReportFileName))
	o.reports[dir] = r
	return r, nil
}

// Report последний отчёт, открытый для каталога
func (o *MemoryReportOpener) Report(dir string) *MemoryReport {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.reports[dir]
}

// Проверка реализации интерфейса
var _ port.ReportOpener = (*MemoryReportOpener)(nil)
var _ port.ReportSink = (*MemoryReport)(nil)
