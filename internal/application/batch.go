package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"cover-meter/internal/domain/entity"
	"cover-meter/internal/domain/port"
	"cover-meter/internal/logger"
)

// ImageExtensions расширения, которые берутся в обработку (без учёта регистра)
var ImageExtensions = []string{".jpg", ".jpeg"}

// BatchService обрабатывает каталог: по одному файлу, строго последовательно.
type BatchService struct {
	coverage *CoverageService
	reports  port.ReportOpener

	now   func() time.Time
	newID func() string
}

// NewBatchService создаёт обработчик каталога.
func NewBatchService(coverage *CoverageService, reports port.ReportOpener) *BatchService {
	return &BatchService{
		coverage: coverage,
		reports:  reports,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// ListImages возвращает JPEG-файлы каталога без обхода подкаталогов.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list directory: %w", err)
	}

	images := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !hasImageExtension(e.Name()) {
			continue
		}
		images = append(images, filepath.Join(dir, e.Name()))
	}

	return images, nil
}

func hasImageExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range ImageExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// Run измеряет все подходящие файлы каталога и дописывает результаты в отчёт.
// Ошибки отдельных файлов только логируются. Прогон прерывают пустой путь,
// ошибка чтения каталога и ошибки записи отчёта.
func (s *BatchService) Run(dir string) (summary *entity.BatchRunSummary, err error) {
	if strings.TrimSpace(dir) == "" {
		return nil, entity.ErrMissingDirectory
	}

	images, err := ListImages(dir)
	if err != nil {
		return nil, err
	}

	sink, err := s.reports.OpenReport(dir)
	if err != nil {
		return nil, err
	}

	summary = &entity.BatchRunSummary{
		RunID:      s.newID(),
		Directory:  dir,
		ReportPath: sink.Path(),
		StartedAt:  s.now(),
	}
	log := logger.WithFields(logrus.Fields{"run_id": summary.RunID, "dir": dir})
	log.WithField("images", len(images)).Info("Batch started")

	ratios := make([]float64, 0, len(images))

	defer func() {
		if cerr := sink.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close report: %w", cerr)
		}
		summary.MeanCoverage, summary.StdDevCoverage = coverageStats(ratios)
		summary.FinishedAt = s.now()
		log.WithFields(logrus.Fields{
			"attempted": summary.Attempted,
			"succeeded": summary.Succeeded,
			"skipped":   summary.Skipped,
			"failed":    summary.Failed,
		}).Info("Batch complete")
	}()

	for _, path := range images {
		kind := entity.ResolveType(path)
		fileLog := log.WithFields(logrus.Fields{"file": path, "type": kind.String()})

		if !kind.Known() {
			summary.Skipped++
			fileLog.WithError(kind.Err()).Warn("Unable to determine image type")
			continue
		}

		summary.Attempted++
		m, err := s.coverage.Measure(path, kind)
		if err != nil {
			summary.Failed++
			fileLog.WithError(err).Error("Unable to process image")
			continue
		}

		if err := sink.Append(m); err != nil {
			return summary, fmt.Errorf("append report row for %s: %w", path, err)
		}

		summary.Succeeded++
		ratios = append(ratios, m.Ratio())
		fileLog.WithFields(logrus.Fields{
			"total":   m.TotalPixels(),
			"covered": m.CoveredPixels(),
		}).Infof("Result: %.4f%%", m.Ratio()*100)
	}

	return summary, nil
}
