package entity

import (
	"fmt"
	"math"
)

// CoverageMeasurement результат измерения покрытия одного изображения.
// Создаётся один раз и дальше не меняется.
type CoverageMeasurement struct {
	sourcePath string
	kind       AcquisitionType
	total      int
	covered    float64
	ratio      float64
}

// NewCoverageMeasurement проверяет входные значения и считает долю покрытия.
func NewCoverageMeasurement(path string, kind AcquisitionType, total int, covered float64) (CoverageMeasurement, error) {
	if !kind.Known() {
		return CoverageMeasurement{}, fmt.Errorf("%w: acquisition type %q has no algorithm", ErrInvalidMeasurement, kind.Token)
	}
	if total <= 0 {
		return CoverageMeasurement{}, fmt.Errorf("%w: total pixel count must be > 0 (got %d)", ErrInvalidMeasurement, total)
	}
	if covered < 0 || covered > float64(total) || math.IsNaN(covered) {
		return CoverageMeasurement{}, fmt.Errorf("%w: covered %v out of range [0, %d]", ErrInvalidMeasurement, covered, total)
	}

	return CoverageMeasurement{
		sourcePath: path,
		kind:       kind,
		total:      total,
		covered:    covered,
		ratio:      covered / float64(total),
	}, nil
}

func (m CoverageMeasurement) SourcePath() string     { return m.sourcePath }
func (m CoverageMeasurement) Type() AcquisitionType  { return m.kind }
func (m CoverageMeasurement) TotalPixels() int       { return m.total }
func (m CoverageMeasurement) CoveredPixels() float64 { return m.covered }
func (m CoverageMeasurement) Ratio() float64         { return m.ratio }
