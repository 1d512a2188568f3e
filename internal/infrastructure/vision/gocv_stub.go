//go:build !gocv
// +build !gocv

package vision

import (
	"errors"

	"cover-meter/internal/domain/port"
)

// GoCVEnabled сборка с тегом gocv
const GoCVEnabled = false

var errGoCVDisabled = errors.New("gocv build tag is not enabled")

// GoCVOpener заглушка (без OpenCV).
type GoCVOpener struct{}

func NewGoCVOpener() *GoCVOpener {
	return &GoCVOpener{}
}

// Open возвращает ошибку, если сборка без тега gocv.
func (o *GoCVOpener) Open(path string) (port.Raster, error) {
	_ = path
	return nil, errGoCVDisabled
}

// GoCVMasker заглушка (без OpenCV).
type GoCVMasker struct{}

func NewGoCVMasker() *GoCVMasker {
	return &GoCVMasker{}
}

// SplitChannels возвращает ошибку, если сборка без тега gocv.
func (m *GoCVMasker) SplitChannels(r port.Raster) ([]port.Plane, error) {
	_ = r
	return nil, errGoCVDisabled
}

// ThresholdMask возвращает ошибку, если сборка без тега gocv.
func (m *GoCVMasker) ThresholdMask(p port.Plane, low, high uint8) (port.Plane, error) {
	_ = p
	return nil, errGoCVDisabled
}

// SelectionArea возвращает ошибку, если сборка без тега gocv.
func (m *GoCVMasker) SelectionArea(mask port.Plane) (float64, error) {
	_ = mask
	return 0, errGoCVDisabled
}
