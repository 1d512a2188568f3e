package app

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"cover-meter/internal/domain/entity"
	"cover-meter/internal/domain/port"
	"cover-meter/internal/logger"
)

// Пороги маски для снимков кроны (канал B, сырые значения).
const (
	CanopyBlueLow  uint8 = 0
	CanopyBlueHigh uint8 = 90
	CanopyMaskOn   uint8 = 255
)

const (
	channelBlue   = 2
	channelsCount = 3
)

// CoverageService открывает изображение и выбирает алгоритм по режиму съёмки.
type CoverageService struct {
	opener port.RasterOpener
	masker port.ChannelMasker
}

// NewCoverageService создаёт сервис измерения покрытия.
func NewCoverageService(opener port.RasterOpener, masker port.ChannelMasker) *CoverageService {
	return &CoverageService{opener: opener, masker: masker}
}

// Measure измеряет один файл. Ошибка открытия оборачивает entity.ErrImageDecode.
func (s *CoverageService) Measure(path string, kind entity.AcquisitionType) (entity.CoverageMeasurement, error) {
	if err := kind.Err(); err != nil {
		return entity.CoverageMeasurement{}, err
	}

	raster, err := s.opener.Open(path)
	if err != nil {
		return entity.CoverageMeasurement{}, err
	}

	switch kind.Kind {
	case entity.KindGround:
		return MeasureGround(path, raster)
	case entity.KindCanopy:
		return MeasureCanopy(path, raster, s.masker)
	default:
		closeRaster(raster, path)
		return entity.CoverageMeasurement{}, fmt.Errorf("%w %q", entity.ErrUnknownAcquisitionType, kind.Token)
	}
}

// MeasureGround считает долю пикселей растительности по всему кадру.
// Растр закрывается в любом случае.
func MeasureGround(path string, r port.Raster) (entity.CoverageMeasurement, error) {
	defer closeRaster(r, path)

	w, h := r.Width(), r.Height()
	total := w * h
	if total <= 0 {
		return entity.CoverageMeasurement{}, fmt.Errorf("%w: %s: empty raster %dx%d", entity.ErrImageDecode, path, w, h)
	}

	covered := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if entity.IsVegetation(entity.SampleFromPacked(r.PixelAt(x, y))) {
				covered++
			}
		}
	}

	return entity.NewCoverageMeasurement(path, entity.Ground(), total, float64(covered))
}

// MeasureCanopy считает площадь маски по синему каналу: порог [0, 90],
// затем повторный порог 255 по уже полученной маске.
// Растр и все промежуточные плоскости закрываются в любом случае.
func MeasureCanopy(path string, r port.Raster, masker port.ChannelMasker) (entity.CoverageMeasurement, error) {
	defer closeRaster(r, path)

	w, h := r.Width(), r.Height()
	total := w * h
	if total <= 0 {
		return entity.CoverageMeasurement{}, fmt.Errorf("%w: %s: empty raster %dx%d", entity.ErrImageDecode, path, w, h)
	}

	planes, err := masker.SplitChannels(r)
	if err != nil {
		return entity.CoverageMeasurement{}, fmt.Errorf("split channels: %w", err)
	}
	defer closePlanes(path, planes...)

	if len(planes) < channelsCount {
		return entity.CoverageMeasurement{}, fmt.Errorf("split channels: expected %d planes, got %d", channelsCount, len(planes))
	}

	mask, err := masker.ThresholdMask(planes[channelBlue], CanopyBlueLow, CanopyBlueHigh)
	if err != nil {
		return entity.CoverageMeasurement{}, fmt.Errorf("threshold blue channel: %w", err)
	}
	defer closePlanes(path, mask)

	refined, err := masker.ThresholdMask(mask, CanopyMaskOn, CanopyMaskOn)
	if err != nil {
		return entity.CoverageMeasurement{}, fmt.Errorf("threshold mask: %w", err)
	}
	defer closePlanes(path, refined)

	area, err := masker.SelectionArea(refined)
	if err != nil {
		return entity.CoverageMeasurement{}, fmt.Errorf("selection area: %w", err)
	}

	return entity.NewCoverageMeasurement(path, entity.Canopy(), total, area)
}

func closeRaster(r port.Raster, path string) {
	if err := r.Close(); err != nil {
		logger.WithError(err).WithField("file", path).Warn("Failed to release image")
	}
}

func closePlanes(path string, planes ...port.Plane) {
	for _, p := range planes {
		if p == nil {
			continue
		}
		if err := p.Close(); err != nil {
			logger.WithFields(logrus.Fields{"file": path}).WithError(err).Warn("Failed to release channel plane")
		}
	}
}
