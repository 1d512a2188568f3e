//go:build gocv
// +build gocv

package vision

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"

	"cover-meter/internal/domain/entity"
	"cover-meter/internal/domain/port"
)

// GoCVEnabled сборка с тегом gocv
const GoCVEnabled = true

// MatRaster Raster поверх gocv.Mat (BGR, 8 бит на канал).
type MatRaster struct {
	mat    gocv.Mat
	data   []uint8
	stride int
}

// NewMatRaster забирает mat во владение: Close освободит его.
func NewMatRaster(mat gocv.Mat) (*MatRaster, error) {
	if mat.Empty() {
		return nil, errors.New("empty image")
	}
	if mat.Type() != gocv.MatTypeCV8UC3 {
		return nil, fmt.Errorf("unexpected mat type %v", mat.Type())
	}

	data, err := mat.DataPtrUint8()
	if err != nil {
		return nil, err
	}

	return &MatRaster{mat: mat, data: data, stride: mat.Step()}, nil
}

func (r *MatRaster) Width() int  { return r.mat.Cols() }
func (r *MatRaster) Height() int { return r.mat.Rows() }

// PixelAt читает напрямую из буфера Mat, без вызовов cgo.
func (r *MatRaster) PixelAt(x, y int) uint32 {
	i := y*r.stride + x*3
	return pack(r.data[i+2], r.data[i+1], r.data[i])
}

func (r *MatRaster) Close() error {
	r.data = nil
	return r.mat.Close()
}

// GoCVOpener декодирует изображения через OpenCV.
type GoCVOpener struct{}

func NewGoCVOpener() *GoCVOpener {
	return &GoCVOpener{}
}

func (o *GoCVOpener) Open(path string) (port.Raster, error) {
	mat := gocv.IMRead(path, gocv.IMReadColor)
	raster, err := NewMatRaster(mat)
	if err != nil {
		mat.Close()
		return nil, fmt.Errorf("%w: %s: %v", entity.ErrImageDecode, path, err)
	}
	return raster, nil
}

// MatPlane одноканальный gocv.Mat
type MatPlane struct {
	mat gocv.Mat
}

func (p *MatPlane) Width() int   { return p.mat.Cols() }
func (p *MatPlane) Height() int  { return p.mat.Rows() }
func (p *MatPlane) Close() error { return p.mat.Close() }

// GoCVMasker операции над каналами через OpenCV. Принимает только MatRaster и MatPlane.
type GoCVMasker struct{}

func NewGoCVMasker() *GoCVMasker {
	return &GoCVMasker{}
}

// SplitChannels возвращает плоскости в порядке R, G, B (OpenCV хранит BGR).
func (m *GoCVMasker) SplitChannels(r port.Raster) ([]port.Plane, error) {
	mr, ok := r.(*MatRaster)
	if !ok {
		return nil, fmt.Errorf("gocv masker: unsupported raster %T", r)
	}

	channels := gocv.Split(mr.mat)
	if len(channels) < 3 {
		for i := range channels {
			channels[i].Close()
		}
		return nil, fmt.Errorf("gocv masker: expected 3 channels, got %d", len(channels))
	}

	return []port.Plane{
		&MatPlane{channels[2]},
		&MatPlane{channels[1]},
		&MatPlane{channels[0]},
	}, nil
}

// ThresholdMask включает обе границы, как InRange.
func (m *GoCVMasker) ThresholdMask(p port.Plane, low, high uint8) (port.Plane, error) {
	mp, ok := p.(*MatPlane)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedPlane, p)
	}

	dst := gocv.NewMat()
	gocv.InRangeWithScalar(mp.mat,
		gocv.NewScalar(float64(low), 0, 0, 0),
		gocv.NewScalar(float64(high), 0, 0, 0),
		&dst)

	return &MatPlane{dst}, nil
}

func (m *GoCVMasker) SelectionArea(mask port.Plane) (float64, error) {
	mp, ok := mask.(*MatPlane)
	if !ok {
		return 0, fmt.Errorf("%w: %T", ErrUnsupportedPlane, mask)
	}
	return float64(gocv.CountNonZero(mp.mat)), nil
}

var _ port.RasterOpener = (*GoCVOpener)(nil)
var _ port.ChannelMasker = (*GoCVMasker)(nil)
