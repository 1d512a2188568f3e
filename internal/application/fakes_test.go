package app

import (
	"errors"
	"fmt"

	"cover-meter/internal/domain/entity"
	"cover-meter/internal/domain/port"
)

type fakeRaster struct {
	w, h   int
	pixels []uint32
	closed int
}

func newFakeRaster(w, h int, fill func(x, y int) entity.ColorSample) *fakeRaster {
	r := &fakeRaster{w: w, h: h, pixels: make([]uint32, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.pixels[y*w+x] = fill(x, y).Packed()
		}
	}
	return r
}

func solid(c entity.ColorSample) func(x, y int) entity.ColorSample {
	return func(int, int) entity.ColorSample { return c }
}

func (r *fakeRaster) Width() int              { return r.w }
func (r *fakeRaster) Height() int             { return r.h }
func (r *fakeRaster) PixelAt(x, y int) uint32 { return r.pixels[y*r.w+x] }

func (r *fakeRaster) Close() error {
	r.closed++
	return nil
}

type fakeOpener struct {
	rasters map[string]*fakeRaster
	opened  []string
}

func (o *fakeOpener) Open(path string) (port.Raster, error) {
	o.opened = append(o.opened, path)
	r, ok := o.rasters[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrImageDecode, path)
	}
	return r, nil
}

type fakePlane struct {
	name   string
	closed int
}

func (p *fakePlane) Width() int  { return 1 }
func (p *fakePlane) Height() int { return 1 }

func (p *fakePlane) Close() error {
	p.closed++
	return nil
}

// recordingMasker записывает последовательность вызовов
type recordingMasker struct {
	calls    []string
	planes   []*fakePlane
	area     float64
	failStep string
}

func (m *recordingMasker) plane(name string) *fakePlane {
	p := &fakePlane{name: name}
	m.planes = append(m.planes, p)
	return p
}

func (m *recordingMasker) SplitChannels(r port.Raster) ([]port.Plane, error) {
	m.calls = append(m.calls, "split")
	if m.failStep == "split" {
		return nil, errors.New("split failed")
	}
	return []port.Plane{m.plane("R"), m.plane("G"), m.plane("B")}, nil
}

func (m *recordingMasker) ThresholdMask(p port.Plane, low, high uint8) (port.Plane, error) {
	name := p.(*fakePlane).name
	m.calls = append(m.calls, fmt.Sprintf("threshold %s [%d,%d]", name, low, high))
	if m.failStep == "threshold" {
		return nil, errors.New("threshold failed")
	}
	return m.plane(fmt.Sprintf("mask(%s)", name)), nil
}

func (m *recordingMasker) SelectionArea(mask port.Plane) (float64, error) {
	m.calls = append(m.calls, "area "+mask.(*fakePlane).name)
	return m.area, nil
}
