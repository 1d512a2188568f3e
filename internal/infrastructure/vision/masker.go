package vision

import (
	"errors"
	"fmt"
	"image"

	"cover-meter/internal/domain/port"
)

// ErrUnsupportedPlane плоскость создана другой реализацией ChannelMasker
var ErrUnsupportedPlane = errors.New("plane is not supported by this masker")

// GrayPlane канал или маска в виде *image.Gray
type GrayPlane struct {
	*image.Gray
}

func (p *GrayPlane) Width() int  { return p.Rect.Dx() }
func (p *GrayPlane) Height() int { return p.Rect.Dy() }

func (p *GrayPlane) Close() error {
	p.Gray = nil
	return nil
}

// NativeMasker разбиение на каналы и пороговая маска на чистом Go.
type NativeMasker struct{}

func NewNativeMasker() *NativeMasker {
	return &NativeMasker{}
}

// SplitChannels работает с любым port.Raster через PixelAt.
func (m *NativeMasker) SplitChannels(r port.Raster) ([]port.Plane, error) {
	w, h := r.Width(), r.Height()
	rect := image.Rect(0, 0, w, h)
	red, green, blue := image.NewGray(rect), image.NewGray(rect), image.NewGray(rect)

	for y := 0; y < h; y++ {
		row := y * red.Stride
		for x := 0; x < w; x++ {
			p := r.PixelAt(x, y)
			red.Pix[row+x] = uint8(p >> 16)
			green.Pix[row+x] = uint8(p >> 8)
			blue.Pix[row+x] = uint8(p)
		}
	}

	return []port.Plane{&GrayPlane{red}, &GrayPlane{green}, &GrayPlane{blue}}, nil
}

// ThresholdMask значения из [low, high] становятся 255, остальные 0.
func (m *NativeMasker) ThresholdMask(p port.Plane, low, high uint8) (port.Plane, error) {
	src, err := grayOf(p)
	if err != nil {
		return nil, err
	}

	dst := image.NewGray(src.Rect)
	for i, v := range src.Pix {
		if v >= low && v <= high {
			dst.Pix[i] = 255
		}
	}

	return &GrayPlane{dst}, nil
}

// SelectionArea число ненулевых пикселей маски
func (m *NativeMasker) SelectionArea(mask port.Plane) (float64, error) {
	src, err := grayOf(mask)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, v := range src.Pix {
		if v != 0 {
			count++
		}
	}

	return float64(count), nil
}

func grayOf(p port.Plane) (*image.Gray, error) {
	gp, ok := p.(*GrayPlane)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedPlane, p)
	}
	if gp.Gray == nil {
		return nil, errors.New("plane is closed")
	}
	return gp.Gray, nil
}

var _ port.ChannelMasker = (*NativeMasker)(nil)
