package vision

import (
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"cover-meter/internal/domain/entity"
)

func newRGBA(w, h int, fill func(x, y int) color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, fill(x, y))
		}
	}
	return img
}

func writeJPEG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, jpeg.Encode(f, img, &jpeg.Options{Quality: 100}))
}

func TestImageRaster_PixelAt(t *testing.T) {
	img := newRGBA(3, 2, func(x, y int) color.RGBA {
		return color.RGBA{R: uint8(x * 10), G: uint8(y * 20), B: 7, A: 255}
	})
	r := NewImageRaster(img)

	require.Equal(t, 3, r.Width())
	require.Equal(t, 2, r.Height())
	require.Equal(t, uint32(20<<16|20<<8|7), r.PixelAt(2, 1))
	require.NoError(t, r.Close())
}

func TestImageRaster_SubImageOffset(t *testing.T) {
	img := newRGBA(4, 4, func(x, y int) color.RGBA {
		return color.RGBA{R: uint8(x), G: uint8(y), A: 255}
	})
	sub := img.SubImage(image.Rect(1, 2, 4, 4))
	r := NewImageRaster(sub)

	require.Equal(t, 3, r.Width())
	require.Equal(t, 2, r.Height())
	require.Equal(t, uint32(1<<16|2<<8), r.PixelAt(0, 0))
}

func TestImageRaster_Gray(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 1, 1))
	g.Pix[0] = 0x40
	require.Equal(t, uint32(0x404040), NewImageRaster(g).PixelAt(0, 0))
}

func TestNativeOpener_OpenJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "A-1-GC.jpg")
	writeJPEG(t, path, newRGBA(16, 8, func(x, y int) color.RGBA {
		return color.RGBA{A: 255}
	}))

	r, err := NewNativeOpener().Open(path)
	require.NoError(t, err)
	defer r.Close()

	require.Equal(t, 16, r.Width())
	require.Equal(t, 8, r.Height())
	c := entity.SampleFromPacked(r.PixelAt(5, 5))
	require.LessOrEqual(t, c.R, uint8(2))
	require.LessOrEqual(t, c.G, uint8(2))
	require.LessOrEqual(t, c.B, uint8(2))
}

func TestNativeOpener_DecodeFailure(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "A-1-GC.jpg")
	require.NoError(t, os.WriteFile(bad, []byte("not a jpeg"), 0o644))

	_, err := NewNativeOpener().Open(bad)
	require.ErrorIs(t, err, entity.ErrImageDecode)

	_, err = NewNativeOpener().Open(filepath.Join(dir, "missing.jpg"))
	require.ErrorIs(t, err, entity.ErrImageDecode)
}

func TestNativeMasker_BlueThreshold(t *testing.T) {
	// левая половина: синий 90 (в диапазоне), правая: 91
	img := newRGBA(4, 2, func(x, y int) color.RGBA {
		if x < 2 {
			return color.RGBA{R: 200, G: 10, B: 90, A: 255}
		}
		return color.RGBA{R: 0, G: 0, B: 91, A: 255}
	})
	m := NewNativeMasker()

	planes, err := m.SplitChannels(NewImageRaster(img))
	require.NoError(t, err)
	require.Len(t, planes, 3)
	for _, p := range planes {
		require.Equal(t, 4, p.Width())
		require.Equal(t, 2, p.Height())
	}

	mask, err := m.ThresholdMask(planes[2], 0, 90)
	require.NoError(t, err)
	area, err := m.SelectionArea(mask)
	require.NoError(t, err)
	require.Equal(t, 4.0, area)

	// повторный порог по 255 сохраняет бинарную маску
	again, err := m.ThresholdMask(mask, 255, 255)
	require.NoError(t, err)
	area, err = m.SelectionArea(again)
	require.NoError(t, err)
	require.Equal(t, 4.0, area)

	redMask, err := m.ThresholdMask(planes[0], 200, 200)
	require.NoError(t, err)
	area, err = m.SelectionArea(redMask)
	require.NoError(t, err)
	require.Equal(t, 4.0, area)

	for _, p := range append(planes, mask, again, redMask) {
		require.NoError(t, p.Close())
	}
}

type foreignPlane struct{}

func (foreignPlane) Width() int   { return 1 }
func (foreignPlane) Height() int  { return 1 }
func (foreignPlane) Close() error { return nil }

func TestNativeMasker_UnsupportedPlane(t *testing.T) {
	m := NewNativeMasker()

	_, err := m.ThresholdMask(foreignPlane{}, 0, 90)
	require.ErrorIs(t, err, ErrUnsupportedPlane)

	_, err = m.SelectionArea(foreignPlane{})
	require.ErrorIs(t, err, ErrUnsupportedPlane)
}
