package vision

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"

	"cover-meter/internal/domain/entity"
	"cover-meter/internal/domain/port"
)

// ImageRaster Raster поверх image.Image из стандартной библиотеки.
type ImageRaster struct {
	img    image.Image
	bounds image.Rectangle
}

// NewImageRaster оборачивает уже декодированное изображение.
func NewImageRaster(img image.Image) *ImageRaster {
	return &ImageRaster{img: img, bounds: img.Bounds()}
}

func (r *ImageRaster) Width() int  { return r.bounds.Dx() }
func (r *ImageRaster) Height() int { return r.bounds.Dy() }

// PixelAt возвращает 0xRRGGBB. Для типов, которые даёт JPEG-декодер, без аллокаций.
func (r *ImageRaster) PixelAt(x, y int) uint32 {
	px, py := r.bounds.Min.X+x, r.bounds.Min.Y+y

	switch im := r.img.(type) {
	case *image.YCbCr:
		yi := im.YOffset(px, py)
		ci := im.COffset(px, py)
		red, green, blue := color.YCbCrToRGB(im.Y[yi], im.Cb[ci], im.Cr[ci])
		return pack(red, green, blue)
	case *image.RGBA:
		i := im.PixOffset(px, py)
		return pack(im.Pix[i], im.Pix[i+1], im.Pix[i+2])
	case *image.NRGBA:
		i := im.PixOffset(px, py)
		return pack(im.Pix[i], im.Pix[i+1], im.Pix[i+2])
	case *image.Gray:
		v := im.Pix[im.PixOffset(px, py)]
		return pack(v, v, v)
	default:
		red, green, blue, _ := r.img.At(px, py).RGBA()
		return pack(uint8(red>>8), uint8(green>>8), uint8(blue>>8))
	}
}

// Close отпускает пиксельный буфер, чтобы его мог забрать GC.
func (r *ImageRaster) Close() error {
	r.img = nil
	return nil
}

func pack(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// NativeOpener читает JPEG без внешних библиотек.
type NativeOpener struct{}

func NewNativeOpener() *NativeOpener {
	return &NativeOpener{}
}

// Open декодирует файл целиком в память.
func (o *NativeOpener) Open(path string) (port.Raster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrImageDecode, err)
	}
	defer f.Close()

	img, err := jpeg.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", entity.ErrImageDecode, path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: %s: empty image", entity.ErrImageDecode, path)
	}

	return NewImageRaster(img), nil
}

var _ port.RasterOpener = (*NativeOpener)(nil)
var _ port.Raster = (*ImageRaster)(nil)
