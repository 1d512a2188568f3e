package port

// Raster декодированное изображение в памяти.
// Владелец обязан вызвать Close на любом пути выхода.
type Raster interface {
	Width() int
	Height() int

	// PixelAt возвращает цвет пикселя в виде 0xRRGGBB
	PixelAt(x, y int) uint32

	Close() error
}

// RasterOpener открывает и декодирует изображения с диска
type RasterOpener interface {
	// Open возвращает ошибку, оборачивающую entity.ErrImageDecode, если файл не читается
	Open(path string) (Raster, error)
}
