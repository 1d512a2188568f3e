package port

// Plane одноканальное 8-битное изображение (канал или бинарная маска).
type Plane interface {
	Width() int
	Height() int
	Close() error
}

// ChannelMasker операции над каналами, нужные для измерения кроны.
// Реализация может принимать только свои Raster и Plane.
type ChannelMasker interface {
	// SplitChannels делит изображение на плоскости R, G, B
	SplitChannels(r Raster) ([]Plane, error)

	// ThresholdMask строит маску: 255 для значений в [low, high], иначе 0
	ThresholdMask(p Plane, low, high uint8) (Plane, error)

	// SelectionArea площадь переднего плана маски в пикселях
	SelectionArea(mask Plane) (float64, error)
}
