package entity

// Пороги индекса Canopeo (FGCC). Не настраиваются.
const (
	RedGreenLimit  = 0.95 // p1
	BlueGreenLimit = 0.95 // p2
	GreenExcessMin = 20   // p3
)

// ColorSample цвет одного пикселя, 8 бит на канал
type ColorSample struct {
	R uint8
	G uint8
	B uint8
}

// SampleFromPacked разбирает упакованное значение 0xRRGGBB.
func SampleFromPacked(p uint32) ColorSample {
	return ColorSample{
		R: uint8(p >> 16 & 0xff),
		G: uint8(p >> 8 & 0xff),
		B: uint8(p & 0xff),
	}
}

// Packed собирает цвет обратно в 0xRRGGBB.
func (c ColorSample) Packed() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// IsVegetation проверяет, относится ли пиксель к растительности.
// При G == 0 оба отношения считаются нулевыми.
func IsVegetation(c ColorSample) bool {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)

	var rg, bg float64
	if c.G != 0 {
		rg = r / g
		bg = b / g
	}

	excess := 2*g - r - b

	return rg < RedGreenLimit && bg < BlueGreenLimit && excess > GreenExcessMin
}
