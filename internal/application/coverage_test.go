package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cover-meter/internal/domain/entity"
	"cover-meter/internal/infrastructure/vision"
)

var (
	black = entity.ColorSample{}
	green = entity.ColorSample{G: 255}
	soil  = entity.ColorSample{R: 120, G: 90, B: 60}
)

func TestMeasureGround_AllBlack(t *testing.T) {
	r := newFakeRaster(4, 4, solid(black))

	m, err := MeasureGround("A-1-GC.jpg", r)
	require.NoError(t, err)
	require.Equal(t, 16, m.TotalPixels())
	require.Equal(t, 0.0, m.CoveredPixels())
	require.Equal(t, 0.0, m.Ratio())
	require.Equal(t, entity.Ground(), m.Type())
	require.Equal(t, 1, r.closed)
}

func TestMeasureGround_AllGreen(t *testing.T) {
	r := newFakeRaster(5, 3, solid(green))

	m, err := MeasureGround("A-1-GC.jpg", r)
	require.NoError(t, err)
	require.Equal(t, 15, m.TotalPixels())
	require.Equal(t, 15.0, m.CoveredPixels())
	require.Equal(t, 1.0, m.Ratio())
}

func TestMeasureGround_RatioMatchesCount(t *testing.T) {
	// зелёный каждый третий пиксель по строкам
	r := newFakeRaster(7, 3, func(x, y int) entity.ColorSample {
		if (y*7+x)%3 == 0 {
			return green
		}
		return soil
	})

	m, err := MeasureGround("A-1-GC.jpg", r)
	require.NoError(t, err)
	require.Equal(t, 7.0, m.CoveredPixels())
	require.Equal(t, 7.0/21.0, m.Ratio())
	require.GreaterOrEqual(t, m.Ratio(), 0.0)
	require.LessOrEqual(t, m.Ratio(), 1.0)
}

func TestMeasureGround_EmptyRasterIsClosed(t *testing.T) {
	r := newFakeRaster(0, 0, solid(black))

	_, err := MeasureGround("A-1-GC.jpg", r)
	require.ErrorIs(t, err, entity.ErrImageDecode)
	require.Equal(t, 1, r.closed)
}

func TestMeasureCanopy_CallSequence(t *testing.T) {
	r := newFakeRaster(10, 10, solid(black))
	masker := &recordingMasker{area: 25}

	m, err := MeasureCanopy("A-1-CC.jpg", r, masker)
	require.NoError(t, err)

	require.Equal(t, []string{
		"split",
		"threshold B [0,90]",
		"threshold mask(B) [255,255]",
		"area mask(mask(B))",
	}, masker.calls)

	require.Equal(t, entity.Canopy(), m.Type())
	require.Equal(t, 100, m.TotalPixels())
	require.Equal(t, 25.0, m.CoveredPixels())
	require.Equal(t, 0.25, m.Ratio())

	require.Equal(t, 1, r.closed)
	for _, p := range masker.planes {
		require.Equal(t, 1, p.closed, "plane %s", p.name)
	}
}

func TestMeasureCanopy_FailuresReleaseEverything(t *testing.T) {
	for _, step := range []string{"split", "threshold"} {
		t.Run(step, func(t *testing.T) {
			r := newFakeRaster(2, 2, solid(black))
			masker := &recordingMasker{failStep: step}

			_, err := MeasureCanopy("A-1-CC.jpg", r, masker)
			require.Error(t, err)
			require.Equal(t, 1, r.closed)
			for _, p := range masker.planes {
				require.Equal(t, 1, p.closed, "plane %s", p.name)
			}
		})
	}
}

func TestMeasureCanopy_AreaOutOfRange(t *testing.T) {
	r := newFakeRaster(2, 2, solid(black))

	_, err := MeasureCanopy("A-1-CC.jpg", r, &recordingMasker{area: 5})
	require.ErrorIs(t, err, entity.ErrInvalidMeasurement)
	require.Equal(t, 1, r.closed)
}

func TestMeasureCanopy_NativeMasker(t *testing.T) {
	// левая половина тёмная по синему каналу, правая светлая
	r := newFakeRaster(4, 4, func(x, y int) entity.ColorSample {
		if x < 2 {
			return entity.ColorSample{R: 30, G: 80, B: 90}
		}
		return entity.ColorSample{R: 30, G: 80, B: 91}
	})

	m, err := MeasureCanopy("A-1-CC.jpg", r, vision.NewNativeMasker())
	require.NoError(t, err)
	require.Equal(t, 8.0, m.CoveredPixels())
	require.Equal(t, 0.5, m.Ratio())
	require.Equal(t, 1, r.closed)
}

func TestCoverageService_Dispatch(t *testing.T) {
	opener := &fakeOpener{rasters: map[string]*fakeRaster{
		"g/A-1-GC.jpg": newFakeRaster(2, 2, solid(green)),
		"c/A-1-CC.jpg": newFakeRaster(2, 2, solid(black)),
	}}
	svc := NewCoverageService(opener, vision.NewNativeMasker())

	m, err := svc.Measure("g/A-1-GC.jpg", entity.Ground())
	require.NoError(t, err)
	require.Equal(t, 1.0, m.Ratio())

	m, err = svc.Measure("c/A-1-CC.jpg", entity.Canopy())
	require.NoError(t, err)
	require.Equal(t, 1.0, m.Ratio())

	_, err = svc.Measure("missing.jpg", entity.Ground())
	require.ErrorIs(t, err, entity.ErrImageDecode)

	_, err = svc.Measure("x/A-1-XX.jpg", entity.Unknown("XX"))
	require.ErrorIs(t, err, entity.ErrUnknownAcquisitionType)
	require.NotContains(t, opener.opened, "x/A-1-XX.jpg")
}
