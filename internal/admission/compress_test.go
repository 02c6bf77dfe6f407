package admission

import (
	"image"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noise(w, h int, seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	rand.New(rand.NewSource(seed)).Read(img.Pix)
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return img
}

func TestCompress_ConvergesOrStopsAtCap(t *testing.T) {
	if testing.Short() {
		t.Skip("large image")
	}
	cfg := DefaultConfig()

	out, err := compress(cfg, noise(4000, 3000, 1))
	require.NoError(t, err)
	require.NotEmpty(t, out.attempts)
	require.LessOrEqual(t, len(out.attempts), cfg.MaxAttempts)

	last := out.attempts[len(out.attempts)-1]
	if last.Bytes > cfg.TargetBytes {
		assert.True(t, out.overBudget)
		assert.Len(t, out.attempts, cfg.MaxAttempts)
	} else {
		assert.False(t, out.overBudget)
	}
	assert.Equal(t, last.Bytes, len(out.data))

	for i := 1; i < len(out.attempts); i++ {
		prev, cur := out.attempts[i-1], out.attempts[i]
		assert.LessOrEqual(t, cur.MaxDimension, prev.MaxDimension, "attempt %d", i)
		assert.LessOrEqual(t, cur.Quality, prev.Quality, "attempt %d", i)
		assert.GreaterOrEqual(t, cur.Quality, cfg.MinQuality)
		assert.GreaterOrEqual(t, cur.MaxDimension, cfg.MinScaledDimension)
	}
	assert.LessOrEqual(t, max(out.width, out.height), last.MaxDimension)
}

func TestCompress_LargeStepSchedule(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TargetBytes = 1

	out, err := compress(cfg, noise(1000, 1000, 2))
	require.NoError(t, err)
	require.Len(t, out.attempts, cfg.MaxAttempts)
	assert.True(t, out.overBudget)

	want := []struct {
		dim int
		q   float64
	}{
		{800, 0.8}, {640, 0.7}, {512, 0.6}, {409, 0.5}, {327, 0.4},
		{261, 0.3}, {208, 0.3}, {166, 0.3}, {132, 0.3}, {105, 0.3},
	}
	for i, w := range want {
		assert.Equal(t, w.dim, out.attempts[i].MaxDimension, "attempt %d", i)
		assert.InDelta(t, w.q, out.attempts[i].Quality, 1e-9, "attempt %d", i)
	}
	assert.Equal(t, 105, out.width)
}

func TestCompress_SmallImageFitsFirstAttempt(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 300, 200))
	for i := range img.Pix {
		img.Pix[i] = 0x80
	}

	out, err := compress(DefaultConfig(), img)
	require.NoError(t, err)
	assert.Len(t, out.attempts, 1)
	assert.False(t, out.overBudget)
	assert.Equal(t, 300, out.width)
	assert.Equal(t, 200, out.height)
}

func TestFitWithin(t *testing.T) {
	tests := []struct {
		name         string
		w, h, maxDim int
		wantW, wantH int
	}{
		{"landscape shrinks", 4000, 3000, 800, 800, 600},
		{"portrait shrinks", 3000, 6000, 800, 400, 800},
		{"never upscales", 300, 200, 800, 300, 200},
		{"exact fit", 800, 800, 800, 800, 800},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fitWithin(image.NewRGBA(image.Rect(0, 0, tt.w, tt.h)), tt.maxDim)
			assert.Equal(t, tt.wantW, got.Bounds().Dx())
			assert.Equal(t, tt.wantH, got.Bounds().Dy())
		})
	}
}

func TestFitWithin_FlattensTransparencyOntoWhite(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	got := fitWithin(src, 800)

	r, g, b, a := got.At(5, 5).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
	assert.Equal(t, uint32(0xffff), a)
}

func TestJPEGQuality(t *testing.T) {
	assert.Equal(t, 80, jpegQuality(0.8))
	assert.Equal(t, 30, jpegQuality(0.3))
	assert.Equal(t, 1, jpegQuality(0))
	assert.Equal(t, 100, jpegQuality(1.5))
}

func TestRoundQuality(t *testing.T) {
	assert.Equal(t, 0.7, roundQuality(0.8-0.1))
	assert.Equal(t, 0.3, roundQuality(0.45-0.15))
}
