package admission

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"math"

	"golang.org/x/image/draw"
)

// Attempt records one pass of the compression loop.
type Attempt struct {
	MaxDimension int     `json:"max_dimension"`
	Quality      float64 `json:"quality"`
	Bytes        int     `json:"bytes"`
}

type compressed struct {
	data       []byte
	width      int
	height     int
	overBudget bool
	attempts   []Attempt
}

// compress re-encodes src as JPEG with a shrinking dimension and quality
// until the output fits TargetBytes or MaxAttempts is reached. The last
// output is kept either way.
func compress(cfg Config, src image.Image) (compressed, error) {
	maxDim := cfg.StartDimension
	quality := cfg.StartQuality

	var (
		out      compressed
		scaled   image.Image
		scaledAt = -1
		buf      bytes.Buffer
	)

	for i := 0; i < cfg.MaxAttempts; i++ {
		if maxDim != scaledAt {
			scaled = fitWithin(src, maxDim)
			scaledAt = maxDim
		}

		buf.Reset()
		if err := jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: jpegQuality(quality)}); err != nil {
			return compressed{}, fmt.Errorf("encode attempt %d: %w", i+1, err)
		}

		size := buf.Len()
		b := scaled.Bounds()
		out.attempts = append(out.attempts, Attempt{MaxDimension: maxDim, Quality: quality, Bytes: size})
		out.data = append(out.data[:0], buf.Bytes()...)
		out.width, out.height = b.Dx(), b.Dy()

		if size <= cfg.TargetBytes {
			return out, nil
		}

		if float64(size) > float64(cfg.TargetBytes)*overBudgetFactor {
			maxDim = max(int(float64(maxDim)*dimensionShrink), cfg.MinScaledDimension)
			quality -= qualityStepLarge
		} else {
			quality -= qualityStepSmall
		}
		quality = max(roundQuality(quality), cfg.MinQuality)
	}

	out.overBudget = true
	return out, nil
}

// fitWithin scales src so its longer side is at most maxDim, never
// upscaling, and flattens transparency onto white.
func fitWithin(src image.Image, maxDim int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if longest := max(w, h); longest > maxDim {
		ratio := float64(maxDim) / float64(longest)
		w = max(int(math.Round(float64(w)*ratio)), 1)
		h = max(int(math.Round(float64(h)*ratio)), 1)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Over)
		return dst
	}
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

func jpegQuality(q float64) int {
	return min(max(int(math.Round(q*maxJPEGQuality)), 1), maxJPEGQuality)
}

func roundQuality(q float64) float64 {
	return math.Round(q*qualityPrecision) / qualityPrecision
}
