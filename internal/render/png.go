package render

import (
	"bytes"
	"image/png"
	"io"
)

// Frame renders s onto a fresh width x height raster.
func Frame(s Scene, width, height int) *RasterCanvas {
	c := NewRasterCanvas(width, height)
	Render(c, s)
	return c
}

// EncodePNG writes the canvas as PNG.
func (c *RasterCanvas) EncodePNG(w io.Writer) error {
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	return enc.Encode(w, c.img)
}

// PNG renders s and returns the encoded frame.
func PNG(s Scene, width, height int) ([]byte, error) {
	var buf bytes.Buffer
	if err := Frame(s, width, height).EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
