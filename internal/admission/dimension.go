package admission

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/osse101/GreenMap_Go/internal/domain"
)

const megapixel = 1_000_000

// checkDimensions decodes the header and enforces the resolution bounds.
// It runs before the full decode so oversized frames are never allocated.
func checkDimensions(cfg Config, data []byte) (image.Config, *Rejection) {
	hdr, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return image.Config{}, reject(StageDimension, ReasonCorrupt, fmt.Errorf("%w: %v", domain.ErrInvalidImage, err))
	}
	if hdr.Width < cfg.MinDimension || hdr.Height < cfg.MinDimension {
		return hdr, reject(StageDimension, fmt.Sprintf(ReasonLowResFormat, cfg.MinDimension, cfg.MinDimension), nil)
	}
	if cfg.MaxDimension > 0 && (hdr.Width > cfg.MaxDimension || hdr.Height > cfg.MaxDimension) {
		return hdr, reject(StageDimension, fmt.Sprintf(ReasonHighResFormat, cfg.MaxDimension, cfg.MaxDimension), nil)
	}
	if cfg.MaxPixels > 0 && int64(hdr.Width)*int64(hdr.Height) > int64(cfg.MaxPixels) {
		return hdr, reject(StageDimension, fmt.Sprintf(ReasonTooManyPixels, cfg.MaxPixels/megapixel), nil)
	}
	return hdr, nil
}
