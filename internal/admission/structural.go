package admission

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/osse101/GreenMap_Go/internal/domain"
)

// Upload is a raw image as received from the client.
type Upload struct {
	Data         []byte
	DeclaredMIME string
	Filename     string
}

// checkStructure validates type and byte size. It returns the sniffed MIME
// type on success.
func checkStructure(cfg Config, up Upload) (string, *Rejection) {
	declared := normalizeMIME(up.DeclaredMIME)
	if declared != "" && declared != mimeOctetStream && !cfg.allows(declared) {
		return "", reject(StageStructural, ReasonInvalidType, fmt.Errorf("%w: declared type %q", domain.ErrInvalidImage, declared))
	}

	sniffed := normalizeMIME(mimetype.Detect(up.Data).String())
	if !cfg.allows(sniffed) {
		return "", reject(StageStructural, ReasonInvalidType, fmt.Errorf("%w: content type %q", domain.ErrInvalidImage, sniffed))
	}

	if len(up.Data) > cfg.MaxBytes {
		return "", reject(StageStructural, fmt.Sprintf(ReasonTooLargeFormat, formatBytes(cfg.MaxBytes)), nil)
	}
	if len(up.Data) < cfg.MinBytes {
		return "", reject(StageStructural, ReasonTooSmall, nil)
	}
	return sniffed, nil
}

// normalizeMIME strips parameters and maps the image/jpg alias.
func normalizeMIME(t string) string {
	t, _, _ = strings.Cut(t, ";")
	t = strings.ToLower(strings.TrimSpace(t))
	if t == mimeJPGAlias {
		return MIMEJPEG
	}
	return t
}

func formatBytes(n int) string {
	switch {
	case n >= 1024*1024 && n%(1024*1024) == 0:
		return fmt.Sprintf("%d MB", n/(1024*1024))
	case n >= 1024 && n%1024 == 0:
		return fmt.Sprintf("%d KB", n/1024)
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}
