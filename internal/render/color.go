package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/osse101/GreenMap_Go/internal/domain"
)

// ParseHex parses "#rrggbb" (the leading # is optional).
func ParseHex(hex string) (color.NRGBA, error) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", domain.ErrInvalidColor, hex)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", domain.ErrInvalidColor, hex)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// ToHex formats a color as lowercase "#rrggbb".
func ToHex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// DarkenHex lowers each channel by amount, flooring at 0. Unparseable input
// darkens the default tree color instead.
func DarkenHex(hex string, amount int) string {
	c, err := ParseHex(hex)
	if err != nil {
		c, _ = ParseHex(domain.DefaultTreeColor)
	}
	sub := func(v uint8) uint8 {
		return uint8(max(0, int(v)-amount))
	}
	return ToHex(color.NRGBA{R: sub(c.R), G: sub(c.G), B: sub(c.B), A: 0xff})
}

func mustColor(hex string) color.NRGBA {
	c, err := ParseHex(hex)
	if err != nil {
		c, _ = ParseHex(domain.DefaultTreeColor)
	}
	return c
}
