package postgres

import (
	"fmt"
	"math"
	"strconv"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/GreenMap_Go/internal/domain"
)

// encodePoint rounds both axes to the NUMERIC(10,2) column scale
func encodePoint(p domain.Point) (x, y pgtype.Numeric, err error) {
	if x, err = encodeAxis(p.X); err != nil {
		return x, y, fmt.Errorf("%w: x: %v", domain.ErrDatabase, err)
	}
	if y, err = encodeAxis(p.Y); err != nil {
		return x, y, fmt.Errorf("%w: y: %v", domain.ErrDatabase, err)
	}
	return x, y, nil
}

func encodeAxis(f float64) (pgtype.Numeric, error) {
	var n pgtype.Numeric
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return n, fmt.Errorf("coordinate %v is not finite", f)
	}
	err := n.Scan(strconv.FormatFloat(f, 'f', CoordinateDecimals, 64))
	return n, err
}

// decodePoint reads a stored coordinate pair back into world space
func decodePoint(x, y pgtype.Numeric) (domain.Point, error) {
	fx, err := x.Float64Value()
	if err != nil {
		return domain.Point{}, fmt.Errorf("%w: decode x: %v", domain.ErrDatabase, err)
	}
	fy, err := y.Float64Value()
	if err != nil {
		return domain.Point{}, fmt.Errorf("%w: decode y: %v", domain.ErrDatabase, err)
	}
	return domain.Point{X: fx.Float64, Y: fy.Float64}, nil
}
