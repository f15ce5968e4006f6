// Package zone maps a pointer position inside a pane to a drop zone.
package zone

import "github.com/bnema/splitview/internal/domain/entity"

const (
	// DefaultMargin is the edge band width as a fraction of the pane's shorter side.
	DefaultMargin = 0.25

	// MaxMargin keeps the four bands from swallowing the center region.
	MaxMargin = 0.5
)

// Detector partitions a pane rectangle into five drop regions.
type Detector struct {
	margin float64
}

// NewDetector creates a detector with the given margin fraction.
// Values outside (0, MaxMargin] fall back to DefaultMargin.
func NewDetector(margin float64) Detector {
	if margin <= 0 || margin > MaxMargin {
		margin = DefaultMargin
	}
	return Detector{margin: margin}
}

// Margin returns the margin fraction in use.
func (d Detector) Margin() float64 {
	if d.margin == 0 {
		return DefaultMargin
	}
	return d.margin
}

// Detect returns the zone under pointer. Bands are m * shorter side wide;
// a pointer in both a vertical and a horizontal band resolves to left/right.
// Points outside the rectangle map to none.
func (d Detector) Detect(pointer entity.Point, bounds entity.Rect) entity.Zone {
	if !bounds.Contains(pointer) {
		return entity.ZoneNone
	}

	band := d.Margin() * bounds.ShorterSide()
	dx := pointer.X - bounds.X
	dy := pointer.Y - bounds.Y

	switch {
	case dx < band:
		return entity.ZoneLeft
	case dx >= bounds.W-band:
		return entity.ZoneRight
	case dy < band:
		return entity.ZoneTop
	case dy >= bounds.H-band:
		return entity.ZoneBottom
	default:
		return entity.ZoneCenter
	}
}

// Detect uses a detector with DefaultMargin.
func Detect(pointer entity.Point, bounds entity.Rect) entity.Zone {
	return Detector{}.Detect(pointer, bounds)
}
