package zone

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/splitview/internal/domain/entity"
)

func TestDetect_Regions(t *testing.T) {
	bounds := entity.Rect{X: 100, Y: 50, W: 400, H: 200} // band = 0.25 * 200 = 50

	tests := []struct {
		name  string
		point entity.Point
		want  entity.Zone
	}{
		{name: "center", point: entity.Point{X: 300, Y: 150}, want: entity.ZoneCenter},
		{name: "left band", point: entity.Point{X: 120, Y: 150}, want: entity.ZoneLeft},
		{name: "right band", point: entity.Point{X: 480, Y: 150}, want: entity.ZoneRight},
		{name: "top band", point: entity.Point{X: 300, Y: 60}, want: entity.ZoneTop},
		{name: "bottom band", point: entity.Point{X: 300, Y: 240}, want: entity.ZoneBottom},
		{name: "top-left corner prefers left", point: entity.Point{X: 101, Y: 51}, want: entity.ZoneLeft},
		{name: "bottom-right corner prefers right", point: entity.Point{X: 499, Y: 249}, want: entity.ZoneRight},
		{name: "top-right corner prefers right", point: entity.Point{X: 499, Y: 51}, want: entity.ZoneRight},
		{name: "origin is inside", point: entity.Point{X: 100, Y: 50}, want: entity.ZoneLeft},
		{name: "right edge is outside", point: entity.Point{X: 500, Y: 150}, want: entity.ZoneNone},
		{name: "bottom edge is outside", point: entity.Point{X: 300, Y: 250}, want: entity.ZoneNone},
		{name: "far outside", point: entity.Point{X: -5, Y: -5}, want: entity.ZoneNone},
		{name: "just inside left band boundary", point: entity.Point{X: 149.9, Y: 150}, want: entity.ZoneLeft},
		{name: "left band boundary is center", point: entity.Point{X: 150, Y: 150}, want: entity.ZoneCenter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.point, bounds))
		})
	}
}

func TestDetect_EmptyBoundsIsNone(t *testing.T) {
	assert.Equal(t, entity.ZoneNone, Detect(entity.Point{}, entity.Rect{}))
	assert.Equal(t, entity.ZoneNone, Detect(entity.Point{X: 1, Y: 1}, entity.Rect{W: 10}))
}

func TestDetect_ExhaustiveOverGrid(t *testing.T) {
	bounds := entity.Rect{X: 10, Y: 20, W: 90, H: 130}
	d := NewDetector(0.3)

	inside := map[entity.Zone]int{}
	for x := 0.0; x < 120; x += 0.5 {
		for y := 0.0; y < 170; y += 0.5 {
			p := entity.Point{X: x, Y: y}
			got := d.Detect(p, bounds)
			if !bounds.Contains(p) {
				assert.Equal(t, entity.ZoneNone, got, "outside point %+v", p)
				continue
			}
			assert.NotEqual(t, entity.ZoneNone, got, "inside point %+v", p)
			assert.True(t, got.Valid())
			inside[got]++
		}
	}

	for _, z := range []entity.Zone{entity.ZoneLeft, entity.ZoneRight, entity.ZoneTop, entity.ZoneBottom, entity.ZoneCenter} {
		assert.Positive(t, inside[z], "zone %s never detected", z)
	}
}

func TestNewDetector_MarginFallback(t *testing.T) {
	assert.Equal(t, DefaultMargin, NewDetector(0).Margin())
	assert.Equal(t, DefaultMargin, NewDetector(-1).Margin())
	assert.Equal(t, DefaultMargin, NewDetector(0.9).Margin())
	assert.Equal(t, 0.5, NewDetector(0.5).Margin())
	assert.Equal(t, 0.1, NewDetector(0.1).Margin())
}

func TestDetector_MaxMarginLeavesNoCenter(t *testing.T) {
	d := NewDetector(MaxMargin)
	bounds := entity.Rect{W: 100, H: 100}

	// With half-width bands every inside point is an edge zone.
	assert.Equal(t, entity.ZoneLeft, d.Detect(entity.Point{X: 49, Y: 50}, bounds))
	assert.Equal(t, entity.ZoneRight, d.Detect(entity.Point{X: 50, Y: 50}, bounds))
}
