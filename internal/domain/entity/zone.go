package entity

// Zone is a drop region computed from the pointer position within a pane.
type Zone string

const (
	ZoneNone   Zone = "none"
	ZoneLeft   Zone = "left"
	ZoneRight  Zone = "right"
	ZoneTop    Zone = "top"
	ZoneBottom Zone = "bottom"
	ZoneCenter Zone = "center"
)

// ParseZone maps a name to a Zone. Anything outside the enum is ZoneNone.
func ParseZone(s string) Zone {
	z := Zone(s)
	if z.Valid() {
		return z
	}
	return ZoneNone
}

// Valid reports whether z is one of the five drop regions or none.
func (z Zone) Valid() bool {
	switch z {
	case ZoneNone, ZoneLeft, ZoneRight, ZoneTop, ZoneBottom, ZoneCenter:
		return true
	default:
		return false
	}
}

// IsDirectional reports whether dropping on z splits the pane.
func (z Zone) IsDirectional() bool {
	switch z {
	case ZoneLeft, ZoneRight, ZoneTop, ZoneBottom:
		return true
	default:
		return false
	}
}

// Orientation returns the splitter orientation a directional zone produces.
func (z Zone) Orientation() (Orientation, bool) {
	switch z {
	case ZoneLeft, ZoneRight:
		return OrientationHorizontal, true
	case ZoneTop, ZoneBottom:
		return OrientationVertical, true
	default:
		return 0, false
	}
}

// PlacesBefore reports whether the new pane goes before the original one.
func (z Zone) PlacesBefore() bool {
	return z == ZoneLeft || z == ZoneTop
}
