package hull

import "fmt"

// Station represents a transverse section plane at a longitudinal position.
// Stations are ordered bow-to-stern or stern-to-bow as long as X is
// non-decreasing with increasing index.
type Station struct {
	Index int     `json:"index"`
	X     float64 `json:"x"` // m, longitudinal position
}

// Waterline represents a horizontal reference plane above the keel.
type Waterline struct {
	Index int     `json:"index"`
	Z     float64 `json:"z"` // m, height above keel
}

// Offset is one entry of the offsets table: the half-breadth of the hull
// surface at the intersection of a station and a waterline. The hull is
// assumed symmetric about the centerplane, so the full breadth at that
// point is twice the offset.
type Offset struct {
	Station     int     `json:"station"`
	Waterline   int     `json:"waterline"`
	HalfBreadth float64 `json:"y"` // m, half-breadth from centerline
}

// Hull is the geometry definition of a vessel as read from a JSON offsets
// file: principal dimensions plus a dense stations × waterlines grid of
// half-breadths.
type Hull struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`

	// Principal dimensions (m)
	Lpp  float64 `json:"lpp"`  // length between perpendiculars
	Beam float64 `json:"beam"` // moulded beam

	Stations   []Station   `json:"stations"`
	Waterlines []Waterline `json:"waterlines"`
	Offsets    []Offset    `json:"offsets"`
}

// Validate checks the geometry invariants: ordering, grid density and
// non-negative half-breadths. A hull that fails validation must not be
// used for any hydrostatic computation.
func (h *Hull) Validate() error {
	if len(h.Stations) < 2 {
		return &ValidationError{"hull must have at least 2 stations"}
	}
	if len(h.Waterlines) < 2 {
		return &ValidationError{"hull must have at least 2 waterlines"}
	}
	if h.Lpp <= 0 {
		return &ValidationError{"lpp must be positive"}
	}
	if h.Beam <= 0 {
		return &ValidationError{"beam must be positive"}
	}

	seenS := make(map[int]bool, len(h.Stations))
	for i, s := range h.Stations {
		if seenS[s.Index] {
			return &ValidationError{msg: fmt.Sprintf("duplicate station index %d", s.Index)}
		}
		seenS[s.Index] = true
		if i > 0 && s.X < h.Stations[i-1].X {
			return &ValidationError{msg: fmt.Sprintf("station %d: x=%.3f decreases from previous x=%.3f", s.Index, s.X, h.Stations[i-1].X)}
		}
	}

	seenW := make(map[int]bool, len(h.Waterlines))
	for i, w := range h.Waterlines {
		if seenW[w.Index] {
			return &ValidationError{msg: fmt.Sprintf("duplicate waterline index %d", w.Index)}
		}
		seenW[w.Index] = true
		if i > 0 && w.Z < h.Waterlines[i-1].Z {
			return &ValidationError{msg: fmt.Sprintf("waterline %d: z=%.3f decreases from previous z=%.3f", w.Index, w.Z, h.Waterlines[i-1].Z)}
		}
	}

	type cell struct{ s, w int }
	seen := make(map[cell]bool, len(h.Offsets))
	for _, o := range h.Offsets {
		if !seenS[o.Station] {
			return &ValidationError{msg: fmt.Sprintf("offset references unknown station %d", o.Station)}
		}
		if !seenW[o.Waterline] {
			return &ValidationError{msg: fmt.Sprintf("offset references unknown waterline %d", o.Waterline)}
		}
		if o.HalfBreadth < 0 {
			return &ValidationError{msg: fmt.Sprintf("offset (%d,%d): half-breadth must not be negative", o.Station, o.Waterline)}
		}
		c := cell{o.Station, o.Waterline}
		if seen[c] {
			return &ValidationError{msg: fmt.Sprintf("duplicate offset for station %d, waterline %d", o.Station, o.Waterline)}
		}
		seen[c] = true
	}
	if len(seen) != len(h.Stations)*len(h.Waterlines) {
		return &ValidationError{msg: fmt.Sprintf("offsets grid is not dense: have %d entries, need %d", len(seen), len(h.Stations)*len(h.Waterlines))}
	}

	return nil
}

// ValidationError represents a hull geometry validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
