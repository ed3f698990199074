package curves

import (
	"fmt"

	"github.com/alexiusacademia/gohydro/internal/hydro"
)

// DefaultPoints is the draft sample count used when the caller does not
// specify one.
const DefaultPoints = 50

// Type identifies a hydrostatic scalar projected into a curve.
type Type string

const (
	Displacement Type = "displacement"
	Volume       Type = "volume"
	KB           Type = "kb"
	LCB          Type = "lcb"
	LCF          Type = "lcf"
	BMt          Type = "bmt"
	GMt          Type = "gmt"
	Awp          Type = "awp"
	Iwp          Type = "iwp"
	Cb           Type = "cb"
	Cp           Type = "cp"
	Cm           Type = "cm"
	Cwp          Type = "cwp"
)

// AllTypes lists every supported curve type in presentation order.
var AllTypes = []Type{Displacement, Volume, KB, LCB, LCF, BMt, GMt, Awp, Iwp, Cb, Cp, Cm, Cwp}

// labels maps each curve type to its y-axis label.
var labels = map[Type]string{
	Displacement: "Displacement (kg)",
	Volume:       "Volume (m³)",
	KB:           "KB (m)",
	LCB:          "LCB (m)",
	LCF:          "LCF (m)",
	BMt:          "BMt (m)",
	GMt:          "GMt (m)",
	Awp:          "Awp (m²)",
	Iwp:          "Iwp (m⁴)",
	Cb:           "Cb",
	Cp:           "Cp",
	Cm:           "Cm",
	Cwp:          "Cwp",
}

// Point is one sample of a hydrostatic curve.
type Point struct {
	X float64 `json:"x"` // draft, m
	Y float64 `json:"y"`
}

// Curve is a hydrostatic property as a function of draft, ascending.
type Curve struct {
	Type   Type    `json:"type"`
	XLabel string  `json:"xLabel"`
	YLabel string  `json:"yLabel"`
	Points []Point `json:"points"`
}

// project extracts the scalar for a curve type from a hydro result.
func project(t Type, r *hydro.Result) (float64, error) {
	switch t {
	case Displacement:
		return r.Displacement, nil
	case Volume:
		return r.Volume, nil
	case KB:
		return r.KB, nil
	case LCB:
		return r.LCB, nil
	case LCF:
		return r.LCF, nil
	case BMt:
		return r.BMt, nil
	case GMt:
		if r.GMt == nil {
			return 0, fmt.Errorf("gmt curve requires a loadcase with kg")
		}
		return *r.GMt, nil
	case Awp:
		return r.Awp, nil
	case Iwp:
		return r.Iwp, nil
	case Cb:
		return r.Cb, nil
	case Cp:
		return r.Cp, nil
	case Cm:
		return r.Cm, nil
	case Cwp:
		return r.Cwp, nil
	}
	return 0, fmt.Errorf("unknown curve type %q", t)
}

// Generate sweeps the calculator over an evenly spaced draft range and
// projects the requested hydrostatic scalars into curves. Both range
// ends are included; points must be at least 2.
func Generate(calc *hydro.Calculator, lc hydro.Loadcase, types []Type, minDraft, maxDraft float64, points int) (map[Type]*Curve, error) {
	if points == 0 {
		points = DefaultPoints
	}
	if points < 2 {
		return nil, fmt.Errorf("point count must be at least 2, got %d", points)
	}
	if minDraft <= 0 {
		return nil, fmt.Errorf("minimum draft must be positive, got %.3f", minDraft)
	}
	if maxDraft <= minDraft {
		return nil, fmt.Errorf("draft range inverted: min %.3f, max %.3f", minDraft, maxDraft)
	}
	if len(types) == 0 {
		// default set: everything computable from the loadcase given
		for _, t := range AllTypes {
			if t == GMt && lc.KG == nil {
				continue
			}
			types = append(types, t)
		}
	}

	out := make(map[Type]*Curve, len(types))
	for _, t := range types {
		if _, ok := labels[t]; !ok {
			return nil, fmt.Errorf("unknown curve type %q", t)
		}
		out[t] = &Curve{
			Type:   t,
			XLabel: "Draft (m)",
			YLabel: labels[t],
			Points: make([]Point, 0, points),
		}
	}

	step := (maxDraft - minDraft) / float64(points-1)
	for k := 0; k < points; k++ {
		draft := minDraft + float64(k)*step
		if k == points-1 {
			draft = maxDraft
		}

		res, err := calc.ComputeAt(draft, lc)
		if err != nil {
			return nil, fmt.Errorf("draft %.3f: %w", draft, err)
		}
		for _, t := range types {
			y, err := project(t, res)
			if err != nil {
				return nil, err
			}
			out[t].Points = append(out[t].Points, Point{X: draft, Y: y})
		}
	}

	return out, nil
}
