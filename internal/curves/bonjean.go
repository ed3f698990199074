// Package curves builds hydrostatic design curves by sweeping the
// calculator across a draft range: Bonjean sectional-area curves and
// property-vs-draft curves for the conventional hydrostatic scalars.
package curves

import (
	"github.com/alexiusacademia/gohydro/internal/hydro"
)

// BonjeanPoint is one sample of a Bonjean curve: the immersed sectional
// area of a station at a draft.
type BonjeanPoint struct {
	Draft float64 `json:"draft"`
	Area  float64 `json:"area"`
}

// BonjeanCurve is the sectional area of one station as a function of
// draft, sampled at the tabulated waterlines.
type BonjeanCurve struct {
	Station  int            `json:"station"`
	StationX float64        `json:"stationX"`
	Points   []BonjeanPoint `json:"points"`
}

// Bonjean computes one curve per station. The tabulated waterline
// heights are the draft samples: each point is the sectional area with
// the waterplane at that height, doubled for symmetry by the calculator.
func Bonjean(calc *hydro.Calculator) ([]BonjeanCurve, error) {
	g := calc.Geom

	out := make([]BonjeanCurve, g.NumStations())
	for i := 0; i < g.NumStations(); i++ {
		curve := BonjeanCurve{
			Station:  g.Hull.Stations[i].Index,
			StationX: g.X[i],
			Points:   make([]BonjeanPoint, g.NumWaterlines()),
		}
		for j := 0; j < g.NumWaterlines(); j++ {
			draft := g.Z[j] - g.Keel()
			area, _, err := calc.SectionAreaAt(i, draft)
			if err != nil {
				return nil, err
			}
			curve.Points[j] = BonjeanPoint{Draft: draft, Area: area}
		}
		out[i] = curve
	}
	return out, nil
}
