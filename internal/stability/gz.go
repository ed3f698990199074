// Package stability generates large-angle righting-arm (GZ) curves from
// hull offsets, either by the wall-sided approximation or by direct
// re-immersion of the heeled sections, and derives the summary values
// used by intact-stability criteria.
package stability

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gohydro/internal/hydro"
	"github.com/alexiusacademia/gohydro/internal/integrate"
)

// Method selects how KN is computed at each heel angle.
type Method string

const (
	// WallSided evaluates the wall-sided approximation from the upright
	// hydrostatics. Adequate for small to moderate heel on hulls with
	// near-vertical sides at the waterline.
	WallSided Method = "wallsided"

	// FullImmersion re-integrates the immersed cross-sections against
	// the rotated waterplane at every angle, balancing displacement by
	// bisection. Valid to large angles including deck-edge immersion.
	FullImmersion Method = "immersion"
)

// ParseMethod maps a user-supplied method name to a Method.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case WallSided:
		return WallSided, nil
	case FullImmersion:
		return FullImmersion, nil
	}
	return "", fmt.Errorf("unknown stability method %q (want %q or %q)", s, WallSided, FullImmersion)
}

// Point is one sample of a stability curve.
type Point struct {
	Angle float64 `json:"angle"` // heel, degrees
	GZ    float64 `json:"gz"`    // righting arm, m
	KN    float64 `json:"kn"`    // cross curve value, m
}

// Curve is a righting-arm curve with the summary scalars derived from
// it. Areas are in meter-radians as required by intact-stability
// criteria.
type Curve struct {
	Method Method  `json:"method"`
	Draft  float64 `json:"draft"`
	KG     float64 `json:"kg"`

	Points []Point `json:"points"`

	MaxGZ        float64 `json:"maxGz"`
	AngleAtMaxGZ float64 `json:"angleAtMaxGz"`

	// VanishingAngle is the heel angle where GZ crosses from positive
	// to non-positive, found by linear interpolation between samples.
	// When the curve never crosses zero within the swept range it is
	// set to the last swept angle and Truncated is true.
	VanishingAngle float64 `json:"vanishingAngle"`
	Truncated      bool    `json:"truncated"`

	AreaTo30          float64 `json:"areaTo30"`          // m·rad, 0°–30°
	Area30ToVanishing float64 `json:"area30ToVanishing"` // m·rad, 30°–vanishing

	InitialGMT   float64 `json:"initialGmt"`
	Displacement float64 `json:"displacement"`
}

// Generate computes the GZ/KN curve at a fixed draft over a heel range
// in degrees. The loadcase must carry KG.
func Generate(calc *hydro.Calculator, lc hydro.Loadcase, draft, minAngle, maxAngle, step float64, method Method) (*Curve, error) {
	if lc.KG == nil {
		return nil, fmt.Errorf("stability curve requires a loadcase with kg")
	}
	if minAngle >= maxAngle {
		return nil, fmt.Errorf("angle range inverted: min %.1f, max %.1f", minAngle, maxAngle)
	}
	if step <= 0 {
		return nil, fmt.Errorf("angle increment must be positive, got %.3f", step)
	}
	if minAngle < 0 {
		return nil, fmt.Errorf("minimum heel angle must not be negative, got %.1f", minAngle)
	}

	upright, err := calc.ComputeAt(draft, lc)
	if err != nil {
		return nil, err
	}

	kg := *lc.KG
	curve := &Curve{
		Method:       method,
		Draft:        draft,
		KG:           kg,
		InitialGMT:   *upright.GMt,
		Displacement: upright.Displacement,
	}

	var kn func(thetaDeg float64) (float64, error)
	switch method {
	case WallSided:
		kn = func(thetaDeg float64) (float64, error) {
			theta := thetaDeg * math.Pi / 180
			s := math.Sin(theta)
			tan := math.Tan(theta)
			return s * (upright.KB + upright.BMt*(1+tan*tan/2)), nil
		}
	case FullImmersion:
		// Topsides above the offsets table are carried up wall-sided by
		// one beam so the section stays closed at large heel.
		sections := buildSections(calc.Geom, calc.Geom.Hull.Beam)
		keel := calc.Geom.Keel()
		kn = func(thetaDeg float64) (float64, error) {
			theta := thetaDeg * math.Pi / 180
			sinT, cosT := math.Sin(theta), math.Cos(theta)
			t := sections.waterplaneFor(sinT, cosT, upright.Volume)
			vol, yB, zB := sections.immersion(sinT, cosT, t)
			if vol <= 0 {
				return 0, fmt.Errorf("no immersed volume at heel %.1f°", thetaDeg)
			}
			return yB*cosT + (zB-keel)*sinT, nil
		}
	default:
		return nil, fmt.Errorf("unknown stability method %q", method)
	}

	for a := minAngle; a <= maxAngle+1e-9; a += step {
		k, err := kn(a)
		if err != nil {
			return nil, err
		}
		gz := k - kg*math.Sin(a*math.Pi/180)
		curve.Points = append(curve.Points, Point{Angle: a, GZ: gz, KN: k})
	}

	summarize(curve)
	return curve, nil
}

// summarize derives the maximum, the vanishing angle and the criterion
// areas from the sampled points.
func summarize(c *Curve) {
	pts := c.Points
	if len(pts) == 0 {
		return
	}

	c.MaxGZ = pts[0].GZ
	c.AngleAtMaxGZ = pts[0].Angle
	for _, p := range pts[1:] {
		if p.GZ > c.MaxGZ {
			c.MaxGZ = p.GZ
			c.AngleAtMaxGZ = p.Angle
		}
	}

	// Vanishing angle: exact linear-interpolated root of the first
	// positive-to-non-positive crossing, not snapped to the grid.
	c.VanishingAngle = pts[len(pts)-1].Angle
	c.Truncated = true
	for i := 0; i < len(pts)-1; i++ {
		if pts[i].GZ > 0 && pts[i+1].GZ <= 0 {
			frac := pts[i].GZ / (pts[i].GZ - pts[i+1].GZ)
			c.VanishingAngle = pts[i].Angle + frac*(pts[i+1].Angle-pts[i].Angle)
			c.Truncated = false
			break
		}
	}

	c.AreaTo30 = areaUnder(pts, 0, 30)
	c.Area30ToVanishing = areaUnder(pts, 30, c.VanishingAngle)
}

// areaUnder integrates GZ over [from, to] degrees by the trapezoidal
// rule with the angle converted to radians, interpolating GZ at the
// interval boundaries. Intact-stability areas are meter-radians, never
// meter-degrees.
func areaUnder(pts []Point, from, to float64) float64 {
	if to <= from || len(pts) < 2 {
		return 0
	}
	from = math.Max(from, pts[0].Angle)
	to = math.Min(to, pts[len(pts)-1].Angle)
	if to <= from {
		return 0
	}

	var xs, ys []float64
	xs = append(xs, from*math.Pi/180)
	ys = append(ys, gzAt(pts, from))
	for _, p := range pts {
		if p.Angle > from && p.Angle < to {
			xs = append(xs, p.Angle*math.Pi/180)
			ys = append(ys, p.GZ)
		}
	}
	xs = append(xs, to*math.Pi/180)
	ys = append(ys, gzAt(pts, to))

	return integrate.Trapezoid(xs, ys)
}

// gzAt linearly interpolates GZ at an angle inside the sampled range.
func gzAt(pts []Point, angle float64) float64 {
	if angle <= pts[0].Angle {
		return pts[0].GZ
	}
	for i := 1; i < len(pts); i++ {
		if angle <= pts[i].Angle {
			da := pts[i].Angle - pts[i-1].Angle
			if da == 0 {
				return pts[i].GZ
			}
			t := (angle - pts[i-1].Angle) / da
			return pts[i-1].GZ + t*(pts[i].GZ-pts[i-1].GZ)
		}
	}
	return pts[len(pts)-1].GZ
}
