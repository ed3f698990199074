package hydro

import (
	"math"

	"github.com/alexiusacademia/gohydro/internal/hull"
	"github.com/alexiusacademia/gohydro/internal/integrate"
)

// volumes below this are treated as zero displacement
const volumeEps = 1e-9

// Calculator computes hydrostatic properties for a validated hull
// geometry. It holds no mutable state: every ComputeAt call is a pure
// function of the geometry, the draft and the loadcase, so a single
// Calculator may be shared between goroutines.
type Calculator struct {
	Geom *hull.Geometry

	// AllowExtrapolation extends the offsets table linearly above the
	// highest tabulated waterline using the slope of the two topmost
	// waterlines. When false, drafts above the table are rejected with
	// ReasonDraftOutOfRange.
	AllowExtrapolation bool
}

// NewCalculator validates the hull and builds a calculator over it.
func NewCalculator(h *hull.Hull) (*Calculator, error) {
	g, err := hull.Build(h)
	if err != nil {
		return nil, err
	}
	return &Calculator{Geom: g}, nil
}

// SectionAreaAt returns the immersed sectional area (both sides of the
// centerplane) of station i at the given draft, together with the height
// of the section centroid above the keel. Drafts are measured from the
// lowest tabulated waterline.
func (c *Calculator) SectionAreaAt(i int, draft float64) (area, zBar float64, err error) {
	g := c.Geom
	if draft <= 0 {
		return 0, 0, nil
	}
	zw := g.Keel() + draft

	// Sample the half-breadth curve at every tabulated waterline below
	// the waterplane, then close the strip exactly at the waterplane.
	zs := make([]float64, 0, g.NumWaterlines()+1)
	ys := make([]float64, 0, g.NumWaterlines()+1)
	for j := 0; j < g.NumWaterlines(); j++ {
		if z := g.Z[j]; z < zw {
			zs = append(zs, z)
			ys = append(ys, g.OffsetAt(i, j))
		}
	}
	yw, err := g.HalfBreadthAt(i, zw, c.AllowExtrapolation)
	if err != nil {
		return 0, 0, err
	}
	zs = append(zs, zw)
	ys = append(ys, yw)

	// area = 2∫y dz, vertical moment = 2∫y·z dz
	half := integrate.Integrate(zs, ys)
	mz := make([]float64, len(zs))
	for k := range zs {
		mz[k] = ys[k] * zs[k]
	}
	moment := integrate.Integrate(zs, mz)

	area = 2 * half
	if area > 0 {
		zBar = moment/half - g.Keel()
	}
	return area, zBar, nil
}

// ComputeAt computes the full set of hydrostatic properties at a draft.
func (c *Calculator) ComputeAt(draft float64, lc Loadcase) (*Result, error) {
	if lc.Rho <= 0 {
		return nil, paramErrorf("fluid density must be positive, got %.3f", lc.Rho)
	}
	if draft < 0 {
		return nil, paramErrorf("draft must not be negative, got %.3f", draft)
	}
	if draft == 0 {
		return nil, &NotComputableError{Draft: draft, Reason: ReasonZeroVolume}
	}

	g := c.Geom
	zw := g.Keel() + draft
	if zw > g.Depth() && !c.AllowExtrapolation {
		return nil, &NotComputableError{Draft: draft, Reason: ReasonDraftOutOfRange}
	}

	n := g.NumStations()
	areas := make([]float64, n)   // immersed section areas A(x)
	zBars := make([]float64, n)   // section centroid heights above keel
	breadth := make([]float64, n) // waterplane half-breadths y(x)
	for i := 0; i < n; i++ {
		a, zb, err := c.SectionAreaAt(i, draft)
		if err != nil {
			return nil, &NotComputableError{Draft: draft, Reason: ReasonDraftOutOfRange}
		}
		areas[i] = a
		zBars[i] = zb
		y, err := g.HalfBreadthAt(i, zw, c.AllowExtrapolation)
		if err != nil {
			return nil, &NotComputableError{Draft: draft, Reason: ReasonDraftOutOfRange}
		}
		breadth[i] = y
	}

	volume := integrate.Integrate(g.X, areas)
	if volume < volumeEps {
		return nil, &NotComputableError{Draft: draft, Reason: ReasonZeroVolume}
	}

	res := &Result{
		Draft:        draft,
		Volume:       volume,
		Displacement: volume * lc.Rho,
	}

	// Centers of buoyancy from the first moments of the section-area curve.
	vz := make([]float64, n)
	vx := make([]float64, n)
	for i := 0; i < n; i++ {
		vz[i] = areas[i] * zBars[i]
		vx[i] = areas[i] * g.X[i]
	}
	res.KB = integrate.Integrate(g.X, vz) / volume
	res.LCB = integrate.Integrate(g.X, vx) / volume
	res.TCB = 0 // port/starboard symmetry

	// Waterplane properties by strip theory over the half-breadths at
	// the current waterline.
	awpHalf := integrate.Integrate(g.X, breadth)
	res.Awp = 2 * awpHalf

	wx := make([]float64, n)
	wxx := make([]float64, n)
	wy3 := make([]float64, n)
	for i := 0; i < n; i++ {
		wx[i] = breadth[i] * g.X[i]
		wxx[i] = breadth[i] * g.X[i] * g.X[i]
		wy3[i] = breadth[i] * breadth[i] * breadth[i] / 3
	}
	if res.Awp > 0 {
		res.LCF = 2 * integrate.Integrate(g.X, wx) / res.Awp
	}
	res.Iwp = 2 * integrate.Integrate(g.X, wy3)
	// longitudinal second moment about the center of flotation
	res.IwpL = 2*integrate.Integrate(g.X, wxx) - res.Awp*res.LCF*res.LCF

	res.BMt = res.Iwp / volume
	res.BMl = res.IwpL / volume

	if lc.KG != nil {
		gmt := res.KB + res.BMt - *lc.KG
		gml := res.KB + res.BMl - *lc.KG
		res.GMt = &gmt
		res.GMl = &gml
	}

	res.MidshipArea = areas[c.midshipStation()]

	// Form coefficients against the principal dimensions.
	lpp := g.Hull.Lpp
	beam := g.Hull.Beam
	res.Cb = volume / (lpp * beam * draft)
	res.Cm = res.MidshipArea / (beam * draft)
	if res.Cm > 0 {
		res.Cp = res.Cb / res.Cm
	}
	res.Cwp = res.Awp / (lpp * beam)

	return res, nil
}

// midshipStation returns the index of the station closest to the middle
// of the station range.
func (c *Calculator) midshipStation() int {
	g := c.Geom
	mid := (g.X[0] + g.X[len(g.X)-1]) / 2

	best := 0
	bestDist := math.Abs(g.X[0] - mid)
	for i := 1; i < len(g.X); i++ {
		if d := math.Abs(g.X[i] - mid); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
