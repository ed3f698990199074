package stability

import (
	"math"

	"github.com/alexiusacademia/gohydro/internal/hull"
	"github.com/alexiusacademia/gohydro/internal/integrate"
)

// point is a 2-D vertex of a station cross-section, y transverse from
// the centerline, z vertical above the baseline.
type point struct {
	y, z float64
}

// sectionPolygon builds the full closed cross-section of station i by
// mirroring the tabulated half-breadths about the centerplane. Topsides
// above the highest tabulated waterline are carried up wall-sided so the
// section stays closed when the heeled waterplane climbs past the
// offsets table.
func sectionPolygon(g *hull.Geometry, i int, topExtension float64) []point {
	n := g.NumWaterlines()
	top := g.Depth() + topExtension

	poly := make([]point, 0, 2*n+2)
	// starboard side, keel up
	for j := 0; j < n; j++ {
		poly = append(poly, point{y: g.OffsetAt(i, j), z: g.Z[j]})
	}
	yTop := g.OffsetAt(i, n-1)
	poly = append(poly, point{y: yTop, z: top})
	// across the deck and down the port side
	poly = append(poly, point{y: -yTop, z: top})
	for j := n - 1; j >= 0; j-- {
		poly = append(poly, point{y: -g.OffsetAt(i, j), z: g.Z[j]})
	}
	return poly
}

// clipBelow clips a closed polygon against the half-plane
// z·cosθ − y·sinθ ≤ t, the immersed side of a waterplane heeled by θ.
// Standard Sutherland-Hodgman against a single edge.
func clipBelow(poly []point, sinT, cosT, t float64) []point {
	if len(poly) == 0 {
		return nil
	}
	depth := func(p point) float64 {
		return p.z*cosT - p.y*sinT - t
	}

	var out []point
	prev := poly[len(poly)-1]
	dPrev := depth(prev)
	for _, cur := range poly {
		dCur := depth(cur)
		if dPrev <= 0 {
			out = append(out, prev)
			if dCur > 0 {
				out = append(out, intersect(prev, cur, dPrev, dCur))
			}
		} else if dCur <= 0 {
			out = append(out, intersect(prev, cur, dPrev, dCur))
		}
		prev, dPrev = cur, dCur
	}
	return out
}

func intersect(a, b point, da, db float64) point {
	t := da / (da - db)
	return point{
		y: a.y + t*(b.y-a.y),
		z: a.z + t*(b.z-a.z),
	}
}

// areaCentroid returns the area and centroid of a simple polygon using
// the shoelace formula.
func areaCentroid(poly []point) (area, cy, cz float64) {
	n := len(poly)
	if n < 3 {
		return 0, 0, 0
	}

	var signedArea, sumY, sumZ float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := poly[i].y*poly[j].z - poly[j].y*poly[i].z
		signedArea += cross
		sumY += (poly[i].y + poly[j].y) * cross
		sumZ += (poly[i].z + poly[j].z) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)
	if area > 0 {
		cy = sumY / (6 * signedArea)
		cz = sumZ / (6 * signedArea)
	}
	return area, cy, cz
}

// heeledSections holds the per-station cross-section polygons reused
// across the heel sweep.
type heeledSections struct {
	x     []float64
	polys [][]point
}

func buildSections(g *hull.Geometry, topExtension float64) *heeledSections {
	hs := &heeledSections{
		x:     g.X,
		polys: make([][]point, g.NumStations()),
	}
	for i := range hs.polys {
		hs.polys[i] = sectionPolygon(g, i, topExtension)
	}
	return hs
}

// immersion integrates the clipped sections at heel θ and waterplane
// offset t: displaced volume and the volume centroid in section
// coordinates.
func (hs *heeledSections) immersion(sinT, cosT, t float64) (vol, yB, zB float64) {
	n := len(hs.polys)
	areas := make([]float64, n)
	my := make([]float64, n)
	mz := make([]float64, n)
	for i, poly := range hs.polys {
		a, cy, cz := areaCentroid(clipBelow(poly, sinT, cosT, t))
		areas[i] = a
		my[i] = a * cy
		mz[i] = a * cz
	}

	vol = integrate.Integrate(hs.x, areas)
	if vol > 0 {
		yB = integrate.Integrate(hs.x, my) / vol
		zB = integrate.Integrate(hs.x, mz) / vol
	}
	return vol, yB, zB
}

// waterplaneFor finds, by bisection, the waterplane offset t at which
// the heeled displaced volume equals the target upright volume. The
// immersed volume grows monotonically with t, so bisection between the
// lowest and highest vertex depths always converges.
func (hs *heeledSections) waterplaneFor(sinT, cosT, target float64) float64 {
	lo := math.Inf(1)
	hi := math.Inf(-1)
	for _, poly := range hs.polys {
		for _, p := range poly {
			d := p.z*cosT - p.y*sinT
			lo = math.Min(lo, d)
			hi = math.Max(hi, d)
		}
	}

	for iter := 0; iter < 100; iter++ {
		mid := (lo + hi) / 2
		vol, _, _ := hs.immersion(sinT, cosT, mid)
		if vol < target {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo < 1e-10 {
			break
		}
	}
	return (lo + hi) / 2
}
