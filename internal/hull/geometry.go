package hull

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFromFile loads a hull definition from a JSON offsets file
func LoadFromFile(filepath string) (*Hull, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var h Hull
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, err
	}

	if err := h.Validate(); err != nil {
		return nil, err
	}

	return &h, nil
}

// Geometry is the validated, indexable form of a Hull: the same stations
// and waterlines plus the offsets rearranged into a dense
// [station][waterline] grid. It is immutable once built.
type Geometry struct {
	Hull *Hull

	X []float64 // station positions, ascending
	Z []float64 // waterline heights, ascending

	// grid[i][j] is the half-breadth at station i, waterline j
	grid [][]float64
}

// Build validates the hull and arranges its offsets into a dense grid.
func Build(h *Hull) (*Geometry, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}

	g := &Geometry{
		Hull: h,
		X:    make([]float64, len(h.Stations)),
		Z:    make([]float64, len(h.Waterlines)),
		grid: make([][]float64, len(h.Stations)),
	}

	sPos := make(map[int]int, len(h.Stations))
	for i, s := range h.Stations {
		g.X[i] = s.X
		sPos[s.Index] = i
		g.grid[i] = make([]float64, len(h.Waterlines))
	}
	wPos := make(map[int]int, len(h.Waterlines))
	for j, w := range h.Waterlines {
		g.Z[j] = w.Z
		wPos[w.Index] = j
	}

	for _, o := range h.Offsets {
		g.grid[sPos[o.Station]][wPos[o.Waterline]] = o.HalfBreadth
	}

	return g, nil
}

// NumStations returns the number of stations in the grid.
func (g *Geometry) NumStations() int { return len(g.X) }

// NumWaterlines returns the number of tabulated waterlines.
func (g *Geometry) NumWaterlines() int { return len(g.Z) }

// Keel returns the height of the lowest tabulated waterline.
func (g *Geometry) Keel() float64 { return g.Z[0] }

// Depth returns the height of the highest tabulated waterline.
func (g *Geometry) Depth() float64 { return g.Z[len(g.Z)-1] }

// OffsetAt returns the tabulated half-breadth at station i, waterline j.
func (g *Geometry) OffsetAt(i, j int) float64 { return g.grid[i][j] }

// HalfBreadthAt returns the half-breadth of station i at height z,
// interpolating linearly between tabulated waterlines. Below the keel the
// half-breadth is 0. Above the highest waterline, extrapolate selects
// between a linear extension of the last two waterlines' slope and a hard
// error.
func (g *Geometry) HalfBreadthAt(i int, z float64, extrapolate bool) (float64, error) {
	zs := g.Z
	n := len(zs)

	if z < zs[0] {
		return 0, nil
	}
	if z > zs[n-1] {
		if !extrapolate {
			return 0, fmt.Errorf("height %.3f above highest tabulated waterline %.3f", z, zs[n-1])
		}
		// Extend the slope of the two topmost waterlines, clamped so the
		// half-breadth cannot go negative.
		dz := zs[n-1] - zs[n-2]
		if dz == 0 {
			return g.grid[i][n-1], nil
		}
		slope := (g.grid[i][n-1] - g.grid[i][n-2]) / dz
		y := g.grid[i][n-1] + slope*(z-zs[n-1])
		if y < 0 {
			y = 0
		}
		return y, nil
	}

	// Find the bracketing waterline pair. Grids are small (tens of
	// waterlines) so a linear scan is fine.
	for j := 1; j < n; j++ {
		if z <= zs[j] {
			dz := zs[j] - zs[j-1]
			if dz == 0 {
				return g.grid[i][j], nil
			}
			t := (z - zs[j-1]) / dz
			return g.grid[i][j-1] + t*(g.grid[i][j]-g.grid[i][j-1]), nil
		}
	}
	return g.grid[i][n-1], nil
}
