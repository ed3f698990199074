package curves

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gohydro/internal/hull"
	"github.com/alexiusacademia/gohydro/internal/hydro"
)

func bargeCalc(t *testing.T) *hydro.Calculator {
	t.Helper()
	h := &hull.Hull{Name: "barge", Lpp: 100, Beam: 20}
	for i := 0; i <= 10; i++ {
		h.Stations = append(h.Stations, hull.Station{Index: i, X: float64(i) * 10})
	}
	for j := 0; j <= 10; j++ {
		h.Waterlines = append(h.Waterlines, hull.Waterline{Index: j, Z: float64(j)})
	}
	for i := 0; i <= 10; i++ {
		for j := 0; j <= 10; j++ {
			h.Offsets = append(h.Offsets, hull.Offset{Station: i, Waterline: j, HalfBreadth: 10})
		}
	}
	calc, err := hydro.NewCalculator(h)
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}
	return calc
}

func veeCalc(t *testing.T) *hydro.Calculator {
	t.Helper()
	h := &hull.Hull{Name: "vee", Lpp: 100, Beam: 20}
	for i := 0; i <= 4; i++ {
		h.Stations = append(h.Stations, hull.Station{Index: i, X: float64(i) * 25})
	}
	for j := 0; j <= 10; j++ {
		h.Waterlines = append(h.Waterlines, hull.Waterline{Index: j, Z: float64(j)})
	}
	for i := 0; i <= 4; i++ {
		for j := 0; j <= 10; j++ {
			h.Offsets = append(h.Offsets, hull.Offset{Station: i, Waterline: j, HalfBreadth: float64(j)})
		}
	}
	calc, err := hydro.NewCalculator(h)
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}
	return calc
}

func TestBonjeanBarge(t *testing.T) {
	calc := bargeCalc(t)
	bj, err := Bonjean(calc)
	if err != nil {
		t.Fatalf("Bonjean: %v", err)
	}
	if len(bj) != 11 {
		t.Fatalf("got %d curves; want 11 (one per station)", len(bj))
	}

	for _, c := range bj {
		if len(c.Points) != 11 {
			t.Fatalf("station %d: %d points; want 11", c.Station, len(c.Points))
		}
		for j, p := range c.Points {
			want := 20 * p.Draft // full breadth × draft for a box
			if math.Abs(p.Area-want) > 1e-9 {
				t.Errorf("station %d point %d: area = %f; want %f", c.Station, j, p.Area, want)
			}
		}
	}
}

func TestBonjeanMonotonic(t *testing.T) {
	calc := veeCalc(t)
	bj, err := Bonjean(calc)
	if err != nil {
		t.Fatalf("Bonjean: %v", err)
	}

	for _, c := range bj {
		if c.Points[0].Area != 0 {
			t.Errorf("station %d: area at keel = %f; want 0", c.Station, c.Points[0].Area)
		}
		for j := 1; j < len(c.Points); j++ {
			if c.Points[j].Area < c.Points[j-1].Area {
				t.Errorf("station %d: area shrank between drafts %f and %f", c.Station, c.Points[j-1].Draft, c.Points[j].Draft)
			}
			if c.Points[j].Draft <= c.Points[j-1].Draft {
				t.Errorf("station %d: drafts not ascending", c.Station)
			}
		}
	}
}

func TestGenerateDisplacementCurve(t *testing.T) {
	calc := bargeCalc(t)
	out, err := Generate(calc, hydro.Loadcase{Rho: 1025}, []Type{Displacement, KB}, 1, 5, 5)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	disp := out[Displacement]
	if disp == nil || len(disp.Points) != 5 {
		t.Fatalf("displacement curve missing or wrong length: %+v", disp)
	}
	if disp.Points[0].X != 1 || disp.Points[4].X != 5 {
		t.Errorf("curve range = [%f, %f]; want [1, 5] inclusive", disp.Points[0].X, disp.Points[4].X)
	}
	for _, p := range disp.Points {
		want := 100 * 20 * p.X * 1025
		if math.Abs(p.Y-want)/want > 0.005 {
			t.Errorf("displacement at draft %f = %f; want %f", p.X, p.Y, want)
		}
	}

	kb := out[KB]
	for _, p := range kb.Points {
		if math.Abs(p.Y-p.X/2)/p.X > 0.005 {
			t.Errorf("kb at draft %f = %f; want T/2", p.X, p.Y)
		}
	}
}

func TestGenerateDefaultsAndErrors(t *testing.T) {
	calc := bargeCalc(t)
	lc := hydro.Loadcase{Rho: 1025}

	out, err := Generate(calc, lc, []Type{Volume}, 1, 5, 0)
	if err != nil {
		t.Fatalf("Generate(default points): %v", err)
	}
	if len(out[Volume].Points) != DefaultPoints {
		t.Errorf("default point count = %d; want %d", len(out[Volume].Points), DefaultPoints)
	}

	if _, err := Generate(calc, lc, nil, 1, 5, 1); err == nil {
		t.Error("Generate(points=1) = nil error; want error")
	}
	if _, err := Generate(calc, lc, nil, 5, 1, 10); err == nil {
		t.Error("Generate(inverted range) = nil error; want error")
	}
	if _, err := Generate(calc, lc, []Type{GMt}, 1, 5, 5); err == nil {
		t.Error("Generate(gmt without kg) = nil error; want error")
	}
	if _, err := Generate(calc, lc, []Type{"bogus"}, 1, 5, 5); err == nil {
		t.Error("Generate(unknown type) = nil error; want error")
	}
}

func TestGenerateDefaultTypesWithoutKG(t *testing.T) {
	calc := bargeCalc(t)
	out, err := Generate(calc, hydro.Loadcase{Rho: 1025}, nil, 1, 5, 5)
	if err != nil {
		t.Fatalf("Generate(default types, no kg): %v", err)
	}
	if _, ok := out[GMt]; ok {
		t.Error("gmt curve generated without kg")
	}
	if len(out) != len(AllTypes)-1 {
		t.Errorf("got %d curves; want %d", len(out), len(AllTypes)-1)
	}
}

func TestGenerateAllTypesWithKG(t *testing.T) {
	calc := bargeCalc(t)
	kg := 4.0
	out, err := Generate(calc, hydro.Loadcase{Rho: 1025, KG: &kg}, nil, 1, 5, 5)
	if err != nil {
		t.Fatalf("Generate(all types): %v", err)
	}
	if len(out) != len(AllTypes) {
		t.Errorf("got %d curves; want %d", len(out), len(AllTypes))
	}
	for ty, c := range out {
		if len(c.Points) != 5 {
			t.Errorf("%s: %d points; want 5", ty, len(c.Points))
		}
	}
}
