package hydro

import (
	"errors"
	"math"
	"testing"

	"github.com/alexiusacademia/gohydro/internal/hull"
)

func bargeHull() *hull.Hull {
	// 100 m x 20 m barge, 10 m depth, 11 stations, 11 waterlines
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
	return h
}

// triangleHull has V-shaped sections: half-breadth grows linearly from 0
// at the keel to 10 at the deck.
func triangleHull() *hull.Hull {
	h := &hull.Hull{Name: "vee", Lpp: 100, Beam: 20}
	for i := 0; i <= 10; i++ {
		h.Stations = append(h.Stations, hull.Station{Index: i, X: float64(i) * 10})
	}
	for j := 0; j <= 20; j++ {
		h.Waterlines = append(h.Waterlines, hull.Waterline{Index: j, Z: float64(j) * 0.5})
	}
	for i := 0; i <= 10; i++ {
		for j := 0; j <= 20; j++ {
			h.Offsets = append(h.Offsets, hull.Offset{Station: i, Waterline: j, HalfBreadth: float64(j) * 0.5})
		}
	}
	return h
}

func relErr(got, want float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs(got-want) / math.Abs(want)
}

func TestBargeHydrostatics(t *testing.T) {
	calc, err := NewCalculator(bargeHull())
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}

	kg := 4.0
	res, err := calc.ComputeAt(5, Loadcase{Rho: 1025, KG: &kg})
	if err != nil {
		t.Fatalf("ComputeAt(5): %v", err)
	}

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"volume", res.Volume, 10000},
		{"displacement", res.Displacement, 10250000},
		{"kb", res.KB, 2.5},
		{"lcb", res.LCB, 50},
		{"awp", res.Awp, 2000},
		{"iwp", res.Iwp, 20.0 * 20 * 20 * 100 / 12}, // L·B³/12
		{"bmt", res.BMt, 20 * 20 / (12 * 5.0)},    // B²/12T
		{"lcf", res.LCF, 50},
		{"cb", res.Cb, 1},
		{"cp", res.Cp, 1},
		{"cm", res.Cm, 1},
		{"cwp", res.Cwp, 1},
	}
	for _, c := range checks {
		if relErr(c.got, c.want) > 0.005 {
			t.Errorf("%s = %f; want %f within 0.5%%", c.name, c.got, c.want)
		}
	}

	if res.TCB != 0 {
		t.Errorf("tcb = %f; want 0", res.TCB)
	}
	if res.GMt == nil {
		t.Fatal("gmt missing with kg supplied")
	}
	wantGMt := res.KB + res.BMt - kg
	if relErr(*res.GMt, wantGMt) > 1e-12 {
		t.Errorf("gmt = %f; want %f", *res.GMt, wantGMt)
	}
	// longitudinal: BMl = L²/12T for a box
	if relErr(res.BMl, 100*100/(12*5.0)) > 0.005 {
		t.Errorf("bml = %f; want %f", res.BMl, 100*100/(12*5.0))
	}
}

func TestGmOmittedWithoutKG(t *testing.T) {
	calc, _ := NewCalculator(bargeHull())
	res, err := calc.ComputeAt(5, Loadcase{Rho: 1025})
	if err != nil {
		t.Fatalf("ComputeAt: %v", err)
	}
	if res.GMt != nil || res.GMl != nil {
		t.Error("gmt/gml present without kg; want omitted")
	}
}

func TestTriangleHydrostatics(t *testing.T) {
	calc, err := NewCalculator(triangleHull())
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}

	// sectional area at the keel is exactly zero
	a, _, err := calc.SectionAreaAt(0, 0)
	if err != nil || a != 0 {
		t.Errorf("SectionAreaAt(keel) = (%f, %v); want (0, nil)", a, err)
	}

	// area at draft T for y(z)=z is T², exact under the trapezoid rule
	a, zBar, err := calc.SectionAreaAt(5, 5)
	if err != nil {
		t.Fatalf("SectionAreaAt(5): %v", err)
	}
	if relErr(a, 25) > 1e-9 {
		t.Errorf("section area at T=5 = %f; want 25", a)
	}
	// centroid of a V section at 2T/3
	if relErr(zBar, 10.0/3.0) > 0.01 {
		t.Errorf("section centroid at T=5 = %f; want %f within 1%%", zBar, 10.0/3.0)
	}

	res, err := calc.ComputeAt(5, Loadcase{Rho: 1025})
	if err != nil {
		t.Fatalf("ComputeAt: %v", err)
	}
	if relErr(res.Volume, 2500) > 1e-9 {
		t.Errorf("volume = %f; want 2500", res.Volume)
	}
	if relErr(res.KB, 10.0/3.0) > 0.01 {
		t.Errorf("kb = %f; want %f within 1%%", res.KB, 10.0/3.0)
	}
}

func TestVolumeMonotonicWithDraft(t *testing.T) {
	calc, _ := NewCalculator(triangleHull())
	lc := Loadcase{Rho: 1025}

	prev := 0.0
	for draft := 0.5; draft <= 10; draft += 0.5 {
		res, err := calc.ComputeAt(draft, lc)
		if err != nil {
			t.Fatalf("ComputeAt(%f): %v", draft, err)
		}
		if res.Volume < prev {
			t.Errorf("volume at draft %f = %f; shrank from %f", draft, res.Volume, prev)
		}
		prev = res.Volume
	}
}

func TestIdempotence(t *testing.T) {
	calc, _ := NewCalculator(bargeHull())
	kg := 4.0
	lc := Loadcase{Rho: 1025, KG: &kg}

	a, err := calc.ComputeAt(5, lc)
	if err != nil {
		t.Fatalf("ComputeAt: %v", err)
	}
	b, err := calc.ComputeAt(5, lc)
	if err != nil {
		t.Fatalf("ComputeAt: %v", err)
	}
	// Result holds pointers; compare the dereferenced values bit-for-bit.
	av, bv := *a, *b
	av.GMt, av.GMl, bv.GMt, bv.GMl = nil, nil, nil, nil
	if av != bv || *a.GMt != *b.GMt || *a.GMl != *b.GMl {
		t.Error("repeated ComputeAt returned different results")
	}
}

func TestZeroDraftNotComputable(t *testing.T) {
	calc, _ := NewCalculator(bargeHull())
	_, err := calc.ComputeAt(0, Loadcase{Rho: 1025})
	if !IsNotComputable(err) {
		t.Errorf("ComputeAt(0) error = %v; want NotComputableError", err)
	}
}

func TestDraftAboveTable(t *testing.T) {
	calc, _ := NewCalculator(bargeHull())
	lc := Loadcase{Rho: 1025}

	_, err := calc.ComputeAt(12, lc)
	var nc *NotComputableError
	if !IsNotComputable(err) {
		t.Fatalf("ComputeAt(12) error = %v; want NotComputableError", err)
	}
	if ok := errors.As(err, &nc); !ok || nc.Reason != ReasonDraftOutOfRange {
		t.Errorf("reason = %v; want %v", nc.Reason, ReasonDraftOutOfRange)
	}

	// with extrapolation enabled the wall-sided barge just keeps growing
	calc.AllowExtrapolation = true
	res, err := calc.ComputeAt(12, lc)
	if err != nil {
		t.Fatalf("ComputeAt(12, extrapolate): %v", err)
	}
	if relErr(res.Volume, 100*20*12) > 0.005 {
		t.Errorf("extrapolated volume = %f; want %f", res.Volume, 100.0*20*12)
	}
}

func TestParamErrors(t *testing.T) {
	calc, _ := NewCalculator(bargeHull())

	if _, err := calc.ComputeAt(-1, Loadcase{Rho: 1025}); err == nil {
		t.Error("ComputeAt(-1) = nil error; want ParamError")
	}
	if _, err := calc.ComputeAt(5, Loadcase{Rho: 0}); err == nil {
		t.Error("ComputeAt(rho=0) = nil error; want ParamError")
	}
}
