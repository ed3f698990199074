package integrate

import (
	"math"
	"testing"
)

func TestIntegrateDegenerate(t *testing.T) {
	if v := Integrate(nil, nil); v != 0 {
		t.Errorf("Integrate(nil) = %f; want 0", v)
	}
	if v := Integrate([]float64{1}, []float64{5}); v != 0 {
		t.Errorf("Integrate(single point) = %f; want 0", v)
	}
	if v := Integrate([]float64{1, 2}, []float64{5}); v != 0 {
		t.Errorf("Integrate(mismatched lengths) = %f; want 0", v)
	}
}

func TestIntegrateConstant(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{3, 3, 3, 3, 3}
	if v := Integrate(x, y); math.Abs(v-12) > 1e-12 {
		t.Errorf("Integrate(const 3 over [0,4]) = %f; want 12", v)
	}
}

// Simpson's rule is exact for cubics.
func TestIntegrateCubicExact(t *testing.T) {
	x := make([]float64, 9)
	y := make([]float64, 9)
	for i := range x {
		x[i] = float64(i) * 0.5
		y[i] = x[i] * x[i] * x[i]
	}
	// integral of x^3 over [0,4] = 4^4/4 = 64
	if v := Integrate(x, y); math.Abs(v-64) > 1e-9 {
		t.Errorf("Integrate(x^3 over [0,4]) = %f; want 64 exactly", v)
	}
}

func TestIntegrateParabola(t *testing.T) {
	x := make([]float64, 11)
	y := make([]float64, 11)
	for i := range x {
		x[i] = float64(i) * 0.1
		y[i] = x[i] * x[i]
	}
	// integral of x^2 over [0,1] = 1/3; even point count forces the
	// trapezoid fallback whose error bound is h^2/12 * max|f''| = 1/600
	v := Integrate(x, y)
	if math.Abs(v-1.0/3.0) > 1.0/600.0 {
		t.Errorf("Integrate(x^2 over [0,1]) = %f; want 1/3 within trapezoid bound", v)
	}
}

func TestIntegrateIrregularSpacing(t *testing.T) {
	// linear function: trapezoid is exact regardless of spacing
	x := []float64{0, 0.5, 2, 3.5, 4}
	y := make([]float64, len(x))
	for i := range x {
		y[i] = 2*x[i] + 1
	}
	// integral of 2x+1 over [0,4] = 16 + 4 = 20
	if v := Integrate(x, y); math.Abs(v-20) > 1e-12 {
		t.Errorf("Integrate(2x+1 irregular) = %f; want 20", v)
	}
}

func TestTrapezoid(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{0, 1, 0}
	if v := Trapezoid(x, y); math.Abs(v-1) > 1e-12 {
		t.Errorf("Trapezoid(triangle) = %f; want 1", v)
	}
}
