// Package integrate provides 1-D numerical integration of tabulated
// samples. It is the single quadrature routine shared by the sectional
// area, volume, waterplane and stability-curve computations.
package integrate

import "math"

// relative tolerance used to decide whether sample spacing is uniform
const spacingTol = 1e-9

// Integrate returns the definite integral of y over x for an ordered
// sample sequence. When the number of intervals is even and the spacing
// uniform it applies composite Simpson's 1/3 rule; otherwise it falls
// back to the composite trapezoidal rule. Fewer than 2 points integrate
// to 0.
func Integrate(x, y []float64) float64 {
	n := len(x)
	if n < 2 || len(y) != n {
		return 0
	}

	if (n-1)%2 == 0 && uniform(x) {
		return simpson(x, y)
	}
	return Trapezoid(x, y)
}

// Trapezoid returns the composite trapezoidal integral of y over x.
// It is exposed separately because righting-arm area criteria are
// defined in terms of trapezoidal integration regardless of spacing.
func Trapezoid(x, y []float64) float64 {
	if len(x) < 2 || len(y) != len(x) {
		return 0
	}
	var sum float64
	for i := 0; i < len(x)-1; i++ {
		sum += 0.5 * (y[i] + y[i+1]) * (x[i+1] - x[i])
	}
	return sum
}

// simpson applies composite Simpson's 1/3 rule. The caller guarantees an
// odd point count and uniform spacing.
func simpson(x, y []float64) float64 {
	n := len(x)
	h := (x[n-1] - x[0]) / float64(n-1)

	sum := y[0] + y[n-1]
	for i := 1; i < n-1; i++ {
		if i%2 == 1 {
			sum += 4 * y[i]
		} else {
			sum += 2 * y[i]
		}
	}
	return h / 3 * sum
}

func uniform(x []float64) bool {
	n := len(x)
	h := (x[n-1] - x[0]) / float64(n-1)
	if h == 0 {
		return true
	}
	for i := 1; i < n; i++ {
		if math.Abs((x[i]-x[i-1])-h) > spacingTol*math.Max(1, math.Abs(h)) {
			return false
		}
	}
	return true
}
