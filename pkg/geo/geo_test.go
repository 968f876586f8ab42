package geo

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// --- Vector3 tests ---

func TestVectorLength(t *testing.T) {
	v := Vec(3, 4, 12)
	if !approxEqual(v.Length(), 13, tolerance) {
		t.Errorf("expected length 13, got %f", v.Length())
	}
}

func TestVectorAddSub(t *testing.T) {
	a := Vec(1, 2, 3)
	b := Vec(4, 5, 6)
	sum := a.Add(b)
	if sum != Vec(5, 7, 9) {
		t.Errorf("expected (5,7,9), got %v", sum)
	}
	if sum.Sub(b) != a {
		t.Errorf("expected %v, got %v", a, sum.Sub(b))
	}
}

func TestVectorNormalize(t *testing.T) {
	v := Vec(3, 4, 0).Normalize()
	if !approxEqual(v.Length(), 1, tolerance) {
		t.Errorf("expected unit length, got %f", v.Length())
	}
	zero := Vec(0, 0, 0).Normalize()
	if zero != (Vector3{}) {
		t.Errorf("expected zero vector, got %v", zero)
	}
}

func TestVectorCross(t *testing.T) {
	x := Vec(1, 0, 0)
	y := Vec(0, 1, 0)
	z := x.Cross(y)
	if z != Vec(0, 0, 1) {
		t.Errorf("expected (0,0,1), got %v", z)
	}
	if !approxEqual(x.Dot(y), 0, tolerance) {
		t.Errorf("expected orthogonal vectors, dot = %f", x.Dot(y))
	}
}

func TestVectorDistance(t *testing.T) {
	a := Vec(1, 1, 1)
	b := Vec(4, 5, 1)
	if !approxEqual(a.Distance(b), 5, tolerance) {
		t.Errorf("expected distance 5, got %f", a.Distance(b))
	}
}

// --- Polar conversion tests ---

func TestFromPolarDueNorth(t *testing.T) {
	v := FromPolar(10, 0, 0)
	if !approxEqual(v.X, 0, tolerance) || !approxEqual(v.Y, 10, tolerance) || !approxEqual(v.Z, 0, tolerance) {
		t.Errorf("azimuth 0 should point north (+Y), got %v", v)
	}
}

func TestFromPolarDueEast(t *testing.T) {
	v := FromPolar(10, math.Pi/2, 0)
	if !approxEqual(v.X, 10, tolerance) || !approxEqual(v.Y, 0, tolerance) {
		t.Errorf("azimuth 90deg should point east (+X), got %v", v)
	}
}

func TestFromPolarVertical(t *testing.T) {
	up := FromPolar(7, 1.2, math.Pi/2)
	if !approxEqual(up.Z, 7, tolerance) || !approxEqual(up.X, 0, 1e-9) || !approxEqual(up.Y, 0, 1e-9) {
		t.Errorf("clino +90deg should be straight up, got %v", up)
	}
}

func TestToPolarZeroVector(t *testing.T) {
	p := ToPolar(Vec(0, 0, 0))
	if p != (Polar{}) {
		t.Errorf("zero vector must map to Polar{0,0,0}, got %+v", p)
	}
}

func TestToPolarAzimuthRange(t *testing.T) {
	// West-pointing vector: atan2 gives a negative angle that must be
	// wrapped into [0, 2pi).
	p := ToPolar(Vec(-1, 0, 0))
	if !approxEqual(p.Azimuth, 3*math.Pi/2, tolerance) {
		t.Errorf("expected azimuth 3pi/2, got %f", p.Azimuth)
	}
	if p.Azimuth < 0 || p.Azimuth >= 2*math.Pi {
		t.Errorf("azimuth %f outside [0, 2pi)", p.Azimuth)
	}
}

func TestPolarRoundTrip(t *testing.T) {
	distances := []float64{0.001, 0.7, 1, 12.34, 300}
	azimuths := []float64{0, 0.3, math.Pi / 2, math.Pi, 4.5, 2*math.Pi - 1e-6}
	clinos := []float64{-1.5, -0.8, 0, 0.4, 1.5}

	for _, d := range distances {
		for _, a := range azimuths {
			for _, c := range clinos {
				p := ToPolar(FromPolar(d, a, c))
				if !approxEqual(p.Distance, d, 1e-9*math.Max(1, d)) {
					t.Errorf("d=%g a=%g c=%g: distance round-trip %g", d, a, c, p.Distance)
				}
				if !approxEqual(p.Azimuth, a, 1e-9) {
					t.Errorf("d=%g a=%g c=%g: azimuth round-trip %g", d, a, c, p.Azimuth)
				}
				if !approxEqual(p.Clino, c, 1e-9) {
					t.Errorf("d=%g a=%g c=%g: clino round-trip %g", d, a, c, p.Clino)
				}
			}
		}
	}
}

func TestNormalIsUnit(t *testing.T) {
	n := Normal(1.1, 0.6)
	if !approxEqual(n.Length(), 1, tolerance) {
		t.Errorf("expected unit normal, got length %f", n.Length())
	}
}
