package geo

import (
	"fmt"
	"math"
)

// planeEpsilon rejects near-degenerate triangles whose normal would be
// numerically unstable.
const planeEpsilon = 1e-9

// StrikeDip is a geological plane orientation. Strike is the compass
// bearing of the plane's horizontal line, dip the steepest descent
// angle below horizontal; both in degrees.
type StrikeDip struct {
	Strike float64 `json:"strike"`
	Dip    float64 `json:"dip"`
	Normal Vector3 `json:"normal"`
}

// IsValidPlane reports whether three points define a usable plane,
// i.e. they are not collinear or coincident.
func IsValidPlane(p1, p2, p3 Vector3) bool {
	return p2.Sub(p1).Cross(p3.Sub(p1)).Length() > planeEpsilon
}

// CalculateStrikeDip fits a plane through three points and converts its
// orientation to strike/dip. The normal is flipped onto the upper
// hemisphere so dip lands in [0, 90] degrees; strike is the dip
// direction azimuth minus 90 degrees, normalized to [0, 360).
// Returns an error for collinear or coincident points.
func CalculateStrikeDip(p1, p2, p3 Vector3) (StrikeDip, error) {
	cross := p2.Sub(p1).Cross(p3.Sub(p1))
	if cross.Length() <= planeEpsilon {
		return StrikeDip{}, fmt.Errorf("points %v, %v, %v are collinear, cannot fit a plane", p1, p2, p3)
	}

	normal := cross.Normalize()
	if normal.Z < 0 {
		normal = normal.Scale(-1)
	}

	dip := Degrees(math.Acos(math.Abs(normal.Z)))

	var strike float64
	if dip > 0 {
		// The upper-hemisphere normal leans toward the downdip side,
		// so its horizontal component points in the dip direction.
		dipAzimuth := Degrees(math.Atan2(normal.X, normal.Y))
		strike = NormalizeDegrees(dipAzimuth - 90)
	}

	return StrikeDip{Strike: strike, Dip: dip, Normal: normal}, nil
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// NormalizeDegrees wraps an angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}
