package geo

import "math"

// Vector3 represents a point or direction in the cave's local Cartesian
// frame: X east, Y north, Z up. All operations return new values.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vec is a shorthand constructor for Vector3.
func Vec(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns v + w.
func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vector3) Sub(w Vector3) Vector3 {
	return Vector3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns v * s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Length returns the Euclidean length of the vector.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Distance returns the Euclidean distance from v to w.
func (v Vector3) Distance(w Vector3) float64 {
	return v.Sub(w).Length()
}

// Normalize returns the unit vector in the same direction.
// Returns zero vector if length is zero.
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if l < 1e-12 {
		return Vector3{}
	}
	return Vector3{v.X / l, v.Y / l, v.Z / l}
}

// Dot returns the dot product of v and w.
func (v Vector3) Dot(w Vector3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product of v and w.
func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Polar is a survey shot reading: distance along the tape, azimuth
// clockwise from north, clino above horizontal. Angles are radians;
// azimuth is normalized to [0, 2π).
type Polar struct {
	Distance float64 `json:"distance"`
	Azimuth  float64 `json:"azimuth"`
	Clino    float64 `json:"clino"`
}

// FromPolar converts a polar reading to a Cartesian offset. The
// horizontal run is distance*cos(clino); azimuth is measured clockwise
// from the +Y (north) axis, so X picks up the sine term.
func FromPolar(distance, azimuth, clino float64) Vector3 {
	h := distance * math.Cos(clino)
	return Vector3{
		X: h * math.Sin(azimuth),
		Y: h * math.Cos(azimuth),
		Z: distance * math.Sin(clino),
	}
}

// ToPolar converts a Cartesian offset back to a polar reading. The
// zero vector maps to Polar{0, 0, 0}: azimuth and clino are undefined
// there and default to zero rather than erroring.
func ToPolar(v Vector3) Polar {
	d := v.Length()
	if d == 0 {
		return Polar{}
	}
	azimuth := math.Atan2(v.X, v.Y)
	if azimuth < 0 {
		azimuth += 2 * math.Pi
	}
	return Polar{
		Distance: d,
		Azimuth:  azimuth,
		Clino:    math.Asin(v.Z / d),
	}
}

// Normal returns the unit normal of a plane with the given dip
// direction azimuth and dip angle (radians). Magnetic declination is
// not applied here; callers correct azimuths before conversion.
func Normal(azimuth, clino float64) Vector3 {
	return FromPolar(1, azimuth, clino).Normalize()
}
