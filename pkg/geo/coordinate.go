package geo

import (
	"fmt"
	"math"
)

// EOV (Egységes Országos Vetület) grid bounds plus a generous
// elevation window. Values outside these ranges cannot be valid
// Hungarian cave entrance coordinates.
const (
	eovMaxX      = 400000.0
	eovMinY      = 400000.0
	minElevation = -3000.0
	maxElevation = 5000.0
)

// EOVCoordinate is a projected national-grid position with elevation.
// Y is the EOV easting, X the northing; both in meters. Value type:
// arithmetic returns new instances, nothing mutates in place.
type EOVCoordinate struct {
	Y         float64 `yaml:"y" json:"y"`
	X         float64 `yaml:"x" json:"x"`
	Elevation float64 `yaml:"elevation" json:"elevation"`
}

// Validate checks every field against the EOV range invariants and
// returns all violations found. It does not stop at the first problem;
// callers treat a non-empty result as invalid.
func (c EOVCoordinate) Validate() []string {
	var errs []string

	check := func(name string, v float64) bool {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Sprintf("%s must be a finite number, got %v", name, v))
			return false
		}
		return true
	}

	if check("x", c.X) {
		if c.X < 0 || c.X > eovMaxX {
			errs = append(errs, fmt.Sprintf("x must be in [0, %.0f], got %f", eovMaxX, c.X))
		}
	}
	if check("y", c.Y) {
		if c.Y < eovMinY {
			errs = append(errs, fmt.Sprintf("y must be at least %.0f, got %f", eovMinY, c.Y))
		}
	}
	if check("elevation", c.Elevation) {
		if c.Elevation < minElevation || c.Elevation > maxElevation {
			errs = append(errs, fmt.Sprintf("elevation must be in [%.0f, %.0f], got %f", minElevation, maxElevation, c.Elevation))
		}
	}

	return errs
}

// IsValid reports whether the coordinate passes all range checks.
func (c EOVCoordinate) IsValid() bool {
	return len(c.Validate()) == 0
}

// Equals compares field-wise with exact equality. Coordinates are
// persisted values, not computed ones, so no epsilon is applied.
func (c EOVCoordinate) Equals(o EOVCoordinate) bool {
	return c.Y == o.Y && c.X == o.X && c.Elevation == o.Elevation
}

// DistanceTo returns the Euclidean distance to o over (x, y, elevation).
func (c EOVCoordinate) DistanceTo(o EOVCoordinate) float64 {
	dy := c.Y - o.Y
	dx := c.X - o.X
	de := c.Elevation - o.Elevation
	return math.Sqrt(dy*dy + dx*dx + de*de)
}

// Add returns c + o component-wise.
func (c EOVCoordinate) Add(o EOVCoordinate) EOVCoordinate {
	return EOVCoordinate{Y: c.Y + o.Y, X: c.X + o.X, Elevation: c.Elevation + o.Elevation}
}

// Sub returns c - o component-wise.
func (c EOVCoordinate) Sub(o EOVCoordinate) EOVCoordinate {
	return EOVCoordinate{Y: c.Y - o.Y, X: c.X - o.X, Elevation: c.Elevation - o.Elevation}
}

// AddVector returns the coordinate displaced by a local-frame vector,
// using the same axis ordering as ToVector.
func (c EOVCoordinate) AddVector(v Vector3) EOVCoordinate {
	return EOVCoordinate{Y: c.Y + v.X, X: c.X + v.Y, Elevation: c.Elevation + v.Z}
}

// SubVector returns the coordinate displaced by -v.
func (c EOVCoordinate) SubVector(v Vector3) EOVCoordinate {
	return c.AddVector(v.Scale(-1))
}

// ToVector maps the coordinate into the local frame as
// Vector3{X: Y, Y: X, Z: Elevation}. The ordering looks swapped but is
// exactly what existing persisted survey data expects; do not change it.
func (c EOVCoordinate) ToVector() Vector3 {
	return Vector3{X: c.Y, Y: c.X, Z: c.Elevation}
}
