package scene

import (
	"fmt"
	"math"

	"github.com/joemeszaros/speleo-studio-sub002/pkg/geo"
	"github.com/joemeszaros/speleo-studio-sub002/pkg/validation"
)

// ValidateScene performs structural validation on an assembled scene.
// It checks station integrity, leg references, and bounds enclosure.
func ValidateScene(s *Scene) *validation.Report {
	r := validation.NewReport()

	if s == nil {
		r.AddError(validation.Result{
			Level:   validation.LevelSpatial,
			Message: "scene is nil",
		})
		return r
	}

	validateStationNames(s, r)
	validateLegReferences(s, r)
	validateBoundsEnclosure(s, r)

	return r
}

func validateStationNames(s *Scene, r *validation.Report) {
	seen := make(map[string]int, len(s.Stations))

	for i, st := range s.Stations {
		if st.Name == "" {
			r.AddError(validation.Result{
				Level:   validation.LevelSpatial,
				Message: fmt.Sprintf("station at index %d has empty name", i),
				Path:    fmt.Sprintf("stations[%d].name", i),
			})
			continue
		}
		if prev, dup := seen[st.Name]; dup {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("duplicate station name %q (indexes %d and %d)", st.Name, prev, i),
				Path:        fmt.Sprintf("stations[%d].name", i),
				ActualValue: st.Name,
			})
		}
		seen[st.Name] = i

		if !finiteVec(st.Position) {
			r.AddError(validation.Result{
				Level:   validation.LevelSpatial,
				Message: fmt.Sprintf("station %q has a non-finite position", st.Name),
				Path:    fmt.Sprintf("stations[%d].position", i),
			})
		}
	}
}

func validateLegReferences(s *Scene, r *validation.Report) {
	known := make(map[string]bool, len(s.Stations))
	for _, st := range s.Stations {
		known[st.Name] = true
	}

	for i, leg := range s.Legs {
		for _, name := range []string{leg.From, leg.To} {
			if !known[name] {
				r.AddError(validation.Result{
					Level:       validation.LevelSpatial,
					Message:     fmt.Sprintf("leg %d references unknown station %q", i, name),
					Path:        fmt.Sprintf("legs[%d]", i),
					ActualValue: name,
				})
			}
		}
		if leg.Length < 0 {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("leg %d has negative length", i),
				Path:        fmt.Sprintf("legs[%d].length", i),
				ActualValue: leg.Length,
			})
		}
	}
}

func validateBoundsEnclosure(s *Scene, r *validation.Report) {
	for i, st := range s.Stations {
		p := st.Position
		if p.X < s.Bounds.Min.X || p.X > s.Bounds.Max.X ||
			p.Y < s.Bounds.Min.Y || p.Y > s.Bounds.Max.Y ||
			p.Z < s.Bounds.Min.Z || p.Z > s.Bounds.Max.Z {
			r.AddWarning(validation.Result{
				Level:   validation.LevelSpatial,
				Message: fmt.Sprintf("station %q lies outside the scene bounds", st.Name),
				Path:    fmt.Sprintf("stations[%d].position", i),
			})
		}
	}
}

func finiteVec(v geo.Vector3) bool {
	for _, c := range []float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
