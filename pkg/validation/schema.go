package validation

import (
	"fmt"

	"github.com/joemeszaros/speleo-studio-sub002/pkg/model"
)

// ValidateProject performs schema validation on a parsed survey
// project. It checks structural correctness before any station
// resolution or graph building happens.
func ValidateProject(p *model.Project) *Report {
	r := NewReport()

	if len(p.Caves) == 0 {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  "project contains no caves",
			Path:     "caves",
			Expected: "at least one cave",
		})
		return r
	}

	seen := make(map[string]bool)
	for i := range p.Caves {
		cave := &p.Caves[i]
		path := fmt.Sprintf("caves[%d]", i)

		if cave.Name == "" {
			r.AddError(Result{
				Level:   LevelSchema,
				Message: "cave name must not be empty",
				Path:    path + ".name",
			})
		} else if seen[cave.Name] {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("duplicate cave name %q", cave.Name),
				Path:        path + ".name",
				ActualValue: cave.Name,
			})
		}
		seen[cave.Name] = true

		validateCave(cave, path, r)
	}

	return r
}

func validateCave(cave *model.Cave, path string, r *Report) {
	if cave.Start == "" {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  fmt.Sprintf("cave %q has no start station", cave.Name),
			Path:     path + ".start",
			Expected: "name of the station anchoring the survey",
		})
	}

	for i, fp := range cave.FixedPoints {
		fpPath := fmt.Sprintf("%s.fixed_points[%d]", path, i)
		if fp.Station == "" {
			r.AddError(Result{
				Level:   LevelSchema,
				Message: "fixed point must name a station",
				Path:    fpPath + ".station",
			})
		}
		for _, msg := range fp.Coordinate.Validate() {
			r.AddError(Result{
				Level:   LevelSchema,
				Message: fmt.Sprintf("fixed point %q: %s", fp.Station, msg),
				Path:    fpPath + ".coordinate",
			})
		}
	}

	if len(cave.Surveys) == 0 {
		r.AddWarning(Result{
			Level:   LevelSchema,
			Message: fmt.Sprintf("cave %q has no surveys", cave.Name),
			Path:    path + ".surveys",
		})
	}

	for si, survey := range cave.Surveys {
		validateSurvey(survey, fmt.Sprintf("%s.surveys[%d]", path, si), r)
	}
}

func validateSurvey(survey model.Survey, path string, r *Report) {
	if survey.Name == "" {
		r.AddError(Result{
			Level:   LevelSchema,
			Message: "survey name must not be empty",
			Path:    path + ".name",
		})
	}

	for i, shot := range survey.Shots {
		shotPath := fmt.Sprintf("%s.shots[%d]", path, i)

		if shot.From == "" {
			r.AddError(Result{
				Level:   LevelSchema,
				Message: "shot must have a from station",
				Path:    shotPath + ".from",
			})
		}
		// Splays have no named target by definition.
		if shot.To == "" && shot.Type != model.ShotSplay {
			r.AddError(Result{
				Level:   LevelSchema,
				Message: "shot must have a to station",
				Path:    shotPath + ".to",
			})
		}
		if shot.Length <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     "shot length must be positive",
				Path:        shotPath + ".length",
				ActualValue: shot.Length,
				Expected:    "> 0",
			})
		}
		if shot.Clino < -90 || shot.Clino > 90 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     "shot clino must be within [-90, 90] degrees",
				Path:        shotPath + ".clino",
				ActualValue: shot.Clino,
				Expected:    "[-90, 90]",
			})
		}
		if shot.Azimuth < 0 || shot.Azimuth >= 360 {
			r.AddWarning(Result{
				Level:       LevelSchema,
				Message:     "shot azimuth outside [0, 360) will be normalized",
				Path:        shotPath + ".azimuth",
				ActualValue: shot.Azimuth,
				Expected:    "[0, 360)",
			})
		}
		switch shot.Type {
		case model.ShotCenter, model.ShotSplay, model.ShotAuxiliary:
		default:
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("unknown shot type %q", shot.Type),
				Path:        shotPath + ".type",
				ActualValue: string(shot.Type),
				Expected:    "center, splay or auxiliary",
				Suggestions: []string{"omit type to default to center"},
			})
		}
	}
}
