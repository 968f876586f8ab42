package model

import "github.com/joemeszaros/speleo-studio-sub002/pkg/geo"

// ShotType classifies a survey leg.
type ShotType string

const (
	// ShotCenter is a primary leg between two named stations; only
	// center shots contribute to cave connectivity.
	ShotCenter ShotType = "center"
	// ShotSplay is a detail reading to an unnamed wall point.
	ShotSplay ShotType = "splay"
	// ShotAuxiliary is a named side reading kept out of the graph.
	ShotAuxiliary ShotType = "auxiliary"
)

// StationType classifies a resolved station.
type StationType string

const (
	StationCenter    StationType = "center"
	StationSplay     StationType = "splay"
	StationAuxiliary StationType = "auxiliary"
	StationSurface   StationType = "surface"
)

// Shot is a single directed instrument reading between two stations
// within one survey. Length in meters, azimuth and clino in degrees as
// read from the instruments.
type Shot struct {
	From    string   `yaml:"from" json:"from"`
	To      string   `yaml:"to" json:"to"`
	Length  float64  `yaml:"length" json:"length"`
	Azimuth float64  `yaml:"azimuth" json:"azimuth"`
	Clino   float64  `yaml:"clino" json:"clino"`
	Type    ShotType `yaml:"type" json:"type"`
}

// Survey is an ordered list of shots taken in one trip, with the
// magnetic declination in effect on that date (degrees).
type Survey struct {
	Name        string  `yaml:"name" json:"name"`
	Date        string  `yaml:"date,omitempty" json:"date,omitempty"`
	Declination float64 `yaml:"declination" json:"declination"`
	Shots       []Shot  `yaml:"shots" json:"shots"`
}

// Station is a resolved survey point in the cave's local frame. The
// Survey field is a back-reference for lookup and display only.
type Station struct {
	Name     string      `json:"name"`
	Type     StationType `json:"type"`
	Position geo.Vector3 `json:"position"`
	Survey   string      `json:"survey,omitempty"`
}

// FixedPoint anchors a station to a geo-referenced EOV position.
type FixedPoint struct {
	Station    string            `yaml:"station" json:"station"`
	Coordinate geo.EOVCoordinate `yaml:"coordinate" json:"coordinate"`
}

// Cave is a named collection of surveys plus its geo-referenced entrance.
type Cave struct {
	Name        string       `yaml:"name" json:"name"`
	Start       string       `yaml:"start" json:"start"`
	FixedPoints []FixedPoint `yaml:"fixed_points,omitempty" json:"fixed_points,omitempty"`
	Surveys     []Survey     `yaml:"surveys" json:"surveys"`
}

// Project is the top-level cave.yaml document. A project may hold
// several caves surveyed as one system.
type Project struct {
	Version string `yaml:"version" json:"version"`
	Name    string `yaml:"name" json:"name"`
	Caves   []Cave `yaml:"caves" json:"caves"`
}

// StationMap resolves station names to stations. It is the lookup the
// graph and scene layers consume; ownership stays with the caller.
type StationMap map[string]Station

// CaveByName returns the cave with the given name, or nil if not found.
func (p *Project) CaveByName(name string) *Cave {
	for i := range p.Caves {
		if p.Caves[i].Name == name {
			return &p.Caves[i]
		}
	}
	return nil
}

// CenterShots returns every center shot across the cave's surveys.
func (c *Cave) CenterShots() []Shot {
	var shots []Shot
	for _, s := range c.Surveys {
		for _, sh := range s.Shots {
			if sh.Type == ShotCenter {
				shots = append(shots, sh)
			}
		}
	}
	return shots
}
