// Package scene turns resolved stations and graph query results into
// drawable geometry for the external 3D renderer.
package scene

import "github.com/joemeszaros/speleo-studio-sub002/pkg/geo"

// Segment is a drawable line segment between two resolved positions.
type Segment struct {
	From geo.Vector3 `json:"from"`
	To   geo.Vector3 `json:"to"`
}

// StationEntity is a labeled station point in the scene.
type StationEntity struct {
	Name     string      `json:"name"`
	Type     string      `json:"type"`
	Survey   string      `json:"survey,omitempty"`
	Position geo.Vector3 `json:"position"`
}

// Leg is a named center-line connection with resolved endpoints.
type Leg struct {
	From    string  `json:"from"`
	To      string  `json:"to"`
	Segment Segment `json:"segment"`
	Length  float64 `json:"length"`
}

// BoundingBox is the axis-aligned extent of the scene.
type BoundingBox struct {
	Min geo.Vector3 `json:"min"`
	Max geo.Vector3 `json:"max"`
}

// Metadata holds scene-level summary data.
type Metadata struct {
	Project      string `json:"project"`
	CaveCount    int    `json:"cave_count"`
	StationCount int    `json:"station_count"`
	LegCount     int    `json:"leg_count"`
	GeneratedAt  string `json:"generated_at"`
}

// Scene is the complete output consumed by the renderer.
type Scene struct {
	Metadata Metadata        `json:"metadata"`
	Stations []StationEntity `json:"stations"`
	Legs     []Leg           `json:"legs"`
	Splays   []Segment       `json:"splays"`
	Bounds   BoundingBox     `json:"bounds"`
}
