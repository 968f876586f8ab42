// Package attribute holds the persistable section and component
// attribute records the external editor UI attaches to a cave. Records
// reference stations by name only; positions are resolved by the
// caller at render time.
package attribute

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/joemeszaros/speleo-studio-sub002/pkg/graph"
)

// SectionAttribute annotates a shortest path between two stations.
type SectionAttribute struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Format  string        `json:"format,omitempty"`
	Color   string        `json:"color,omitempty"`
	Visible bool          `json:"visible"`
	Section graph.Section `json:"section"`
}

// ComponentAttribute annotates a branch of the cave from a start
// station to its reached boundary stations.
type ComponentAttribute struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Format    string          `json:"format,omitempty"`
	Color     string          `json:"color,omitempty"`
	Visible   bool            `json:"visible"`
	Component graph.Component `json:"component"`
}

// NewSection wraps a section query result in a fresh attribute record.
func NewSection(name string, section *graph.Section) *SectionAttribute {
	return &SectionAttribute{
		ID:      uuid.NewString(),
		Name:    name,
		Visible: true,
		Section: *section,
	}
}

// NewComponent wraps a component query result in a fresh attribute record.
func NewComponent(name string, component *graph.Component) *ComponentAttribute {
	return &ComponentAttribute{
		ID:        uuid.NewString(),
		Name:      name,
		Visible:   true,
		Component: *component,
	}
}

// AttributeList is what a cave persists: every annotation in one
// document, round-tripped as plain JSON.
type AttributeList struct {
	Sections   []SectionAttribute   `json:"sections"`
	Components []ComponentAttribute `json:"components"`
}

// MarshalList serializes an attribute list for persistence.
func MarshalList(l *AttributeList) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalList parses a persisted attribute list, assigning fresh IDs
// to records imported without one so every record stays addressable.
func UnmarshalList(data []byte) (*AttributeList, error) {
	var l AttributeList
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing attribute list: %w", err)
	}
	for i := range l.Sections {
		if l.Sections[i].ID == "" {
			l.Sections[i].ID = uuid.NewString()
		}
	}
	for i := range l.Components {
		if l.Components[i].ID == "" {
			l.Components[i].ID = uuid.NewString()
		}
	}
	return &l, nil
}
