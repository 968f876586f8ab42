package model

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a survey project from a YAML file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}

	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing project YAML: %w", err)
	}

	// Unmarked shots are center shots; most files only tag the
	// exceptions.
	for ci := range p.Caves {
		for si := range p.Caves[ci].Surveys {
			shots := p.Caves[ci].Surveys[si].Shots
			for i := range shots {
				if shots[i].Type == "" {
					shots[i].Type = ShotCenter
				}
			}
		}
	}

	return &p, nil
}

// LoadProject loads a survey project from a project directory.
// It looks for cave.yaml in the given directory.
func LoadProject(projectDir string) (*Project, error) {
	return Load(filepath.Join(projectDir, "cave.yaml"))
}
