// Package server exposes a loaded survey project over a small local
// HTTP JSON API for the external renderer and attribute editor.
package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/joemeszaros/speleo-studio-sub002/pkg/graph"
	"github.com/joemeszaros/speleo-studio-sub002/pkg/model"
	"github.com/joemeszaros/speleo-studio-sub002/pkg/scene"
	"github.com/joemeszaros/speleo-studio-sub002/pkg/stats"
	"github.com/joemeszaros/speleo-studio-sub002/pkg/validation"
)

// Server serves graph queries and scene data for one survey project.
// The project is loaded and resolved once at startup; the graph and
// station map are immutable snapshots shared by all requests.
type Server struct {
	projectPath string
	port        int

	project  *model.Project
	stations model.StationMap
	graph    *graph.SurveyGraph
}

// New creates a server for the given project directory.
func New(projectPath string, port int) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
	}
}

// Start loads the project and launches the HTTP server.
func (s *Server) Start() error {
	project, err := model.LoadProject(s.projectPath)
	if err != nil {
		return fmt.Errorf("loading project: %w", err)
	}
	s.project = project
	s.stations, _ = model.ResolveAll(project)

	caves := make([]*model.Cave, len(project.Caves))
	for i := range project.Caves {
		caves[i] = &project.Caves[i]
	}
	s.graph = graph.Build(caves...)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/scene", s.handleScene)
	mux.HandleFunc("GET /api/stats", s.handleStats)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("GET /api/section", s.handleSection)
	mux.HandleFunc("GET /api/component", s.handleComponent)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("speleo server starting on http://localhost%s", addr)
	log.Printf("Project: %s (%d caves, %d stations)", project.Name, len(project.Caves), len(s.stations))

	return http.ListenAndServe(addr, mux)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleScene(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, scene.Assemble(s.project, s.stations, s.graph))
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	all := make([]*stats.CaveStatistics, 0, len(s.project.Caves))
	for i := range s.project.Caves {
		cave := &s.project.Caves[i]
		stations, _ := model.ResolveStations(cave)
		caveStats, _ := stats.Compute(cave, stations, graph.Build(cave))
		all = append(all, caveStats)
	}
	writeJSON(w, http.StatusOK, all)
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	report := validation.ValidateProject(s.project)
	report.Merge(scene.ValidateScene(scene.Assemble(s.project, s.stations, s.graph)))
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleSection(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, "from and to query parameters are required")
		return
	}

	section := s.graph.GetSection(from, to)
	if section == nil {
		writeJSON(w, http.StatusOK, map[string]any{"section": nil})
		return
	}

	segments, err := scene.SectionSegments(section, s.stations)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"section": section, "segments": segments})
}

func (s *Server) handleComponent(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	terminations := r.URL.Query().Get("terminations")
	if start == "" || terminations == "" {
		writeError(w, http.StatusBadRequest, "start and terminations query parameters are required")
		return
	}

	component := s.graph.GetComponent(start, strings.Split(terminations, ","))
	if component == nil {
		writeJSON(w, http.StatusOK, map[string]any{"component": nil})
		return
	}

	segments, err := scene.ComponentSegments(component, s.stations)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"component": component, "segments": segments})
}
