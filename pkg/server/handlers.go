package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/ornatree/pkg/errors"
	"github.com/matzehuels/ornatree/pkg/pipeline"
	"github.com/matzehuels/ornatree/pkg/project"
)

// maxLayoutCount caps ?count= on /api/layout.
const maxLayoutCount = 5000

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, pipeline.FormatHTML)
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if format == pipeline.FormatHTML {
		http.Redirect(w, r, "/?"+r.URL.RawQuery, http.StatusFound)
		return
	}
	s.render(w, r, format)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, format string) {
	q := r.URL.Query()
	res, err := s.runner.Render(r.Context(), s.catalog, pipeline.Options{
		Format:   format,
		Selected: q.Get("selected"),
		Palette:  s.opts.Palette,
		Title:    s.opts.Title,
		Hover:    q.Get("hover") != "",
		Links:    q.Get("links") != "",
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", res.ContentType)
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("ETag", strconv.Quote(res.CacheKey))
	if res.CacheHit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	if match := r.Header.Get("If-None-Match"); match != "" && match == strconv.Quote(res.CacheKey) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	_, _ = w.Write(res.Artifact)
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	count := s.catalog.Len()
	annotate := s.catalog
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > maxLayoutCount {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput,
				"count must be an integer between 0 and %d", maxLayoutCount))
			return
		}
		count = n
		if n != s.catalog.Len() {
			annotate = nil
		}
	}

	l, hit, err := s.runner.Layout(r.Context(), count)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if hit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	writeJSON(w, http.StatusOK, pipeline.NewLayoutDocument(s.runner.Generator.Config(), l, annotate))
}

type projectView struct {
	project.Project
	Title string  `json:"title"`
	Index int     `json:"index"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	scene, err := s.runner.Scene(r.Context(), s.catalog, "")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := make([]projectView, len(scene.Ornaments))
	for i, o := range scene.Ornaments {
		out[i] = projectView{Project: o.Project, Title: o.Project.Title(), Index: o.Index, X: o.X, Y: o.Y}
	}
	writeJSON(w, http.StatusOK, map[string]any{"count": len(out), "projects": out})
}

func (s *Server) handleProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	scene, err := s.runner.Scene(r.Context(), s.catalog, id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	o, _ := scene.Find(id)
	writeJSON(w, http.StatusOK, projectView{Project: o.Project, Title: o.Project.Title(), Index: o.Index, X: o.X, Y: o.Y})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "projects": s.catalog.Len()})
}

// =============================================================================
// Responses
// =============================================================================

// statusFor maps error codes to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.IsNotFound(err):
		return http.StatusNotFound
	case errors.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeUnsupported):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := string(errors.GetCode(err))
	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
		if code == "" {
			code = string(errors.ErrCodeInternal)
		}
		msg = "internal error"
	}
	writeJSONError(w, status, code, msg)
}

func writeJSONError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, map[string]any{"error": map[string]string{"code": code, "message": msg}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
