package server

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"lectern/internal/export"
	"lectern/internal/exportlog"
	"lectern/internal/i18n"
	"lectern/internal/logging"
	"lectern/internal/session"
)

const pptxContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

type actionResponse struct {
	Changed bool             `json:"changed"`
	State   session.Snapshot `json:"state"`
}

type exportResponse struct {
	Result export.Result    `json:"result"`
	State  session.Snapshot `json:"state"`
}

type exportsResponse struct {
	Exports []exportlog.Entry `json:"exports"`
}

func (s *Server) handleViewer(w http.ResponseWriter, r *http.Request) {
	snap := s.session.Snapshot()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := s.viewer.render(w, snap); err != nil {
		s.logger.Error("render viewer", logging.Error(err))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "session_id": s.session.ID()})
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.session.Snapshot())
}

// Form actions redirect back to the viewer; disabled actions answer 409.

func (s *Server) handleFormStart(w http.ResponseWriter, r *http.Request) {
	if snap := s.session.Snapshot(); snap.Started || snap.Exporting {
		http.Error(w, "session already started", http.StatusConflict)
		return
	}
	s.session.Start()
	redirectHome(w, r)
}

func (s *Server) handleFormNext(w http.ResponseWriter, r *http.Request) {
	if !s.session.Snapshot().CanNext {
		http.Error(w, "next is disabled", http.StatusConflict)
		return
	}
	s.session.Advance()
	redirectHome(w, r)
}

func (s *Server) handleFormPrev(w http.ResponseWriter, r *http.Request) {
	if !s.session.Snapshot().CanPrev {
		http.Error(w, "previous is disabled", http.StatusConflict)
		return
	}
	s.session.Retreat()
	redirectHome(w, r)
}

func (s *Server) handleFormGenerate(w http.ResponseWriter, r *http.Request) {
	p, err := strconv.Atoi(r.PathValue("n"))
	if err != nil {
		http.Error(w, "invalid slide index", http.StatusBadRequest)
		return
	}
	s.session.Generate(p)
	redirectHome(w, r)
}

func (s *Server) handleFormExport(w http.ResponseWriter, r *http.Request) {
	snap := s.session.Snapshot()
	if snap.Exporting || snap.Loading {
		http.Error(w, "export is disabled", http.StatusConflict)
		return
	}
	if snap.Filled == 0 {
		// Sets the no-slides status message.
		_, _ = s.session.Export(r.Context())
		redirectHome(w, r)
		return
	}
	s.background.Add(1)
	go func() {
		defer s.background.Done()
		_, _ = s.session.Export(s.baseCtx)
	}()
	redirectHome(w, r)
}

func (s *Server) handleAPIStart(w http.ResponseWriter, _ *http.Request) {
	if snap := s.session.Snapshot(); snap.Started || snap.Exporting {
		s.writeError(w, http.StatusConflict, "session already started")
		return
	}
	s.session.Start()
	s.writeJSON(w, http.StatusOK, actionResponse{Changed: true, State: s.session.Snapshot()})
}

func (s *Server) handleAPINext(w http.ResponseWriter, _ *http.Request) {
	if !s.session.Snapshot().CanNext {
		s.writeError(w, http.StatusConflict, "next is disabled")
		return
	}
	changed := s.session.Advance()
	s.writeJSON(w, http.StatusOK, actionResponse{Changed: changed, State: s.session.Snapshot()})
}

func (s *Server) handleAPIPrev(w http.ResponseWriter, _ *http.Request) {
	if !s.session.Snapshot().CanPrev {
		s.writeError(w, http.StatusConflict, "previous is disabled")
		return
	}
	changed := s.session.Retreat()
	s.writeJSON(w, http.StatusOK, actionResponse{Changed: changed, State: s.session.Snapshot()})
}

func (s *Server) handleAPIGenerate(w http.ResponseWriter, r *http.Request) {
	p, err := strconv.Atoi(r.PathValue("n"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid slide index")
		return
	}
	started := s.session.Generate(p)
	s.writeJSON(w, http.StatusOK, actionResponse{Changed: started, State: s.session.Snapshot()})
}

// handleAPIExport runs on the server context so a dropped client does not
// abort a half-written file.
func (s *Server) handleAPIExport(w http.ResponseWriter, _ *http.Request) {
	if s.session.Snapshot().Loading {
		s.writeError(w, http.StatusConflict, s.localizer.T(i18n.NavGenerating))
		return
	}
	result, err := s.session.Export(s.baseCtx)
	switch {
	case errors.Is(err, export.ErrNoSlides):
		s.writeError(w, http.StatusPreconditionFailed, s.localizer.T(i18n.ExportNoSlides))
	case errors.Is(err, session.ErrExportInProgress):
		s.writeError(w, http.StatusConflict, s.localizer.T(i18n.ExportExporting))
	case err != nil:
		s.writeError(w, http.StatusInternalServerError, s.localizer.T(i18n.ExportFailed))
	default:
		s.writeJSON(w, http.StatusOK, exportResponse{Result: result, State: s.session.Snapshot()})
	}
}

func (s *Server) handleExports(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		s.writeJSON(w, http.StatusOK, exportsResponse{Exports: []exportlog.Entry{}})
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	entries, err := s.history.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if entries == nil {
		entries = []exportlog.Entry{}
	}
	s.writeJSON(w, http.StatusOK, exportsResponse{Exports: entries})
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("file")
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") ||
		!strings.EqualFold(filepath.Ext(name), ".pptx") {
		http.NotFound(w, r)
		return
	}
	path := filepath.Join(s.outputDir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", pptxContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	http.ServeFile(w, r, path)
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
