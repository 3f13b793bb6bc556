package server

import (
	_ "embed"
	"html/template"
	"net/http"

	"brandstudio/internal/logging"
)

//go:embed ui.html
var uiHTML string

var uiTemplate = template.Must(template.New("ui").Parse(uiHTML))

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.writeError(w, http.StatusNotFound, "not found")
		return
	}
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct {
		AIAvailable bool
	}{AIAvailable: s.cfg.AIAvailable()}
	if err := uiTemplate.Execute(w, data); err != nil {
		s.logger.Error("failed to render ui", logging.Error(err))
	}
}
