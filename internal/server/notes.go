package server

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"brandstudio/internal/generation"
	"brandstudio/internal/store"
)

// maxAudioUpload bounds multipart audio payloads.
const maxAudioUpload = 32 << 20

func (s *Server) handleNotes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		notes, err := s.store.ListNotes(r.Context())
		if err != nil {
			s.writeServiceError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, map[string]any{"notes": newNoteViews(notes)})
	case http.MethodPost:
		s.handleCapture(w, r)
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleCapture accepts either a multipart audio upload or a JSON text body.
func (s *Server) handleCapture(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxAudioUpload); err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid multipart body")
			return
		}
		file, header, err := r.FormFile("audio")
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "missing audio file")
			return
		}
		defer func() { _ = file.Close() }()

		audio, err := io.ReadAll(file)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "unreadable audio file")
			return
		}

		note, err := s.pipeline.CaptureAudio(r.Context(), audio, header.Filename)
		if err != nil {
			s.writeServiceError(w, err)
			return
		}
		s.writeJSON(w, http.StatusCreated, newNoteView(note))
		return
	}

	var payload struct {
		Text string `json:"text"`
	}
	if err := decodeBody(r, &payload); err != nil {
		s.writeServiceError(w, err)
		return
	}

	note, err := s.pipeline.CaptureText(r.Context(), payload.Text)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, newNoteView(note))
}

func (s *Server) handleNoteItem(w http.ResponseWriter, r *http.Request) {
	idStr, action := pathTail(r.URL.Path, "/api/notes/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid note id")
		return
	}

	switch action {
	case "":
		if r.Method != http.MethodGet {
			s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		note, err := s.store.GetNote(r.Context(), id)
		if err != nil {
			s.writeServiceError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, newNoteView(note))
	case "retranscribe":
		if r.Method != http.MethodPost {
			s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		note, err := s.pipeline.Retranscribe(r.Context(), id)
		if err != nil {
			s.writeServiceError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, newNoteView(note))
	case "generate":
		if r.Method != http.MethodPost {
			s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		s.handleGenerate(w, r, id)
	case "artifacts":
		if r.Method != http.MethodGet {
			s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		artifacts, err := s.store.ArtifactsForNote(r.Context(), id)
		if err != nil {
			s.writeServiceError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, map[string]any{"artifacts": newArtifactViews(artifacts)})
	default:
		s.writeError(w, http.StatusNotFound, "not found")
	}
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request, noteID int64) {
	var payload struct {
		Types  []string `json:"types"`
		Tone   string   `json:"tone"`
		Length string   `json:"length"`
	}
	if r.ContentLength != 0 {
		if err := decodeBody(r, &payload); err != nil {
			s.writeServiceError(w, err)
			return
		}
	}

	var types []store.ContentType
	for _, raw := range payload.Types {
		contentType, ok := store.ParseContentType(raw)
		if !ok {
			s.writeError(w, http.StatusBadRequest, "unknown content type "+raw)
			return
		}
		types = append(types, contentType)
	}

	result, err := s.pipeline.FanOut(r.Context(), noteID, types, generation.Options{Tone: payload.Tone, Length: payload.Length})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	outcomes := make([]generateOutcomeView, 0, len(result.Outcomes))
	for _, outcome := range result.Outcomes {
		view := generateOutcomeView{Type: string(outcome.Type), Skipped: outcome.Skipped}
		if outcome.Err != nil {
			view.Error = outcome.Err.Error()
		}
		if outcome.Artifact != nil {
			artifactView := newArtifactView(outcome.Artifact)
			view.Artifact = &artifactView
		}
		outcomes = append(outcomes, view)
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"note_id": noteID, "outcomes": outcomes})
}
