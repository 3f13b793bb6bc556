package server

import (
	"net/http"
	"strconv"
	"time"

	"brandstudio/internal/store"
)

func (s *Server) handleArtifacts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var filter store.ArtifactFilter
	if raw := r.URL.Query().Get("type"); raw != "" {
		contentType, ok := store.ParseContentType(raw)
		if !ok {
			s.writeError(w, http.StatusBadRequest, "unknown content type "+raw)
			return
		}
		filter.Type = contentType
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, ok := store.ParseStatus(raw)
		if !ok {
			s.writeError(w, http.StatusBadRequest, "unknown status "+raw)
			return
		}
		filter.Status = status
	}

	artifacts, err := s.store.ListArtifacts(r.Context(), filter)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"artifacts": newArtifactViews(artifacts)})
}

func (s *Server) handleArtifactItem(w http.ResponseWriter, r *http.Request) {
	idStr, action := pathTail(r.URL.Path, "/api/artifacts/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid artifact id")
		return
	}

	switch action {
	case "":
		s.handleArtifact(w, r, id)
	case "schedule":
		if r.Method != http.MethodPost {
			s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		s.handleSchedule(w, r, id)
	case "move":
		if r.Method != http.MethodPost {
			s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		artifact, err := s.scheduler.Move(r.Context(), id)
		if err != nil {
			s.writeServiceError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, newArtifactView(artifact))
	case "unschedule":
		if r.Method != http.MethodPost {
			s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		artifact, err := s.scheduler.Unschedule(r.Context(), id)
		if err != nil {
			s.writeServiceError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, newArtifactView(artifact))
	default:
		s.writeError(w, http.StatusNotFound, "not found")
	}
}

func (s *Server) handleArtifact(w http.ResponseWriter, r *http.Request, id int64) {
	switch r.Method {
	case http.MethodGet:
		artifact, err := s.store.GetArtifact(r.Context(), id)
		if err != nil {
			s.writeServiceError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, newArtifactView(artifact))
	case http.MethodPatch:
		s.handleArtifactUpdate(w, r, id)
	case http.MethodDelete:
		if err := s.store.DeleteArtifact(r.Context(), id); err != nil {
			s.writeServiceError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, map[string]any{"deleted": id})
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleArtifactUpdate edits the body and walks status transitions. Moving in
// or out of the scheduled state goes through the scheduler endpoints instead.
func (s *Server) handleArtifactUpdate(w http.ResponseWriter, r *http.Request, id int64) {
	var payload struct {
		Body   *string `json:"body"`
		Status *string `json:"status"`
	}
	if err := decodeBody(r, &payload); err != nil {
		s.writeServiceError(w, err)
		return
	}

	artifact, err := s.store.GetArtifact(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	if payload.Body != nil {
		artifact.Body = *payload.Body
	}
	if payload.Status != nil {
		status, ok := store.ParseStatus(*payload.Status)
		if !ok {
			s.writeError(w, http.StatusBadRequest, "unknown status "+*payload.Status)
			return
		}
		if status == store.StatusScheduled {
			s.writeError(w, http.StatusBadRequest, "use the schedule endpoint to schedule an artifact")
			return
		}
		artifact.Status = status
		artifact.ScheduledDate = nil
	}

	if err := s.store.UpdateArtifact(r.Context(), artifact); err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, newArtifactView(artifact))
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request, id int64) {
	var payload struct {
		Date string `json:"date"`
	}
	if r.ContentLength != 0 {
		if err := decodeBody(r, &payload); err != nil {
			s.writeServiceError(w, err)
			return
		}
	}

	var (
		artifact *store.Artifact
		err      error
	)
	if payload.Date != "" {
		date, parseErr := time.Parse("2006-01-02", payload.Date)
		if parseErr != nil {
			s.writeError(w, http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
			return
		}
		artifact, err = s.scheduler.ScheduleAt(r.Context(), id, date)
	} else {
		artifact, err = s.scheduler.Schedule(r.Context(), id)
	}
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, newArtifactView(artifact))
}
