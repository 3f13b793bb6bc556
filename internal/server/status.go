package server

import (
	"net/http"
	"strconv"

	"brandstudio/internal/calendar"
	"brandstudio/internal/services"
	"brandstudio/internal/store"
)

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	weeks := 0
	if raw := r.URL.Query().Get("weeks"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			s.writeError(w, http.StatusBadRequest, "invalid weeks value")
			return
		}
		weeks = parsed
	}

	slots, err := s.scheduler.Slots(r.Context(), weeks)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"weeks": newWeekSlotViews(slots)})
}

func (s *Server) handleGym(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	report, err := s.analyzer.Analyze(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	ctx := r.Context()
	notes, err := s.store.ListNotes(ctx)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	counts, err := s.store.ArtifactStatusCounts(ctx)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	untranscribed := 0
	for _, note := range notes {
		if !note.Transcribed {
			untranscribed++
		}
	}

	frequency := s.cfg.Profile.PostingFrequency
	if profile, profErr := s.store.LoadProfile(ctx); profErr == nil {
		frequency = profile.PostingFrequency
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"database":           s.store.Path(),
		"ai_available":       s.cfg.AIAvailable(),
		"notes":              len(notes),
		"notes_needing_retry": untranscribed,
		"artifacts":          counts,
		"cadence":            calendar.Cadence(frequency, counts.Ready()),
	})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		profile, err := s.store.LoadProfile(r.Context())
		if err != nil {
			s.writeServiceError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, profileView{
			Name:             profile.Name,
			Role:             profile.Role,
			Company:          profile.Company,
			Tone:             profile.Tone,
			PostingFrequency: profile.PostingFrequency,
			Interests:        profile.Interests,
		})
	case http.MethodPut:
		var payload profileView
		if err := decodeBody(r, &payload); err != nil {
			s.writeServiceError(w, err)
			return
		}
		if payload.Name == "" {
			s.writeServiceError(w, services.Wrap(services.ErrInvalidInput, "server", "profile",
				"profile name is required", nil))
			return
		}
		profile := &store.Profile{
			Name:             payload.Name,
			Role:             payload.Role,
			Company:          payload.Company,
			Tone:             payload.Tone,
			PostingFrequency: payload.PostingFrequency,
			Interests:        payload.Interests,
		}
		if err := s.store.SaveProfile(r.Context(), profile); err != nil {
			s.writeServiceError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, payload)
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
