package pipeline

import (
	"context"
	"fmt"

	"brandstudio/internal/generation"
	"brandstudio/internal/logging"
	"brandstudio/internal/services"
	"brandstudio/internal/store"
	"brandstudio/internal/transcription"
)

// FanOutOutcome records the result for a single content type during fan-out.
type FanOutOutcome struct {
	Type     store.ContentType
	Artifact *store.Artifact
	Skipped  bool
	Err      error
}

// FanOutResult aggregates per-type outcomes of a fan-out run.
type FanOutResult struct {
	NoteID   int64
	Outcomes []FanOutOutcome
}

// Generated returns the artifacts created during this run.
func (r FanOutResult) Generated() []*store.Artifact {
	var artifacts []*store.Artifact
	for _, outcome := range r.Outcomes {
		if outcome.Artifact != nil && !outcome.Skipped {
			artifacts = append(artifacts, outcome.Artifact)
		}
	}
	return artifacts
}

// Failed returns the outcomes that ended in an error.
func (r FanOutResult) Failed() []FanOutOutcome {
	var failed []FanOutOutcome
	for _, outcome := range r.Outcomes {
		if outcome.Err != nil {
			failed = append(failed, outcome)
		}
	}
	return failed
}

// FanOut generates one draft per requested type from the note's transcript.
// Types that already have an artifact for the note are skipped, so re-running
// after a partial failure only fills the gaps. A failure for one type never
// blocks the others.
func (p *Pipeline) FanOut(ctx context.Context, noteID int64, types []store.ContentType, opts generation.Options) (FanOutResult, error) {
	result := FanOutResult{NoteID: noteID}

	note, err := p.store.GetNote(ctx, noteID)
	if err != nil {
		return result, err
	}
	if !note.Transcribed || transcription.IsFallback(note.Transcript) {
		return result, services.Wrap(services.ErrInvalidInput, "pipeline", "fan_out",
			fmt.Sprintf("note %d has no usable transcript, retranscribe it first", noteID), nil)
	}

	if len(types) == 0 {
		types = store.AllContentTypes()
	}

	existing, err := p.store.ArtifactsForNote(ctx, noteID)
	if err != nil {
		return result, err
	}
	covered := make(map[store.ContentType]bool, len(existing))
	for _, artifact := range existing {
		covered[artifact.Type] = true
	}

	for _, contentType := range types {
		switch contentType {
		case store.TypePost, store.TypeScript, store.TypeNewsletter:
		default:
			result.Outcomes = append(result.Outcomes, FanOutOutcome{
				Type: contentType,
				Err: services.Wrap(services.ErrInvalidInput, "pipeline", "fan_out",
					fmt.Sprintf("unknown content type %q", contentType), nil),
			})
			continue
		}

		if covered[contentType] {
			p.logger.Info("skipping covered type",
				logging.Int64("note_id", noteID), logging.String("type", string(contentType)))
			result.Outcomes = append(result.Outcomes, FanOutOutcome{Type: contentType, Skipped: true})
			continue
		}

		draft, genErr := p.generator.Generate(ctx, contentType, note.Transcript, opts)
		if genErr != nil {
			p.logger.Warn("generation failed for type",
				logging.Int64("note_id", noteID), logging.String("type", string(contentType)),
				logging.Error(genErr))
			result.Outcomes = append(result.Outcomes, FanOutOutcome{Type: contentType, Err: genErr})
			continue
		}

		artifact, storeErr := p.store.CreateArtifact(ctx, noteID, contentType, draft.Text, draft.Fallback)
		if storeErr != nil {
			result.Outcomes = append(result.Outcomes, FanOutOutcome{Type: contentType, Err: storeErr})
			continue
		}

		result.Outcomes = append(result.Outcomes, FanOutOutcome{Type: contentType, Artifact: artifact})
	}

	return result, nil
}
