package services_test

import (
	"errors"
	"fmt"
	"testing"

	"brandstudio/internal/services"
)

func TestWrapTagsMarker(t *testing.T) {
	cause := errors.New("boom")
	err := services.Wrap(services.ErrUnavailable, "generation", "generate", "chat call failed", cause)

	if !errors.Is(err, services.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
	want := "external service unavailable: generation: generate: chat call failed: boom"
	if err.Error() != want {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestWrapWithoutCause(t *testing.T) {
	err := services.Wrap(services.ErrInvalidInput, "pipeline", "capture", "empty audio", nil)
	if !errors.Is(err, services.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestWrapDefaultsMarker(t *testing.T) {
	err := services.Wrap(nil, "", "", "", fmt.Errorf("x"))
	if !errors.Is(err, services.ErrUnavailable) {
		t.Fatalf("expected default marker, got %v", err)
	}
}
