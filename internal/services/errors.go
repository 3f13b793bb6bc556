package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput marks empty or malformed user input; the caller corrects
	// and retries.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnavailable marks an external AI call that failed or had no
	// credential; callers recover locally with fallback text.
	ErrUnavailable = errors.New("external service unavailable")
	// ErrNotFound marks a reference to a record that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a write that would violate a uniqueness constraint.
	ErrConflict = errors.New("conflict")
	// ErrCapacityExhausted marks a scheduling search that ran out of horizon.
	ErrCapacityExhausted = errors.New("capacity exhausted")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrUnavailable
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
