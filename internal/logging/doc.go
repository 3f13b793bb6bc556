// Package logging provides slog construction and shared attribute helpers.
package logging
