// Package openai provides the HTTP client for the transcription and chat
// completion API boundaries. Both adapters share one client and credential.
package openai
