package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// Transcribe uploads audio bytes to the transcription endpoint and returns the
// recognized text. The filename extension tells the API the container format.
func (c *Client) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	if len(audio) == 0 {
		return "", errors.New("transcribe: audio required")
	}
	if !c.Available() {
		return "", errors.New("transcribe: api key required")
	}
	filename = strings.TrimSpace(filename)
	if filename == "" {
		filename = "audio.wav"
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("transcribe: create multipart file: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("transcribe: write audio data: %w", err)
	}
	if err := writer.WriteField("model", c.cfg.TranscribeModel); err != nil {
		return "", fmt.Errorf("transcribe: write model field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("transcribe: close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/audio/transcriptions", body)
	if err != nil {
		return "", fmt.Errorf("transcribe: new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("transcribe: http error: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("transcribe: read body: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return "", &httpStatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	var payload struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", fmt.Errorf("transcribe: decode response: %w", err)
	}
	text := strings.TrimSpace(payload.Text)
	if text == "" {
		return "", errors.New("transcribe: empty transcript")
	}
	return text, nil
}
