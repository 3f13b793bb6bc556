package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI executes the root command with a fresh command tree and captures
// stdout. A non-empty configPath is passed via --config.
func runCLI(t *testing.T, args []string, configPath string) (string, error) {
	t.Helper()

	t.Setenv("OPENAI_API_KEY", "")
	if configPath != "" {
		args = append(args, "--config", configPath)
	}
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeTestConfig(t *testing.T, base string) string {
	t.Helper()

	configPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf(`[paths]
data_dir = %q

[calendar]
weekly_capacity = 2
horizon_weeks = 4
`, filepath.Join(base, "data"))
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return configPath
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

func TestConfigInitWritesSample(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "config.toml")

	out, err := runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	out, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err == nil {
		t.Fatalf("expected error for existing file, got output:\n%s", out)
	}
}

func TestNoteAddAndGenerateFlow(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)

	out, err := runCLI(t, []string{"note", "add", "--text", "we shipped the migration early and the team learned a lot"}, configPath)
	if err != nil {
		t.Fatalf("note add: %v", err)
	}
	requireContains(t, out, "Captured note 1")

	out, err = runCLI(t, []string{"generate", "1"}, configPath)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	// No credential in tests, so drafts come from templates.
	requireContains(t, out, "(template)")

	out, err = runCLI(t, []string{"library", "--json"}, configPath)
	if err != nil {
		t.Fatalf("library: %v", err)
	}
	requireContains(t, out, "newsletter")

	out, err = runCLI(t, []string{"approve", "1"}, configPath)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	requireContains(t, out, "now approved")

	out, err = runCLI(t, []string{"schedule", "1"}, configPath)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	requireContains(t, out, "scheduled for")

	out, err = runCLI(t, []string{"status"}, configPath)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "fallback mode")
	requireContains(t, out, "1 scheduled")
}

func TestNoteAddRequiresExactlyOneSource(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)

	if _, err := runCLI(t, []string{"note", "add"}, configPath); err == nil {
		t.Fatal("expected error when neither --file nor --text given")
	}
	if _, err := runCLI(t, []string{"note", "add", "--text", "x", "--file", "y.webm"}, configPath); err == nil {
		t.Fatal("expected error when both --file and --text given")
	}
}

func TestGenerateRejectsUnknownType(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)

	if _, err := runCLI(t, []string{"note", "add", "--text", "an idea"}, configPath); err != nil {
		t.Fatalf("note add: %v", err)
	}
	if _, err := runCLI(t, []string{"generate", "1", "--type", "tweetstorm"}, configPath); err == nil {
		t.Fatal("expected error for unknown content type")
	}
}

func TestProfileSetAndShow(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)

	out, err := runCLI(t, []string{"profile", "set", "--name", "Emily", "--role", "VP Engineering", "--frequency", "weekly"}, configPath)
	if err != nil {
		t.Fatalf("profile set: %v", err)
	}
	requireContains(t, out, "Saved profile for Emily")

	out, err = runCLI(t, []string{"profile", "show"}, configPath)
	if err != nil {
		t.Fatalf("profile show: %v", err)
	}
	requireContains(t, out, "VP Engineering")
}

func TestGymCommandReportsChallenge(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)

	out, err := runCLI(t, []string{"gym"}, configPath)
	if err != nil {
		t.Fatalf("gym: %v", err)
	}
	requireContains(t, out, "This week's challenge:")
}
