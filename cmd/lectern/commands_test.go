package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lectern/internal/export"
	"lectern/internal/exportlog"
)

func TestPlanCommandListsTopics(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"plan"}, env.configPath)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	requireContains(t, out, "== Classes 101 ==")
	requireContains(t, out, "What is a class?")
	requireContains(t, out, "concept")

	out, _, err = runCLI(t, []string{"plan", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("plan --json: %v", err)
	}
	var payload struct {
		Title  string `json:"title"`
		Topics []struct {
			Topic string `json:"topic"`
			Type  string `json:"type"`
		} `json:"topics"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode plan json: %v\n%s", err, out)
	}
	if payload.Title != "Classes 101" || len(payload.Topics) != 3 || payload.Topics[2].Type != "qa" {
		t.Fatalf("unexpected plan payload: %+v", payload)
	}
}

func TestBuildWithoutAPIKeyExportsFallbackDeck(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"build"}, env.configPath)
	if err != nil {
		t.Fatalf("build: %v\n%s", err, out)
	}
	requireContains(t, out, "no API key")
	requireContains(t, out, "Slide 3/3:")
	requireContains(t, out, "Error: API key missing")
	requireContains(t, out, "[OK]")

	path := filepath.Join(env.outputDir, "Classes_101.pptx")
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected exported deck at %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Fatal("exported deck is empty")
	}

	out, _, err = runCLI(t, []string{"exports"}, env.configPath)
	if err != nil {
		t.Fatalf("exports: %v", err)
	}
	requireContains(t, out, "Classes_101.pptx")
	requireContains(t, out, "succeeded")

	out, _, err = runCLI(t, []string{"exports", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("exports --json: %v", err)
	}
	var entries []exportlog.Entry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("decode exports json: %v\n%s", err, out)
	}
	if len(entries) != 1 || entries[0].SlideCount != 3 || entries[0].Status != exportlog.StatusSucceeded {
		t.Fatalf("unexpected history: %+v", entries)
	}
}

func TestBuildJSONReportsResult(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"build", "--json", "--title", "Custom deck"}, env.configPath)
	if err != nil {
		t.Fatalf("build --json: %v", err)
	}
	var result export.Result
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode result: %v\n%s", err, out)
	}
	if result.FileName != "Custom_deck.pptx" || result.Slides != 3 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if !strings.HasPrefix(result.Path, env.outputDir) {
		t.Fatalf("expected deck under %s, got %s", env.outputDir, result.Path)
	}
}

func TestBuildNoExportWritesNothing(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"build", "--no-export"}, env.configPath); err != nil {
		t.Fatalf("build --no-export: %v", err)
	}
	entries, err := os.ReadDir(env.outputDir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty output dir, got %d entries", len(entries))
	}

	out, _, err := runCLI(t, []string{"exports"}, env.configPath)
	if err != nil {
		t.Fatalf("exports: %v", err)
	}
	requireContains(t, out, "No exports recorded")
}

func TestHealthWithoutKeyWarns(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"health"}, env.configPath)
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	requireContains(t, out, "gemini/gemini-2.5-flash")
	requireContains(t, out, "API key not configured")
}

func TestTestNotifyWithoutTopic(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"test-notify"}, env.configPath)
	if err != nil {
		t.Fatalf("test-notify: %v", err)
	}
	requireContains(t, out, "Notifications disabled")
}

func TestLogsCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"logs"}, env.configPath)
	if err != nil {
		t.Fatalf("logs: %v", err)
	}
	requireContains(t, out, "No log files")

	if err := os.MkdirAll(env.logDir, 0o755); err != nil {
		t.Fatalf("mkdir log dir: %v", err)
	}
	body := "one\ntwo\nthree\n"
	if err := os.WriteFile(filepath.Join(env.logDir, "lectern-2026-03-04.log"), []byte(body), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	out, _, err = runCLI(t, []string{"logs", "-n", "2"}, env.configPath)
	if err != nil {
		t.Fatalf("logs -n 2: %v", err)
	}
	if out != "two\nthree\n" {
		t.Fatalf("unexpected logs output %q", out)
	}
}
