package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	outputDir  string
	stateDir   string
	logDir     string
	planPath   string
}

const testPlan = `title = "Classes 101"

[[topics]]
topic = "Classes 101"
type = "title"

[[topics]]
topic = "What is a class?"
type = "concept"

[[topics]]
topic = "Questions"
type = "qa"
`

func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"LECTERN_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY", "API_KEY", "LECTERN_API_TOKEN"} {
		t.Setenv(name, "")
	}
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()
	clearKeyEnv(t)

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	env := &cliTestEnv{
		baseDir:    base,
		configPath: filepath.Join(base, "lectern.toml"),
		outputDir:  filepath.Join(base, "out"),
		stateDir:   filepath.Join(base, "state"),
		logDir:     filepath.Join(base, "state", "logs"),
		planPath:   filepath.Join(base, "plan.toml"),
	}
	if err := os.WriteFile(env.planPath, []byte(testPlan), 0o644); err != nil {
		t.Fatalf("write plan: %v", err)
	}
	writeTestConfig(t, env)
	return env
}

func writeTestConfig(t *testing.T, env *cliTestEnv) {
	t.Helper()
	content := fmt.Sprintf(
		"[paths]\noutput_dir = %q\nstate_dir = %q\nlog_dir = %q\napi_bind = \"127.0.0.1:0\"\n\n"+
			"[lesson]\nplan_path = %q\npresentation_title = \"Classes 101\"\n\n"+
			"[ui]\nlocale = \"en\"\n",
		filepath.ToSlash(env.outputDir),
		filepath.ToSlash(env.stateDir),
		filepath.ToSlash(env.logDir),
		filepath.ToSlash(env.planPath),
	)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
