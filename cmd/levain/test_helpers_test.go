package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"levain/internal/config"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	storePath  string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv(config.StorePathEnv, "")

	env := &cliTestEnv{
		baseDir:    base,
		configPath: filepath.Join(base, "levain.toml"),
		storePath:  filepath.Join(base, "data", "recipes.json"),
	}
	writeTestConfig(t, env.configPath, env.storePath)
	return env
}

func writeTestConfig(t *testing.T, path, storePath string) {
	t.Helper()
	content := fmt.Sprintf("[store]\npath = %q\n\n[logging]\nlevel = \"warn\"\n", storePath)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, env *cliTestEnv, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// seedLoaf stores the 800 g flour / 500 g water loaf for four servings.
func seedLoaf(t *testing.T, env *cliTestEnv) {
	t.Helper()
	if _, _, err := runCLI(t, env, "", "create", "Loaf", "--servings", "4",
		"--ingredient", "flour=800", "--ingredient", "water=500"); err != nil {
		t.Fatalf("create Loaf: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected %q not to contain %q", output, substr)
	}
}
