package integration

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/confres/internal/application"
	"github.com/eugenenazirov/confres/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestResolutionFlow(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env",
		"DB_NAME=from-file\n#comment\nDB_PASSWORD=secret\nBASE_URL=from-file:5432\nCLIENT_ID=1\n")
	yamlFile := writeFile(t, dir, "config.yaml",
		"db_name: from-yaml\nclient_id: 99\nextra_key: ignored\n")

	t.Setenv("DB_NAME", "from-env")
	t.Setenv("BASE_URL", "from-env:5432")
	// registers cleanup, then guarantees the keys are absent from the process
	// environment so the .env file provides them
	for _, key := range []string{"DB_PASSWORD", "CLIENT_ID"} {
		t.Setenv(key, "unset-me")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}

	app := application.New(application.Options{
		Tokens:   []string{"DB_NAME=from-tokens"},
		EnvFiles: []string{envFile},
		YAMLFile: yamlFile,
	}, zaptest.NewLogger(t))

	record, err := app.Resolve()
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	// command-line beats environment beats .env file beats YAML
	if record.DBName != "from-tokens" {
		t.Fatalf("expected DB_NAME from tokens, got %q", record.DBName)
	}
	if record.BaseURL != "from-env:5432" {
		t.Fatalf("expected BASE_URL from environment, got %q", record.BaseURL)
	}
	if record.DBPassword != "secret" {
		t.Fatalf("expected DB_PASSWORD from .env file, got %q", record.DBPassword)
	}
	if record.ClientID != 1 {
		t.Fatalf("expected CLIENT_ID from .env file, got %d", record.ClientID)
	}
}

func TestResolutionFallsBackPastMissingFile(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env",
		"DB_NAME=users\nDB_PASSWORD=secret\nBASE_URL=localhost:5432\nCLIENT_ID=2\n")

	app := application.New(application.Options{
		EnvFiles:        []string{filepath.Join(dir, "missing.env"), envFile},
		SkipEnvironment: true,
	}, zaptest.NewLogger(t))

	record, err := app.Resolve()
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if record.DBName != "users" || record.ClientID != 2 {
		t.Fatalf("unexpected record %+v", record)
	}
}

func TestEncodeResolveRoundTrip(t *testing.T) {
	original := config.Record{
		DBName:     "users",
		DBPassword: "secret",
		BaseURL:    "localhost:5432",
		ClientID:   2,
	}

	encoded, err := original.Encode()
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}

	dir := t.TempDir()
	envFile := writeFile(t, dir, "roundtrip.env", encoded)

	app := application.New(application.Options{
		EnvFiles:        []string{envFile},
		SkipEnvironment: true,
	}, zaptest.NewLogger(t))

	record, err := app.Resolve()
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if record != original {
		t.Fatalf("round trip mismatch: %+v != %+v", record, original)
	}
}
