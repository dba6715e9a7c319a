// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
)

// noEnvFile keeps a stray .env in the package directory out of the tests.
var noEnvFile = []string{"-env", ""}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "DATABASE_URL", "DATABASE_TYPE", "JUDGE_NAMES", "CORS_ORIGINS"} {
		t.Setenv(k, "")
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := ParseFlags(noEnvFile)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabaseSQLite {
		t.Errorf("expected sqlite by default, got %q", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "file:ippon.db" {
		t.Errorf("expected default sqlite URL, got %q", cfg.DatabaseURL)
	}
	if len(cfg.JudgeNames) != 5 || cfg.JudgeNames[0] != "Judge 1" {
		t.Errorf("unexpected default judge names: %v", cfg.JudgeNames)
	}
	if len(cfg.CORSOrigins) != 0 {
		t.Errorf("expected no CORS origins, got %v", cfg.CORSOrigins)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("JUDGE_NAMES", "A, B ,C,D,E")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173")

	cfg, err := ParseFlags(noEnvFile)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabasePostgres {
		t.Errorf("expected postgres, got %q", cfg.DatabaseType)
	}
	if cfg.JudgeNames[1] != "B" {
		t.Errorf("expected trimmed judge name B, got %q", cfg.JudgeNames[1])
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:5173" {
		t.Errorf("unexpected CORS origins: %v", cfg.CORSOrigins)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "9000")

	cfg, err := ParseFlags([]string{"-env", "", "-p", "8080", "-d", "file:test.db", "-t", "sqlite"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "file:test.db" {
		t.Errorf("expected file:test.db, got %q", cfg.DatabaseURL)
	}
}

func TestParseFlags_EnvFile(t *testing.T) {
	clearConfigEnv(t)
	os.Unsetenv("PORT")

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("PORT=7001\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("PORT") })

	cfg, err := ParseFlags([]string{"-env", path})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 7001 {
		t.Errorf("expected port from env file, got %d", cfg.Port)
	}
}

func TestParseFlags_MissingEnvFileIsFine(t *testing.T) {
	clearConfigEnv(t)

	_, err := ParseFlags([]string{"-env", filepath.Join(t.TempDir(), "missing.env")})
	if err != nil {
		t.Fatalf("missing env file should be ignored, got %v", err)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{name: "bad PORT env", env: map[string]string{"PORT": "abc"}},
		{name: "port out of range", args: []string{"-p", "70000"}},
		{name: "unknown database type", args: []string{"-t", "mysql"}},
		{name: "postgres without URL", args: []string{"-t", "postgres"}},
		{name: "wrong judge count", args: []string{"-judges", "A,B,C"}},
		{name: "unknown flag", args: []string{"-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if _, err := ParseFlags(append(append([]string{}, noEnvFile...), tt.args...)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
