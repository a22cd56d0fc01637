package environment

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("SECRET", "")
	t.Setenv("PORT", "")

	env, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatal(err)
	}

	if env.Environment != Dev {
		t.Errorf("Environment = %q, want %q", env.Environment, Dev)
	}
	if env.Port != "8080" {
		t.Errorf("Port = %q, want 8080", env.Port)
	}
	if env.Secret != "local" {
		t.Errorf("Secret = %q, want local", env.Secret)
	}
	if !env.TransactionsEnabled() {
		t.Error("transactions should be enabled by default")
	}
}

func TestLoad_FileAndOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	err := os.WriteFile(path, []byte("PORT=9000\nDATABASE=clinic\nMONGO_TRANSACTIONS=false\n"), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	t.Setenv("APP_ENV", "")
	t.Setenv("SECRET", "")
	t.Setenv("PORT", "9999")

	env, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if env.Port != "9999" {
		t.Errorf("Port = %q, process environment should win", env.Port)
	}
	if env.Database != "clinic" {
		t.Errorf("Database = %q, want clinic", env.Database)
	}
	if env.TransactionsEnabled() {
		t.Error("transactions should be disabled")
	}
}

func TestLoad_SecretRequiredInProduction(t *testing.T) {
	t.Setenv("APP_ENV", Production)
	t.Setenv("SECRET", "")

	_, err := Load("")
	if err != ErrMissingSecret {
		t.Fatalf("err = %v, want ErrMissingSecret", err)
	}
}
