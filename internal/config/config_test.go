package config

import (
	"os"
	"path/filepath"
	"testing"
)

func useTempConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	useTempConfigHome(t)

	if Exists() {
		t.Fatal("Exists() = true in an empty config home")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("Load = %+v, want defaults %+v", cfg, DefaultConfig())
	}
}

func TestSaveThenLoad(t *testing.T) {
	home := useTempConfigHome(t)

	cfg := DefaultConfig()
	cfg.General.Goal = "medical"
	cfg.General.StartList = "party"
	cfg.Appearance.Theme = "tokyo-night"
	cfg.Log.File = filepath.Join(home, "debug.log")

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}
	if want := filepath.Join(home, "fixgrocery", "config.toml"); Path() != want {
		t.Fatalf("Path() = %q, want %q", Path(), want)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Fatalf("Load = %+v, want %+v", got, cfg)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	useTempConfigHome(t)
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(), []byte("[appearance]\ntheme = \"terminal\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Appearance.Theme != "terminal" {
		t.Errorf("Theme = %q, want terminal", cfg.Appearance.Theme)
	}
	if cfg.General.Goal != "roof" {
		t.Errorf("Goal = %q, want default roof", cfg.General.Goal)
	}
}

func TestLoad_BadTOML(t *testing.T) {
	useTempConfigHome(t)
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(), []byte("[general\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted malformed TOML")
	}
}

func TestThemeName_EnvWins(t *testing.T) {
	cfg := DefaultConfig()

	t.Setenv("FIXGROCERY_THEME", "")
	if got := ThemeName(cfg); got != "flexoki-dark" {
		t.Errorf("ThemeName = %q, want flexoki-dark", got)
	}

	t.Setenv("FIXGROCERY_THEME", "catppuccin-mocha")
	if got := ThemeName(cfg); got != "catppuccin-mocha" {
		t.Errorf("ThemeName = %q, want catppuccin-mocha", got)
	}
}
