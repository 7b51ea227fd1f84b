package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := DefaultConfig()
	if *cfg != *want {
		t.Fatalf("got %+v, want %+v", cfg, want)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "folio.yaml")
	data := "breakpoint: 120\ntheme: light\nsidebar_width: 40\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FOLIO_THEME", "dark")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Breakpoint != 120 || cfg.SidebarWidth != 40 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Theme != ThemeDark {
		t.Fatalf("expected env override to win, got %q", cfg.Theme)
	}
	if cfg.DetectionOffset != 2 {
		t.Fatalf("expected default offset kept, got %d", cfg.DetectionOffset)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yaml")
	cfg := DefaultConfig()
	cfg.Breakpoint = 140
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Breakpoint != 140 {
		t.Fatalf("expected breakpoint 140, got %d", got.Breakpoint)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero breakpoint", func(c *Config) { c.Breakpoint = 0 }, true},
		{"negative offset", func(c *Config) { c.DetectionOffset = -1 }, true},
		{"narrow sidebar", func(c *Config) { c.SidebarWidth = 4 }, true},
		{"sidebar wider than breakpoint", func(c *Config) { c.SidebarWidth = 200 }, true},
		{"bad theme", func(c *Config) { c.Theme = "sepia" }, true},
		{"negative wrap", func(c *Config) { c.Wrap = -5 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
