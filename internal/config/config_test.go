package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "voltscope.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
sensor:
  sample_rate: 100
api:
  listen: "127.0.0.1:8730"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Sensor.SampleRate != 100 {
		t.Errorf("wrong sample rate, want: 100, got: %v", cfg.Sensor.SampleRate)
	}
	if cfg.API.Listen != "127.0.0.1:8730" {
		t.Errorf("wrong listen address, got: %q", cfg.API.Listen)
	}

	// Unset fields keep compiled defaults.
	if cfg.Sensor.Capacity != HistorySize {
		t.Errorf("capacity default lost, want: %d, got: %d", HistorySize, cfg.Sensor.Capacity)
	}
	if cfg.Scope.FPS != TargetFPS {
		t.Errorf("fps default lost, want: %d, got: %d", TargetFPS, cfg.Scope.FPS)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"negative capacity", "sensor:\n  capacity: -1\n"},
		{"rate too high", "sensor:\n  sample_rate: 99999\n"},
		{"default value out of range", "sensor:\n  default_value: 2.0\n"},
		{"fps out of range", "scope:\n  fps: 500\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.yaml)
			if _, err := Load(path); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("compiled defaults do not validate: %v", err)
	}
}
