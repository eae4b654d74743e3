package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var embedded InvokerConfig
	if err := yaml.Unmarshal(defaultInvokerYAML, &embedded); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if !reflect.DeepEqual(embedded, DefaultInvokerConfig()) {
		t.Errorf("embedded defaults drifted from DefaultInvokerConfig():\n got %+v\nwant %+v", embedded, DefaultInvokerConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultInvokerConfig().Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "hit_window: 40\nspawn:\n  base_rate: 0\n  max_rate: 0\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.HitWindow != 40 {
		t.Errorf("HitWindow = %v, expected 40", cfg.HitWindow)
	}
	if cfg.Spawn.BaseRate != 0 || cfg.Spawn.MaxRate != 0 {
		t.Errorf("spawn rates = %v/%v, expected 0/0", cfg.Spawn.BaseRate, cfg.Spawn.MaxRate)
	}
	// Untouched keys keep their defaults
	if cfg.Tracks != 5 {
		t.Errorf("Tracks = %d, expected default 5", cfg.Tracks)
	}
	if cfg.Spawn.BaseFallSpeed != 120 {
		t.Errorf("BaseFallSpeed = %v, expected default 120", cfg.Spawn.BaseFallSpeed)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom path")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "tracks: [not, a, number\n")
	if _, err := Load(bad); err == nil {
		t.Error("Load() should fail for malformed YAML")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultInvokerConfig()) {
		t.Error("Load() without files should return the defaults")
	}

	// Local configs directory
	writeFile(t, filepath.Join(work, "configs", "invoker.yaml"), "circles: 4\n")
	cfg, _ = Load("")
	if cfg.Circles != 4 {
		t.Errorf("Circles = %d, expected 4 from ./configs", cfg.Circles)
	}

	// User directory wins over the local one
	writeFile(t, filepath.Join(home, ".invoker", "configs", "invoker.yaml"), "circles: 2\n")
	cfg, _ = Load("")
	if cfg.Circles != 2 {
		t.Errorf("Circles = %d, expected 2 from ~/.invoker", cfg.Circles)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *InvokerConfig)
		code   string
	}{
		{"zero tracks", func(c *InvokerConfig) { c.Tracks = 0; c.Keybindings = nil }, "INVALID_TRACKS"},
		{"keybinding count", func(c *InvokerConfig) { c.Keybindings = c.Keybindings[:3] }, "KEYBINDING_COUNT"},
		{"duplicate key", func(c *InvokerConfig) { c.Keybindings[1] = "KeyA" }, "DUPLICATE_KEYBINDING"},
		{"empty key", func(c *InvokerConfig) { c.Keybindings[2] = "" }, "EMPTY_KEYBINDING"},
		{"arrow key", func(c *InvokerConfig) { c.Keybindings[0] = "ArrowLeft" }, "INVALID_KEYBINDING"},
		{"lowercase key code", func(c *InvokerConfig) { c.Keybindings[0] = "Keya" }, "INVALID_KEYBINDING"},
		{"quit key", func(c *InvokerConfig) {
			c.Keybindings = []string{"KeyQ", "KeyW", "KeyE", "KeyR", "KeyT"}
		}, "RESERVED_KEYBINDING"},
		{"pause key", func(c *InvokerConfig) { c.Keybindings[4] = "KeyP" }, "RESERVED_KEYBINDING"},
		{"missing color", func(c *InvokerConfig) { c.Colors = []string{"red", "green", "blue"} }, "MISSING_COLOR"},
		{"no colors", func(c *InvokerConfig) { c.Colors = nil }, "NO_COLORS"},
		{"unknown color", func(c *InvokerConfig) { c.Colors = []string{"red", "mauve"} }, "INVALID_COLOR"},
		{"duplicate color", func(c *InvokerConfig) { c.Colors = []string{"red", "Red"} }, "DUPLICATE_COLOR"},
		{"unknown glitch color", func(c *InvokerConfig) { c.GlitchColor = "teal" }, "INVALID_COLOR"},
		{"no circles", func(c *InvokerConfig) { c.Circles = 0 }, "INVALID_CIRCLES"},
		{"screen height", func(c *InvokerConfig) { c.ScreenHeight = 0 }, "INVALID_SCREEN"},
		{"hit window", func(c *InvokerConfig) { c.HitWindow = -1 }, "INVALID_HIT_WINDOW"},
		{"bounds", func(c *InvokerConfig) { c.Difficulty.Min = 0.9; c.Difficulty.Max = 0.1 }, "INVALID_BOUNDS"},
		{"initial", func(c *InvokerConfig) { c.Difficulty.Initial = 1.5 }, "INVALID_INITIAL"},
		{"negative drift", func(c *InvokerConfig) { c.Difficulty.DriftPerSecond = -0.1 }, "NEGATIVE_DELTA"},
		{"negative rate", func(c *InvokerConfig) { c.Spawn.BaseRate = -1 }, "NEGATIVE_RATE"},
		{"max rate below base", func(c *InvokerConfig) { c.Spawn.MaxRate = 0.5 }, "INVALID_RATE"},
		{"max speed below base", func(c *InvokerConfig) { c.Spawn.MaxFallSpeed = 10 }, "INVALID_SPEED"},
		{"jitter", func(c *InvokerConfig) { c.Spawn.JitterMin = 1.3 }, "INVALID_JITTER"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultInvokerConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, expected ValidationError", err)
			}
			if verr.Code != tc.code {
				t.Errorf("Validate() code = %s, expected %s", verr.Code, tc.code)
			}
		})
	}
}

func TestIsKeyCode(t *testing.T) {
	valid := []string{"KeyA", "KeyZ", "Digit0", "Digit9", "Space"}
	invalid := []string{"", "Key", "Keya", "Key1", "KeyAB", "Digit", "DigitX", "ArrowLeft", "Enter", "a"}

	for _, code := range valid {
		if !IsKeyCode(code) {
			t.Errorf("IsKeyCode(%q) = false, expected true", code)
		}
	}
	for _, code := range invalid {
		if IsKeyCode(code) {
			t.Errorf("IsKeyCode(%q) = true, expected false", code)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultInvokerConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Difficulty.Initial != 0.7 {
		t.Errorf("hard initial = %v, expected 0.7", cfg.Difficulty.Initial)
	}
	if want := DefaultInvokerConfig().HitWindow * 0.8; cfg.HitWindow != want {
		t.Errorf("hard hit window = %v, expected %v", cfg.HitWindow, want)
	}

	cfg = DefaultInvokerConfig()
	ApplyPreset(&cfg, DifficultyEasy)
	if cfg.Difficulty.Initial != 0.0 {
		t.Errorf("easy initial = %v, expected 0", cfg.Difficulty.Initial)
	}
	if want := DefaultInvokerConfig().HitWindow * 1.25; cfg.HitWindow != want {
		t.Errorf("easy hit window = %v, expected %v", cfg.HitWindow, want)
	}

	cfg = DefaultInvokerConfig()
	ApplyPreset(&cfg, DifficultyNormal)
	if cfg.HitWindow != DefaultInvokerConfig().HitWindow {
		t.Errorf("normal should keep the hit window, got %v", cfg.HitWindow)
	}

	cfg = DefaultInvokerConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	d := cfg.Difficulty
	if d.DriftPerSecond != 0 || d.CompletionDelta != 0 || d.OverCollectionBase != 0 || d.OverCollectionScale != 0 {
		t.Errorf("fixed preset should zero all transitions, got %+v", d)
	}
	if cfg.HitWindow != DefaultInvokerConfig().HitWindow {
		t.Errorf("fixed should keep the hit window, got %v", cfg.HitWindow)
	}
	if d.Initial != DefaultInvokerConfig().Difficulty.Initial {
		t.Errorf("fixed preset should keep the configured initial level, got %v", d.Initial)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
		ok   bool
	}{
		{"easy", DifficultyEasy, true},
		{"normal", DifficultyNormal, true},
		{"hard", DifficultyHard, true},
		{"fixed", DifficultyFixed, true},
		{"", "", false},
		{"nightmare", "", false},
	}

	for _, tc := range tests {
		got, ok := ParsePreset(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParsePreset(%q) = (%q, %v), expected (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
