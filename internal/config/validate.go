package config

import (
	"fmt"
	"strings"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// KnownColors lists the piece colors the simulation understands, in
// quadrant order.
var KnownColors = []string{"red", "green", "yellow", "blue"}

// IsKnownColor reports whether name is one of KnownColors (case-insensitive).
func IsKnownColor(name string) bool {
	for _, c := range KnownColors {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	return false
}

// ReservedKeyCodes are held by the session controls (pause, new run, quit)
// and cannot be bound to a track.
var ReservedKeyCodes = []string{"KeyP", "KeyR", "KeyQ"}

// IsKeyCode reports whether code is a key code a track can be bound to:
// "KeyA".."KeyZ", "Digit0".."Digit9" or "Space".
func IsKeyCode(code string) bool {
	switch {
	case code == "Space":
		return true
	case len(code) == 4 && strings.HasPrefix(code, "Key"):
		return code[3] >= 'A' && code[3] <= 'Z'
	case len(code) == 6 && strings.HasPrefix(code, "Digit"):
		return code[5] >= '0' && code[5] <= '9'
	}
	return false
}

func isReservedKeyCode(code string) bool {
	for _, r := range ReservedKeyCodes {
		if r == code {
			return true
		}
	}
	return false
}

// Validate checks the preconditions the simulation relies on.
// The simulation itself never re-checks them.
func (c InvokerConfig) Validate() error {
	checks := []func() error{
		c.validateTracks,
		c.validateField,
		c.validateColors,
		c.validateDifficulty,
		c.validateSpawn,
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func (c InvokerConfig) validateTracks() error {
	if c.Tracks <= 0 {
		return ValidationError{Code: "INVALID_TRACKS", Message: fmt.Sprintf("tracks must be positive, got %d", c.Tracks)}
	}
	if len(c.Keybindings) != c.Tracks {
		return ValidationError{
			Code:    "KEYBINDING_COUNT",
			Message: fmt.Sprintf("need %d keybindings, got %d", c.Tracks, len(c.Keybindings)),
		}
	}

	seen := make(map[string]bool, len(c.Keybindings))
	for _, k := range c.Keybindings {
		if k == "" {
			return ValidationError{Code: "EMPTY_KEYBINDING", Message: "keybinding must not be empty"}
		}
		if !IsKeyCode(k) {
			return ValidationError{
				Code:    "INVALID_KEYBINDING",
				Message: fmt.Sprintf("key %s is not a letter, digit or Space key code", k),
			}
		}
		if isReservedKeyCode(k) {
			return ValidationError{
				Code:    "RESERVED_KEYBINDING",
				Message: fmt.Sprintf("key %s is reserved for session controls", k),
			}
		}
		if seen[k] {
			return ValidationError{Code: "DUPLICATE_KEYBINDING", Message: fmt.Sprintf("key %s bound twice", k)}
		}
		seen[k] = true
	}
	return nil
}

func (c InvokerConfig) validateField() error {
	if c.ScreenHeight <= 0 {
		return ValidationError{Code: "INVALID_SCREEN", Message: "screen_height must be positive"}
	}
	if c.HitWindow < 0 {
		return ValidationError{Code: "INVALID_HIT_WINDOW", Message: "hit_window must not be negative"}
	}
	if c.CullMargin < 0 {
		return ValidationError{Code: "INVALID_CULL_MARGIN", Message: "cull_margin must not be negative"}
	}
	if c.Circles < 1 {
		return ValidationError{Code: "INVALID_CIRCLES", Message: fmt.Sprintf("need at least one circle, got %d", c.Circles)}
	}
	if c.CompletionAward < 0 {
		return ValidationError{Code: "INVALID_AWARD", Message: "completion_award must not be negative"}
	}
	return nil
}

func (c InvokerConfig) validateColors() error {
	if len(c.Colors) == 0 {
		return ValidationError{Code: "NO_COLORS", Message: "at least one color is required"}
	}

	seen := make(map[string]bool, len(c.Colors))
	for _, name := range c.Colors {
		if !IsKnownColor(name) {
			return ValidationError{Code: "INVALID_COLOR", Message: fmt.Sprintf("unknown color %q", name)}
		}
		key := strings.ToLower(name)
		if seen[key] {
			return ValidationError{Code: "DUPLICATE_COLOR", Message: fmt.Sprintf("color %s listed twice", name)}
		}
		seen[key] = true
	}

	// Every quadrant needs its color or no circle can ever complete.
	for _, name := range KnownColors {
		if !seen[name] {
			return ValidationError{Code: "MISSING_COLOR", Message: fmt.Sprintf("color %s is required to fill its quadrant", name)}
		}
	}

	if c.GlitchColor != "" && !IsKnownColor(c.GlitchColor) {
		return ValidationError{Code: "INVALID_COLOR", Message: fmt.Sprintf("unknown glitch color %q", c.GlitchColor)}
	}
	return nil
}

func (c InvokerConfig) validateDifficulty() error {
	d := c.Difficulty
	if d.Min > d.Max {
		return ValidationError{Code: "INVALID_BOUNDS", Message: fmt.Sprintf("difficulty min %.3f exceeds max %.3f", d.Min, d.Max)}
	}
	if d.Initial < d.Min || d.Initial > d.Max {
		return ValidationError{
			Code:    "INVALID_INITIAL",
			Message: fmt.Sprintf("initial difficulty %.3f outside [%.3f, %.3f]", d.Initial, d.Min, d.Max),
		}
	}
	if d.DriftPerSecond < 0 || d.CompletionDelta < 0 || d.OverCollectionBase < 0 || d.OverCollectionScale < 0 {
		return ValidationError{Code: "NEGATIVE_DELTA", Message: "difficulty deltas must not be negative"}
	}
	return nil
}

func (c InvokerConfig) validateSpawn() error {
	s := c.Spawn
	if s.BaseRate < 0 || s.MaxRate < 0 || s.BaseFallSpeed < 0 || s.MaxFallSpeed < 0 {
		return ValidationError{Code: "NEGATIVE_RATE", Message: "spawn rates and fall speeds must not be negative"}
	}
	if s.MaxRate < s.BaseRate {
		return ValidationError{Code: "INVALID_RATE", Message: "max_rate is below base_rate"}
	}
	if s.MaxFallSpeed < s.BaseFallSpeed {
		return ValidationError{Code: "INVALID_SPEED", Message: "max_fall_speed is below base_fall_speed"}
	}
	if s.JitterMin <= 0 || s.JitterMin > s.JitterMax {
		return ValidationError{
			Code:    "INVALID_JITTER",
			Message: fmt.Sprintf("jitter range [%.2f, %.2f] is invalid", s.JitterMin, s.JitterMax),
		}
	}
	return nil
}
