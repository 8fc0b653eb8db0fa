package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Hifz.validate(); err != nil {
		return fmt.Errorf("hifz: %w", err)
	}

	if c.Gamification.BaseURL != "" && c.Gamification.Timeout <= 0 {
		return fmt.Errorf("gamification: timeout must be > 0 (got %v)", c.Gamification.Timeout)
	}

	return nil
}

func (h *HifzConfig) validate() error {
	if h.MinEaseFactor <= 0 {
		return fmt.Errorf("min_ease_factor must be > 0 (got %v)", h.MinEaseFactor)
	}
	if h.MaxEaseFactor < h.MinEaseFactor {
		return fmt.Errorf("max_ease_factor must be >= min_ease_factor (got %v < %v)", h.MaxEaseFactor, h.MinEaseFactor)
	}
	if h.DefaultEaseFactor < h.MinEaseFactor || h.DefaultEaseFactor > h.MaxEaseFactor {
		return fmt.Errorf("default_ease_factor must be within [%v, %v] (got %v)", h.MinEaseFactor, h.MaxEaseFactor, h.DefaultEaseFactor)
	}
	if h.MaxIntervalDays <= 0 {
		return fmt.Errorf("max_interval_days must be > 0 (got %d)", h.MaxIntervalDays)
	}
	if h.DueLimitDefault <= 0 {
		return fmt.Errorf("due_limit_default must be > 0 (got %d)", h.DueLimitDefault)
	}
	if h.DueLimitMax < h.DueLimitDefault {
		return fmt.Errorf("due_limit_max must be >= due_limit_default (got %d < %d)", h.DueLimitMax, h.DueLimitDefault)
	}
	if h.MaxRangeSize <= 0 {
		return fmt.Errorf("max_range_size must be > 0 (got %d)", h.MaxRangeSize)
	}
	return nil
}
