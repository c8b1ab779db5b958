package config

import (
	"fmt"
	"time"
)

// ValidatePositiveDuration returns an error if d is zero or negative.
func ValidatePositiveDuration(name string, d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%s must be positive, got %s", name, d)
	}
	return nil
}

// ValidateDurationRange returns an error if d falls outside [min, max].
func ValidateDurationRange(name string, d, min, max time.Duration) error {
	if d < min || d > max {
		return fmt.Errorf("%s must be between %s and %s, got %s", name, min, max, d)
	}
	return nil
}
