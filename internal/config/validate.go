package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be within [4, 31] (got %d)", c.Auth.PasswordHashCost)
	}

	if c.Planning.MaxSchedulableHoursPerDay <= 0 || c.Planning.MaxSchedulableHoursPerDay > 24 {
		return fmt.Errorf("planning.max_schedulable_hours_per_day must be within (0, 24] (got %v)", c.Planning.MaxSchedulableHoursPerDay)
	}

	if c.Planning.MaxSuggestions <= 0 {
		return fmt.Errorf("planning.max_suggestions must be > 0 (got %d)", c.Planning.MaxSuggestions)
	}

	if c.AI.Timeout <= 0 {
		return fmt.Errorf("ai.timeout must be > 0 (got %v)", c.AI.Timeout)
	}

	if c.ImageSearch.Timeout <= 0 {
		return fmt.Errorf("image_search.timeout must be > 0 (got %v)", c.ImageSearch.Timeout)
	}

	return nil
}
