package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if err := c.Search.validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if c.Audit.WriteTimeout <= 0 {
		return fmt.Errorf("audit.write_timeout must be > 0 (got %v)", c.Audit.WriteTimeout)
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("ratelimit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	if c.Notifications.ReadRetentionDays <= 0 {
		return fmt.Errorf("notifications.read_retention_days must be > 0 (got %d)", c.Notifications.ReadRetentionDays)
	}

	if u := strings.TrimSpace(c.Redis.URL); u != "" && !strings.HasPrefix(u, "redis://") && !strings.HasPrefix(u, "rediss://") {
		return fmt.Errorf("redis.url must use redis:// or rediss:// scheme")
	}

	return nil
}

func (s *SearchConfig) validate() error {
	if s.MaxLimit <= 0 {
		return fmt.Errorf("max_limit must be > 0 (got %d)", s.MaxLimit)
	}
	if s.DefaultLimit <= 0 || s.DefaultLimit > s.MaxLimit {
		return fmt.Errorf("default_limit must be in 1..%d (got %d)", s.MaxLimit, s.DefaultLimit)
	}
	if s.MaxSuggestions <= 0 {
		return fmt.Errorf("max_suggestions must be > 0 (got %d)", s.MaxSuggestions)
	}
	if s.SuggestionTTL < 0 {
		return fmt.Errorf("suggestion_ttl must be >= 0 (got %v)", s.SuggestionTTL)
	}
	return nil
}
