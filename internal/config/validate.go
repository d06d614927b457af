package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/storyreader-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Reading.validate(); err != nil {
		return fmt.Errorf("reading: %w", err)
	}

	if c.RateLimit.TextPerMinute < 0 {
		return fmt.Errorf("rate_limit.text_per_minute must be >= 0 (got %d)", c.RateLimit.TextPerMinute)
	}
	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %s)", c.RateLimit.CleanupInterval)
	}

	return nil
}

func (r *ReadingConfig) validate() error {
	if r.MinSpeechRate <= 0 {
		return fmt.Errorf("min_speech_rate must be > 0 (got %v)", r.MinSpeechRate)
	}
	if r.MaxSpeechRate < r.MinSpeechRate {
		return fmt.Errorf("max_speech_rate (%v) must be >= min_speech_rate (%v)", r.MaxSpeechRate, r.MinSpeechRate)
	}
	if r.DefaultSpeechRate < r.MinSpeechRate || r.DefaultSpeechRate > r.MaxSpeechRate {
		return fmt.Errorf("default_speech_rate %v must be within [%v, %v]", r.DefaultSpeechRate, r.MinSpeechRate, r.MaxSpeechRate)
	}
	if r.MaxTextLength <= 0 {
		return fmt.Errorf("max_text_length must be > 0 (got %d)", r.MaxTextLength)
	}
	if r.MaxBatchWords <= 0 {
		return fmt.Errorf("max_batch_words must be > 0 (got %d)", r.MaxBatchWords)
	}
	if r.Workers < 1 {
		return fmt.Errorf("workers must be >= 1 (got %d)", r.Workers)
	}
	return nil
}

// Settings converts the loaded section into the reading service settings.
func (r ReadingConfig) Settings() domain.ReadingSettings {
	return domain.ReadingSettings{
		DefaultSpeechRate: r.DefaultSpeechRate,
		MinSpeechRate:     r.MinSpeechRate,
		MaxSpeechRate:     r.MaxSpeechRate,
		AutoPlay:          r.AutoPlay,
		MaxTextLength:     r.MaxTextLength,
		MaxBatchWords:     r.MaxBatchWords,
		Workers:           r.Workers,
	}
}

// ClampRate limits a requested speech rate to the configured bounds.
// A zero rate selects the default.
func (r ReadingConfig) ClampRate(rate float64) float64 {
	return r.Settings().ClampRate(rate)
}
