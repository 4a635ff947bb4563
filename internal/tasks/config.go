package tasks

import "time"

// Config holds configuration for the task queue system. Zero fields fall
// back to the values from DefaultConfig when the client is created.
type Config struct {
	// Workers is the number of concurrent task workers. The queue only
	// carries audit maintenance, so one is enough. Default: 1
	Workers int

	// MaxRetries is the default maximum retry attempts for failed tasks. Default: 3
	MaxRetries int

	// RetryDelay is the default backoff duration between retries. Default: 5m
	RetryDelay time.Duration

	// TaskTimeout is the default timeout for task execution. Cleanup is a
	// single DELETE, so this stays short. Default: 2m
	TaskTimeout time.Duration

	// ReleaseAfter is when stuck tasks are released back to queue. Default: 10m
	ReleaseAfter time.Duration

	// CleanupInterval is how often to clean up completed tasks. Default: 1h
	CleanupInterval time.Duration

	// RetentionDuration is how long to keep completed task rows for
	// inspection. Default: 48h
	RetentionDuration time.Duration
}

// DefaultConfig returns a Config tuned for the audit cleanup workload.
func DefaultConfig() Config {
	return Config{
		Workers:           1,
		MaxRetries:        3,
		RetryDelay:        5 * time.Minute,
		TaskTimeout:       2 * time.Minute,
		ReleaseAfter:      10 * time.Minute,
		CleanupInterval:   1 * time.Hour,
		RetentionDuration: 48 * time.Hour,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Workers <= 0 {
		c.Workers = d.Workers
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = d.MaxRetries
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = d.RetryDelay
	}
	if c.TaskTimeout <= 0 {
		c.TaskTimeout = d.TaskTimeout
	}
	if c.ReleaseAfter <= 0 {
		c.ReleaseAfter = d.ReleaseAfter
	}
	if c.CleanupInterval <= 0 {
		c.CleanupInterval = d.CleanupInterval
	}
	if c.RetentionDuration <= 0 {
		c.RetentionDuration = d.RetentionDuration
	}
	return c
}
