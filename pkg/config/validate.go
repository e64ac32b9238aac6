package config

import (
	"fmt"
	"strings"
)

// Validate checks ranges and enumerations. Load calls it automatically.
func (c *Config) Validate() error {
	if c.Storage.Words == "" || c.Storage.Sentences == "" || c.Storage.Groups == "" {
		return fmt.Errorf("storage: all three snapshot paths must be set")
	}
	if p := c.Practice.RepeatProbability; p < 0 || p > 1 {
		return fmt.Errorf("practice.repeat_probability must be within [0, 1] (got %v)", p)
	}
	if c.Search.Results <= 0 {
		return fmt.Errorf("search.results must be > 0 (got %d)", c.Search.Results)
	}
	switch strings.ToLower(c.Explain.Segmenter) {
	case "latin", "kagome":
	default:
		return fmt.Errorf("explain.segmenter must be latin or kagome (got %q)", c.Explain.Segmenter)
	}
	if c.Explain.CacheSize <= 0 {
		return fmt.Errorf("explain.cache_size must be > 0 (got %d)", c.Explain.CacheSize)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json (got %q)", c.Log.Format)
	}
	return nil
}
