package config

import (
	"fmt"
	"net/url"

	"github.com/leapstack-labs/smartgen/pkg/core"
)

var outputModes = map[string]bool{"": true, "auto": true, "text": true, "markdown": true, "json": true}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !outputModes[c.OutputFormat] {
		return fmt.Errorf("output: unknown format %q (want auto, text, markdown or json)", c.OutputFormat)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency: must not be negative, got %d", c.Concurrency)
	}
	if c.Fix != nil && c.Fix.MaxPasses < 0 {
		return fmt.Errorf("fix.max_passes: must not be negative, got %d", c.Fix.MaxPasses)
	}
	if c.Lint != nil && c.Lint.DocsURL != "" {
		u, err := url.Parse(c.Lint.DocsURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("lint.docs_url: want an http(s) URL, got %q", c.Lint.DocsURL)
		}
	}
	if c.Lint != nil {
		for id, sev := range c.Lint.Severity {
			if _, ok := core.ParseSeverity(sev); !ok {
				return fmt.Errorf("lint.severity.%s: unknown severity %q", id, sev)
			}
		}
	}
	return nil
}
