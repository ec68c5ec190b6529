package config

import (
	"fmt"
	"strings"
)

// validateConfig rejects configurations that would weaken or break the
// outbound fetch policy before the process starts serving.
func validateConfig(config *Config) error {
	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if len(config.Fetch.AllowedSchemes) == 0 {
		return fmt.Errorf("URL_ALLOWED_SCHEMES must not be empty")
	}
	for _, scheme := range config.Fetch.AllowedSchemes {
		switch strings.ToLower(scheme) {
		case "http", "https":
		default:
			return fmt.Errorf("unsupported scheme in URL_ALLOWED_SCHEMES: %s", scheme)
		}
	}

	if config.Fetch.MaxRedirects < 0 {
		return fmt.Errorf("URL_MAX_REDIRECTS must not be negative: %d", config.Fetch.MaxRedirects)
	}
	if config.Fetch.MaxBytes <= 0 {
		return fmt.Errorf("HTTP_MAX_BYTES must be positive: %d", config.Fetch.MaxBytes)
	}
	if config.RSS.MaxBytes <= 0 {
		return fmt.Errorf("RSS_MAX_BYTES must be positive: %d", config.RSS.MaxBytes)
	}

	switch config.RSS.ItemLinkPolicy {
	case "A", "B":
	default:
		return fmt.Errorf("RSS_ITEM_LINK_POLICY must be A or B: %s", config.RSS.ItemLinkPolicy)
	}

	if config.RSS.SearchLimit <= 0 {
		return fmt.Errorf("RSS_SEARCH_LIMIT must be positive: %d", config.RSS.SearchLimit)
	}
	if config.RSS.FetchConcurrency <= 0 {
		return fmt.Errorf("RSS_FETCH_CONCURRENCY must be positive: %d", config.RSS.FetchConcurrency)
	}

	if config.HTTP.ConnectTimeout <= 0 || config.HTTP.ReadTimeout <= 0 {
		return fmt.Errorf("HTTP timeouts must be positive")
	}

	return nil
}
