package ratelimit

import (
	"strings"
)

// MatchEndpoint matches a request path and method to an endpoint configuration.
// Returns the matching EndpointConfig or nil if no match is found.
// Path matching supports prefix matching (e.g., "/api/cvs/" matches "/api/cvs/{id}").
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// Special case: health check endpoint is unlimited
	if path == "/health" && method == "GET" {
		return &EndpointConfig{
			Limit:  0, // Unlimited
			Window: 0,
			Burst:  0,
		}
	}

	// Try exact match first
	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Suffix == "" && config.Method == method {
			return config
		}
	}

	// Try prefix match (for paths ending with "/"). Rules carrying a Suffix
	// additionally require the path to end with it; listing order decides
	// between overlapping rules.
	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") {
			if strings.HasPrefix(path, config.Path) {
				if config.Suffix != "" && !strings.HasSuffix(path, config.Suffix) {
					continue
				}
				return config
			}
		}
	}

	// No match found
	return nil
}
