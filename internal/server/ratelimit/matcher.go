package ratelimit

import (
	"net/http"
	"strings"
)

var unmetered = &EndpointConfig{}

// MatchEndpoint returns the config for method and path, or nil when the
// default limit applies. GET /health is never metered. Exact paths win over
// prefix paths.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == http.MethodGet {
		return unmetered
	}

	for i := range configs {
		if configs[i].Method == method && configs[i].Path == path {
			return &configs[i]
		}
	}
	for i := range configs {
		c := &configs[i]
		if c.Method == method && strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			return c
		}
	}
	return nil
}
