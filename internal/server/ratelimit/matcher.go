package ratelimit

import "strings"

// unlimited endpoints are never throttled.
var unlimited = map[string]bool{
	"GET /health": true,
	"OPTIONS *":   true,
}

// MatchEndpoint returns the configuration for a path and method, or nil when the default
// limit applies. Exact paths win over prefixes and longer prefixes win over shorter ones.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if unlimited[method+" "+path] || unlimited[method+" *"] {
		return &EndpointConfig{}
	}

	methodMatches := func(c *EndpointConfig) bool {
		return c.Method == "" || c.Method == method
	}

	for i := range configs {
		c := &configs[i]
		if c.Path == path && methodMatches(c) {
			return c
		}
	}

	var best *EndpointConfig
	for i := range configs {
		c := &configs[i]
		if !methodMatches(c) || !strings.HasSuffix(c.Path, "/") || !strings.HasPrefix(path, c.Path) {
			continue
		}
		if best == nil || len(c.Path) > len(best.Path) {
			best = c
		}
	}
	return best
}
