package app

import "strings"

// originMatcher decides whether a browser Origin header is one of the
// configured site frontends. Patterns come straight from the
// allowed_origins config list and are matched against the origin's
// host[:port]: either an exact value, a "*.domain" subdomain wildcard, or
// a "host:*" any-port wildcard. An empty pattern list allows everything,
// which is also the development behavior.
type originMatcher struct {
	patterns []string
}

func newOriginMatcher(allowed []string) originMatcher {
	return originMatcher{patterns: allowed}
}

func (m originMatcher) allow(origin string) bool {
	if len(m.patterns) == 0 {
		return true
	}
	host := originHost(origin)
	for _, pattern := range m.patterns {
		if originPatternMatches(pattern, host) {
			return true
		}
	}
	return false
}

// originHost strips the scheme from an Origin header value. Origin headers
// carry no path, so everything after "://" is the host[:port].
func originHost(origin string) string {
	if _, rest, ok := strings.Cut(origin, "://"); ok && rest != "" {
		return rest
	}
	return origin
}

func originPatternMatches(pattern, host string) bool {
	switch {
	case pattern == host:
		return true
	case strings.HasPrefix(pattern, "*."):
		return strings.HasSuffix(host, pattern[1:])
	case strings.HasSuffix(pattern, ":*"):
		return strings.HasPrefix(host, pattern[:len(pattern)-1])
	default:
		return false
	}
}
