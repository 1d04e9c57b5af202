package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "abc", NormalizeToken("abc"))
	assert.Equal(t, "abc", NormalizeToken("  abc  "))
	assert.Equal(t, "abc", NormalizeToken("Bearer abc"))
	assert.Equal(t, "abc", NormalizeToken("bearer abc"))
	assert.Equal(t, "", NormalizeToken(""))
	assert.Equal(t, "", NormalizeToken("   "))
}

func TestShouldSkipCachePath(t *testing.T) {
	patterns := []string{"/api/auth/*", "/api/health", "", "  "}

	assert.True(t, ShouldSkipCachePath("/api/auth/login", patterns))
	assert.True(t, ShouldSkipCachePath("/api/auth/me", patterns))
	assert.True(t, ShouldSkipCachePath("/api/health", patterns))

	assert.False(t, ShouldSkipCachePath("/api/articles", patterns))
	assert.False(t, ShouldSkipCachePath("/api/healthz", patterns))
}
