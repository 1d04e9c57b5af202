package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginHost(t *testing.T) {
	assert.Equal(t, "example.com", originHost("https://example.com"))
	assert.Equal(t, "example.com:8080", originHost("http://example.com:8080"))
	assert.Equal(t, "no-scheme", originHost("no-scheme"))
}

func TestOriginMatcherAllow(t *testing.T) {
	m := newOriginMatcher([]string{"example.com", "*.example.com", "localhost:*"})

	assert.True(t, m.allow("https://example.com"))
	assert.True(t, m.allow("https://www.example.com"))
	assert.True(t, m.allow("https://a.b.example.com"))
	assert.True(t, m.allow("http://localhost:3000"))

	assert.False(t, m.allow("https://example.org"))
	assert.False(t, m.allow("https://badexample.com"))
	assert.False(t, m.allow("http://remotehost:3000"))
}

func TestOriginMatcherEmptyListAllowsAll(t *testing.T) {
	m := newOriginMatcher(nil)
	assert.True(t, m.allow("https://anything.test"))
}
