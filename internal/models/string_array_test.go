package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArrayValue(t *testing.T) {
	v, err := StringArray(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = StringArray{"a", "b"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, v)
}

func TestStringArrayScan(t *testing.T) {
	var a StringArray
	require.NoError(t, a.Scan(`["x","y"]`))
	assert.Equal(t, StringArray{"x", "y"}, a)

	require.NoError(t, a.Scan([]byte(`["z"]`)))
	assert.Equal(t, StringArray{"z"}, a)

	require.NoError(t, a.Scan(nil))
	assert.Empty(t, a)

	require.NoError(t, a.Scan("null"))
	assert.Empty(t, a)

	// Legacy rows stored a bare string instead of a JSON array.
	require.NoError(t, a.Scan(`"single.jpg"`))
	assert.Equal(t, StringArray{"single.jpg"}, a)

	require.NoError(t, a.Scan("plain-text"))
	assert.Equal(t, StringArray{"plain-text"}, a)

	assert.Error(t, a.Scan(42))
}
