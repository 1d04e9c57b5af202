package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	cases := []struct {
		rawPage, rawLimit string
		wantPage          int
		wantLimit         int
	}{
		{"", "", 1, 10},
		{"3", "25", 3, 25},
		{"0", "0", 1, 10},
		{"-2", "-5", 1, 10},
		{"abc", "xyz", 1, 10},
		{"2", "1000", 2, 100},
		{"1", "1", 1, 1},
	}
	for _, tc := range cases {
		q := Parse(tc.rawPage, tc.rawLimit)
		assert.Equal(t, tc.wantPage, q.Page, "page=%q", tc.rawPage)
		assert.Equal(t, tc.wantLimit, q.Limit, "limit=%q", tc.rawLimit)
	}
}

func TestSkipNeverNegative(t *testing.T) {
	assert.Equal(t, 0, Parse("-10", "50").Skip())
	assert.Equal(t, 40, Parse("3", "20").Skip())
}

func TestMeta(t *testing.T) {
	meta := Parse("2", "10").Meta(35)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 10, meta.Limit)
	assert.Equal(t, int64(35), meta.Total)
	assert.Equal(t, 4, meta.TotalPages)
	assert.True(t, meta.HasNextPage)
	assert.True(t, meta.HasPrevPage)

	meta = Parse("1", "10").Meta(0)
	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNextPage)
	assert.False(t, meta.HasPrevPage)

	meta = Parse("4", "10").Meta(40)
	assert.Equal(t, 4, meta.TotalPages)
	assert.False(t, meta.HasNextPage)
	assert.True(t, meta.HasPrevPage)
}
