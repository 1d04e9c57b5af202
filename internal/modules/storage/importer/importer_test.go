package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseDumpEntry(t *testing.T) {
	cases := []struct {
		name           string
		wantCollection string
		wantFormat     string
		wantOK         bool
	}{
		{"dump/site/articles.bson", "articles", "bson", true},
		{"clients.json", "clients", "json", true},
		{"projecttypes.bson", "projecttypes", "bson", true},
		{"project_types.json", "projecttypes", "json", true},
		{"project-types.json", "projecttypes", "json", true},
		{"articles.metadata.json", "", "", false},
		{"users.bson", "", "", false},
		{"readme.txt", "", "", false},
	}
	for _, tc := range cases {
		collection, format, ok := parseDumpEntry(tc.name)
		assert.Equal(t, tc.wantOK, ok, tc.name)
		if tc.wantOK {
			assert.Equal(t, tc.wantCollection, collection, tc.name)
			assert.Equal(t, tc.wantFormat, format, tc.name)
		}
	}
}

func TestDecodeBSONRows(t *testing.T) {
	first, err := bson.Marshal(bson.M{"name": "Adani"})
	require.NoError(t, err)
	second, err := bson.Marshal(bson.M{"name": "JSW"})
	require.NoError(t, err)

	rows, err := decodeBSONRows(append(first, second...))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Adani", rows[0]["name"])
	assert.Equal(t, "JSW", rows[1]["name"])

	rows, err = decodeBSONRows(nil)
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = decodeBSONRows([]byte{1, 2})
	assert.Error(t, err)
}

func TestNormalizeRow(t *testing.T) {
	oid := primitive.NewObjectID()
	row := normalizeRow(map[string]interface{}{
		"_id":       oid,
		"createdAt": primitive.NewDateTimeFromTime(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)),
		"clients":   primitive.A{oid},
		"nested":    primitive.M{"inner": primitive.Null{}},
	})

	assert.Equal(t, oid.Hex(), row["_id"])
	ts, ok := row["createdAt"].(time.Time)
	require.True(t, ok)
	assert.Equal(t, 2024, ts.Year())

	clients, ok := row["clients"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, oid.Hex(), clients[0])

	nested, ok := row["nested"].(map[string]interface{})
	require.True(t, ok)
	assert.Nil(t, nested["inner"])
}

func TestFieldHelpers(t *testing.T) {
	row := map[string]interface{}{
		"title":        "  Substation  ",
		"published":    true,
		"displayOrder": int32(3),
		"images":       []interface{}{"a.jpg", "", "  b.jpg "},
	}

	assert.Equal(t, "Substation", stringField(row, "title"))
	assert.Equal(t, "", stringField(row, "missing"))
	assert.Equal(t, "Substation", stringField(row, "missing", "title"))

	assert.True(t, boolField(row, false, "published"))
	assert.True(t, boolField(row, true, "missing"))

	assert.Equal(t, 3, intField(row, "displayOrder"))
	assert.Equal(t, 0, intField(row, "missing"))

	assert.Equal(t, []string{"a.jpg", "b.jpg"}, stringList(row, "images"))
	assert.Nil(t, stringList(row, "missing"))
}

func TestDecodeJSONRows(t *testing.T) {
	rows, err := decodeJSONRows([]byte(`[{"name":"Suzlon"},{"name":"GE"}]`))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Suzlon", rows[0]["name"])

	_, err = decodeJSONRows([]byte(`{"name":"not-an-array"}`))
	assert.Error(t, err)
}
