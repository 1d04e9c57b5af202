// Package importer loads legacy MongoDB collection dumps (mongodump ZIPs)
// into the relational store. It understands the historical collections
// clients, projecttypes and articles in either .bson or .json form.
package importer

import (
	"archive/zip"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/odhav-enterprise/core/internal/pkg/slug"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

// Summary counts the rows written by an import run.
type Summary struct {
	Clients      int `json:"clients"`
	ProjectTypes int `json:"projectTypes"`
	Articles     int `json:"articles"`
}

type dumpEntry struct {
	file   *zip.File
	format string
}

// collection name -> target table, in insert order so references exist
// before the join rows that point at them.
var collectionTables = []struct {
	collection string
	table      string
}{
	{"clients", "clients"},
	{"projecttypes", "project_types"},
	{"articles", "articles"},
}

// ImportFromZip replays a legacy dump into the store inside one
// transaction. Existing rows with the same primary key are replaced.
func ImportFromZip(db *gorm.DB, zr *zip.Reader) (*Summary, error) {
	if db == nil || zr == nil {
		return nil, fmt.Errorf("invalid import input")
	}

	entries := make(map[string]dumpEntry)
	for _, file := range zr.File {
		collection, format, ok := parseDumpEntry(file.Name)
		if !ok {
			continue
		}
		exist, has := entries[collection]
		if !has || (exist.format != "bson" && format == "bson") {
			entries[collection] = dumpEntry{file: file, format: format}
		}
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no recognizable collection dumps in archive")
	}

	summary := &Summary{}
	err := db.Transaction(func(tx *gorm.DB) error {
		if strings.EqualFold(tx.Dialector.Name(), "mysql") {
			if err := tx.Exec("SET FOREIGN_KEY_CHECKS = 0").Error; err != nil {
				return err
			}
			defer tx.Exec("SET FOREIGN_KEY_CHECKS = 1")
		}

		for _, mapping := range collectionTables {
			entry, ok := entries[mapping.collection]
			if !ok {
				continue
			}
			rows, err := decodeRows(entry.file, entry.format)
			if err != nil {
				return fmt.Errorf("decode %s: %w", mapping.collection, err)
			}

			switch mapping.collection {
			case "clients":
				summary.Clients, err = importReferenceRows(tx, "clients", rows, true)
			case "projecttypes":
				summary.ProjectTypes, err = importReferenceRows(tx, "project_types", rows, false)
			case "articles":
				summary.Articles, err = importArticleRows(tx, rows)
			}
			if err != nil {
				return fmt.Errorf("import %s: %w", mapping.collection, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func importReferenceRows(tx *gorm.DB, table string, rows []map[string]interface{}, withContacts bool) (int, error) {
	count := 0
	for _, raw := range rows {
		row := normalizeRow(raw)
		id := stringField(row, "_id", "id")
		name := stringField(row, "name")
		if id == "" || name == "" {
			continue
		}

		slugValue := stringField(row, "slug")
		if slugValue == "" {
			slugValue = slug.Derive(name)
		}

		values := map[string]interface{}{
			"id":            id,
			"name":          name,
			"slug":          slugValue,
			"description":   stringField(row, "description"),
			"is_active":     boolField(row, true, "isActive", "is_active"),
			"display_order": intField(row, "displayOrder", "display_order"),
			"created_at":    timeField(row, "createdAt", "created_at"),
			"updated_at":    timeField(row, "updatedAt", "updated_at"),
		}
		if withContacts {
			values["logo"] = stringField(row, "logo")
			values["website"] = stringField(row, "website")
		}

		if err := tx.Exec("DELETE FROM `"+table+"` WHERE id = ?", id).Error; err != nil {
			return count, err
		}
		if err := tx.Table(table).Create(values).Error; err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func importArticleRows(tx *gorm.DB, rows []map[string]interface{}) (int, error) {
	count := 0
	for _, raw := range rows {
		row := normalizeRow(raw)
		id := stringField(row, "_id", "id")
		title := stringField(row, "title")
		if id == "" || title == "" {
			continue
		}

		slugValue := stringField(row, "slug")
		if slugValue == "" {
			slugValue = slug.Derive(title)
		}

		images, _ := json.Marshal(stringList(row, "images"))
		keywords, _ := json.Marshal(stringList(row, "keywords"))

		published := boolField(row, false, "published")
		values := map[string]interface{}{
			"id":               id,
			"title":            title,
			"slug":             slugValue,
			"description":      stringField(row, "description"),
			"content":          stringField(row, "content"),
			"status":           stringField(row, "status"),
			"location":         stringField(row, "location"),
			"project_value":    stringField(row, "projectValue", "project_value"),
			"images":           string(images),
			"featured_image":   stringField(row, "featuredImage", "featured_image"),
			"meta_title":       stringField(row, "metaTitle", "meta_title"),
			"meta_description": stringField(row, "metaDescription", "meta_description"),
			"keywords":         string(keywords),
			"published":        published,
			"created_at":       timeField(row, "createdAt", "created_at"),
			"updated_at":       timeField(row, "updatedAt", "updated_at"),
		}
		if ts, ok := row["publishedAt"].(time.Time); ok {
			values["published_at"] = ts
		} else if published {
			values["published_at"] = values["created_at"]
		}

		if err := tx.Exec("DELETE FROM `articles` WHERE id = ?", id).Error; err != nil {
			return count, err
		}
		if err := tx.Exec("DELETE FROM `article_clients` WHERE article_id = ?", id).Error; err != nil {
			return count, err
		}
		if err := tx.Exec("DELETE FROM `article_project_types` WHERE article_id = ?", id).Error; err != nil {
			return count, err
		}
		if err := tx.Table("articles").Create(values).Error; err != nil {
			return count, err
		}

		for _, clientID := range stringList(row, "clients") {
			err := tx.Table("article_clients").Create(map[string]interface{}{
				"article_id": id,
				"client_id":  clientID,
			}).Error
			if err != nil {
				return count, err
			}
		}
		for _, ptID := range stringList(row, "projectTypes", "project_types") {
			err := tx.Table("article_project_types").Create(map[string]interface{}{
				"article_id":      id,
				"project_type_id": ptID,
			}).Error
			if err != nil {
				return count, err
			}
		}
		count++
	}
	return count, nil
}

func parseDumpEntry(name string) (collection string, format string, ok bool) {
	base := strings.ToLower(strings.TrimSpace(path.Base(name)))
	if base == "" || strings.HasSuffix(base, ".metadata.json") {
		return "", "", false
	}

	switch {
	case strings.HasSuffix(base, ".bson"):
		collection, format = strings.TrimSuffix(base, ".bson"), "bson"
	case strings.HasSuffix(base, ".json"):
		collection, format = strings.TrimSuffix(base, ".json"), "json"
	default:
		return "", "", false
	}

	switch collection {
	case "clients", "articles":
	case "projecttypes", "project_types", "project-types":
		collection = "projecttypes"
	default:
		return "", "", false
	}
	return collection, format, true
}

func decodeRows(file *zip.File, format string) ([]map[string]interface{}, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	payload, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}

	if format == "bson" {
		return decodeBSONRows(payload)
	}
	return decodeJSONRows(payload)
}

// decodeBSONRows walks a mongodump stream of length-prefixed concatenated
// documents.
func decodeBSONRows(payload []byte) ([]map[string]interface{}, error) {
	rows := make([]map[string]interface{}, 0)
	cursor := 0
	for cursor < len(payload) {
		if cursor+4 > len(payload) {
			return nil, fmt.Errorf("invalid bson payload")
		}
		docLen := int(int32(binary.LittleEndian.Uint32(payload[cursor : cursor+4])))
		if docLen <= 0 || cursor+docLen > len(payload) {
			return nil, fmt.Errorf("invalid bson document length")
		}
		var row map[string]interface{}
		if err := bson.Unmarshal(payload[cursor:cursor+docLen], &row); err != nil {
			return nil, err
		}
		rows = append(rows, row)
		cursor += docLen
	}
	return rows, nil
}

func decodeJSONRows(payload []byte) ([]map[string]interface{}, error) {
	var rows []map[string]interface{}
	if err := json.Unmarshal(payload, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// normalizeRow flattens BSON driver types into plain Go values: ObjectIDs
// become hex strings, datetimes become time.Time, nested documents become
// plain maps.
func normalizeRow(row map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(row))
	for key, value := range row {
		out[key] = normalizeValue(value)
	}
	return out
}

func normalizeValue(value interface{}) interface{} {
	switch v := value.(type) {
	case nil:
		return nil
	case primitive.Null, primitive.Undefined:
		return nil
	case primitive.ObjectID:
		return v.Hex()
	case primitive.DateTime:
		return v.Time()
	case primitive.Timestamp:
		return time.Unix(int64(v.T), 0).UTC()
	case primitive.Decimal128:
		return v.String()
	case primitive.Binary:
		return string(v.Data)
	case primitive.M:
		out := make(map[string]interface{}, len(v))
		for key, item := range v {
			out[key] = normalizeValue(item)
		}
		return out
	case primitive.D:
		out := make(map[string]interface{}, len(v))
		for _, item := range v {
			out[item.Key] = normalizeValue(item.Value)
		}
		return out
	case primitive.A:
		out := make([]interface{}, 0, len(v))
		for _, item := range v {
			out = append(out, normalizeValue(item))
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, item := range v {
			out[key] = normalizeValue(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, 0, len(v))
		for _, item := range v {
			out = append(out, normalizeValue(item))
		}
		return out
	case []byte:
		return string(v)
	default:
		return value
	}
}

func stringField(row map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if s, ok := row[key].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func boolField(row map[string]interface{}, def bool, keys ...string) bool {
	for _, key := range keys {
		if b, ok := row[key].(bool); ok {
			return b
		}
	}
	return def
}

func intField(row map[string]interface{}, keys ...string) int {
	for _, key := range keys {
		switch v := row[key].(type) {
		case int:
			return v
		case int32:
			return int(v)
		case int64:
			return int(v)
		case float64:
			return int(v)
		}
	}
	return 0
}

func timeField(row map[string]interface{}, keys ...string) time.Time {
	for _, key := range keys {
		switch v := row[key].(type) {
		case time.Time:
			return v
		case string:
			if ts, err := time.Parse(time.RFC3339, v); err == nil {
				return ts
			}
		}
	}
	return time.Now()
}

func stringList(row map[string]interface{}, keys ...string) []string {
	for _, key := range keys {
		items, ok := row[key].([]interface{})
		if !ok {
			continue
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	}
	return nil
}
