package article

import (
	"net/url"
	"strings"

	"github.com/odhav-enterprise/core/internal/models"
	"github.com/odhav-enterprise/core/internal/pkg/pagination"
)

// Filters echoes the list parameters back to the caller as received.
type Filters struct {
	Search      string `json:"search"`
	Client      string `json:"client"`
	ProjectType string `json:"projectType"`
	Status      string `json:"status"`
}

// Spec is a validated, defaulted listing specification. Malformed input
// never reaches the store: unrecognized enum values are dropped, pagination
// is clamped, identifier lists are cleaned.
type Spec struct {
	Published      *bool // nil = no constraint on the published flag
	ClientIDs      []string
	ProjectTypeIDs []string
	Status         string // "" = no status filter
	Search         string
	SortField      string // whitelisted column name
	SortAsc        bool
	Query          pagination.Query
	Filters        Filters
}

// BuildSpec translates raw query-string parameters into a Spec. It is the
// single place listing semantics live; every boundary goes through it.
func BuildSpec(values url.Values) Spec {
	spec := Spec{
		Query: pagination.Parse(values.Get("page"), values.Get("limit")),
		Filters: Filters{
			Search:      values.Get("search"),
			Client:      values.Get("client"),
			ProjectType: values.Get("projectType"),
			Status:      values.Get("status"),
		},
	}

	// Published is tri-state: an absent parameter means public traffic and
	// pins published=true; "false" selects unpublished records; any other
	// present value ("all" by convention) lifts the constraint entirely.
	if _, present := values["published"]; !present {
		published := true
		spec.Published = &published
	} else if values.Get("published") == "false" {
		published := false
		spec.Published = &published
	}

	spec.ClientIDs = splitIDList(values.Get("client"))
	spec.ProjectTypeIDs = splitIDList(values.Get("projectType"))

	if s := values.Get("status"); s == models.StatusOngoing || s == models.StatusCompleted {
		spec.Status = s
	}

	spec.Search = strings.TrimSpace(values.Get("search"))

	spec.SortField, spec.SortAsc = resolveSort(values.Get("sortBy"), values.Get("sortOrder"))

	return spec
}

// OrderClause renders the sort as a SQL ORDER BY expression. SortField only
// ever holds whitelisted column names.
func (s Spec) OrderClause() string {
	direction := "DESC"
	if s.SortAsc {
		direction = "ASC"
	}
	return s.SortField + " " + direction
}

func resolveSort(sortBy, sortOrder string) (field string, asc bool) {
	switch sortBy {
	case "title":
		return "title", sortOrder == "asc"
	case "publishedAt":
		return "published_at", sortOrder == "asc"
	case "createdAt":
		return "created_at", sortOrder == "asc"
	default:
		// Unrecognized sortBy falls back to newest-published-first,
		// regardless of sortOrder.
		return "published_at", false
	}
}

// splitIDList splits a comma-separated identifier list, trimming whitespace
// and dropping empty tokens. A list that is empty after cleanup is
// indistinguishable from an absent parameter: no filter.
func splitIDList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if id := strings.TrimSpace(p); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	return ids
}
