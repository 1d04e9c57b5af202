package article

import (
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/odhav-enterprise/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.ClientModel{},
		&models.ProjectTypeModel{},
		&models.ArticleModel{},
	))
	return NewService(db)
}

// seedArticles inserts n published articles whose creation and publish
// times step one hour apart, oldest first, with slugs article-1..article-n.
func seedArticles(t *testing.T, svc *Service, n int) {
	t.Helper()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= n; i++ {
		at := base.Add(time.Duration(i) * time.Hour)
		a := models.ArticleModel{
			Title:       fmt.Sprintf("Article %d", i),
			Slug:        fmt.Sprintf("article-%d", i),
			Description: "d",
			Content:     "c",
			Status:      models.StatusCompleted,
			Location:    "Gujarat",
			Published:   true,
			PublishedAt: &at,
		}
		a.CreatedAt = at
		require.NoError(t, svc.db.Create(&a).Error)
	}
}

func TestListReturnsTheRequestedPageSlice(t *testing.T) {
	svc := newTestService(t)
	seedArticles(t, svc, 5)

	values, err := url.ParseQuery("page=2&limit=2&sortBy=createdAt&sortOrder=asc")
	require.NoError(t, err)

	articles, meta, listErr := svc.List(BuildSpec(values))
	require.NoError(t, listErr)

	// Page 2 of limit 2 over 5 rows holds the 3rd and 4th records.
	require.Len(t, articles, 2)
	assert.Equal(t, "article-3", articles[0].Slug)
	assert.Equal(t, "article-4", articles[1].Slug)

	assert.Equal(t, int64(5), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNextPage)
	assert.True(t, meta.HasPrevPage)
}

func TestListLastPageIsShort(t *testing.T) {
	svc := newTestService(t)
	seedArticles(t, svc, 5)

	values, err := url.ParseQuery("page=3&limit=2&sortBy=createdAt&sortOrder=asc")
	require.NoError(t, err)

	articles, meta, listErr := svc.List(BuildSpec(values))
	require.NoError(t, listErr)

	require.Len(t, articles, 1)
	assert.Equal(t, "article-5", articles[0].Slug)
	assert.False(t, meta.HasNextPage)
}

func TestListDefaultSortIsNewestPublishedFirst(t *testing.T) {
	svc := newTestService(t)
	seedArticles(t, svc, 3)

	articles, _, err := svc.List(BuildSpec(url.Values{}))
	require.NoError(t, err)

	require.Len(t, articles, 3)
	assert.Equal(t, "article-3", articles[0].Slug)
	assert.Equal(t, "article-2", articles[1].Slug)
	assert.Equal(t, "article-1", articles[2].Slug)
}

func TestListHidesUnpublishedByDefault(t *testing.T) {
	svc := newTestService(t)
	seedArticles(t, svc, 2)

	draft := models.ArticleModel{
		Title:       "Draft",
		Slug:        "draft",
		Description: "d",
		Content:     "c",
		Status:      models.StatusOngoing,
		Location:    "Gujarat",
	}
	require.NoError(t, svc.db.Create(&draft).Error)

	articles, meta, err := svc.List(BuildSpec(url.Values{}))
	require.NoError(t, err)
	assert.Len(t, articles, 2)
	assert.Equal(t, int64(2), meta.Total)

	values, _ := url.ParseQuery("published=all")
	articles, meta, err = svc.List(BuildSpec(values))
	require.NoError(t, err)
	assert.Len(t, articles, 3)
	assert.Equal(t, int64(3), meta.Total)
}
