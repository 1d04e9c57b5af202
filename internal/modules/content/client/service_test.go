package client

import (
	"testing"

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

func TestCreateRejectsNonHTTPWebsite(t *testing.T) {
	svc := newTestService(t)

	cases := []string{
		"javascript:alert(1)",
		"ftp://example.com",
		"example.com",
		"http//missing-colon.com",
	}
	for _, website := range cases {
		_, err := svc.Create(&CreateClientDTO{Name: "Acme " + website, Website: website})
		assert.ErrorIs(t, err, ErrInvalidWebsite, website)
	}

	var count int64
	svc.db.Model(&models.ClientModel{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateAcceptsHTTPWebsites(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(&CreateClientDTO{Name: "Adani", Website: "https://adani.com"})
	require.NoError(t, err)
	assert.Equal(t, "https://adani.com", created.Website)
	assert.Equal(t, "adani", created.Slug)
	assert.True(t, created.IsActive)

	// Website is optional.
	created, err = svc.Create(&CreateClientDTO{Name: "JSW"})
	require.NoError(t, err)
	assert.Empty(t, created.Website)
}

func TestUpdateRejectsNonHTTPWebsite(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(&CreateClientDTO{Name: "Suzlon", Website: "https://suzlon.com"})
	require.NoError(t, err)

	bad := "javascript:alert(1)"
	_, err = svc.Update(created.Slug, &UpdateClientDTO{Website: &bad})
	assert.ErrorIs(t, err, ErrInvalidWebsite)

	stored, err := svc.GetBySlug(created.Slug)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "https://suzlon.com", stored.Website)

	// Clearing the website is allowed.
	empty := ""
	updated, err := svc.Update(created.Slug, &UpdateClientDTO{Website: &empty})
	require.NoError(t, err)
	assert.Empty(t, updated.Website)
}

func TestCreateEnforcesUniqueness(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(&CreateClientDTO{Name: "GE Renewables"})
	require.NoError(t, err)

	_, err = svc.Create(&CreateClientDTO{Name: "GE Renewables"})
	assert.ErrorIs(t, err, ErrNameTaken)

	_, err = svc.Create(&CreateClientDTO{Name: "Other", Slug: "ge-renewables"})
	assert.ErrorIs(t, err, ErrSlugTaken)
}
