package client

import (
	"errors"
	"regexp"

	"github.com/odhav-enterprise/core/internal/models"
	"github.com/odhav-enterprise/core/internal/pkg/slug"
	"gorm.io/gorm"
)

var (
	ErrNameTaken      = errors.New("client name already exists")
	ErrSlugTaken      = errors.New("client slug already exists")
	ErrInvalidSlug    = errors.New("invalid slug format")
	ErrInvalidWebsite = errors.New("website must start with http:// or https://")
)

var websitePattern = regexp.MustCompile(`^https?://.+`)

// CreateClientDTO is the request body for creating a client.
type CreateClientDTO struct {
	Name         string `json:"name" binding:"required,max=100"`
	Slug         string `json:"slug"`
	Description  string `json:"description" binding:"omitempty,max=500"`
	Logo         string `json:"logo"`
	Website      string `json:"website"`
	IsActive     *bool  `json:"isActive"`
	DisplayOrder *int   `json:"displayOrder"`
}

// UpdateClientDTO is the request body for updating a client.
type UpdateClientDTO struct {
	Name         *string `json:"name" binding:"omitempty,max=100"`
	Slug         *string `json:"slug"`
	Description  *string `json:"description" binding:"omitempty,max=500"`
	Logo         *string `json:"logo"`
	Website      *string `json:"website"`
	IsActive     *bool   `json:"isActive"`
	DisplayOrder *int    `json:"displayOrder"`
}

// Service handles client business logic.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns clients ordered for display. When activeOnly is set,
// deactivated clients are skipped.
func (s *Service) List(activeOnly bool) ([]models.ClientModel, error) {
	tx := s.db.Order("display_order ASC, name ASC")
	if activeOnly {
		tx = tx.Where("is_active = ?", true)
	}
	var clients []models.ClientModel
	err := tx.Find(&clients).Error
	return clients, err
}

// GetBySlug returns (nil, nil) when no client matches.
func (s *Service) GetBySlug(slugValue string) (*models.ClientModel, error) {
	var client models.ClientModel
	if err := s.db.First(&client, "slug = ?", slugValue).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

// Create inserts a new client. Name and slug must both be unique, and a
// website, when given, must be an http(s) URL.
func (s *Service) Create(dto *CreateClientDTO) (*models.ClientModel, error) {
	if dto.Website != "" && !websitePattern.MatchString(dto.Website) {
		return nil, ErrInvalidWebsite
	}

	slugValue := dto.Slug
	if slugValue == "" {
		slugValue = slug.Derive(dto.Name)
	}
	if !slug.Valid(slugValue) {
		return nil, ErrInvalidSlug
	}

	var count int64
	s.db.Model(&models.ClientModel{}).Where("name = ?", dto.Name).Count(&count)
	if count > 0 {
		return nil, ErrNameTaken
	}
	s.db.Model(&models.ClientModel{}).Where("slug = ?", slugValue).Count(&count)
	if count > 0 {
		return nil, ErrSlugTaken
	}

	client := models.ClientModel{
		Name:        dto.Name,
		Slug:        slugValue,
		Description: dto.Description,
		Logo:        dto.Logo,
		Website:     dto.Website,
		IsActive:    true,
	}
	if dto.IsActive != nil {
		client.IsActive = *dto.IsActive
	}
	if dto.DisplayOrder != nil {
		client.DisplayOrder = *dto.DisplayOrder
	}

	if err := s.db.Create(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// Update patches a client found by slug. Returns (nil, nil) when it does
// not exist.
func (s *Service) Update(slugValue string, dto *UpdateClientDTO) (*models.ClientModel, error) {
	client, err := s.GetBySlug(slugValue)
	if err != nil || client == nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Name != nil && *dto.Name != client.Name {
		var count int64
		s.db.Model(&models.ClientModel{}).Where("name = ? AND id <> ?", *dto.Name, client.ID).Count(&count)
		if count > 0 {
			return nil, ErrNameTaken
		}
		updates["name"] = *dto.Name
	}
	if dto.Slug != nil && *dto.Slug != client.Slug {
		if !slug.Valid(*dto.Slug) {
			return nil, ErrInvalidSlug
		}
		var count int64
		s.db.Model(&models.ClientModel{}).Where("slug = ? AND id <> ?", *dto.Slug, client.ID).Count(&count)
		if count > 0 {
			return nil, ErrSlugTaken
		}
		updates["slug"] = *dto.Slug
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.Logo != nil {
		updates["logo"] = *dto.Logo
	}
	if dto.Website != nil {
		if *dto.Website != "" && !websitePattern.MatchString(*dto.Website) {
			return nil, ErrInvalidWebsite
		}
		updates["website"] = *dto.Website
	}
	if dto.IsActive != nil {
		updates["is_active"] = *dto.IsActive
	}
	if dto.DisplayOrder != nil {
		updates["display_order"] = *dto.DisplayOrder
	}

	if len(updates) > 0 {
		if err := s.db.Model(client).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return client, nil
}

// Delete soft-deletes a client and detaches it from its articles.
func (s *Service) Delete(slugValue string) (bool, error) {
	client, err := s.GetBySlug(slugValue)
	if err != nil || client == nil {
		return false, err
	}
	if err := s.db.Model(client).Association("Articles").Clear(); err != nil {
		return false, err
	}
	if err := s.db.Delete(client).Error; err != nil {
		return false, err
	}
	return true, nil
}
