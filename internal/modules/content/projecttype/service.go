package projecttype

import (
	"errors"

	"github.com/odhav-enterprise/core/internal/models"
	"github.com/odhav-enterprise/core/internal/pkg/slug"
	"gorm.io/gorm"
)

var (
	ErrNameTaken   = errors.New("project type name already exists")
	ErrSlugTaken   = errors.New("project type slug already exists")
	ErrInvalidSlug = errors.New("invalid slug format")
)

// CreateProjectTypeDTO is the request body for creating a project type.
type CreateProjectTypeDTO struct {
	Name         string `json:"name" binding:"required,max=100"`
	Slug         string `json:"slug"`
	Description  string `json:"description" binding:"omitempty,max=500"`
	IsActive     *bool  `json:"isActive"`
	DisplayOrder *int   `json:"displayOrder"`
}

// UpdateProjectTypeDTO is the request body for updating a project type.
type UpdateProjectTypeDTO struct {
	Name         *string `json:"name" binding:"omitempty,max=100"`
	Slug         *string `json:"slug"`
	Description  *string `json:"description" binding:"omitempty,max=500"`
	IsActive     *bool   `json:"isActive"`
	DisplayOrder *int    `json:"displayOrder"`
}

// Service handles project type business logic.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) List(activeOnly bool) ([]models.ProjectTypeModel, error) {
	tx := s.db.Order("display_order ASC, name ASC")
	if activeOnly {
		tx = tx.Where("is_active = ?", true)
	}
	var projectTypes []models.ProjectTypeModel
	err := tx.Find(&projectTypes).Error
	return projectTypes, err
}

// GetBySlug returns (nil, nil) when no project type matches.
func (s *Service) GetBySlug(slugValue string) (*models.ProjectTypeModel, error) {
	var projectType models.ProjectTypeModel
	if err := s.db.First(&projectType, "slug = ?", slugValue).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &projectType, nil
}

func (s *Service) Create(dto *CreateProjectTypeDTO) (*models.ProjectTypeModel, error) {
	slugValue := dto.Slug
	if slugValue == "" {
		slugValue = slug.Derive(dto.Name)
	}
	if !slug.Valid(slugValue) {
		return nil, ErrInvalidSlug
	}

	var count int64
	s.db.Model(&models.ProjectTypeModel{}).Where("name = ?", dto.Name).Count(&count)
	if count > 0 {
		return nil, ErrNameTaken
	}
	s.db.Model(&models.ProjectTypeModel{}).Where("slug = ?", slugValue).Count(&count)
	if count > 0 {
		return nil, ErrSlugTaken
	}

	projectType := models.ProjectTypeModel{
		Name:        dto.Name,
		Slug:        slugValue,
		Description: dto.Description,
		IsActive:    true,
	}
	if dto.IsActive != nil {
		projectType.IsActive = *dto.IsActive
	}
	if dto.DisplayOrder != nil {
		projectType.DisplayOrder = *dto.DisplayOrder
	}

	if err := s.db.Create(&projectType).Error; err != nil {
		return nil, err
	}
	return &projectType, nil
}

// Update patches a project type found by slug. Returns (nil, nil) when it
// does not exist.
func (s *Service) Update(slugValue string, dto *UpdateProjectTypeDTO) (*models.ProjectTypeModel, error) {
	projectType, err := s.GetBySlug(slugValue)
	if err != nil || projectType == nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Name != nil && *dto.Name != projectType.Name {
		var count int64
		s.db.Model(&models.ProjectTypeModel{}).Where("name = ? AND id <> ?", *dto.Name, projectType.ID).Count(&count)
		if count > 0 {
			return nil, ErrNameTaken
		}
		updates["name"] = *dto.Name
	}
	if dto.Slug != nil && *dto.Slug != projectType.Slug {
		if !slug.Valid(*dto.Slug) {
			return nil, ErrInvalidSlug
		}
		var count int64
		s.db.Model(&models.ProjectTypeModel{}).Where("slug = ? AND id <> ?", *dto.Slug, projectType.ID).Count(&count)
		if count > 0 {
			return nil, ErrSlugTaken
		}
		updates["slug"] = *dto.Slug
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.IsActive != nil {
		updates["is_active"] = *dto.IsActive
	}
	if dto.DisplayOrder != nil {
		updates["display_order"] = *dto.DisplayOrder
	}

	if len(updates) > 0 {
		if err := s.db.Model(projectType).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return projectType, nil
}

// Delete soft-deletes a project type and detaches it from its articles.
func (s *Service) Delete(slugValue string) (bool, error) {
	projectType, err := s.GetBySlug(slugValue)
	if err != nil || projectType == nil {
		return false, err
	}
	if err := s.db.Model(projectType).Association("Articles").Clear(); err != nil {
		return false, err
	}
	if err := s.db.Delete(projectType).Error; err != nil {
		return false, err
	}
	return true, nil
}
