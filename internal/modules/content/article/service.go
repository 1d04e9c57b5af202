package article

import (
	"errors"
	"strings"
	"time"

	"github.com/odhav-enterprise/core/internal/models"
	"github.com/odhav-enterprise/core/internal/pkg/response"
	"github.com/odhav-enterprise/core/internal/pkg/slug"
	"gorm.io/gorm"
)

var (
	ErrSlugTaken           = errors.New("slug already exists")
	ErrInvalidSlug         = errors.New("invalid slug format")
	ErrClientNotFound      = errors.New("one or more clients not found")
	ErrProjectTypeNotFound = errors.New("one or more project types not found")
)

// Service handles article business logic.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List fetches the page of articles selected by spec, together with the
// total match count turned into pagination metadata. Reference sets are
// populated on every returned record.
func (s *Service) List(spec Spec) ([]models.ArticleModel, response.Pagination, error) {
	tx := s.applySpec(s.db.Model(&models.ArticleModel{}), spec)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, response.Pagination{}, err
	}

	var articles []models.ArticleModel
	err := tx.
		Preload("Clients").
		Preload("ProjectTypes").
		Order(spec.OrderClause()).
		Offset(spec.Query.Skip()).
		Limit(spec.Query.Limit).
		Find(&articles).Error
	if err != nil {
		return nil, response.Pagination{}, err
	}

	return articles, spec.Query.Meta(total), nil
}

// applySpec translates a Spec into store conditions. Association filters go
// through join-table subqueries so the total count stays duplicate-free.
func (s *Service) applySpec(tx *gorm.DB, spec Spec) *gorm.DB {
	if spec.Published != nil {
		tx = tx.Where("published = ?", *spec.Published)
	}
	if len(spec.ClientIDs) > 0 {
		sub := s.db.Table("article_clients").Select("article_id").Where("client_id IN ?", spec.ClientIDs)
		tx = tx.Where("articles.id IN (?)", sub)
	}
	if len(spec.ProjectTypeIDs) > 0 {
		sub := s.db.Table("article_project_types").Select("article_id").Where("project_type_id IN ?", spec.ProjectTypeIDs)
		tx = tx.Where("articles.id IN (?)", sub)
	}
	if spec.Status != "" {
		tx = tx.Where("status = ?", spec.Status)
	}
	if spec.Search != "" {
		tx = tx.Where("MATCH(title, description, content) AGAINST (? IN NATURAL LANGUAGE MODE)", spec.Search)
	}
	return tx
}

// GetBySlug fetches a single article by slug with populated references.
// Returns (nil, nil) when no matching article exists.
func (s *Service) GetBySlug(slugValue string, includeUnpublished bool) (*models.ArticleModel, error) {
	tx := s.db.Preload("Clients").Preload("ProjectTypes").Where("slug = ?", slugValue)
	if !includeUnpublished {
		tx = tx.Where("published = ?", true)
	}

	var article models.ArticleModel
	if err := tx.First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

// GetByID fetches a single article by ID with populated references.
func (s *Service) GetByID(id string) (*models.ArticleModel, error) {
	var article models.ArticleModel
	err := s.db.Preload("Clients").Preload("ProjectTypes").First(&article, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

// Create inserts a new article. The slug derives from the title when absent,
// and publishedAt is stamped on first publish.
func (s *Service) Create(dto *CreateArticleDTO) (*models.ArticleModel, error) {
	slugValue := strings.TrimSpace(dto.Slug)
	if slugValue == "" {
		slugValue = slug.Derive(dto.Title)
	}
	if !slug.Valid(slugValue) {
		return nil, ErrInvalidSlug
	}

	var count int64
	s.db.Model(&models.ArticleModel{}).Where("slug = ?", slugValue).Count(&count)
	if count > 0 {
		return nil, ErrSlugTaken
	}

	clients, err := s.resolveClients(dto.Clients)
	if err != nil {
		return nil, err
	}
	projectTypes, err := s.resolveProjectTypes(dto.ProjectTypes)
	if err != nil {
		return nil, err
	}

	article := models.ArticleModel{
		Title:           dto.Title,
		Slug:            slugValue,
		Description:     dto.Description,
		Content:         dto.Content,
		Clients:         clients,
		ProjectTypes:    projectTypes,
		Status:          dto.Status,
		Location:        dto.Location,
		ProjectValue:    dto.ProjectValue,
		Images:          dto.Images,
		FeaturedImage:   dto.FeaturedImage,
		MetaTitle:       dto.MetaTitle,
		MetaDescription: dto.MetaDescription,
		Keywords:        dto.Keywords,
	}
	if dto.Published != nil {
		article.Published = *dto.Published
	}
	if article.Published && article.PublishedAt == nil {
		now := time.Now()
		article.PublishedAt = &now
	}

	// Omit association upserts: referenced rows are resolved above, only
	// join rows are written here.
	if err := s.db.Omit("Clients.*", "ProjectTypes.*").Create(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// Update patches an article by ID. Returns (nil, nil) when it does not exist.
func (s *Service) Update(id string, dto *UpdateArticleDTO) (*models.ArticleModel, error) {
	article, err := s.GetByID(id)
	if err != nil || article == nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Slug != nil {
		slugValue := strings.TrimSpace(*dto.Slug)
		if slugValue == "" {
			title := article.Title
			if dto.Title != nil {
				title = *dto.Title
			}
			slugValue = slug.Derive(title)
		}
		if !slug.Valid(slugValue) {
			return nil, ErrInvalidSlug
		}
		if slugValue != article.Slug {
			var count int64
			s.db.Model(&models.ArticleModel{}).Where("slug = ? AND id <> ?", slugValue, id).Count(&count)
			if count > 0 {
				return nil, ErrSlugTaken
			}
			updates["slug"] = slugValue
		}
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.Content != nil {
		updates["content"] = *dto.Content
	}
	if dto.Status != nil {
		updates["status"] = *dto.Status
	}
	if dto.Location != nil {
		updates["location"] = *dto.Location
	}
	if dto.ProjectValue != nil {
		updates["project_value"] = *dto.ProjectValue
	}
	if dto.Images != nil {
		updates["images"] = models.StringArray(dto.Images)
	}
	if dto.FeaturedImage != nil {
		updates["featured_image"] = *dto.FeaturedImage
	}
	if dto.MetaTitle != nil {
		updates["meta_title"] = *dto.MetaTitle
	}
	if dto.MetaDescription != nil {
		updates["meta_description"] = *dto.MetaDescription
	}
	if dto.Keywords != nil {
		updates["keywords"] = models.StringArray(dto.Keywords)
	}
	if dto.Published != nil {
		updates["published"] = *dto.Published
		if *dto.Published && article.PublishedAt == nil {
			updates["published_at"] = time.Now()
		}
	}

	if len(updates) > 0 {
		if err := s.db.Model(article).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	if dto.Clients != nil {
		clients, err := s.resolveClients(dto.Clients)
		if err != nil {
			return nil, err
		}
		if err := s.db.Model(article).Association("Clients").Replace(clients); err != nil {
			return nil, err
		}
	}
	if dto.ProjectTypes != nil {
		projectTypes, err := s.resolveProjectTypes(dto.ProjectTypes)
		if err != nil {
			return nil, err
		}
		if err := s.db.Model(article).Association("ProjectTypes").Replace(projectTypes); err != nil {
			return nil, err
		}
	}

	return s.GetByID(id)
}

// Delete soft-deletes an article by ID.
func (s *Service) Delete(id string) error {
	return s.db.Delete(&models.ArticleModel{}, "id = ?", id).Error
}

// StatusOption is one entry of the fixed status list for filter controls.
type StatusOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FilterOptions holds the data backing the public filter UI.
type FilterOptions struct {
	Clients      []clientSummary      `json:"clients"`
	ProjectTypes []projectTypeSummary `json:"projectTypes"`
	Statuses     []StatusOption       `json:"statuses"`
}

// GetFilterOptions returns active clients and project types ordered for
// display, plus the fixed status values.
func (s *Service) GetFilterOptions() (*FilterOptions, error) {
	var clients []models.ClientModel
	err := s.db.Where("is_active = ?", true).
		Order("display_order ASC, name ASC").
		Find(&clients).Error
	if err != nil {
		return nil, err
	}

	var projectTypes []models.ProjectTypeModel
	err = s.db.Where("is_active = ?", true).
		Order("display_order ASC, name ASC").
		Find(&projectTypes).Error
	if err != nil {
		return nil, err
	}

	opts := &FilterOptions{
		Clients:      make([]clientSummary, len(clients)),
		ProjectTypes: make([]projectTypeSummary, len(projectTypes)),
		Statuses: []StatusOption{
			{Value: models.StatusOngoing, Label: "Ongoing"},
			{Value: models.StatusCompleted, Label: "Completed"},
		},
	}
	for i, cl := range clients {
		opts.Clients[i] = clientSummary{ID: cl.ID, Name: cl.Name, Slug: cl.Slug, Logo: cl.Logo}
	}
	for i, pt := range projectTypes {
		opts.ProjectTypes[i] = projectTypeSummary{ID: pt.ID, Name: pt.Name, Slug: pt.Slug, Description: pt.Description}
	}
	return opts, nil
}

func (s *Service) resolveClients(ids []string) ([]models.ClientModel, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, ErrClientNotFound
	}
	var clients []models.ClientModel
	if err := s.db.Where("id IN ?", ids).Find(&clients).Error; err != nil {
		return nil, err
	}
	if len(clients) != len(ids) {
		return nil, ErrClientNotFound
	}
	return clients, nil
}

func (s *Service) resolveProjectTypes(ids []string) ([]models.ProjectTypeModel, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, ErrProjectTypeNotFound
	}
	var projectTypes []models.ProjectTypeModel
	if err := s.db.Where("id IN ?", ids).Find(&projectTypes).Error; err != nil {
		return nil, err
	}
	if len(projectTypes) != len(ids) {
		return nil, ErrProjectTypeNotFound
	}
	return projectTypes, nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
