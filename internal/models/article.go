package models

import "time"

// Article status values.
const (
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
)

// ArticleModel is a project case study shown on the public site.
type ArticleModel struct {
	Base
	Title       string `json:"title"       gorm:"size:200;not null"`
	Slug        string `json:"slug"        gorm:"uniqueIndex;not null"`
	Description string `json:"description" gorm:"size:500;not null"`
	Content     string `json:"content"     gorm:"type:longtext;not null"`

	Clients      []ClientModel      `json:"clients,omitempty"      gorm:"many2many:article_clients;joinForeignKey:ArticleID;joinReferences:ClientID"`
	ProjectTypes []ProjectTypeModel `json:"projectTypes,omitempty" gorm:"many2many:article_project_types;joinForeignKey:ArticleID;joinReferences:ProjectTypeID"`

	Status        string      `json:"status"        gorm:"size:16;not null;index"`
	Location      string      `json:"location"      gorm:"not null"`
	ProjectValue  string      `json:"projectValue,omitempty"`
	Images        StringArray `json:"images"        gorm:"type:longtext"`
	FeaturedImage string      `json:"featuredImage,omitempty"`

	MetaTitle       string      `json:"metaTitle,omitempty"       gorm:"size:60"`
	MetaDescription string      `json:"metaDescription,omitempty" gorm:"size:160"`
	Keywords        StringArray `json:"keywords"                  gorm:"type:longtext"`

	Published   bool       `json:"published"             gorm:"default:false;index:idx_articles_published,priority:1"`
	PublishedAt *time.Time `json:"publishedAt,omitempty" gorm:"index:idx_articles_published,priority:2,sort:desc"`
}

func (ArticleModel) TableName() string { return "articles" }
