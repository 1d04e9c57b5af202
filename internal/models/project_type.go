package models

// ProjectTypeModel categorizes the kind of construction work an article covers.
type ProjectTypeModel struct {
	Base
	Name         string `json:"name"        gorm:"size:100;uniqueIndex;not null"`
	Slug         string `json:"slug"        gorm:"uniqueIndex;not null"`
	Description  string `json:"description,omitempty" gorm:"size:500"`
	IsActive     bool   `json:"isActive"     gorm:"index:idx_project_types_active,priority:1"`
	DisplayOrder int    `json:"displayOrder" gorm:"default:0;index:idx_project_types_active,priority:2"`

	Articles []ArticleModel `json:"articles,omitempty" gorm:"many2many:article_project_types;joinForeignKey:ProjectTypeID;joinReferences:ArticleID"`
}

func (ProjectTypeModel) TableName() string { return "project_types" }
