package models

// ClientModel is an organization the company has executed projects for.
type ClientModel struct {
	Base
	Name         string `json:"name"        gorm:"size:100;uniqueIndex;not null"`
	Slug         string `json:"slug"        gorm:"uniqueIndex;not null"`
	Description  string `json:"description,omitempty" gorm:"size:500"`
	Logo         string `json:"logo,omitempty"`
	Website      string `json:"website,omitempty"`
	IsActive     bool   `json:"isActive"     gorm:"index:idx_clients_active,priority:1"`
	DisplayOrder int    `json:"displayOrder" gorm:"default:0;index:idx_clients_active,priority:2"`

	Articles []ArticleModel `json:"articles,omitempty" gorm:"many2many:article_clients;joinForeignKey:ClientID;joinReferences:ArticleID"`
}

func (ClientModel) TableName() string { return "clients" }
