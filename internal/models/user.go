package models

// UserModel is a dashboard admin account.
type UserModel struct {
	Base
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-"        gorm:"not null"`
}

func (UserModel) TableName() string { return "users" }
