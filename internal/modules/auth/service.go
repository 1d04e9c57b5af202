// Package auth implements dashboard authentication: a seeded admin account,
// bcrypt credential checks and JWT issuance.
package auth

import (
	"errors"

	"github.com/odhav-enterprise/core/internal/models"
	"github.com/odhav-enterprise/core/internal/pkg/jwt"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// Service handles credential verification and token issuance.
type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewService(db *gorm.DB, log *zap.Logger) *Service {
	return &Service{db: db, log: log}
}

// SeedAdmin creates the admin account on first boot. An existing account is
// left untouched, and seeding is skipped entirely when no password is
// configured.
func (s *Service) SeedAdmin(username, password string) error {
	if password == "" {
		s.log.Warn("admin password not configured, skipping account seed")
		return nil
	}

	var count int64
	if err := s.db.Model(&models.UserModel{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.UserModel{Username: username, PasswordHash: string(hash)}
	if err := s.db.Create(&user).Error; err != nil {
		return err
	}
	s.log.Info("seeded admin account", zap.String("username", username))
	return nil
}

// Login verifies the credentials and returns a signed token plus the user.
func (s *Service) Login(username, password string) (string, *models.UserModel, error) {
	var user models.UserModel
	if err := s.db.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := jwt.Sign(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// GetUser returns (nil, nil) when the user does not exist.
func (s *Service) GetUser(id string) (*models.UserModel, error) {
	var user models.UserModel
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
