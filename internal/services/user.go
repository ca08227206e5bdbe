package services

import (
	"errors"
	"strings"

	"github.com/gurveershienh/projectflow/internal/auth"
	"github.com/gurveershienh/projectflow/internal/models"
	"gorm.io/gorm"
)

// UserService handles registration, login and credential changes. It sits
// above the ownership chain and is not scoped to a user; operations that act
// on a specific account take the id explicitly, guarded by RequireSelf at
// the route level.
type UserService struct {
	db     *gorm.DB
	hasher *auth.Hasher
}

func NewUserService(db *gorm.DB, hasher *auth.Hasher) UserService {
	return UserService{db: db, hasher: hasher}
}

type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

type LoginInput struct {
	Email    string
	Password string
}

// RequireSelf guards routes that carry a user id in the path. Unlike the
// ownership resolver this distinguishes forbidden from absent: the account
// is known to exist, so nothing is leaked.
func RequireSelf(requestedID, sessionID uint) error {
	if requestedID != sessionID {
		return ErrForbidden
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register validates in order: presence of all fields, password length,
// password confirmation, email syntax, email uniqueness. First failure wins.
func (s UserService) Register(in RegisterInput) (*models.User, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, validationf("name is required")
	}
	if in.Email == "" {
		return nil, validationf("email is required")
	}
	if in.Password == "" {
		return nil, validationf("password is required")
	}
	if in.ConfirmPassword == "" {
		return nil, validationf("password confirmation is required")
	}

	if err := s.checkPassword(in.Password, in.ConfirmPassword); err != nil {
		return nil, err
	}

	email := normalizeEmail(in.Email)

	if err := s.checkEmail(email); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)

	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, writeErr(err)
	}

	return &user, nil
}

// Login fails identically for an unregistered email and a wrong password.
func (s UserService) Login(in LoginInput) (*models.User, error) {
	if in.Email == "" {
		return nil, validationf("email is required")
	}
	if in.Password == "" {
		return nil, validationf("password is required")
	}

	var user models.User

	err := s.db.Where("email = ?", normalizeEmail(in.Email)).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, resolveErr(err)
	}

	if !s.hasher.Verify(user.PasswordHash, in.Password) {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

func (s UserService) Get(id uint) (*models.User, error) {
	var user models.User

	if err := s.db.First(&user, id).Error; err != nil {
		return nil, resolveErr(err)
	}

	return &user, nil
}

func (s UserService) ChangeEmail(userID uint, email string) (*models.User, error) {
	if email == "" {
		return nil, validationf("email is required")
	}

	normalized := normalizeEmail(email)

	if err := s.checkEmail(normalized); err != nil {
		return nil, err
	}

	user, err := s.Get(userID)

	if err != nil {
		return nil, err
	}

	user.Email = normalized

	if err := s.db.Save(user).Error; err != nil {
		return nil, writeErr(err)
	}

	return user, nil
}

func (s UserService) ChangePassword(userID uint, password, confirmPassword string) error {
	if password == "" {
		return validationf("password is required")
	}
	if confirmPassword == "" {
		return validationf("password confirmation is required")
	}

	if err := s.checkPassword(password, confirmPassword); err != nil {
		return err
	}

	user, err := s.Get(userID)

	if err != nil {
		return err
	}

	hash, err := s.hasher.Hash(password)

	if err != nil {
		return err
	}

	user.PasswordHash = hash

	if err := s.db.Save(user).Error; err != nil {
		return writeErr(err)
	}

	return nil
}

// Delete removes the account and everything it owns after confirming the
// current password.
func (s UserService) Delete(userID uint, password string) error {
	user, err := s.Get(userID)

	if err != nil {
		return err
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		return validationf("incorrect password")
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		projectIDs := tx.Model(&models.Project{}).Select("id").Where("owner_id = ?", user.ID)
		featureIDs := tx.Model(&models.Feature{}).Select("id").Where("project_id IN (?)", projectIDs)
		taskIDs := tx.Model(&models.Task{}).Select("id").Where("feature_id IN (?)", featureIDs)

		if err := tx.Where("task_id IN (?)", taskIDs).Delete(&models.Note{}).Error; err != nil {
			return err
		}
		if err := tx.Where("feature_id IN (?)", featureIDs).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id IN (?)", projectIDs).Delete(&models.Feature{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", user.ID).Delete(&models.Project{}).Error; err != nil {
			return err
		}
		return tx.Delete(user).Error
	})

	if err != nil {
		return writeErr(err)
	}

	return nil
}

func (s UserService) checkPassword(password, confirmPassword string) error {
	if len(password) < 8 {
		return validationf("password must be at least 8 characters")
	}
	if password != confirmPassword {
		return validationf("passwords don't match")
	}
	return nil
}

func (s UserService) checkEmail(email string) error {
	if !auth.ValidEmail(email) {
		return validationf("invalid email")
	}

	var count int64

	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return resolveErr(err)
	}

	if count > 0 {
		return ErrDuplicateEmail
	}

	return nil
}
