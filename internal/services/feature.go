package services

import (
	"strings"

	"github.com/gurveershienh/projectflow/internal/models"
	"gorm.io/gorm"
)

type FeatureService struct {
	db     *gorm.DB
	userID uint
}

func NewFeatureService(db *gorm.DB, userID uint) FeatureService {
	return FeatureService{db: db, userID: userID}
}

type FeatureInput struct {
	Name        string
	Description string
}

type FeaturePatch struct {
	Name        *string
	Description *string
}

// Create attaches a feature to projectID, which always comes from the URL
// path. The parent must resolve under the caller first; a missing or foreign
// project fails with ErrNotFound before any validation of the child.
func (s FeatureService) Create(projectID uint, in FeatureInput) (*models.Feature, error) {
	if _, err := NewProjectService(s.db, s.userID).find(projectID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)

	if name == "" {
		return nil, validationf("name is required")
	}

	feature := models.Feature{
		ProjectID:   projectID,
		Name:        name,
		Description: in.Description,
	}

	if err := s.db.Create(&feature).Error; err != nil {
		return nil, writeErr(err)
	}

	return &feature, nil
}

// find resolves a feature through its project's owner.
func (s FeatureService) find(id uint) (*models.Feature, error) {
	var feature models.Feature

	err := s.db.
		Joins("JOIN projects ON projects.id = features.project_id").
		Where("features.id = ? AND projects.owner_id = ?", id, s.userID).
		First(&feature).Error

	if err != nil {
		return nil, resolveErr(err)
	}

	return &feature, nil
}

func (s FeatureService) Get(id uint) (*models.Feature, error) {
	var feature models.Feature

	err := s.db.
		Preload("Tasks", orderByID).
		Joins("JOIN projects ON projects.id = features.project_id").
		Where("features.id = ? AND projects.owner_id = ?", id, s.userID).
		First(&feature).Error

	if err != nil {
		return nil, resolveErr(err)
	}

	return &feature, nil
}

func (s FeatureService) List(projectID uint) ([]models.Feature, error) {
	if _, err := NewProjectService(s.db, s.userID).find(projectID); err != nil {
		return nil, err
	}

	var features []models.Feature

	err := s.db.
		Preload("Tasks", orderByID).
		Where("project_id = ?", projectID).
		Order("id ASC").
		Find(&features).Error

	if err != nil {
		return nil, resolveErr(err)
	}

	return features, nil
}

func (s FeatureService) Update(id uint, patch FeaturePatch) (*models.Feature, error) {
	feature, err := s.find(id)

	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, validationf("name is required")
		}
		feature.Name = name
	}

	if patch.Description != nil {
		feature.Description = *patch.Description
	}

	if err := s.db.Save(feature).Error; err != nil {
		return nil, writeErr(err)
	}

	return feature, nil
}

func (s FeatureService) Delete(id uint) error {
	feature, err := s.find(id)

	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		taskIDs := tx.Model(&models.Task{}).Select("id").Where("feature_id = ?", feature.ID)

		if err := tx.Where("task_id IN (?)", taskIDs).Delete(&models.Note{}).Error; err != nil {
			return err
		}
		if err := tx.Where("feature_id = ?", feature.ID).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(feature).Error
	})

	if err != nil {
		return writeErr(err)
	}

	return nil
}
