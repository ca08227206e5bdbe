package services

import (
	"strings"

	"github.com/gurveershienh/projectflow/internal/models"
	"gorm.io/gorm"
)

// ProjectService is the single entry point for project reads and writes,
// scoped to the authenticated user it was constructed with.
type ProjectService struct {
	db     *gorm.DB
	userID uint
}

func NewProjectService(db *gorm.DB, userID uint) ProjectService {
	return ProjectService{db: db, userID: userID}
}

type ProjectInput struct {
	Name        string
	Description string
}

// ProjectPatch fields left nil are not touched.
type ProjectPatch struct {
	Name        *string
	Description *string
}

func (s ProjectService) Create(in ProjectInput) (*models.Project, error) {
	name := strings.TrimSpace(in.Name)

	if name == "" {
		return nil, validationf("name is required")
	}

	project := models.Project{
		Name:        name,
		Description: in.Description,
		OwnerID:     s.userID,
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, writeErr(err)
	}

	return &project, nil
}

// find resolves a project only if the current user owns it. A foreign or
// nonexistent id fails identically.
func (s ProjectService) find(id uint) (*models.Project, error) {
	var project models.Project

	err := s.db.
		Where("id = ? AND owner_id = ?", id, s.userID).
		First(&project).Error

	if err != nil {
		return nil, resolveErr(err)
	}

	return &project, nil
}

// Get returns the project with its feature/task subtree loaded so progress
// can be derived.
func (s ProjectService) Get(id uint) (*models.Project, error) {
	var project models.Project

	err := s.db.
		Preload("Features", orderByID).
		Preload("Features.Tasks", orderByID).
		Where("id = ? AND owner_id = ?", id, s.userID).
		First(&project).Error

	if err != nil {
		return nil, resolveErr(err)
	}

	return &project, nil
}

func (s ProjectService) List() ([]models.Project, error) {
	var projects []models.Project

	err := s.db.
		Preload("Features.Tasks").
		Where("owner_id = ?", s.userID).
		Order("id ASC").
		Find(&projects).Error

	if err != nil {
		return nil, resolveErr(err)
	}

	return projects, nil
}

func (s ProjectService) Update(id uint, patch ProjectPatch) (*models.Project, error) {
	project, err := s.find(id)

	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, validationf("name is required")
		}
		project.Name = name
	}

	if patch.Description != nil {
		project.Description = *patch.Description
	}

	if err := s.db.Save(project).Error; err != nil {
		return nil, writeErr(err)
	}

	return project, nil
}

// Delete removes the project and every feature, task and note beneath it.
// The cascade runs in application code inside one transaction so it does not
// depend on driver-level foreign key enforcement.
func (s ProjectService) Delete(id uint) error {
	project, err := s.find(id)

	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		featureIDs := tx.Model(&models.Feature{}).Select("id").Where("project_id = ?", project.ID)
		taskIDs := tx.Model(&models.Task{}).Select("id").Where("feature_id IN (?)", featureIDs)

		if err := tx.Where("task_id IN (?)", taskIDs).Delete(&models.Note{}).Error; err != nil {
			return err
		}
		if err := tx.Where("feature_id IN (?)", featureIDs).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.Feature{}).Error; err != nil {
			return err
		}
		return tx.Delete(project).Error
	})

	if err != nil {
		return writeErr(err)
	}

	return nil
}

// orderByID keeps preloaded children in insertion order.
func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}
