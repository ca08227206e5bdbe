package services

import (
	"strings"

	"github.com/gurveershienh/projectflow/internal/models"
	"gorm.io/gorm"
)

type TaskService struct {
	db     *gorm.DB
	userID uint
}

func NewTaskService(db *gorm.DB, userID uint) TaskService {
	return TaskService{db: db, userID: userID}
}

type TaskInput struct {
	Name        string
	Description string
	Points      *int
	Completed   bool
}

type TaskPatch struct {
	Name        *string
	Description *string
	Points      *int
	Completed   *bool
}

func validPoints(points int) error {
	if points < models.MinTaskPoints || points > models.MaxTaskPoints {
		return validationf("points must be between %d and %d", models.MinTaskPoints, models.MaxTaskPoints)
	}
	return nil
}

func (s TaskService) Create(featureID uint, in TaskInput) (*models.Task, error) {
	if _, err := NewFeatureService(s.db, s.userID).find(featureID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)

	if name == "" {
		return nil, validationf("name is required")
	}

	points := models.MinTaskPoints
	if in.Points != nil {
		if err := validPoints(*in.Points); err != nil {
			return nil, err
		}
		points = *in.Points
	}

	task := models.Task{
		FeatureID:   featureID,
		Name:        name,
		Description: in.Description,
		Points:      points,
		Completed:   in.Completed,
	}

	if err := s.db.Create(&task).Error; err != nil {
		return nil, writeErr(err)
	}

	return &task, nil
}

// find resolves a task through feature and project back to the owner.
func (s TaskService) find(id uint) (*models.Task, error) {
	var task models.Task

	err := s.db.
		Joins("JOIN features ON features.id = tasks.feature_id").
		Joins("JOIN projects ON projects.id = features.project_id").
		Where("tasks.id = ? AND projects.owner_id = ?", id, s.userID).
		First(&task).Error

	if err != nil {
		return nil, resolveErr(err)
	}

	return &task, nil
}

func (s TaskService) Get(id uint) (*models.Task, error) {
	return s.find(id)
}

func (s TaskService) List(featureID uint) ([]models.Task, error) {
	if _, err := NewFeatureService(s.db, s.userID).find(featureID); err != nil {
		return nil, err
	}

	var tasks []models.Task

	err := s.db.
		Where("feature_id = ?", featureID).
		Order("id ASC").
		Find(&tasks).Error

	if err != nil {
		return nil, resolveErr(err)
	}

	return tasks, nil
}

func (s TaskService) Update(id uint, patch TaskPatch) (*models.Task, error) {
	task, err := s.find(id)

	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, validationf("name is required")
		}
		task.Name = name
	}

	if patch.Description != nil {
		task.Description = *patch.Description
	}

	if patch.Points != nil {
		if err := validPoints(*patch.Points); err != nil {
			return nil, err
		}
		task.Points = *patch.Points
	}

	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}

	if err := s.db.Save(task).Error; err != nil {
		return nil, writeErr(err)
	}

	return task, nil
}

func (s TaskService) Delete(id uint) error {
	task, err := s.find(id)

	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", task.ID).Delete(&models.Note{}).Error; err != nil {
			return err
		}
		return tx.Delete(task).Error
	})

	if err != nil {
		return writeErr(err)
	}

	return nil
}
