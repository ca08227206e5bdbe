package services

import (
	"strings"

	"github.com/gurveershienh/projectflow/internal/models"
	"gorm.io/gorm"
)

type NoteService struct {
	db     *gorm.DB
	userID uint
}

func NewNoteService(db *gorm.DB, userID uint) NoteService {
	return NoteService{db: db, userID: userID}
}

type NoteInput struct {
	Content string
}

type NotePatch struct {
	Content *string
}

func (s NoteService) Create(taskID uint, in NoteInput) (*models.Note, error) {
	if _, err := NewTaskService(s.db, s.userID).find(taskID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.Content) == "" {
		return nil, validationf("content is required")
	}

	note := models.Note{
		TaskID:  taskID,
		Content: in.Content,
	}

	if err := s.db.Create(&note).Error; err != nil {
		return nil, writeErr(err)
	}

	return &note, nil
}

// find resolves a note along the full chain: task, feature, project, owner.
func (s NoteService) find(id uint) (*models.Note, error) {
	var note models.Note

	err := s.db.
		Joins("JOIN tasks ON tasks.id = notes.task_id").
		Joins("JOIN features ON features.id = tasks.feature_id").
		Joins("JOIN projects ON projects.id = features.project_id").
		Where("notes.id = ? AND projects.owner_id = ?", id, s.userID).
		First(&note).Error

	if err != nil {
		return nil, resolveErr(err)
	}

	return &note, nil
}

func (s NoteService) Get(id uint) (*models.Note, error) {
	return s.find(id)
}

func (s NoteService) List(taskID uint) ([]models.Note, error) {
	if _, err := NewTaskService(s.db, s.userID).find(taskID); err != nil {
		return nil, err
	}

	var notes []models.Note

	err := s.db.
		Where("task_id = ?", taskID).
		Order("id ASC").
		Find(&notes).Error

	if err != nil {
		return nil, resolveErr(err)
	}

	return notes, nil
}

func (s NoteService) Update(id uint, patch NotePatch) (*models.Note, error) {
	note, err := s.find(id)

	if err != nil {
		return nil, err
	}

	if patch.Content != nil {
		if strings.TrimSpace(*patch.Content) == "" {
			return nil, validationf("content is required")
		}
		note.Content = *patch.Content
	}

	if err := s.db.Save(note).Error; err != nil {
		return nil, writeErr(err)
	}

	return note, nil
}

func (s NoteService) Delete(id uint) error {
	note, err := s.find(id)

	if err != nil {
		return err
	}

	if err := s.db.Delete(note).Error; err != nil {
		return writeErr(err)
	}

	return nil
}
