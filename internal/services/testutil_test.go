package services

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gurveershienh/projectflow/db"
	"github.com/gurveershienh/projectflow/internal/auth"
	"github.com/gurveershienh/projectflow/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})

	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := conn.DB()

	if err != nil {
		t.Fatalf("failed to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Migrate(conn); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return conn
}

var userSeq int

func seedUser(t *testing.T, conn *gorm.DB) *models.User {
	t.Helper()

	userSeq++

	user, err := NewUserService(conn, auth.NewHasher()).Register(RegisterInput{
		Name:            fmt.Sprintf("User %d", userSeq),
		Email:           fmt.Sprintf("user%d@example.com", userSeq),
		Password:        "password123",
		ConfirmPassword: "password123",
	})

	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	return user
}

func seedProject(t *testing.T, conn *gorm.DB, userID uint) *models.Project {
	t.Helper()

	project, err := NewProjectService(conn, userID).Create(ProjectInput{Name: "Tracker rewrite"})

	if err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}

	return project
}

func seedFeature(t *testing.T, conn *gorm.DB, userID, projectID uint) *models.Feature {
	t.Helper()

	feature, err := NewFeatureService(conn, userID).Create(projectID, FeatureInput{Name: "Auth flow"})

	if err != nil {
		t.Fatalf("failed to seed feature: %v", err)
	}

	return feature
}

func seedTask(t *testing.T, conn *gorm.DB, userID, featureID uint, points int, completed bool) *models.Task {
	t.Helper()

	task, err := NewTaskService(conn, userID).Create(featureID, TaskInput{
		Name:      "Wire login",
		Points:    &points,
		Completed: completed,
	})

	if err != nil {
		t.Fatalf("failed to seed task: %v", err)
	}

	return task
}

func seedNote(t *testing.T, conn *gorm.DB, userID, taskID uint) *models.Note {
	t.Helper()

	note, err := NewNoteService(conn, userID).Create(taskID, NoteInput{Content: "blocked on review"})

	if err != nil {
		t.Fatalf("failed to seed note: %v", err)
	}

	return note
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }
