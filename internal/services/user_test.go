package services

import (
	"errors"
	"testing"

	"github.com/gurveershienh/projectflow/internal/auth"
)

func registerInput() RegisterInput {
	return RegisterInput{
		Name:            "Ada",
		Email:           "ada@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	}
}

func TestRegister_Succeeds(t *testing.T) {
	conn := newTestDB(t)
	svc := NewUserService(conn, auth.NewHasher())

	user, err := svc.Register(registerInput())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if user.PasswordHash == "password123" {
		t.Fatalf("stored secret must not equal the plaintext password")
	}
	if user.PasswordHash == "" {
		t.Fatalf("expected stored secret")
	}
}

func TestRegister_NormalizesEmail(t *testing.T) {
	conn := newTestDB(t)
	svc := NewUserService(conn, auth.NewHasher())

	in := registerInput()
	in.Email = "  Ada@Example.COM "

	user, err := svc.Register(in)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "ada@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
}

func TestRegister_ValidationFailures(t *testing.T) {
	conn := newTestDB(t)
	svc := NewUserService(conn, auth.NewHasher())

	cases := []struct {
		name   string
		mutate func(*RegisterInput)
	}{
		{"missing name", func(in *RegisterInput) { in.Name = "" }},
		{"missing email", func(in *RegisterInput) { in.Email = "" }},
		{"missing password", func(in *RegisterInput) { in.Password = "" }},
		{"missing confirmation", func(in *RegisterInput) { in.ConfirmPassword = "" }},
		{"short password", func(in *RegisterInput) { in.Password = "short1"; in.ConfirmPassword = "short1" }},
		{"mismatched confirmation", func(in *RegisterInput) { in.ConfirmPassword = "password124" }},
		{"invalid email", func(in *RegisterInput) { in.Email = "not-an-email" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := registerInput()
			tc.mutate(&in)

			_, err := svc.Register(in)

			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestRegister_ShortPasswordBeatsInvalidEmail(t *testing.T) {
	// Checks run in order: password rules before email syntax.
	conn := newTestDB(t)
	svc := NewUserService(conn, auth.NewHasher())

	in := registerInput()
	in.Email = "not-an-email"
	in.Password = "short1"
	in.ConfirmPassword = "short1"

	_, err := svc.Register(in)

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if validationErr.Message != "password must be at least 8 characters" {
		t.Fatalf("expected password error first, got %q", validationErr.Message)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	conn := newTestDB(t)
	svc := NewUserService(conn, auth.NewHasher())

	if _, err := svc.Register(registerInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.Register(registerInput())

	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	// Case-insensitive duplicate.
	in := registerInput()
	in.Email = "ADA@example.com"

	if _, err := svc.Register(in); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail for case variant, got %v", err)
	}
}

func TestLogin_Succeeds(t *testing.T) {
	conn := newTestDB(t)
	svc := NewUserService(conn, auth.NewHasher())

	registered, err := svc.Register(registerInput())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, err := svc.Login(LoginInput{Email: "ada@example.com", Password: "password123"})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("expected user %d, got %d", registered.ID, user.ID)
	}
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	conn := newTestDB(t)
	svc := NewUserService(conn, auth.NewHasher())

	if _, err := svc.Register(registerInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, wrongPassword := svc.Login(LoginInput{Email: "ada@example.com", Password: "password124"})
	_, unknownEmail := svc.Login(LoginInput{Email: "nobody@example.com", Password: "password123"})

	if !errors.Is(wrongPassword, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongPassword)
	}
	if !errors.Is(unknownEmail, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", unknownEmail)
	}
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Fatalf("login failures must be identical: %q vs %q", wrongPassword, unknownEmail)
	}
}

func TestLogin_MissingFields(t *testing.T) {
	conn := newTestDB(t)
	svc := NewUserService(conn, auth.NewHasher())

	var validationErr *ValidationError

	if _, err := svc.Login(LoginInput{Password: "password123"}); !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, err := svc.Login(LoginInput{Email: "ada@example.com"}); !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	conn := newTestDB(t)
	svc := NewUserService(conn, auth.NewHasher())

	user, err := svc.Register(registerInput())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.ChangePassword(user.ID, "newpassword1", "newpassword1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Login(LoginInput{Email: user.Email, Password: "newpassword1"}); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
	if _, err := svc.Login(LoginInput{Email: user.Email, Password: "password123"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password must no longer work, got %v", err)
	}

	// Same rules as registration.
	var validationErr *ValidationError
	if err := svc.ChangePassword(user.ID, "short1", "short1"); !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if err := svc.ChangePassword(user.ID, "newpassword1", "different1"); !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestChangeEmail(t *testing.T) {
	conn := newTestDB(t)
	svc := NewUserService(conn, auth.NewHasher())

	user, err := svc.Register(registerInput())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	other := registerInput()
	other.Email = "grace@example.com"

	if _, err := svc.Register(other); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := svc.ChangeEmail(user.ID, "ada.lovelace@example.com")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Email != "ada.lovelace@example.com" {
		t.Fatalf("expected updated email, got %q", updated.Email)
	}

	if _, err := svc.ChangeEmail(user.ID, "grace@example.com"); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	var validationErr *ValidationError
	if _, err := svc.ChangeEmail(user.ID, "not-an-email"); !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestRequireSelf(t *testing.T) {
	if err := RequireSelf(7, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := RequireSelf(7, 8); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestDeleteAccount_CascadesAndChecksPassword(t *testing.T) {
	conn := newTestDB(t)
	svc := NewUserService(conn, auth.NewHasher())

	user, err := svc.Register(registerInput())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	project := seedProject(t, conn, user.ID)
	feature := seedFeature(t, conn, user.ID, project.ID)
	task := seedTask(t, conn, user.ID, feature.ID, 3, false)
	note := seedNote(t, conn, user.ID, task.ID)

	var validationErr *ValidationError
	if err := svc.Delete(user.ID, "wrongpassword"); !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError for wrong password, got %v", err)
	}

	if err := svc.Delete(user.ID, "password123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Get(user.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected user gone, got %v", err)
	}
	if _, err := NewNoteService(conn, user.ID).Get(note.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected note gone, got %v", err)
	}
}
