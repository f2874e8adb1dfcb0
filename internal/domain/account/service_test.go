package account

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/hms/hms/internal/platform/validate"
)

type mockRepo struct {
	accounts map[uuid.UUID]*Account
	profiles map[uuid.UUID]*Profile
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		accounts: map[uuid.UUID]*Account{},
		profiles: map[uuid.UUID]*Profile{},
	}
}

func (m *mockRepo) Create(_ context.Context, a *Account, p *Profile) error {
	a.IsActive = true
	m.accounts[a.ID] = a
	p.AccountID = a.ID
	m.profiles[a.ID] = p
	return nil
}

func (m *mockRepo) GetByUsername(_ context.Context, username string) (*Account, *Profile, error) {
	for id, a := range m.accounts {
		if a.Username == username {
			return a, m.profiles[id], nil
		}
	}
	return nil, nil, pgx.ErrNoRows
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Account, *Profile, error) {
	a, ok := m.accounts[id]
	if !ok {
		return nil, nil, pgx.ErrNoRows
	}
	return a, m.profiles[id], nil
}

func (m *mockRepo) UsernameTaken(_ context.Context, username string) (bool, error) {
	for _, a := range m.accounts {
		if a.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRepo) EmailTaken(_ context.Context, email string) (bool, error) {
	for _, a := range m.accounts {
		if a.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRepo) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	a, ok := m.accounts[id]
	if !ok {
		return pgx.ErrNoRows
	}
	a.PasswordHash = hash
	return nil
}

// seedAccount inserts an active account with a low-cost hash so tests do not
// pay the full login hashing price.
func seedAccount(m *mockRepo, username, password string) uuid.UUID {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	id := uuid.New()
	m.accounts[id] = &Account{
		ID:           id,
		Username:     username,
		Email:        username + "@hospital.test",
		PasswordHash: string(hash),
		IsActive:     true,
	}
	m.profiles[id] = &Profile{AccountID: id, Role: "staff", Gender: "female"}
	return id
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Username:        "priya",
		Email:           "priya@hospital.test",
		Password:        "s3cret-pass",
		ConfirmPassword: "s3cret-pass",
		FirstName:       "Priya",
		LastName:        "Menon",
		Role:            "receptionist",
		Gender:          "female",
		DOB:             "1992-04-11",
		Address:         "12 Lake Road",
		City:            "Pune",
		MobileNo:        "9876543210",
	}
}

func TestRegister(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	a, err := svc.Register(context.Background(), validRegisterInput())
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if a.ID == uuid.Nil {
		t.Error("expected assigned account id")
	}
	if a.PasswordHash == "s3cret-pass" {
		t.Error("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("s3cret-pass")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
	p, ok := repo.profiles[a.ID]
	if !ok {
		t.Fatal("expected profile to be created alongside the account")
	}
	if p.Role != "receptionist" {
		t.Errorf("expected role receptionist, got %q", p.Role)
	}
}

func TestRegister_Validation(t *testing.T) {
	svc := NewService(newMockRepo())

	in := validRegisterInput()
	in.Email = "not-an-email"
	in.ConfirmPassword = "different"
	in.Role = "janitor"

	_, err := svc.Register(context.Background(), in)
	verrs, ok := validate.AsErrors(err)
	if !ok {
		t.Fatalf("expected validate.Errors, got %v", err)
	}
	fields := map[string]bool{}
	for _, fe := range verrs {
		fields[fe.Field] = true
	}
	for _, f := range []string{"email", "confirm_password", "role"} {
		if !fields[f] {
			t.Errorf("expected error for %s, got %+v", f, verrs)
		}
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := newMockRepo()
	seedAccount(repo, "priya", "whatever-pass")
	svc := NewService(repo)

	_, err := svc.Register(context.Background(), validRegisterInput())
	verrs, ok := validate.AsErrors(err)
	if !ok {
		t.Fatalf("expected validate.Errors, got %v", err)
	}
	if len(verrs) == 0 || verrs[0].Field != "username" {
		t.Errorf("expected username error, got %+v", verrs)
	}
}

func TestLogin(t *testing.T) {
	repo := newMockRepo()
	id := seedAccount(repo, "asha", "correct-horse")
	svc := NewService(repo)

	a, p, err := svc.Login(context.Background(), LoginInput{Username: "asha", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if a.ID != id {
		t.Errorf("expected account %s, got %s", id, a.ID)
	}
	if p.Role != "staff" {
		t.Errorf("expected staff role, got %q", p.Role)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newMockRepo()
	seedAccount(repo, "asha", "correct-horse")
	svc := NewService(repo)

	_, _, err := svc.Login(context.Background(), LoginInput{Username: "asha", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := NewService(newMockRepo())

	_, _, err := svc.Login(context.Background(), LoginInput{Username: "ghost", Password: "anything"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_InactiveAccount(t *testing.T) {
	repo := newMockRepo()
	id := seedAccount(repo, "asha", "correct-horse")
	repo.accounts[id].IsActive = false
	svc := NewService(repo)

	_, _, err := svc.Login(context.Background(), LoginInput{Username: "asha", Password: "correct-horse"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	repo := newMockRepo()
	id := seedAccount(repo, "asha", "old-pass-123")
	svc := NewService(repo)

	err := svc.ChangePassword(context.Background(), id, ChangePasswordInput{
		OldPassword:     "old-pass-123",
		NewPassword:     "new-pass-456",
		ConfirmPassword: "new-pass-456",
	})
	if err != nil {
		t.Fatalf("ChangePassword() error: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(repo.accounts[id].PasswordHash), []byte("new-pass-456")); err != nil {
		t.Errorf("new password does not verify: %v", err)
	}
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	repo := newMockRepo()
	id := seedAccount(repo, "asha", "old-pass-123")
	svc := NewService(repo)

	err := svc.ChangePassword(context.Background(), id, ChangePasswordInput{
		OldPassword:     "not-the-old-one",
		NewPassword:     "new-pass-456",
		ConfirmPassword: "new-pass-456",
	})
	verrs, ok := validate.AsErrors(err)
	if !ok {
		t.Fatalf("expected validate.Errors, got %v", err)
	}
	if len(verrs) == 0 || verrs[0].Field != "old_password" {
		t.Errorf("expected old_password error, got %+v", verrs)
	}
}
