package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/hms/hms/internal/platform/validate"
)

// ErrInvalidCredentials is returned by Login when the username is unknown,
// the account is disabled, or the password does not match. Callers must not
// distinguish the three cases.
var ErrInvalidCredentials = errors.New("invalid username or password")

// bcryptCost trades login latency for resistance to offline cracking.
const bcryptCost = 14

const uniqueViolation = "23505"

var (
	validRoles   = []string{"admin", "doctor", "staff", "receptionist"}
	validGenders = []string{"male", "female", "other"}
)

type Service struct {
	accounts Repository
}

func NewService(accounts Repository) *Service {
	return &Service{accounts: accounts}
}

// Roles lists the roles a registration form may choose from.
func Roles() []string { return validRoles }

func (s *Service) Register(ctx context.Context, in RegisterInput) (*Account, error) {
	var errs validate.Errors
	errs.Required("username", in.Username)
	errs.Required("email", in.Email)
	errs.Email("email", in.Email)
	errs.Required("password", in.Password)
	errs.MinLen("password", in.Password, 8)
	if in.Password != in.ConfirmPassword {
		errs.Add("confirm_password", "passwords do not match")
	}
	errs.Required("first_name", in.FirstName)
	errs.Required("role", in.Role)
	errs.OneOf("role", in.Role, validRoles)
	errs.Required("gender", in.Gender)
	errs.OneOf("gender", in.Gender, validGenders)
	dob := errs.Date("dob", in.DOB)
	errs.Required("address", in.Address)
	errs.Required("city", in.City)
	errs.Required("mobile_no", in.MobileNo)
	errs.Mobile("mobile_no", in.MobileNo)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if taken, err := s.accounts.UsernameTaken(ctx, in.Username); err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	} else if taken {
		errs.Add("username", "is already taken")
	}
	if taken, err := s.accounts.EmailTaken(ctx, in.Email); err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	} else if taken {
		errs.Add("email", "is already registered")
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	a := &Account{
		ID:           uuid.New(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
	}
	p := &Profile{
		Role:     in.Role,
		Gender:   in.Gender,
		DOB:      dob,
		Address:  in.Address,
		City:     in.City,
		MobileNo: in.MobileNo,
	}
	if err := s.accounts.Create(ctx, a, p); err != nil {
		// Concurrent registration can slip past the taken checks.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			errs.Add("username", "is already taken")
			return nil, errs.Err()
		}
		return nil, fmt.Errorf("create account: %w", err)
	}
	return a, nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (*Account, *Profile, error) {
	var errs validate.Errors
	errs.Required("username", in.Username)
	errs.Required("password", in.Password)
	if err := errs.Err(); err != nil {
		return nil, nil, err
	}

	a, p, err := s.accounts.GetByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("get account: %w", err)
	}
	if !a.IsActive {
		return nil, nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(in.Password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}
	return a, p, nil
}

func (s *Service) ChangePassword(ctx context.Context, accountID uuid.UUID, in ChangePasswordInput) error {
	var errs validate.Errors
	errs.Required("old_password", in.OldPassword)
	errs.Required("new_password", in.NewPassword)
	errs.MinLen("new_password", in.NewPassword, 8)
	if in.NewPassword != in.ConfirmPassword {
		errs.Add("confirm_password", "passwords do not match")
	}
	if err := errs.Err(); err != nil {
		return err
	}

	a, _, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(in.OldPassword)) != nil {
		errs.Add("old_password", "is incorrect")
		return errs.Err()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.accounts.UpdatePassword(ctx, accountID, string(hash)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func (s *Service) Get(ctx context.Context, accountID uuid.UUID) (*Account, *Profile, error) {
	return s.accounts.GetByID(ctx, accountID)
}
