package account

import (
	"time"

	"github.com/google/uuid"
)

// Account is a login identity for hospital staff.
type Account struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile holds the staff details attached one-to-one to an account.
type Profile struct {
	AccountID uuid.UUID `json:"account_id"`
	Role      string    `json:"role"`
	Gender    string    `json:"gender"`
	DOB       time.Time `json:"dob"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	MobileNo  string    `json:"mobile_no"`
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Username        string `form:"username" json:"username"`
	Email           string `form:"email" json:"email"`
	Password        string `form:"password" json:"password"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password"`
	FirstName       string `form:"first_name" json:"first_name"`
	LastName        string `form:"last_name" json:"last_name"`
	Role            string `form:"role" json:"role"`
	Gender          string `form:"gender" json:"gender"`
	DOB             string `form:"dob" json:"dob"`
	Address         string `form:"address" json:"address"`
	City            string `form:"city" json:"city"`
	MobileNo        string `form:"mobile_no" json:"mobile_no"`
}

// LoginInput carries the login form fields.
type LoginInput struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// ChangePasswordInput carries the change-password form fields.
type ChangePasswordInput struct {
	OldPassword     string `form:"old_password" json:"old_password"`
	NewPassword     string `form:"new_password" json:"new_password"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password"`
}
