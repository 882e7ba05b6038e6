package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Reviews timesheets and leave, manages accounts
	RoleEmployee Role = "employee" // Regular employee
)

type User struct {
	ID              string
	Username        string
	Email           string
	Name            string
	PasswordHash    *string
	Role            Role
	Active          bool
	LeaveQuota      int // Yearly leave allowance in days
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsAdmin checks if user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
