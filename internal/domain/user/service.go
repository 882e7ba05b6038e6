package user

import "context"

// UserService defines admin-facing account management plus profile lookup.
type UserService interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	UpdateUser(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
	GetUser(ctx context.Context, id string) (UserResponse, error)
	ListUsers(ctx context.Context) ([]UserResponse, error)

	// DeactivateUser flips the active flag instead of deleting; history and
	// leave records stay attached to the account.
	DeactivateUser(ctx context.Context, id string) error
}
