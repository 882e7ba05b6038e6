package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)

	// List retrieves all users; ListActive only those with the active flag,
	// ordered by name ascending (the aggregator relies on that ordering).
	List(ctx context.Context) ([]User, error)
	ListActive(ctx context.Context) ([]User, error)

	Update(ctx context.Context, u User) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	SetActive(ctx context.Context, id string, active bool) error
	LinkGoogleAccount(ctx context.Context, googleID string, email string) (User, error)
}
