package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/clockwise-hq/timeclock-backend-go/internal/domain/user"
	"github.com/clockwise-hq/timeclock-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// defaultLeaveQuota is granted to new accounts unless the request says
// otherwise.
const defaultLeaveQuota = 20

type UserServiceImpl struct {
	tx database.TxManager
	user.UserRepository
}

func NewUserService(tx database.TxManager, userRepo user.UserRepository) user.UserService {
	return &UserServiceImpl{
		tx:             tx,
		UserRepository: userRepo,
	}
}

// CreateUser implements user.UserService.
func (s *UserServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)

	quota := defaultLeaveQuota
	if req.LeaveQuota != nil {
		quota = *req.LeaveQuota
	}

	newUser := user.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: &hashStr,
		Role:         user.Role(req.Role),
		Active:       true,
		LeaveQuota:   quota,
	}

	var created user.User
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.UserRepository.GetByUsername(ctx, req.Username); err == nil {
			return user.ErrUsernameExists
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to check username: %w", err)
		}

		if _, err := s.UserRepository.GetByEmail(ctx, req.Email); err == nil {
			return user.ErrEmailExists
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to check email: %w", err)
		}

		created, err = s.UserRepository.Create(ctx, newUser)
		return err
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(created), nil
}

// UpdateUser implements user.UserService. Only the fields present in the
// request change; the password, when given, is rehashed and updated
// separately.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	var updated user.User
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		u, err := s.UserRepository.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}

		if req.Email != nil {
			u.Email = *req.Email
		}
		if req.Name != nil {
			u.Name = *req.Name
		}
		if req.Role != nil {
			u.Role = user.Role(*req.Role)
		}
		if req.LeaveQuota != nil {
			u.LeaveQuota = *req.LeaveQuota
		}

		if err := s.UserRepository.Update(ctx, u); err != nil {
			return err
		}

		if req.Password != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			if err := s.UserRepository.UpdatePassword(ctx, u.ID, string(hash)); err != nil {
				return err
			}
		}

		updated = u
		return nil
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(updated), nil
}

// GetUser implements user.UserService.
func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}

// ListUsers implements user.UserService.
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	result := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, user.ToResponse(u))
	}
	return result, nil
}

// DeactivateUser implements user.UserService.
func (s *UserServiceImpl) DeactivateUser(ctx context.Context, id string) error {
	return s.UserRepository.SetActive(ctx, id, false)
}
