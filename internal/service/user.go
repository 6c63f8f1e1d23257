package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/templui/taskboard/internal/model"
	"github.com/templui/taskboard/internal/repository"
	"github.com/templui/taskboard/internal/validation"
)

type UserService struct {
	userRepository repository.UserRepository
}

func NewUserService(userRepository repository.UserRepository) *UserService {
	return &UserService{userRepository: userRepository}
}

func (s *UserService) Profile(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.userRepository.ByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, newError(ErrNotFound, "User not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// UpdateProfile overwrites only the names that are non-empty in the input.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in model.ProfileInput) (*model.User, error) {
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.FirstName != "" {
		err = validation.ValidateName(in.FirstName)
		if err != nil {
			return nil, validationError(err)
		}
		user.FirstName = &in.FirstName
	}
	if in.LastName != "" {
		err = validation.ValidateName(in.LastName)
		if err != nil {
			return nil, validationError(err)
		}
		user.LastName = &in.LastName
	}

	err = s.userRepository.UpdateProfile(ctx, user)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, newError(ErrNotFound, "User not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return user, nil
}
