package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/templui/taskboard/internal/model"
	"github.com/templui/taskboard/internal/repository"
	"github.com/templui/taskboard/internal/validation"
)

type AuthService struct {
	userRepository repository.UserRepository
	credentials    *CredentialService
	emailService   *EmailService
}

func NewAuthService(
	userRepository repository.UserRepository,
	credentials *CredentialService,
	emailService *EmailService,
) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		credentials:    credentials,
		emailService:   emailService,
	}
}

func (s *AuthService) Register(ctx context.Context, in model.RegisterInput) (*model.Session, error) {
	if in.Email == "" || in.Password == "" {
		return nil, newError(ErrValidation, "Email and password are required")
	}

	email := normalizeEmail(in.Email)
	err := validation.ValidateEmail(email)
	if err != nil {
		return nil, validationError(err)
	}
	err = validation.ValidatePassword(in.Password)
	if err != nil {
		return nil, validationError(err)
	}
	for _, name := range []string{in.FirstName, in.LastName} {
		err = validation.ValidateName(name)
		if err != nil {
			return nil, validationError(err)
		}
	}

	_, err = s.userRepository.ByEmail(ctx, email)
	if err == nil {
		return nil, newError(ErrConflict, "User already exists")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hash, err := s.credentials.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &model.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    optionalString(in.FirstName),
		LastName:     optionalString(in.LastName),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.userRepository.Create(ctx, user)
	if errors.Is(err, repository.ErrDuplicateEmail) {
		// lost a race with a concurrent registration
		return nil, newError(ErrConflict, "User already exists")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.credentials.IssueToken(user.ID)
	if err != nil {
		return nil, err
	}

	if s.emailService != nil {
		err = s.emailService.SendWelcomeEmail(ctx, user.Email, in.FirstName)
		if err != nil {
			slog.Warn("failed to send welcome email", "error", err, "email", user.Email)
		}
	}

	slog.Info("user registered", "user_id", user.ID)
	return &model.Session{PublicUser: user.Public(), Token: token}, nil
}

func (s *AuthService) Login(ctx context.Context, in model.LoginInput) (*model.Session, error) {
	if in.Email == "" || in.Password == "" {
		return nil, newError(ErrValidation, "Email and password are required")
	}

	user, err := s.userRepository.ByEmail(ctx, normalizeEmail(in.Email))
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, newError(ErrAuthentication, "Invalid credentials")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.credentials.VerifyPassword(in.Password, user.PasswordHash) {
		return nil, newError(ErrAuthentication, "Invalid credentials")
	}

	now := time.Now().UTC()
	err = s.userRepository.TouchLastLogin(ctx, user.ID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}
	user.LastLogin = &now

	token, err := s.credentials.IssueToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &model.Session{PublicUser: user.Public(), Token: token}, nil
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
