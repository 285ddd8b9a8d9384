package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"catalog_service/internal/auth"
	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	Login(ctx context.Context, email, password string) (*domain.AuthResponse, error)
	// EnsureUser creates the user when no account with that email exists yet.
	EnsureUser(ctx context.Context, user *domain.User, password string) (*domain.User, bool, error)
}

type authUseCase struct {
	userRepo domain.UserRepository
	tokens   *auth.TokenManager
	log      *logrus.Logger
}

func NewAuthUseCase(repo domain.UserRepository, tokens *auth.TokenManager, logger *logrus.Logger) AuthUseCase {
	return &authUseCase{
		userRepo: repo,
		tokens:   tokens,
		log:      logger,
	}
}

func (uc *authUseCase) Login(ctx context.Context, email, password string) (*domain.AuthResponse, error) {
	email = normalizeEmail(email)
	uc.log.Infof("Use Case: Attempting authentication for email: %s", email)

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.log.Warnf("Use Case: Auth failed - user not found: %s", email)
			return nil, domain.ErrInvalidCredentials
		}
		uc.log.Errorf("Use Case: Error retrieving user %s during auth: %v", email, err)
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			uc.log.Warnf("Use Case: Auth failed - incorrect password for user %s (ID: %d)", email, user.ID)
			return nil, domain.ErrInvalidCredentials
		}
		uc.log.Errorf("Use Case: Error comparing password hash for user %s: %v", email, err)
		return nil, fmt.Errorf("internal error during authentication: %w", err)
	}

	token, expiresAt, err := uc.tokens.Issue(user)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to issue token for user %s: %v", email, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Authentication successful for user %s (ID: %d, role: %s)", email, user.ID, user.Role)
	return &domain.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *user,
	}, nil
}

func (uc *authUseCase) EnsureUser(ctx context.Context, user *domain.User, password string) (*domain.User, bool, error) {
	email := normalizeEmail(user.Email)

	existing, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err == nil {
		uc.log.Infof("Use Case: User %s already present, skipping", email)
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to hash password for %s: %v", email, err)
		return nil, false, fmt.Errorf("internal error processing password: %w", err)
	}

	created, err := uc.userRepo.CreateUser(ctx, &domain.User{
		Name:         user.Name,
		Lastname:     user.Lastname,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         user.Role,
	})
	if err != nil {
		return nil, false, err
	}

	uc.log.Infof("Use Case: Seeded user %s with role %s", created.Email, created.Role)
	return created, true, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
