package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avc/printshop-dashboard/internal/domain"
	"github.com/avc/printshop-dashboard/internal/utils/jwt"
	"github.com/avc/printshop-dashboard/internal/utils/password"
)

// AuthService реализует domain.AuthService
type AuthService struct {
	userRepo         domain.UserRepository
	passwordHasher   password.Hasher
	jwtManager       *jwt.Manager
	openRegistration bool
}

// NewAuthService создает новый AuthService.
// При закрытой регистрации зарегистрироваться может только первый оператор.
func NewAuthService(
	userRepo domain.UserRepository,
	passwordHasher password.Hasher,
	jwtManager *jwt.Manager,
	openRegistration bool,
) *AuthService {
	return &AuthService{
		userRepo:         userRepo,
		passwordHasher:   passwordHasher,
		jwtManager:       jwtManager,
		openRegistration: openRegistration,
	}
}

// Register регистрирует оператора и возвращает токен
func (s *AuthService) Register(ctx context.Context, login, userPassword string) (string, error) {
	login = strings.TrimSpace(login)
	if login == "" || userPassword == "" {
		return "", invalidInput("empty login or password")
	}

	if !s.openRegistration {
		count, err := s.userRepo.CountUsers(ctx)
		if err != nil {
			return "", fmt.Errorf("auth service: failed to check registration for user %q: %w", login, err)
		}
		if count > 0 {
			return "", domain.ErrRegistrationClosed
		}
	}

	hash, err := s.passwordHasher.Hash(userPassword)
	if err != nil {
		if errors.Is(err, password.ErrTooShort) || errors.Is(err, password.ErrEmpty) {
			return "", invalidInput("%v", err)
		}
		return "", fmt.Errorf("auth service: failed to hash password for user %q: %w", login, err)
	}

	user, err := s.userRepo.CreateUser(ctx, login, hash)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return "", err
		}
		return "", fmt.Errorf("auth service: failed to register user %q: %w", login, err)
	}

	return s.issue(user)
}

// Login проверяет пароль оператора и возвращает токен
func (s *AuthService) Login(ctx context.Context, login, userPassword string) (string, error) {
	login = strings.TrimSpace(login)
	if login == "" || userPassword == "" {
		return "", invalidInput("empty login or password")
	}

	user, err := s.userRepo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("auth service: failed to get user %q: %w", login, err)
	}

	if err := s.passwordHasher.Check(user.PasswordHash, userPassword); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *AuthService) issue(user *domain.User) (string, error) {
	token, err := s.jwtManager.Generate(user.ID)
	if err != nil {
		return "", fmt.Errorf("auth service: failed to generate token for user %d: %w", user.ID, err)
	}
	return token, nil
}
