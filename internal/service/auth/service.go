package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
	userRepo "github.com/m04kA/SMC-SurfShopService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SurfShopService/pkg/password"
)

// Service регистрация первого оператора и вход по паролю
type Service struct {
	users  UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
	logger Logger
}

// NewService создает новый экземпляр сервиса авторизации
func NewService(users UserRepository, hasher PasswordHasher, tokens TokenIssuer, logger Logger) *Service {
	return &Service{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

// Setup создает первого оператора. Пока оператор есть, повторная регистрация закрыта.
func (s *Service) Setup(ctx context.Context, creds *Credentials) error {
	username := strings.TrimSpace(creds.Username)
	if username == "" || creds.Password == "" {
		return fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	if existing, err := s.users.GetByUsername(ctx, username); err == nil && existing != nil {
		s.logger.Warn("Setup: username %q already exists", username)
		return ErrUserExists
	} else if err != nil && !errors.Is(err, userRepo.ErrUserNotFound) {
		s.logger.Error("Setup: failed to check username: %v", err)
		return fmt.Errorf("%w: Setup - %v", ErrInternal, err)
	}

	count, err := s.users.Count(ctx)
	if err != nil {
		s.logger.Error("Setup: failed to count users: %v", err)
		return fmt.Errorf("%w: Setup - %v", ErrInternal, err)
	}
	if count > 0 {
		s.logger.Warn("Setup: rejected, %d operator(s) already registered", count)
		return ErrSetupClosed
	}

	hash, err := s.hasher.Hash(creds.Password)
	if err != nil {
		if errors.Is(err, password.ErrEmptyPassword) {
			return fmt.Errorf("%w: password is required", ErrInvalidInput)
		}
		s.logger.Error("Setup: failed to hash password: %v", err)
		return fmt.Errorf("%w: Setup - %v", ErrInternal, err)
	}

	if _, err := s.users.Create(ctx, &domain.User{Username: username, PasswordHash: hash}); err != nil {
		if errors.Is(err, userRepo.ErrUserExists) {
			return ErrUserExists
		}
		s.logger.Error("Setup: repository error: %v", err)
		return fmt.Errorf("%w: Setup - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Setup: operator %q created", username)
	return nil
}

// Login проверяет пароль и выдаёт токен
func (s *Service) Login(ctx context.Context, creds *Credentials) (*LoginResponse, error) {
	username := strings.TrimSpace(creds.Username)

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown username %q", username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := s.hasher.Compare(user.PasswordHash, creds.Password); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			s.logger.Warn("Login: wrong password for %q", username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: failed to compare password: %v", err)
		return nil, fmt.Errorf("%w: Login - %v", ErrInternal, err)
	}

	token, expiresAt, err := s.tokens.Generate(user.ID.String(), user.Username)
	if err != nil {
		s.logger.Error("Login: failed to issue token: %v", err)
		return nil, fmt.Errorf("%w: Login - %v", ErrInternal, err)
	}

	s.logger.Info("Login: operator %q logged in", username)
	return &LoginResponse{
		Success:   true,
		Username:  user.Username,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
