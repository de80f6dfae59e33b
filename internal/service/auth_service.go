package service

import (
	"fmt"
	"time"

	"foxscrb-server/internal/domain"
	"foxscrb-server/internal/repository"
	"foxscrb-server/pkg/hash"
	"foxscrb-server/pkg/resettoken"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type AuthService struct {
	userRepo        repository.UserRepository
	notifier        ResetNotifier
	validate        *validator.Validate
	resetSecret     string
	resetExpiration time.Duration
}

func NewAuthService(userRepo repository.UserRepository, notifier ResetNotifier, resetSecret string, resetExp time.Duration) *AuthService {
	return &AuthService{
		userRepo:        userRepo,
		notifier:        notifier,
		validate:        validator.New(),
		resetSecret:     resetSecret,
		resetExpiration: resetExp,
	}
}

// Register creates a new account and returns its id. Only the bcrypt hash of
// the password is stored.
func (s *AuthService) Register(req *domain.RegisterRequest) (string, error) {
	if err := s.validate.Struct(req); err != nil {
		return "", translateValidation(err)
	}

	emailExists, err := s.userRepo.EmailExists(req.Email)
	if err != nil {
		return "", fmt.Errorf("failed to check email existence: %w", err)
	}
	if emailExists {
		return "", &DuplicateEmailError{Email: req.Email}
	}

	hashedPassword, err := hash.Hash(req.Password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  hashedPassword,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.userRepo.Create(user); err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	return user.ID, nil
}

// Authenticate verifies an email/password pair. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Authenticate(req *domain.LoginRequest) (*domain.User, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, translateValidation(err)
	}

	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, &AuthenticationError{}
	}

	if err := hash.Compare(user.Password, req.Password); err != nil {
		return nil, &AuthenticationError{}
	}

	user.Password = ""
	return user, nil
}

// ForgotPassword checks the email exists, mints a reset token and hands it to
// the notifier. Actual delivery depends on the configured notifier.
func (s *AuthService) ForgotPassword(email string) error {
	if email == "" {
		return &ValidationError{Messages: []string{"Please enter your email"}}
	}

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return &NotFoundError{Message: "No account found with that email"}
	}

	token, err := resettoken.Generate(user.ID, s.resetExpiration, s.resetSecret)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	if err := s.notifier.SendPasswordReset(user.Email, token); err != nil {
		return fmt.Errorf("failed to send reset notification: %w", err)
	}

	return nil
}
