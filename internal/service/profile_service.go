package service

import (
	"fmt"
	"io"
	"time"

	"foxscrb-server/internal/domain"
	"foxscrb-server/internal/repository"
	"foxscrb-server/pkg/hash"

	"github.com/go-playground/validator/v10"
)

// AvatarStore persists an uploaded profile picture and returns the public
// reference path to record on the user.
type AvatarStore interface {
	Save(userID, filename string, data io.Reader) (string, error)
}

// AvatarUpload is a pending profile-picture upload.
type AvatarUpload struct {
	Filename string
	Data     io.Reader
}

type ProfileService struct {
	userRepo repository.UserRepository
	avatars  AvatarStore
	validate *validator.Validate
}

func NewProfileService(userRepo repository.UserRepository, avatars AvatarStore) *ProfileService {
	return &ProfileService{
		userRepo: userRepo,
		avatars:  avatars,
		validate: validator.New(),
	}
}

func (s *ProfileService) Get(userID string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, &NotFoundError{Message: "User not found"}
	}

	user.Password = ""
	return user, nil
}

// UpdateProfile applies the provided fields and leaves the rest untouched: a
// blank name keeps the old name, a nil avatar keeps the old picture.
func (s *ProfileService) UpdateProfile(userID, name string, avatar *AvatarUpload) (*domain.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, &NotFoundError{Message: "User not found"}
	}

	if name != "" {
		user.Name = name
	}

	if avatar != nil {
		path, err := s.avatars.Save(userID, avatar.Filename, avatar.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to store profile picture: %w", err)
		}
		user.ProfilePicture = path
	}

	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	user.Password = ""
	return user, nil
}

// ChangePassword overwrites the stored hash. The confirmation must match and
// the same length rule as registration applies.
func (s *ProfileService) ChangePassword(userID, password, confirmation string) error {
	req := &domain.ChangePasswordRequest{
		Password:  password,
		Password2: confirmation,
	}
	if err := s.validate.Struct(req); err != nil {
		return translateValidation(err)
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return &NotFoundError{Message: "User not found"}
	}

	hashedPassword, err := hash.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.Password = hashedPassword
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}
