package user

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rafaelpontes/focushub/internal/config"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidInput       = errors.New("invalid input")
)

type UserService interface {
	Register(ctx context.Context, dto RegisterDTO) (*UserResponse, error)
	Login(ctx context.Context, dto LoginDTO) (*UserResponse, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*UserResponse, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type userService struct {
	repo UserRepository
}

func NewService(repo UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Register(ctx context.Context, dto RegisterDTO) (*UserResponse, error) {
	log := config.WithContext(ctx)

	email := strings.ToLower(strings.TrimSpace(dto.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidInput
	}
	if len(dto.Password) < 8 {
		return nil, ErrInvalidInput
	}

	existing, err := s.repo.GetByEmail(email)
	if err != nil {
		log.WithError(err).Error("Failed to look up email")
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return nil, err
	}

	u := User{
		ID:           uuid.New(),
		Email:        email,
		Name:         strings.TrimSpace(dto.Name),
		PasswordHash: string(hash),
	}

	if err := s.repo.Create(&u); err != nil {
		log.WithError(err).Error("Failed to create user")
		return nil, err
	}

	log.WithField("user_id", u.ID).Info("User registered")
	return toResponse(&u), nil
}

func (s *userService) Login(ctx context.Context, dto LoginDTO) (*UserResponse, error) {
	log := config.WithContext(ctx)

	email := strings.ToLower(strings.TrimSpace(dto.Email))
	u, err := s.repo.GetByEmail(email)
	if err != nil {
		log.WithError(err).Error("Failed to look up email")
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return toResponse(u), nil
}

func (s *userService) GetByID(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	u, err := s.repo.GetByID(userID.String())
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return toResponse(u), nil
}

func (s *userService) Delete(ctx context.Context, userID uuid.UUID) error {
	log := config.WithContext(ctx)

	u, err := s.repo.GetByID(userID.String())
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}

	if err := s.repo.DeleteCascade(userID); err != nil {
		log.WithError(err).Error("Failed to delete user account")
		return err
	}

	log.WithField("user_id", userID).Info("User account deleted")
	return nil
}
