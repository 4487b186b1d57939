package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/models"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/repository"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type TokenPair struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *models.User
}

type AuthService struct {
	users     repository.UserRepo
	hasher    PasswordHasher
	sign      func(u *models.User, ttl time.Duration) (string, time.Time, error)
	accessTTL time.Duration
	log       *zap.Logger
}

func NewAuthService(
	users repository.UserRepo,
	hasher PasswordHasher,
	sign func(u *models.User, ttl time.Duration) (string, time.Time, error),
	accessTTL time.Duration,
	log *zap.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		hasher:    hasher,
		sign:      sign,
		accessTTL: accessTTL,
		log:       log,
	}
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*TokenPair, error) {
	exists, err := s.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyUsed
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Role:     models.RoleCustomer,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	s.log.Info("user registered", zap.String("email", u.Email))
	return s.issue(u)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil || !s.hasher.Compare(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return s.issue(u)
}

func (s *AuthService) issue(u *models.User) (*TokenPair, error) {
	access, exp, err := s.sign(u, s.accessTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, ExpiresAt: exp, User: u}, nil
}
