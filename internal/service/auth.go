package service

import (
	"context"
	"fmt"
	"time"

	"meetwise/internal/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is what auth needs from persistence.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type AuthService struct{ users UserStore }

func NewAuthService(users UserStore) *AuthService { return &AuthService{users: users} }

func (s *AuthService) Register(ctx context.Context, email, password, firstName, lastName string) (*model.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrEmailTaken, email)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &model.User{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  string(hash),
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, model.ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, model.ErrBadCredentials
	}
	return u, nil
}
