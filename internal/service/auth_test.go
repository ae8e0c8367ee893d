package service

import (
	"context"
	"testing"

	"meetwise/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	byEmail map[string]*model.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: map[string]*model.User{}}
}

func (f *fakeUsers) Create(ctx context.Context, u *model.User) error {
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUsers) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return f.byEmail[email], nil
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newFakeUsers())

	u, err := svc.Register(context.Background(), "alice@example.com", "hunter22", "Alice", "Smith")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.NotEqual(t, "hunter22", u.Password, "password must be stored hashed")

	got, err := svc.Login(context.Background(), "alice@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newFakeUsers())

	_, err := svc.Register(context.Background(), "alice@example.com", "pw1", "", "")
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), "alice@example.com", "pw2", "", "")
	assert.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestLoginBadCredentials(t *testing.T) {
	svc := NewAuthService(newFakeUsers())
	_, err := svc.Register(context.Background(), "alice@example.com", "hunter22", "", "")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "alice@example.com", "wrong")
	assert.ErrorIs(t, err, model.ErrBadCredentials)

	_, err = svc.Login(context.Background(), "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, model.ErrBadCredentials)
}
