package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"vidshare-backend/internal/domains/user"
	"vidshare-backend/pkg/jwt"
)

type fakeRepo struct {
	byID    map[uuid.UUID]*user.User
	byEmail map[string]*user.User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byID:    map[uuid.UUID]*user.User{},
		byEmail: map[string]*user.User{},
	}
}

func (f *fakeRepo) Create(ctx context.Context, u *user.User) error {
	if _, exists := f.byEmail[u.Email]; exists {
		return user.ErrEmailAlreadyExists
	}
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func newService(repo user.Repository) user.Service {
	manager := jwt.NewManager("test-secret", 15*time.Minute, 72*time.Hour)
	return NewUserService(repo, manager)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a bcrypt hash, never the raw password", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newService(repo)

		dto, err := svc.Register(ctx, user.RegisterRequest{
			Email:    "alice@example.com",
			Password: "s3cretpass",
		})
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", dto.Email)

		stored := repo.byEmail["alice@example.com"]
		require.NotNil(t, stored)
		assert.NotEqual(t, "s3cretpass", stored.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword(
			[]byte(stored.PasswordHash), []byte("s3cretpass"),
		))
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newService(repo)

		req := user.RegisterRequest{Email: "bob@example.com", Password: "s3cretpass"}
		_, err := svc.Register(ctx, req)
		require.NoError(t, err)

		_, err = svc.Register(ctx, req)
		assert.ErrorIs(t, err, user.ErrEmailAlreadyExists)
	})

	t.Run("invalid email fails validation", func(t *testing.T) {
		svc := newService(newFakeRepo())

		_, err := svc.Register(ctx, user.RegisterRequest{
			Email:    "not-an-email",
			Password: "s3cretpass",
		})
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	register := func(t *testing.T, svc user.Service) {
		t.Helper()
		_, err := svc.Register(ctx, user.RegisterRequest{
			Email:    "carol@example.com",
			Password: "s3cretpass",
		})
		require.NoError(t, err)
	}

	t.Run("valid credentials return a token pair", func(t *testing.T) {
		svc := newService(newFakeRepo())
		register(t, svc)

		resp, err := svc.Login(ctx, user.LoginRequest{
			Email:    "carol@example.com",
			Password: "s3cretpass",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.NotEqual(t, resp.AccessToken, resp.RefreshToken)
		assert.Equal(t, "carol@example.com", resp.User.Email)
	})

	t.Run("wrong password and unknown email fail identically", func(t *testing.T) {
		svc := newService(newFakeRepo())
		register(t, svc)

		_, wrongPass := svc.Login(ctx, user.LoginRequest{
			Email:    "carol@example.com",
			Password: "wrongpass1",
		})
		_, unknownEmail := svc.Login(ctx, user.LoginRequest{
			Email:    "nobody@example.com",
			Password: "s3cretpass",
		})

		assert.ErrorIs(t, wrongPass, user.ErrInvalidCredentials)
		assert.ErrorIs(t, unknownEmail, user.ErrInvalidCredentials)
		assert.Equal(t, wrongPass.Error(), unknownEmail.Error())
	})
}

func TestRefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("valid refresh token yields a new pair", func(t *testing.T) {
		svc := newService(newFakeRepo())
		_, err := svc.Register(ctx, user.RegisterRequest{
			Email:    "dave@example.com",
			Password: "s3cretpass",
		})
		require.NoError(t, err)

		login, err := svc.Login(ctx, user.LoginRequest{
			Email:    "dave@example.com",
			Password: "s3cretpass",
		})
		require.NoError(t, err)

		refreshed, err := svc.RefreshToken(ctx, login.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, refreshed.AccessToken)
		assert.Equal(t, "dave@example.com", refreshed.User.Email)
	})

	t.Run("access token is not accepted as refresh token", func(t *testing.T) {
		svc := newService(newFakeRepo())
		_, err := svc.Register(ctx, user.RegisterRequest{
			Email:    "erin@example.com",
			Password: "s3cretpass",
		})
		require.NoError(t, err)

		login, err := svc.Login(ctx, user.LoginRequest{
			Email:    "erin@example.com",
			Password: "s3cretpass",
		})
		require.NoError(t, err)

		_, err = svc.RefreshToken(ctx, login.AccessToken)
		assert.ErrorIs(t, err, user.ErrInvalidToken)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		svc := newService(newFakeRepo())

		_, err := svc.RefreshToken(ctx, "not.a.token")
		assert.ErrorIs(t, err, user.ErrInvalidToken)
	})
}
