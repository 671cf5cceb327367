package usecase

import (
	"context"
	"testing"
	"time"

	"transfer-booking/internal/data/entity"
	"transfer-booking/internal/data/repository"
	"transfer-booking/internal/dto/request"
	"transfer-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserRepo struct {
	users []*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	return f.users, nil
}

func (f *fakeUserRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }
func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }

type fakeSessionRepo struct {
	sessions []*entity.Session
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	f.sessions = append(f.sessions, session)
	return nil
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	for _, session := range f.sessions {
		if session.Token.String() == token && session.RevokedAt == nil && session.ExpiresAt.After(time.Now()) {
			return session, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	now := time.Now()
	for _, session := range f.sessions {
		if session.Token.String() == token {
			session.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeSessionRepo) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	now := time.Now()
	for _, session := range f.sessions {
		if session.UserID == userID {
			session.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeSessionRepo) CleanExpiredSessions(ctx context.Context) error { return nil }

func newAuthFixture(t *testing.T, password string) (AuthService, *fakeSessionRepo, *entity.User) {
	t.Helper()

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	user := &entity.User{
		Base:         entity.Base{ID: uuid.New()},
		Username:     "office",
		Email:        "office@example.com",
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		Active:       true,
	}

	sessions := &fakeSessionRepo{}
	repo := &repository.Repository{
		User:    &fakeUserRepo{users: []*entity.User{user}},
		Session: sessions,
	}

	config := &utils.Config{Session: utils.SessionConfig{ExpiryHours: 12}}
	return NewAuthService(repo, config, zap.NewNop()), sessions, user
}

func TestLogin(t *testing.T) {
	service, sessions, user := newAuthFixture(t, "hunter22")
	ctx := context.Background()

	t.Run("by username", func(t *testing.T) {
		auth, err := service.Login(ctx, &request.LoginRequest{Username: "office", Password: "hunter22"}, "ua", "1.2.3.4")
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), auth.UserID)
		assert.Equal(t, entity.RoleAdmin, auth.Role)
		assert.NotEmpty(t, auth.Token)
		assert.WithinDuration(t, time.Now().Add(12*time.Hour), auth.ExpiresAt, time.Minute)
	})

	t.Run("by email", func(t *testing.T) {
		auth, err := service.Login(ctx, &request.LoginRequest{Username: "office@example.com", Password: "hunter22"}, "", "")
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), auth.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Login(ctx, &request.LoginRequest{Username: "office", Password: "wrong-pass"}, "", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid credentials")
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := service.Login(ctx, &request.LoginRequest{Username: "ghost", Password: "hunter22"}, "", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid credentials")
	})

	t.Run("session persisted", func(t *testing.T) {
		assert.NotEmpty(t, sessions.sessions)
	})
}

func TestLoginDisabledAccount(t *testing.T) {
	service, _, user := newAuthFixture(t, "hunter22")
	user.Active = false

	_, err := service.Login(context.Background(), &request.LoginRequest{Username: "office", Password: "hunter22"}, "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disabled")
}

func TestLogout(t *testing.T) {
	service, sessions, _ := newAuthFixture(t, "hunter22")
	ctx := context.Background()

	auth, err := service.Login(ctx, &request.LoginRequest{Username: "office", Password: "hunter22"}, "", "")
	require.NoError(t, err)

	ctx = utils.SetTokenContext(ctx, auth.Token)
	require.NoError(t, service.Logout(ctx))

	found, _ := sessions.FindValidSession(ctx, auth.Token)
	assert.Nil(t, found)

	t.Run("no session in context", func(t *testing.T) {
		err := service.Logout(context.Background())
		require.Error(t, err)
	})
}

func TestMe(t *testing.T) {
	service, _, user := newAuthFixture(t, "hunter22")

	ctx := utils.SetUserContext(context.Background(), user.ID, string(user.Role))
	me, err := service.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.Username, me.Username)

	t.Run("unauthenticated", func(t *testing.T) {
		_, err := service.Me(context.Background())
		require.Error(t, err)
	})
}
