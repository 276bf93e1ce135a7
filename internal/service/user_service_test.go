package service

import (
	"context"
	"testing"

	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/domain"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/dto"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/app"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/code"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// mockUserRepo keeps users in memory
type mockUserRepo struct {
	domain.UserRepository
	users  map[int64]*domain.User
	nextID int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[int64]*domain.User{}}
}

func (m *mockUserRepo) find(match func(u *domain.User) bool) (*domain.User, error) {
	for _, u := range m.users {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByID(ctx context.Context, uid int64) (*domain.User, error) {
	return m.find(func(u *domain.User) bool { return u.UID == uid })
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return m.find(func(u *domain.User) bool { return u.Username == username })
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.find(func(u *domain.User) bool { return u.Email != "" && u.Email == email })
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	m.nextID++
	cp := *user
	cp.UID = m.nextID
	m.users[cp.UID] = &cp
	return &cp, nil
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, user *domain.User) (*domain.User, error) {
	cp := *user
	m.users[user.UID] = &cp
	return &cp, nil
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, password string, uid int64) error {
	m.users[uid].Password = password
	return nil
}

func newTestUserService(t *testing.T, registerEnabled bool) (UserService, *mockUserRepo, app.TokenManager) {
	t.Helper()
	repo := newMockUserRepo()
	tm := app.NewTokenManager(app.TokenConfig{SecretKey: "test-secret"})
	cfg := &ServiceConfig{User: UserServiceConfig{RegisterIsEnable: registerEnabled}}
	return NewUserService(repo, tm, nil, cfg), repo, tm
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled", func(t *testing.T) {
		svc, _, _ := newTestUserService(t, false)
		_, err := svc.Register(ctx, &dto.UserRegisterRequest{Username: "alice", Password: "secret1"})
		assert.ErrorIs(t, err, code.ErrorUserRegisterIsDisable)
	})

	svc, repo, tm := newTestUserService(t, true)

	res, err := svc.Register(ctx, &dto.UserRegisterRequest{Username: "alice", Password: "secret1", Email: "alice@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "alice", res.User.Username)
	assert.Equal(t, domain.RoleUser, res.User.Role)
	assert.Equal(t, int64(86400), res.ExpiresIn)

	claims, err := tm.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, res.User.UID, claims.UID)

	stored := repo.users[res.User.UID]
	assert.NotEqual(t, "secret1", stored.Password)
	assert.True(t, util.CheckPasswordHash(stored.Password, "secret1"))

	tests := []struct {
		name string
		req  dto.UserRegisterRequest
		want *code.Code
	}{
		{"duplicate username", dto.UserRegisterRequest{Username: "alice", Password: "secret1"}, code.ErrorUserAlreadyExists},
		{"duplicate email", dto.UserRegisterRequest{Username: "bob", Password: "secret1", Email: "alice@example.com"}, code.ErrorUserEmailAlreadyExists},
		{"short username", dto.UserRegisterRequest{Username: "al", Password: "secret1"}, code.ErrorUserUsernameNotValid},
		{"bad characters", dto.UserRegisterRequest{Username: "al ice", Password: "secret1"}, code.ErrorUserUsernameNotValid},
		{"bad email", dto.UserRegisterRequest{Username: "carol", Password: "secret1", Email: "nope"}, code.ErrorInvalidParams},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, &tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestUserService(t, true)

	_, err := svc.Register(ctx, &dto.UserRegisterRequest{Username: "alice", Password: "secret1", Email: "alice@example.com"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{"by username", "alice", "secret1", false},
		{"by email", "alice@example.com", "secret1", false},
		{"wrong password", "alice", "secret2", true},
		{"unknown user", "mallory", "secret1", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Login(ctx, &dto.UserLoginRequest{Username: tt.username, Password: tt.password})
			if tt.wantErr {
				// 不区分用户不存在与密码错误
				assert.ErrorIs(t, err, code.ErrorUserLoginPasswordFailed)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, res.Token)
			assert.Equal(t, "alice", res.User.Username)
		})
	}
}

func TestUserService_ProfileAndPassword(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestUserService(t, true)

	alice, err := svc.Register(ctx, &dto.UserRegisterRequest{Username: "alice", Password: "secret1", Email: "alice@example.com"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, &dto.UserRegisterRequest{Username: "bob", Password: "secret1", Email: "bob@example.com"})
	require.NoError(t, err)
	uid := alice.User.UID

	_, err = svc.UpdateProfile(ctx, uid, &dto.UserProfileRequest{Username: "bob"})
	assert.ErrorIs(t, err, code.ErrorUserAlreadyExists)

	_, err = svc.UpdateProfile(ctx, uid, &dto.UserProfileRequest{Email: "bob@example.com"})
	assert.ErrorIs(t, err, code.ErrorUserEmailAlreadyExists)

	me, err := svc.UpdateProfile(ctx, uid, &dto.UserProfileRequest{Username: "alice2", Email: "alice@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "alice2", me.Username)
	assert.Equal(t, "alice@example.com", me.Email)

	err = svc.ChangePassword(ctx, uid, &dto.UserChangePasswordRequest{CurrentPassword: "wrong", NewPassword: "secret2"})
	assert.ErrorIs(t, err, code.ErrorUserOldPasswordFailed)

	require.NoError(t, svc.ChangePassword(ctx, uid, &dto.UserChangePasswordRequest{CurrentPassword: "secret1", NewPassword: "secret2"}))
	_, err = svc.Login(ctx, &dto.UserLoginRequest{Username: "alice2", Password: "secret2"})
	assert.NoError(t, err)

	_, err = svc.Me(ctx, 404)
	assert.ErrorIs(t, err, code.ErrorUserNotFound)
}
