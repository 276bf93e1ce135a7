package dao

import (
	"context"
	"testing"

	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepository(t *testing.T) {
	repo := NewUserRepository(newTestDao(t))
	ctx := context.Background()

	u, err := repo.Create(ctx, &domain.User{Username: "alice", Password: "hash", Email: "a@example.com"})
	require.NoError(t, err)
	assert.NotZero(t, u.UID)
	assert.Equal(t, domain.RoleUser, u.Role)

	_, err = repo.Create(ctx, &domain.User{Username: "alice", Password: "x"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// 多个空邮箱互不冲突
	_, err = repo.Create(ctx, &domain.User{Username: "bob", Password: "x"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.User{Username: "carol", Password: "x"})
	require.NoError(t, err)

	got, err := repo.GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.UID, got.UID)

	_, err = repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	got.Username = "alice2"
	got.Email = ""
	updated, err := repo.UpdateProfile(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)
	assert.False(t, updated.HasEmail())

	require.NoError(t, repo.UpdatePassword(ctx, "new-hash", u.UID))
	got, err = repo.GetByID(ctx, u.UID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", got.Password)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}
