package convert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrTo(t *testing.T) {
	assert.Equal(t, 12, StrTo(" 12 ").MustInt())
	assert.Equal(t, int64(9007199254740993), StrTo("9007199254740993").MustInt64())
	assert.Equal(t, 0, StrTo("x").MustInt())

	_, err := StrTo("1.5").Int64()
	assert.Error(t, err)
}

func TestStructAssign(t *testing.T) {
	type src struct {
		ID       int64
		Username string
		Password string
		Created  time.Time
	}
	type dst struct {
		ID       int64
		Username string
		Created  time.Time
	}

	now := time.Now()
	out, err := StructAssign(&src{ID: 3, Username: "alice", Password: "hash", Created: now}, &dst{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.ID)
	assert.Equal(t, "alice", out.Username)
	assert.True(t, out.Created.Equal(now))
}
