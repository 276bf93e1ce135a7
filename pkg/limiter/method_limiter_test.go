package limiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMethodLimiter_GetBucket(t *testing.T) {
	l := NewMethodLimiter().AddBuckets(
		BucketRule{Key: "/api/auth", FillInterval: time.Second, Capacity: 2, Quantum: 2},
	)

	tests := []struct {
		path  string
		found bool
	}{
		{"/api/auth", true},
		{"/api/auth/login", true},
		{"/api/authors", false},
		{"/api/memos", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, ok := l.GetBucket(tt.path)
			assert.Equal(t, tt.found, ok)
		})
	}
}

func TestMethodLimiter_TakeAvailable(t *testing.T) {
	l := NewMethodLimiter().AddBuckets(
		BucketRule{Key: "/api/auth", FillInterval: time.Hour, Capacity: 2, Quantum: 1},
	)
	bucket, ok := l.GetBucket("/api/auth/login")
	assert.True(t, ok)

	assert.Equal(t, int64(1), bucket.TakeAvailable(1))
	assert.Equal(t, int64(1), bucket.TakeAvailable(1))
	assert.Equal(t, int64(0), bucket.TakeAvailable(1))
}
