package limiter

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/juju/ratelimit"
)

// MethodLimiter limits by request path, a rule key matches the path or any path below it
// MethodLimiter 按请求路径限流，规则键匹配该路径及其子路径
type MethodLimiter struct {
	*limiter
}

func NewMethodLimiter() Face {
	return &MethodLimiter{
		limiter: &limiter{buckets: make(map[string]*ratelimit.Bucket)},
	}
}

func (l *MethodLimiter) Key(c *gin.Context) string {
	return c.Request.URL.Path
}

// GetBucket returns the bucket of the longest rule key that prefixes key
// GetBucket 返回与 key 前缀匹配最长的规则对应的令牌桶
func (l *MethodLimiter) GetBucket(key string) (*ratelimit.Bucket, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if bucket, ok := l.buckets[key]; ok {
		return bucket, true
	}

	var (
		best    *ratelimit.Bucket
		bestLen int
	)
	for k, bucket := range l.buckets {
		if len(k) > bestLen && hasPathPrefix(key, k) {
			best, bestLen = bucket, len(k)
		}
	}
	return best, best != nil
}

func (l *MethodLimiter) AddBuckets(rules ...BucketRule) Face {
	l.add(rules...)
	return l
}

func hasPathPrefix(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	return len(path) == len(prefix) || prefix[len(prefix)-1] == '/' || path[len(prefix)] == '/'
}
