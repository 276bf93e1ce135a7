package util

import (
	"strconv"
	"strings"
	"time"
)

// ParseDuration parses a duration string, supports the 'd' (day) suffix and bare seconds
// ParseDuration 解析时长字符串，支持 'd'（天）后缀与纯数字秒
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return 0, err
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	if _, err := strconv.Atoi(s); err == nil {
		s += "s"
	}
	return time.ParseDuration(s)
}
