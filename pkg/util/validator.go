package util

import (
	"regexp"
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
)

// IsValidEmail reports whether email looks like an email address
// IsValidEmail 判断邮箱格式是否正确
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidUsername reports whether username is 3-20 letters, digits or underscores
// IsValidUsername 判断用户名是否为 3-20 位字母、数字或下划线
func IsValidUsername(username string) bool {
	return usernamePattern.MatchString(username)
}
