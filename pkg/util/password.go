package util

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost bcrypt cost used for new hashes
// PasswordCost 新密码哈希使用的 bcrypt 成本
const PasswordCost = 10

// GeneratePasswordHash returns the bcrypt hash of password
// GeneratePasswordHash 返回密码的 bcrypt 哈希值
func GeneratePasswordHash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether password matches hash
// CheckPasswordHash 判断密码与哈希值是否匹配
func CheckPasswordHash(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
