package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/util"
)

// DefaultTokenIssuer 默认 Token 签发者
const DefaultTokenIssuer = "pim-service"

// UserTokenKey gin context key holding the parsed claims
// UserTokenKey gin 上下文中保存令牌声明的键
const UserTokenKey = "user_token"

// TokenConfig Token 管理器配置
type TokenConfig struct {
	SecretKey   string        // JWT 签名密钥
	Expiry      time.Duration // Token 过期时间，默认 24 小时
	Issuer      string        // Token 签发者
	BindMachine bool          // 签名密钥是否绑定本机
}

// TokenManager Token 管理接口
type TokenManager interface {
	Generate(uid int64, username, role string) (string, error)
	Parse(token string) (*UserEntity, error)
	Expiry() time.Duration
}

type tokenManager struct {
	config TokenConfig
}

// NewTokenManager 创建 TokenManager
func NewTokenManager(cfg TokenConfig) TokenManager {
	if cfg.Expiry <= 0 {
		cfg.Expiry = 24 * time.Hour
	}
	if cfg.Issuer == "" {
		cfg.Issuer = DefaultTokenIssuer
	}
	return &tokenManager{config: cfg}
}

// UserEntity claims carried by a user token, Subject holds the username
// UserEntity 用户令牌声明，Subject 为用户名
type UserEntity struct {
	UID  int64  `json:"uid"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (t *tokenManager) key() []byte {
	if t.config.BindMachine {
		return []byte(t.config.SecretKey + "_" + util.GetMachineID())
	}
	return []byte(t.config.SecretKey)
}

// Generate 生成 JWT Token
func (t *tokenManager) Generate(uid int64, username, role string) (string, error) {
	if t.config.SecretKey == "" {
		return "", fmt.Errorf("token secret key is empty")
	}
	now := time.Now()
	claims := &UserEntity{
		UID:  uid,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(t.config.Expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    t.config.Issuer,
			ID:        uuid.NewString(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.key())
}

// Parse 解析并校验 JWT Token
func (t *tokenManager) Parse(token string) (*UserEntity, error) {
	claims := &UserEntity{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.key(), nil
	}, jwt.WithIssuer(t.config.Issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

func (t *tokenManager) Expiry() time.Duration {
	return t.config.Expiry
}

func userEntity(ctx *gin.Context) *UserEntity {
	if user, exist := ctx.Get(UserTokenKey); exist {
		if u, ok := user.(*UserEntity); ok {
			return u
		}
	}
	return nil
}

// GetUID extracts the user ID from the request context.
func GetUID(ctx *gin.Context) int64 {
	if u := userEntity(ctx); u != nil {
		return u.UID
	}
	return 0
}

// GetUsername 获取当前用户名
func GetUsername(ctx *gin.Context) string {
	if u := userEntity(ctx); u != nil {
		return u.Subject
	}
	return ""
}

func GetRole(ctx *gin.Context) string {
	if u := userEntity(ctx); u != nil {
		return u.Role
	}
	return ""
}
