package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"budgetbook/config"
	"budgetbook/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	contextUserID   = "userID"
	contextUsername = "username"
	contextClaims   = "claims"
)

// ErrTokenRevoked token 已注销
var ErrTokenRevoked = errors.New("token 已失效")

var jwtSecret []byte

// Claims JWT 载荷，RegisteredClaims.ID 为唯一 jti，用于注销
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// InitJWT 初始化签名密钥
func InitJWT(cfg *config.Config) {
	jwtSecret = []byte(cfg.JWT.Secret)
}

// GenerateToken 签发 token，ttl <= 0 时使用 24 小时
func GenerateToken(userID uint, username string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    "budgetbook",
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
}

// ParseToken 校验签名、有效期与注销状态
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("不支持的签名算法: %v", t.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("无效的 token")
	}
	if revoked.contains(claims.ID, time.Now()) {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}

// JWTAuth 校验 Authorization: Bearer <token>
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "请先登录")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
			abortUnauthorized(c, "认证格式错误")
			return
		}

		claims, err := ParseToken(strings.TrimSpace(parts[1]))
		if err != nil {
			abortUnauthorized(c, "token 无效或已过期")
			return
		}

		c.Set(contextUserID, claims.UserID)
		c.Set(contextUsername, claims.Username)
		c.Set(contextClaims, claims)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"code":    http.StatusUnauthorized,
		"message": message,
	})
	c.Abort()
}

// GetCurrentUserID 当前用户 ID，未登录为 0
func GetCurrentUserID(c *gin.Context) uint {
	userID, exists := c.Get(contextUserID)
	if !exists {
		return 0
	}
	id, _ := userID.(uint)
	return id
}

// GetCurrentIdentity 当前登录身份，未登录返回零值
func GetCurrentIdentity(c *gin.Context) service.Identity {
	return service.Identity{
		UserID:   GetCurrentUserID(c),
		Username: c.GetString(contextUsername),
	}
}

// GetCurrentClaims 当前请求的 token 载荷
func GetCurrentClaims(c *gin.Context) *Claims {
	v, exists := c.Get(contextClaims)
	if !exists {
		return nil
	}
	claims, _ := v.(*Claims)
	return claims
}
