package util

import (
	"ai_edu_navigator/internal/model"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "ai-edu-navigator"

var ErrInvalidToken = errors.New("invalid token")

// Claims 令牌把用户和其所在设备的会话绑定在一起；Subject 同 UserID
type Claims struct {
	UserID   string             `json:"user_id"`
	DeviceID string             `json:"device_id"`
	Email    string             `json:"email"`
	Provider model.AuthProvider `json:"provider"`
	jwt.RegisteredClaims
}

// GenerateJWT jti 取用户的登录会话 ID，重新登录后旧令牌即失效
func GenerateJWT(user *model.User, deviceID, secret string, expiration time.Duration) (string, error) {
	now := time.Now()
	jti := user.SessionID
	if jti == "" {
		jti = uuid.NewString()
	}
	claims := &Claims{
		UserID:   user.ID,
		DeviceID: deviceID,
		Email:    user.Email,
		Provider: user.Provider,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Issuer:    tokenIssuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiration)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseJWT 只接受 HS256 且由本服务签发的令牌
func ParseJWT(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.DeviceID == "" || claims.UserID == "" || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// GetUserFromContext AuthMiddleware 之后的处理函数才能拿到
func GetUserFromContext(c *gin.Context) *Claims {
	v, ok := c.Get("user")
	if !ok {
		return nil
	}
	claims, _ := v.(*Claims)
	return claims
}
