package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed lifetime of every issued access token.
const TokenTTL = time.Hour

// Claims carried by a verified access token.
type Claims struct {
	UserID uint
	Role   string
}

// JWTManager signs and verifies HS256 access tokens. The secret comes from
// configuration at construction time; there is no package-level state.
type JWTManager struct {
	secret []byte
}

func NewJWTManager(secret string) *JWTManager {
	return &JWTManager{secret: []byte(secret)}
}

func (m *JWTManager) Generate(userID uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(TokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *JWTManager) Verify(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})

	if err != nil || !token.Valid {
		return Claims{}, fmt.Errorf("invalid or expired token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)

	if !ok {
		return Claims{}, fmt.Errorf("invalid token claims")
	}

	userIDFloat, ok := mapClaims["user_id"].(float64)

	if !ok {
		return Claims{}, fmt.Errorf("invalid user ID in token claims")
	}

	role, _ := mapClaims["role"].(string)

	return Claims{UserID: uint(userIDFloat), Role: role}, nil
}
