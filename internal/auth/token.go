package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the decoded session token payload.
type Claims struct {
	TokenID   string
	UserID    string
	Email     string
	ExpiresAt time.Time
}

func signToken(secret []byte, ttl time.Duration, userID, email string) (string, *Claims, error) {
	now := time.Now()
	claims := &Claims{
		TokenID:   uuid.NewString(),
		UserID:    userID,
		Email:     email,
		ExpiresAt: now.Add(ttl),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"jti":   claims.TokenID,
		"sub":   claims.UserID,
		"email": claims.Email,
		"exp":   claims.ExpiresAt.Unix(),
		"iat":   now.Unix(),
	})

	signed, err := token.SignedString(secret)
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

func parseToken(secret []byte, tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	jti, ok1 := mc["jti"].(string)
	sub, ok2 := mc["sub"].(string)
	email, _ := mc["email"].(string)
	exp, ok3 := mc["exp"].(float64)
	if !ok1 || !ok2 || !ok3 {
		return nil, ErrInvalidToken
	}

	return &Claims{
		TokenID:   jti,
		UserID:    sub,
		Email:     email,
		ExpiresAt: time.Unix(int64(exp), 0),
	}, nil
}
