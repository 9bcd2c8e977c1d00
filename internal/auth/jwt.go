package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminSubject is the only subject the API issues tokens for.
const AdminSubject = "admin"

// Issuer signs and checks the bearer tokens handed to the shop's admin.
type Issuer struct {
	Secret []byte
	TTL    time.Duration
}

// NewIssuer returns an Issuer with the default 12 hour lifetime.
func NewIssuer(secret string) *Issuer {
	return &Issuer{Secret: []byte(secret), TTL: 12 * time.Hour}
}

// GenerateToken creates a signed HS256 token for subject.
func (i *Issuer) GenerateToken(subject string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject,
		"exp": now.Add(i.TTL).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.Secret)
}

// ValidateToken parses tokenString and returns its subject if the token is valid.
func (i *Issuer) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return i.Secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", errors.New("invalid subject claim")
	}
	return subject, nil
}
