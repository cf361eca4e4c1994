package auth

import (
	"errors"
	"fmt"
	"time"

	"assistente_juridico/internal/domain/entities"
	"assistente_juridico/internal/usecase/interfaces"

	jwt "github.com/golang-jwt/jwt/v5"
)

const issuer = "assistente-juridico"

var ErrInvalidToken = errors.New("invalid token")

// Claims identifies the signed-in lawyer (or demo visitor).
type Claims struct {
	Email string `json:"email,omitempty"`
	Demo  bool   `json:"demo,omitempty"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 session tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ interfaces.ITokenIssuer = (*TokenIssuer)(nil)

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (i *TokenIssuer) Issue(id entities.Identity) (string, time.Time, error) {
	now := i.now()
	exp := now.Add(i.ttl)
	claims := Claims{
		Email: id.Email,
		Demo:  id.Demo,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.OwnerID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return token, exp, nil
}

func (i *TokenIssuer) Verify(raw string) (entities.Identity, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return entities.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return entities.Identity{}, ErrInvalidToken
	}
	return entities.Identity{OwnerID: claims.Subject, Email: claims.Email, Demo: claims.Demo}, nil
}
