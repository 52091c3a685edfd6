package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoCredential   = errors.New("no credential presented")
	ErrInvalidSession = errors.New("invalid or expired session")
)

// Session 已通过签名校验的会话
type Session struct {
	Subject   string
	ExpiresAt time.Time
}

// SessionParser 把凭证解析为会话
type SessionParser interface {
	Parse(token string) (*Session, error)
}

// TokenIssuer 签发与校验 HS256 会话令牌
type TokenIssuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret, issuer string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}
}

// Issue 为 subject（admin_users.id）签发令牌
func (t *TokenIssuer) Issue(subject string) (string, time.Time, error) {
	now := t.now()
	exp := now.Add(t.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    t.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session: %w", err)
	}
	return signed, exp, nil
}

func (t *TokenIssuer) Parse(token string) (*Session, error) {
	if token == "" {
		return nil, ErrNoCredential
	}
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	return &Session{Subject: claims.Subject, ExpiresAt: claims.ExpiresAt.Time}, nil
}
