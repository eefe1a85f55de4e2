// Copyright (c) 2026 Jihoon Park.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jihoonp/venuevote/models"
)

var (
	ErrInvalidAdminToken = errors.New("invalid admin token")
	ErrInvalidPassword   = errors.New("invalid admin password")
	ErrInvalidVoterToken = errors.New("invalid voter token")
)

// AdminToken derives the admin session token from the configured salt.
// Deterministic and verifiable, no server-side session state.
func AdminToken(salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte("venuevote-admin"))
	sum := h.Sum(nil)
	// URL-safe base64 without padding for cleaner tokens
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAdminToken checks a presented admin token in constant time.
func ValidateAdminToken(token, salt string) error {
	expected := AdminToken(salt)
	if !hmac.Equal([]byte(token), []byte(expected)) {
		return ErrInvalidAdminToken
	}
	return nil
}

// CheckAdminPassword compares the presented password against the
// configured one in constant time.
func CheckAdminPassword(presented, configured string) error {
	if !hmac.Equal([]byte(presented), []byte(configured)) {
		return ErrInvalidPassword
	}
	return nil
}

// VoterClaims are the identity-provider claims carried in a voter token.
type VoterClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// IssueVoterToken signs a voter identity token. In production the
// surrounding auth layer mints these after the OAuth exchange; tests
// mint them directly.
func IssueVoterToken(voter models.Voter, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := VoterClaims{
		Email: voter.Email,
		Name:  voter.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   voter.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign voter token: %w", err)
	}
	return signed, nil
}

// ParseVoterToken validates a voter token and returns the identity it
// carries.
func ParseVoterToken(tokenString, secret string) (models.Voter, error) {
	claims := &VoterClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return models.Voter{}, ErrInvalidVoterToken
	}
	if claims.Subject == "" {
		return models.Voter{}, ErrInvalidVoterToken
	}

	return models.Voter{
		ID:    claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
	}, nil
}
