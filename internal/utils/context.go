package utils

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

type ContextKey string

const (
	ClaimsKey   ContextKey = "claims"
	OrgIDKey    ContextKey = "org_id"
	UserIDKey   ContextKey = "user_id"
	APIKeyIDKey ContextKey = "api_key_id"
)

var (
	ErrNoClaimsInContext = errors.New("no claims found in context")
	ErrNoOrgIDInClaims   = errors.New("no org_id found in claims")
	ErrInvalidOrgIDType  = errors.New("org_id must be a string")
	ErrNoUserIDInClaims  = errors.New("no user_id found in claims")
	ErrInvalidUserIDType = errors.New("user_id must be a string")
)

func GetOrgIDFromContext(c context.Context) (string, error) {
	// API key auth sets the org directly, without claims
	if orgID, ok := c.Value(OrgIDKey).(string); ok && orgID != "" {
		return orgID, nil
	}

	claims, exists := c.Value(ClaimsKey).(jwt.MapClaims)
	if !exists {
		return "", ErrNoClaimsInContext
	}

	orgID, exists := claims[string(OrgIDKey)]
	if !exists {
		return "", ErrNoOrgIDInClaims
	}

	orgIDStr, ok := orgID.(string)
	if !ok {
		return "", ErrInvalidOrgIDType
	}

	return orgIDStr, nil
}

func GetUserIDFromContext(c context.Context) (string, error) {
	if userID, ok := c.Value(UserIDKey).(string); ok && userID != "" {
		return userID, nil
	}

	claims, exists := c.Value(ClaimsKey).(jwt.MapClaims)
	if !exists {
		return "", ErrNoClaimsInContext
	}

	userID, exists := claims[string(UserIDKey)]
	if !exists {
		return "", ErrNoUserIDInClaims
	}

	userIDStr, ok := userID.(string)
	if !ok {
		return "", ErrInvalidUserIDType
	}

	return userIDStr, nil
}
