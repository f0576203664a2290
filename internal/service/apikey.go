package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/capitalizeai/scoring-api/internal/api/dto"
	"github.com/capitalizeai/scoring-api/internal/domain"
	"github.com/capitalizeai/scoring-api/internal/repository"
)

const (
	apiKeyPrefix = "cap_"
	// apiKeyRevealWarning is returned alongside the raw token, once
	apiKeyRevealWarning = "Conservez cette clé en lieu sûr. Elle ne sera plus affichée."
)

type APIKeyService struct {
	repo repository.Repository
}

func NewAPIKeyService(repo repository.Repository) *APIKeyService {
	return &APIKeyService{repo: repo}
}

// Generate mints a new key for the organization. The response is the
// only place the raw token ever appears; only its SHA-256 hash and a
// display prefix are persisted.
func (s *APIKeyService) Generate(ctx context.Context, orgID, createdBy string, req dto.CreateAPIKeyRequest) (*dto.CreateAPIKeyResponse, error) {
	raw, prefix, hash, err := generateAPIKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate api key: %w", err)
	}

	scopes := req.Scopes
	if len(scopes) == 0 {
		scopes = domain.DefaultScopes()
	}

	key := &domain.APIKey{
		OrgID:              orgID,
		CreatedBy:          &createdBy,
		Name:               req.Name,
		KeyPrefix:          prefix,
		KeyHash:            hash,
		Scopes:             scopes,
		RateLimitPerMinute: 60,
		IsActive:           true,
		ExpiresAt:          req.ExpiresAt,
	}

	created, err := s.repo.APIKey().Create(ctx, key)
	if err != nil {
		return nil, err
	}

	return &dto.CreateAPIKeyResponse{
		APIKey:  *dto.FromAPIKey(created),
		RawKey:  raw,
		Warning: apiKeyRevealWarning,
	}, nil
}

// List returns the organization's keys, newest first, active and
// deactivated alike. Hashes are never serialized.
func (s *APIKeyService) List(ctx context.Context, orgID string) ([]dto.APIKeyResponse, error) {
	keys, err := s.repo.APIKey().ListByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return dto.FromAPIKeys(keys), nil
}

// Deactivate soft-deletes the key. Deactivating an already inactive key
// succeeds; the row is kept for audit.
func (s *APIKeyService) Deactivate(ctx context.Context, keyID string) error {
	if err := s.repo.APIKey().Deactivate(ctx, keyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAPIKeyNotFound
		}
		return err
	}
	return nil
}

// VerifyKey authenticates a raw token presented by a client: hash lookup,
// active and expiry checks, then the scope check. On success the key's
// usage counters are updated asynchronously.
func (s *APIKeyService) VerifyKey(ctx context.Context, rawKey, requiredScope string) (*domain.APIKey, error) {
	hash := HashAPIKey(rawKey)

	key, err := s.repo.APIKey().GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAPIKeyNotFound
		}
		return nil, err
	}

	if !key.IsActive {
		return nil, ErrAPIKeyRevoked
	}
	if key.Expired(time.Now()) {
		return nil, ErrAPIKeyExpired
	}
	if requiredScope != "" && !key.HasScope(requiredScope) {
		return nil, ErrMissingScope
	}

	// Fire and forget; a lost usage tick is acceptable
	go func(id string) {
		touchCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.repo.APIKey().TouchUsage(touchCtx, id, time.Now())
	}(key.ID)

	return key, nil
}

// HashAPIKey returns the hex SHA-256 digest stored in place of the raw token
func HashAPIKey(rawKey string) string {
	sum := sha256.Sum256([]byte(rawKey))
	return hex.EncodeToString(sum[:])
}

// generateAPIKey returns the raw token, the display prefix and the
// stored hash. The token is "cap_" followed by 64 hex characters from
// 32 bytes of crypto/rand entropy.
func generateAPIKey() (raw, prefix, hash string, err error) {
	buf := make([]byte, 32)
	if _, err = rand.Read(buf); err != nil {
		return "", "", "", err
	}

	raw = apiKeyPrefix + hex.EncodeToString(buf)
	prefix = raw[:12] + "..."
	hash = HashAPIKey(raw)
	return raw, prefix, hash, nil
}
