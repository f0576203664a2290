package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/capitalizeai/scoring-api/internal/api/dto"
	"github.com/capitalizeai/scoring-api/internal/domain"
	"github.com/capitalizeai/scoring-api/internal/mocks"
)

type APIKeyServiceTestSuite struct {
	suite.Suite
	mockRepo   *mocks.Repository
	mockAPIKey *mocks.APIKeyRepository
	service    *APIKeyService
}

func (s *APIKeyServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockAPIKey = new(mocks.APIKeyRepository)

	s.mockRepo.On("APIKey").Return(s.mockAPIKey)

	s.service = NewAPIKeyService(s.mockRepo)
}

func TestAPIKeyService(t *testing.T) {
	suite.Run(t, new(APIKeyServiceTestSuite))
}

func (s *APIKeyServiceTestSuite) TestGenerate_Success() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateAPIKeyRequest{
		Name: "Production key",
	}

	var storedKey *domain.APIKey
	s.mockAPIKey.On("Create", ctx, mock.AnythingOfType("*domain.APIKey")).
		Run(func(args mock.Arguments) {
			storedKey = args.Get(1).(*domain.APIKey)
			storedKey.ID = "key1"
			storedKey.CreatedAt = time.Now()
		}).
		Return(func(_ context.Context, key *domain.APIKey) *domain.APIKey { return key }, nil)

	// Act
	resp, err := s.service.Generate(ctx, "org1", "user1", req)

	// Assert
	s.NoError(err)
	s.True(strings.HasPrefix(resp.RawKey, "cap_"))
	s.Len(resp.RawKey, 68) // "cap_" + 64 hex chars
	s.Equal("Conservez cette clé en lieu sûr. Elle ne sera plus affichée.", resp.Warning)
	s.Equal("Production key", resp.APIKey.Name)
	s.Equal([]string{"scoring:read", "scoring:write"}, resp.APIKey.Scopes)
	s.Equal(60, resp.APIKey.RateLimitPerMinute)
	s.True(resp.APIKey.IsActive)

	// Only the hash and the display prefix are persisted
	s.Equal(HashAPIKey(resp.RawKey), storedKey.KeyHash)
	s.Equal(resp.RawKey[:12]+"...", storedKey.KeyPrefix)
	s.NotContains(storedKey.KeyPrefix, resp.RawKey[12:])
	s.mockAPIKey.AssertExpectations(s.T())
}

func (s *APIKeyServiceTestSuite) TestGenerate_CustomScopes() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateAPIKeyRequest{
		Name:   "Read only",
		Scopes: []string{"scoring:read"},
	}

	s.mockAPIKey.On("Create", ctx, mock.AnythingOfType("*domain.APIKey")).
		Return(func(_ context.Context, key *domain.APIKey) *domain.APIKey { return key }, nil)

	// Act
	resp, err := s.service.Generate(ctx, "org1", "user1", req)

	// Assert
	s.NoError(err)
	s.Equal([]string{"scoring:read"}, resp.APIKey.Scopes)
	s.mockAPIKey.AssertExpectations(s.T())
}

func (s *APIKeyServiceTestSuite) TestDeactivate_Success() {
	// Arrange
	ctx := context.Background()
	s.mockAPIKey.On("Deactivate", ctx, "key1").Return(nil)

	// Act
	err := s.service.Deactivate(ctx, "key1")

	// Assert
	s.NoError(err)
	s.mockAPIKey.AssertExpectations(s.T())
}

func (s *APIKeyServiceTestSuite) TestDeactivate_NotFound() {
	// Arrange
	ctx := context.Background()
	s.mockAPIKey.On("Deactivate", ctx, "missing").Return(gorm.ErrRecordNotFound)

	// Act
	err := s.service.Deactivate(ctx, "missing")

	// Assert
	s.ErrorIs(err, ErrAPIKeyNotFound)
	s.mockAPIKey.AssertExpectations(s.T())
}

func (s *APIKeyServiceTestSuite) TestVerifyKey_Success() {
	// Arrange
	ctx := context.Background()
	rawKey := "cap_0123456789abcdef"
	key := &domain.APIKey{
		ID:       "key1",
		OrgID:    "org1",
		Scopes:   []string{"scoring:read", "scoring:write"},
		IsActive: true,
	}

	s.mockAPIKey.On("GetByHash", ctx, HashAPIKey(rawKey)).Return(key, nil)
	s.mockAPIKey.On("TouchUsage", mock.Anything, "key1", mock.AnythingOfType("time.Time")).Return(nil).Maybe()

	// Act
	verified, err := s.service.VerifyKey(ctx, rawKey, "scoring:write")

	// Assert
	s.NoError(err)
	s.Equal("key1", verified.ID)
	s.Equal("org1", verified.OrgID)
}

func (s *APIKeyServiceTestSuite) TestVerifyKey_UnknownKey() {
	// Arrange
	ctx := context.Background()
	s.mockAPIKey.On("GetByHash", ctx, mock.AnythingOfType("string")).Return(nil, gorm.ErrRecordNotFound)

	// Act
	_, err := s.service.VerifyKey(ctx, "cap_unknown", "scoring:write")

	// Assert
	s.ErrorIs(err, ErrAPIKeyNotFound)
}

func (s *APIKeyServiceTestSuite) TestVerifyKey_Revoked() {
	// Arrange
	ctx := context.Background()
	key := &domain.APIKey{
		ID:       "key1",
		Scopes:   []string{"scoring:write"},
		IsActive: false,
	}
	s.mockAPIKey.On("GetByHash", ctx, mock.AnythingOfType("string")).Return(key, nil)

	// Act
	_, err := s.service.VerifyKey(ctx, "cap_revoked", "scoring:write")

	// Assert
	s.ErrorIs(err, ErrAPIKeyRevoked)
}

func (s *APIKeyServiceTestSuite) TestVerifyKey_Expired() {
	// Arrange
	ctx := context.Background()
	expiry := time.Now().Add(-time.Hour)
	key := &domain.APIKey{
		ID:        "key1",
		Scopes:    []string{"scoring:write"},
		IsActive:  true,
		ExpiresAt: &expiry,
	}
	s.mockAPIKey.On("GetByHash", ctx, mock.AnythingOfType("string")).Return(key, nil)

	// Act
	_, err := s.service.VerifyKey(ctx, "cap_expired", "scoring:write")

	// Assert
	s.ErrorIs(err, ErrAPIKeyExpired)
}

func (s *APIKeyServiceTestSuite) TestVerifyKey_MissingScope() {
	// Arrange
	ctx := context.Background()
	key := &domain.APIKey{
		ID:       "key1",
		Scopes:   []string{"scoring:read"},
		IsActive: true,
	}
	s.mockAPIKey.On("GetByHash", ctx, mock.AnythingOfType("string")).Return(key, nil)

	// Act
	_, err := s.service.VerifyKey(ctx, "cap_readonly", "scoring:write")

	// Assert
	s.ErrorIs(err, ErrMissingScope)
}

func TestGenerateAPIKey_Uniqueness(t *testing.T) {
	seen := make(map[string]bool, 10000)
	for i := 0; i < 10000; i++ {
		raw, prefix, hash, err := generateAPIKey()
		if err != nil {
			t.Fatalf("generateAPIKey failed: %v", err)
		}
		if seen[raw] {
			t.Fatalf("duplicate key generated: %s", raw)
		}
		seen[raw] = true

		if !strings.HasPrefix(raw, "cap_") {
			t.Errorf("key %q missing cap_ prefix", raw)
		}
		if len(raw) != 68 {
			t.Errorf("key length = %d, want 68", len(raw))
		}
		if prefix != raw[:12]+"..." {
			t.Errorf("prefix %q does not match key %q", prefix, raw)
		}
		if hash != HashAPIKey(raw) {
			t.Errorf("hash mismatch for key %q", raw)
		}
	}
}

func TestHashAPIKey_Deterministic(t *testing.T) {
	h1 := HashAPIKey("cap_fixed")
	h2 := HashAPIKey("cap_fixed")
	if h1 != h2 {
		t.Errorf("same input hashed differently: %s != %s", h1, h2)
	}
	if len(h1) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(h1))
	}
	if h1 == HashAPIKey("cap_other") {
		t.Error("different inputs produced the same hash")
	}
}
