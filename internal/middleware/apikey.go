package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/capitalizeai/scoring-api/internal/domain"
	"github.com/capitalizeai/scoring-api/internal/utils"
)

const apiKeyHeader = "X-API-Key"

//go:generate mockery --name APIKeyVerifier --output ../mocks
type APIKeyVerifier interface {
	VerifyKey(ctx context.Context, rawKey, requiredScope string) (*domain.APIKey, error)
}

type APIKeyMiddleware struct {
	verifier APIKeyVerifier
}

func NewAPIKeyMiddleware(verifier APIKeyVerifier) *APIKeyMiddleware {
	return &APIKeyMiddleware{verifier: verifier}
}

// APIKeyAuth authenticates machine clients by raw token. The key's org
// becomes the request's tenant scope, exactly as a JWT would set it.
func (m *APIKeyMiddleware) APIKeyAuth(requiredScope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawKey := c.GetHeader(apiKeyHeader)
		if rawKey == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "X-API-Key header is required"})
			c.Abort()
			return
		}

		key, err := m.verifier.VerifyKey(c.Request.Context(), rawKey, requiredScope)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			c.Abort()
			return
		}

		c.Set(string(utils.OrgIDKey), key.OrgID)
		c.Set(string(utils.APIKeyIDKey), key.ID)
		if key.CreatedBy != nil {
			c.Set(string(utils.UserIDKey), *key.CreatedBy)
		}
		c.Next()
	}
}
