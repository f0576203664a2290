package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/capitalizeai/scoring-api/internal/api/dto"
	"github.com/capitalizeai/scoring-api/internal/service"
	"github.com/capitalizeai/scoring-api/internal/utils"
)

type APIKeyHandlerTestSuite struct {
	suite.Suite
	mockService *MockAPIKeyService
	handler     *APIKeyHandler
}

type MockAPIKeyService struct {
	mock.Mock
}

func (m *MockAPIKeyService) Generate(ctx context.Context, orgID, createdBy string, req dto.CreateAPIKeyRequest) (*dto.CreateAPIKeyResponse, error) {
	args := m.Called(ctx, orgID, createdBy, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CreateAPIKeyResponse), args.Error(1)
}

func (m *MockAPIKeyService) List(ctx context.Context, orgID string) ([]dto.APIKeyResponse, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.APIKeyResponse), args.Error(1)
}

func (m *MockAPIKeyService) Deactivate(ctx context.Context, keyID string) error {
	args := m.Called(ctx, keyID)
	return args.Error(0)
}

func (s *APIKeyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(MockAPIKeyService)
	s.handler = NewAPIKeyHandler(s.mockService)
}

func TestAPIKeyHandler(t *testing.T) {
	suite.Run(t, new(APIKeyHandlerTestSuite))
}

func (s *APIKeyHandlerTestSuite) authedContext(w *httptest.ResponseRecorder, method, path string, body []byte) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	var reader *bytes.Buffer
	if body != nil {
		reader = bytes.NewBuffer(body)
	} else {
		reader = bytes.NewBuffer(nil)
	}
	c.Request, _ = http.NewRequest(method, path, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(string(utils.OrgIDKey), "org1")
	c.Set(string(utils.UserIDKey), "user1")
	return c
}

func (s *APIKeyHandlerTestSuite) TestCreateAPIKey_Success() {
	// Arrange
	req := dto.CreateAPIKeyRequest{Name: "Production key"}
	expected := &dto.CreateAPIKeyResponse{
		APIKey: dto.APIKeyResponse{
			ID:        "key1",
			OrgID:     "org1",
			Name:      "Production key",
			KeyPrefix: "cap_a1b2c3d4...",
			Scopes:    []string{"scoring:read", "scoring:write"},
			IsActive:  true,
		},
		RawKey:  "cap_a1b2c3d4e5f6",
		Warning: "Conservez cette clé en lieu sûr. Elle ne sera plus affichée.",
	}

	s.mockService.On("Generate", mock.Anything, "org1", "user1", req).Return(expected, nil)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c := s.authedContext(w, http.MethodPost, "/api-keys", body)

	// Act
	s.handler.CreateAPIKey(c)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	var response dto.CreateAPIKeyResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(expected.RawKey, response.RawKey)
	s.Equal(expected.Warning, response.Warning)
	s.Equal("cap_a1b2c3d4...", response.APIKey.KeyPrefix)
	s.mockService.AssertExpectations(s.T())
}

func (s *APIKeyHandlerTestSuite) TestCreateAPIKey_MissingName() {
	// Arrange
	w := httptest.NewRecorder()
	c := s.authedContext(w, http.MethodPost, "/api-keys", []byte(`{}`))

	// Act
	s.handler.CreateAPIKey(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Generate")
}

func (s *APIKeyHandlerTestSuite) TestCreateAPIKey_NoOrg() {
	// Arrange
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(dto.CreateAPIKeyRequest{Name: "key"})
	c.Request, _ = http.NewRequest(http.MethodPost, "/api-keys", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	// Act
	s.handler.CreateAPIKey(c)

	// Assert
	s.Equal(http.StatusUnauthorized, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Generate")
}

func (s *APIKeyHandlerTestSuite) TestListAPIKeys_Success() {
	// Arrange
	expected := []dto.APIKeyResponse{
		{ID: "key1", OrgID: "org1", Name: "Production key", IsActive: true},
		{ID: "key2", OrgID: "org1", Name: "Old key", IsActive: false},
	}
	s.mockService.On("List", mock.Anything, "org1").Return(expected, nil)

	w := httptest.NewRecorder()
	c := s.authedContext(w, http.MethodGet, "/api-keys", nil)

	// Act
	s.handler.ListAPIKeys(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response []dto.APIKeyResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Len(response, 2)
	s.Equal("key1", response[0].ID)
	s.False(response[1].IsActive)
	s.mockService.AssertExpectations(s.T())
}

func (s *APIKeyHandlerTestSuite) TestDeactivateAPIKey_Success() {
	// Arrange
	s.mockService.On("Deactivate", mock.Anything, "key1").Return(nil)

	w := httptest.NewRecorder()
	c := s.authedContext(w, http.MethodDelete, "/api-keys/key1", nil)
	c.Params = gin.Params{{Key: "id", Value: "key1"}}

	// Act
	s.handler.DeactivateAPIKey(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *APIKeyHandlerTestSuite) TestDeactivateAPIKey_NotFound() {
	// Arrange
	s.mockService.On("Deactivate", mock.Anything, "missing").Return(service.ErrAPIKeyNotFound)

	w := httptest.NewRecorder()
	c := s.authedContext(w, http.MethodDelete, "/api-keys/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	// Act
	s.handler.DeactivateAPIKey(c)

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
	s.mockService.AssertExpectations(s.T())
}
