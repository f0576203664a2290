package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/capitalizeai/scoring-api/internal/domain"
	"github.com/capitalizeai/scoring-api/internal/utils"
)

type AnalyticsHandlerTestSuite struct {
	suite.Suite
	mockService *MockAnalyticsService
	handler     *AnalyticsHandler
}

type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) GetDashboardStats(ctx context.Context, orgID string) (*domain.DashboardStats, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func (s *AnalyticsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(MockAnalyticsService)
	s.handler = NewAnalyticsHandler(s.mockService)
}

func TestAnalyticsHandler(t *testing.T) {
	suite.Run(t, new(AnalyticsHandlerTestSuite))
}

func (s *AnalyticsHandlerTestSuite) TestGetDashboardStats_Success() {
	// Arrange
	expected := &domain.DashboardStats{
		TotalScorings:     134,
		AvgScore:          612,
		ScoringsThisMonth: 27,
		DefaultRate:       18,
		TotalAmountScored: 410_000_000,
		ScoreDistribution: []domain.ScoreBucket{
			{Range: "0-200", Count: 2},
			{Range: "201-400", Count: 18},
			{Range: "401-600", Count: 41},
			{Range: "601-800", Count: 55},
			{Range: "801-1000", Count: 18},
		},
		RecentActivity: []domain.ActivityItem{},
		RiskBreakdown: []domain.RiskSlice{
			{Category: domain.RiskVeryLow, Count: 18, Percentage: 13},
			{Category: domain.RiskLow, Count: 55, Percentage: 41},
			{Category: domain.RiskMedium, Count: 37, Percentage: 28},
			{Category: domain.RiskHigh, Count: 20, Percentage: 15},
			{Category: domain.RiskVeryHigh, Count: 4, Percentage: 3},
		},
	}
	s.mockService.On("GetDashboardStats", mock.Anything, "org1").Return(expected, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/analytics/dashboard", nil)
	c.Set(string(utils.OrgIDKey), "org1")

	// Act
	s.handler.GetDashboardStats(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response domain.DashboardStats
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(int64(134), response.TotalScorings)
	s.Equal(612, response.AvgScore)
	s.Len(response.ScoreDistribution, 5)
	s.Len(response.RiskBreakdown, 5)
	s.NotNil(response.RecentActivity)
	s.mockService.AssertExpectations(s.T())
}

func (s *AnalyticsHandlerTestSuite) TestGetDashboardStats_NoOrg() {
	// Arrange
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/analytics/dashboard", nil)

	// Act
	s.handler.GetDashboardStats(c)

	// Assert
	s.Equal(http.StatusUnauthorized, w.Code)
	s.mockService.AssertNotCalled(s.T(), "GetDashboardStats")
}
