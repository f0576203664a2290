package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/capitalizeai/scoring-api/internal/api/dto"
	"github.com/capitalizeai/scoring-api/internal/domain"
	"github.com/capitalizeai/scoring-api/internal/mocks"
	"github.com/capitalizeai/scoring-api/internal/service/engine"
)

type ScoringServiceTestSuite struct {
	suite.Suite
	mockRepo        *mocks.Repository
	mockScoring     *mocks.ScoringRequestRepository
	mockSearch      *mocks.SearchRepository
	mockEngine      *mocks.Engine
	mockSQS         *mocks.SQSService
	mockBroadcaster *mocks.ScoringBroadcaster
	service         *ScoringService
}

func (s *ScoringServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockScoring = new(mocks.ScoringRequestRepository)
	s.mockSearch = new(mocks.SearchRepository)
	s.mockEngine = new(mocks.Engine)
	s.mockSQS = new(mocks.SQSService)
	s.mockBroadcaster = new(mocks.ScoringBroadcaster)

	s.mockRepo.On("ScoringRequest").Return(s.mockScoring)
	s.mockRepo.On("Search").Return(s.mockSearch)

	s.service = NewScoringService(s.mockRepo, s.mockEngine, s.mockSQS, 500)
	s.service.SetBroadcaster(s.mockBroadcaster)
}

func TestScoringService(t *testing.T) {
	suite.Run(t, new(ScoringServiceTestSuite))
}

func (s *ScoringServiceTestSuite) engineResult() *engine.Result {
	return &engine.Result{
		ScoreValue:              712,
		ProbabilityOfDefault:    0.288,
		RiskCategory:            domain.RiskLow,
		MaxRecommendedAmount:    3560000,
		RecommendedTermMonths:   12,
		RecommendedInterestRate: 11.27,
		Components: domain.ScoreComponents{
			"pagerank_score":   0.42,
			"behavioral_score": 0.77,
			"temporal_score":   0.31,
			"stability_score":  0.58,
			"network_score":    0.64,
		},
		ExplanationText: "Score de 712/1000.",
		ModelVersion:    "v1.0-demo",
		Confidence:      0.85,
	}
}

func (s *ScoringServiceTestSuite) TestSubmit_Success() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateScoringRequest{
		SubjectName:  "Jean Mbarga",
		SubjectPhone: "+237690000000",
	}

	s.mockEngine.On("Score", ctx, mock.AnythingOfType("*engine.Subject")).Return(s.engineResult(), nil)

	var storedEvent *domain.BillingEvent
	s.mockScoring.On("CreateAndScore", ctx,
		mock.AnythingOfType("*domain.ScoringRequest"),
		mock.AnythingOfType("*domain.Score"),
		mock.AnythingOfType("*domain.BillingEvent"),
	).Run(func(args mock.Arguments) {
		storedEvent = args.Get(3).(*domain.BillingEvent)
	}).Return(nil)

	s.mockSQS.On("SendIndexMessage", ctx, mock.AnythingOfType("*domain.ScoringRequest")).Return(nil)
	s.mockBroadcaster.On("BroadcastScoring", mock.AnythingOfType("*dto.ScoringRequestResponse")).Return()

	// Act
	resp, err := s.service.Submit(ctx, "org1", "user1", nil, req)

	// Assert
	s.NoError(err)
	s.Equal("org1", resp.OrgID)
	s.Equal("completed", resp.Status)
	s.NotEmpty(resp.ID)
	s.Require().NotNil(resp.Score)
	s.Equal(712, resp.Score.ScoreValue)
	s.Equal("low", resp.Score.RiskCategory)
	s.Equal("v1.0-demo", resp.Score.ModelVersion)
	s.Equal([]string{"momo", "airtime"}, resp.DataSources)

	// One billing event per scoring request, priced at the unit rate
	s.Require().NotNil(storedEvent)
	s.Equal(domain.BillingScoringRequest, storedEvent.EventType)
	s.Equal(int64(1), storedEvent.Quantity)
	s.Equal(int64(500), storedEvent.UnitPriceFCFA)
	s.Equal(int64(500), storedEvent.TotalPriceFCFA)
	s.Equal("XAF", storedEvent.Currency)
	s.Require().NotNil(storedEvent.Description)
	s.Equal("Scoring: Jean Mbarga", *storedEvent.Description)

	s.mockScoring.AssertExpectations(s.T())
	s.mockSQS.AssertExpectations(s.T())
	s.mockBroadcaster.AssertExpectations(s.T())
}

func (s *ScoringServiceTestSuite) TestSubmit_PhoneOnlyDescription() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateScoringRequest{SubjectPhone: "+237690000000"}

	s.mockEngine.On("Score", ctx, mock.AnythingOfType("*engine.Subject")).Return(s.engineResult(), nil)

	var storedEvent *domain.BillingEvent
	s.mockScoring.On("CreateAndScore", ctx, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			storedEvent = args.Get(3).(*domain.BillingEvent)
		}).Return(nil)
	s.mockSQS.On("SendIndexMessage", ctx, mock.Anything).Return(nil)
	s.mockBroadcaster.On("BroadcastScoring", mock.Anything).Return()

	// Act
	_, err := s.service.Submit(ctx, "org1", "user1", nil, req)

	// Assert
	s.NoError(err)
	s.Require().NotNil(storedEvent.Description)
	s.Equal("Scoring: +237690000000", *storedEvent.Description)
}

func (s *ScoringServiceTestSuite) TestSubmit_MissingSubject() {
	// Arrange
	ctx := context.Background()

	// Act
	_, err := s.service.Submit(ctx, "org1", "user1", nil, dto.CreateScoringRequest{})

	// Assert
	s.ErrorIs(err, ErrSubjectRequired)
	s.mockEngine.AssertNotCalled(s.T(), "Score")
	s.mockScoring.AssertNotCalled(s.T(), "CreateAndScore")
}

func (s *ScoringServiceTestSuite) TestSubmit_IndexFailureDoesNotFailRequest() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateScoringRequest{SubjectName: "Jean Mbarga"}

	s.mockEngine.On("Score", ctx, mock.Anything).Return(s.engineResult(), nil)
	s.mockScoring.On("CreateAndScore", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	s.mockSQS.On("SendIndexMessage", ctx, mock.Anything).Return(context.DeadlineExceeded)
	s.mockBroadcaster.On("BroadcastScoring", mock.Anything).Return()

	// Act
	resp, err := s.service.Submit(ctx, "org1", "user1", nil, req)

	// Assert
	s.NoError(err)
	s.Equal("completed", resp.Status)
}

func (s *ScoringServiceTestSuite) TestList_DefaultPagination() {
	// Arrange
	ctx := context.Background()
	filter := &domain.ScoringRequestFilter{OrgID: "org1"}

	s.mockScoring.On("List", ctx, mock.MatchedBy(func(f domain.ScoringRequestFilter) bool {
		return f.Page == 1 && f.PageSize == 20 && f.Limit == 20 && f.Offset == 0
	})).Return([]domain.ScoringRequest{}, int64(0), nil)

	// Act
	resp, err := s.service.List(ctx, filter)

	// Assert
	s.NoError(err)
	s.Equal(1, resp.Page)
	s.Equal(20, resp.PerPage)
	s.mockScoring.AssertExpectations(s.T())
	s.mockSearch.AssertNotCalled(s.T(), "Search")
}

func (s *ScoringServiceTestSuite) TestList_SubjectCriteriaUseSearch() {
	// Arrange
	ctx := context.Background()
	filter := &domain.ScoringRequestFilter{OrgID: "org1", SubjectName: "Mbarga"}

	s.mockSearch.On("Search", ctx, filter).Return([]domain.ScoringRequest{{ID: "req1", OrgID: "org1"}}, nil)

	// Act
	resp, err := s.service.List(ctx, filter)

	// Assert
	s.NoError(err)
	s.Len(resp.Data, 1)
	s.Equal(int64(1), resp.Total)
	s.mockSearch.AssertExpectations(s.T())
	s.mockScoring.AssertNotCalled(s.T(), "List")
}

func (s *ScoringServiceTestSuite) TestScheduleArchive() {
	// Arrange
	ctx := context.Background()
	before := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	s.mockSQS.On("SendArchiveMessage", ctx, "org1", before).Return(nil)

	// Act
	err := s.service.ScheduleArchive(ctx, "org1", before)

	// Assert
	s.NoError(err)
	s.mockSQS.AssertExpectations(s.T())
}
