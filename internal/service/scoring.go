package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/capitalizeai/scoring-api/internal/api/dto"
	"github.com/capitalizeai/scoring-api/internal/domain"
	"github.com/capitalizeai/scoring-api/internal/repository"
	"github.com/capitalizeai/scoring-api/internal/service/engine"
)

const scoreValidityDays = 30

//go:generate mockery --name ScoringBroadcaster --output ../mocks
type ScoringBroadcaster interface {
	BroadcastScoring(scoring *dto.ScoringRequestResponse)
}

//go:generate mockery --name SQSService --output ../mocks
type SQSService interface {
	SendIndexMessage(ctx context.Context, req *domain.ScoringRequest) error
	SendBulkIndexMessage(ctx context.Context, reqs []domain.ScoringRequest) error
	SendArchiveMessage(ctx context.Context, orgID string, beforeDate time.Time) error
	SendCleanupMessage(ctx context.Context, orgID string, beforeDate time.Time) error
}

type ScoringService struct {
	repo        repository.Repository
	engine      engine.Engine
	sqsSvc      SQSService
	broadcaster ScoringBroadcaster
	unitPrice   int64
}

func NewScoringService(repo repository.Repository, scoringEngine engine.Engine, sqsSvc SQSService, unitPriceFCFA int64) *ScoringService {
	return &ScoringService{
		repo:      repo,
		engine:    scoringEngine,
		sqsSvc:    sqsSvc,
		unitPrice: unitPriceFCFA,
	}
}

// SetBroadcaster sets the live-feed broadcaster
func (s *ScoringService) SetBroadcaster(broadcaster ScoringBroadcaster) {
	s.broadcaster = broadcaster
}

// Submit runs the full scoring flow: validate, score through the engine,
// then persist the completed request, its score and the billing event in
// a single transaction. Indexing and the live feed happen after commit.
func (s *ScoringService) Submit(ctx context.Context, orgID, userID string, apiKeyID *string, req dto.CreateScoringRequest) (*dto.ScoringRequestResponse, error) {
	if req.SubjectName == "" && req.SubjectPhone == "" {
		return nil, ErrSubjectRequired
	}

	request := req.ToScoringRequest()
	request.ID = uuid.New().String()
	request.OrgID = orgID
	request.RequestedBy = &userID
	request.APIKeyUsed = apiKeyID
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt

	start := time.Now()
	result, err := s.engine.Score(ctx, &engine.Subject{
		Name:     request.SubjectName,
		Phone:    request.SubjectPhone,
		IDNumber: request.SubjectIDNumber,
	})
	if err != nil {
		return nil, fmt.Errorf("scoring engine failed: %w", err)
	}
	processingTime := time.Since(start).Milliseconds()

	request.Status = domain.ScoringStatusCompleted
	request.ProcessingTimeMs = &processingTime

	score := &domain.Score{
		ID:                      uuid.New().String(),
		RequestID:               request.ID,
		OrgID:                   orgID,
		ScoreValue:              result.ScoreValue,
		ProbabilityOfDefault:    &result.ProbabilityOfDefault,
		RiskCategory:            result.RiskCategory,
		MaxRecommendedAmount:    &result.MaxRecommendedAmount,
		RecommendedTermMonths:   &result.RecommendedTermMonths,
		RecommendedInterestRate: &result.RecommendedInterestRate,
		Components:              result.Components,
		ShapExplanation:         json.RawMessage("{}"),
		ExplanationText:         &result.ExplanationText,
		ModelVersion:            result.ModelVersion,
		Confidence:              result.Confidence,
		ValidUntil:              time.Now().AddDate(0, 0, scoreValidityDays),
	}

	subject := req.SubjectName
	if subject == "" {
		subject = req.SubjectPhone
	}
	description := "Scoring: " + subject
	event := &domain.BillingEvent{
		ID:             uuid.New().String(),
		OrgID:          orgID,
		EventType:      domain.BillingScoringRequest,
		Quantity:       1,
		UnitPriceFCFA:  s.unitPrice,
		TotalPriceFCFA: s.unitPrice,
		Currency:       "XAF",
		Description:    &description,
	}

	if err := s.repo.ScoringRequest().CreateAndScore(ctx, request, score, event); err != nil {
		return nil, fmt.Errorf("failed to store scoring request: %w", err)
	}
	request.Score = score

	// Send message to SQS for asynchronous indexing
	if err := s.sqsSvc.SendIndexMessage(ctx, request); err != nil {
		fmt.Printf("failed to send index message to SQS: %v\n", err)
	}

	response := dto.FromScoringRequest(request)

	// Broadcast to the live feed if a broadcaster is available
	if s.broadcaster != nil {
		s.broadcaster.BroadcastScoring(response)
	}

	return response, nil
}

func (s *ScoringService) GetByID(ctx context.Context, orgID, id string) (*dto.ScoringRequestResponse, error) {
	request, err := s.repo.ScoringRequest().GetByID(ctx, orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScoringNotFound
		}
		return nil, err
	}
	return dto.FromScoringRequest(request), nil
}

// List returns a page of the organization's scoring requests, newest
// first. Subject text criteria route the query through OpenSearch.
func (s *ScoringService) List(ctx context.Context, filter *domain.ScoringRequestFilter) (*dto.ListScoringRequestsResponse, error) {
	// Set default values for pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}

	// Convert page and page size to limit and offset
	filter.Limit = filter.PageSize
	filter.Offset = (filter.Page - 1) * filter.PageSize

	if s.hasSearchCriteria(filter) {
		requests, err := s.repo.Search().Search(ctx, filter)
		if err != nil {
			return nil, err
		}
		return &dto.ListScoringRequestsResponse{
			Data:    dto.FromScoringRequests(requests),
			Total:   int64(len(requests)),
			Page:    filter.Page,
			PerPage: filter.PageSize,
		}, nil
	}

	requests, total, err := s.repo.ScoringRequest().List(ctx, *filter)
	if err != nil {
		return nil, err
	}
	return &dto.ListScoringRequestsResponse{
		Data:    dto.FromScoringRequests(requests),
		Total:   total,
		Page:    filter.Page,
		PerPage: filter.PageSize,
	}, nil
}

// hasSearchCriteria checks if the filter contains criteria that benefit
// from the full-text index
func (s *ScoringService) hasSearchCriteria(filter *domain.ScoringRequestFilter) bool {
	return filter.SubjectName != "" ||
		filter.SubjectPhone != "" ||
		filter.RequestedBy != ""
}

// ScheduleArchive schedules an archive operation by sending a message to SQS
func (s *ScoringService) ScheduleArchive(ctx context.Context, orgID string, beforeDate time.Time) error {
	return s.sqsSvc.SendArchiveMessage(ctx, orgID, beforeDate)
}
