package repository

import (
	"context"
	"time"

	"github.com/capitalizeai/scoring-api/internal/domain"
)

//go:generate mockery --name OrganizationRepository --output ../mocks
type OrganizationRepository interface {
	// Create inserts the organization and its owner membership in a
	// single transaction.
	Create(ctx context.Context, org *domain.Organization, ownerID string) (*domain.Organization, error)
	GetByID(ctx context.Context, id string) (*domain.Organization, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Organization, error)
	Update(ctx context.Context, org *domain.Organization) error
	ListByUser(ctx context.Context, userID string) ([]domain.OrgMember, error)
	ListMembers(ctx context.Context, orgID string) ([]domain.OrgMember, error)
	AddMember(ctx context.Context, member *domain.OrgMember) error
}

//go:generate mockery --name ProfileRepository --output ../mocks
type ProfileRepository interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
}

//go:generate mockery --name APIKeyRepository --output ../mocks
type APIKeyRepository interface {
	Create(ctx context.Context, key *domain.APIKey) (*domain.APIKey, error)
	ListByOrg(ctx context.Context, orgID string) ([]domain.APIKey, error)
	GetByHash(ctx context.Context, hash string) (*domain.APIKey, error)
	Deactivate(ctx context.Context, keyID string) error
	TouchUsage(ctx context.Context, keyID string, usedAt time.Time) error
}

//go:generate mockery --name ScoringRequestRepository --output ../mocks
type ScoringRequestRepository interface {
	GetByID(ctx context.Context, orgID, id string) (*domain.ScoringRequest, error)
	List(ctx context.Context, filter domain.ScoringRequestFilter) ([]domain.ScoringRequest, int64, error)
	ListRecent(ctx context.Context, orgID string, limit int) ([]domain.ScoringRequest, error)
	// CreateAndScore writes the request, its score, and the billing
	// event as one transaction: either all three rows land or none do.
	CreateAndScore(ctx context.Context, req *domain.ScoringRequest, score *domain.Score, event *domain.BillingEvent) error
	ExpirePendingBefore(ctx context.Context, orgID string, before time.Time) (int64, error)
	ListCompletedBefore(ctx context.Context, orgID string, before time.Time) ([]domain.ScoringRequest, error)
	DeleteCompletedBefore(ctx context.Context, orgID string, before time.Time) (int64, error)
}

//go:generate mockery --name ScoreRepository --output ../mocks
type ScoreRepository interface {
	GetByRequestID(ctx context.Context, orgID, requestID string) (*domain.Score, error)
	ListByOrg(ctx context.Context, orgID string) ([]domain.Score, error)
	ListPage(ctx context.Context, orgID string, limit, offset int) ([]domain.Score, int64, error)
}

//go:generate mockery --name BillingEventRepository --output ../mocks
type BillingEventRepository interface {
	Create(ctx context.Context, event *domain.BillingEvent) (*domain.BillingEvent, error)
	Summary(ctx context.Context, orgID string, since time.Time) (*domain.UsageSummary, error)
}

//go:generate mockery --name TransactionRepository --output ../mocks
type TransactionRepository interface {
	BulkCreate(ctx context.Context, transactions []domain.Transaction) (int64, error)
	StatsBySubject(ctx context.Context, orgID, subjectPhone string) (*domain.TransactionStats, error)
}

//go:generate mockery --name SearchRepository --output ../mocks
type SearchRepository interface {
	Index(ctx context.Context, req *domain.ScoringRequest) error
	BulkIndex(ctx context.Context, reqs []domain.ScoringRequest) error
	Search(ctx context.Context, filter *domain.ScoringRequestFilter) ([]domain.ScoringRequest, error)
	CreateIndex(ctx context.Context, orgID string, t time.Time) error
	DeleteIndex(ctx context.Context, orgID string) error
}

//go:generate mockery --name PostgresRepository --output ../mocks
type PostgresRepository interface {
	Organization() OrganizationRepository
	Profile() ProfileRepository
	APIKey() APIKeyRepository
	ScoringRequest() ScoringRequestRepository
	Score() ScoreRepository
	BillingEvent() BillingEventRepository
	Transaction() TransactionRepository
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	PostgresRepository
	Search() SearchRepository
}
