package postgres

import (
	"github.com/capitalizeai/scoring-api/internal/config"
	"github.com/capitalizeai/scoring-api/internal/repository"
)

type postgresRepository struct {
	orgRepo         repository.OrganizationRepository
	profileRepo     repository.ProfileRepository
	apiKeyRepo      repository.APIKeyRepository
	scoringRepo     repository.ScoringRequestRepository
	scoreRepo       repository.ScoreRepository
	billingRepo     repository.BillingEventRepository
	transactionRepo repository.TransactionRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.PostgresRepository {
	writer, reader := dbConnections.Writer, dbConnections.Reader
	return &postgresRepository{
		orgRepo:         NewOrganizationRepository(writer, reader),
		profileRepo:     NewProfileRepository(writer, reader),
		apiKeyRepo:      NewAPIKeyRepository(writer, reader),
		scoringRepo:     NewScoringRequestRepository(writer, reader),
		scoreRepo:       NewScoreRepository(writer, reader),
		billingRepo:     NewBillingEventRepository(writer, reader),
		transactionRepo: NewTransactionRepository(writer, reader),
	}
}

func (r *postgresRepository) Organization() repository.OrganizationRepository {
	return r.orgRepo
}

func (r *postgresRepository) Profile() repository.ProfileRepository {
	return r.profileRepo
}

func (r *postgresRepository) APIKey() repository.APIKeyRepository {
	return r.apiKeyRepo
}

func (r *postgresRepository) ScoringRequest() repository.ScoringRequestRepository {
	return r.scoringRepo
}

func (r *postgresRepository) Score() repository.ScoreRepository {
	return r.scoreRepo
}

func (r *postgresRepository) BillingEvent() repository.BillingEventRepository {
	return r.billingRepo
}

func (r *postgresRepository) Transaction() repository.TransactionRepository {
	return r.transactionRepo
}
