package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/capitalizeai/scoring-api/internal/api/dto"
	"github.com/capitalizeai/scoring-api/internal/domain"
	"github.com/capitalizeai/scoring-api/internal/repository"
)

type TransactionService struct {
	repo repository.Repository
}

func NewTransactionService(repo repository.Repository) *TransactionService {
	return &TransactionService{repo: repo}
}

// BulkImport ingests a batch of behavioral records for the organization
func (s *TransactionService) BulkImport(ctx context.Context, orgID string, req dto.BulkCreateTransactionsRequest) (*dto.BulkCreateTransactionsResponse, error) {
	transactions := make([]domain.Transaction, len(req.Transactions))
	for i := range req.Transactions {
		tx := req.Transactions[i].ToTransaction(orgID)
		tx.ID = uuid.New().String()
		transactions[i] = tx
	}

	inserted, err := s.repo.Transaction().BulkCreate(ctx, transactions)
	if err != nil {
		return nil, err
	}
	return &dto.BulkCreateTransactionsResponse{Inserted: inserted}, nil
}

// GetSubjectStats aggregates a subject's transaction history
func (s *TransactionService) GetSubjectStats(ctx context.Context, orgID, subjectPhone string) (*domain.TransactionStats, error) {
	return s.repo.Transaction().StatsBySubject(ctx, orgID, subjectPhone)
}
