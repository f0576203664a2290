package postgres

import (
	"context"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/capitalizeai/scoring-api/internal/domain"
)

type TransactionRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewTransactionRepository(writerDB, readerDB *gorm.DB) *TransactionRepository {
	return &TransactionRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *TransactionRepository) BulkCreate(ctx context.Context, transactions []domain.Transaction) (int64, error) {
	if len(transactions) == 0 {
		return 0, nil
	}

	for i := range transactions {
		if transactions[i].ID == "" {
			transactions[i].ID = uuid.New().String()
		}
	}

	result := r.writerDB.WithContext(ctx).CreateInBatches(transactions, 100)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *TransactionRepository) StatsBySubject(ctx context.Context, orgID, subjectPhone string) (*domain.TransactionStats, error) {
	var transactions []domain.Transaction
	if err := r.readerDB.WithContext(ctx).
		Select("transaction_type, amount, counterparty_phone").
		Where("org_id = ? AND subject_phone = ?", orgID, subjectPhone).
		Find(&transactions).Error; err != nil {
		return nil, err
	}

	stats := &domain.TransactionStats{
		TotalTransactions: int64(len(transactions)),
	}

	var totalAmount int64
	counterparties := make(map[string]struct{})
	for _, t := range transactions {
		totalAmount += t.Amount
		if t.TransactionType != nil {
			switch *t.TransactionType {
			case domain.TxSend:
				stats.TotalSent += t.Amount
			case domain.TxReceive:
				stats.TotalReceived += t.Amount
			}
		}
		if t.CounterpartyPhone != nil && *t.CounterpartyPhone != "" {
			counterparties[*t.CounterpartyPhone] = struct{}{}
		}
	}

	if len(transactions) > 0 {
		stats.AvgAmount = int64(math.Round(float64(totalAmount) / float64(len(transactions))))
	}
	stats.UniqueCounterparties = int64(len(counterparties))

	return stats, nil
}
