package domain

import (
	"encoding/json"
	"time"
)

type TransactionType string

const (
	TxSend       TransactionType = "send"
	TxReceive    TransactionType = "receive"
	TxPayment    TransactionType = "payment"
	TxWithdrawal TransactionType = "withdrawal"
	TxDeposit    TransactionType = "deposit"
	TxAirtime    TransactionType = "airtime"
	TxBill       TransactionType = "bill"
	TxMerchant   TransactionType = "merchant"
)

type Channel string

const (
	ChannelMomo        Channel = "momo"
	ChannelOrangeMoney Channel = "orange_money"
	ChannelBank        Channel = "bank"
	ChannelVisa        Channel = "visa"
	ChannelCash        Channel = "cash"
	ChannelOther       Channel = "other"
)

// Transaction is a raw behavioral record for a subject phone, used only
// as aggregation input. Append-only.
type Transaction struct {
	ID                string           `gorm:"primaryKey;type:uuid" json:"id"`
	OrgID             string           `gorm:"type:uuid;not null;index" json:"org_id"`
	SubjectPhone      string           `gorm:"type:text;not null;index" json:"subject_phone"`
	TransactionType   *TransactionType `gorm:"type:text" json:"transaction_type"`
	Amount            int64            `gorm:"not null" json:"amount"`
	Currency          string           `gorm:"type:text;not null;default:'XAF'" json:"currency"`
	CounterpartyPhone *string          `gorm:"type:text" json:"counterparty_phone"`
	CounterpartyName  *string          `gorm:"type:text" json:"counterparty_name"`
	Channel           Channel          `gorm:"type:text;not null;default:'momo'" json:"channel"`
	Reference         *string          `gorm:"type:text" json:"reference"`
	Location          *string          `gorm:"type:text" json:"location"`
	Timestamp         time.Time        `gorm:"type:timestamp with time zone;not null" json:"timestamp"`
	Metadata          json.RawMessage  `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt         time.Time        `gorm:"type:timestamp with time zone;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// TransactionStats aggregates a subject's transaction history.
type TransactionStats struct {
	TotalTransactions    int64 `json:"total_transactions"`
	TotalSent            int64 `json:"total_sent"`
	TotalReceived        int64 `json:"total_received"`
	AvgAmount            int64 `json:"avg_amount"`
	UniqueCounterparties int64 `json:"unique_counterparties"`
}
