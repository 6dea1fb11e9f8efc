package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger transaction.
type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "DEPOSIT"
	TransactionTypeWithdraw TransactionType = "WITHDRAW"
	TransactionTypeTransfer TransactionType = "TRANSFER"
)

// Transaction is an immutable log entry recording one balance-affecting
// event against an account. Amount is always the unsigned magnitude of the
// operation. Both legs of a transfer share one TransferRef.
type Transaction struct {
	Timestamp   time.Time
	Type        TransactionType
	TransferRef string
	Amount      decimal.Decimal
	ID          int64
	AccountID   int64
}
