package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

var transactionColumns = []string{"id", "account_id", "transaction_type", "amount", "transfer_ref", "created_at"}

func TestTransactionRepositoryCreate(t *testing.T) {
	mockPool := newMockPool(t)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	mockPool.ExpectBegin()
	mockPool.ExpectQuery(`INSERT INTO transactions`).
		WithArgs(int64(1), "DEPOSIT", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(transactionColumns).
			AddRow(int64(7), int64(1), "DEPOSIT", decimalToNumeric(decimal.NewFromInt(100)), pgtype.Text{}, pgtype.Timestamptz{Time: now, Valid: true}))
	mockPool.ExpectCommit()

	manager := newTxManagerWithPool(mockPool)
	tx, err := manager.Begin(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo := newTransactionRepositoryWithDB(mockPool)
	txn := &domain.Transaction{
		AccountID: 1,
		Type:      domain.TransactionTypeDeposit,
		Amount:    decimal.NewFromInt(100),
		Timestamp: now,
	}
	if err := repo.Create(context.Background(), tx, txn); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if txn.ID != 7 {
		t.Fatalf("expected assigned ID 7, got %d", txn.ID)
	}

	if err := tx.Commit(context.Background()); err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	assertExpectations(t, mockPool)
}

func TestTransactionRepositoryListByAccountScopedToAccount(t *testing.T) {
	mockPool := newMockPool(t)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	// Two accounts have transactions on record. Each lookup must bind the
	// requested account ID and return that account's rows alone.
	mockPool.ExpectQuery(`SELECT id, account_id, transaction_type, amount, transfer_ref, created_at FROM transactions\s+WHERE account_id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(transactionColumns).
			AddRow(int64(2), int64(1), "WITHDRAW", decimalToNumeric(decimal.NewFromInt(50)), pgtype.Text{}, pgtype.Timestamptz{Time: now.Add(time.Minute), Valid: true}).
			AddRow(int64(1), int64(1), "DEPOSIT", decimalToNumeric(decimal.NewFromInt(500)), pgtype.Text{}, pgtype.Timestamptz{Time: now, Valid: true}))
	mockPool.ExpectQuery(`SELECT id, account_id, transaction_type, amount, transfer_ref, created_at FROM transactions\s+WHERE account_id = \$1`).
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows(transactionColumns).
			AddRow(int64(3), int64(2), "DEPOSIT", decimalToNumeric(decimal.NewFromInt(75)), pgtype.Text{}, pgtype.Timestamptz{Time: now, Valid: true}))

	repo := newTransactionRepositoryWithDB(mockPool)

	first, err := repo.ListByAccount(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != 2 {
		t.Fatalf("expected 2 transactions for account 1, got %d", len(first))
	}

	for _, txn := range first {
		if txn.AccountID != 1 {
			t.Fatalf("account 1 listing leaked transaction for account %d", txn.AccountID)
		}
	}

	if first[0].Type != domain.TransactionTypeWithdraw || !first[0].Amount.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("unexpected first transaction: %+v", first[0])
	}

	second, err := repo.ListByAccount(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(second) != 1 {
		t.Fatalf("expected 1 transaction for account 2, got %d", len(second))
	}

	if second[0].AccountID != 2 || !second[0].Amount.Equal(decimal.NewFromInt(75)) {
		t.Fatalf("unexpected transaction for account 2: %+v", second[0])
	}

	assertExpectations(t, mockPool)
}

func TestTransactionRepositoryListByAccountEmpty(t *testing.T) {
	mockPool := newMockPool(t)

	mockPool.ExpectQuery(`SELECT id, account_id, transaction_type, amount, transfer_ref, created_at FROM transactions\s+WHERE account_id = \$1`).
		WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows(transactionColumns))

	repo := newTransactionRepositoryWithDB(mockPool)

	txns, err := repo.ListByAccount(context.Background(), 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(txns) != 0 {
		t.Fatalf("expected empty listing, got %d transactions", len(txns))
	}

	assertExpectations(t, mockPool)
}
