package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/postgres/generated"
	"github.com/iho/gobank/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

func newTransactionRepositoryWithDB(db generated.DBTX) *TransactionRepository {
	return &TransactionRepository{queries: generated.New(db)}
}

// Create records a ledger transaction inside the given database transaction
// and fills in its store-assigned ID.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.CreateTransaction(ctx, generated.CreateTransactionParams{
		AccountID:       txn.AccountID,
		TransactionType: string(txn.Type),
		Amount:          decimalToNumeric(txn.Amount),
		TransferRef:     transferRefToText(txn.TransferRef),
		CreatedAt:       timeToPgTimestamptz(txn.Timestamp),
	})
	if err != nil {
		return err
	}

	txn.ID = row.ID

	return nil
}

// ListByAccount returns the transactions recorded against an account,
// newest first.
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID int64) ([]*domain.Transaction, error) {
	rows, err := r.queries.GetTransactionsByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	txns := make([]*domain.Transaction, 0, len(rows))
	for _, row := range rows {
		txns = append(txns, rowToTransaction(row))
	}

	return txns, nil
}

func rowToTransaction(row generated.Transaction) *domain.Transaction {
	return &domain.Transaction{
		ID:          row.ID,
		AccountID:   row.AccountID,
		Type:        domain.TransactionType(row.TransactionType),
		Amount:      numericToDecimal(row.Amount),
		TransferRef: row.TransferRef.String,
		Timestamp:   row.CreatedAt.Time,
	}
}

func transferRefToText(ref string) pgtype.Text {
	return pgtype.Text{String: ref, Valid: ref != ""}
}
