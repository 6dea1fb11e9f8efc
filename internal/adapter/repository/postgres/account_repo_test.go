package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

func TestDecimalNumericRoundTrip(t *testing.T) {
	values := []string{"0", "1", "500.5", "123.45", "-10", "-0.01", "99999999.9999"}

	for _, value := range values {
		t.Run(value, func(t *testing.T) {
			d := decimal.RequireFromString(value)

			n := decimalToNumeric(d)
			if !n.Valid {
				t.Fatalf("conversion of %s produced invalid numeric", value)
			}

			got := numericToDecimal(n)
			if !got.Equal(d) {
				t.Fatalf("round trip of %s gave %s", value, got)
			}
		})
	}
}

func TestNumericToDecimalNull(t *testing.T) {
	got := numericToDecimal(pgtype.Numeric{})
	if !got.IsZero() {
		t.Fatalf("expected zero for null numeric, got %s", got)
	}
}

func TestAccountRepositoryGetByIDNotFound(t *testing.T) {
	mockPool := newMockPool(t)

	mockPool.ExpectQuery(`SELECT id, holder_name, balance, version, created_at, updated_at FROM accounts WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnError(pgx.ErrNoRows)

	repo := newAccountRepositoryWithDB(mockPool)

	_, err := repo.GetByID(context.Background(), 42)
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}

	assertExpectations(t, mockPool)
}
