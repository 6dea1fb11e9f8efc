package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

func TestAccountFromDomain(t *testing.T) {
	now := time.Now()
	account := &domain.Account{
		ID:         1,
		HolderName: "Ada Lovelace",
		Balance:    decimal.RequireFromString("123.45"),
		Version:    2,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	resp := AccountFromDomain(account)
	if resp.ID != 1 || resp.AccountHolderName != "Ada Lovelace" || !resp.Balance.Equal(account.Balance) {
		t.Fatalf("unexpected account response: %+v", resp)
	}

	list := AccountsFromDomain([]*domain.Account{account})
	if len(list) != 1 || list[0].ID != account.ID {
		t.Fatalf("AccountsFromDomain returned %+v", list)
	}
}

func TestAccountResponseMarshalsBalanceAsNumber(t *testing.T) {
	resp := AccountFromDomain(&domain.Account{
		ID:         7,
		HolderName: "Ada",
		Balance:    decimal.RequireFromString("500.5"),
	})

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	if !strings.Contains(string(data), `"balance":500.5`) {
		t.Fatalf("expected balance as bare JSON number, got %s", data)
	}

	if !strings.Contains(string(data), `"accountHolderName":"Ada"`) {
		t.Fatalf("expected accountHolderName field, got %s", data)
	}
}

func TestTransactionFromDomain(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	txn := &domain.Transaction{
		ID:        3,
		AccountID: 1,
		Type:      domain.TransactionTypeDeposit,
		Amount:    decimal.RequireFromString("100"),
		Timestamp: ts,
	}

	resp := TransactionFromDomain(txn)
	if resp.ID != 3 || resp.AccountID != 1 || resp.TransactionType != "DEPOSIT" {
		t.Fatalf("unexpected transaction response: %+v", resp)
	}

	if resp.Timestamp != "2024-05-01T12:00:00Z" {
		t.Fatalf("expected RFC3339 timestamp, got %s", resp.Timestamp)
	}

	list := TransactionsFromDomain([]*domain.Transaction{txn})
	if len(list) != 1 || list[0].ID != txn.ID {
		t.Fatalf("TransactionsFromDomain returned %+v", list)
	}
}
