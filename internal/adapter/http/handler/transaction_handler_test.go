package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/adapter/http/dto"
	"github.com/iho/gobank/internal/domain"
)

type transactionServiceStub struct {
	listFn func(ctx context.Context, accountID int64) ([]*domain.Transaction, error)
}

func (s *transactionServiceStub) GetAccountTransactions(ctx context.Context, accountID int64) ([]*domain.Transaction, error) {
	return s.listFn(ctx, accountID)
}

func TestTransactionHandler_ListByAccount(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	var requestedID int64

	handler := NewTransactionHandler(&transactionServiceStub{
		listFn: func(ctx context.Context, accountID int64) ([]*domain.Transaction, error) {
			requestedID = accountID
			return []*domain.Transaction{
				{ID: 2, AccountID: accountID, Type: domain.TransactionTypeWithdraw, Amount: decimal.NewFromInt(50), Timestamp: ts},
				{ID: 1, AccountID: accountID, Type: domain.TransactionTypeDeposit, Amount: decimal.NewFromInt(100), Timestamp: ts},
			}, nil
		},
	})

	req := requestWithID(http.MethodGet, "/api/accounts/5/transactions", "5", nil)
	rec := httptest.NewRecorder()

	handler.ListByAccount(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if requestedID != 5 {
		t.Fatalf("expected query for account 5, got %d", requestedID)
	}

	var resp []dto.TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 2 || resp[0].TransactionType != "WITHDRAW" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestTransactionHandler_InvalidID(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		listFn: func(ctx context.Context, accountID int64) ([]*domain.Transaction, error) {
			t.Fatal("GetAccountTransactions should not be called for a bad path ID")
			return nil, nil
		},
	})

	req := requestWithID(http.MethodGet, "/api/accounts/abc/transactions", "abc", nil)
	rec := httptest.NewRecorder()

	handler.ListByAccount(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
