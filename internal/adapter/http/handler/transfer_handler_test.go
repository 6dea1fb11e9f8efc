package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
)

type transferServiceStub struct {
	transferFn func(ctx context.Context, input usecase.TransferInput) error
}

func (s *transferServiceStub) TransferFunds(ctx context.Context, input usecase.TransferInput) error {
	return s.transferFn(ctx, input)
}

func TestTransferHandler_Success(t *testing.T) {
	var captured usecase.TransferInput
	handler := NewTransferHandler(&transferServiceStub{
		transferFn: func(ctx context.Context, input usecase.TransferInput) error {
			captured = input
			return nil
		},
	})

	body := `{"fromAccountId":1,"toAccountId":2,"amount":100}`
	req := httptest.NewRequest(http.MethodPost, "/api/accounts/transfer", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Transfer(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if rec.Body.String() != "Funds transferred successfully." {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}

	if captured.FromAccountID != 1 || captured.ToAccountID != 2 {
		t.Fatalf("expected input to match request, got %+v", captured)
	}
}

func TestTransferHandler_InvalidJSON(t *testing.T) {
	handler := NewTransferHandler(&transferServiceStub{
		transferFn: func(ctx context.Context, input usecase.TransferInput) error {
			t.Fatal("TransferFunds should not be called for invalid payload")
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/accounts/transfer", strings.NewReader("{bad"))
	rec := httptest.NewRecorder()

	handler.Transfer(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransferHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"account missing", domain.ErrAccountNotFound, http.StatusNotFound},
		{"insufficient funds", domain.ErrInsufficientFunds, http.StatusConflict},
		{"zero amount", domain.ErrInvalidAmount, http.StatusBadRequest},
		{"same account", domain.ErrSameAccount, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewTransferHandler(&transferServiceStub{
				transferFn: func(ctx context.Context, input usecase.TransferInput) error {
					return tt.err
				},
			})

			body := `{"fromAccountId":1,"toAccountId":2,"amount":100}`
			req := httptest.NewRequest(http.MethodPost, "/api/accounts/transfer", strings.NewReader(body))
			rec := httptest.NewRecorder()

			handler.Transfer(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
		})
	}
}
