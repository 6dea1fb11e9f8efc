package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/iho/gobank/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrAccountNotFound, http.StatusNotFound},
		{domain.ErrInsufficientFunds, http.StatusConflict},
		{domain.ErrInvalidAmount, http.StatusBadRequest},
		{domain.ErrSameAccount, http.StatusBadRequest},
		{domain.ErrInvalidHolderName, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := mapDomainError(tt.err); got != tt.want {
			t.Fatalf("mapDomainError(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestMapDomainErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("withdraw from account 1: %w", domain.ErrInsufficientFunds)
	if got := mapDomainError(wrapped); got != http.StatusConflict {
		t.Fatalf("expected wrapped error to map to 409, got %d", got)
	}
}
