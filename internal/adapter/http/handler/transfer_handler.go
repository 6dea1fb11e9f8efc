package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iho/gobank/internal/adapter/http/dto"
	"github.com/iho/gobank/internal/usecase"
)

// TransferService defines the behavior needed by TransferHandler.
type TransferService interface {
	TransferFunds(ctx context.Context, input usecase.TransferInput) error
}

// TransferHandler handles transfer-related HTTP requests.
type TransferHandler struct {
	ledgerUC TransferService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(ledgerUC TransferService) *TransferHandler {
	return &TransferHandler{ledgerUC: ledgerUC}
}

// Transfer moves funds between two accounts.
func (h *TransferHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.ledgerUC.TransferFunds(r.Context(), req.ToUseCaseInput()); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to transfer funds", err.Error())

		return
	}

	writeText(w, http.StatusOK, "Funds transferred successfully.")
}
