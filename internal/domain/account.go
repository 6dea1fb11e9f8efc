package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a named holder of a monetary balance.
type Account struct {
	CreatedAt  time.Time
	UpdatedAt  time.Time
	HolderName string
	Balance    decimal.Decimal
	ID         int64
	Version    int64
}

// ValidateWithdrawal checks if the account holds enough funds to cover amount.
func (a *Account) ValidateWithdrawal(amount decimal.Decimal) error {
	if amount.GreaterThan(a.Balance) {
		return ErrInsufficientFunds
	}
	return nil
}

// ApplyDeposit returns the balance after crediting amount.
func (a *Account) ApplyDeposit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Add(amount)
}

// ApplyWithdrawal returns the balance after debiting amount.
func (a *Account) ApplyWithdrawal(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Sub(amount)
}
