package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/metrics"
)

// LedgerUseCase owns balance-mutation logic and invariant enforcement.
// Every mutating operation runs inside one database transaction: the
// transaction log entry is written first, then the balance, so either both
// are durable or neither is.
type LedgerUseCase struct {
	txManager       TransactionManager
	accountRepo     AccountRepository
	transactionRepo TransactionRepository
	idGen           IDGenerator
	retrier         Retrier
	cache           Cache
	metrics         *metrics.Metrics
}

// NewLedgerUseCase creates a new LedgerUseCase. cache and m may be nil.
func NewLedgerUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	transactionRepo TransactionRepository,
	idGen IDGenerator,
	retrier Retrier,
	cache Cache,
	m *metrics.Metrics,
) *LedgerUseCase {
	return &LedgerUseCase{
		txManager:       txManager,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		idGen:           idGen,
		retrier:         retrier,
		cache:           cache,
		metrics:         m,
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	HolderName string
	Balance    decimal.Decimal
}

// CreateAccount persists a new account with the supplied holder name and
// opening balance. The balance is stored exactly as supplied; no transaction
// log entry is written for account creation.
func (uc *LedgerUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if err := domain.ValidateHolderName(input.HolderName); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	account := &domain.Account{
		HolderName: input.HolderName,
		Balance:    input.Balance,
		Version:    0,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.AccountsCreated.Inc()
	}

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *LedgerUseCase) GetAccount(ctx context.Context, id int64) (*domain.Account, error) {
	if account, ok := uc.cachedAccount(ctx, id); ok {
		return account, nil
	}

	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.storeAccount(ctx, account)

	return account, nil
}

// Deposit credits amount to the given account and logs a DEPOSIT transaction.
func (uc *LedgerUseCase) Deposit(ctx context.Context, id int64, amount decimal.Decimal) (*domain.Account, error) {
	account, err := uc.applyBalanceChange(ctx, id, amount, domain.TransactionTypeDeposit)
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.DepositsTotal.Inc()
		uc.metrics.DepositAmount.Observe(amount.InexactFloat64())
	}

	return account, nil
}

// Withdraw debits amount from the given account and logs a WITHDRAW
// transaction. Fails with ErrInsufficientFunds when amount exceeds the
// balance; nothing is persisted on failure.
func (uc *LedgerUseCase) Withdraw(ctx context.Context, id int64, amount decimal.Decimal) (*domain.Account, error) {
	account, err := uc.applyBalanceChange(ctx, id, amount, domain.TransactionTypeWithdraw)
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.WithdrawalsTotal.Inc()
		uc.metrics.WithdrawalAmount.Observe(amount.InexactFloat64())
	}

	return account, nil
}

func (uc *LedgerUseCase) applyBalanceChange(ctx context.Context, id int64, amount decimal.Decimal, txnType domain.TransactionType) (*domain.Account, error) {
	if err := domain.ValidateAmount(amount); err != nil {
		return nil, err
	}

	var updated *domain.Account

	err := uc.retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		account, err := uc.accountRepo.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		var newBalance decimal.Decimal
		switch txnType {
		case domain.TransactionTypeWithdraw:
			if err := account.ValidateWithdrawal(amount); err != nil {
				return err
			}
			newBalance = account.ApplyWithdrawal(amount)
		default:
			newBalance = account.ApplyDeposit(amount)
		}

		now := time.Now().UTC()

		txn := &domain.Transaction{
			AccountID: id,
			Type:      txnType,
			Amount:    amount,
			Timestamp: now,
		}

		if err := uc.transactionRepo.Create(ctx, tx, txn); err != nil {
			return err
		}

		if err := uc.accountRepo.UpdateBalance(ctx, tx, id, newBalance, now); err != nil {
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			return err
		}

		account.Balance = newBalance
		account.Version++
		account.UpdatedAt = now
		updated = account

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateAccount(ctx, id)

	return updated, nil
}

// ListAccounts returns every account in the store, ordered by ID.
func (uc *LedgerUseCase) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	return uc.accountRepo.List(ctx)
}

// DeleteAccount hard-deletes an account. The account's transaction history
// is retained for audit. Fails with ErrAccountNotFound when no row matched.
func (uc *LedgerUseCase) DeleteAccount(ctx context.Context, id int64) error {
	deleted, err := uc.accountRepo.Delete(ctx, id)
	if err != nil {
		return err
	}

	if deleted == 0 {
		return domain.ErrAccountNotFound
	}

	uc.invalidateAccount(ctx, id)

	if uc.metrics != nil {
		uc.metrics.AccountsDeleted.Inc()
	}

	return nil
}

// TransferInput represents input for a funds transfer.
type TransferInput struct {
	FromAccountID int64
	ToAccountID   int64
	Amount        decimal.Decimal
}

// TransferFunds moves amount from one account to another. Both rows are
// locked in ascending ID order, the outbound leg is checked for sufficient
// funds, and one TRANSFER transaction is logged per leg under a shared
// transfer reference.
func (uc *LedgerUseCase) TransferFunds(ctx context.Context, input TransferInput) error {
	if input.FromAccountID == input.ToAccountID {
		return domain.ErrSameAccount
	}

	if err := domain.ValidateAmount(input.Amount); err != nil {
		return err
	}

	ids := []int64{input.FromAccountID, input.ToAccountID}
	if ids[0] > ids[1] {
		ids[0], ids[1] = ids[1], ids[0]
	}

	err := uc.retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		accounts, err := uc.accountRepo.GetByIDsForUpdate(ctx, tx, ids)
		if err != nil {
			return err
		}

		if len(accounts) != len(ids) {
			return domain.ErrAccountNotFound
		}

		var fromAccount, toAccount *domain.Account
		for _, a := range accounts {
			switch a.ID {
			case input.FromAccountID:
				fromAccount = a
			case input.ToAccountID:
				toAccount = a
			}
		}

		if fromAccount == nil || toAccount == nil {
			return domain.ErrAccountNotFound
		}

		if err := fromAccount.ValidateWithdrawal(input.Amount); err != nil {
			return err
		}

		now := time.Now().UTC()
		transferRef := uc.idGen.Generate()

		sourceLeg := &domain.Transaction{
			AccountID:   fromAccount.ID,
			Type:        domain.TransactionTypeTransfer,
			Amount:      input.Amount,
			TransferRef: transferRef,
			Timestamp:   now,
		}

		if err := uc.transactionRepo.Create(ctx, tx, sourceLeg); err != nil {
			return err
		}

		destinationLeg := &domain.Transaction{
			AccountID:   toAccount.ID,
			Type:        domain.TransactionTypeTransfer,
			Amount:      input.Amount,
			TransferRef: transferRef,
			Timestamp:   now,
		}

		if err := uc.transactionRepo.Create(ctx, tx, destinationLeg); err != nil {
			return err
		}

		if err := uc.accountRepo.UpdateBalance(ctx, tx, fromAccount.ID, fromAccount.ApplyWithdrawal(input.Amount), now); err != nil {
			return err
		}

		if err := uc.accountRepo.UpdateBalance(ctx, tx, toAccount.ID, toAccount.ApplyDeposit(input.Amount), now); err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		return err
	}

	uc.invalidateAccount(ctx, input.FromAccountID)
	uc.invalidateAccount(ctx, input.ToAccountID)

	if uc.metrics != nil {
		uc.metrics.TransfersTotal.Inc()
		uc.metrics.TransferAmount.Observe(input.Amount.InexactFloat64())
	}

	return nil
}

// GetAccountTransactions returns the account's transaction log, newest first.
func (uc *LedgerUseCase) GetAccountTransactions(ctx context.Context, accountID int64) ([]*domain.Transaction, error) {
	return uc.transactionRepo.ListByAccount(ctx, accountID)
}

func (uc *LedgerUseCase) retry(ctx context.Context, operation func() error) error {
	if uc.retrier == nil {
		return operation()
	}

	return uc.retrier.Retry(ctx, operation)
}

func accountCacheKey(id int64) string {
	return fmt.Sprintf("account:%d", id)
}

func (uc *LedgerUseCase) cachedAccount(ctx context.Context, id int64) (*domain.Account, bool) {
	if uc.cache == nil {
		return nil, false
	}

	data, err := uc.cache.Get(ctx, accountCacheKey(id))
	if err != nil {
		return nil, false
	}

	var account domain.Account
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, false
	}

	return &account, true
}

func (uc *LedgerUseCase) storeAccount(ctx context.Context, account *domain.Account) {
	if uc.cache == nil {
		return
	}

	data, err := json.Marshal(account)
	if err != nil {
		return
	}

	_ = uc.cache.Set(ctx, accountCacheKey(account.ID), data, AccountCacheTTL)
}

func (uc *LedgerUseCase) invalidateAccount(ctx context.Context, id int64) {
	if uc.cache == nil {
		return
	}

	_ = uc.cache.Delete(ctx, accountCacheKey(id))
}
