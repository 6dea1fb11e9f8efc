package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for ledger operations
type Metrics struct {
	AccountsCreated  prometheus.Counter
	AccountsDeleted  prometheus.Counter
	DepositsTotal    prometheus.Counter
	WithdrawalsTotal prometheus.Counter
	TransfersTotal   prometheus.Counter
	DepositAmount    prometheus.Histogram
	WithdrawalAmount prometheus.Histogram
	TransferAmount   prometheus.Histogram
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	amountBuckets := []float64{1, 10, 100, 1000, 10000, 100000, 1000000}

	return &Metrics{
		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gobank_accounts_created_total",
			Help: "Total number of accounts created",
		}),
		AccountsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gobank_accounts_deleted_total",
			Help: "Total number of accounts deleted",
		}),
		DepositsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gobank_deposits_total",
			Help: "Total number of deposits",
		}),
		WithdrawalsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gobank_withdrawals_total",
			Help: "Total number of withdrawals",
		}),
		TransfersTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gobank_transfers_total",
			Help: "Total number of transfers",
		}),
		DepositAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "gobank_deposit_amount",
			Help:    "Deposit amounts",
			Buckets: amountBuckets,
		}),
		WithdrawalAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "gobank_withdrawal_amount",
			Help:    "Withdrawal amounts",
			Buckets: amountBuckets,
		}),
		TransferAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "gobank_transfer_amount",
			Help:    "Transfer amounts",
			Buckets: amountBuckets,
		}),
	}
}
