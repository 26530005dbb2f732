package keeper

import (
	"math/big"

	sdkmath "cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/provlabs/yieldrouter/types"
)

const (
	FeeKindNetwork = "network"
	FeeKindProfit  = "profit"
)

// Metrics are the Prometheus collectors of the ledger. Every method is a no-op on a nil
// receiver so the keeper can run without metrics.
type Metrics struct {
	deposited  *prometheus.CounterVec
	withdrawn  prometheus.Counter
	fees       *prometheus.CounterVec
	refunds    prometheus.Counter
	migrations prometheus.Counter
	lifecycle  prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		deposited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: types.ModuleName,
			Name:      "deposited_principal_total",
			Help:      "Post-fee principal deployed into each strategy.",
		}, []string{"strategy"}),
		withdrawn: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: types.ModuleName,
			Name:      "withdrawn_total",
			Help:      "Underlying paid to depositors by withdrawals.",
		}),
		fees: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: types.ModuleName,
			Name:      "fees_collected_total",
			Help:      "Fees collected by kind.",
		}, []string{"kind"}),
		refunds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: types.ModuleName,
			Name:      "refunds_paid_total",
			Help:      "Underlying refunded from the vesting reserve.",
		}),
		migrations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: types.ModuleName,
			Name:      "migrations_total",
			Help:      "Completed fund migrations.",
		}),
		lifecycle: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: types.ModuleName,
			Name:      "lifecycle",
			Help:      "Current lifecycle, 0 active and 1 vesting.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.deposited, m.withdrawn, m.fees, m.refunds, m.migrations, m.lifecycle)
	}
	return m
}

func (m *Metrics) ObserveDeposit(earnNet, vaultNet sdkmath.Int) {
	if m == nil {
		return
	}
	m.deposited.WithLabelValues("earn").Add(toFloat(earnNet))
	m.deposited.WithLabelValues("vault").Add(toFloat(vaultNet))
}

func (m *Metrics) ObserveWithdraw(amount sdkmath.Int) {
	if m == nil {
		return
	}
	m.withdrawn.Add(toFloat(amount))
}

func (m *Metrics) ObserveFee(kind string, amount sdkmath.Int) {
	if m == nil {
		return
	}
	if kind == "" {
		kind = "unknown"
	}
	m.fees.WithLabelValues(kind).Add(toFloat(amount))
}

func (m *Metrics) ObserveRefund(amount sdkmath.Int) {
	if m == nil {
		return
	}
	m.refunds.Add(toFloat(amount))
}

func (m *Metrics) ObserveMigration() {
	if m == nil {
		return
	}
	m.migrations.Inc()
}

func (m *Metrics) SetLifecycle(lc types.Lifecycle) {
	if m == nil {
		return
	}
	m.lifecycle.Set(float64(lc))
}

// toFloat converts a non-negative amount for a counter. Negative or nil amounts count as 0.
func toFloat(amount sdkmath.Int) float64 {
	if amount.IsNil() || !amount.IsPositive() {
		return 0
	}
	f, _ := new(big.Float).SetInt(amount.BigInt()).Float64()
	return f
}
