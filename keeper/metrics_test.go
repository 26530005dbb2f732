package keeper_test

import (
	"strings"

	sdkmath "cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/provlabs/yieldrouter/keeper"
	"github.com/provlabs/yieldrouter/types"
)

func (s *TestSuite) TestMetrics_RecordCommittedOperations() {
	reg := prometheus.NewRegistry()
	s.k.WithMetrics(keeper.NewMetrics(reg))
	defer s.k.WithMetrics(nil)

	alice := s.CreateAndFundAccount("alice", 300)
	s.deposit(alice, 100, 200)

	// A rejected call must not be observed.
	_, err := s.msgServer.Deposit(s.ctx, &types.MsgDepositRequest{
		Depositor:   alice.String(),
		EarnAmount:  sdkmath.NewInt(1_000),
		VaultAmount: sdkmath.ZeroInt(),
	})
	s.Require().Error(err)

	s.Require().NoError(s.env.Earn.InjectProfit(s.ctx, sdkmath.NewInt(1_000)))
	s.vest()
	_, err = s.msgServer.Refund(s.ctx, &types.MsgRefundRequest{Depositor: alice.String()})
	s.Require().NoError(err)

	expected := `
# HELP yieldrouter_deposited_principal_total Post-fee principal deployed into each strategy.
# TYPE yieldrouter_deposited_principal_total counter
yieldrouter_deposited_principal_total{strategy="earn"} 99
yieldrouter_deposited_principal_total{strategy="vault"} 198
# HELP yieldrouter_fees_collected_total Fees collected by kind.
# TYPE yieldrouter_fees_collected_total counter
yieldrouter_fees_collected_total{kind="network"} 3
yieldrouter_fees_collected_total{kind="profit"} 100
# HELP yieldrouter_lifecycle Current lifecycle, 0 active and 1 vesting.
# TYPE yieldrouter_lifecycle gauge
yieldrouter_lifecycle 1
# HELP yieldrouter_refunds_paid_total Underlying refunded from the vesting reserve.
# TYPE yieldrouter_refunds_paid_total counter
yieldrouter_refunds_paid_total 1197
`
	s.Require().NoError(testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"yieldrouter_deposited_principal_total",
		"yieldrouter_fees_collected_total",
		"yieldrouter_lifecycle",
		"yieldrouter_refunds_paid_total",
	))
}

func (s *TestSuite) TestMetrics_NilIsNoop() {
	var m *keeper.Metrics
	s.Assert().NotPanics(func() {
		m.ObserveDeposit(sdkmath.NewInt(1), sdkmath.NewInt(2))
		m.ObserveWithdraw(sdkmath.NewInt(1))
		m.ObserveFee(keeper.FeeKindNetwork, sdkmath.NewInt(1))
		m.ObserveRefund(sdkmath.NewInt(1))
		m.ObserveMigration()
		m.SetLifecycle(types.LifecycleVesting)
	})
	s.Assert().Nil(s.k.Metrics())
}
