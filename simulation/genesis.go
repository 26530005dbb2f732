package simulation

import (
	"encoding/json"
	"fmt"
	"math/rand"

	sdkmath "cosmossdk.io/math"

	"github.com/cosmos/cosmos-sdk/types/module"

	"github.com/provlabs/yieldrouter/types"
)

const (
	ProfitSharingFeePercentageKey = "profit_sharing_fee_percentage"
	FeeScheduleKey                = "fee_schedule"

	MaxTier2Min             = 100_000_000_000
	MaxTier2Width           = 500_000_000_000
	MaxCustomTierGap        = 5_000_000_000_000
	ChanceOfPendingStrategy = 4 // 1 in X
	ChanceOfWithdrawFeeOff  = 3 // 1 in X
)

// RandomFeeSchedule returns a valid schedule with random tier bounds and percentages. The
// custom percentage never exceeds the tier 2 percentage.
func RandomFeeSchedule(r *rand.Rand) types.FeeTierSchedule {
	tier2Min := r.Int63n(MaxTier2Min) + 1
	tier2Max := tier2Min + r.Int63n(MaxTier2Width) + 1
	custom := tier2Max + r.Int63n(MaxCustomTierGap) + 1

	var pcts [3]uint64
	for i := range pcts {
		pcts[i] = uint64(r.Int63n(types.MaxFeePercentage + 1))
	}
	return types.FeeTierSchedule{
		Tier2Min:            sdkmath.NewInt(tier2Min),
		Tier2Max:            sdkmath.NewInt(tier2Max),
		Percentages:         pcts,
		CustomTierThreshold: sdkmath.NewInt(custom),
		CustomPercentage:    uint64(r.Int63n(int64(pcts[1]) + 1)),
	}
}

// RandomizedGenState generates a random GenesisState for the yieldrouter module. The
// first three simulation accounts become owner, treasury and community wallet.
func RandomizedGenState(simState *module.SimulationState) {
	if len(simState.Accounts) < 3 {
		panic(fmt.Sprintf("%s simulation needs at least 3 accounts, got %d", types.ModuleName, len(simState.Accounts)))
	}

	var profitSharing uint64
	simState.AppParams.GetOrGenerate(ProfitSharingFeePercentageKey, &profitSharing, simState.Rand, func(r *rand.Rand) {
		profitSharing = uint64(r.Int63n(types.MaxFeePercentage + 1))
	})
	var schedule types.FeeTierSchedule
	simState.AppParams.GetOrGenerate(FeeScheduleKey, &schedule, simState.Rand, func(r *rand.Rand) {
		schedule = RandomFeeSchedule(r)
	})

	genesis := types.DefaultGenesisState()
	genesis.Params.Owner = simState.Accounts[0].Address.String()
	genesis.Params.TreasuryWallet = simState.Accounts[1].Address.String()
	genesis.Params.CommunityWallet = simState.Accounts[2].Address.String()
	genesis.Params.FeeSchedule = schedule
	genesis.Params.ProfitSharingFeePercentage = profitSharing
	genesis.Params.ProfitSharingOnWithdraw = simState.Rand.Intn(ChanceOfWithdrawFeeOff) != 0

	if simState.Rand.Intn(ChanceOfPendingStrategy) == 0 {
		target := simState.Accounts[simState.Rand.Intn(len(simState.Accounts))]
		genesis.MigrationLock.PendingStrategy = target.Address.String()
	}

	bz, err := json.MarshalIndent(genesis, "", " ")
	if err != nil {
		panic(err)
	}
	fmt.Printf("Selected randomly generated yieldrouter parameters: %s\n", bz)

	simState.GenState[types.ModuleName] = bz
}
