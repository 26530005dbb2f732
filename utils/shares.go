package utils

import (
	"fmt"

	"cosmossdk.io/math"
)

// ToStrategyShares converts an amount of underlying tokens into the strategy shares that
// currently represent it.
//
// Formula (integer, floor):
//
//	shares = floor( amount * totalSupply / poolValue )
//
// Flooring means a withdrawal never asks the strategy for more shares than the ledger
// can account for. Error if any input is negative or the strategy holds no value.
func ToStrategyShares(amount, totalSupply, poolValue math.Int) (math.Int, error) {
	if amount.IsNegative() || totalSupply.IsNegative() || poolValue.IsNegative() {
		return math.Int{}, fmt.Errorf("invalid input: negative values not allowed")
	}
	if amount.IsZero() {
		return math.ZeroInt(), nil
	}
	if poolValue.IsZero() {
		return math.Int{}, fmt.Errorf("invalid input: strategy pool value is zero")
	}
	return amount.Mul(totalSupply).Quo(poolValue), nil
}

// SharesForDeposit returns the strategy shares minted for a deposit of assets.
//
// Formula (integer, floor):
//
//	if totalSupply == 0 or poolValue == 0:
//	    shares = assets
//	else:
//	    shares = floor( assets * totalSupply / poolValue )
func SharesForDeposit(assets, totalSupply, poolValue math.Int) (math.Int, error) {
	if assets.IsNegative() || totalSupply.IsNegative() || poolValue.IsNegative() {
		return math.Int{}, fmt.Errorf("invalid input: negative values not allowed")
	}
	if totalSupply.IsZero() || poolValue.IsZero() {
		return assets, nil
	}
	return assets.Mul(totalSupply).Quo(poolValue), nil
}

// ProRata returns holder's floor share of balance given its part of totalShares.
//
// Formula (integer, floor):
//
//	if totalShares == 0:
//	    out = 0
//	else:
//	    out = floor( shares * balance / totalShares )
//
// Rounding always leaves the remainder with the balance holder, so paying every holder
// their ProRata never exceeds balance.
func ProRata(shares, totalShares, balance math.Int) (math.Int, error) {
	if shares.IsNegative() || totalShares.IsNegative() || balance.IsNegative() {
		return math.Int{}, fmt.Errorf("invalid input: negative values not allowed")
	}
	if shares.GT(totalShares) {
		return math.Int{}, fmt.Errorf("invalid input: shares %s exceed total shares %s", shares, totalShares)
	}
	if totalShares.IsZero() || shares.IsZero() {
		return math.ZeroInt(), nil
	}
	return shares.Mul(balance).Quo(totalShares), nil
}
