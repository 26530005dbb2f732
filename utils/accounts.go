package utils

import (
	"github.com/cometbft/cometbft/crypto/secp256k1"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Address is a test account in both raw and bech32 form.
type Address struct {
	Bytes  []byte
	Bech32 string
}

// AccAddress returns the address as an sdk.AccAddress.
func (a Address) AccAddress() sdk.AccAddress {
	return sdk.AccAddress(a.Bytes)
}

// TestAddress returns a fresh secp256k1 derived address with the "cosmos" prefix.
func TestAddress() Address {
	key := secp256k1.GenPrivKey()
	bytes := key.PubKey().Address().Bytes()

	return Address{
		Bytes:  bytes,
		Bech32: generateAddress("cosmos", bytes),
	}
}

func generateAddress(prefix string, bytes []byte) string {
	address, err := sdk.Bech32ifyAddressBytes(prefix, bytes)
	if err != nil {
		panic("error during test address creation")
	}
	return address
}
