package base58_test

import (
	"testing"

	grsbase58 "github.com/martinboehm/btcutil/base58"
	"github.com/stretchr/testify/require"

	"github.com/Amr-9/GrsValidator/pkg/base58"
	"github.com/Amr-9/GrsValidator/pkg/chaincfg"
)

// The codec must agree with martinboehm/btcutil/base58, the Groestl-aware
// Base58Check package blockbook uses for GRS.
var groestlVectors = []string{
	"FqLDjQPjguc5SHwM2RxMbX24fsc8WmQoBA",
	"3B36sX2yoULBTrQhrjzWHrhyvv65zX8Z2a",
	"muCVFTRDC6JVHuYx3qupeQ6hraoM8ENGUy",
	"2MyzRukiQBPKpRDzMbKxRQSRVWVMEHozoxR",
	"3MMSnZL",
	"ZmNb8uQn5zvnUoisWKK7",
	"111113MMSnZL",
}

func TestCheckDecodeMatchesGroestlReference(t *testing.T) {
	hasher := chaincfg.MustGet(chaincfg.Mainnet).Base58CksumHasher

	for _, s := range groestlVectors {
		t.Run(s, func(t *testing.T) {
			wantPayload, wantVersion, wantErr := grsbase58.CheckDecode(s, 1, grsbase58.Groestl512D)
			version, payload, err := base58.CheckDecode(s, hasher)
			if wantErr != nil {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, wantVersion[0], version)
			require.Equal(t, string(wantPayload), string(payload))

			require.Equal(t, grsbase58.CheckEncode(wantPayload, wantVersion, grsbase58.Groestl512D),
				base58.CheckEncode(payload, version, hasher))
		})
	}
}

func TestChecksumMismatchMatchesGroestlReference(t *testing.T) {
	hasher := chaincfg.MustGet(chaincfg.Mainnet).Base58CksumHasher

	// Same payload as the valid mainnet address with the last digit changed.
	s := "FqLDjQPjguc5SHwM2RxMbX24fsc8WmQoBB"
	_, _, wantErr := grsbase58.CheckDecode(s, 1, grsbase58.Groestl512D)
	require.ErrorIs(t, wantErr, grsbase58.ErrChecksum)

	_, _, err := base58.CheckDecode(s, hasher)
	require.ErrorIs(t, err, base58.ErrChecksumMismatch)
}

func TestDecodeMatchesReference(t *testing.T) {
	for _, s := range append(groestlVectors, "", "1", "11", "z", "2g", "1112") {
		got, err := base58.Decode(s)
		require.NoError(t, err)
		require.Equal(t, grsbase58.Decode(s), got, s)
		require.Equal(t, s, grsbase58.Encode(got))
	}
}
