package validator

import (
	"bytes"
	"errors"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"

	"github.com/Amr-9/GrsValidator/pkg/base58"
	"github.com/Amr-9/GrsValidator/pkg/bech32"
	"github.com/Amr-9/GrsValidator/pkg/chaincfg"
	"github.com/Amr-9/GrsValidator/pkg/segwit"
)

func TestClassifyErrors(t *testing.T) {
	hash20 := bytes.Repeat([]byte{0x11}, 20)
	hash32 := bytes.Repeat([]byte{0x22}, 32)
	mainnet := chaincfg.MustGet(chaincfg.Mainnet)

	mustSegwit := func(hrp string, version byte, program []byte) string {
		addr, err := segwit.Encode(hrp, version, program)
		require.NoError(t, err)
		return addr
	}

	tests := []struct {
		name string
		addr string
		kind error
	}{
		{"empty", "", ErrMalformedAddress},
		{"bogus", "x", ErrMalformedAddress},
		{"base58 checksum", "FqLDjQPjguc5SHwMMRxMbX24fsc8WmQoBA", base58.ErrChecksumMismatch},
		{"bech32 checksum", "grs1q509twc95s820qruxx2wm8gyqfgjreasdu354gf", bech32.ErrChecksumMismatch},
		{"testnet base58 checksum", "muCVFTRDC6JVHuYx3qupeQ6hraoM8ENGUz", base58.ErrChecksumMismatch},
		{"bitcoin checksum", "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", base58.ErrChecksumMismatch},
		{"unknown version with bad checksum",
			base58.CheckEncode(hash20, 0, chainhash.DoubleHashB), base58.ErrChecksumMismatch},
		{"mixed case", "grs1Q509twc95s820qrufx2wm8gyqfgjreasdu354gf", bech32.ErrMixedCase},
		{"unknown version byte",
			base58.CheckEncode(hash20, 0, mainnet.Base58CksumHasher), ErrUnknownNetworkOrType},
		{"short base58 payload",
			base58.CheckEncode(hash20[:19], 36, mainnet.Base58CksumHasher), ErrUnknownNetworkOrType},
		{"long base58 payload",
			base58.CheckEncode(hash32, 5, mainnet.Base58CksumHasher), ErrUnknownNetworkOrType},
		{"unknown hrp", mustSegwit("bc", 0, hash20), ErrUnknownNetworkOrType},
		{"witness v1", mustSegwit("grs", 1, hash32), ErrUnknownNetworkOrType},
		{"witness v16", mustSegwit("tgrs", 16, hash20[:2]), ErrUnknownNetworkOrType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify(tt.addr)
			require.Error(t, err)
			require.True(t, errors.Is(err, tt.kind), "got %v", err)

			var verr Error
			if errors.As(err, &verr) {
				require.NotEmpty(t, verr.Description)
			}

			_, ok := Validate(tt.addr)
			require.False(t, ok)
		})
	}
}

func TestClassifyMalformedDescription(t *testing.T) {
	tests := []struct {
		name string
		addr string
		want string
	}{
		{"base58 lookalikes", "FqLDjQPjguc5SHwM0RxMbX24fsc8WmQoOA", `invalid base58 characters "0O"`},
		{"non ascii", "Fqé", `invalid base58 characters "é"`},
		{"bech32 attempt", "grs1q509twc95s820qrufx2wm8gyqfgjreasdu354g0", "base58check:"},
		{"base58 alphabet", "x", "base58check:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify(tt.addr)
			require.ErrorIs(t, err, ErrMalformedAddress)

			var verr Error
			require.True(t, errors.As(err, &verr))
			require.Contains(t, verr.Description, tt.want)
		})
	}
}

func TestClassifyRegtestBase58(t *testing.T) {
	hash20 := bytes.Repeat([]byte{0x33}, 20)
	regtest := chaincfg.MustGet(chaincfg.Regtest)

	p2pkh := base58.CheckEncode(hash20, regtest.PubKeyHashAddrID, regtest.Base58CksumHasher)
	got, err := Classify(p2pkh)
	require.NoError(t, err)
	require.Equal(t, Classification{P2PKH, chaincfg.Testnet, false}, got)

	p2sh := base58.CheckEncode(hash20, regtest.ScriptHashAddrID, regtest.Base58CksumHasher)
	got, err = Classify(p2sh)
	require.NoError(t, err)
	require.Equal(t, Classification{P2SH, chaincfg.Testnet, false}, got)
}

func TestClassifyRoundTrip(t *testing.T) {
	hash20 := bytes.Repeat([]byte{0x44}, 20)
	hash32 := bytes.Repeat([]byte{0x55}, 32)

	for _, p := range chaincfg.Networks() {
		// base58 regtest addresses cannot be told apart from testnet ones
		base58Net := p.Name
		if base58Net == chaincfg.Regtest {
			base58Net = chaincfg.Testnet
		}

		cases := map[string]Classification{
			base58.CheckEncode(hash20, p.PubKeyHashAddrID, p.Base58CksumHasher): {P2PKH, base58Net, false},
			base58.CheckEncode(hash20, p.ScriptHashAddrID, p.Base58CksumHasher): {P2SH, base58Net, false},
		}
		wpkh, err := segwit.Encode(p.Bech32HRPSegwit, 0, hash20)
		require.NoError(t, err)
		cases[wpkh] = Classification{P2WPKH, p.Name, true}
		wsh, err := segwit.Encode(p.Bech32HRPSegwit, 0, hash32)
		require.NoError(t, err)
		cases[wsh] = Classification{P2WSH, p.Name, true}

		for addr, want := range cases {
			got, err := Classify(addr)
			require.NoError(t, err, addr)
			require.Equal(t, want, got, addr)
		}
	}
}

func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrMalformedAddress, "ErrMalformedAddress"},
		{ErrUnknownNetworkOrType, "ErrUnknownNetworkOrType"},
	}
	for i, test := range tests {
		require.Equal(t, test.want, test.in.Error(), "#%d", i)
	}
}

func TestErrorKindIsAs(t *testing.T) {
	err := makeError(ErrUnknownNetworkOrType, "unknown")
	require.True(t, errors.Is(err, ErrUnknownNetworkOrType))
	require.False(t, errors.Is(err, ErrMalformedAddress))

	var kind ErrorKind
	require.True(t, errors.As(err, &kind))
	require.Equal(t, ErrUnknownNetworkOrType, kind)
	require.Equal(t, "unknown", err.Error())
}
