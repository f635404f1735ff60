// Package chaincfg holds the address encoding parameters of the supported
// Groestlcoin networks.
package chaincfg

import (
	"fmt"
	"strings"

	"github.com/Amr-9/GrsValidator/pkg/base58"
)

// Network names a Groestlcoin network.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Regtest Network = "regtest"
)

// String returns the network name.
func (n Network) String() string {
	return string(n)
}

// ParseNetwork maps a user supplied name onto a Network.
func ParseNetwork(s string) (Network, error) {
	switch n := Network(strings.ToLower(strings.TrimSpace(s))); n {
	case Mainnet, Testnet, Regtest:
		return n, nil
	}
	return "", fmt.Errorf("unknown network %q: options are %s, %s, %s", s, Mainnet, Testnet, Regtest)
}

// Params defines the address encoding of a network.
type Params struct {
	Name Network

	// Address encoding magics
	PubKeyHashAddrID byte
	ScriptHashAddrID byte
	PrivateKeyID     byte

	// Human-readable part for Bech32 encoded segwit addresses
	Bech32HRPSegwit string

	// Base58Check checksum function
	Base58CksumHasher base58.ChecksumHasher
}

// networks is scanned in order by the lookups below, so the first match
// wins. Regtest shares the testnet base58 version bytes, which makes base58
// regtest addresses classify as testnet.
var networks = [...]Params{
	{
		Name:              Mainnet,
		PubKeyHashAddrID:  36,  // starts with F
		ScriptHashAddrID:  5,   // starts with 3
		PrivateKeyID:      128, // WIF starts with 5, K or L
		Bech32HRPSegwit:   "grs",
		Base58CksumHasher: Groestl512D,
	},
	{
		Name:              Testnet,
		PubKeyHashAddrID:  111, // starts with m or n
		ScriptHashAddrID:  196, // starts with 2
		PrivateKeyID:      239, // WIF starts with 9 or c
		Bech32HRPSegwit:   "tgrs",
		Base58CksumHasher: Groestl512D,
	},
	{
		Name:              Regtest,
		PubKeyHashAddrID:  111,
		ScriptHashAddrID:  196,
		PrivateKeyID:      239,
		Bech32HRPSegwit:   "grsrt",
		Base58CksumHasher: Groestl512D,
	},
}

// Networks returns the parameters of every supported network.
func Networks() []Params {
	out := make([]Params, len(networks))
	copy(out, networks[:])
	return out
}

// Get returns the parameters of a network.
func Get(n Network) (Params, bool) {
	for _, p := range networks {
		if p.Name == n {
			return p, true
		}
	}
	return Params{}, false
}

// MustGet is like Get but panics for an unknown network.
func MustGet(n Network) Params {
	p, ok := Get(n)
	if !ok {
		panic("chaincfg: unknown network " + string(n))
	}
	return p
}

// ByPubKeyHashAddrID returns the first network whose P2PKH version byte is id.
func ByPubKeyHashAddrID(id byte) (Params, bool) {
	for _, p := range networks {
		if p.PubKeyHashAddrID == id {
			return p, true
		}
	}
	return Params{}, false
}

// ByScriptHashAddrID returns the first network whose P2SH version byte is id.
func ByScriptHashAddrID(id byte) (Params, bool) {
	for _, p := range networks {
		if p.ScriptHashAddrID == id {
			return p, true
		}
	}
	return Params{}, false
}

// ByBech32HRP returns the network using hrp as its segwit prefix. The match
// is case-insensitive.
func ByBech32HRP(hrp string) (Params, bool) {
	for _, p := range networks {
		if strings.EqualFold(p.Bech32HRPSegwit, hrp) {
			return p, true
		}
	}
	return Params{}, false
}
