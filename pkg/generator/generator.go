// Package generator derives fresh Groestlcoin addresses and keys. It is used
// to build test fixtures and by the generate command; the addresses it
// produces are real and spendable by whoever holds the printed key.
package generator

import (
	"fmt"
	"strings"

	"github.com/Amr-9/GrsValidator/pkg/chaincfg"
	"github.com/Amr-9/GrsValidator/pkg/validator"
)

// Kind is the address format to derive from a public key.
type Kind int

const (
	KindP2PKH       Kind = iota // Legacy pay to public key hash
	KindP2SHP2WPKH              // P2WPKH nested in P2SH
	KindP2WPKH                  // Native segwit v0 key hash
	KindP2WSH                   // Native segwit v0 script hash of a 1-of-1 multisig
)

// Kinds lists every derivable kind.
var Kinds = []Kind{KindP2PKH, KindP2SHP2WPKH, KindP2WPKH, KindP2WSH}

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindP2PKH:
		return "p2pkh"
	case KindP2SHP2WPKH:
		return "p2sh-p2wpkh"
	case KindP2WPKH:
		return "p2wpkh"
	case KindP2WSH:
		return "p2wsh"
	default:
		return "unknown"
	}
}

// AddressType is the type the validator reports for addresses of this kind.
func (k Kind) AddressType() validator.AddressType {
	switch k {
	case KindP2PKH:
		return validator.P2PKH
	case KindP2SHP2WPKH:
		return validator.P2SH
	case KindP2WPKH:
		return validator.P2WPKH
	case KindP2WSH:
		return validator.P2WSH
	default:
		return ""
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseKind maps a kind name onto a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown address kind %q", s)
}

// Result is a freshly derived address and the keys behind it.
type Result struct {
	Network    chaincfg.Network `json:"network" yaml:"network"`
	Kind       Kind             `json:"kind" yaml:"kind"`
	Address    string           `json:"address" yaml:"address"`
	PrivateKey string           `json:"private_key" yaml:"private_key"` // WIF, compressed
	PublicKey  string           `json:"public_key" yaml:"public_key"`   // hex, compressed
}

// Generate creates a new key pair and derives an address of the given kind
// on network.
func Generate(network chaincfg.Network, kind Kind) (*Result, error) {
	params, ok := chaincfg.Get(network)
	if !ok {
		return nil, fmt.Errorf("unknown network %q", network)
	}

	priv, pub, err := GenerateKeyPair()
	if err != nil {
		return nil, fmt.Errorf("generating key pair: %w", err)
	}
	addr, err := DeriveAddress(pub, kind, params)
	if err != nil {
		return nil, err
	}

	return &Result{
		Network:    network,
		Kind:       kind,
		Address:    addr,
		PrivateKey: PrivateKeyToWIF(priv, params),
		PublicKey:  fmt.Sprintf("%x", pub.SerializeCompressed()),
	}, nil
}
