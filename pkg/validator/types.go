package validator

import (
	"github.com/Amr-9/GrsValidator/pkg/chaincfg"
)

// AddressType is the script template an address pays to.
type AddressType string

const (
	P2PKH  AddressType = "p2pkh"  // Legacy pay to public key hash
	P2SH   AddressType = "p2sh"   // Legacy pay to script hash
	P2WPKH AddressType = "p2wpkh" // Native segwit v0 public key hash
	P2WSH  AddressType = "p2wsh"  // Native segwit v0 script hash
)

// AddressTypes lists every type the validator can report.
var AddressTypes = []AddressType{P2PKH, P2SH, P2WPKH, P2WSH}

// String returns the address type name.
func (t AddressType) String() string {
	return string(t)
}

// Description returns a human-readable description of an address type.
func (t AddressType) Description() string {
	switch t {
	case P2PKH:
		return "Legacy (P2PKH)"
	case P2SH:
		return "Script Hash (P2SH)"
	case P2WPKH:
		return "Native SegWit (P2WPKH)"
	case P2WSH:
		return "Native SegWit Script (P2WSH)"
	default:
		return "Unknown"
	}
}

// IsBech32 reports whether addresses of this type use bech32 encoding.
func (t AddressType) IsBech32() bool {
	return t == P2WPKH || t == P2WSH
}

// IsBase58 reports whether addresses of this type use Base58Check encoding.
func (t AddressType) IsBase58() bool {
	return t == P2PKH || t == P2SH
}

// Classification describes a valid address.
type Classification struct {
	Type    AddressType      `json:"type" yaml:"type"`
	Network chaincfg.Network `json:"network" yaml:"network"`
	Bech32  bool             `json:"bech32" yaml:"bech32"`
}
