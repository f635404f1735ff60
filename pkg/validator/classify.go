package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Amr-9/GrsValidator/pkg/base58"
	"github.com/Amr-9/GrsValidator/pkg/chaincfg"
	"github.com/Amr-9/GrsValidator/pkg/segwit"
)

// MaxAddressLen is the longest input worth decoding. It equals the bech32
// length limit and exceeds any Base58Check address.
const MaxAddressLen = 90

// hash160Len is the payload size of both legacy address types.
const hash160Len = 20

// Classify decodes an address and reports what it is. The base58 path is
// tried first, then the segwit path. The returned error says why the address
// was rejected; use errors.Is with ErrMalformedAddress,
// ErrUnknownNetworkOrType or any decoder error kind.
func Classify(address string) (Classification, error) {
	if address == "" {
		return Classification{}, makeError(ErrMalformedAddress, "empty address")
	}
	if len(address) > MaxAddressLen {
		str := fmt.Sprintf("address length %d exceeds %d", len(address), MaxAddressLen)
		return Classification{}, makeError(ErrMalformedAddress, str)
	}

	c, b58Err := classifyBase58(address)
	if b58Err == nil {
		return c, nil
	}
	c, segwitErr := classifyBech32(address)
	if segwitErr == nil {
		return c, nil
	}

	// An address that decoded on either path is reported by why it could not
	// be classified rather than by the other decoder's complaint.
	for _, err := range []error{b58Err, segwitErr} {
		if errors.Is(err, ErrUnknownNetworkOrType) {
			return Classification{}, err
		}
	}

	str := fmt.Sprintf("malformed address: base58check: %v; segwit: %v", b58Err, segwitErr)
	if bad := base58.InvalidChars(address); len(bad) > 0 && !hasSegwitPrefix(address) {
		str = fmt.Sprintf("malformed address: invalid base58 characters %q; segwit: %v",
			string(bad), segwitErr)
	}
	return Classification{}, Error{
		Err:         errors.Join(ErrMalformedAddress, b58Err, segwitErr),
		Description: str,
	}
}

// classifyBase58 handles P2PKH and P2SH addresses. The string is decoded once
// and its checksum is verified with the hasher of the network named by the
// version byte.
func classifyBase58(address string) (Classification, error) {
	decoded, err := base58.Decode(address)
	if err != nil {
		return Classification{}, err
	}
	p := checksumParams(decoded)
	version, payload, err := base58.VerifyChecksum(decoded, p.Base58CksumHasher)
	if err != nil {
		return Classification{}, err
	}
	return classifyLegacy(version, payload)
}

// checksumParams picks the network whose hasher verifies decoded. Unknown
// version bytes are checked with the mainnet hasher so that a corrupt string
// still reports a checksum mismatch.
func checksumParams(decoded []byte) chaincfg.Params {
	if len(decoded) > 0 {
		if p, ok := chaincfg.ByPubKeyHashAddrID(decoded[0]); ok {
			return p
		}
		if p, ok := chaincfg.ByScriptHashAddrID(decoded[0]); ok {
			return p
		}
	}
	return chaincfg.MustGet(chaincfg.Mainnet)
}

func classifyLegacy(version byte, payload []byte) (Classification, error) {
	if len(payload) != hash160Len {
		str := fmt.Sprintf("base58 payload is %d bytes, want %d", len(payload), hash160Len)
		return Classification{}, makeError(ErrUnknownNetworkOrType, str)
	}
	if p, ok := chaincfg.ByPubKeyHashAddrID(version); ok {
		return Classification{Type: P2PKH, Network: p.Name}, nil
	}
	if p, ok := chaincfg.ByScriptHashAddrID(version); ok {
		return Classification{Type: P2SH, Network: p.Name}, nil
	}
	str := fmt.Sprintf("unknown base58 version byte %d", version)
	return Classification{}, makeError(ErrUnknownNetworkOrType, str)
}

// classifyBech32 handles native segwit addresses. Only witness version 0 is
// classified; later versions decode but are rejected.
func classifyBech32(address string) (Classification, error) {
	hrp, prog, err := segwit.DecodeAddress(address)
	if err != nil {
		return Classification{}, err
	}

	p, ok := chaincfg.ByBech32HRP(hrp)
	if !ok {
		str := fmt.Sprintf("unknown segwit prefix %q", hrp)
		return Classification{}, makeError(ErrUnknownNetworkOrType, str)
	}
	if prog.Version != 0 {
		str := fmt.Sprintf("unsupported witness version %d", prog.Version)
		return Classification{}, makeError(ErrUnknownNetworkOrType, str)
	}

	switch len(prog.Program) {
	case segwit.WitnessV0PubKeyHashLen:
		return Classification{Type: P2WPKH, Network: p.Name, Bech32: true}, nil
	case segwit.WitnessV0ScriptHashLen:
		return Classification{Type: P2WSH, Network: p.Name, Bech32: true}, nil
	}
	str := fmt.Sprintf("witness v0 program is %d bytes", len(prog.Program))
	return Classification{}, makeError(ErrUnknownNetworkOrType, str)
}

// hasSegwitPrefix reports whether address starts with a known HRP followed by
// the separator. Such strings are bech32 attempts, so base58 alphabet hints
// would mislead.
func hasSegwitPrefix(address string) bool {
	i := strings.LastIndexByte(address, '1')
	if i < 1 {
		return false
	}
	_, ok := chaincfg.ByBech32HRP(address[:i])
	return ok
}
