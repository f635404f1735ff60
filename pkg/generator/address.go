package generator

import (
	"crypto/sha256"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"golang.org/x/crypto/ripemd160"

	"github.com/Amr-9/GrsValidator/pkg/base58"
	"github.com/Amr-9/GrsValidator/pkg/chaincfg"
	"github.com/Amr-9/GrsValidator/pkg/segwit"
)

// Script opcodes used by the derived scripts.
const (
	op0             = 0x00
	op1             = 0x51
	opData20        = 0x14
	opData33        = 0x21
	opCheckMultiSig = 0xae
)

// DeriveAddress derives an address of the given kind from a public key.
func DeriveAddress(pubKey *btcec.PublicKey, kind Kind, params chaincfg.Params) (string, error) {
	switch kind {
	case KindP2PKH:
		return deriveLegacyAddress(pubKey, params), nil
	case KindP2SHP2WPKH:
		return deriveNestedSegWitAddress(pubKey, params), nil
	case KindP2WPKH:
		return segwit.Encode(params.Bech32HRPSegwit, 0, hash160(pubKey.SerializeCompressed()))
	case KindP2WSH:
		program := sha256.Sum256(multiSigScript(pubKey))
		return segwit.Encode(params.Bech32HRPSegwit, 0, program[:])
	default:
		return "", fmt.Errorf("unknown address kind %d", kind)
	}
}

// deriveLegacyAddress creates a P2PKH address.
// Address = Base58Check(PubKeyHashAddrID + HASH160(pubkey))
func deriveLegacyAddress(pubKey *btcec.PublicKey, params chaincfg.Params) string {
	pubKeyHash := hash160(pubKey.SerializeCompressed())
	return base58.CheckEncode(pubKeyHash, params.PubKeyHashAddrID, params.Base58CksumHasher)
}

// deriveNestedSegWitAddress creates a P2SH-P2WPKH address.
// Address = Base58Check(ScriptHashAddrID + HASH160(0x0014 + HASH160(pubkey)))
func deriveNestedSegWitAddress(pubKey *btcec.PublicKey, params chaincfg.Params) string {
	pubKeyHash := hash160(pubKey.SerializeCompressed())

	// OP_0 <20-byte key hash>
	witnessProgram := make([]byte, 0, 22)
	witnessProgram = append(witnessProgram, op0, opData20)
	witnessProgram = append(witnessProgram, pubKeyHash...)

	scriptHash := hash160(witnessProgram)
	return base58.CheckEncode(scriptHash, params.ScriptHashAddrID, params.Base58CksumHasher)
}

// multiSigScript builds OP_1 <pubkey> OP_1 OP_CHECKMULTISIG.
func multiSigScript(pubKey *btcec.PublicKey) []byte {
	script := make([]byte, 0, 37)
	script = append(script, op1, opData33)
	script = append(script, pubKey.SerializeCompressed()...)
	return append(script, op1, opCheckMultiSig)
}

// hash160 computes RIPEMD160(SHA256(data))
func hash160(data []byte) []byte {
	sha := sha256.Sum256(data)
	ripemd := ripemd160.New()
	ripemd.Write(sha[:])
	return ripemd.Sum(nil)
}
