package generator

import (
	"crypto/rand"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/Amr-9/GrsValidator/pkg/base58"
	"github.com/Amr-9/GrsValidator/pkg/chaincfg"
)

// compressMagic marks a WIF key whose public key is serialized compressed.
const compressMagic = 0x01

// GenerateKeyPair generates a new random secp256k1 key pair.
func GenerateKeyPair() (*btcec.PrivateKey, *btcec.PublicKey, error) {
	var privKeyBytes [32]byte
	if _, err := rand.Read(privKeyBytes[:]); err != nil {
		return nil, nil, err
	}

	privKey, pubKey := btcec.PrivKeyFromBytes(privKeyBytes[:])
	return privKey, pubKey, nil
}

// PrivateKeyToWIF converts a private key to Wallet Import Format for the
// network, flagged for a compressed public key.
func PrivateKeyToWIF(privKey *btcec.PrivateKey, params chaincfg.Params) string {
	// WIF = Base58Check(PrivateKeyID + privKey + 0x01)
	data := make([]byte, 33)
	copy(data, privKey.Serialize())
	data[32] = compressMagic

	return base58.CheckEncode(data, params.PrivateKeyID, params.Base58CksumHasher)
}
