package chaincfg

import (
	"github.com/Groestlcoin/go-groestl-hash/groestl"
)

// Groestl512D returns the double Groestl-512 digest of b. Groestlcoin uses it
// in place of double SHA-256 for the Base58Check checksum.
func Groestl512D(b []byte) []byte {
	var h1, h2 [64]byte
	g := groestl.New()
	g.Write(b)
	g.Close(h1[:], 0, 0) // Close resets the digest
	g.Write(h1[:])
	g.Close(h2[:], 0, 0)
	return h2[:]
}
