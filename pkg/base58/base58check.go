package base58

import (
	"bytes"
	"fmt"
)

// ChecksumLen is the number of checksum bytes appended by CheckEncode.
const ChecksumLen = 4

// ChecksumHasher computes the digest whose first ChecksumLen bytes form a
// Base58Check checksum. Groestlcoin uses double Groestl-512, Bitcoin uses
// double SHA-256.
type ChecksumHasher func([]byte) []byte

func checksum(data []byte, hasher ChecksumHasher) []byte {
	return hasher(data)[:ChecksumLen]
}

// CheckEncode prepends the version byte, appends a 4-byte checksum and
// encodes the result in base58.
func CheckEncode(payload []byte, version byte, hasher ChecksumHasher) string {
	data := make([]byte, 0, 1+len(payload)+ChecksumLen)
	data = append(data, version)
	data = append(data, payload...)
	data = append(data, checksum(data, hasher)...)
	return Encode(data)
}

// CheckDecode decodes a Base58Check string and verifies its checksum,
// returning the version byte and the payload that follows it.
func CheckDecode(s string, hasher ChecksumHasher) (byte, []byte, error) {
	decoded, err := Decode(s)
	if err != nil {
		return 0, nil, err
	}
	return VerifyChecksum(decoded, hasher)
}

// VerifyChecksum splits already decoded Base58Check bytes into version,
// payload and checksum, and verifies the checksum with a single call to
// hasher.
func VerifyChecksum(decoded []byte, hasher ChecksumHasher) (byte, []byte, error) {
	if len(decoded) < 1+ChecksumLen {
		str := fmt.Sprintf("decoded length %d is less than the minimum of %d",
			len(decoded), 1+ChecksumLen)
		return 0, nil, makeError(ErrTooShort, str)
	}

	data := decoded[:len(decoded)-ChecksumLen]
	cksum := decoded[len(decoded)-ChecksumLen:]
	if !bytes.Equal(checksum(data, hasher), cksum) {
		return 0, nil, makeError(ErrChecksumMismatch, "checksum mismatch")
	}
	return data[0], data[1:], nil
}
