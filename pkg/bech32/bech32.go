// Package bech32 implements the bech32 and bech32m encodings used by segwit
// addresses.
package bech32

import (
	"fmt"
	"strings"
)

// Charset is the 32-symbol data alphabet (excludes 1, b, i, o).
const Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

const (
	// MinLength and MaxLength bound the total string length.
	MinLength = 8
	MaxLength = 90

	// Separator splits the human-readable part from the data part.
	Separator = '1'

	checksumLength = 6
)

// Version identifies the checksum constant a string was encoded with.
type Version int

const (
	// Version0 is the original bech32 checksum (BIP-173), used by witness
	// version 0.
	Version0 Version = iota

	// VersionM is the bech32m checksum (BIP-350), used by witness versions
	// 1 through 16.
	VersionM
)

// String returns the variant name.
func (v Version) String() string {
	switch v {
	case Version0:
		return "bech32"
	case VersionM:
		return "bech32m"
	default:
		return "unknown"
	}
}

// checksumConst returns the polymod residue for the variant.
func (v Version) checksumConst() uint32 {
	if v == VersionM {
		return 0x2bc830a3
	}
	return 1
}

var charsetRev = func() [128]byte {
	var rev [128]byte
	for i := range rev {
		rev[i] = 0xff
	}
	for i := 0; i < len(Charset); i++ {
		rev[Charset[i]] = byte(i)
	}
	return rev
}()

var gen = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

func polymod(values []byte) uint32 {
	chk := uint32(1)
	for _, v := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (top>>uint(i))&1 == 1 {
				chk ^= gen[i]
			}
		}
	}
	return chk
}

// hrpExpand splits each hrp character into its high and low bits.
func hrpExpand(hrp string) []byte {
	out := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]>>5)
	}
	out = append(out, 0)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]&31)
	}
	return out
}

// Decode decodes a bech32 or bech32m string into its lowercase
// human-readable part and 5-bit data words with the checksum removed. The
// returned Version reports which checksum constant matched.
func Decode(bech string) (string, []byte, Version, error) {
	var hasLower, hasUpper bool
	for i := 0; i < len(bech); i++ {
		c := bech[i]
		if c < 33 || c > 126 {
			str := fmt.Sprintf("invalid character %q at position %d", c, i)
			return "", nil, 0, makeError(ErrInvalidCharacter, str)
		}
		hasLower = hasLower || (c >= 'a' && c <= 'z')
		hasUpper = hasUpper || (c >= 'A' && c <= 'Z')
	}
	if hasLower && hasUpper {
		return "", nil, 0, makeError(ErrMixedCase, "string mixes upper and lower case")
	}
	bech = strings.ToLower(bech)

	pos := strings.LastIndexByte(bech, Separator)
	if pos < 1 || pos+checksumLength+1 > len(bech) {
		str := fmt.Sprintf("invalid separator index %d", pos)
		return "", nil, 0, makeError(ErrBadSeparator, str)
	}

	if len(bech) < MinLength || len(bech) > MaxLength {
		str := fmt.Sprintf("length %d outside [%d, %d]", len(bech), MinLength, MaxLength)
		return "", nil, 0, makeError(ErrLengthOutOfRange, str)
	}

	hrp := bech[:pos]
	dataPart := bech[pos+1:]
	data := make([]byte, len(dataPart))
	for i := 0; i < len(dataPart); i++ {
		c := dataPart[i]
		v := charsetRev[c&0x7f]
		if v == 0xff {
			str := fmt.Sprintf("invalid data character %q at position %d", c, pos+1+i)
			return "", nil, 0, makeError(ErrInvalidCharacter, str)
		}
		data[i] = v
	}

	var version Version
	switch polymod(append(hrpExpand(hrp), data...)) {
	case Version0.checksumConst():
		version = Version0
	case VersionM.checksumConst():
		version = VersionM
	default:
		return "", nil, 0, makeError(ErrChecksumMismatch, "invalid checksum")
	}

	return hrp, data[:len(data)-checksumLength], version, nil
}

func createChecksum(hrp string, data []byte, version Version) []byte {
	values := append(hrpExpand(hrp), data...)
	values = append(values, make([]byte, checksumLength)...)
	mod := polymod(values) ^ version.checksumConst()

	cksum := make([]byte, checksumLength)
	for i := range cksum {
		cksum[i] = byte((mod >> uint(5*(5-i))) & 31)
	}
	return cksum
}

func encode(hrp string, data []byte, version Version) (string, error) {
	if hrp == "" {
		return "", makeError(ErrBadSeparator, "empty human-readable part")
	}
	hrp = strings.ToLower(hrp)
	for i := 0; i < len(hrp); i++ {
		if hrp[i] < 33 || hrp[i] > 126 {
			str := fmt.Sprintf("invalid hrp character %q", hrp[i])
			return "", makeError(ErrInvalidCharacter, str)
		}
	}

	total := len(hrp) + 1 + len(data) + checksumLength
	if total > MaxLength {
		str := fmt.Sprintf("encoded length %d exceeds %d", total, MaxLength)
		return "", makeError(ErrLengthOutOfRange, str)
	}

	var sb strings.Builder
	sb.Grow(total)
	sb.WriteString(hrp)
	sb.WriteByte(Separator)
	for _, w := range data {
		if w >= 32 {
			str := fmt.Sprintf("data word %d does not fit 5 bits", w)
			return "", makeError(ErrInvalidWord, str)
		}
		sb.WriteByte(Charset[w])
	}
	for _, w := range createChecksum(hrp, data, version) {
		sb.WriteByte(Charset[w])
	}
	return sb.String(), nil
}

// Encode encodes 5-bit data words with the bech32 checksum.
func Encode(hrp string, data []byte) (string, error) {
	return encode(hrp, data, Version0)
}

// EncodeM encodes 5-bit data words with the bech32m checksum.
func EncodeM(hrp string, data []byte) (string, error) {
	return encode(hrp, data, VersionM)
}

// ConvertBits regroups a sequence of fromBits-wide values into toBits-wide
// values, most significant bit first. With pad set, a trailing partial group
// is zero padded; without it, any leftover bits must be zero and shorter
// than one source group.
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) ([]byte, error) {
	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		return nil, makeError(ErrInvalidBitGroups, "group widths must be in [1, 8]")
	}

	var acc uint32
	var bits uint8
	maxv := uint32(1)<<toBits - 1
	ret := make([]byte, 0, len(data)*int(fromBits)/int(toBits)+1)
	for _, value := range data {
		if uint32(value)>>fromBits != 0 {
			str := fmt.Sprintf("value %d does not fit %d bits", value, fromBits)
			return nil, makeError(ErrInvalidWord, str)
		}
		acc = acc<<fromBits | uint32(value)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			ret = append(ret, byte(acc>>bits&maxv))
		}
	}

	if pad {
		if bits > 0 {
			ret = append(ret, byte(acc<<(toBits-bits)&maxv))
		}
	} else if bits >= fromBits {
		return nil, makeError(ErrPadding, "too many leftover bits")
	} else if acc<<(toBits-bits)&maxv != 0 {
		return nil, makeError(ErrPadding, "non-zero padding")
	}
	return ret, nil
}
