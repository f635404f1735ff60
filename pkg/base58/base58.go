// Package base58 implements the base58 text encoding and the Base58Check
// variant used by legacy Groestlcoin addresses.
package base58

import (
	"fmt"
	"strings"
)

// Alphabet is the base58 alphabet (excludes 0, O, I, l).
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// decodeMap maps an ASCII byte to its base58 digit, 0xff for bytes outside
// the alphabet.
var decodeMap = func() [256]byte {
	var m [256]byte
	for i := range m {
		m[i] = 0xff
	}
	for i := 0; i < len(Alphabet); i++ {
		m[Alphabet[i]] = byte(i)
	}
	return m
}()

// Decode converts a base58 string into the bytes it encodes.
//
// The digits are folded into a little-endian byte accumulator that grows as
// the carry spills over, so inputs of any length decode without overflow.
// Every leading '1' becomes a leading zero byte. The empty string decodes to
// an empty slice.
func Decode(s string) ([]byte, error) {
	zeros := 0
	for zeros < len(s) && s[zeros] == Alphabet[0] {
		zeros++
	}

	acc := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		digit := decodeMap[s[i]]
		if digit == 0xff {
			str := fmt.Sprintf("invalid base58 character %q at position %d", s[i], i)
			return nil, makeError(ErrInvalidCharacter, str)
		}

		carry := uint32(digit)
		for j := range acc {
			carry += uint32(acc[j]) * 58
			acc[j] = byte(carry)
			carry >>= 8
		}
		for carry > 0 {
			acc = append(acc, byte(carry))
			carry >>= 8
		}
	}

	result := make([]byte, zeros+len(acc))
	for i, b := range acc {
		result[len(result)-1-i] = b
	}
	return result, nil
}

// Encode encodes bytes to a base58 string.
func Encode(data []byte) string {
	// Count leading zeros
	zeros := 0
	for zeros < len(data) && data[zeros] == 0 {
		zeros++
	}

	// Little-endian base58 digits of the remaining value
	digits := make([]byte, 0, len(data)*138/100+1)
	for _, b := range data[zeros:] {
		carry := uint32(b)
		for j := range digits {
			carry += uint32(digits[j]) << 8
			digits[j] = byte(carry % 58)
			carry /= 58
		}
		for carry > 0 {
			digits = append(digits, byte(carry%58))
			carry /= 58
		}
	}

	var sb strings.Builder
	sb.Grow(zeros + len(digits))
	for i := 0; i < zeros; i++ {
		sb.WriteByte(Alphabet[0]) // Leading zeros become '1' in Base58
	}
	for i := len(digits) - 1; i >= 0; i-- {
		sb.WriteByte(Alphabet[digits[i]])
	}
	return sb.String()
}

// IsValidChar checks if a character is valid in Base58 encoding.
func IsValidChar(c rune) bool {
	return c < 0x80 && decodeMap[byte(c)] != 0xff
}

// InvalidChars returns any invalid Base58 characters in the input.
// Useful for providing helpful error messages to users.
func InvalidChars(s string) []rune {
	var invalid []rune
	for _, c := range s {
		if !IsValidChar(c) {
			invalid = append(invalid, c)
		}
	}
	return invalid
}
