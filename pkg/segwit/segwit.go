// Package segwit decodes and encodes segregated witness programs carried in
// bech32/bech32m address strings.
package segwit

import (
	"fmt"

	"github.com/Amr-9/GrsValidator/pkg/bech32"
)

const (
	// MaxWitnessVersion is the highest witness version an address may carry.
	MaxWitnessVersion = 16

	MinProgramLen = 2
	MaxProgramLen = 40

	// Version 0 program sizes: pubkey hash and script hash.
	WitnessV0PubKeyHashLen = 20
	WitnessV0ScriptHashLen = 32
)

// Program is a decoded witness program.
type Program struct {
	Version byte
	Program []byte
}

// checksumFor returns the checksum variant required for a witness version.
func checksumFor(version byte) bech32.Version {
	if version == 0 {
		return bech32.Version0
	}
	return bech32.VersionM
}

// Decode extracts the witness version and program from the 5-bit data words
// returned by bech32.Decode. variant is the checksum variant the string was
// encoded with; it must match the witness version.
func Decode(words []byte, variant bech32.Version) (*Program, error) {
	if len(words) == 0 {
		return nil, makeError(ErrInvalidWitnessVersion, "missing witness version")
	}

	version := words[0]
	if version > MaxWitnessVersion {
		str := fmt.Sprintf("witness version %d exceeds %d", version, MaxWitnessVersion)
		return nil, makeError(ErrInvalidWitnessVersion, str)
	}

	program, err := bech32.ConvertBits(words[1:], 5, 8, false)
	if err != nil {
		return nil, Error{Err: ErrPadding, Description: err.Error()}
	}

	if len(program) < MinProgramLen || len(program) > MaxProgramLen {
		str := fmt.Sprintf("program length %d outside [%d, %d]", len(program),
			MinProgramLen, MaxProgramLen)
		return nil, makeError(ErrInvalidProgramLength, str)
	}
	if version == 0 && len(program) != WitnessV0PubKeyHashLen &&
		len(program) != WitnessV0ScriptHashLen {

		str := fmt.Sprintf("version 0 program length %d is neither %d nor %d",
			len(program), WitnessV0PubKeyHashLen, WitnessV0ScriptHashLen)
		return nil, makeError(ErrInvalidProgramLength, str)
	}

	if want := checksumFor(version); variant != want {
		str := fmt.Sprintf("witness version %d requires %s, got %s", version, want, variant)
		return nil, makeError(ErrChecksumVariant, str)
	}

	return &Program{Version: version, Program: program}, nil
}

// DecodeAddress decodes a segwit address string into its human-readable part
// and witness program.
func DecodeAddress(addr string) (string, *Program, error) {
	hrp, words, variant, err := bech32.Decode(addr)
	if err != nil {
		return "", nil, err
	}
	prog, err := Decode(words, variant)
	if err != nil {
		return "", nil, err
	}
	return hrp, prog, nil
}

// Encode builds a segwit address, picking bech32 for version 0 and bech32m
// for later versions. The result is checked by decoding it again.
func Encode(hrp string, version byte, program []byte) (string, error) {
	if version > MaxWitnessVersion {
		str := fmt.Sprintf("witness version %d exceeds %d", version, MaxWitnessVersion)
		return "", makeError(ErrInvalidWitnessVersion, str)
	}

	conv, err := bech32.ConvertBits(program, 8, 5, true)
	if err != nil {
		return "", err
	}
	words := append([]byte{version}, conv...)

	var addr string
	if checksumFor(version) == bech32.Version0 {
		addr, err = bech32.Encode(hrp, words)
	} else {
		addr, err = bech32.EncodeM(hrp, words)
	}
	if err != nil {
		return "", err
	}

	if _, _, err := DecodeAddress(addr); err != nil {
		return "", err
	}
	return addr, nil
}
