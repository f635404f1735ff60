package base58

import (
	"bytes"
	"encoding/hex"
	"errors"
	"math/rand"
	"strings"
	"testing"

	mrbase58 "github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stringTests = []struct {
	in  string
	out string
}{
	{"", ""},
	{" ", "Z"},
	{"-", "n"},
	{"0", "q"},
	{"1", "r"},
	{"-1", "4SU"},
	{"11", "4k8"},
	{"abc", "ZiCa"},
	{"1234598760", "3mJr7AoUXx2Wqd"},
	{"abcdefghijklmnopqrstuvwxyz", "3yxU3u1igY8WkgtjK92fbJQCd4BZiiT1v25f"},
	{"Hello World!", "2NEpo7TZRRrLZSi2U"},
}

var hexTests = []struct {
	in  string
	out string
}{
	{"", ""},
	{"61", "2g"},
	{"626262", "a3gV"},
	{"636363", "aPEr"},
	{"73696d706c792061206c6f6e6720737472696e67", "2cFupjhnEsSn59qHXstmK2ffpLv2"},
	{"00eb15231dfceb60925886b67d065299925915aeb172c06647", "1NS17iag9jJgTHD1VXjvLCEnZuQ3rJDE9L"},
	{"516b6fcd0f", "ABnLTmg"},
	{"bf4f89001e670274dd", "3SEo3LWLoPntC"},
	{"572e4794", "3EFU7m"},
	{"ecac89cad93923c02321", "EJDM8drfXA6uyA"},
	{"10c8511e", "Rt5zm"},
	{"00000000000000000000", "1111111111"},
}

func TestEncodeDecodeStrings(t *testing.T) {
	for _, tt := range stringTests {
		t.Run(tt.out, func(t *testing.T) {
			require.Equal(t, tt.out, Encode([]byte(tt.in)))

			decoded, err := Decode(tt.out)
			require.NoError(t, err)
			require.Equal(t, tt.in, string(decoded))
		})
	}
}

func TestEncodeDecodeHex(t *testing.T) {
	for _, tt := range hexTests {
		t.Run(tt.out, func(t *testing.T) {
			raw, err := hex.DecodeString(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.out, Encode(raw))

			decoded, err := Decode(tt.out)
			require.NoError(t, err)
			require.Equal(t, tt.in, hex.EncodeToString(decoded))
		})
	}
}

func TestDecodeEmpty(t *testing.T) {
	decoded, err := Decode("")
	require.NoError(t, err)
	require.NotNil(t, decoded)
	require.Len(t, decoded, 0)
}

func TestDecodeLeadingZeros(t *testing.T) {
	decoded, err := Decode("1112")
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0, 1}, decoded)
}

func TestDecodeInvalidCharacter(t *testing.T) {
	for _, in := range []string{"0", "O", "I", "l", "3mJr0", "abc ", "zzé", "\x00"} {
		_, err := Decode(in)
		require.Error(t, err, in)
		require.True(t, errors.Is(err, ErrInvalidCharacter), in)
	}
}

// TestDecodeLongInput ensures values far beyond 64 bits decode the same way
// as a reference implementation.
func TestDecodeLongInput(t *testing.T) {
	for _, in := range []string{
		strings.Repeat("z", 200),
		"11" + strings.Repeat("2", 120),
		strings.Repeat("3yxU3u1igY8WkgtjK92fbJQCd4BZiiT1v25f", 5),
	} {
		want, err := mrbase58.Decode(in)
		require.NoError(t, err)

		got, err := Decode(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestEncodeMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		data := make([]byte, 1+rng.Intn(64))
		rng.Read(data)
		// Exercise leading zero handling
		if i%4 == 0 {
			data[0] = 0
		}

		encoded := Encode(data)
		assert.Equal(t, mrbase58.Encode(data), encoded)

		decoded, err := Decode(encoded)
		require.NoError(t, err)
		require.True(t, bytes.Equal(data, decoded))
	}
}

func TestInvalidChars(t *testing.T) {
	require.Empty(t, InvalidChars("FqLDjQPjguc5SHwM2RxMbX24fsc8WmQoBA"))
	require.Equal(t, []rune{'0', 'O', 'I', 'l'}, InvalidChars("a0bOcIdl"))
	require.False(t, IsValidChar('é'))
	require.True(t, IsValidChar('z'))
}
