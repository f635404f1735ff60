package bech32

// ErrorKind identifies a kind of error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrMixedCase indicates the string mixes upper and lower case letters.
	ErrMixedCase = ErrorKind("ErrMixedCase")

	// ErrBadSeparator indicates the separator is missing, the human-readable
	// part is empty, or fewer than 6 characters follow the separator.
	ErrBadSeparator = ErrorKind("ErrBadSeparator")

	// ErrLengthOutOfRange indicates the total length is outside [8, 90].
	ErrLengthOutOfRange = ErrorKind("ErrLengthOutOfRange")

	// ErrInvalidCharacter indicates a character outside the printable ASCII
	// range or, in the data part, outside the 32-symbol charset.
	ErrInvalidCharacter = ErrorKind("ErrInvalidCharacter")

	// ErrChecksumMismatch indicates the polymod matches neither the bech32
	// nor the bech32m constant.
	ErrChecksumMismatch = ErrorKind("ErrChecksumMismatch")

	// ErrInvalidWord indicates a data value does not fit the source group
	// width.
	ErrInvalidWord = ErrorKind("ErrInvalidWord")

	// ErrInvalidBitGroups indicates a group width outside [1, 8].
	ErrInvalidBitGroups = ErrorKind("ErrInvalidBitGroups")

	// ErrPadding indicates leftover bits after regrouping are non-zero or
	// span a whole source group.
	ErrPadding = ErrorKind("ErrPadding")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a bech32 encoding or decoding error.
//
// It has full support for errors.Is and errors.As, so the caller can ascertain
// the specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
