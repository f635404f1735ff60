package base58

// ErrorKind identifies a kind of error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrInvalidCharacter indicates the input contains a character outside
	// the base58 alphabet.
	ErrInvalidCharacter = ErrorKind("ErrInvalidCharacter")

	// ErrTooShort indicates the decoded data cannot hold a version byte and
	// a 4-byte checksum.
	ErrTooShort = ErrorKind("ErrTooShort")

	// ErrChecksumMismatch indicates the trailing 4 bytes do not match the
	// checksum computed over the rest of the data.
	ErrChecksumMismatch = ErrorKind("ErrChecksumMismatch")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a base58 decoding error.
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
