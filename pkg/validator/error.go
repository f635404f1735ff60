package validator

// ErrorKind identifies a kind of error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrMalformedAddress indicates the input is neither a Base58Check nor a
	// segwit address. The wrapped error carries the decoder failures.
	ErrMalformedAddress = ErrorKind("ErrMalformedAddress")

	// ErrUnknownNetworkOrType indicates the address decoded but its version
	// byte, prefix, witness version or payload size matches no supported
	// network and type.
	ErrUnknownNetworkOrType = ErrorKind("ErrUnknownNetworkOrType")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an address validation error.
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
