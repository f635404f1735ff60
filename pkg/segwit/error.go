package segwit

// ErrorKind identifies a kind of error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrInvalidWitnessVersion indicates a witness version outside [0, 16]
	// or a data part with no version word at all.
	ErrInvalidWitnessVersion = ErrorKind("ErrInvalidWitnessVersion")

	// ErrPadding indicates the program words do not regroup into whole
	// bytes.
	ErrPadding = ErrorKind("ErrPadding")

	// ErrInvalidProgramLength indicates a program outside [2, 40] bytes or a
	// version 0 program that is neither 20 nor 32 bytes.
	ErrInvalidProgramLength = ErrorKind("ErrInvalidProgramLength")

	// ErrChecksumVariant indicates the checksum variant does not match the
	// witness version.
	ErrChecksumVariant = ErrorKind("ErrChecksumVariant")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a witness program error.
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
