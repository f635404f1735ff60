// Package validator checks Groestlcoin addresses and reports their type and
// network.
//
// The entry points never panic and never log. Every failure, whatever its
// cause, is reported as false; Classify exposes the reason.
package validator

import (
	"github.com/Amr-9/GrsValidator/pkg/chaincfg"
)

// Validate reports whether address is a valid Groestlcoin address on any
// supported network, and if so what it is.
func Validate(address string) (Classification, bool) {
	c, err := Classify(address)
	if err != nil {
		return Classification{}, false
	}
	return c, true
}

// ValidateNetwork reports whether address is valid and belongs to network.
func ValidateNetwork(address string, network chaincfg.Network) bool {
	c, ok := Validate(address)
	return ok && c.Network == network
}

// ValidateValue is Validate for untyped input such as decoded JSON. Anything
// other than a string or a non-nil *string is invalid.
func ValidateValue(v any) (Classification, bool) {
	s, ok := AsString(v)
	if !ok {
		return Classification{}, false
	}
	return Validate(s)
}

// AsString unwraps the inputs ValidateValue accepts: a string or a non-nil
// *string.
func AsString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case *string:
		if s == nil {
			return "", false
		}
		return *s, true
	}
	return "", false
}
