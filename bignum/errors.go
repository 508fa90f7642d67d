package bignum

import "fmt"

// ErrorKind classifies the structured errors this package returns. All three
// kinds are reported synchronously as returned errors, never as log output;
// there is no retry and no partial success.
type ErrorKind int

const (
	// DivideByZero is returned by Div, Mod, DivRem and ModPow (with m==0).
	DivideByZero ErrorKind = iota
	// Overflow is returned by conversions that cannot represent the value
	// in the target type, by ExportUnsigned and ExportUnsignedLittleEndian
	// on a negative value, and by FromFloat64 on a non-finite input.
	Overflow
	// InvalidArgument is returned by Pow and ModPow for a negative
	// exponent, and is the kind Log would use if it had an error return
	// instead of following float64's NaN convention for a non-positive
	// argument.
	InvalidArgument
)

func (k ErrorKind) String() string {
	switch k {
	case DivideByZero:
		return "divide by zero"
	case Overflow:
		return "overflow"
	case InvalidArgument:
		return "invalid argument"
	default:
		return "unknown error"
	}
}

// Error is the structured error type returned by every fallible operation in
// this package. Op names the operation that failed (e.g. "DivRem",
// "ExportUnsigned"),
// and Kind classifies why.
type Error struct {
	Op   string
	Kind ErrorKind
}

func (e *Error) Error() string {
	return fmt.Sprintf("bignum: %s: %s", e.Op, e.Kind)
}

func newError(op string, kind ErrorKind) *Error {
	return &Error{Op: op, Kind: kind}
}

// invariantViolation panics with a message identifying which invariant
// failed. Called from assertValid (itself compiled to a no-op unless built
// with the bignum_debug tag — see debug.go) and from defensive checks in
// production code such as sqrMagBasecase's overflow check in mul.go.
func invariantViolation(reason string) {
	panic("bignum: invariant violation: " + reason)
}
