//go:build !bignum_debug

package bignum

// assertValid is a no-op in production builds. Build with -tags bignum_debug
// to enable the invariant checks in debug_check.go, this file's
// bignum_debug-tagged counterpart.
func assertValid(BigInt) {}
