//go:build bignum_debug

package bignum

// assertValid checks every construction invariant and panics (via
// invariantViolation) on the first one that fails. It is only compiled into
// debug/test builds (-tags bignum_debug); production builds use the no-op in
// debug.go so this check never runs in the hot path.
func assertValid(z BigInt) {
	if z.mag == nil {
		if z.small == -1<<31 {
			invariantViolation("Inline form stores math.MinInt32")
		}
		return
	}
	if len(z.mag) == 0 {
		invariantViolation("Extended form has empty magnitude")
	}
	if z.mag[len(z.mag)-1] == 0 {
		invariantViolation("Extended form has a leading zero limb")
	}
	if len(z.mag) == 1 {
		m0 := z.mag[0]
		if m0 < 0x80000000 {
			invariantViolation("single-limb Extended value should have been Inline")
		}
		if !z.neg && m0 == 0x80000000 {
			// +2^31 is legitimately Extended (it exceeds math.MaxInt32),
			// nothing to check here beyond the leading-zero-limb check above.
			return
		}
	}
}
