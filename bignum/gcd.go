package bignum

// GCD computes the greatest common divisor of |z| and |y| via the binary
// (Stein's) algorithm: repeatedly strip common factors of two, then reduce
// the larger operand modulo the smaller using Sub in a loop of shifts
// rather than full division, which keeps every intermediate value's limb
// count shrinking monotonically. The result is always non-negative;
// GCD(0, 0) is defined as 0.
func (z BigInt) GCD(y BigInt) BigInt {
	a := z.Abs()
	b := y.Abs()
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}

	shift := 0
	for a.IsEven() && b.IsEven() {
		a = a.Rsh(1)
		b = b.Rsh(1)
		shift++
	}
	for a.IsEven() {
		a = a.Rsh(1)
	}
	for !b.IsZero() {
		for b.IsEven() {
			b = b.Rsh(1)
		}
		if a.Cmp(b) > 0 {
			a, b = b, a
		}
		b = b.Sub(a)
	}
	return a.Lsh(uint(shift))
}
