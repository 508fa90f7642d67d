package bignum

import "math"

// mulMagBasecase computes a*b with the classic O(n*m) nested-loop schoolbook
// algorithm. len(result) == len(a)+len(b) (untrimmed; callers trim). The
// inner accumulator never overflows 64 bits: z[i+j] + a[j]*b[i] + carry <=
// 2*(2^32-1) + (2^32-1)^2 == 2^64-1.
func mulMagBasecase(a, b []word) []word {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	z := make([]word, len(a)+len(b))
	for i, bi := range b {
		if bi == 0 {
			continue
		}
		carry := addMulVVW(z[i:i+len(a)], a, bi)
		z[i+len(a)] = carry
	}
	return z
}

// sqrMagBasecase computes a*a. It exploits a_i*a_j == a_j*a_i by summing only
// the off-diagonal terms once (the upper triangle), doubling that sum with a
// single left-shift-by-one pass, and then adding the diagonal terms a_i^2.
// This sidesteps the overflow hazard a naive "2*a_j*a_i" term would create in
// a 64-bit accumulator
// by never forming 2*a_j*a_i directly: the doubling happens once, on the
// fully-accumulated triangular sum, via shlVU's carry-threaded shift.
func sqrMagBasecase(a []word) []word {
	n := len(a)
	if n == 0 {
		return nil
	}
	z := make([]word, 2*n)

	// Upper triangle: for each i, accumulate a[i]*a[j] for j>i at position i+j.
	for i := 0; i < n-1; i++ {
		ai := a[i]
		if ai == 0 {
			continue
		}
		rest := a[i+1:]
		carry := addMulVVW(z[2*i+1:2*i+1+len(rest)], rest, ai)
		k := 2*i + 1 + len(rest)
		for carry != 0 && k < len(z) {
			z[k], carry = addWW(z[k], 0, carry)
			k++
		}
	}

	// Double: z <<= 1. The result fits in len(z) == 2n words because the
	// doubled triangle is at most a^2 < 2^(64*n), so the shift-out carry is
	// always 0 here; we still check it defensively.
	shiftOut := shlVU(z, z, 1)
	if shiftOut != 0 {
		invariantViolation("sqrMagBasecase: triangular sum overflowed its buffer")
	}

	// Diagonal: add a[i]^2 at position 2*i.
	for i, ai := range a {
		hi, lo := mulWW(ai, ai)
		s0, c0 := addWW(z[2*i], lo, 0)
		z[2*i] = s0
		s1, c1 := addWW(z[2*i+1], hi, c0)
		z[2*i+1] = s1
		k := 2*i + 2
		carry := c1
		for carry != 0 && k < len(z) {
			z[k], carry = addWW(z[k], 0, carry)
			k++
		}
	}

	return z
}

// Mul returns z*y.
func (z BigInt) Mul(y BigInt) BigInt {
	if z.mag == nil && y.mag == nil {
		p := int64(z.small) * int64(y.small)
		if p > math.MinInt32 && p <= math.MaxInt32 {
			return BigInt{small: int32(p)}
		}
		return fromInt64OrBig(p, z.small, y.small)
	}
	if z.IsZero() || y.IsZero() {
		return BigInt{}
	}
	zn, zm := z.decompose()
	yn, ym := y.decompose()
	neg := zn != yn
	return normalizeMag(neg, mulMag(zm, ym))
}

// fromInt64OrBig handles the case where two Inline operands multiply to a
// product outside int64's inline-fast-path-but-still-int64 range; since both
// factors fit in int32, the 64-bit product p is always exact, so this is
// just fromInt64 — kept as a named seam in case a future widening (e.g. to
// support Inline64) needs to intervene here.
func fromInt64OrBig(p int64, _, _ int32) BigInt {
	return fromInt64(p)
}

// Square returns z*z. It is equivalent to z.Mul(z) but can exploit the
// squaring identity in both the basecase and Karatsuba paths.
func (z BigInt) Square() BigInt {
	if z.mag == nil {
		p := int64(z.small) * int64(z.small)
		if p > math.MinInt32 && p <= math.MaxInt32 {
			return BigInt{small: int32(p)}
		}
		return fromInt64(p)
	}
	if z.IsZero() {
		return BigInt{}
	}
	_, zm := z.decompose()
	return normalizeMag(false, sqrMag(zm))
}

// mulMag dispatches big×big multiplication to the Karatsuba engine, which
// itself falls back to the schoolbook basecase below the configured
// threshold.
func mulMag(a, b []word) []word {
	return karatsubaMul(a, b, 0)
}

// sqrMag dispatches squaring the same way Mul dispatches multiplication.
func sqrMag(a []word) []word {
	return karatsubaSqr(a, 0)
}
