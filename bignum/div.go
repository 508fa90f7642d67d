package bignum

// Multi-precision division, grounded on Knuth's Algorithm D (The Art of
// Computer Programming, vol 2, §4.3.1) by way of its Go rendering in
// math/big's nat.divLarge: normalize
// both operands so the divisor's leading limb has its top bit set, guess
// each quotient limb from the top two dividend limbs divided by the top
// divisor limb, multiply-and-subtract that guess across the whole divisor,
// and correct by decrementing the guess (at most twice) when the subtract
// borrows.

// divMagSingle divides x by the single word y, returning the quotient
// (trimmed) and remainder. x is little-endian (x[0] least significant),
// which is exactly the order divWVW walks from its high end down.
func divMagSingle(x []word, y word) (q []word, r word) {
	z := make([]word, len(x))
	r = divWVW(z, 0, x, y)
	return trimMag(z), r
}

// divMag computes the quotient and remainder of x/y for magnitudes with
// len(y) >= 1. Precondition: y is not all zero.
func divMag(x, y []word) (q, r []word) {
	y = trimMag(y)
	if len(y) == 1 {
		qq, rr := divMagSingle(x, y[0])
		if rr == 0 {
			return qq, nil
		}
		return qq, []word{rr}
	}
	if cmpMag(x, y) < 0 {
		return nil, x
	}
	return divMagKnuth(x, y)
}

// divMagKnuth implements Algorithm D for a divisor of two or more limbs.
func divMagKnuth(x, y []word) (q, r []word) {
	n := len(y)
	m := len(x) - n

	shift := uint(leadingZeros32(y[n-1]))
	yNorm := getScratch(n)
	defer putScratch(yNorm)
	shlVU(yNorm, y, shift)
	yNorm = yNorm[:n]

	xNorm := getScratch(len(x) + 1)
	defer putScratch(xNorm)
	carry := shlVU(xNorm[:len(x)], x, shift)
	xNorm[len(x)] = carry
	xNorm = xNorm[:len(x)+1]

	qq := make([]word, m+1)

	for j := m; j >= 0; j-- {
		var qhat, rhat word
		top2 := xNorm[j+n]
		if top2 == yNorm[n-1] {
			qhat = wordMax
		} else {
			qhat, rhat = divWW(top2, xNorm[j+n-1], yNorm[n-1])
			for overEstimates(qhat, rhat, yNorm[n-2], xNorm[j+n-2]) {
				qhat--
				rhat += yNorm[n-1]
				if rhat < yNorm[n-1] {
					break // rhat overflowed past a word; qhat is now safe
				}
			}
		}

		borrow := subMulVVW(xNorm[j:j+n], yNorm, qhat)
		xNorm[j+n], borrow = subWW(xNorm[j+n], borrow, 0)
		if borrow != 0 {
			qhat--
			c := addVV(xNorm[j:j+n], xNorm[j:j+n], yNorm)
			xNorm[j+n] += c
		}
		qq[j] = qhat
	}

	rNorm := xNorm[:n]
	rRaw := make([]word, n)
	shrVU(rRaw, rNorm, shift)

	return trimMag(qq), trimMag(rRaw)
}

// overEstimates reports whether the trial quotient digit qhat (with partial
// remainder rhat) is too large by testing qhat*yNext against the next pair
// of dividend/remainder limbs, per Algorithm D step D3's correction test.
func overEstimates(qhat, rhat, yNext, xNext word) bool {
	hi, lo := mulWW(qhat, yNext)
	if hi != rhat {
		return hi > rhat
	}
	return lo > xNext
}

// DivRem returns the quotient and remainder of z/y, truncated toward zero
// (Go/Knuth convention: Sign(r) == Sign(z) or r == 0), satisfying
// z == q*y + r. Returns a DivideByZero error if y is zero.
func (z BigInt) DivRem(y BigInt) (q, r BigInt, err *Error) {
	if y.IsZero() {
		return BigInt{}, BigInt{}, newError("DivRem", DivideByZero)
	}
	if z.mag == nil && y.mag == nil && y.small != -1 {
		qv := int32(int64(z.small) / int64(y.small))
		rv := int32(int64(z.small) % int64(y.small))
		return BigInt{small: qv}, BigInt{small: rv}, nil
	}
	zn, zm := z.decompose()
	yn, ym := y.decompose()
	if cmpMag(zm, ym) < 0 {
		return BigInt{}, z, nil
	}
	qMag, rMag := divMag(zm, ym)
	q = normalizeMag(zn != yn, qMag)
	r = normalizeMag(zn, rMag)
	return q, r, nil
}

// Div returns the truncating quotient of z/y.
func (z BigInt) Div(y BigInt) (BigInt, *Error) {
	q, _, err := z.DivRem(y)
	return q, err
}

// Mod returns the truncating remainder of z/y (same sign as z, or zero).
func (z BigInt) Mod(y BigInt) (BigInt, *Error) {
	_, r, err := z.DivRem(y)
	return r, err
}
