package bignum

// Bitwise operators work on the infinite-precision two's-complement view of
// each operand: negative values sign-extend with an implicit run of 1 bits
// rather than being rejected or treated as their magnitude.

// Not returns the bitwise complement of z. In infinite-precision two's
// complement this is always -(z+1), the same identity math/big's Int.Not
// uses, so it needs no magnitude manipulation at all.
func (z BigInt) Not() BigInt {
	return z.Neg().Sub(One)
}

// And returns z & y.
func (z BigInt) And(y BigInt) BigInt { return bitwiseOp(z, y, func(a, b word) word { return a & b }) }

// Or returns z | y.
func (z BigInt) Or(y BigInt) BigInt { return bitwiseOp(z, y, func(a, b word) word { return a | b }) }

// Xor returns z ^ y.
func (z BigInt) Xor(y BigInt) BigInt { return bitwiseOp(z, y, func(a, b word) word { return a ^ b }) }

func bitwiseOp(z, y BigInt, op func(a, b word) word) BigInt {
	zneg, zm := z.decompose()
	yneg, ym := y.decompose()
	n := maxLen(len(zm), len(ym)) + 1
	za := toTwosComplement(zneg, zm, n)
	yb := toTwosComplement(yneg, ym, n)
	out := make([]word, n)
	for i := range out {
		out[i] = op(za[i], yb[i])
	}
	neg, mag := fromTwosComplement(out)
	return normalizeMag(neg, mag)
}

// toTwosComplement materializes the sign+magnitude pair as a little-endian
// two's-complement buffer of exactly length words. Callers choose length
// with at least one word of headroom past the operand's own magnitude so
// the sign bit in the top word is unambiguous.
func toTwosComplement(neg bool, mag []word, length int) []word {
	out := make([]word, length)
	copy(out, mag)
	if !neg {
		return out
	}
	borrow := word(1)
	for i := 0; i < length && borrow != 0; i++ {
		out[i], borrow = subWW(out[i], 0, borrow)
	}
	for i := range out {
		out[i] = ^out[i]
	}
	return out
}

// fromTwosComplement is the inverse of toTwosComplement: it reads the sign
// out of the top word's high bit and, for a negative value, negates back to
// sign+magnitude form.
func fromTwosComplement(bits []word) (neg bool, mag []word) {
	n := len(bits)
	if n == 0 {
		return false, nil
	}
	if bits[n-1]&0x80000000 == 0 {
		out := make([]word, n)
		copy(out, bits)
		return false, trimMag(out)
	}
	out := make([]word, n)
	for i, w := range bits {
		out[i] = ^w
	}
	carry := word(1)
	for i := 0; i < n && carry != 0; i++ {
		out[i], carry = addWW(out[i], 0, carry)
	}
	return true, trimMag(out)
}
