package bignum

// ModPow returns z**e mod m, reducing after every squaring and every
// multiply-in so intermediate values never grow past roughly twice the
// modulus's width regardless of how large e is. The exponent is itself a
// BigInt, unlike Pow's int exponent, because modular exponentiation is the
// operation that needs to support cryptographic-scale exponents.
//
// The result's sign is negative iff z is negative and e is odd (and the
// result is nonzero), matching ((z mod m)^e) mod m under the truncated
// division sign convention used elsewhere in this package; its magnitude
// is always in [0, |m|). It returns a DivideByZero error if m is zero and
// an InvalidArgument error if e is negative (no modular inverse support in
// this package).
func (z BigInt) ModPow(e, m BigInt) (BigInt, *Error) {
	if m.IsZero() {
		return BigInt{}, newError("ModPow", DivideByZero)
	}
	if e.IsNegative() {
		return BigInt{}, newError("ModPow", InvalidArgument)
	}
	mod := m.Abs()
	if mod.Cmp(One) == 0 {
		return BigInt{}, nil
	}

	base, _ := z.Mod(mod)
	if base.IsNegative() {
		base = base.Add(mod)
	}

	result := One
	for exp := e; !exp.IsZero(); exp = exp.Rsh(1) {
		if !exp.IsEven() {
			result, _ = result.Mul(base).Mod(mod)
		}
		base, _ = base.Square().Mod(mod)
	}

	if z.IsNegative() && !e.IsEven() && !result.IsZero() {
		result = result.Sub(mod)
	}
	return result, nil
}
