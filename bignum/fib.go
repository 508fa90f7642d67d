package bignum

import "math/bits"

// Fib computes the n-th Fibonacci number (F(0)=0, F(1)=1) using fast
// doubling, which needs only O(log n) big-integer multiplications instead
// of the O(n) additions a naive iterative approach would require.
//
// Uses the identities:
//
//	F(2k)   = F(k) * (2*F(k+1) - F(k))
//	F(2k+1) = F(k+1)² + F(k)²
func Fib(n uint64) BigInt {
	if n == 0 {
		return FromInt64(0)
	}

	fk := FromInt64(0)  // F(k)
	fk1 := FromInt64(1) // F(k+1)

	numBits := bits.Len64(n)
	for i := numBits - 1; i >= 0; i-- {
		t1 := fk1.Lsh(1).Sub(fk).Mul(fk) // F(k)*(2F(k+1)-F(k))
		t2 := fk1.Mul(fk1).Add(fk.Mul(fk))

		fk, fk1 = t1, t2

		if (n>>uint(i))&1 == 1 {
			fk, fk1 = fk1, fk.Add(fk1)
		}
	}

	return fk
}

// FibMod computes F(n) mod m using the same fast-doubling recurrence,
// reducing after every step so memory usage stays proportional to the size
// of m regardless of how large n is.
func FibMod(n uint64, m BigInt) (BigInt, *Error) {
	if m.Sign() <= 0 {
		return BigInt{}, newError("FibMod", InvalidArgument)
	}
	if n == 0 {
		return FromInt64(0), nil
	}

	reduce := func(z BigInt) (BigInt, *Error) {
		r, err := z.Mod(m)
		if err != nil {
			return BigInt{}, err
		}
		if r.IsNegative() {
			r = r.Add(m)
		}
		return r, nil
	}

	fk := FromInt64(0)
	fk1 := FromInt64(1)

	numBits := bits.Len64(n)
	for i := numBits - 1; i >= 0; i-- {
		a, err := reduce(fk1.Lsh(1).Sub(fk))
		if err != nil {
			return BigInt{}, err
		}
		t1, err := reduce(a.Mul(fk))
		if err != nil {
			return BigInt{}, err
		}

		t2, err := reduce(fk1.Mul(fk1).Add(fk.Mul(fk)))
		if err != nil {
			return BigInt{}, err
		}

		fk, fk1 = t1, t2

		if (n>>uint(i))&1 == 1 {
			sum, err := reduce(fk.Add(fk1))
			if err != nil {
				return BigInt{}, err
			}
			fk, fk1 = fk1, sum
		}
	}

	return fk, nil
}
