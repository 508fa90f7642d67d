package bignum

import "math"

// Int64 returns z as an int64, or an Overflow error if z does not fit.
func (z BigInt) Int64() (int64, *Error) {
	if z.mag == nil {
		return int64(z.small), nil
	}
	if len(z.mag) > 2 {
		return 0, newError("Int64", Overflow)
	}
	v := uint64(z.mag[0])
	if len(z.mag) == 2 {
		v |= uint64(z.mag[1]) << wordBits
	}
	if z.neg {
		if v > 1<<63 {
			return 0, newError("Int64", Overflow)
		}
		return -int64(v), nil
	}
	if v > math.MaxInt64 {
		return 0, newError("Int64", Overflow)
	}
	return int64(v), nil
}

// Uint64 returns z as a uint64, or an Overflow error if z is negative or
// does not fit.
func (z BigInt) Uint64() (uint64, *Error) {
	if z.IsNegative() {
		return 0, newError("Uint64", Overflow)
	}
	if z.mag == nil {
		return uint64(z.small), nil
	}
	if len(z.mag) > 2 {
		return 0, newError("Uint64", Overflow)
	}
	v := uint64(z.mag[0])
	if len(z.mag) == 2 {
		v |= uint64(z.mag[1]) << wordBits
	}
	return v, nil
}

// Int32 returns z as an int32, or an Overflow error if z does not fit.
func (z BigInt) Int32() (int32, *Error) {
	v, err := z.Int64()
	if err != nil {
		return 0, newError("Int32", Overflow)
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, newError("Int32", Overflow)
	}
	return int32(v), nil
}

// Float64 returns a float64 approximation of z. Values of up to two limbs
// are converted with float64's round-to-nearest; for wider values only the
// top two limbs are converted (rounded to nearest) and scaled, and the
// lower limbs are discarded, so the result is not always the correctly
// rounded nearest float64.
func (z BigInt) Float64() float64 {
	if z.mag == nil {
		return float64(z.small)
	}
	neg, mag := z.decompose()
	n := len(mag)
	var f float64
	if n == 1 {
		f = float64(mag[0])
	} else {
		top := uint64(mag[n-1])<<wordBits | uint64(mag[n-2])
		f = float64(top) * math.Pow(2, float64((n-2)*wordBits))
	}
	if neg {
		f = -f
	}
	return f
}

// FromFloat64 truncates f toward zero and returns the exact integer value
// of its bit pattern. It returns an Overflow error for NaN or Infinity.
func FromFloat64(f float64) (BigInt, *Error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return BigInt{}, newError("FromFloat64", Overflow)
	}
	f = math.Trunc(f)
	if f == 0 {
		return BigInt{}, nil
	}
	neg := f < 0
	if neg {
		f = -f
	}
	mantissa, exp := math.Frexp(f)
	bits := uint64(mantissa * (1 << 53))
	shift := exp - 53

	base := FromUint64(bits)
	switch {
	case shift > 0:
		base = base.Lsh(uint(shift))
	case shift < 0:
		base = base.Rsh(uint(-shift))
	}
	if neg {
		base = base.Neg()
	}
	return base, nil
}
