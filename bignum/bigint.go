package bignum

import "math"

// BigInt is an arbitrary-precision signed integer. The zero value of BigInt
// is the integer 0, so a BigInt is usable without any constructor call.
//
// A BigInt stores itself one of two ways: values in the range
// (math.MinInt32, math.MaxInt32] are kept inline in a 32-bit field with no
// allocation at all (the "Inline" case); everything else, including
// math.MinInt32 itself, is stored as a sign plus a little-endian slice of
// 32-bit limbs (the "Extended" case). Which case is in play is never exposed
// to callers — every method works uniformly across both.
//
// BigInt values are immutable: no method ever mutates the receiver or an
// argument, and every slice a BigInt holds is owned exclusively by that
// value. It is therefore safe to copy, compare, and share BigInt values
// across goroutines without synchronization.
type BigInt struct {
	small int32
	neg   bool
	mag   []word // nil in the Inline case; else len>=1, mag[len-1]!=0
}

// Well-known canonical values, matching the fixed representations the
// invariants require.
var (
	Zero     = BigInt{}
	One      = BigInt{small: 1}
	MinusOne = BigInt{small: -1}
	// MinInt32 is the canonical Extended representation of math.MinInt32,
	// the one value in int32's range that the Inline case cannot hold.
	MinInt32 = BigInt{neg: true, mag: []word{0x80000000}}
)

// FromInt64 converts a signed 64-bit integer to a BigInt.
func FromInt64(v int64) BigInt { return fromInt64(v) }

// FromInt converts a platform int to a BigInt.
func FromInt(v int) BigInt { return fromInt64(int64(v)) }

// FromUint64 converts an unsigned 64-bit integer to a BigInt.
func FromUint64(v uint64) BigInt {
	if v <= math.MaxInt32 {
		result := BigInt{small: int32(v)}
		assertValid(result)
		return result
	}
	return normalizeMag(false, []word{word(v), word(v >> 32)})
}

func fromInt64(v int64) BigInt {
	if v > math.MinInt32 && v <= math.MaxInt32 {
		result := BigInt{small: int32(v)}
		assertValid(result)
		return result
	}
	neg := v < 0
	uv := uint64(v)
	if neg {
		uv = -uv // unsigned negation; correct even for v == math.MinInt64
	}
	return normalizeMag(neg, []word{word(uv), word(uv >> 32)})
}

// normalizeMag builds a canonical BigInt from a sign and a (possibly
// untrimmed, possibly empty) little-endian magnitude, per the construction
// and normalization rules: trim trailing zero limbs, collapse to Zero, to
// Inline when the magnitude fits, or to the canonical MinInt32 form, and
// otherwise keep the Extended form with the given sign. The input slice is
// taken over, not copied; callers must not retain or mutate it afterward.
func normalizeMag(neg bool, mag []word) BigInt {
	mag = trimMag(mag)
	if len(mag) == 0 {
		return BigInt{}
	}
	if len(mag) == 1 {
		m0 := mag[0]
		if m0 < 0x80000000 {
			v := int32(m0)
			if neg {
				v = -v
			}
			result := BigInt{small: v}
			assertValid(result)
			return result
		}
		if neg && m0 == 0x80000000 {
			result := BigInt{neg: true, mag: mag}
			assertValid(result)
			return result
		}
	}
	result := BigInt{neg: neg, mag: mag}
	assertValid(result)
	return result
}

// decompose returns the (sign, magnitude) view of z, materializing a
// single-limb magnitude for the Inline case. The returned slice must be
// treated as read-only by callers that didn't just allocate it themselves.
func (z BigInt) decompose() (neg bool, mag []word) {
	if z.mag != nil {
		return z.neg, z.mag
	}
	if z.small == 0 {
		return false, nil
	}
	if z.small < 0 {
		return true, []word{uint32(-int64(z.small))}
	}
	return false, []word{uint32(z.small)}
}

// Sign returns -1, 0, or +1 according to the sign of z.
func (z BigInt) Sign() int {
	if z.mag != nil {
		if z.neg {
			return -1
		}
		return 1
	}
	switch {
	case z.small < 0:
		return -1
	case z.small > 0:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether z == 0.
func (z BigInt) IsZero() bool { return z.mag == nil && z.small == 0 }

// IsNegative reports whether z < 0.
func (z BigInt) IsNegative() bool { return z.Sign() < 0 }

// IsEven reports whether z is divisible by two.
func (z BigInt) IsEven() bool {
	if z.mag != nil {
		return z.mag[0]&1 == 0
	}
	return z.small&1 == 0
}

// Cmp returns -1, 0, or +1 according to whether z < y, z == y, or z > y.
func (z BigInt) Cmp(y BigInt) int {
	if z.mag == nil && y.mag == nil {
		switch {
		case z.small < y.small:
			return -1
		case z.small > y.small:
			return 1
		default:
			return 0
		}
	}
	sz, sy := z.Sign(), y.Sign()
	if sz != sy {
		if sz < sy {
			return -1
		}
		return 1
	}
	if sz == 0 {
		return 0
	}
	_, mz := z.decompose()
	_, my := y.decompose()
	c := cmpMag(mz, my)
	if sz < 0 {
		c = -c
	}
	return c
}

// Equal reports whether z == y.
func (z BigInt) Equal(y BigInt) bool { return z.Cmp(y) == 0 }

// Neg returns -z. This is O(1): the Extended case only flips a sign bit,
// since the invariants guarantee that negating a magnitude never changes
// whether it fits inline (the one crossing point, math.MinInt32, already has
// a fixed canonical Extended form on both sides of the negation).
func (z BigInt) Neg() BigInt {
	if z.mag == nil {
		return BigInt{small: -z.small}
	}
	return BigInt{neg: !z.neg, mag: z.mag}
}

// Abs returns |z|.
func (z BigInt) Abs() BigInt {
	if z.Sign() < 0 {
		return z.Neg()
	}
	return z
}

// Add returns z+y.
func (z BigInt) Add(y BigInt) BigInt {
	if z.mag == nil && y.mag == nil {
		sum := int64(z.small) + int64(y.small)
		if sum > math.MinInt32 && sum <= math.MaxInt32 {
			return BigInt{small: int32(sum)}
		}
		return fromInt64(sum)
	}
	zn, zm := z.decompose()
	yn, ym := y.decompose()
	return addSigned(zn, zm, yn, ym)
}

// Sub returns z-y, via the identity a-b = a+(-b).
func (z BigInt) Sub(y BigInt) BigInt {
	return z.Add(y.Neg())
}

// addSigned implements signed addition of two (sign, magnitude) pairs: equal
// signs add magnitudes and keep the sign; differing signs subtract the
// smaller magnitude from the larger and take the larger's sign.
func addSigned(zneg bool, zm []word, yneg bool, ym []word) BigInt {
	if zneg == yneg {
		return normalizeMag(zneg, addMag(zm, ym))
	}
	switch cmpMag(zm, ym) {
	case 0:
		return BigInt{}
	case 1:
		return normalizeMag(zneg, subMag(zm, ym))
	default:
		return normalizeMag(yneg, subMag(ym, zm))
	}
}
