package bignum

// Vector-level operations on little-endian unsigned limb slices (magnitudes
// with no sign). None of these allocate on their own except where noted;
// they operate on caller-supplied destination slices, following the
// vector-arithmetic convention in math/big's arith.go (addVV_g, subVV_g,
// shlVU_g, addMulVVW_g, divWVW_g) adapted to the fixed 32-bit word type.

// addVV computes z[i] = x[i]+y[i] for all i and returns the final carry.
// z, x and y must have the same length.
func addVV(z, x, y []word) (c word) {
	for i := range z {
		z[i], c = addWW(x[i], y[i], c)
	}
	return c
}

// subVV computes z[i] = x[i]-y[i] for all i and returns the final borrow.
func subVV(z, x, y []word) (c word) {
	for i := range z {
		z[i], c = subWW(x[i], y[i], c)
	}
	return c
}

// addVW adds the single word y into x, storing into z, and returns the carry.
func addVW(z, x []word, y word) (c word) {
	c = y
	for i := range z {
		z[i], c = addWW(x[i], c, 0)
	}
	return c
}

// subVW subtracts the single word y from x, storing into z, and returns the
// borrow.
func subVW(z, x []word, y word) (c word) {
	c = y
	for i := range z {
		z[i], c = subWW(x[i], c, 0)
	}
	return c
}

// shlVU computes z = x<<s (0 <= s < 32) and returns the bits shifted out of
// the top.
func shlVU(z, x []word, s uint) (c word) {
	n := len(z)
	if n == 0 {
		return 0
	}
	if s == 0 {
		copy(z, x)
		return 0
	}
	inv := wordBits - s
	hi := x[n-1]
	c = hi >> inv
	for i := n - 1; i > 0; i-- {
		lo := x[i-1]
		z[i] = hi<<s | lo>>inv
		hi = lo
	}
	z[0] = hi << s
	return c
}

// shrVU computes z = x>>s (0 <= s < 32) and returns the bits shifted out of
// the bottom, left-justified in the result word.
func shrVU(z, x []word, s uint) (c word) {
	n := len(z)
	if n == 0 {
		return 0
	}
	if s == 0 {
		copy(z, x)
		return 0
	}
	inv := wordBits - s
	lo := x[0]
	c = lo << inv
	for i := 0; i < n-1; i++ {
		hi := x[i+1]
		z[i] = lo>>s | hi<<inv
		lo = hi
	}
	z[n-1] = lo >> s
	return c
}

// mulAddVWW computes z[i] = x[i]*y+r, threading the carry, and returns the
// final carry.
func mulAddVWW(z, x []word, y, r word) (c word) {
	c = r
	for i := range z {
		c, z[i] = mulAddWWW(x[i], y, c)
	}
	return c
}

// addMulVVW computes z[i] += x[i]*y, threading the carry, and returns the
// final carry.
func addMulVVW(z, x []word, y word) (c word) {
	for i := range z {
		hi, lo := mulAddWWW(x[i], y, z[i])
		var c2 word
		z[i], c2 = addWW(lo, c, 0)
		c = hi + c2
	}
	return c
}

// subMulVVW computes z[i] -= x[i]*y, threading the borrow, and returns the
// final borrow.
func subMulVVW(z, x []word, y word) (c word) {
	for i := range z {
		hi, lo := mulAddWWW(x[i], y, c)
		var b word
		z[i], b = subWW(z[i], lo, 0)
		c = hi + b
	}
	return c
}

// divWVW divides the extended dividend (xn, x...) by y in place, writing the
// quotient into z (same length as x), and returns the remainder.
func divWVW(z []word, xn word, x []word, y word) (r word) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = divWW(r, x[i], y)
	}
	return r
}

// trimMag drops trailing (most-significant) zero limbs.
func trimMag(x []word) []word {
	n := len(x)
	for n > 0 && x[n-1] == 0 {
		n--
	}
	return x[:n]
}

// cmpMag compares two magnitudes: -1 if a<b, 0 if a==b, +1 if a>b.
// Both slices are assumed already trimmed (no leading zero limb).
func cmpMag(a, b []word) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// isZeroMag reports whether a magnitude (possibly untrimmed) is all zeros.
func isZeroMag(a []word) bool {
	for _, w := range a {
		if w != 0 {
			return false
		}
	}
	return true
}

// addMag returns a+b as a freshly allocated, trimmed magnitude.
func addMag(a, b []word) []word {
	if len(a) < len(b) {
		a, b = b, a
	}
	z := make([]word, len(a)+1)
	c := addVV(z[:len(b)], a[:len(b)], b)
	if len(a) > len(b) {
		c = addVW(z[len(b):len(a)], a[len(b):], c)
	}
	z[len(a)] = c
	return trimMag(z)
}

// subMag returns a-b as a freshly allocated, trimmed magnitude. Precondition:
// a >= b (checked by cmpMag at call sites that need it).
func subMag(a, b []word) []word {
	z := make([]word, len(a))
	c := subVV(z[:len(b)], a[:len(b)], b)
	if len(a) > len(b) {
		c = subVW(z[len(b):], a[len(b):], c)
	}
	return trimMag(z)
}

// addSelf adds src into dst in place. dst must be long enough to absorb the
// sum, including any carry propagation past len(src); callers size dst with
// one spare limb of headroom for exactly this reason. Returns the carry that
// would have propagated past len(dst), which is always 0 for correctly-sized
// callers and is returned only so tests can assert that.
func addSelf(dst, src []word) word {
	n := len(src)
	if n > len(dst) {
		n = len(dst)
	}
	c := addVV(dst[:n], dst[:n], src[:n])
	i := n
	for c != 0 && i < len(dst) {
		dst[i], c = addWW(dst[i], 0, c)
		i++
	}
	return c
}

// subSelf subtracts src from dst in place, propagating the borrow past
// len(src) the same way addSelf propagates carry. Precondition: the true
// value of dst is >= src, so the borrow never escapes len(dst).
func subSelf(dst, src []word) word {
	n := len(src)
	if n > len(dst) {
		n = len(dst)
	}
	c := subVV(dst[:n], dst[:n], src[:n])
	i := n
	for c != 0 && i < len(dst) {
		dst[i], c = subWW(dst[i], 0, c)
		i++
	}
	return c
}
