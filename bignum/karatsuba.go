package bignum

// Karatsuba multiplication and squaring, grounded on the divide-and-conquer
// structure of other_examples/agbruneau-Fibonacci__karatsuba.go: split the
// longer operand at its midpoint, recurse on the two halves, and recover the
// cross term from a single extra recursive call on the operand sums rather
// than two more full-size multiplications.
//
//   z0 = x0*y0
//   z2 = x1*y1
//   z1 = (x0+x1)*(y0+y1) - z0 - z2
//   z  = z0 + z1<<(32*k) + z2<<(64*k)

// karatsubaMul computes x*y. depth tracks recursion depth so goroutine
// fan-out can be capped by maxKaratsubaParallelDepth regardless of operand
// size.
func karatsubaMul(x, y []word, depth int) []word {
	if len(x) < len(y) {
		x, y = y, x
	}
	n, m := len(x), len(y)
	if m == 0 {
		return nil
	}
	if n <= karatsubaThreshold {
		return mulMagBasecase(x, y)
	}
	if n > 2*m {
		return mulAsymmetric(x, y, depth)
	}

	k := n / 2
	x0, x1 := x[:k], x[k:]
	var y0, y1 []word
	if len(y) <= k {
		y0, y1 = y, nil
	} else {
		y0, y1 = y[:k], y[k:]
	}

	var z0, z2 []word
	if depth < maxKaratsubaParallelDepth && n >= karatsubaParallelThreshold {
		z0, z2 = parallelSplit(
			func() []word { return karatsubaMul(x0, y0, depth+1) },
			func() []word { return karatsubaMul(x1, y1, depth+1) },
		)
	} else {
		z0 = karatsubaMul(x0, y0, depth+1)
		z2 = karatsubaMul(x1, y1, depth+1)
	}

	sumX := getScratch(len(x1) + 1)
	sumXLen := sumInto(sumX, x0, x1)
	sumY := getScratch(maxLen(len(y0), len(y1)) + 1)
	sumYLen := sumInto(sumY, y0, y1)

	zmid := karatsubaMul(sumX[:sumXLen], sumY[:sumYLen], depth+1)
	putScratch(sumX)
	putScratch(sumY)

	return assembleKaratsuba(z0, zmid, z2, k)
}

// karatsubaSqr computes a*a via the same split, specialized for a single
// operand: z0 = x0^2, z2 = x1^2, z1 = (x0+x1)^2 - z0 - z2.
func karatsubaSqr(a []word, depth int) []word {
	n := len(a)
	if n == 0 {
		return nil
	}
	if n <= squareThreshold {
		return sqrMagBasecase(a)
	}

	k := n / 2
	x0, x1 := a[:k], a[k:]

	var z0, z2 []word
	if depth < maxKaratsubaParallelDepth && n >= karatsubaParallelThreshold {
		z0, z2 = parallelSplit(
			func() []word { return karatsubaSqr(x0, depth+1) },
			func() []word { return karatsubaSqr(x1, depth+1) },
		)
	} else {
		z0 = karatsubaSqr(x0, depth+1)
		z2 = karatsubaSqr(x1, depth+1)
	}

	sumX := getScratch(len(x1) + 1)
	sumXLen := sumInto(sumX, x0, x1)
	zmid := karatsubaSqr(sumX[:sumXLen], depth+1)
	putScratch(sumX)

	return assembleKaratsuba(z0, zmid, z2, k)
}

// mulAsymmetric handles operands whose lengths differ by more than 2x, for
// which a balanced Karatsuba split wastes work recursing on a near-empty
// half. It instead chunks the longer operand x into len(y)-sized pieces,
// multiplies each chunk by y, and accumulates the (shifted) partial products
// — the same strategy other_examples/agbruneau-Fibonacci__karatsuba.go uses
// under the name multiplyAsymmetric.
func mulAsymmetric(x, y []word, depth int) []word {
	m := len(y)
	result := make([]word, len(x)+m)
	for i := 0; i < len(x); i += m {
		end := i + m
		if end > len(x) {
			end = len(x)
		}
		part := karatsubaMul(x[i:end], y, depth+1)
		addSelf(result[i:], part)
	}
	return trimMag(result)
}

// assembleKaratsuba combines the three sub-products into the final result:
// z1 is recovered from zmid by subtracting z0 and z2 (the Karatsuba
// identity guarantees the result of each subtraction is non-negative), then
// z0, z1<<32k and z2<<64k are summed into one destination buffer.
func assembleKaratsuba(z0, zmid, z2 []word, k int) []word {
	z1 := subtractCore(zmid, z0, z2)

	size := len(z2) + 2*k
	if s := len(z1) + k; s > size {
		size = s
	}
	if s := len(z0); s > size {
		size = s
	}
	result := make([]word, size+1)
	copy(result, z0)
	addSelf(result[k:], z1)
	addSelf(result[2*k:], z2)
	return trimMag(result)
}

// subtractCore computes zmid - z0 - z2 in place. Both subtractions are
// individually valid (non-negative) because the Karatsuba identity gives
// zmid = z0 + z1 + z2 with z1 >= 0, so zmid >= z0 and zmid - z0 >= z2.
func subtractCore(zmid, z0, z2 []word) []word {
	subSelf(zmid, z0)
	subSelf(zmid, z2)
	return trimMag(zmid)
}

// sumInto writes a+b into dst, which must have length >= len(longer)+1, and
// returns the trimmed length of the sum. b may be nil.
func sumInto(dst, a, b []word) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	c := addVV(dst[:len(b)], a[:len(b)], b)
	if len(a) > len(b) {
		c = addVW(dst[len(b):len(a)], a[len(b):], c)
	}
	dst[len(a)] = c
	n := len(a) + 1
	for n > 0 && dst[n-1] == 0 {
		n--
	}
	return n
}

func maxLen(a, b int) int {
	if a > b {
		return a
	}
	return b
}
