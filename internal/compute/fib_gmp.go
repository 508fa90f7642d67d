//go:build gmp

// GMPFib is only built with `go build -tags=gmp`, against a locally
// installed libgmp (see github.com/ncw/gmp's README). Opt-in because most
// environments running bignumctl don't have libgmp available, and the
// pure-Go algorithms in fib.go cover the default build.
package compute

import (
	"context"

	"github.com/ncw/gmp"

	"github.com/agbru/bignum/bignum"
	"github.com/agbru/bignum/internal/progress"
)

func init() {
	extraFibOperations = append(extraFibOperations, GMPFib{})
}

// GMPFib computes Fibonacci numbers with the fast doubling recurrence using
// github.com/ncw/gmp's cgo bindings to libgmp, as an independent oracle and
// a speed comparison point against the pure-Go implementations for very
// large N.
type GMPFib struct{}

// Name identifies this operation for -algo selection and display.
func (GMPFib) Name() string { return "gmp" }

// Run computes F(req.N) using GMP's assembly-optimized multiply.
func (GMPFib) Run(ctx context.Context, progressChan chan<- progress.ProgressUpdate, index int, req Request, _ Options) (bignum.BigInt, error) {
	n := req.N
	report(progressChan, index, 0)

	if n == 0 {
		report(progressChan, index, 1.0)
		return bignum.FromInt64(0), nil
	}
	if n == 1 {
		report(progressChan, index, 1.0)
		return bignum.FromInt64(1), nil
	}

	a := gmp.NewInt(0)
	b := gmp.NewInt(1)
	t1 := gmp.NewInt(0)
	t2 := gmp.NewInt(0)

	numBits := findHighestBit(n)
	for i := numBits - 1; i >= 0; i-- {
		select {
		case <-ctx.Done():
			return bignum.BigInt{}, ctx.Err()
		default:
		}

		gmpDoublingStep(a, b, t1, t2)
		if (n>>uint(i))&1 == 1 {
			gmpAdditionStep(a, b, t1)
		}

		report(progressChan, index, float64(numBits-i)/float64(numBits))
	}

	report(progressChan, index, 1.0)
	return bignum.SetBytesUnsigned(a.Bytes()), nil
}

func findHighestBit(n uint64) int {
	for i := 63; i >= 0; i-- {
		if (n>>uint(i))&1 == 1 {
			return i + 1
		}
	}
	return 0
}

// gmpDoublingStep performs the Fast Doubling step on GMP integers. Given
// F(k) in a and F(k+1) in b, computes F(2k) = F(k)*(2*F(k+1)-F(k)) and
// F(2k+1) = F(k+1)^2 + F(k)^2 using t1, t2 as scratch space.
func gmpDoublingStep(a, b, t1, t2 *gmp.Int) {
	t1.MulUint32(b, 2)
	t1.Sub(t1, a)
	t1.Mul(a, t1)

	t2.Mul(a, a)
	a.Mul(b, b)
	t2.Add(t2, a)

	a.Set(t1)
	b.Set(t2)
}

// gmpAdditionStep transforms (a, b) from (F(k), F(k+1)) to
// (F(k+1), F(k)+F(k+1)), using t as scratch space.
func gmpAdditionStep(a, b, t *gmp.Int) {
	t.Add(a, b)
	a.Set(b)
	b.Set(t)
}
