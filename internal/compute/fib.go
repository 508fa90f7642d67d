package compute

import (
	"context"
	"math/bits"

	"github.com/agbru/bignum/bignum"
	"github.com/agbru/bignum/internal/progress"
)

// FastDoublingFib computes F(N) via fast doubling, the same O(log N)
// multiplication recurrence as bignum.Fib, reimplemented here step by step
// so each doubling round can report its own fractional progress.
type FastDoublingFib struct{}

// Name identifies this operation for -algo selection and display.
func (FastDoublingFib) Name() string { return "fast-doubling" }

// Run computes F(req.N), reporting progress once per bit of N processed.
func (FastDoublingFib) Run(ctx context.Context, progressChan chan<- progress.ProgressUpdate, index int, req Request, _ Options) (bignum.BigInt, error) {
	n := req.N
	if n == 0 {
		report(progressChan, index, 1.0)
		return bignum.FromInt64(0), nil
	}

	fk := bignum.FromInt64(0)
	fk1 := bignum.FromInt64(1)

	numBits := bits.Len64(n)
	for i := numBits - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return bignum.BigInt{}, err
		}

		t1 := fk1.Lsh(1).Sub(fk).Mul(fk)
		t2 := fk1.Mul(fk1).Add(fk.Mul(fk))
		fk, fk1 = t1, t2

		if (n>>uint(i))&1 == 1 {
			fk, fk1 = fk1, fk.Add(fk1)
		}

		report(progressChan, index, float64(numBits-i)/float64(numBits))
	}

	return fk, nil
}

// IterativeFib computes F(N) with the textbook O(N) additive loop. It is
// dramatically slower than fast doubling for large N and exists so -compare
// runs have something to cross-check fast doubling's result against.
type IterativeFib struct{}

// Name identifies this operation for -algo selection and display.
func (IterativeFib) Name() string { return "iterative" }

// reportEvery bounds how often IterativeFib posts a progress update, so a
// huge N doesn't spend more time sending updates than computing.
const reportEvery = 100000

// Run computes F(req.N) by repeated addition.
func (IterativeFib) Run(ctx context.Context, progressChan chan<- progress.ProgressUpdate, index int, req Request, _ Options) (bignum.BigInt, error) {
	n := req.N
	if n == 0 {
		report(progressChan, index, 1.0)
		return bignum.FromInt64(0), nil
	}

	a := bignum.FromInt64(0)
	b := bignum.FromInt64(1)

	for i := uint64(1); i < n; i++ {
		if i%reportEvery == 0 {
			if err := ctx.Err(); err != nil {
				return bignum.BigInt{}, err
			}
			report(progressChan, index, float64(i)/float64(n))
		}
		a, b = b, a.Add(b)
	}

	report(progressChan, index, 1.0)
	return b, nil
}
