package compute

import (
	"context"

	"github.com/agbru/bignum/bignum"
	"github.com/agbru/bignum/internal/progress"
)

// Pow computes req.A raised to the integer power held in req.B.
type Pow struct{}

// Name identifies this operation for -algo selection and display.
func (Pow) Name() string { return "pow" }

// Run computes req.A ** req.B.
func (Pow) Run(_ context.Context, progressChan chan<- progress.ProgressUpdate, index int, req Request, _ Options) (bignum.BigInt, error) {
	report(progressChan, index, 0)
	e, err := req.B.Int64()
	if err != nil {
		return bignum.BigInt{}, err
	}
	result, perr := req.A.Pow(int(e))
	report(progressChan, index, 1.0)
	if perr != nil {
		return bignum.BigInt{}, perr
	}
	return result, nil
}

// ModPow computes req.A ** req.B mod req.M.
type ModPow struct{}

// Name identifies this operation for -algo selection and display.
func (ModPow) Name() string { return "modpow" }

// Run computes req.A ** req.B mod req.M.
func (ModPow) Run(_ context.Context, progressChan chan<- progress.ProgressUpdate, index int, req Request, _ Options) (bignum.BigInt, error) {
	report(progressChan, index, 0)
	result, err := req.A.ModPow(req.B, req.M)
	report(progressChan, index, 1.0)
	if err != nil {
		return bignum.BigInt{}, err
	}
	return result, nil
}

// GCD computes the greatest common divisor of req.A and req.B.
type GCD struct{}

// Name identifies this operation for -algo selection and display.
func (GCD) Name() string { return "gcd" }

// Run computes gcd(req.A, req.B).
func (GCD) Run(_ context.Context, progressChan chan<- progress.ProgressUpdate, index int, req Request, _ Options) (bignum.BigInt, error) {
	report(progressChan, index, 0)
	result := req.A.GCD(req.B)
	report(progressChan, index, 1.0)
	return result, nil
}
