package bignum

// Tunable thresholds controlling the Karatsuba dispatch. These are
// module-level mutable singletons rather than constructor parameters:
// fixed, benchmarked defaults for release builds, with setters exposed so
// tests and calibration tooling can sweep the crossover points.

const (
	// DefaultKaratsubaThreshold is the longer-operand limb count at or
	// below which multiplication uses the schoolbook basecase. The shorter
	// operand's length is not compared against it; operands more than 2x
	// apart in length go through mulAsymmetric instead.
	DefaultKaratsubaThreshold = 32
	// DefaultSquareThreshold is the analogous threshold for squaring.
	DefaultSquareThreshold = 32
	// DefaultKaratsubaParallelThreshold is the limb count at or above
	// which a Karatsuba split may fan its two independent sub-products
	// out across goroutines.
	DefaultKaratsubaParallelThreshold = 4096
	// DefaultMaxParallelDepth caps how many recursion levels may spawn
	// goroutines, bounding total concurrency.
	DefaultMaxParallelDepth = 3
)

var (
	karatsubaThreshold         = DefaultKaratsubaThreshold
	squareThreshold            = DefaultSquareThreshold
	karatsubaParallelThreshold = DefaultKaratsubaParallelThreshold
	maxKaratsubaParallelDepth  = DefaultMaxParallelDepth
)

// SetKaratsubaThreshold overrides the multiplication basecase threshold.
func SetKaratsubaThreshold(limbs int) {
	if limbs < 1 {
		limbs = 1
	}
	karatsubaThreshold = limbs
}

// GetKaratsubaThreshold returns the current multiplication basecase threshold.
func GetKaratsubaThreshold() int { return karatsubaThreshold }

// SetSquareThreshold overrides the squaring basecase threshold.
func SetSquareThreshold(limbs int) {
	if limbs < 1 {
		limbs = 1
	}
	squareThreshold = limbs
}

// GetSquareThreshold returns the current squaring basecase threshold.
func GetSquareThreshold() int { return squareThreshold }

// SetKaratsubaParallelThreshold overrides the limb count at or above which
// Karatsuba recursion may run its two independent halves concurrently.
func SetKaratsubaParallelThreshold(limbs int) {
	if limbs < 1 {
		limbs = 1
	}
	karatsubaParallelThreshold = limbs
}

// GetKaratsubaParallelThreshold returns the current parallel threshold.
func GetKaratsubaParallelThreshold() int { return karatsubaParallelThreshold }

// ResetThresholds restores every tunable threshold to its release default.
// Tests that mutate thresholds should call this in a defer or cleanup to
// avoid bleeding configuration into unrelated tests.
func ResetThresholds() {
	karatsubaThreshold = DefaultKaratsubaThreshold
	squareThreshold = DefaultSquareThreshold
	karatsubaParallelThreshold = DefaultKaratsubaParallelThreshold
	maxKaratsubaParallelDepth = DefaultMaxParallelDepth
	SetStackAllocThreshold(DefaultStackAllocThreshold)
}
