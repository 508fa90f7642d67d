package bignum

import (
	"math"
	"math/big"
	"testing"
)

// TestScenarioDoubleNegationOfMinInt32 checks that negating math.MinInt32
// twice recovers the original value exactly, the one case where a value's
// negation can't flip it back into the Inline range.
func TestScenarioDoubleNegationOfMinInt32(t *testing.T) {
	z := FromInt64(math.MinInt32)
	if !z.Equal(MinInt32) {
		t.Fatalf("FromInt64(math.MinInt32) = %v, want canonical MinInt32", z)
	}
	if got := z.Neg().Neg(); !got.Equal(z) {
		t.Errorf("-(-MinInt32) = %v, want %v", got, z)
	}
	if got := z.Abs(); got.Sign() <= 0 {
		t.Errorf("|MinInt32| should be positive, got %v", got)
	}
}

// TestScenarioInlineExtendedBoundary exercises every value around the
// Inline/Extended crossover on both the positive and negative side.
func TestScenarioInlineExtendedBoundary(t *testing.T) {
	boundary := []int64{
		math.MaxInt32 - 1, math.MaxInt32, int64(math.MaxInt32) + 1,
		math.MinInt32 + 1, math.MinInt32, int64(math.MinInt32) - 1,
	}
	for _, v := range boundary {
		z := FromInt64(v)
		if got, err := z.Int64(); err != nil || got != v {
			t.Errorf("FromInt64(%d) round trip failed: got %d, err %v", v, got, err)
		}
	}
}

// TestScenarioCarryChainThroughManyLimbs builds a value whose addition
// forces a carry to propagate across every limb, the kind of all-0xFFFFFFFF
// pattern that silently breaks carry-threading bugs in addVV/addSelf.
func TestScenarioCarryChainThroughManyLimbs(t *testing.T) {
	allOnes := One.Lsh(256).Sub(One) // 2^256 - 1, all limbs 0xFFFFFFFF
	got := allOnes.Add(One)
	want := One.Lsh(256)
	if !got.Equal(want) {
		t.Errorf("(2^256-1)+1 = %v, want 2^256", got)
	}
}

// TestScenarioBorrowChainThroughManyLimbs is the subtraction analogue:
// 2^256 - (2^256 - 1) must borrow cleanly back down to exactly 1.
func TestScenarioBorrowChainThroughManyLimbs(t *testing.T) {
	huge := One.Lsh(256)
	almostHuge := huge.Sub(One)
	got := huge.Sub(almostHuge)
	if !got.Equal(One) {
		t.Errorf("2^256 - (2^256-1) = %v, want 1", got)
	}
}

// TestScenarioExactMagnitudeCancellation checks that a-a normalizes to the
// canonical Zero value (small=0, mag=nil), not some Extended zero.
func TestScenarioExactMagnitudeCancellation(t *testing.T) {
	z, _ := SetString("123456789012345678901234567890", 10)
	got := z.Sub(z)
	if !got.Equal(Zero) || got.mag != nil || got.small != 0 {
		t.Errorf("z-z should be the canonical Zero value, got %+v", got)
	}
}

func TestScenarioLargeFactorialAgainstMathBig(t *testing.T) {
	n := 200
	result := One
	want := big.NewInt(1)
	for i := int64(1); i <= int64(n); i++ {
		result = result.Mul(FromInt64(i))
		want.Mul(want, big.NewInt(i))
	}
	if result.String() != want.String() {
		t.Error("200! computed via repeated Mul diverges from math/big")
	}
}
