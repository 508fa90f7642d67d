package bignum

import (
	"math"
	"testing"
)

func TestNormalizeMagInline(t *testing.T) {
	cases := []struct {
		neg  bool
		mag  []word
		want BigInt
	}{
		{false, nil, Zero},
		{false, []word{0, 0}, Zero},
		{false, []word{5}, BigInt{small: 5}},
		{true, []word{5}, BigInt{small: -5}},
		{false, []word{math.MaxInt32}, BigInt{small: math.MaxInt32}},
		{true, []word{0x80000000}, MinInt32},
		{false, []word{0x80000000}, BigInt{neg: false, mag: []word{0x80000000}}},
	}
	for _, c := range cases {
		got := normalizeMag(c.neg, append([]word(nil), c.mag...))
		if !got.Equal(c.want) || got.mag == nil != (c.want.mag == nil) {
			t.Errorf("normalizeMag(%v, %v) = %+v, want %+v", c.neg, c.mag, got, c.want)
		}
	}
}

func TestNegMinInt32Roundtrip(t *testing.T) {
	z := MinInt32
	got := z.Neg().Neg()
	if !got.Equal(z) {
		t.Fatalf("-(-MinInt32) = %v, want %v", got, z)
	}
	if !z.Neg().Equal(z.Abs()) {
		t.Fatalf("-MinInt32 should equal |MinInt32| since both are positive-magnitude-wise on the Extended side")
	}
}

func TestAddSubInverse(t *testing.T) {
	vals := []int64{0, 1, -1, 12345, -12345, math.MaxInt32, math.MinInt32, math.MaxInt64, math.MinInt64}
	for _, a := range vals {
		for _, b := range vals {
			x, y := FromInt64(a), FromInt64(b)
			sum := x.Add(y)
			back := sum.Sub(y)
			if !back.Equal(x) {
				t.Errorf("(%d+%d)-%d = %v, want %d", a, b, b, back, a)
			}
		}
	}
}

func TestCmp(t *testing.T) {
	small := FromInt64(5)
	big1 := FromInt64(math.MaxInt64)
	big2 := big1.Add(One)
	if small.Cmp(big1) >= 0 {
		t.Error("5 should be less than MaxInt64")
	}
	if big2.Cmp(big1) <= 0 {
		t.Error("MaxInt64+1 should be greater than MaxInt64")
	}
	if FromInt64(-5).Cmp(FromInt64(5)) >= 0 {
		t.Error("-5 should be less than 5")
	}
}

func TestSignIsZeroIsNegative(t *testing.T) {
	if Zero.Sign() != 0 || !Zero.IsZero() {
		t.Error("Zero should have Sign 0 and IsZero true")
	}
	if One.Sign() != 1 || One.IsNegative() {
		t.Error("One should have Sign 1 and not be negative")
	}
	if MinusOne.Sign() != -1 || !MinusOne.IsNegative() {
		t.Error("MinusOne should have Sign -1 and be negative")
	}
}

func TestIsEven(t *testing.T) {
	if !FromInt64(4).IsEven() || FromInt64(5).IsEven() {
		t.Error("inline IsEven mismatch")
	}
	big := FromInt64(math.MaxInt64).Mul(FromInt64(2))
	if !big.IsEven() {
		t.Error("extended IsEven mismatch")
	}
}
