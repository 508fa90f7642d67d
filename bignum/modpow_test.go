package bignum

import (
	"math/big"
	"testing"
)

// TestModPowAgainstMathBig covers non-negative bases only: math/big.Int.Exp
// always returns a result in [0, |m|), which only agrees with this
// package's truncated-division sign convention (see ModPow's doc comment)
// when the base is non-negative. Negative-base cases are covered
// separately against literal expected values in
// TestModPowNegativeBaseSignConvention.
func TestModPowAgainstMathBig(t *testing.T) {
	cases := []struct {
		base, exp, mod int64
	}{
		{4, 13, 497}, {2, 10, 1000}, {5, 0, 7}, {0, 5, 7},
	}
	for _, c := range cases {
		got, err := FromInt64(c.base).ModPow(FromInt64(c.exp), FromInt64(c.mod))
		if err != nil {
			t.Fatalf("ModPow(%d,%d,%d) returned error: %v", c.base, c.exp, c.mod, err)
		}
		want := new(big.Int).Exp(big.NewInt(c.base), big.NewInt(c.exp), big.NewInt(c.mod))
		if got.String() != want.String() {
			t.Errorf("%d^%d mod %d = %s, want %s", c.base, c.exp, c.mod, got, want)
		}
	}
}

// TestModPowNegativeBaseSignConvention checks that a negative base with an
// odd exponent yields a negative result with |result| < |m|, matching
// ((v mod m)^e) mod m under truncated-division sign rules rather than
// math/big's always-non-negative convention.
func TestModPowNegativeBaseSignConvention(t *testing.T) {
	cases := []struct {
		base, exp, mod int64
		want           string
	}{
		{-4, 13, 497, "-445"}, // odd exponent: negative result
		{-4, 12, 497, "484"},  // even exponent: positive result
		{-2, 10, 1000, "24"},  // even exponent: positive result
		{-3, 1, 7, "-3"},      // trivial odd case
		{-7, 5, 7, "0"},       // exact multiple: zero stays zero, not negated
	}
	for _, c := range cases {
		got, err := FromInt64(c.base).ModPow(FromInt64(c.exp), FromInt64(c.mod))
		if err != nil {
			t.Fatalf("ModPow(%d,%d,%d) returned error: %v", c.base, c.exp, c.mod, err)
		}
		if got.String() != c.want {
			t.Errorf("%d^%d mod %d = %s, want %s", c.base, c.exp, c.mod, got, c.want)
		}
		if got.Abs().Cmp(FromInt64(c.mod).Abs()) >= 0 {
			t.Errorf("%d^%d mod %d = %s, magnitude must be < %d", c.base, c.exp, c.mod, got, c.mod)
		}
	}
}

func TestModPowZeroModulusErrors(t *testing.T) {
	_, err := FromInt64(2).ModPow(FromInt64(5), Zero)
	if err == nil || err.Kind != DivideByZero {
		t.Fatalf("expected DivideByZero error, got %v", err)
	}
}

func TestModPowNegativeExponentErrors(t *testing.T) {
	_, err := FromInt64(2).ModPow(FromInt64(-1), FromInt64(7))
	if err == nil || err.Kind != InvalidArgument {
		t.Fatalf("expected InvalidArgument error, got %v", err)
	}
}

func TestModPowLargeExponent(t *testing.T) {
	base := FromInt64(3)
	exp, _ := SetString("123456789012345678901234567890", 10)
	mod := FromInt64(1000000007)

	got, err := base.ModPow(exp, mod)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e := new(big.Int)
	e.SetString("123456789012345678901234567890", 10)
	want := new(big.Int).Exp(big.NewInt(3), e, big.NewInt(1000000007))
	if got.String() != want.String() {
		t.Errorf("large-exponent ModPow = %s, want %s", got, want)
	}
}
