package bignum

import (
	"math/big"
	"testing"
)

func TestGCDAgainstMathBig(t *testing.T) {
	cases := []struct{ a, b int64 }{
		{12, 18}, {-12, 18}, {12, -18}, {0, 5}, {5, 0}, {0, 0},
		{17, 13}, {1000000007, 998244353},
	}
	for _, c := range cases {
		got := FromInt64(c.a).GCD(FromInt64(c.b))
		want := new(big.Int).GCD(nil, nil, new(big.Int).Abs(big.NewInt(c.a)), new(big.Int).Abs(big.NewInt(c.b)))
		if got.String() != want.String() {
			t.Errorf("GCD(%d,%d) = %s, want %s", c.a, c.b, got, want)
		}
	}
}

func TestGCDLargeValues(t *testing.T) {
	a := new(big.Int)
	a.SetString("170141183460469231731687303715884105727", 10) // 2^127-1, Mersenne prime
	b := new(big.Int)
	b.SetString("340282366920938463463374607431768211456", 10) // 2^128

	za, _ := SetString(a.String(), 10)
	zb, _ := SetString(b.String(), 10)
	got := za.GCD(zb)
	want := new(big.Int).GCD(nil, nil, a, b)
	if got.String() != want.String() {
		t.Errorf("GCD of large coprime-ish values mismatch: got %s, want %s", got, want)
	}
}
