package bignum

import (
	"math/big"
	"testing"
)

func TestStringAgainstMathBig(t *testing.T) {
	vals := []int64{0, 1, -1, 123456789, -123456789}
	for _, v := range vals {
		got := FromInt64(v).String()
		want := big.NewInt(v).String()
		if got != want {
			t.Errorf("String(%d) = %s, want %s", v, got, want)
		}
	}
}

func TestTextBases(t *testing.T) {
	v := FromInt64(-255)
	if got := v.Text(16); got != "-ff" {
		t.Errorf("Text(16) = %s, want -ff", got)
	}
	if got := v.Text(2); got != "-11111111" {
		t.Errorf("Text(2) = %s, want -11111111", got)
	}
	if Zero.Text(16) != "0" {
		t.Errorf("Text(16) of zero should be \"0\"")
	}
}

func TestSetStringRoundTrip(t *testing.T) {
	cases := []struct {
		s    string
		base int
	}{
		{"0", 10}, {"-1", 10}, {"123456789012345678901234567890", 10},
		{"-ff", 16}, {"0xff", 0}, {"0b1010", 0}, {"0o17", 0},
		{"zz", 36},
	}
	for _, c := range cases {
		z, ok := SetString(c.s, c.base)
		if !ok {
			t.Errorf("SetString(%q, %d) failed to parse", c.s, c.base)
			continue
		}
		want := new(big.Int)
		if _, ok := want.SetString(c.s, c.base); !ok {
			continue
		}
		if z.String() != want.String() {
			t.Errorf("SetString(%q, %d) = %s, want %s", c.s, c.base, z, want)
		}
	}
}

func TestSetStringRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "+", "-", "12g", "1.5", "0xzz"} {
		if _, ok := SetString(s, 0); ok {
			t.Errorf("SetString(%q) should have failed", s)
		}
	}
}
