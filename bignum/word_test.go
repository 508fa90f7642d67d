package bignum

import "testing"

func TestAddWWSubWW(t *testing.T) {
	s, c := addWW(wordMax, 1, 0)
	if s != 0 || c != 1 {
		t.Errorf("addWW(wordMax,1,0) = (%d,%d), want (0,1)", s, c)
	}
	d, b := subWW(0, 1, 0)
	if d != wordMax || b != 1 {
		t.Errorf("subWW(0,1,0) = (%d,%d), want (wordMax,1)", d, b)
	}
}

func TestMulWW(t *testing.T) {
	hi, lo := mulWW(wordMax, wordMax)
	if hi != wordMax-1 || lo != 1 {
		t.Errorf("mulWW(wordMax,wordMax) = (%d,%d), want (%d,1)", hi, lo, wordMax-1)
	}
}

func TestDivWW(t *testing.T) {
	q, r := divWW(0, 100, 7)
	if q != 14 || r != 2 {
		t.Errorf("divWW(0,100,7) = (%d,%d), want (14,2)", q, r)
	}
}

func TestDivWWPanicsOnOverflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when u1 >= v")
		}
	}()
	divWW(5, 0, 3)
}

func TestBitLen32(t *testing.T) {
	cases := []struct {
		x    word
		want int
	}{
		{0, 0}, {1, 1}, {2, 2}, {3, 2}, {0x80000000, 32}, {wordMax, 32},
	}
	for _, c := range cases {
		if got := bitLen32(c.x); got != c.want {
			t.Errorf("bitLen32(%d) = %d, want %d", c.x, got, c.want)
		}
	}
}
