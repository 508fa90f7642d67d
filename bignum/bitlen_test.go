package bignum

import "testing"

func TestGetBitLength(t *testing.T) {
	cases := []struct {
		v    int64
		want int
	}{
		{0, 0}, {1, 1}, {-1, 0}, {2, 2}, {3, 2}, {-2, 1}, {-3, 2},
		{255, 8}, {256, 9}, {-256, 8}, {-255, 8},
	}
	for _, c := range cases {
		if got := FromInt64(c.v).GetBitLength(); got != c.want {
			t.Errorf("GetBitLength(%d) = %d, want %d", c.v, got, c.want)
		}
	}
	if got := One.Lsh(200).GetBitLength(); got != 201 {
		t.Errorf("GetBitLength(2^200) = %d, want 201", got)
	}
	if got := One.Lsh(200).Neg().GetBitLength(); got != 200 {
		t.Errorf("GetBitLength(-2^200) = %d, want 200", got)
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	yes := []BigInt{One, FromInt64(2), FromInt64(4), FromInt64(1024), One.Lsh(200)}
	for _, v := range yes {
		if !v.IsPowerOfTwo() {
			t.Errorf("%v should be a power of two", v)
		}
	}
	no := []BigInt{Zero, MinusOne, FromInt64(3), FromInt64(6), FromInt64(-4), One.Lsh(200).Add(One)}
	for _, v := range no {
		if v.IsPowerOfTwo() {
			t.Errorf("%v should not be a power of two", v)
		}
	}
}
