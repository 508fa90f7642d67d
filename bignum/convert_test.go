package bignum

import (
	"math"
	"testing"
)

func TestInt64RoundTrip(t *testing.T) {
	vals := []int64{0, 1, -1, math.MaxInt64, math.MinInt64, math.MaxInt32, math.MinInt32}
	for _, v := range vals {
		got, err := FromInt64(v).Int64()
		if err != nil {
			t.Fatalf("Int64() on %d returned error: %v", v, err)
		}
		if got != v {
			t.Errorf("Int64() round trip: got %d, want %d", got, v)
		}
	}
}

func TestInt64Overflow(t *testing.T) {
	big := FromUint64(math.MaxUint64).Add(One)
	_, err := big.Int64()
	if err == nil || err.Kind != Overflow {
		t.Fatalf("expected Overflow error, got %v", err)
	}
}

func TestUint64RejectsNegative(t *testing.T) {
	_, err := FromInt64(-1).Uint64()
	if err == nil || err.Kind != Overflow {
		t.Fatalf("expected Overflow error, got %v", err)
	}
}

func TestUint64RoundTrip(t *testing.T) {
	vals := []uint64{0, 1, math.MaxInt32, math.MaxUint32, math.MaxUint64}
	for _, v := range vals {
		got, err := FromUint64(v).Uint64()
		if err != nil {
			t.Fatalf("Uint64() on %d returned error: %v", v, err)
		}
		if got != v {
			t.Errorf("Uint64() round trip: got %d, want %d", got, v)
		}
	}
}

func TestFloat64Finite(t *testing.T) {
	if f := FromInt64(5).Float64(); f != 5 {
		t.Errorf("Float64() on 5 = %v, want 5", f)
	}
	if f := FromInt64(-5).Float64(); f != -5 {
		t.Errorf("Float64() on -5 = %v, want -5", f)
	}
}

func TestFromFloat64RoundTrip(t *testing.T) {
	vals := []float64{0, 1, -1, 123456.0, -98765.0, 1e15, -1e15}
	for _, f := range vals {
		z, err := FromFloat64(f)
		if err != nil {
			t.Fatalf("FromFloat64(%v) returned error: %v", f, err)
		}
		if z.Float64() != f {
			t.Errorf("FromFloat64(%v).Float64() = %v, want %v", f, z.Float64(), f)
		}
	}
}

func TestFromFloat64RejectsNonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := FromFloat64(f)
		if err == nil || err.Kind != Overflow {
			t.Errorf("FromFloat64(%v) expected Overflow error, got %v", f, err)
		}
	}
}
