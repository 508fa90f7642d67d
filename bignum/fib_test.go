package bignum

import "testing"

func TestFibKnownValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		n    uint64
		want int64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{10, 55},
		{20, 6765},
		{50, 12586269025},
	}

	for _, tc := range cases {
		got := Fib(tc.n)
		want := FromInt64(tc.want)
		if !got.Equal(want) {
			t.Errorf("Fib(%d) = %s, want %d", tc.n, got.String(), tc.want)
		}
	}
}

func TestFibModKnownValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		n, mod uint64
		want   int64
	}{
		{0, 1000, 0},
		{1, 1000, 1},
		{10, 1000, 55},
		{100, 10000, 5075},
		{1000, 1000000, 228875},
	}

	for _, tc := range cases {
		m := FromUint64(tc.mod)
		got, err := FibMod(tc.n, m)
		if err != nil {
			t.Fatalf("FibMod(%d, %d) error: %v", tc.n, tc.mod, err)
		}
		want := FromInt64(tc.want)
		if !got.Equal(want) {
			t.Errorf("FibMod(%d, %d) = %s, want %d", tc.n, tc.mod, got.String(), tc.want)
		}
	}
}

func TestFibModConsistentWithFib(t *testing.T) {
	t.Parallel()

	full := Fib(500)
	mod, _ := FromInt64(10).Pow(100)
	expected, err := full.Mod(mod)
	if err != nil {
		t.Fatalf("Mod error: %v", err)
	}
	if expected.IsNegative() {
		expected = expected.Add(mod)
	}

	result, err := FibMod(500, mod)
	if err != nil {
		t.Fatalf("FibMod error: %v", err)
	}

	if !result.Equal(expected) {
		t.Errorf("modular result doesn't match full: got %s, want %s", result.String(), expected.String())
	}
}

func TestFibModInvalidModulus(t *testing.T) {
	t.Parallel()

	if _, err := FibMod(10, FromInt64(0)); err == nil {
		t.Error("expected error for zero modulus")
	}
	if _, err := FibMod(10, FromInt64(-5)); err == nil {
		t.Error("expected error for negative modulus")
	}
}
