package compute

import (
	"context"
	"testing"

	"github.com/agbru/bignum/bignum"
)

func TestPowRun(t *testing.T) {
	t.Parallel()
	req := Request{A: bignum.FromInt64(2), B: bignum.FromInt64(10)}
	got, err := Pow{}.Run(context.Background(), nil, 0, req, Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !got.Equal(bignum.FromInt64(1024)) {
		t.Errorf("2**10 = %s, want 1024", got.String())
	}
}

func TestModPowRun(t *testing.T) {
	t.Parallel()
	req := Request{A: bignum.FromInt64(4), B: bignum.FromInt64(13), M: bignum.FromInt64(497)}
	got, err := ModPow{}.Run(context.Background(), nil, 0, req, Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !got.Equal(bignum.FromInt64(445)) {
		t.Errorf("4**13 mod 497 = %s, want 445", got.String())
	}
}

func TestGCDRun(t *testing.T) {
	t.Parallel()
	req := Request{A: bignum.FromInt64(48), B: bignum.FromInt64(18)}
	got, err := GCD{}.Run(context.Background(), nil, 0, req, Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !got.Equal(bignum.FromInt64(6)) {
		t.Errorf("gcd(48,18) = %s, want 6", got.String())
	}
}

func TestRegistryOperationsForOp(t *testing.T) {
	t.Parallel()
	for _, op := range []string{"fib", "pow", "modpow", "gcd"} {
		reg, err := OperationsForOp(op)
		if err != nil {
			t.Fatalf("OperationsForOp(%q): %v", op, err)
		}
		if len(reg.List()) == 0 {
			t.Errorf("OperationsForOp(%q) returned empty registry", op)
		}
	}
	if _, err := OperationsForOp("bogus"); err == nil {
		t.Error("expected error for unknown operation")
	}
}

func TestFibRegistryHasBothAlgorithms(t *testing.T) {
	t.Parallel()
	reg := FibRegistry()
	names := reg.List()
	if len(names) != 2 {
		t.Fatalf("expected 2 algorithms, got %v", names)
	}
}
