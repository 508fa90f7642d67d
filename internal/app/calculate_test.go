package app

import (
	"errors"
	"testing"
	"time"

	"github.com/agbru/bignum/internal/config"
	"github.com/agbru/bignum/internal/orchestration"
)

var errBoom = errors.New("boom")

func TestBuildRequestParsesOperands(t *testing.T) {
	t.Parallel()
	cfg := config.AppConfig{Base: 10, A: "12", B: "34", M: "56"}
	req, err := buildRequest(cfg)
	if err != nil {
		t.Fatalf("buildRequest: %v", err)
	}
	if req.A.String() != "12" || req.B.String() != "34" || req.M.String() != "56" {
		t.Errorf("got A=%s B=%s M=%s, want 12/34/56", req.A.String(), req.B.String(), req.M.String())
	}
}

func TestBuildRequestRejectsInvalidOperand(t *testing.T) {
	t.Parallel()
	cfg := config.AppConfig{Base: 10, A: "not-a-number"}
	if _, err := buildRequest(cfg); err == nil {
		t.Fatal("expected an error for an unparseable operand")
	}
}

func TestBuildRequestLeavesBlankOperandsZero(t *testing.T) {
	t.Parallel()
	req, err := buildRequest(config.AppConfig{Base: 10})
	if err != nil {
		t.Fatalf("buildRequest: %v", err)
	}
	if !req.A.IsZero() || !req.B.IsZero() || !req.M.IsZero() {
		t.Error("blank operand strings should parse to zero values")
	}
}

func TestRequestLabel(t *testing.T) {
	t.Parallel()
	cases := []struct {
		cfg  config.AppConfig
		want string
	}{
		{config.AppConfig{Op: "fib", N: 100}, "F(100)"},
		{config.AppConfig{Op: "pow", A: "2", B: "10"}, "2^10"},
		{config.AppConfig{Op: "modpow", A: "2", B: "10", M: "7"}, "2^10 mod 7"},
		{config.AppConfig{Op: "gcd", A: "48", B: "18"}, "gcd(48, 18)"},
		{config.AppConfig{Op: "unknown"}, "unknown"},
	}
	for _, tc := range cases {
		if got := requestLabel(tc.cfg); got != tc.want {
			t.Errorf("requestLabel(%+v) = %q, want %q", tc.cfg, got, tc.want)
		}
	}
}

func TestWorkSizeForFib(t *testing.T) {
	t.Parallel()
	got := workSizeFor(config.AppConfig{Op: "fib", N: 92000})
	if got != 1000 {
		t.Errorf("workSizeFor fib N=92000 = %d, want 1000", got)
	}
}

func TestWorkSizeForOperandLengths(t *testing.T) {
	t.Parallel()
	got := workSizeFor(config.AppConfig{Op: "pow", A: "123", B: "45"})
	if got != uint64(len("123")+len("45"))*4 {
		t.Errorf("workSizeFor pow = %d, want %d", got, uint64(len("123")+len("45"))*4)
	}
}

func TestWithOptionalTimeoutNoDeadlineWhenZero(t *testing.T) {
	t.Parallel()
	ctx, cancel := withOptionalTimeout(nil, config.AppConfig{Timeout: 0})
	defer cancel()
	if _, ok := ctx.Deadline(); ok {
		t.Error("expected no deadline when Timeout is zero")
	}
}

func TestWithOptionalTimeoutSetsDeadline(t *testing.T) {
	t.Parallel()
	ctx, cancel := withOptionalTimeout(nil, config.AppConfig{Timeout: time.Minute})
	defer cancel()
	if _, ok := ctx.Deadline(); !ok {
		t.Error("expected a deadline when Timeout is set")
	}
}

func TestFindBestResultPicksFastestSuccess(t *testing.T) {
	t.Parallel()
	results := []orchestration.CalculationResult{
		{Name: "slow", Duration: 10 * time.Millisecond},
		{Name: "failed", Duration: time.Nanosecond, Err: errBoom},
		{Name: "fast", Duration: time.Millisecond},
	}
	best := findBestResult(results)
	if best == nil || best.Name != "fast" {
		t.Fatalf("findBestResult = %+v, want the fast, error-free result", best)
	}
}

func TestFindBestResultAllErrors(t *testing.T) {
	t.Parallel()
	results := []orchestration.CalculationResult{
		{Name: "a", Err: errBoom},
		{Name: "b", Err: errBoom},
	}
	if got := findBestResult(results); got != nil {
		t.Errorf("findBestResult = %+v, want nil when every result errored", got)
	}
}
