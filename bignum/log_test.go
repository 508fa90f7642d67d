package bignum

import (
	"math"
	"math/big"
	"testing"
)

func TestLogInlineMatchesMathLog(t *testing.T) {
	for _, v := range []int64{1, 2, 100, math.MaxInt32} {
		got := FromInt64(v).Log()
		want := math.Log(float64(v))
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("Log(%d) = %v, want %v", v, got, want)
		}
	}
}

func TestLogExtendedApproximatesBitLength(t *testing.T) {
	// log(2^n) == n*ln(2) exactly, and is a clean way to check the
	// top-64-bits-plus-offset extraction is wired correctly for n well
	// beyond a single limb.
	n := uint(500)
	z := One.Lsh(n)
	got := z.Log()
	want := float64(n) * math.Ln2
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("Log(2^%d) = %v, want %v", n, got, want)
	}
}

func TestLogZeroAndNegative(t *testing.T) {
	if got := Zero.Log(); !math.IsInf(got, -1) {
		t.Errorf("Log(0) = %v, want -Inf", got)
	}
	if got := FromInt64(-5).Log(); !math.IsNaN(got) {
		t.Errorf("Log(-5) = %v, want NaN", got)
	}
}

func TestLogBaseMatchesChangeOfBase(t *testing.T) {
	z := FromInt64(1024)
	if got, want := z.LogBase(2), 10.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("LogBase(1024, 2) = %v, want %v", got, want)
	}
	if got, want := z.LogBase(10), math.Log10(1024); math.Abs(got-want) > 1e-9 {
		t.Errorf("LogBase(1024, 10) = %v, want %v", got, want)
	}
}

func TestLogBaseEdgeCasesFollowIEEEDivision(t *testing.T) {
	z := FromInt64(8)
	if got := z.LogBase(1); !math.IsInf(got, 1) {
		t.Errorf("LogBase(8, 1) = %v, want +Inf", got)
	}
	if got := FromInt64(1).LogBase(1); !math.IsNaN(got) {
		t.Errorf("LogBase(1, 1) = %v, want NaN (ln(1)/ln(1) = 0/0)", got)
	}
}

func TestLogReasonablyClosesWithMathBig(t *testing.T) {
	a := new(big.Int)
	a.SetString("123456789012345678901234567890123456789012345678901234567890", 10)
	z, _ := SetString(a.String(), 10)

	// Cross-check via the number of decimal digits: log10(z) ≈ len(digits)-1.
	got := z.Log() / math.Ln10
	wantApprox := float64(len(a.String()) - 1)
	if math.Abs(got-wantApprox) > 1 {
		t.Errorf("log10 estimate %v far from decimal-digit-count estimate %v", got, wantApprox)
	}
}
