package bignum

import "testing"

func TestAddMagSubMag(t *testing.T) {
	a := []word{wordMax, wordMax}
	b := []word{1}
	sum := addMag(a, b)
	want := []word{0, 0, 1}
	if !equalWords(sum, want) {
		t.Errorf("addMag = %v, want %v", sum, want)
	}
	diff := subMag(sum, b)
	if !equalWords(trimMag(diff), trimMag(a)) {
		t.Errorf("subMag = %v, want %v", diff, a)
	}
}

func TestCmpMag(t *testing.T) {
	if cmpMag([]word{1, 2}, []word{1, 2}) != 0 {
		t.Error("equal magnitudes should compare 0")
	}
	if cmpMag([]word{1, 2}, []word{1, 3}) >= 0 {
		t.Error("{1,2} should be less than {1,3}")
	}
	if cmpMag([]word{1, 2, 3}, []word{5, 5}) <= 0 {
		t.Error("longer magnitude should compare greater")
	}
}

func TestShlVUShrVURoundTrip(t *testing.T) {
	x := []word{0x12345678, 0x9abcdef0}
	shifted := make([]word, len(x))
	carry := shlVU(shifted, x, 5)
	back := make([]word, len(x))
	shrVU(back, shifted, 5)
	back[len(back)-1] |= carry << (wordBits - 5)
	if !equalWords(back, x) {
		t.Errorf("shl/shr round trip: got %v, want %v", back, x)
	}
}

func TestAddSelfSubSelfCarryPropagation(t *testing.T) {
	dst := []word{wordMax, wordMax, 0}
	c := addSelf(dst, []word{1})
	if c != 0 || !equalWords(dst, []word{0, 0, 1}) {
		t.Errorf("addSelf carry propagation failed: dst=%v c=%d", dst, c)
	}
	c = subSelf(dst, []word{1})
	if c != 0 || !equalWords(dst, []word{wordMax, wordMax, 0}) {
		t.Errorf("subSelf borrow propagation failed: dst=%v c=%d", dst, c)
	}
}

func equalWords(a, b []word) bool {
	a, b = trimMag(append([]word(nil), a...)), trimMag(append([]word(nil), b...))
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
