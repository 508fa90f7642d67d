package compute

import "testing"

func TestFibRegistryListsKnownAlgorithms(t *testing.T) {
	t.Parallel()
	names := FibRegistry().List()
	want := map[string]bool{"fast-doubling": false, "iterative": false}
	for _, n := range names {
		if _, ok := want[n]; ok {
			want[n] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("FibRegistry().List() = %v, missing %q", names, name)
		}
	}
}

func TestFibRegistryGetUnknown(t *testing.T) {
	t.Parallel()
	if _, err := FibRegistry().Get("does-not-exist"); err == nil {
		t.Fatal("expected an error for an unregistered algorithm")
	}
}

func TestFibRegistryAllMatchesList(t *testing.T) {
	t.Parallel()
	r := FibRegistry()
	all := r.All()
	names := r.List()
	if len(all) != len(names) {
		t.Fatalf("All() returned %d operations, List() returned %d names", len(all), len(names))
	}
	for i, op := range all {
		if op.Name() != names[i] {
			t.Errorf("All()[%d].Name() = %q, want %q", i, op.Name(), names[i])
		}
	}
}

func TestOperationsForOp(t *testing.T) {
	t.Parallel()
	cases := []struct {
		op      string
		wantErr bool
	}{
		{"fib", false},
		{"pow", false},
		{"modpow", false},
		{"gcd", false},
		{"nonsense", true},
	}
	for _, tc := range cases {
		reg, err := OperationsForOp(tc.op)
		if tc.wantErr {
			if err == nil {
				t.Errorf("OperationsForOp(%q) expected an error", tc.op)
			}
			continue
		}
		if err != nil {
			t.Fatalf("OperationsForOp(%q): %v", tc.op, err)
		}
		if len(reg.List()) == 0 {
			t.Errorf("OperationsForOp(%q) returned an empty registry", tc.op)
		}
	}
}
