package compute

import (
	"fmt"
	"sort"
)

// Registry resolves operation names to Operation implementations for a
// single logical command (e.g. all the registered Fibonacci algorithms, or
// all the registered Pow algorithms).
type Registry struct {
	operations map[string]Operation
}

// NewRegistry creates a registry populated with ops, keyed by their Name().
func NewRegistry(ops ...Operation) *Registry {
	r := &Registry{operations: make(map[string]Operation, len(ops))}
	for _, op := range ops {
		r.operations[op.Name()] = op
	}
	return r
}

// Get returns the operation registered under name.
func (r *Registry) Get(name string) (Operation, error) {
	op, ok := r.operations[name]
	if !ok {
		return nil, fmt.Errorf("compute: unknown algorithm %q", name)
	}
	return op, nil
}

// List returns every registered name in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.operations))
	for name := range r.operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every registered operation, sorted by name, for -compare runs.
func (r *Registry) All() []Operation {
	names := r.List()
	ops := make([]Operation, len(names))
	for i, name := range names {
		ops[i], _ = r.Get(name)
	}
	return ops
}

// extraFibOperations holds Fibonacci operations registered by build-tag
// gated files (e.g. fib_gmp.go) via init(), on top of the always-available
// pure-Go implementations.
var extraFibOperations []Operation

// FibRegistry returns the registry of Fibonacci algorithms.
func FibRegistry() *Registry {
	ops := append([]Operation{FastDoublingFib{}, IterativeFib{}}, extraFibOperations...)
	return NewRegistry(ops...)
}

// OperationsForOp returns the registry of algorithm choices for a given
// -op value ("fib", "pow", "modpow", "gcd"). Pow, ModPow and GCD each have
// exactly one implementation today, so their registries exist mainly for
// the -compare plumbing to stay uniform across operations.
func OperationsForOp(op string) (*Registry, error) {
	switch op {
	case "fib":
		return FibRegistry(), nil
	case "pow":
		return NewRegistry(Pow{}), nil
	case "modpow":
		return NewRegistry(ModPow{}), nil
	case "gcd":
		return NewRegistry(GCD{}), nil
	default:
		return nil, fmt.Errorf("compute: unknown operation %q", op)
	}
}
