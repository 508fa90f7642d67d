package orchestration

import "github.com/agbru/bignum/internal/compute"

// GetOperationsToRun determines which operations should be executed.
// compare (set by -compare) races every algorithm registered for the
// operation and cross-checks results; otherwise algo selects a single
// implementation, falling back to registry's first (alphabetically)
// algorithm when algo is empty.
func GetOperationsToRun(algo string, compare bool, registry *compute.Registry) []compute.Operation {
	if compare {
		return registry.All()
	}
	if algo == "" {
		names := registry.List()
		if len(names) == 0 {
			return nil
		}
		algo = names[0]
	}
	if op, err := registry.Get(algo); err == nil {
		return []compute.Operation{op}
	}
	return nil
}
