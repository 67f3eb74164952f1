// Package vrptw - shared conservation-invariant checks (spec.md §7).
//
// Every operator that redistributes customers across routes — a
// mutation, BRX, local search, or the constructor itself — must leave the
// customer multiset it started from unchanged (mutations/local search) or
// a valid subset of the instance's customers with no duplicates
// (construction, which may legitimately leave customers unrouted when the
// fleet is exhausted). A violation here means a bug in this package, not
// bad input, so it is reported as ErrInternalInvariantViolation rather
// than one of the InvalidInstance/InvalidConfig sentinels.
package vrptw

// sameMultiset reports whether a and b contain exactly the same customer
// ids with exactly the same multiplicities, ignoring order.
func sameMultiset(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}
	return true
}

// checkMutationConservation verifies that an operator which is only
// allowed to move customers between a solution's own routes (never create,
// drop, or duplicate one) left the solution's flattened customer multiset
// unchanged relative to before.
func checkMutationConservation(before []int, sol *Solution, operator string) error {
	if !sameMultiset(before, sol.flattenCustomerIDs()) {
		return invariantViolation(operator)
	}
	return nil
}

// checkFullConservation verifies that routed is exactly inst's full
// customer set, each appearing once — the invariant BRX must uphold when
// both of its parents already cover every customer.
func checkFullConservation(inst *Instance, routed []int, operator string) error {
	if !sameMultiset(routed, inst.CustomerIDs()) {
		return invariantViolation(operator)
	}
	return nil
}

// checkNoDuplicateRoutedCustomers verifies that a freshly constructed
// solution's routed customers are pairwise distinct and every one of them
// is a real customer of inst. Unlike checkMutationConservation, full
// coverage is not required here: construction may leave customers
// unrouted when the fleet is exhausted (Instance.NumVehicles is a hint,
// not a hard cap — see the Instance doc comment in types.go).
func checkNoDuplicateRoutedCustomers(inst *Instance, routed []int, operator string) error {
	seen := make(map[int]bool, len(routed))
	for _, id := range routed {
		if _, ok := inst.CustomerByID(id); !ok || id == 0 {
			return invariantViolation(operator)
		}
		if seen[id] {
			return invariantViolation(operator)
		}
		seen[id] = true
	}
	return nil
}
