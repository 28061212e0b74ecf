// SPDX-License-Identifier: MIT
// Package: euler/builder
//
// impl_parity.go - RepairParity(policy): make vertex degrees even.
//
// Policies:
//   • ParityNone        no-op.
//   • ParitySinglePass  for v = 0..n-1, if deg(v) is odd at that moment, add
//                       v-Intn(n). One pass only: the partner's parity flips
//                       and a drawn self-loop adds 2, so odd vertices may
//                       remain. Needs cfg.rng.
//   • ParityPairOdd     collect odd vertices ascending and add (o0,o1),
//                       (o2,o3), …. The odd count is even (handshake), so
//                       every degree ends even. Needs no randomness.
//
// Complexity: O(V) plus the added edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/euler/core"
)

// ParityPolicy selects how RepairParity treats odd-degree vertices.
type ParityPolicy int

const (
	// ParityNone leaves the graph untouched.
	ParityNone ParityPolicy = iota
	// ParitySinglePass adds one random edge per odd vertex in a single pass.
	ParitySinglePass
	// ParityPairOdd joins odd vertices pairwise in ascending order.
	ParityPairOdd
)

// parityNames maps each policy to its stable text form.
var parityNames = map[ParityPolicy]string{
	ParityNone:       "none",
	ParitySinglePass: "single",
	ParityPairOdd:    "pair",
}

// String returns "none", "single", "pair", or "ParityPolicy(k)".
func (p ParityPolicy) String() string {
	if s, ok := parityNames[p]; ok {
		return s
	}

	return fmt.Sprintf("ParityPolicy(%d)", int(p))
}

// ParseParityPolicy maps "none", "single" or "pair" to a policy.
func ParseParityPolicy(s string) (ParityPolicy, error) {
	for p, name := range parityNames {
		if name == s {
			return p, nil
		}
	}

	return ParityNone, fmt.Errorf("%w: %q", ErrUnknownParityPolicy, s)
}

// RepairParity returns a Constructor that applies policy to g.
func RepairParity(policy ParityPolicy) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		switch policy {
		case ParityNone:
			return nil
		case ParitySinglePass:
			return repairSinglePass(g, cfg)
		case ParityPairOdd:
			return repairPairOdd(g)
		default:
			return fmt.Errorf("%s: %w: %d", MethodRepairParity, ErrUnknownParityPolicy, int(policy))
		}
	}
}

// repairSinglePass reads each degree live, so an edge added for v may fix
// or break a later vertex.
func repairSinglePass(g *core.Graph, cfg builderConfig) error {
	n := g.Order()
	if n == 0 {
		return nil
	}
	if cfg.rng == nil {
		return fmt.Errorf("%s(%s): %w", MethodRepairParity, ParitySinglePass, ErrNeedRandSource)
	}

	for v := 0; v < n; v++ {
		d, err := g.Degree(v)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodRepairParity, err)
		}
		if d%2 == 0 {
			continue
		}
		if err = addEdge(MethodRepairParity, g, v, cfg.rng.Intn(n)); err != nil {
			return err
		}
	}

	return nil
}

// repairPairOdd pairs odd vertices from a single degree snapshot.
func repairPairOdd(g *core.Graph) error {
	var odd []int
	for v, d := range g.Degrees() {
		if d%2 != 0 {
			odd = append(odd, v)
		}
	}

	for i := 0; i+1 < len(odd); i += 2 {
		if err := addEdge(MethodRepairParity, g, odd[i], odd[i+1]); err != nil {
			return err
		}
	}

	return nil
}
