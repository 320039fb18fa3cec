// SPDX-License-Identifier: MIT
// Package: qdistill/distill
//
// analyze.go — post-selection and fidelity estimation.
//
// Contract:
//   - PostSelect never fails: degenerate inputs (empty histogram, zero
//     acceptances) set Selection.Degenerate instead of erroring.
//   - Fidelity is the squared Bhattacharyya coefficient between the
//     empirical data distribution and an ideal reference. Range [0,1];
//     0 for an empty output.
//
// Determinism:
//   - Pure functions of their inputs; no randomness, no shared state.

package distill

import (
	"math"

	"github.com/katalvlaran/qdistill/circuit"
	"github.com/katalvlaran/qdistill/sampler"
)

// Selection is the outcome of post-selecting a histogram.
type Selection struct {
	SuccessRate float64        // accepted / completed
	Accepted    int            // shots that passed the acceptance rule
	Output      map[string]int // surviving data-bit distribution
	Degenerate  bool           // no shots, or nothing accepted
}

// PostSelect applies the program's acceptance rule to every counted
// outcome and projects the accepted shots onto the data bits.
func PostSelect(h sampler.Histogram, prog *circuit.Program) Selection {
	sel := Selection{Output: make(map[string]int)}
	if h.Completed == 0 {
		sel.Degenerate = true
		return sel
	}

	for key, n := range h.Counts {
		bits := parseBits(key)
		if prog.Accept(bits) {
			sel.Accepted += n
			sel.Output[prog.DataKey(bits)] += n
		}
	}
	sel.SuccessRate = float64(sel.Accepted) / float64(h.Completed)
	sel.Degenerate = sel.Accepted == 0
	return sel
}

// Fidelity estimates agreement between an observed data distribution and
// an ideal reference as the squared Bhattacharyya coefficient
// (Σ√(p·q))². Both arguments index bitstring keys; output holds raw
// counts, ideal holds probabilities.
//
// The estimate uses diagonal statistics only. A phase error that leaves
// the measured distribution unchanged is invisible to it, which is why
// the protocols in scope measure their data qubit in the frame where the
// target state is an eigenstate.
func Fidelity(output map[string]int, ideal map[string]float64) float64 {
	total := 0
	for _, n := range output {
		total += n
	}
	if total == 0 {
		return 0
	}

	bc := 0.0
	for key, q := range ideal {
		p := float64(output[key]) / float64(total)
		bc += math.Sqrt(p * q)
	}
	return bc * bc
}

// IdealOutput returns the noiseless data-bit distribution of a protocol,
// the reference Fidelity compares against. Unknown protocols yield nil.
func IdealOutput(p circuit.Protocol) map[string]float64 {
	switch p {
	case circuit.BBPSSW:
		// A noiseless purified pair collapses to correlated bits.
		return map[string]float64{"00": 0.5, "11": 0.5}
	case circuit.Magic3:
		// Data qubit carries the logical T³ phase; X-basis readout of
		// (|0⟩+e^{i3π/4}|1⟩)/√2.
		c := math.Pow(math.Cos(3*math.Pi/8), 2)
		return map[string]float64{"0": c, "1": 1 - c}
	case circuit.Magic15Ring, circuit.Magic15Star:
		// Fifteen transversal Ts compose to a logical T†; X-basis readout
		// of (|0⟩+e^{-iπ/4}|1⟩)/√2.
		c := math.Pow(math.Cos(math.Pi/8), 2)
		return map[string]float64{"0": c, "1": 1 - c}
	default:
		return nil
	}
}

// parseBits decodes a histogram key back into a classical register.
// Keys are produced by circuit.Bits.String, bit 0 leftmost.
func parseBits(key string) circuit.Bits {
	bits := make(circuit.Bits, len(key))
	for i := 0; i < len(key); i++ {
		if key[i] == '1' {
			bits[i] = 1
		}
	}
	return bits
}
