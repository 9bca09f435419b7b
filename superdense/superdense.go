// Package superdense implements the superdense coding protocol: two
// classical bits ride on a single transmitted qubit by applying one of four
// Pauli transformations to the sender's half of a shared Bell pair, which
// the receiver undoes with a Bell-basis measurement.
package superdense

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/rand"

	"github.com/cburdine/qit-superdense/superdense/bitarray"
	"github.com/cburdine/qit-superdense/superdense/circuit"
	"github.com/cburdine/qit-superdense/superdense/qsim"
)

// DefaultShots is the number of measurement shots used when a caller does not
// specify one.
var DefaultShots = 1024

// Counts records how many times each canonical bitstring was observed across
// the shots of a run.
type Counts map[string]int

// String renders one line per observed bitstring, most frequent first with
// lexicographic order breaking ties.
func (c Counts) String() string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if c[keys[i]] != c[keys[j]] {
			return c[keys[i]] > c[keys[j]]
		}
		return keys[i] < keys[j]
	})
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%q: observed %d times\n", k, c[k])
	}
	return sb.String()
}

// Run simulates c once, samples the final state shots times, and returns the
// canonicalized bitstring counts.
func Run(c *circuit.Circuit, shots int, src rand.Source) (Counts, error) {
	state, err := qsim.Simulate(c)
	if err != nil {
		return nil, fmt.Errorf("simulating circuit: %w", err)
	}
	raw, err := state.Sample(shots, src)
	if err != nil {
		return nil, fmt.Errorf("sampling measurements: %w", err)
	}
	counts := make(Counts, len(raw))
	for basis, n := range raw {
		canon, err := Canonicalize(basisString(basis, c.Qubits()))
		if err != nil {
			return nil, err
		}
		counts[canon] += n
	}
	return counts, nil
}

// Transmit encodes msg, a string of '0' and '1' characters with two bits per
// entangled pair, onto a message circuit and returns the sampled counts.
// Under noiseless simulation every shot lands on msg itself.
func Transmit(msg string, shots int, src rand.Source) (Counts, error) {
	bits, err := bitarray.Parse(msg)
	if err != nil {
		return nil, err
	}
	c, err := BuildMessageCircuit(bits)
	if err != nil {
		return nil, err
	}
	return Run(c, shots, src)
}

// basisString renders a basis-state index as a bitstring with qubit 0 in the
// leftmost position.
func basisString(basis, qubits int) string {
	var sb strings.Builder
	sb.Grow(qubits)
	for q := 0; q < qubits; q++ {
		if basis&(1<<q) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
