package qsim

import (
	"fmt"

	"github.com/cburdine/qit-superdense/superdense/circuit"
)

// Simulate evolves a fresh |0...0> register through every unitary gate in c
// and returns the resulting state. Barriers and measurements are ignored;
// sampling the returned state measures the whole register.
func Simulate(c *circuit.Circuit) (*State, error) {
	s, err := NewState(c.Qubits())
	if err != nil {
		return nil, err
	}
	for _, g := range c.Gates() {
		switch g.Kind {
		case circuit.KindH:
			s.H(g.Target)
		case circuit.KindX:
			s.X(g.Target)
		case circuit.KindY:
			s.Y(g.Target)
		case circuit.KindZ:
			s.Z(g.Target)
		case circuit.KindCX:
			s.CX(g.Control, g.Target)
		case circuit.KindCZ:
			s.CZ(g.Control, g.Target)
		case circuit.KindSwap:
			s.Swap(g.Control, g.Target)
		case circuit.KindBarrier, circuit.KindMeasure:
		default:
			return nil, fmt.Errorf("cannot simulate gate kind %q", g.Kind)
		}
	}
	return s, nil
}
