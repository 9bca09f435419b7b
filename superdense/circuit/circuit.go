// Package circuit provides an append-only gate-list model of a quantum
// circuit, with ASCII rendering and OpenQASM 2.0 export.
package circuit

import (
	"fmt"
)

// A Kind names a gate type.
type Kind string

const (
	KindH       Kind = "H"
	KindX       Kind = "X"
	KindY       Kind = "Y"
	KindZ       Kind = "Z"
	KindCX      Kind = "CX"
	KindCZ      Kind = "CZ"
	KindSwap    Kind = "SWAP"
	KindBarrier Kind = "BARRIER"
	KindMeasure Kind = "MEASURE"
)

// A Gate is one placed gate. Control is -1 for single-qubit gates. Step is
// the gate's position on the circuit timeline; gates at distinct steps never
// overlap when drawn.
type Gate struct {
	Kind    Kind
	Target  int
	Control int
	Step    int
}

// A Circuit is a fixed-width register of qubits and an ordered list of gates
// applied to them.
type Circuit struct {
	qubits int
	gates  []Gate
	steps  int
}

// New returns an empty circuit over the given number of qubits.
func New(qubits int) (*Circuit, error) {
	if qubits < 1 {
		return nil, fmt.Errorf("circuit must hold at least one qubit, got %d", qubits)
	}
	return &Circuit{qubits: qubits}, nil
}

// Qubits returns the width of the circuit's register.
func (c *Circuit) Qubits() int {
	return c.qubits
}

// Gates returns the circuit's gates in application order.
func (c *Circuit) Gates() []Gate {
	return c.gates
}

// Steps returns the number of occupied timeline steps.
func (c *Circuit) Steps() int {
	return c.steps
}

// H appends a Hadamard gate on qubit q.
func (c *Circuit) H(q int) { c.add(KindH, q, -1) }

// X appends a Pauli-X gate on qubit q.
func (c *Circuit) X(q int) { c.add(KindX, q, -1) }

// Y appends a Pauli-Y gate on qubit q.
func (c *Circuit) Y(q int) { c.add(KindY, q, -1) }

// Z appends a Pauli-Z gate on qubit q.
func (c *Circuit) Z(q int) { c.add(KindZ, q, -1) }

// CX appends a controlled-X gate.
func (c *Circuit) CX(control, target int) { c.add(KindCX, target, control) }

// CZ appends a controlled-Z gate.
func (c *Circuit) CZ(control, target int) { c.add(KindCZ, target, control) }

// Swap appends a swap gate.
func (c *Circuit) Swap(q1, q2 int) { c.add(KindSwap, q2, q1) }

// Barrier appends a full-width barrier. Barriers only affect rendering and
// QASM output; simulation ignores them.
func (c *Circuit) Barrier() { c.add(KindBarrier, 0, -1) }

// Measure appends a computational-basis measurement of qubit q into classical
// bit q.
func (c *Circuit) Measure(q int) { c.add(KindMeasure, q, -1) }

// MeasureAll measures every qubit, packing the measurements into a single
// timeline step.
func (c *Circuit) MeasureAll() {
	step := c.steps
	for q := 0; q < c.qubits; q++ {
		c.gates = append(c.gates, Gate{Kind: KindMeasure, Target: q, Control: -1, Step: step})
	}
	c.steps = step + 1
}

func (c *Circuit) add(k Kind, target, control int) {
	c.gates = append(c.gates, Gate{
		Kind:    k,
		Target:  target,
		Control: control,
		Step:    c.steps,
	})
	c.steps++
}

// references reports whether g acts on the given qubit.
func (g Gate) references(qubit int) bool {
	return g.Target == qubit || g.Control == qubit
}
