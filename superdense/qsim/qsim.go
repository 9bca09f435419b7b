// Package qsim provides a small statevector simulator for the handful of
// gates the superdense coding protocol needs. Basis states are indexed so
// that bit q of the index holds the value of qubit q.
package qsim

import (
	"fmt"
	"math"
	"math/cmplx"
)

// A State holds the full amplitude vector for a register of qubits,
// initialized to the all-zeros basis state.
type State struct {
	amps   []complex128
	qubits int
}

// NewState returns a |0...0> state over the given number of qubits.
func NewState(qubits int) (*State, error) {
	if qubits < 1 {
		return nil, fmt.Errorf("state must hold at least one qubit, got %d", qubits)
	}
	amps := make([]complex128, 1<<qubits)
	amps[0] = 1
	return &State{amps: amps, qubits: qubits}, nil
}

// Qubits returns the number of qubits in the register.
func (s *State) Qubits() int {
	return s.qubits
}

// Amplitude returns the amplitude of the given basis state.
func (s *State) Amplitude(basis int) complex128 {
	return s.amps[basis]
}

// H applies a Hadamard gate to qubit q.
func (s *State) H(q int) {
	f := complex(1/math.Sqrt2, 0)
	bit := 1 << q
	next := make([]complex128, len(s.amps))
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			next[i] = f * (s.amps[i] + s.amps[j])
			next[j] = f * (s.amps[i] - s.amps[j])
		}
	}
	s.amps = next
}

// X applies a Pauli-X gate to qubit q.
func (s *State) X(q int) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

// Y applies a Pauli-Y gate to qubit q.
func (s *State) Y(q int) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			s.amps[i], s.amps[j] = 1i*s.amps[j], -1i*s.amps[i]
		}
	}
}

// Z applies a Pauli-Z gate to qubit q.
func (s *State) Z(q int) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit != 0 {
			s.amps[i] *= -1
		}
	}
}

// S applies a phase gate to qubit q, or its adjoint if dagger is set.
func (s *State) S(q int, dagger bool) {
	bit := 1 << q
	factor := complex128(1i)
	if dagger {
		factor = -1i
	}
	for i := range s.amps {
		if i&bit != 0 {
			s.amps[i] *= factor
		}
	}
}

// CX applies a controlled-X gate.
func (s *State) CX(control, target int) {
	cBit, tBit := 1<<control, 1<<target
	for i := range s.amps {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

// CZ applies a controlled-Z gate.
func (s *State) CZ(control, target int) {
	cBit, tBit := 1<<control, 1<<target
	for i := range s.amps {
		if i&cBit != 0 && i&tBit != 0 {
			s.amps[i] *= -1
		}
	}
}

// Swap exchanges the states of two qubits.
func (s *State) Swap(q1, q2 int) {
	bit1, bit2 := 1<<q1, 1<<q2
	for i := range s.amps {
		if i&bit1 != 0 && i&bit2 == 0 {
			j := (i & ^bit1) | bit2
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

// Probabilities returns the measurement probability of every basis state.
func (s *State) Probabilities() []float64 {
	probs := make([]float64, len(s.amps))
	for i, a := range s.amps {
		probs[i] = real(a * cmplx.Conj(a))
	}
	return probs
}
