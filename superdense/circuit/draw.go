package circuit

import (
	"fmt"
	"strings"
)

// Rendering symbols. One rune per cell; cells are padded with wire segments.
const (
	wireRune    = '─'
	crossRune   = '┼'
	controlRune = '●'
	targetRune  = '⊕'
	swapRune    = '×'
	barrierRune = '░'
	measureRune = 'M'
)

// Draw renders the circuit as one ASCII wire per qubit, one column per
// timeline step.
func (c *Circuit) Draw() string {
	labelWidth := len(fmt.Sprintf("q%d", c.qubits-1))
	rows := make([]strings.Builder, c.qubits)
	for q := 0; q < c.qubits; q++ {
		fmt.Fprintf(&rows[q], "%-*s: ", labelWidth, fmt.Sprintf("q%d", q))
	}
	for step := 0; step < c.steps; step++ {
		for q := 0; q < c.qubits; q++ {
			rows[q].WriteRune(wireRune)
			rows[q].WriteRune(c.cellRune(step, q))
			rows[q].WriteRune(wireRune)
		}
	}
	var sb strings.Builder
	for q := 0; q < c.qubits; q++ {
		sb.WriteString(rows[q].String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// cellRune picks the symbol drawn at (step, qubit).
func (c *Circuit) cellRune(step, qubit int) rune {
	for _, g := range c.gates {
		if g.Step != step {
			continue
		}
		if g.Kind == KindBarrier {
			return barrierRune
		}
		if g.references(qubit) {
			return gateRune(g, qubit)
		}
		// Crossing wire between the two ends of a two-qubit gate.
		if g.Control >= 0 {
			lo, hi := g.Control, g.Target
			if lo > hi {
				lo, hi = hi, lo
			}
			if qubit > lo && qubit < hi {
				return crossRune
			}
		}
	}
	return wireRune
}

func gateRune(g Gate, qubit int) rune {
	switch g.Kind {
	case KindMeasure:
		return measureRune
	case KindCX:
		if qubit == g.Control {
			return controlRune
		}
		return targetRune
	case KindCZ:
		return controlRune
	case KindSwap:
		return swapRune
	default:
		return rune(g.Kind[0])
	}
}
