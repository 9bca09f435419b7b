package circuit

import (
	"fmt"
	"strings"
)

// QASM generates OpenQASM 2.0 output for the circuit. Measurements map qubit
// q to classical bit q; the classical register is sized to the highest
// measured qubit, or omitted when nothing is measured.
func (c *Circuit) QASM() string {
	maxMeasured := -1
	for _, g := range c.gates {
		if g.Kind == KindMeasure && g.Target > maxMeasured {
			maxMeasured = g.Target
		}
	}

	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", c.qubits)
	if maxMeasured >= 0 {
		fmt.Fprintf(&sb, "creg c[%d];\n", maxMeasured+1)
	}
	sb.WriteByte('\n')

	for _, g := range c.gates {
		switch g.Kind {
		case KindMeasure:
			fmt.Fprintf(&sb, "measure q[%d] -> c[%d];\n", g.Target, g.Target)
		case KindBarrier:
			sb.WriteString("barrier q;\n")
		case KindCX:
			fmt.Fprintf(&sb, "cx q[%d], q[%d];\n", g.Control, g.Target)
		case KindCZ:
			fmt.Fprintf(&sb, "cz q[%d], q[%d];\n", g.Control, g.Target)
		case KindSwap:
			fmt.Fprintf(&sb, "swap q[%d], q[%d];\n", g.Control, g.Target)
		default:
			fmt.Fprintf(&sb, "%s q[%d];\n", strings.ToLower(string(g.Kind)), g.Target)
		}
	}
	return sb.String()
}
