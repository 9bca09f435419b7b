package superdense

import (
	"fmt"
	"strings"

	"github.com/cburdine/qit-superdense/superdense/bitarray"
	"github.com/cburdine/qit-superdense/superdense/circuit"
)

// Qubit layout for an n-pair message: qubit i holds carrier B of pair i and
// qubit i+n holds carrier A of pair i. Only carrier A is touched between
// Bell preparation and Bell measurement; it is the qubit that would travel.
func pairCarriers(i, n int) (a, b int) {
	return i + n, i
}

// BuildMessageCircuit lays out one Bell pair per two bits of msg and emits
// the full protocol: Bell preparation, Pauli encoding on each carrier A,
// Bell-basis decoding, and measurement of the whole register. The message
// must contain an even number of bits.
func BuildMessageCircuit(msg bitarray.Dense) (*circuit.Circuit, error) {
	if msg.Size() == 0 {
		return nil, fmt.Errorf("message must contain at least one bit pair")
	}
	if msg.Size()%2 != 0 {
		return nil, fmt.Errorf("message must contain an even number of bits, got %d", msg.Size())
	}
	pairs := msg.Size() / 2
	c, err := circuit.New(2 * pairs)
	if err != nil {
		return nil, err
	}
	for i := 0; i < pairs; i++ {
		a, b := pairCarriers(i, pairs)
		prepareBell(c, a, b)
	}
	c.Barrier()
	for i := 0; i < pairs; i++ {
		a, _ := pairCarriers(i, pairs)
		encodePair(c, a, msg.Get(2*i), msg.Get(2*i+1))
	}
	c.Barrier()
	for i := 0; i < pairs; i++ {
		a, b := pairCarriers(i, pairs)
		decodePair(c, a, b)
	}
	c.MeasureAll()
	return c, nil
}

// prepareBell entangles carriers a and b into the |Φ+> Bell state.
func prepareBell(c *circuit.Circuit, a, b int) {
	c.H(a)
	c.CX(a, b)
}

// encodePair applies the Pauli transformation selected by (b0, b1) to
// carrier a: Z for b0, X for b1, both for (1,1), nothing for (0,0).
func encodePair(c *circuit.Circuit, a int, b0, b1 bool) {
	if b0 {
		c.Z(a)
	}
	if b1 {
		c.X(a)
	}
}

// decodePair disentangles the pair so that a computational-basis measurement
// reads b0 off carrier a and b1 off carrier b. It inverts encodePair exactly:
// CX maps the X component onto carrier b, and H maps the Z component onto
// carrier a.
func decodePair(c *circuit.Circuit, a, b int) {
	c.CX(a, b)
	c.H(a)
}

// Canonicalize reorders a raw measurement string, which groups all carrier-B
// bits (positions 0..N-1) before all carrier-A bits (positions N..2N-1), into
// sequential bit-pair order: output position 2i takes the bit at input
// position i+N and output position 2i+1 takes the bit at input position i.
func Canonicalize(raw string) (string, error) {
	if len(raw)%2 != 0 {
		return "", fmt.Errorf("raw measurement must have even length, got %d", len(raw))
	}
	n := len(raw) / 2
	var sb strings.Builder
	sb.Grow(len(raw))
	for i := 0; i < n; i++ {
		sb.WriteByte(raw[i+n])
		sb.WriteByte(raw[i])
	}
	return sb.String(), nil
}

// Decanonicalize inverts Canonicalize, recovering the raw measurement order
// from a canonical bitstring.
func Decanonicalize(canon string) (string, error) {
	if len(canon)%2 != 0 {
		return "", fmt.Errorf("canonical bitstring must have even length, got %d", len(canon))
	}
	n := len(canon) / 2
	raw := make([]byte, len(canon))
	for i := 0; i < n; i++ {
		raw[i+n] = canon[2*i]
		raw[i] = canon[2*i+1]
	}
	return string(raw), nil
}
