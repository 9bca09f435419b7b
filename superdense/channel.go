package superdense

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/cburdine/qit-superdense/superdense/bitarray"
	"github.com/cburdine/qit-superdense/superdense/qsim"
)

// Carrier indices within a transmitted pair state: qubit 1 is carrier A (the
// qubit that travels), qubit 0 is carrier B (the qubit the receiver held all
// along).
const (
	carrierA = 1
	carrierB = 0
)

// NewSimulatedChannel creates a pair of (Sender, Receiver) structs simulating
// an entangled-pair channel. It is expected that each call to Send will be
// mirrored by a call to Receive. Expect calls to Send to hang if more than
// bufSize of them are made before Receive. The receiver measures with src,
// which must be non-nil.
func NewSimulatedChannel(bufSize int, src rand.Source) (*SimulatedSender, *SimulatedReceiver) {
	pairs := make(chan []*qsim.State, bufSize)
	ss := &SimulatedSender{pairs: pairs}
	sr := &SimulatedReceiver{pairs: pairs, src: src}
	return ss, sr
}

// A SimulatedSender encodes bit pairs onto Bell pairs and ships the encoded
// states to its paired SimulatedReceiver.
type SimulatedSender struct {
	pairs chan<- []*qsim.State
}

// A SimulatedReceiver decodes and measures the pair states shipped by its
// paired SimulatedSender.
type SimulatedReceiver struct {
	// Errors marks pairs whose carrier-A qubit suffers a bit flip in
	// transit; bit i of the mask corresponds to pair i of each batch. A
	// flipped carrier corrupts the second bit of its pair.
	Errors bitarray.Dense

	pairs <-chan []*qsim.State
	src   rand.Source
}

// Send encodes msg, two bits per Bell pair, and ships the batch. The message
// must contain an even, non-zero number of bits.
func (ss *SimulatedSender) Send(msg bitarray.Dense) error {
	if msg.Size() == 0 || msg.Size()%2 != 0 {
		return fmt.Errorf("message must contain a positive, even number of bits, got %d", msg.Size())
	}
	batch := make([]*qsim.State, 0, msg.Size()/2)
	for i := 0; i < msg.Size()/2; i++ {
		st, err := qsim.NewState(2)
		if err != nil {
			return err
		}
		st.H(carrierA)
		st.CX(carrierA, carrierB)
		if msg.Get(2 * i) {
			st.Z(carrierA)
		}
		if msg.Get(2*i + 1) {
			st.X(carrierA)
		}
		batch = append(batch, st)
	}
	ss.pairs <- batch
	return nil
}

// Receive decodes and measures the next batch of pair states, returning the
// reassembled message bits.
func (sr *SimulatedReceiver) Receive() (bitarray.Dense, error) {
	batch := <-sr.pairs
	var out bitarray.Dense
	for i, st := range batch {
		if sr.Errors.Get(i) {
			st.X(carrierA)
		}
		st.CX(carrierA, carrierB)
		st.H(carrierA)
		counts, err := st.Sample(1, sr.src)
		if err != nil {
			return bitarray.Empty(), fmt.Errorf("measuring pair %d: %w", i, err)
		}
		var outcome int
		for basis := range counts {
			outcome = basis
		}
		out.AppendBit(outcome&(1<<carrierA) != 0)
		out.AppendBit(outcome&(1<<carrierB) != 0)
	}
	return out, nil
}
