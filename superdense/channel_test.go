package superdense

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/cburdine/qit-superdense/superdense/bitarray"
)

func TestChannelRoundTrip(t *testing.T) {
	sender, receiver := NewSimulatedChannel(1, rand.NewSource(5))
	msg, err := bitarray.Parse("001101")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sender.Send(msg); err != nil {
		t.Fatalf("sending message: %v", err)
	}
	got, err := receiver.Receive()
	if err != nil {
		t.Fatalf("receiving message: %v", err)
	}
	if !got.Equal(msg) {
		t.Errorf("received %q, want %q", got, msg)
	}
}

func TestChannelSequentialBatches(t *testing.T) {
	sender, receiver := NewSimulatedChannel(2, rand.NewSource(9))
	for _, s := range []string{"11", "0010"} {
		msg, err := bitarray.Parse(s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := sender.Send(msg); err != nil {
			t.Fatalf("sending message: %v", err)
		}
	}
	for _, s := range []string{"11", "0010"} {
		got, err := receiver.Receive()
		if err != nil {
			t.Fatalf("receiving message: %v", err)
		}
		if got.String() != s {
			t.Errorf("received %q, want %q", got, s)
		}
	}
}

func TestChannelTransitErrorFlipsSecondBit(t *testing.T) {
	sender, receiver := NewSimulatedChannel(1, rand.NewSource(3))
	// Flip carrier A of pair 1 in transit. A Pauli-X error on the
	// travelling qubit corrupts exactly the second bit of its pair.
	receiver.Errors = bitarray.NewDense([]byte{0b10}, 3)

	msg, err := bitarray.Parse("001101")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sender.Send(msg); err != nil {
		t.Fatalf("sending message: %v", err)
	}
	got, err := receiver.Receive()
	if err != nil {
		t.Fatalf("receiving message: %v", err)
	}
	want := "001001"
	if got.String() != want {
		t.Errorf("received %q, want %q", got, want)
	}
	if diff := got.XOr(msg); diff.CountOnes() != 1 {
		t.Errorf("transit error corrupted %d bits, want exactly 1", diff.CountOnes())
	}
}

func TestChannelRejectsOddMessages(t *testing.T) {
	sender, _ := NewSimulatedChannel(1, rand.NewSource(1))
	for _, s := range []string{"", "1", "011"} {
		msg, err := bitarray.Parse(s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := sender.Send(msg); err == nil {
			t.Errorf("Send(%q) succeeded, want error", s)
		}
	}
}
