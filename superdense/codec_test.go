package superdense

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/cburdine/qit-superdense/superdense/bitarray"
)

func TestAllBitPairsRoundTrip(t *testing.T) {
	for _, msg := range []string{"00", "01", "10", "11"} {
		t.Run(msg, func(t *testing.T) {
			counts, err := Transmit(msg, 256, rand.NewSource(11))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if counts[msg] != 256 {
				t.Errorf("transmitting %q yielded counts %v, want all 256 shots on %q", msg, counts, msg)
			}
		})
	}
}

func TestMultiPairMessage(t *testing.T) {
	const msg = "001101"
	counts, err := Transmit(msg, 1024, rand.NewSource(42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(counts) != 1 || counts[msg] != 1024 {
		t.Errorf("transmitting %q yielded counts %v, want {%q: 1024}", msg, counts, msg)
	}
}

func TestBuildMessageCircuitValidation(t *testing.T) {
	tcs := []struct {
		name string
		msg  string
	}{
		{name: "odd length", msg: "001"},
		{name: "empty", msg: ""},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			bits, err := bitarray.Parse(tc.msg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, err := BuildMessageCircuit(bits); err == nil {
				t.Errorf("BuildMessageCircuit(%q) succeeded, want error", tc.msg)
			}
		})
	}
}

func TestMessageCircuitShape(t *testing.T) {
	bits, err := bitarray.Parse("1101")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, err := BuildMessageCircuit(bits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := c.Qubits(), 4; got != want {
		t.Errorf("circuit holds %d qubits, want %d", got, want)
	}
}

func TestCanonicalizeReordersPairs(t *testing.T) {
	tcs := []struct {
		name  string
		raw   string
		canon string
	}{
		{
			name:  "single pair",
			raw:   "01",
			canon: "10",
		}, {
			name:  "three pairs",
			raw:   "010101",
			canon: "100110",
		}, {
			name:  "empty",
			raw:   "",
			canon: "",
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			canon, err := Canonicalize(tc.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if canon != tc.canon {
				t.Errorf("Canonicalize(%q) == %q, want %q", tc.raw, canon, tc.canon)
			}
			raw, err := Decanonicalize(canon)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if raw != tc.raw {
				t.Errorf("Decanonicalize(%q) == %q, want %q", canon, raw, tc.raw)
			}
		})
	}
}

func TestCanonicalizeRejectsOddLength(t *testing.T) {
	if _, err := Canonicalize("010"); err == nil {
		t.Errorf("Canonicalize of odd-length string succeeded, want error")
	}
	if _, err := Decanonicalize("010"); err == nil {
		t.Errorf("Decanonicalize of odd-length string succeeded, want error")
	}
}

func TestCountsString(t *testing.T) {
	c := Counts{"0011": 1000, "0010": 24}
	want := "\"0011\": observed 1000 times\n\"0010\": observed 24 times\n"
	if got := c.String(); got != want {
		t.Errorf("Counts.String() == %q, want %q", got, want)
	}
}
