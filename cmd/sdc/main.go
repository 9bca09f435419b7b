// sdc builds the superdense coding circuit for a classical bit string, draws
// it, runs it on the statevector simulator, and prints how often each decoded
// bitstring was observed.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"
	"golang.org/x/exp/rand"

	"github.com/cburdine/qit-superdense/superdense"
	"github.com/cburdine/qit-superdense/superdense/bitarray"
)

var (
	message = flag.String("message", "001101", "Bit string to transmit, two bits per entangled pair.")
	shots   = flag.Int("shots", superdense.DefaultShots, "Number of measurement shots to sample.")
	seed    = flag.Uint64("seed", 42, "PRNG seed for measurement sampling.")
	draw    = flag.Bool("draw", true, "Print an ASCII rendering of the circuit before running it.")
	qasm    = flag.Bool("qasm", false, "Print OpenQASM 2.0 for the circuit instead of running it.")
)

func main() {
	flag.Parse()
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	bits, err := bitarray.Parse(*message)
	if err != nil {
		log.Fatal().Err(err).Msg("parsing message")
	}
	c, err := superdense.BuildMessageCircuit(bits)
	if err != nil {
		log.Fatal().Err(err).Msg("building message circuit")
	}
	if *qasm {
		fmt.Print(c.QASM())
		return
	}
	if *draw {
		fmt.Print(c.Draw())
		fmt.Println()
	}

	counts, err := superdense.Run(c, *shots, rand.NewSource(*seed))
	if err != nil {
		log.Fatal().Err(err).Msg("running circuit")
	}
	log.Info().
		Int("pairs", bits.Size()/2).
		Int("shots", *shots).
		Int("outcomes", len(counts)).
		Msg("run complete")
	fmt.Print(counts)
}
