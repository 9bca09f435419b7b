package qsim

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// normTolerance bounds how far from 1 the total probability mass may drift
// due to floating point error before we refuse to sample.
const normTolerance = 1e-9

// Sample draws shots measurements of every qubit in the register and returns
// the number of times each basis state was observed. The state itself is not
// collapsed; each shot is an independent measurement of a fresh copy, which
// matches rerunning the circuit.
func (s *State) Sample(shots int, src rand.Source) (map[int]int, error) {
	if shots < 1 {
		return nil, fmt.Errorf("shots must be positive, got %d", shots)
	}
	if src == nil {
		return nil, fmt.Errorf("must provide a randomness source")
	}
	probs := s.Probabilities()
	if total := floats.Sum(probs); total < 1-normTolerance || total > 1+normTolerance {
		return nil, fmt.Errorf("state is not normalized: total probability %v", total)
	}
	dist := distuv.NewCategorical(probs, src)
	counts := make(map[int]int)
	for i := 0; i < shots; i++ {
		counts[int(dist.Rand())]++
	}
	return counts, nil
}
