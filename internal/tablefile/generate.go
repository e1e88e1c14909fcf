package tablefile

import (
	"fmt"
	"math/rand/v2"
	"strconv"
)

// GenerateOptions controls synthetic table generation.
type GenerateOptions struct {
	// Power sets the table size: each table gets 2^(Power-1) rows.
	Power int

	// MaxValue bounds the random payload values to [1, MaxValue].
	MaxValue int

	// Seed makes the output reproducible.
	Seed uint64
}

// MaxPower bounds GenerateOptions.Power so the tables fit in memory.
const MaxPower = 31

// Generate builds a pair of equally sized tables whose keys run 1..n in
// both sections, with uniformly random integer payloads.
func Generate(opts GenerateOptions) (*Tables, error) {
	if opts.Power < 1 || opts.Power > MaxPower {
		return nil, fmt.Errorf("power must be in [1, %d], got %d", MaxPower, opts.Power)
	}
	if opts.MaxValue < 1 {
		return nil, fmt.Errorf("max value must be positive, got %d", opts.MaxValue)
	}

	n := 1 << (opts.Power - 1)
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))

	gen := func() Table {
		table := make(Table, n)
		for i := range table {
			table[i] = Record{
				Key:     int64(i + 1),
				Payload: strconv.Itoa(rng.IntN(opts.MaxValue) + 1),
				Index:   i,
			}
		}
		return table
	}

	t0 := gen()
	t1 := gen()
	return &Tables{Header: Header{N0: n, N1: n}, T0: t0, T1: t1}, nil
}
