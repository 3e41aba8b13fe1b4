// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

// pick returns the single Rand in randOpt, or the global source.
func pick(randOpt []Rand) Rand {
	if len(randOpt) == 0 || randOpt[0] == nil {
		return NewGlobalRand()
	}
	return randOpt[0]
}

// Resample returns n indexes drawn uniformly at random from [0, n)
// with replacement, i.e., a bootstrap case resample of a sample of size n.
// Optionally can pass a single Rand interface to use --
// otherwise uses system global Rand source.
func Resample(n int, randOpt ...Rand) []int {
	return ResampleInto(make([]int, n), n, randOpt...)
}

// ResampleInto fills idx with indexes drawn uniformly from [0, n)
// with replacement, and returns it.
func ResampleInto(idx []int, n int, randOpt ...Rand) []int {
	rnd := pick(randOpt)
	for i := range idx {
		idx[i] = rnd.Intn(n)
	}
	return idx
}

// Uniform returns a value drawn uniformly from [lo, hi).
// Optionally can pass a single Rand interface to use --
// otherwise uses system global Rand source.
func Uniform(lo, hi float64, randOpt ...Rand) float64 {
	return lo + (hi-lo)*pick(randOpt).Float64()
}

// UniformN returns n values drawn uniformly from [lo, hi).
func UniformN(n int, lo, hi float64, randOpt ...Rand) []float64 {
	rnd := pick(randOpt)
	vs := make([]float64, n)
	for i := range vs {
		vs[i] = lo + (hi-lo)*rnd.Float64()
	}
	return vs
}
