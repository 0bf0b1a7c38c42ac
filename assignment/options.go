package assignment

import "github.com/kestrelquest/queentransform/frontier"

// Options customizes Search, following the teacher's (builder package)
// functional-options idiom.
type Options struct {
	// Strategy selects which frontier realization drives the search.
	// Defaults to frontier.NewAStar, the only realization that is both
	// informed and guaranteed optimal under the admissible heuristic in
	// engine.go.
	Strategy func() frontier.Frontier[*Node]

	// Cutoff bounds solution length: candidates whose segment count meets
	// or exceeds it are pruned, and whose meets or exceeds the best found
	// so far are pruned too. Zero means "use the default (5*N)".
	Cutoff int
}

// Option mutates an Options value before a Search call.
type Option func(*Options)

// WithStrategy overrides the default A* frontier with any other realization
// — useful for the frontier-determinism property (spec.md §8.7) and for
// comparing strategies in tests and benchmarks.
func WithStrategy(make func() frontier.Frontier[*Node]) Option {
	return func(o *Options) { o.Strategy = make }
}

// WithCutoff overrides the default cutoff (5*N).
func WithCutoff(cutoff int) Option {
	return func(o *Options) { o.Cutoff = cutoff }
}

func resolveOptions(n int, opts []Option) Options {
	o := Options{
		Strategy: func() frontier.Frontier[*Node] { return frontier.NewAStar[*Node]() },
		Cutoff:   5 * n,
	}
	for _, apply := range opts {
		apply(&o)
	}
	if o.Cutoff <= 0 {
		o.Cutoff = 5 * n
	}
	return o
}
