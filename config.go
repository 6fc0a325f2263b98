package pathz

import "github.com/go-logr/logr"

type config struct {
	maxExpansions int
	log           logr.Logger
}

func defaultConfig() config {
	return config{
		maxExpansions: 0,
		log:           logr.Discard(),
	}
}

// Option is a function that configures a Session.
type Option func(*config)

// WithLogr sets the logger used for diagnostic output. Failed searches log
// their cause at verbosity 1; the engine is otherwise silent. The default
// logger discards everything.
var WithLogr = func(log logr.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// WithMaxExpansions caps how many nodes a single search may expand before
// giving up with ErrBudgetExceeded. Zero (the default) means unbounded.
// This is the hook for callers that need bounded search time; the engine
// itself has no timeout or cancellation points.
var WithMaxExpansions = func(n int) Option {
	return func(c *config) {
		c.maxExpansions = n
	}
}
