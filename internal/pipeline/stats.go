package pipeline

import "time"

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Total    int
	Media    int
	NotMedia int
	Failed   int
	Elapsed  time.Duration
}

// OK reports whether every input was classified without a diagnostic.
func (s *RunStats) OK() bool { return s.Failed == 0 }
