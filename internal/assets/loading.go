package assets

// Loading tracks completions of a fixed set of asset loads. A failed load counts toward
// readiness the same as a successful one.
type Loading struct {
	expected int
	results  []Result
	ready    bool
}

func NewLoading(expected int) *Loading {
	return &Loading{expected: expected}
}

// Complete records one finished load. It returns true only for the completion that makes
// the session ready.
func (l *Loading) Complete(r Result) bool {
	if len(l.results) >= l.expected {
		return false
	}
	l.results = append(l.results, r)
	if len(l.results) == l.expected && !l.ready {
		l.ready = true
		return true
	}
	return false
}

// IsReady reports whether every expected load has completed.
func (l *Loading) IsReady() bool {
	return l.ready
}

func (l *Loading) Expected() int {
	return l.expected
}

func (l *Loading) Completed() int {
	return len(l.results)
}

// Results returns the completed loads in completion order.
func (l *Loading) Results() []Result {
	out := make([]Result, len(l.results))
	copy(out, l.results)
	return out
}

// Failed returns the completed loads that reported an error.
func (l *Loading) Failed() []Result {
	var out []Result
	for _, r := range l.results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}
