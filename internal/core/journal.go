// ABOUTME: Journal memoizes side-effecting orchestration steps by deterministic key
// ABOUTME: Re-execution after a crash short-circuits to recorded results
package core

import "sync"

// stepRecord holds the recorded outcome of one journaled step
type stepRecord struct {
	value any
	err   error
}

// Journal records {key → result} for every side-effecting step so the
// orchestrator can be re-executed from the top without re-invoking
// external capabilities. Keys must be deterministic functions of the
// input (project, snippet name, chunk index), never counters or random
// values.
type Journal struct {
	mu    sync.Mutex
	steps map[string]stepRecord
}

// NewJournal creates an empty journal
func NewJournal() *Journal {
	return &Journal{steps: make(map[string]stepRecord)}
}

// Do returns the recorded result for key if one exists; otherwise it runs
// fn, records the outcome, and returns it. The replayed flag lets callers
// log a recovery replay differently from a first execution.
func (j *Journal) Do(key string, fn func() (any, error)) (value any, replayed bool, err error) {
	j.mu.Lock()
	if rec, ok := j.steps[key]; ok {
		j.mu.Unlock()
		return rec.value, true, rec.err
	}
	j.mu.Unlock()

	value, err = fn()

	j.mu.Lock()
	j.steps[key] = stepRecord{value: value, err: err}
	j.mu.Unlock()

	return value, false, err
}

// Len returns the number of recorded steps
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.steps)
}
