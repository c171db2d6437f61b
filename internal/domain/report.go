package domain

import "time"

// Tally counts the outcome of every file seen during a copy pass.
type Tally struct {
	Copied  int
	Skipped int
	Failed  int
	Bytes   int64
}

type Failure struct {
	Path string
	Err  error
}

type Report struct {
	Tally
	Instances          int
	InstancesWithMedia int
	RangeStart         *time.Time
	RangeEnd           *time.Time
	Failures           []Failure
	DryRun             bool
}

func (r *Report) AddFailure(path string, err error) {
	r.Failed++
	r.Failures = append(r.Failures, Failure{Path: path, Err: err})
}

// Observe widens the capture date range to include t.
func (r *Report) Observe(t time.Time) {
	if t.IsZero() {
		return
	}
	if r.RangeStart == nil || t.Before(*r.RangeStart) {
		start := t
		r.RangeStart = &start
	}
	if r.RangeEnd == nil || t.After(*r.RangeEnd) {
		end := t
		r.RangeEnd = &end
	}
}
