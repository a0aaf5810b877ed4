package idscrape

import (
	"slices"
	"time"
)

// Recorder accumulates scraped results together with the time each one
// was captured. It has no bounds; callers decide when to Clear.
// A Recorder is owned by a single goroutine.
type Recorder struct {
	// Now returns the capture time. Defaults to time.Now.
	Now func() time.Time

	data  []*Result
	times []time.Time
}

// NewRecorder returns an empty Recorder stamping with the wall clock.
func NewRecorder() *Recorder {
	return &Recorder{Now: time.Now}
}

// Add appends r and returns the time it was stamped with.
func (rec *Recorder) Add(r *Result) time.Time {
	now := time.Now
	if rec.Now != nil {
		now = rec.Now
	}
	at := now()
	rec.data = append(rec.data, r)
	rec.times = append(rec.times, at)
	return at
}

// Clear empties both sequences.
func (rec *Recorder) Clear() {
	rec.data = rec.data[:0]
	rec.times = rec.times[:0]
}

// Len returns the number of recorded results.
func (rec *Recorder) Len() int {
	return len(rec.data)
}

// Data returns the recorded results in capture order.
func (rec *Recorder) Data() []*Result {
	return slices.Clone(rec.data)
}

// Times returns the capture times, parallel to Data.
func (rec *Recorder) Times() []time.Time {
	return slices.Clone(rec.times)
}

// Latest returns the most recent result and its capture time.
func (rec *Recorder) Latest() (*Result, time.Time, bool) {
	if len(rec.data) == 0 {
		return nil, time.Time{}, false
	}
	i := len(rec.data) - 1
	return rec.data[i], rec.times[i], true
}
