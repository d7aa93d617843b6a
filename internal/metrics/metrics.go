package metrics

import (
	"sync"
	"time"
)

type mutationStats struct {
	calls    int
	rejected int
}

// Recorder captures lightweight, in-memory metrics about registry
// mutations, auth transitions, and persistence, mirroring them to OTel
// instruments when telemetry is enabled.
type Recorder struct {
	mu              sync.Mutex
	mutations       map[string]*mutationStats
	persistFailures map[string]int
	authTransitions int
	otel            *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		mutations:       make(map[string]*mutationStats),
		persistFailures: make(map[string]int),
		otel:            otel,
	}
}

// RecordMutation counts a registry mutation attempt. A non-nil err marks it
// rejected (unauthorized, unknown game, invalid transition).
func (r *Recorder) RecordMutation(op string, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats := r.mutations[op]
	if stats == nil {
		stats = &mutationStats{}
		r.mutations[op] = stats
	}
	stats.calls++
	if err != nil {
		stats.rejected++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordMutation(op, err)
	}
}

// RecordAuthTransition counts an auth-flow step change.
func (r *Recorder) RecordAuthTransition(from, to string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.authTransitions++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordAuthTransition(from, to)
	}
}

// RecordPersistFailure counts a failed durable-storage write for a record.
func (r *Recorder) RecordPersistFailure(record string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.persistFailures[record]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPersistFailure(record)
	}
}

// RecordNotification counts an emitted feed entry.
func (r *Recorder) RecordNotification(kind string) {
	if r == nil {
		return
	}
	if r.otel != nil {
		r.otel.recordNotification(kind)
	}
}

// RecordHTTPRequest captures an ops-endpoint request.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	if r.otel != nil {
		r.otel.recordHTTPRequest(method, path, status, duration)
	}
}

// MutationCalls returns how many times an op was attempted.
func (r *Recorder) MutationCalls(op string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats := r.mutations[op]; stats != nil {
		return stats.calls
	}
	return 0
}

// MutationRejections returns how many attempts of an op were rejected.
func (r *Recorder) MutationRejections(op string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats := r.mutations[op]; stats != nil {
		return stats.rejected
	}
	return 0
}

// PersistFailures returns the failure count for a record.
func (r *Recorder) PersistFailures(record string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.persistFailures[record]
}

// AuthTransitions returns the total recorded step changes.
func (r *Recorder) AuthTransitions() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.authTransitions
}
