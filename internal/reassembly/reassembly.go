// Package reassembly reconstructs original payloads from the sequence of
// AX.25 fragments the packetizer produced, reversing ax25.Packetize.
package reassembly

import (
	"errors"
	"sync"
	"time"
)

// ErrMismatch reports a fragment whose key declares a total of zero, or
// whose sequence number is outside [0, total).
var ErrMismatch = errors.New("reassembly: fragment total/sequence mismatch")

// Key identifies one reassembly run: the station pair and the fragment
// count the fragment declares. Fragments of the same station pair that
// declare different totals belong to separate runs.
type Key struct {
	Source string
	Dest   string
	Total  uint16
}

type run struct {
	chunks   [][]byte
	seen     int
	lastSeen time.Time
}

// Reassembler buffers fragments keyed by (source, dest, total) until every
// sequence number for that key has arrived, then yields the concatenated
// payload. Stale runs are evicted after TTL.
type Reassembler struct {
	mu   sync.Mutex
	runs map[Key]*run
	ttl  time.Duration
	now  func() time.Time
}

// New creates a Reassembler that discards runs idle for longer than ttl.
// A ttl of zero disables eviction.
func New(ttl time.Duration) *Reassembler {
	return &Reassembler{
		runs: make(map[Key]*run),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Add records one fragment. It returns the reassembled payload and true
// once every fragment for key has arrived; otherwise it returns (nil,
// false). Duplicate fragments for a sequence number already recorded are
// accepted idempotently, and runs for distinct keys never interact. A
// sequence number outside the declared total is reported as ErrMismatch.
func (r *Reassembler) Add(key Key, sequence uint16, payload []byte) ([]byte, bool, error) {
	if key.Total == 0 || sequence >= key.Total {
		return nil, false, ErrMismatch
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.evictLocked()

	rn, ok := r.runs[key]
	if !ok {
		rn = &run{chunks: make([][]byte, key.Total)}
		r.runs[key] = rn
	}

	if rn.chunks[sequence] == nil {
		cp := make([]byte, len(payload))
		copy(cp, payload)
		rn.chunks[sequence] = cp
		rn.seen++
	}
	rn.lastSeen = r.now()

	if rn.seen < int(key.Total) {
		return nil, false, nil
	}

	var out []byte
	for _, chunk := range rn.chunks {
		out = append(out, chunk...)
	}
	delete(r.runs, key)

	return out, true, nil
}

// Pending reports how many runs currently have at least one fragment
// buffered but not yet complete.
func (r *Reassembler) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.runs)
}

func (r *Reassembler) evictLocked() {
	if r.ttl <= 0 {
		return
	}
	now := r.now()
	for k, rn := range r.runs {
		if now.Sub(rn.lastSeen) > r.ttl {
			delete(r.runs, k)
		}
	}
}
