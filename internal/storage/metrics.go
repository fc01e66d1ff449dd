package storage

import "sync/atomic"

// Metrics counts the failures the persistence layer swallows. Reads degrade
// to empty results and best-effort writes are dropped, so these counters are
// the only way callers and tests can tell "empty because absent" from
// "empty because of failure".
type Metrics struct {
	readFailures     atomic.Uint64
	writeFailures    atomic.Uint64
	droppedDocuments atomic.Uint64
}

// ReadFailure records a read that degraded to an empty or absent result.
func (m *Metrics) ReadFailure() { m.readFailures.Add(1) }

// WriteFailure records a best-effort write that was dropped.
func (m *Metrics) WriteFailure() { m.writeFailures.Add(1) }

// DroppedDocument records a malformed document skipped during a batch read.
func (m *Metrics) DroppedDocument() { m.droppedDocuments.Add(1) }

func (m *Metrics) ReadFailures() uint64 { return m.readFailures.Load() }

func (m *Metrics) WriteFailures() uint64 { return m.writeFailures.Load() }

func (m *Metrics) DroppedDocuments() uint64 { return m.droppedDocuments.Load() }
