package observability

import "sync/atomic"

// Stats counts what happened to envelopes since the handler was created.
// All counters are safe for concurrent use.
type Stats struct {
	Posted     atomic.Int64
	Sending    atomic.Int64
	Cancelled  atomic.Int64
	Suppressed atomic.Int64
	Scheduled  atomic.Int64
	TimedOut   atomic.Int64
}

type StatsSnapshot struct {
	Posted     int64
	Sending    int64
	Cancelled  int64
	Suppressed int64
	Scheduled  int64
	TimedOut   int64
}

func NewStats() *Stats {
	return &Stats{}
}

func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Posted:     s.Posted.Load(),
		Sending:    s.Sending.Load(),
		Cancelled:  s.Cancelled.Load(),
		Suppressed: s.Suppressed.Load(),
		Scheduled:  s.Scheduled.Load(),
		TimedOut:   s.TimedOut.Load(),
	}
}

// Fields exposes the snapshot as loosely typed key/values for dashboards.
func (s StatsSnapshot) Fields() map[string]any {
	return map[string]any{
		"posted":     s.Posted,
		"sending":    s.Sending,
		"cancelled":  s.Cancelled,
		"suppressed": s.Suppressed,
		"scheduled":  s.Scheduled,
		"timed_out":  s.TimedOut,
	}
}
