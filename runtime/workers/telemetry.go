package workers

import (
	"chat-relay/contract"
	"chat-relay/observability"
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

var _ contract.Worker = (*TelemetryWorker)(nil)

// TelemetryWorker periodically logs pipeline counters along with the process health.
type TelemetryWorker struct {
	log            *slog.Logger
	metricInterval time.Duration
	stats          *observability.Stats
}

func NewTelemetryWorker(log *slog.Logger, metricInterval time.Duration, stats *observability.Stats) *TelemetryWorker {
	return &TelemetryWorker{
		log:            log,
		metricInterval: metricInterval,
		stats:          stats,
	}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping telemetry")
			return nil
		case <-ticker.C:
			w.report(p)
		}
	}
}

func (w *TelemetryWorker) report(p *process.Process) {
	snapshot := w.stats.Snapshot()
	attrs := []any{
		"posted", snapshot.Posted,
		"sending", snapshot.Sending,
		"cancelled", snapshot.Cancelled,
		"suppressed", snapshot.Suppressed,
		"scheduled", snapshot.Scheduled,
		"timed_out", snapshot.TimedOut,
	}

	cpu, err := p.CPUPercent()
	if err != nil {
		w.log.Debug("Error while finding process cpu usage", "err", err)
	} else {
		attrs = append(attrs, "cpu", cpu)
	}
	mem, err := p.MemoryInfo()
	if err != nil {
		w.log.Debug("Error while finding process ram usage", "err", err)
	} else {
		attrs = append(attrs, "rss_bytes", mem.RSS)
	}

	w.log.Info("Chat pipeline telemetry", attrs...)
}
