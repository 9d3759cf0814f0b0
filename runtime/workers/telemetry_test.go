package workers

import (
	"bytes"
	"chat-relay/observability"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestTelemetryWorker_ReportsCounters(t *testing.T) {
	req := require.New(t)
	out := &syncBuffer{}
	log := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	stats := observability.NewStats()
	stats.Posted.Add(3)
	stats.Suppressed.Add(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewTelemetryWorker(log, 10*time.Millisecond, stats).Run(ctx) }()

	req.Eventually(func() bool {
		s := out.String()
		return strings.Contains(s, "Chat pipeline telemetry") &&
			strings.Contains(s, "posted=3") &&
			strings.Contains(s, "suppressed=1")
	}, time.Second, 10*time.Millisecond)

	// When the context is done the worker finishes cleanly
	cancel()
	req.NoError(<-done)
}
