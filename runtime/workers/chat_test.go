package workers

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/mocks"
	"chat-relay/observability"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type chatWorkerFixture struct {
	queue      *mocks.MockIHandoffQueue
	sequencer  *mocks.MockISequencer
	dispatcher *mocks.MockIDispatcher
	stats      *observability.Stats
	worker     *ChatWorker
}

func newChatWorkerFixture(t *testing.T) *chatWorkerFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	f := &chatWorkerFixture{
		queue:      mocks.NewMockIHandoffQueue(ctrl),
		sequencer:  mocks.NewMockISequencer(ctrl),
		dispatcher: mocks.NewMockIDispatcher(ctrl),
		stats:      observability.NewStats(),
	}
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	f.worker = NewChatWorker(log, f.queue, f.sequencer, f.dispatcher, f.stats)
	return f
}

// feed hands envs over one by one, then blocks until the worker context is done.
func (f *chatWorkerFixture) feed(envs ...domain.Envelope) {
	calls := make([]any, 0, len(envs)+1)
	for _, env := range envs {
		calls = append(calls, f.queue.EXPECT().Take(gomock.Any()).Return(env, nil).Times(1))
	}
	calls = append(calls, f.queue.EXPECT().Take(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (domain.Envelope, error) {
			<-ctx.Done()
			return domain.Envelope{}, ctx.Err()
		}).Times(1))
	gomock.InOrder(calls...)
	f.queue.EXPECT().Close().Times(1)
}

func TestChatWorker_RelevantEnvelope_GoesThroughSequencer(t *testing.T) {
	req := require.New(t)
	f := newChatWorkerFixture(t)
	env := domain.NewEnvelope(domain.NewParticipant("alice", nil), domain.NewChatEvent("hello", nil))
	f.feed(env)

	delivered := make(chan struct{})
	f.sequencer.EXPECT().Run(gomock.Any(), env, gomock.Any()).
		Do(func(_ context.Context, _ domain.Envelope, continuation func()) { continuation() }).
		Times(1)
	f.dispatcher.EXPECT().Deliver(env).Do(func(domain.Envelope) { close(delivered) }).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.worker.Run(ctx) }()

	// Then the continuation reaches the dispatcher
	select {
	case <-delivered:
	case <-time.After(time.Second):
		req.Fail("envelope never reached the dispatcher")
	}

	// When the parent context is cancelled, the worker reports it
	cancel()
	req.ErrorIs(<-done, context.Canceled)
	req.Equal(int64(1), f.stats.Sending.Load())
}

func TestChatWorker_CancelledEnvelope_SkipsSequencer(t *testing.T) {
	req := require.New(t)
	f := newChatWorkerFixture(t)
	evt := domain.NewChatEvent("hello", nil)
	evt.CancelMessage()
	f.feed(domain.NewEnvelope(domain.NewParticipant("alice", nil), evt))
	f.sequencer.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.worker.Run(ctx) }()

	req.Eventually(func() bool { return f.stats.Cancelled.Load() == 1 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
	req.Zero(f.stats.Sending.Load())
}

func TestChatWorker_Interrupt_IsTerminal(t *testing.T) {
	req := require.New(t)
	f := newChatWorkerFixture(t)
	f.feed()

	done := make(chan error, 1)
	go func() { done <- f.worker.Run(context.Background()) }()

	// When interrupted while waiting on the queue
	time.Sleep(20 * time.Millisecond)
	f.worker.Interrupt()

	// Then it closes the queue and returns nil so it is not restarted
	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(time.Second):
		req.Fail("worker did not stop after Interrupt")
	}
}

func TestChatWorker_InterruptBeforeRun(t *testing.T) {
	req := require.New(t)
	f := newChatWorkerFixture(t)
	f.queue.EXPECT().Take(gomock.Any()).Return(domain.Envelope{}, context.Canceled).Times(1)
	f.queue.EXPECT().Close().Times(1)

	f.worker.Interrupt()
	req.NoError(f.worker.Run(context.Background()))
}

func TestChatWorker_ClosedQueue_Stops(t *testing.T) {
	req := require.New(t)
	f := newChatWorkerFixture(t)
	f.queue.EXPECT().Take(gomock.Any()).Return(domain.Envelope{}, errors.ErrPipelineStopped).Times(1)
	f.queue.EXPECT().Close().Times(1)

	req.NoError(f.worker.Run(context.Background()))
}

func TestChatWorker_EventBus(t *testing.T) {
	tests := []struct {
		name      string
		cancelled bool
	}{
		{name: "Listener cancels the event", cancelled: true},
		{name: "Listener lets the event through", cancelled: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			f := newChatWorkerFixture(t)
			bus := mocks.NewMockEventBus(gomock.NewController(t))

			sender := domain.NewParticipant("alice", nil)
			evt := domain.NewChatEvent("hello", nil)
			env := domain.NewEnvelope(sender, evt)
			f.feed(env)
			f.worker.WithEventBus(bus)

			bus.EXPECT().Post(sender, evt).Return(tt.cancelled).Times(1)
			if tt.cancelled {
				f.sequencer.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			} else {
				f.sequencer.EXPECT().Run(gomock.Any(), env, gomock.Any()).Times(1)
			}

			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan error, 1)
			go func() { done <- f.worker.Run(ctx) }()

			req.Eventually(func() bool {
				return f.stats.Cancelled.Load()+f.stats.Sending.Load() == 1
			}, time.Second, 5*time.Millisecond)
			cancel()
			<-done
			req.Equal(tt.cancelled, evt.IsCancelled())
		})
	}
}
