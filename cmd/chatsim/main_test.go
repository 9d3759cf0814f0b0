package main

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/mocks"
	"chat-relay/moderation"
	"context"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newModerator(t *testing.T) *moderation.Moderator {
	t.Helper()
	mod, err := moderation.NewModerator([]string{"scam"}, '*', logs.GetLoggerFromLevel(slog.LevelDebug))
	require.NoError(t, err)
	return mod
}

func TestProduce_PostsEveryMessage(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	handler := mocks.NewMockIChatHandler(ctrl)
	channel := mocks.NewMockChannel(ctrl)
	alice := domain.NewParticipant("alice", nil)
	sim := SimConfig{Messages: 5, CancelRatio: 0}

	var events []*domain.ChatEvent
	handler.EXPECT().PostEvent(gomock.Any(), alice, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Sender, evt *domain.ChatEvent) error {
			events = append(events, evt)
			return nil
		}).Times(sim.Messages)

	produce(context.Background(), log, handler, newModerator(t), channel, alice, sim)

	// Then every event targets the channel and ends with the moderation check
	req.Len(events, sim.Messages)
	for _, evt := range events {
		req.False(evt.IsCancelled())
		ch, ok := evt.Channel()
		req.True(ok)
		req.Equal(domain.Channel(channel), ch)
		req.Len(evt.PermissionChecks(), 1)
		req.IsType(&moderation.Check{}, evt.PermissionChecks()[0])
	}
}

func TestProduce_StopsOnFirstError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	handler := mocks.NewMockIChatHandler(ctrl)
	alice := domain.NewParticipant("alice", nil)

	// Given the pipeline is gone
	handler.EXPECT().PostEvent(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.ErrPipelineStopped).Times(1)

	// Then the producer gives up after one attempt
	produce(context.Background(), log, handler, newModerator(t), nil, alice, SimConfig{Messages: 10})
}

func TestProduce_CancelRatioOne_CancelsEverything(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	handler := mocks.NewMockIChatHandler(ctrl)
	alice := domain.NewParticipant("alice", nil)

	handler.EXPECT().PostEvent(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Sender, evt *domain.ChatEvent) error {
			req.True(evt.IsCancelled())
			return nil
		}).Times(3)

	produce(context.Background(), log, handler, newModerator(t), nil, alice, SimConfig{Messages: 3, CancelRatio: 1})
}
