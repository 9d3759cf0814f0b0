package main

import (
	"chat-relay/channel"
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/eventbus"
	"chat-relay/internal"
	"chat-relay/moderation"
	"chat-relay/observability"
	"chat-relay/permission"
	"chat-relay/projection"
	"chat-relay/runtime"
	"chat-relay/runtime/workers"
	"chat-relay/world"
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

var phrases = []string{
	"hello there",
	"anyone up for the dungeon?",
	"selling iron for gold",
	"this is a scam, do not trade with him",
	"watch out, griefer near spawn",
	"gg everyone",
	"c'est une arnaque",
	"meet me at the portal",
}

type member struct {
	participant *domain.Participant
	timeline    *projection.Timeline
	muted       bool
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	sim, err := LoadSimConfig()
	if err != nil {
		return fmt.Errorf("simulation config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Moderation
	replacement, err := config.CharacterRune()
	if err != nil {
		return err
	}
	censored, err := moderation.NewEmbeddedLoader().LoadAll("censored", config.ExtraCensoredWords()...)
	if err != nil {
		return fmt.Errorf("unable to load censored words: %w", err)
	}
	moderator, err := moderation.NewModerator(censored.Words, replacement, log)
	if err != nil {
		return fmt.Errorf("unable to build moderator: %w", err)
	}
	log.Info("Moderation ready", "languages", censored.Languages, "words", len(censored.Words))

	// 3. Worlds, channel and participants
	loops := make([]*world.Loop, sim.Worlds)
	for i := range loops {
		loops[i] = world.NewLoop(fmt.Sprintf("world-%d", i), log)
	}
	global := channel.NewBroadcast("global")
	mutes := eventbus.NewMuteList(log)
	tally := eventbus.NewTally()
	members := make([]member, sim.Producers)
	for i := range members {
		p := domain.NewParticipant(fmt.Sprintf("player-%d", i), loops[i%len(loops)])
		members[i] = member{
			participant: p,
			timeline:    projection.NewTimeline(p.Name()),
			muted:       lo.Contains(sim.Muted, p.Name()),
		}
		global.Subscribe(p, members[i].timeline)
		if members[i].muted {
			mutes.Mute(p.ID())
		}
	}

	// 4. Pipeline
	stats := observability.NewStats()
	sup := workers.NewSupervisor(log, config.RestartInterval)
	handler := runtime.NewChatHandler(log, sup, stats, config.CheckTimeout).
		WithEventBus(eventbus.NewFanout(log).Add(tally, mutes)).
		Add(lo.Map(loops, func(l *world.Loop, _ int) contract.Worker { return l })...).
		Add(workers.NewTelemetryWorker(log, config.MetricInterval, stats))
	if config.DebugPort > 0 {
		handler.Add(internal.NewDebugServer(log, config.DebugPort, func() map[string]any {
			fields := stats.Snapshot().Fields()
			fields["listener_events"] = tally.Total()
			return fields
		}))
	}

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	pipelineCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errChan := make(chan error, 1)
	go func() { errChan <- handler.Start(pipelineCtx) }()

	// 6. Producers
	start := time.Now()
	var wg sync.WaitGroup
	for _, m := range members {
		wg.Add(1)
		go func() {
			defer wg.Done()
			produce(ctx, log, handler, moderator, global, m.participant, sim)
		}()
	}
	wg.Wait()

	// 7. Wait for every envelope to settle
	if err := drain(ctx, stats, loops, sim.DrainTimeout); err != nil {
		log.Warn("Simulation did not settle", "error", err)
	}
	elapsed := time.Since(start)

	// 8. Final Cleanup
	handler.Stop()
	cancel()
	if err := <-errChan; err != nil {
		return fmt.Errorf("chat handler failed: %w", err)
	}

	printSummary(sim, stats.Snapshot(), tally, loops, members, elapsed)
	return nil
}

func produce(ctx context.Context, log *slog.Logger, handler contract.IChatHandler,
	moderator *moderation.Moderator, ch domain.Channel, sender *domain.Participant, sim SimConfig) {
	for i := 0; i < sim.Messages; i++ {
		event := domain.NewChatEvent(phrases[rand.IntN(len(phrases))], ch)
		if sim.MaxCheckDelay > 0 && rand.IntN(2) == 0 {
			event.AddPermissionChecks(permission.Delayed(rand.N(sim.MaxCheckDelay)))
		}
		moderation.Guard(moderator, event, log)
		if rand.Float64() < sim.CancelRatio {
			event.Cancel()
		}

		if err := handler.PostEvent(ctx, sender, event); err != nil {
			log.Warn("Producer stopped", "sender", sender.Name(), "error", err)
			return
		}
	}
}

// drain waits until every posted envelope reached a final state and the worlds ran their tasks.
func drain(ctx context.Context, stats *observability.Stats, loops []*world.Loop, timeout time.Duration) error {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for {
		s := stats.Snapshot()
		settled := s.Cancelled+s.Sending == s.Posted &&
			s.Scheduled+s.Suppressed+s.TimedOut == s.Sending &&
			lo.SumBy(loops, func(l *world.Loop) int64 { return l.Executed() }) >= s.Scheduled
		if settled {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline.C:
			return fmt.Errorf("%d envelopes still in flight after %s",
				s.Sending-s.Scheduled-s.Suppressed-s.TimedOut, timeout)
		case <-ticker.C:
		}
	}
}

func printSummary(sim SimConfig, s observability.StatsSnapshot, tally *eventbus.Tally,
	loops []*world.Loop, members []member, elapsed time.Duration) {
	header := fmt.Sprintf("  ====== Chat simulation (%s) ======", elapsed.Round(time.Millisecond))
	if sim.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Println(header)

	counters := newTable([]string{"Posted", "Sending", "Cancelled", "Suppressed", "Scheduled", "Timed out"})
	counters.Append(lo.Map([]int64{s.Posted, s.Sending, s.Cancelled, s.Suppressed, s.Scheduled, s.TimedOut},
		func(v int64, _ int) string { return strconv.FormatInt(v, 10) }))
	counters.Render()
	fmt.Println()

	worlds := newTable([]string{"World", "Tasks executed"})
	for _, l := range loops {
		worlds.Append([]string{l.Name(), strconv.FormatInt(l.Executed(), 10)})
	}
	worlds.Render()
	fmt.Println()

	participants := newTable([]string{"Participant", "World", "Muted", "Events", "Received", "Own messages"})
	for _, m := range members {
		participants.Append([]string{
			m.participant.Name(),
			m.participant.World().(*world.Loop).Name(),
			strconv.FormatBool(m.muted),
			strconv.FormatUint(tally.Count(m.participant.ID()), 10),
			strconv.Itoa(m.timeline.Len()),
			strconv.Itoa(len(m.timeline.From(m.participant.ID()))),
		})
	}
	participants.Render()
}

func newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	return table
}
