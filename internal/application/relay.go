package application

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/bnema/gathering-relay/internal/domain"
	"github.com/bnema/gathering-relay/internal/platform/logger"
	"github.com/bnema/gathering-relay/internal/ports"
)

type RelayConfig struct {
	Chat       ports.ChatPlatform
	Directory  ports.CommunityDirectory
	Feed       ports.LobbyFeed
	Identities ports.IdentityResolver
	Clock      ports.Clock
	Scheduler  ports.Scheduler
	NewID      func() string
	// CallTimeout bounds each chat platform call.
	CallTimeout time.Duration
}

// Relay is the single logical worker. Every inbound event and every timer
// callback runs under its lock, so triple completion and code uniqueness are
// decided before any chat call is made.
type Relay struct {
	mu sync.Mutex

	directory ports.CommunityDirectory
	clock     ports.Clock
	staging   *StagingStore
	registry  *Registry
	lifecycle *Lifecycle

	ctx    context.Context
	cancel context.CancelFunc
}

func NewRelay(cfg RelayConfig) *Relay {
	if cfg.Clock == nil {
		cfg.Clock = ports.SystemClock{}
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = ports.SystemScheduler{}
	}

	ctx, cancel := context.WithCancel(context.Background())
	r := &Relay{
		directory: cfg.Directory,
		clock:     cfg.Clock,
		registry:  NewRegistry(),
		ctx:       ctx,
		cancel:    cancel,
	}

	after := func(d time.Duration, f func()) domain.Timer {
		return cfg.Scheduler.AfterFunc(d, func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			if r.ctx.Err() != nil {
				return
			}
			f()
		})
	}

	r.staging = NewStagingStore(after, r.timers)
	r.lifecycle = NewLifecycle(LifecycleConfig{
		Chat:         cfg.Chat,
		Directory:    cfg.Directory,
		Registry:     r.registry,
		Staging:      r.staging,
		Reconciler:   NewReconciler(cfg.Feed, cfg.Identities),
		Clock:        cfg.Clock,
		After:        after,
		NewID:        cfg.NewID,
		CallTimeout:  cfg.CallTimeout,
		TimerContext: ctx,
	})

	return r
}

// HandleMessage folds one chat message into staging or routes it to a
// session.
func (r *Relay) HandleMessage(ctx context.Context, msg domain.InboundMessage) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if msg.AuthorIsBot {
		return
	}
	text := strings.TrimSpace(msg.Text)
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		CommunityID: string(msg.CommunityID),
		ChannelID:   string(msg.ChannelID),
		UserID:      string(msg.AuthorID),
		Component:   "relay",
	})

	if s, ok := r.registry.ByChannel(msg.ChannelID); ok {
		if count, ok := domain.ExtractCount(text); ok && count == domain.Capacity {
			r.lifecycle.ConfirmFull(ctx, s)
		}
		return
	}

	community, ok := r.directory.Community(msg.CommunityID)
	if !ok {
		return
	}

	signal := domain.Classify(text)
	alert := domain.IsBroadcastAlert(community.PingRole, msg.MentionedRoleIDs, text)
	if !alert && signal.Empty() {
		return
	}
	if signal.HasCount && community.CountChannel != "" && msg.ChannelID != community.CountChannel {
		slog.DebugContext(ctx, "count outside count channel ignored", "expected", community.CountChannel)
		return
	}
	if signal.HasCode() {
		ctx = logger.WithLogFields(ctx, logger.LogFields{Code: string(signal.Code)})
	}

	sc := logger.StartSpan(ctx, "relay.handle_message")
	defer sc.End()
	ctx = sc.Context()

	pending := r.staging.Pending(community.ID)

	// A code that already has a live session joins it directly.
	if signal.HasCode() && !alert && !pending {
		if s, ok := r.registry.Get(signal.Code); ok && s.Live() {
			r.lifecycle.Join(ctx, s, community)
			if signal.HasCount {
				r.lifecycle.ApplyCount(ctx, s, community, signal.Count, msg.AuthorID, text)
			}
			return
		}
	}

	if !alert && !signal.HasCode() && !pending {
		if s, ok := r.registry.Route(community.ID); ok {
			r.lifecycle.ApplyCount(ctx, s, community, signal.Count, msg.AuthorID, text)
			return
		}
	}

	if alert {
		r.staging.OnBroadcastAlert(community.ID, msg.AuthorID)
	}
	if signal.HasCode() {
		r.staging.OnCode(community.ID, signal.Code)
	}
	if signal.HasCount {
		r.staging.OnCount(community.ID, signal.Count)
	}
	r.staging.Track(community.ID, msg.AuthorID, msg.ChannelID, text)

	rec, ok := r.staging.Complete(community.ID)
	if !ok {
		return
	}
	if _, err := r.lifecycle.Promote(ctx, rec); err != nil {
		sc.RecordError(err)
		slog.ErrorContext(ctx, "promote staged lobby failed", "error", err)
	}
}

// HandleCloseRequest handles a press of the close button in a notification
// channel.
func (r *Relay) HandleCloseRequest(ctx context.Context, req domain.CloseRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		ChannelID: string(req.ChannelID),
		UserID:    string(req.UserID),
		Component: "relay",
	})
	r.lifecycle.AdminClose(ctx, req)
}

// Sweep closes sessions that have been idle past the inactivity timeout.
func (r *Relay) Sweep(ctx context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.lifecycle.Sweep(ctx)
}

// Run sweeps on the configured interval until ctx is done, then cancels
// every pending timer.
func (r *Relay) Run(ctx context.Context) error {
	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "relay.sweeper"})
	defer r.Close()

	interval := r.timers().SweepInterval
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.InfoContext(ctx, "relay started", "sweep_interval", interval)

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "relay stopping")
			return nil
		case <-ticker.C:
			if closed := r.Sweep(ctx); closed > 0 {
				slog.InfoContext(ctx, "inactive sessions closed", "count", closed)
			}
		}
	}
}

// Close stops timer delivery and cancels every pending timer. Sessions are
// left as they are.
func (r *Relay) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cancel()
	r.staging.Close()
	for _, s := range r.registry.Sessions() {
		s.StopTimers()
	}
}

func (r *Relay) timers() domain.Timers {
	return r.directory.Settings().Timers.WithDefaults()
}
