package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bnema/gathering-relay/internal/domain"
	"github.com/bnema/gathering-relay/internal/platform/logger"
	"github.com/bnema/gathering-relay/internal/ports"
)

const defaultCallTimeout = 10 * time.Second

type LifecycleConfig struct {
	Chat        ports.ChatPlatform
	Directory   ports.CommunityDirectory
	Registry    *Registry
	Staging     *StagingStore
	Reconciler  *Reconciler
	Clock       ports.Clock
	After       domain.AfterFunc
	NewID       func() string
	CallTimeout time.Duration
	// TimerContext is the parent context of work started by timers.
	TimerContext context.Context
}

// Lifecycle drives sessions from creation to close. It is the only writer of
// session fields and, like the stores it uses, relies on the Relay for
// serialization.
type Lifecycle struct {
	chat        ports.ChatPlatform
	directory   ports.CommunityDirectory
	registry    *Registry
	staging     *StagingStore
	reconciler  *Reconciler
	clock       ports.Clock
	after       domain.AfterFunc
	newID       func() string
	callTimeout time.Duration
	timerCtx    context.Context
}

func NewLifecycle(cfg LifecycleConfig) *Lifecycle {
	if cfg.Clock == nil {
		cfg.Clock = ports.SystemClock{}
	}
	if cfg.NewID == nil {
		cfg.NewID = uuid.NewString
	}
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = defaultCallTimeout
	}
	if cfg.TimerContext == nil {
		cfg.TimerContext = context.Background()
	}

	return &Lifecycle{
		chat:        cfg.Chat,
		directory:   cfg.Directory,
		registry:    cfg.Registry,
		staging:     cfg.Staging,
		reconciler:  cfg.Reconciler,
		clock:       cfg.Clock,
		after:       cfg.After,
		newID:       cfg.NewID,
		callTimeout: cfg.CallTimeout,
		timerCtx:    cfg.TimerContext,
	}
}

// Promote turns a completed staging record into a session. A live session
// for the same code is joined instead of creating a second channel. When
// the notification channel cannot be created the reservation is released
// and the record goes back to staging.
func (l *Lifecycle) Promote(ctx context.Context, rec domain.StagingRecord) (*domain.Session, error) {
	if rec.Count == nil {
		return nil, fmt.Errorf("promote %s: count missing", rec.Code)
	}
	community, _ := l.directory.Community(rec.CommunityID)
	count := *rec.Count

	if existing, ok := l.registry.Get(rec.Code); ok && existing.Live() {
		l.Join(ctx, existing, community)
		l.ApplyCount(ctx, existing, community, count, rec.AuthorID, rec.RawText)
		return existing, nil
	}

	l.replacePrevious(ctx, rec)

	session, err := domain.NewSession(domain.NewSessionParams{
		ID:              l.newID(),
		Code:            rec.Code,
		CommunityID:     rec.CommunityID,
		OriginChannelID: rec.OriginChannelID,
		OwnerID:         rec.OwnerID,
		AuthorID:        rec.AuthorID,
		Now:             l.clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	if err := l.registry.Put(session); err != nil {
		return nil, err
	}
	l.registry.Remember(rec.CommunityID, rec.Code)

	ctx = logger.WithLogFields(ctx, logger.LogFields{SessionID: session.ID, Code: string(session.Code)})
	sc := logger.StartSpan(ctx, "relay.promote")
	defer sc.End()
	ctx = sc.Context()

	settings := l.directory.Settings()
	callCtx, cancel := context.WithTimeout(ctx, l.callTimeout)
	ref, err := l.chat.CreateOrReuseChannel(callCtx, settings.CategoryFor(community), domain.ChannelName(settings.ChannelPrefix, rec.Code))
	cancel()
	if err != nil {
		l.registry.Remove(rec.Code)
		session.State = domain.SessionClosed
		l.staging.Restore(rec)
		sc.RecordError(err)
		return nil, fmt.Errorf("create notification channel for %s: %w", rec.Code, errors.Join(domain.ErrChannelUnavailable, err))
	}

	session.NotificationChannelID = ref.ID
	if ref.Reused {
		session.FirstAlertEmitted = true
	} else {
		l.sendIntro(ctx, session, community)
	}
	l.armInactivity(session)

	slog.InfoContext(ctx, "session created", "channel_id", ref.ID, "reused", ref.Reused, "count", count)

	l.ApplyCount(ctx, session, community, count, rec.AuthorID, rec.RawText)
	if session.State == domain.SessionCreating {
		session.State = domain.SessionActive
	}

	return session, nil
}

// Join records community as tracking s and refreshes the intro label when
// the community is new to the session. Naming the code counts as activity.
func (l *Lifecycle) Join(ctx context.Context, s *domain.Session, community domain.Community) {
	if !s.Live() || community.ID == "" {
		return
	}
	s.Touch(l.clock.Now())
	l.armInactivity(s)
	l.registry.Remember(community.ID, s.Code)
	if !s.AddMember(community.ID) {
		return
	}

	slog.InfoContext(ctx, "community joined session", "code", s.Code, "members", len(s.MemberCommunities))
	l.refreshLabels(ctx, s)
}

// ApplyCount emits one count update for s, reconciled against the lobby
// feed when possible and suppressed when it repeats the last emission.
func (l *Lifecycle) ApplyCount(ctx context.Context, s *domain.Session, community domain.Community, count int, speaker domain.UserID, raw string) {
	if !s.Live() {
		return
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{SessionID: s.ID, Code: string(s.Code)})

	s.Touch(l.clock.Now())
	l.armInactivity(s)
	l.registry.Remember(community.ID, s.Code)

	settings := l.directory.Settings()
	mention := settings.RegionPing(community)
	label := community.Label()
	first := !s.FirstAlertEmitted

	rc := l.reconciler.Reconcile(ctx, s, speaker, count)
	s.ReconciliationActive = rc.Active
	defer l.debug(ctx, s, community, raw, count, rc)

	if rc.Active {
		if rc.Duplicate {
			slog.DebugContext(ctx, "duplicate reconciled state suppressed", "state", rc.State)
			return
		}
		content := domain.ReconciledStatusMessage(s.Code, rc.State, mention, label, first)
		if err := l.sendStatus(ctx, s, content); err != nil {
			return
		}
		s.SetReconciledState(rc.State)
		s.SetReportedCount(rc.State.Current)
		s.FirstAlertEmitted = true
		if rc.State.Current >= domain.Capacity {
			l.full(ctx, s)
		}
		return
	}

	n := domain.ClampCount(count)
	if last, ok := s.ReportedCount(); ok && last == n {
		slog.DebugContext(ctx, "duplicate count suppressed", "count", n)
		return
	}
	if err := l.sendStatus(ctx, s, domain.RawStatusMessage(s.Code, n, mention, label, first)); err != nil {
		return
	}
	s.SetReportedCount(n)
	s.FirstAlertEmitted = true
	if n >= domain.Capacity {
		l.full(ctx, s)
	}
}

// ConfirmFull handles full-lobby text posted inside the notification
// channel itself.
func (l *Lifecycle) ConfirmFull(ctx context.Context, s *domain.Session) {
	if !s.Live() || s.CloseGrace.Armed() {
		return
	}
	delay := l.directory.Settings().Timers.WithDefaults().PostFullDelay
	l.sendText(ctx, s.NotificationChannelID, domain.ConfirmedFullMessage(int(delay/time.Second)))
	l.ScheduleClose(s, domain.ReasonFull)
}

// ScheduleClose closes s after the post-full grace delay. Scheduling again
// while a close is pending does nothing.
func (l *Lifecycle) ScheduleClose(s *domain.Session, reason string) {
	if !s.Live() || s.CloseGrace.Armed() {
		return
	}
	delay := l.directory.Settings().Timers.WithDefaults().PostFullDelay
	s.CloseGrace.Rearm(l.after, delay, func(gen uint64) {
		if !l.owns(s) || !s.CloseGrace.Fire(gen) {
			return
		}
		l.Close(l.timerContext(s), s, reason, false)
	})
}

// Close posts reason, deletes the channel when permitted and removes the
// session. Registry cleanup happens even when the chat calls fail.
func (l *Lifecycle) Close(ctx context.Context, s *domain.Session, reason string, forceDelete bool) {
	if !s.Live() {
		return
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{SessionID: s.ID, Code: string(s.Code)})

	s.State = domain.SessionClosing
	s.StopTimers()
	defer func() {
		s.State = domain.SessionClosed
		if l.owns(s) {
			l.registry.Remove(s.Code)
		}
		slog.InfoContext(ctx, "session closed", "reason", reason)
	}()

	if s.NotificationChannelID == "" {
		return
	}
	l.sendText(ctx, s.NotificationChannelID, reason)

	if !forceDelete && !l.directory.Settings().DeleteChannels {
		return
	}
	callCtx, cancel := context.WithTimeout(ctx, l.callTimeout)
	defer cancel()
	if err := l.chat.DeleteChannel(callCtx, s.NotificationChannelID); err != nil {
		slog.WarnContext(ctx, "delete notification channel failed", "channel_id", s.NotificationChannelID, "error", err)
	}
}

// AdminClose handles the close button. The channel's session, if any, is
// closed; the channel is deleted either way and the action is audited.
func (l *Lifecycle) AdminClose(ctx context.Context, req domain.CloseRequest) {
	settings := l.directory.Settings()
	s, ok := l.registry.ByChannel(req.ChannelID)

	if settings.LogChannel != "" {
		target := fmt.Sprintf("notification channel <#%s>", req.ChannelID)
		if ok {
			target = fmt.Sprintf("notification channel for %s", s.Code)
		}
		l.sendText(ctx, settings.LogChannel, fmt.Sprintf("%s deleted by %s", target, req.UserTag))
	}

	if ok && s.Live() {
		l.Close(ctx, s, domain.ClosedByReason(req.UserTag), true)
		return
	}

	callCtx, cancel := context.WithTimeout(ctx, l.callTimeout)
	defer cancel()
	if err := l.chat.DeleteChannel(callCtx, req.ChannelID); err != nil {
		slog.WarnContext(ctx, "delete channel failed", "channel_id", req.ChannelID, "error", err)
	}
}

// Sweep closes every active session idle for longer than the inactivity
// timeout.
func (l *Lifecycle) Sweep(ctx context.Context) int {
	timeout := l.directory.Settings().Timers.WithDefaults().InactivityTimeout
	now := l.clock.Now()

	closed := 0
	for _, s := range l.registry.Sessions() {
		if s.State != domain.SessionActive || !s.IdleFor(now, timeout) {
			continue
		}
		l.Close(ctx, s, domain.ReasonInactive, false)
		closed++
	}

	return closed
}

func (l *Lifecycle) replacePrevious(ctx context.Context, rec domain.StagingRecord) {
	prev, ok := l.registry.Last(rec.CommunityID)
	if !ok || prev.Code == rec.Code || prev.OriginCommunityID != rec.CommunityID {
		return
	}
	owner := rec.OwnerID
	if owner == "" {
		owner = rec.AuthorID
	}
	if prev.OwnerID != owner {
		return
	}

	slog.InfoContext(ctx, "session replaced by new code", "previous", prev.Code, "code", rec.Code)
	l.Close(ctx, prev, domain.ReplacedReason(rec.Code), false)
}

// full announces a full lobby and schedules the close. A lobby already
// full when its session is created closes with the 6/6 reason.
func (l *Lifecycle) full(ctx context.Context, s *domain.Session) {
	if s.CloseGrace.Armed() {
		return
	}
	reason := domain.ReasonFull
	if s.State == domain.SessionCreating {
		reason = domain.ReasonFullSix
	}
	l.sendText(ctx, s.NotificationChannelID, domain.FullLine)
	l.ScheduleClose(s, reason)
}

func (l *Lifecycle) armInactivity(s *domain.Session) {
	timeout := l.directory.Settings().Timers.WithDefaults().InactivityTimeout
	s.Inactivity.Rearm(l.after, timeout, func(gen uint64) {
		if !l.owns(s) || !s.Inactivity.Fire(gen) {
			return
		}
		if s.State == domain.SessionActive && s.IdleFor(l.clock.Now(), timeout) {
			l.Close(l.timerContext(s), s, domain.ReasonInactive, false)
		}
	})
}

func (l *Lifecycle) sendIntro(ctx context.Context, s *domain.Session, community domain.Community) {
	if label := community.Label(); label != "" {
		id, err := l.send(ctx, s.NotificationChannelID, domain.OutboundMessage{Content: label})
		if err == nil {
			s.IntroMessageID = id
		}
	}
	_, _ = l.send(ctx, s.NotificationChannelID, domain.OutboundMessage{Content: domain.UsageNote, CloseButton: true})
}

func (l *Lifecycle) refreshLabels(ctx context.Context, s *domain.Session) {
	if s.IntroMessageID == "" {
		return
	}

	members := make([]domain.CommunityID, 0, len(s.MemberCommunities))
	for id := range s.MemberCommunities {
		if id != s.OriginCommunityID {
			members = append(members, id)
		}
	}
	sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
	members = append([]domain.CommunityID{s.OriginCommunityID}, members...)

	labels := make([]string, 0, len(members))
	for _, id := range members {
		if c, ok := l.directory.Community(id); ok && c.Label() != "" {
			labels = append(labels, c.Label())
		}
	}
	if len(labels) == 0 {
		return
	}

	callCtx, cancel := context.WithTimeout(ctx, l.callTimeout)
	defer cancel()
	if err := l.chat.EditMessage(callCtx, s.NotificationChannelID, s.IntroMessageID, strings.Join(labels, "\n")); err != nil {
		slog.WarnContext(ctx, "refresh session labels failed", "error", err)
	}
}

func (l *Lifecycle) sendStatus(ctx context.Context, s *domain.Session, content string) error {
	_, err := l.send(ctx, s.NotificationChannelID, domain.OutboundMessage{
		Content:      content,
		MentionRoles: l.directory.Settings().MentionableRoles(),
	})
	return err
}

func (l *Lifecycle) sendText(ctx context.Context, channel domain.ChannelID, content string) {
	_, _ = l.send(ctx, channel, domain.OutboundMessage{Content: content})
}

func (l *Lifecycle) send(ctx context.Context, channel domain.ChannelID, msg domain.OutboundMessage) (domain.MessageID, error) {
	if channel == "" {
		return "", domain.ErrChannelUnavailable
	}
	callCtx, cancel := context.WithTimeout(ctx, l.callTimeout)
	defer cancel()

	id, err := l.chat.SendMessage(callCtx, channel, msg)
	if err != nil {
		slog.WarnContext(ctx, "send message failed", "channel_id", channel, "error", err)
		return "", fmt.Errorf("send message: %w", err)
	}
	return id, nil
}

// owns reports whether s is still the registry's session for its code.
func (l *Lifecycle) owns(s *domain.Session) bool {
	current, ok := l.registry.Get(s.Code)
	return ok && current == s
}

func (l *Lifecycle) timerContext(s *domain.Session) context.Context {
	return logger.WithLogFields(l.timerCtx, logger.LogFields{
		SessionID: s.ID,
		Code:      string(s.Code),
		Component: "relay.lifecycle",
	})
}
