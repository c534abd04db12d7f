package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/bnema/gathering-relay/internal/domain"
	"github.com/bnema/gathering-relay/internal/platform/logger"
)

// StagingStore holds at most one partial lobby announcement per community.
// It is not safe for concurrent use; the Relay serializes access.
type StagingStore struct {
	records map[domain.CommunityID]*domain.StagingRecord
	after   domain.AfterFunc
	timers  func() domain.Timers
}

func NewStagingStore(after domain.AfterFunc, timers func() domain.Timers) *StagingStore {
	return &StagingStore{
		records: map[domain.CommunityID]*domain.StagingRecord{},
		after:   after,
		timers:  timers,
	}
}

// OnBroadcastAlert marks the alert as seen and records the author as owner.
// A code-wait already running keeps its deadline; only a code moves the
// record to count-wait.
func (s *StagingStore) OnBroadcastAlert(community domain.CommunityID, author domain.UserID) {
	rec := s.ensure(community)
	rec.BroadcastAlertSeen = true
	rec.OwnerID = author

	if !rec.CodeWait.Armed() && !rec.CountWait.Armed() {
		s.arm(rec, &rec.CodeWait, s.timers().WaitForCode)
	}
}

func (s *StagingStore) OnCode(community domain.CommunityID, code domain.LobbyCode) {
	rec := s.ensure(community)
	rec.Code = code

	if rec.BroadcastAlertSeen {
		s.awaitCount(rec)
		return
	}
	if !rec.CodeWait.Armed() {
		s.arm(rec, &rec.CodeWait, s.timers().WaitForCode)
	}
}

// OnCount records count. A record started by a count alone gets its own
// count-wait window so it cannot outlive the debounce bound.
func (s *StagingStore) OnCount(community domain.CommunityID, count int) {
	rec := s.ensure(community)
	rec.SetCount(count)

	if !rec.BroadcastAlertSeen && rec.Code == "" && !rec.CountWait.Armed() {
		s.arm(rec, &rec.CountWait, s.timers().WaitForCount)
	}
}

// Track updates the provenance of an existing record.
func (s *StagingStore) Track(community domain.CommunityID, author domain.UserID, channel domain.ChannelID, raw string) {
	rec, ok := s.records[community]
	if !ok {
		return
	}
	rec.AuthorID = author
	rec.OriginChannelID = channel
	rec.RawText = raw
}

// Pending reports whether the community has an alert or a code staged.
func (s *StagingStore) Pending(community domain.CommunityID) bool {
	rec, ok := s.records[community]
	return ok && (rec.BroadcastAlertSeen || rec.Code != "")
}

// Complete hands out the community's record once alert, code and count are
// all present, clearing it from the store.
func (s *StagingStore) Complete(community domain.CommunityID) (domain.StagingRecord, bool) {
	rec, ok := s.records[community]
	if !ok || !rec.Complete() {
		return domain.StagingRecord{}, false
	}

	snapshot := rec.Snapshot()
	s.Discard(community)

	return snapshot, true
}

func (s *StagingStore) Discard(community domain.CommunityID) {
	rec, ok := s.records[community]
	if !ok {
		return
	}
	rec.StopTimers()
	delete(s.records, community)
}

// Restore puts a record back after a failed promotion and re-arms its
// count-wait window. It replaces anything staged since.
func (s *StagingStore) Restore(snapshot domain.StagingRecord) {
	s.Discard(snapshot.CommunityID)

	rec := snapshot.Snapshot()
	s.records[rec.CommunityID] = &rec
	s.arm(&rec, &rec.CountWait, s.timers().WaitForCount)
}

func (s *StagingStore) Get(community domain.CommunityID) (domain.StagingRecord, bool) {
	rec, ok := s.records[community]
	if !ok {
		return domain.StagingRecord{}, false
	}
	return rec.Snapshot(), true
}

func (s *StagingStore) Len() int {
	return len(s.records)
}

// Close cancels every pending window.
func (s *StagingStore) Close() {
	for community := range s.records {
		s.Discard(community)
	}
}

func (s *StagingStore) ensure(community domain.CommunityID) *domain.StagingRecord {
	rec, ok := s.records[community]
	if !ok {
		rec = &domain.StagingRecord{CommunityID: community}
		s.records[community] = rec
	}
	return rec
}

func (s *StagingStore) awaitCount(rec *domain.StagingRecord) {
	rec.CodeWait.Cancel()
	s.arm(rec, &rec.CountWait, s.timers().WaitForCount)
}

func (s *StagingStore) arm(rec *domain.StagingRecord, slot *domain.TimerSlot, d time.Duration) {
	slot.Rearm(s.after, d, func(gen uint64) {
		s.expire(rec, slot, gen)
	})
}

func (s *StagingStore) expire(rec *domain.StagingRecord, slot *domain.TimerSlot, gen uint64) {
	if s.records[rec.CommunityID] != rec || !slot.Fire(gen) {
		return
	}
	s.Discard(rec.CommunityID)

	ctx := logger.WithLogFields(context.Background(), logger.LogFields{
		CommunityID: string(rec.CommunityID),
		Code:        string(rec.Code),
		Component:   "relay.staging",
	})
	slog.InfoContext(ctx, "staging window expired", "alert_seen", rec.BroadcastAlertSeen, "has_count", rec.Count != nil)
}
