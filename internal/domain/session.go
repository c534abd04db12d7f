package domain

import (
	"errors"
	"time"
)

type SessionState string

const (
	SessionCreating SessionState = "creating"
	SessionActive   SessionState = "active"
	SessionClosing  SessionState = "closing"
	SessionClosed   SessionState = "closed"
)

// ReconciledState is a feed-confirmed player count plus the players who
// announced they are joining but are not in the feed yet.
type ReconciledState struct {
	Current   int
	Expected  int
	Remaining int
}

// NewReconciledState derives the state for a chat count against a feed count.
// It reports false when the chat count is below what the feed already shows.
func NewReconciledState(count, reported int) (ReconciledState, bool) {
	if count < reported {
		return ReconciledState{}, false
	}
	current := reported
	expected := count - reported

	return ReconciledState{
		Current:   current,
		Expected:  expected,
		Remaining: max(0, Capacity-current-expected),
	}, true
}

// Session is one live lobby, keyed by its code for its whole lifetime.
type Session struct {
	ID                    string
	Code                  LobbyCode
	State                 SessionState
	NotificationChannelID ChannelID
	IntroMessageID        MessageID
	OriginChannelID       ChannelID
	OriginCommunityID     CommunityID
	OwnerID               UserID
	AuthorID              UserID
	MemberCommunities     map[CommunityID]struct{}
	CreatedAt             time.Time
	LastActivity          time.Time
	LastReportedCount     *int
	LastReconciledState   *ReconciledState
	FirstAlertEmitted     bool
	ReconciliationActive  bool

	Inactivity TimerSlot
	CloseGrace TimerSlot
}

type NewSessionParams struct {
	ID              string
	Code            LobbyCode
	CommunityID     CommunityID
	OriginChannelID ChannelID
	OwnerID         UserID
	AuthorID        UserID
	Now             time.Time
}

func NewSession(p NewSessionParams) (*Session, error) {
	if p.Code == "" {
		return nil, errors.New("session code is required")
	}
	if p.ID == "" {
		return nil, errors.New("session id is required")
	}
	owner := p.OwnerID
	if owner == "" {
		owner = p.AuthorID
	}

	s := &Session{
		ID:                p.ID,
		Code:              p.Code,
		State:             SessionCreating,
		OriginChannelID:   p.OriginChannelID,
		OriginCommunityID: p.CommunityID,
		OwnerID:           owner,
		AuthorID:          p.AuthorID,
		MemberCommunities: map[CommunityID]struct{}{},
		CreatedAt:         p.Now,
		LastActivity:      p.Now,
	}
	if p.CommunityID != "" {
		s.MemberCommunities[p.CommunityID] = struct{}{}
	}

	return s, nil
}

// AddMember records that community tracks this session. It reports whether
// the community is new.
func (s *Session) AddMember(id CommunityID) bool {
	if _, ok := s.MemberCommunities[id]; ok {
		return false
	}
	s.MemberCommunities[id] = struct{}{}
	return true
}

func (s *Session) Live() bool {
	return s.State == SessionCreating || s.State == SessionActive
}

func (s *Session) Touch(now time.Time) {
	s.LastActivity = now
}

// IdleFor reports whether the session saw no activity for longer than d.
func (s *Session) IdleFor(now time.Time, d time.Duration) bool {
	return now.Sub(s.LastActivity) > d
}

func (s *Session) ReportedCount() (int, bool) {
	if s.LastReportedCount == nil {
		return 0, false
	}
	return *s.LastReportedCount, true
}

func (s *Session) SetReportedCount(count int) {
	s.LastReportedCount = &count
}

func (s *Session) SameReconciledState(state ReconciledState) bool {
	return s.LastReconciledState != nil && *s.LastReconciledState == state
}

func (s *Session) SetReconciledState(state ReconciledState) {
	s.LastReconciledState = &state
	s.ReconciliationActive = true
}

func (s *Session) StopTimers() {
	s.Inactivity.Cancel()
	s.CloseGrace.Cancel()
}
