package application

import (
	"sort"
	"time"

	"github.com/bnema/gathering-relay/internal/domain"
)

// SessionStatus is a read-only view of one live session.
type SessionStatus struct {
	ID                string                  `json:"id"`
	Code              domain.LobbyCode        `json:"code"`
	State             domain.SessionState     `json:"state"`
	Channel           domain.ChannelID        `json:"channel"`
	OriginCommunity   domain.CommunityID      `json:"origin_community"`
	Members           []domain.CommunityID    `json:"members"`
	Owner             domain.UserID           `json:"owner"`
	CreatedAt         time.Time               `json:"created_at"`
	LastActivity      time.Time               `json:"last_activity"`
	LastReportedCount *int                    `json:"last_reported_count,omitempty"`
	Reconciled        *domain.ReconciledState `json:"reconciled,omitempty"`
	ClosePending      bool                    `json:"close_pending"`
}

// RelayStatus summarizes the relay for the ops endpoint.
type RelayStatus struct {
	Sessions []SessionStatus `json:"sessions"`
	Staged   int             `json:"staged"`
}

// Status returns the live sessions, oldest first, and the number of staged
// announcements.
func (r *Relay) Status() RelayStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	sessions := r.registry.Sessions()
	out := RelayStatus{
		Sessions: make([]SessionStatus, 0, len(sessions)),
		Staged:   r.staging.Len(),
	}
	for _, s := range sessions {
		out.Sessions = append(out.Sessions, sessionStatus(s))
	}

	return out
}

// Session looks up one live session by code.
func (r *Relay) Session(code domain.LobbyCode) (SessionStatus, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.registry.Get(code)
	if !ok {
		return SessionStatus{}, false
	}
	return sessionStatus(s), true
}

func sessionStatus(s *domain.Session) SessionStatus {
	members := make([]domain.CommunityID, 0, len(s.MemberCommunities))
	for id := range s.MemberCommunities {
		members = append(members, id)
	}
	sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })

	status := SessionStatus{
		ID:              s.ID,
		Code:            s.Code,
		State:           s.State,
		Channel:         s.NotificationChannelID,
		OriginCommunity: s.OriginCommunityID,
		Members:         members,
		Owner:           s.OwnerID,
		CreatedAt:       s.CreatedAt,
		LastActivity:    s.LastActivity,
		ClosePending:    s.CloseGrace.Armed(),
	}
	if n, ok := s.ReportedCount(); ok {
		status.LastReportedCount = &n
	}
	if s.LastReconciledState != nil {
		state := *s.LastReconciledState
		status.Reconciled = &state
	}

	return status
}
