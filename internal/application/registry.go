package application

import (
	"fmt"
	"sort"

	"github.com/bnema/gathering-relay/internal/domain"
)

// Registry owns the live sessions, keyed by lobby code, and the per-community
// pointer to the session that community last spoke about.
type Registry struct {
	sessions map[domain.LobbyCode]*domain.Session
	last     map[domain.CommunityID]domain.LobbyCode
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: map[domain.LobbyCode]*domain.Session{},
		last:     map[domain.CommunityID]domain.LobbyCode{},
	}
}

func (r *Registry) Get(code domain.LobbyCode) (*domain.Session, bool) {
	s, ok := r.sessions[code]
	return s, ok
}

// Put reserves code for s. It fails when the code already has a session.
func (r *Registry) Put(s *domain.Session) error {
	if _, ok := r.sessions[s.Code]; ok {
		return fmt.Errorf("put session %s: %w", s.Code, domain.ErrSessionExists)
	}
	r.sessions[s.Code] = s
	return nil
}

// Remove drops the session for code together with every community pointer
// that referenced it.
func (r *Registry) Remove(code domain.LobbyCode) (*domain.Session, bool) {
	s, ok := r.sessions[code]
	if !ok {
		return nil, false
	}
	delete(r.sessions, code)
	for community, last := range r.last {
		if last == code {
			delete(r.last, community)
		}
	}

	return s, true
}

// Remember points community at code for later count routing.
func (r *Registry) Remember(community domain.CommunityID, code domain.LobbyCode) {
	if community == "" {
		return
	}
	r.last[community] = code
}

// Last returns the session community last spoke about, if it is still live.
func (r *Registry) Last(community domain.CommunityID) (*domain.Session, bool) {
	code, ok := r.last[community]
	if !ok {
		return nil, false
	}
	s, ok := r.sessions[code]
	if !ok || !s.Live() {
		return nil, false
	}
	return s, true
}

// Route picks the session a count without a code belongs to: the only
// session when exactly one exists, else the community's last session.
func (r *Registry) Route(community domain.CommunityID) (*domain.Session, bool) {
	if len(r.sessions) == 1 {
		for _, s := range r.sessions {
			if s.Live() {
				return s, true
			}
		}
		return nil, false
	}

	return r.Last(community)
}

func (r *Registry) ByChannel(channel domain.ChannelID) (*domain.Session, bool) {
	if channel == "" {
		return nil, false
	}
	for _, s := range r.sessions {
		if s.NotificationChannelID == channel {
			return s, true
		}
	}
	return nil, false
}

// Sessions lists the sessions oldest first.
func (r *Registry) Sessions() []*domain.Session {
	out := make([]*domain.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Code < out[j].Code
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out
}

func (r *Registry) Len() int {
	return len(r.sessions)
}
