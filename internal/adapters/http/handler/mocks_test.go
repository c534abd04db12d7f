package handler_test

import (
	"github.com/bnema/gathering-relay/internal/application"
	"github.com/bnema/gathering-relay/internal/domain"
)

type mockStatusProvider struct {
	status   application.RelayStatus
	sessions map[domain.LobbyCode]application.SessionStatus
}

func (m *mockStatusProvider) Status() application.RelayStatus {
	return m.status
}

func (m *mockStatusProvider) Session(code domain.LobbyCode) (application.SessionStatus, bool) {
	s, ok := m.sessions[code]
	return s, ok
}

type mockDirectory struct {
	communities []domain.Community
}

func (m *mockDirectory) Community(id domain.CommunityID) (domain.Community, bool) {
	for _, c := range m.communities {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Community{}, false
}

func (m *mockDirectory) Communities() []domain.Community {
	return m.communities
}

func (m *mockDirectory) Settings() domain.RelaySettings {
	return domain.RelaySettings{}
}
