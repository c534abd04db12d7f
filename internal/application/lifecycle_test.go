package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/gathering-relay/internal/domain"
	portmocks "github.com/bnema/gathering-relay/internal/ports/mocks"
)

func newMockedLifecycle(t *testing.T, chat *portmocks.MockChatPlatform, settings domain.RelaySettings) (*Lifecycle, *Registry, *fakeTime) {
	t.Helper()

	ft := newFakeTime()
	registry := NewRegistry()
	lifecycle := NewLifecycle(LifecycleConfig{
		Chat:       chat,
		Directory:  &fakeDirectory{communities: map[domain.CommunityID]domain.Community{}, settings: settings},
		Registry:   registry,
		Staging:    NewStagingStore(ft.AfterFunc, domain.DefaultTimers),
		Reconciler: NewReconciler(nil, nil),
		Clock:      ft,
		After:      ft.AfterFunc,
		NewID:      func() string { return "sess-1" },
	})

	return lifecycle, registry, ft
}

func TestLifecycleCloseRemovesSessionWhenDeleteFails(t *testing.T) {
	chat := portmocks.NewMockChatPlatform(t)
	lifecycle, registry, ft := newMockedLifecycle(t, chat, domain.RelaySettings{DeleteChannels: true})

	s := newTestSession(t, testCode, "alpha", ft.Now())
	s.NotificationChannelID = "chan-9"
	require.NoError(t, registry.Put(s))

	chat.EXPECT().
		SendMessage(mock.Anything, domain.ChannelID("chan-9"), domain.OutboundMessage{Content: domain.ReasonInactive}).
		Return("msg-1", nil).Once()
	chat.EXPECT().
		DeleteChannel(mock.Anything, domain.ChannelID("chan-9")).
		Return(errors.New("missing permissions")).Once()

	lifecycle.Close(context.Background(), s, domain.ReasonInactive, false)

	assert.Equal(t, domain.SessionClosed, s.State)
	_, ok := registry.Get(testCode)
	assert.False(t, ok)
	_, ok = registry.ByChannel("chan-9")
	assert.False(t, ok)
}

func TestLifecycleCloseWithoutChannelMakesNoChatCalls(t *testing.T) {
	chat := portmocks.NewMockChatPlatform(t)
	lifecycle, registry, ft := newMockedLifecycle(t, chat, domain.RelaySettings{DeleteChannels: true})

	s := newTestSession(t, testCode, "alpha", ft.Now())
	require.NoError(t, registry.Put(s))

	lifecycle.Close(context.Background(), s, domain.ReasonFull, false)

	assert.Equal(t, domain.SessionClosed, s.State)
	assert.Equal(t, 0, registry.Len())
}

func TestLifecycleCloseIsIdempotent(t *testing.T) {
	chat := portmocks.NewMockChatPlatform(t)
	lifecycle, registry, ft := newMockedLifecycle(t, chat, domain.RelaySettings{})

	s := newTestSession(t, testCode, "alpha", ft.Now())
	s.NotificationChannelID = "chan-9"
	require.NoError(t, registry.Put(s))

	chat.EXPECT().
		SendMessage(mock.Anything, domain.ChannelID("chan-9"), mock.Anything).
		Return("msg-1", nil).Once()

	lifecycle.Close(context.Background(), s, domain.ReasonFull, false)
	lifecycle.Close(context.Background(), s, domain.ReasonFull, false)

	assert.Equal(t, domain.SessionClosed, s.State)
}

func TestLifecycleScheduleCloseOnlyArmsOnce(t *testing.T) {
	chat := portmocks.NewMockChatPlatform(t)
	lifecycle, registry, ft := newMockedLifecycle(t, chat, domain.RelaySettings{DeleteChannels: true})

	s := newTestSession(t, testCode, "alpha", ft.Now())
	s.NotificationChannelID = "chan-9"
	require.NoError(t, registry.Put(s))

	lifecycle.ScheduleClose(s, domain.ReasonFull)
	ft.Advance(domain.DefaultTimers().PostFullDelay / 2)
	lifecycle.ScheduleClose(s, domain.ReasonFull)

	chat.EXPECT().
		SendMessage(mock.Anything, domain.ChannelID("chan-9"), domain.OutboundMessage{Content: domain.ReasonFull}).
		Return("msg-1", nil).Once()
	chat.EXPECT().DeleteChannel(mock.Anything, domain.ChannelID("chan-9")).Return(nil).Once()

	ft.Advance(domain.DefaultTimers().PostFullDelay / 2)

	assert.Equal(t, domain.SessionClosed, s.State)
	assert.Equal(t, 0, registry.Len())
}
