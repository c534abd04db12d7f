package application

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/bnema/gathering-relay/internal/domain"
)

// fakeTime is a manual clock and scheduler. Advance fires due timers in
// order, each on the calling goroutine.
type fakeTime struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	owner   *fakeTime
	at      time.Time
	seq     int
	f       func()
	stopped bool
	fired   bool
}

func newFakeTime() *fakeTime {
	return &fakeTime{now: time.Date(2026, 10, 1, 20, 0, 0, 0, time.UTC)}
}

func (ft *fakeTime) Now() time.Time {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	return ft.now
}

func (ft *fakeTime) AfterFunc(d time.Duration, f func()) domain.Timer {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	t := &fakeTimer{owner: ft, at: ft.now.Add(d), seq: len(ft.timers), f: f}
	ft.timers = append(ft.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (ft *fakeTime) Advance(d time.Duration) {
	ft.mu.Lock()
	target := ft.now.Add(d)
	ft.mu.Unlock()

	for {
		ft.mu.Lock()
		var due []*fakeTimer
		for _, t := range ft.timers {
			if !t.stopped && !t.fired && !t.at.After(target) {
				due = append(due, t)
			}
		}
		if len(due) == 0 {
			ft.now = target
			ft.mu.Unlock()
			return
		}
		sort.Slice(due, func(i, j int) bool {
			if due[i].at.Equal(due[j].at) {
				return due[i].seq < due[j].seq
			}
			return due[i].at.Before(due[j].at)
		})
		next := due[0]
		next.fired = true
		ft.now = next.at
		ft.mu.Unlock()

		next.f()
	}
}

// pending counts armed timers.
func (ft *fakeTime) pending() int {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	n := 0
	for _, t := range ft.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

type sentMessage struct {
	Channel domain.ChannelID
	Msg     domain.OutboundMessage
}

type editedMessage struct {
	Channel domain.ChannelID
	Message domain.MessageID
	Content string
}

type fakeChat struct {
	mu       sync.Mutex
	byName   map[string]domain.ChannelID
	created  []string
	sent     []sentMessage
	edits    []editedMessage
	deleted  []domain.ChannelID
	nextID   int
	parents  []domain.ChannelID
	createFn func(name string) error
	sendErr  error
}

func newFakeChat() *fakeChat {
	return &fakeChat{byName: map[string]domain.ChannelID{}}
}

func (c *fakeChat) CreateOrReuseChannel(_ context.Context, parent domain.ChannelID, name string) (domain.ChannelRef, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.createFn != nil {
		if err := c.createFn(name); err != nil {
			return domain.ChannelRef{}, err
		}
	}
	if id, ok := c.byName[name]; ok {
		return domain.ChannelRef{ID: id, Reused: true}, nil
	}
	c.nextID++
	id := domain.ChannelID(fmt.Sprintf("chan-%d", c.nextID))
	c.byName[name] = id
	c.created = append(c.created, name)
	c.parents = append(c.parents, parent)
	return domain.ChannelRef{ID: id}, nil
}

func (c *fakeChat) SendMessage(_ context.Context, channel domain.ChannelID, msg domain.OutboundMessage) (domain.MessageID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sendErr != nil {
		return "", c.sendErr
	}
	c.nextID++
	c.sent = append(c.sent, sentMessage{Channel: channel, Msg: msg})
	return domain.MessageID(fmt.Sprintf("msg-%d", c.nextID)), nil
}

func (c *fakeChat) EditMessage(_ context.Context, channel domain.ChannelID, message domain.MessageID, content string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.edits = append(c.edits, editedMessage{Channel: channel, Message: message, Content: content})
	return nil
}

func (c *fakeChat) DeleteChannel(_ context.Context, channel domain.ChannelID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleted = append(c.deleted, channel)
	for name, id := range c.byName {
		if id == channel {
			delete(c.byName, name)
		}
	}
	return nil
}

func (c *fakeChat) contents(channel domain.ChannelID) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []string
	for _, m := range c.sent {
		if m.Channel == channel {
			out = append(out, m.Msg.Content)
		}
	}
	return out
}

func (c *fakeChat) createdCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.created)
}

type fakeDirectory struct {
	communities map[domain.CommunityID]domain.Community
	settings    domain.RelaySettings
}

func (d *fakeDirectory) Community(id domain.CommunityID) (domain.Community, bool) {
	c, ok := d.communities[id]
	return c, ok
}

func (d *fakeDirectory) Communities() []domain.Community {
	out := make([]domain.Community, 0, len(d.communities))
	for _, c := range d.communities {
		out = append(out, c)
	}
	return out
}

func (d *fakeDirectory) Settings() domain.RelaySettings {
	return d.settings
}

type fakeFeed struct {
	mu      sync.Mutex
	lobbies []domain.Lobby
	calls   int
}

func (f *fakeFeed) ListActiveLobbies(context.Context) []domain.Lobby {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return append([]domain.Lobby(nil), f.lobbies...)
}

type fakeIdentities map[domain.UserID][]string

func (f fakeIdentities) ResolveLinkedIdentities(_ context.Context, user domain.UserID) ([]string, error) {
	return f[user], nil
}

const (
	testCode      domain.LobbyCode = "VerbNounAdjective"
	alphaPingRole domain.RoleID    = "role-alpha"
	betaPingRole  domain.RoleID    = "role-beta"
)

type relayEnv struct {
	relay *Relay
	chat  *fakeChat
	time  *fakeTime
	dir   *fakeDirectory
	feed  *fakeFeed
	links fakeIdentities
}

func newRelayEnv(t *testing.T) *relayEnv {
	t.Helper()

	env := &relayEnv{
		chat: newFakeChat(),
		time: newFakeTime(),
		dir: &fakeDirectory{
			communities: map[domain.CommunityID]domain.Community{
				"alpha": {ID: "alpha", Name: "Alpha", PingRole: alphaPingRole, Region: "EU", Invite: "https://discord.gg/alpha"},
				"beta":  {ID: "beta", Name: "Beta", PingRole: betaPingRole, Region: "na"},
				"gamma": {ID: "gamma", Name: "Gamma", PingRole: "role-gamma"},
			},
			settings: domain.RelaySettings{
				Guild:          "relay",
				Category:       "category",
				RegionPings:    map[string]domain.RoleID{"eu": "900", "na": "901"},
				LogChannel:     "audit",
				DeleteChannels: true,
				Timers:         domain.DefaultTimers(),
			},
		},
		feed:  &fakeFeed{},
		links: fakeIdentities{},
	}

	ids := 0
	env.relay = NewRelay(RelayConfig{
		Chat:       env.chat,
		Directory:  env.dir,
		Feed:       env.feed,
		Identities: env.links,
		Clock:      env.time,
		Scheduler:  env.time,
		NewID: func() string {
			ids++
			return fmt.Sprintf("session-%d", ids)
		},
	})
	t.Cleanup(env.relay.Close)

	return env
}

func (e *relayEnv) say(community domain.CommunityID, author domain.UserID, text string, roles ...domain.RoleID) {
	e.relay.HandleMessage(context.Background(), domain.InboundMessage{
		CommunityID:      community,
		ChannelID:        domain.ChannelID(string(community) + "-general"),
		AuthorID:         author,
		Text:             text,
		MentionedRoleIDs: roles,
	})
}

func (e *relayEnv) alert(community domain.CommunityID, author domain.UserID, text string) {
	role := e.dir.communities[community].PingRole
	e.say(community, author, "<@&"+string(role)+"> "+text, role)
}

func (e *relayEnv) session(code domain.LobbyCode) (*domain.Session, bool) {
	e.relay.mu.Lock()
	defer e.relay.mu.Unlock()
	return e.relay.registry.Get(code)
}

func (e *relayEnv) channel(t *testing.T, code domain.LobbyCode) domain.ChannelID {
	t.Helper()
	s, ok := e.session(code)
	if !ok {
		t.Fatalf("no session for %s", code)
	}
	return s.NotificationChannelID
}
