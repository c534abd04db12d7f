package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Community is one chat server whose lobby announcements are relayed.
type Community struct {
	ID           CommunityID
	Name         string
	PingRole     RoleID
	CountChannel ChannelID
	Region       string
	Category     ChannelID
	Invite       string
}

// LabelParts returns the label fragments posted into notification channels.
func (c Community) LabelParts() []string {
	if c.Name == "" {
		return nil
	}
	if c.Invite != "" {
		return []string{fmt.Sprintf("[%s]", c.Name), fmt.Sprintf("<%s>", c.Invite)}
	}

	return []string{fmt.Sprintf("[%s]", c.Name)}
}

func (c Community) Label() string {
	return strings.Join(c.LabelParts(), " ")
}

func (c Community) Validate() error {
	if strings.TrimSpace(string(c.ID)) == "" {
		return fmt.Errorf("community id is required")
	}
	if strings.TrimSpace(string(c.PingRole)) == "" {
		return fmt.Errorf("community %s: ping role is required", c.ID)
	}

	return nil
}

type Timers struct {
	WaitForCode       time.Duration
	WaitForCount      time.Duration
	PostFullDelay     time.Duration
	InactivityTimeout time.Duration
	SweepInterval     time.Duration
}

func DefaultTimers() Timers {
	return Timers{
		WaitForCode:       2 * time.Minute,
		WaitForCount:      10 * time.Minute,
		PostFullDelay:     7 * time.Second,
		InactivityTimeout: time.Hour,
		SweepInterval:     30 * time.Second,
	}
}

// WithDefaults fills non-positive durations from DefaultTimers.
func (t Timers) WithDefaults() Timers {
	defaults := DefaultTimers()
	if t.WaitForCode <= 0 {
		t.WaitForCode = defaults.WaitForCode
	}
	if t.WaitForCount <= 0 {
		t.WaitForCount = defaults.WaitForCount
	}
	if t.PostFullDelay <= 0 {
		t.PostFullDelay = defaults.PostFullDelay
	}
	if t.InactivityTimeout <= 0 {
		t.InactivityTimeout = defaults.InactivityTimeout
	}
	if t.SweepInterval <= 0 {
		t.SweepInterval = defaults.SweepInterval
	}

	return t
}

// RelaySettings are the process-wide settings of the relay community that
// hosts notification channels.
type RelaySettings struct {
	Guild          CommunityID
	Category       ChannelID
	ChannelPrefix  string
	RegionPings    map[string]RoleID
	DebugChannel   ChannelID
	LogChannel     ChannelID
	DeleteChannels bool
	Timers         Timers
}

// RegionPing resolves the broadcast role for a community's region.
func (s RelaySettings) RegionPing(c Community) RoleID {
	if c.Region == "" {
		return ""
	}

	return s.RegionPings[strings.ToLower(c.Region)]
}

// CategoryFor prefers a community-specific notification category.
func (s RelaySettings) CategoryFor(c Community) ChannelID {
	if c.Category != "" {
		return c.Category
	}

	return s.Category
}

func (s RelaySettings) MentionableRoles() []RoleID {
	roles := make([]RoleID, 0, len(s.RegionPings))
	for _, role := range s.RegionPings {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })

	return roles
}
