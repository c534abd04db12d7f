package directory

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/bnema/gathering-relay/internal/domain"
	"github.com/bnema/gathering-relay/internal/platform/logger"
	"github.com/bnema/gathering-relay/internal/ports"
)

// Directory serves relay settings and communities from the viper config. A
// reload that fails validation keeps the previous snapshot.
type Directory struct {
	cfg *viper.Viper

	mu          sync.RWMutex
	settings    domain.RelaySettings
	communities map[domain.CommunityID]domain.Community
	order       []domain.CommunityID
}

var _ ports.CommunityDirectory = (*Directory)(nil)

func New(cfg *viper.Viper) (*Directory, error) {
	if cfg == nil {
		cfg = viper.New()
	}
	applyDefaults(cfg)

	d := &Directory{cfg: cfg}
	if err := d.Reload(); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Directory) Community(id domain.CommunityID) (domain.Community, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	c, ok := d.communities[id]
	return c, ok
}

// Communities lists communities in config file order.
func (d *Directory) Communities() []domain.Community {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]domain.Community, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.communities[id])
	}
	return out
}

func (d *Directory) Settings() domain.RelaySettings {
	d.mu.RLock()
	defer d.mu.RUnlock()

	settings := d.settings
	settings.RegionPings = make(map[string]domain.RoleID, len(d.settings.RegionPings))
	for region, role := range d.settings.RegionPings {
		settings.RegionPings[region] = role
	}
	return settings
}

// Reload decodes the current viper state and swaps it in.
func (d *Directory) Reload() error {
	var file fileSchema
	if err := d.cfg.Unmarshal(&file); err != nil {
		return fmt.Errorf("decode relay config: %w", err)
	}

	settings, communities, order, err := file.toDomain()
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.settings = settings
	d.communities = communities
	d.order = order
	d.mu.Unlock()

	return nil
}

// Watch reloads on config file changes until ctx is done. Changes after
// cancellation are ignored.
func (d *Directory) Watch(ctx context.Context) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "directory"})

	d.cfg.OnConfigChange(func(event fsnotify.Event) {
		if ctx.Err() != nil || !event.Has(fsnotify.Write|fsnotify.Create) {
			return
		}
		if err := d.Reload(); err != nil {
			slog.WarnContext(ctx, "config reload rejected, keeping previous", "file", event.Name, "error", err)
			return
		}
		slog.InfoContext(ctx, "config reloaded", "file", event.Name, "communities", len(d.Communities()))
	})
	d.cfg.WatchConfig()
}

type fileSchema struct {
	Relay       relaySchema       `mapstructure:"relay"`
	Communities []communitySchema `mapstructure:"communities"`
}

type relaySchema struct {
	Guild          string            `mapstructure:"guild"`
	Category       string            `mapstructure:"category"`
	ChannelPrefix  string            `mapstructure:"channel_prefix"`
	RegionPings    map[string]string `mapstructure:"region_pings"`
	DebugChannel   string            `mapstructure:"debug_channel"`
	LogChannel     string            `mapstructure:"log_channel"`
	DeleteChannels bool              `mapstructure:"delete_channels"`
	Timers         timersSchema      `mapstructure:"timers"`
}

type timersSchema struct {
	WaitForCode       time.Duration `mapstructure:"wait_for_code"`
	WaitForCount      time.Duration `mapstructure:"wait_for_count"`
	PostFullDelay     time.Duration `mapstructure:"post_full_delay"`
	InactivityTimeout time.Duration `mapstructure:"inactivity_timeout"`
	SweepInterval     time.Duration `mapstructure:"sweep_interval"`
}

type communitySchema struct {
	ID           string `mapstructure:"id"`
	Name         string `mapstructure:"name"`
	PingRole     string `mapstructure:"ping_role"`
	CountChannel string `mapstructure:"count_channel"`
	Region       string `mapstructure:"region"`
	Category     string `mapstructure:"category"`
	Invite       string `mapstructure:"invite"`
}

func applyDefaults(cfg *viper.Viper) {
	defaults := domain.DefaultTimers()
	cfg.SetDefault("relay.delete_channels", true)
	cfg.SetDefault("relay.timers.wait_for_code", defaults.WaitForCode)
	cfg.SetDefault("relay.timers.wait_for_count", defaults.WaitForCount)
	cfg.SetDefault("relay.timers.post_full_delay", defaults.PostFullDelay)
	cfg.SetDefault("relay.timers.inactivity_timeout", defaults.InactivityTimeout)
	cfg.SetDefault("relay.timers.sweep_interval", defaults.SweepInterval)
}

func (f fileSchema) toDomain() (domain.RelaySettings, map[domain.CommunityID]domain.Community, []domain.CommunityID, error) {
	pings := make(map[string]domain.RoleID, len(f.Relay.RegionPings))
	for region, role := range f.Relay.RegionPings {
		pings[strings.ToLower(region)] = domain.RoleID(role)
	}

	settings := domain.RelaySettings{
		Guild:          domain.CommunityID(f.Relay.Guild),
		Category:       domain.ChannelID(f.Relay.Category),
		ChannelPrefix:  f.Relay.ChannelPrefix,
		RegionPings:    pings,
		DebugChannel:   domain.ChannelID(f.Relay.DebugChannel),
		LogChannel:     domain.ChannelID(f.Relay.LogChannel),
		DeleteChannels: f.Relay.DeleteChannels,
		Timers: domain.Timers{
			WaitForCode:       f.Relay.Timers.WaitForCode,
			WaitForCount:      f.Relay.Timers.WaitForCount,
			PostFullDelay:     f.Relay.Timers.PostFullDelay,
			InactivityTimeout: f.Relay.Timers.InactivityTimeout,
			SweepInterval:     f.Relay.Timers.SweepInterval,
		}.WithDefaults(),
	}

	communities := make(map[domain.CommunityID]domain.Community, len(f.Communities))
	order := make([]domain.CommunityID, 0, len(f.Communities))
	for _, entry := range f.Communities {
		c := domain.Community{
			ID:           domain.CommunityID(strings.TrimSpace(entry.ID)),
			Name:         entry.Name,
			PingRole:     domain.RoleID(strings.TrimSpace(entry.PingRole)),
			CountChannel: domain.ChannelID(entry.CountChannel),
			Region:       entry.Region,
			Category:     domain.ChannelID(entry.Category),
			Invite:       entry.Invite,
		}
		if err := c.Validate(); err != nil {
			return domain.RelaySettings{}, nil, nil, fmt.Errorf("validate relay config: %w", err)
		}
		if _, ok := communities[c.ID]; ok {
			return domain.RelaySettings{}, nil, nil, fmt.Errorf("validate relay config: community %s listed twice", c.ID)
		}
		communities[c.ID] = c
		order = append(order, c.ID)
	}

	return settings, communities, order, nil
}

// Regions lists the configured region keys, sorted.
func (d *Directory) Regions() []string {
	settings := d.Settings()
	regions := make([]string, 0, len(settings.RegionPings))
	for region := range settings.RegionPings {
		regions = append(regions, region)
	}
	sort.Strings(regions)
	return regions
}
