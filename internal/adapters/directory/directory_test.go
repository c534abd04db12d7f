package directory

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/gathering-relay/internal/domain"
	"github.com/bnema/gathering-relay/internal/platform/config"
)

const sampleConfig = `
[relay]
guild = "relay-guild"
category = "lobbies"
log_channel = "audit"
debug_channel = "debug"

[relay.region_pings]
EU = "900"
na = "901"

[relay.timers]
wait_for_code = "90s"
post_full_delay = "5s"

[[communities]]
id = "alpha"
name = "Alpha"
ping_role = "role-alpha"
count_channel = "alpha-counts"
region = "eu"
invite = "https://discord.gg/alpha"

[[communities]]
id = "beta"
name = "Beta"
ping_role = "role-beta"
category = "beta-lobbies"
`

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func newTestDirectory(t *testing.T, content string) (*Directory, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	writeConfig(t, path, content)

	v, err := config.NewViper(path)
	require.NoError(t, err)

	d, err := New(v)
	require.NoError(t, err)
	return d, path
}

func TestDirectoryDecodesSettingsAndCommunities(t *testing.T) {
	d, _ := newTestDirectory(t, sampleConfig)

	settings := d.Settings()
	assert.Equal(t, domain.CommunityID("relay-guild"), settings.Guild)
	assert.Equal(t, domain.ChannelID("lobbies"), settings.Category)
	assert.Equal(t, domain.ChannelID("audit"), settings.LogChannel)
	assert.True(t, settings.DeleteChannels, "channels are deleted unless disabled")
	assert.Equal(t, map[string]domain.RoleID{"eu": "900", "na": "901"}, settings.RegionPings)
	assert.Equal(t, 90*time.Second, settings.Timers.WaitForCode)
	assert.Equal(t, 5*time.Second, settings.Timers.PostFullDelay)
	assert.Equal(t, 10*time.Minute, settings.Timers.WaitForCount)
	assert.Equal(t, time.Hour, settings.Timers.InactivityTimeout)

	alpha, ok := d.Community("alpha")
	require.True(t, ok)
	assert.Equal(t, domain.Community{
		ID:           "alpha",
		Name:         "Alpha",
		PingRole:     "role-alpha",
		CountChannel: "alpha-counts",
		Region:       "eu",
		Invite:       "https://discord.gg/alpha",
	}, alpha)
	assert.Equal(t, domain.RoleID("900"), settings.RegionPing(alpha))

	beta, ok := d.Community("beta")
	require.True(t, ok)
	assert.Equal(t, domain.ChannelID("beta-lobbies"), settings.CategoryFor(beta))

	var ids []domain.CommunityID
	for _, c := range d.Communities() {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []domain.CommunityID{"alpha", "beta"}, ids)
	assert.Equal(t, []string{"eu", "na"}, d.Regions())
}

func TestDirectorySettingsReturnsCopy(t *testing.T) {
	d, _ := newTestDirectory(t, sampleConfig)

	settings := d.Settings()
	settings.RegionPings["eu"] = "changed"

	assert.Equal(t, domain.RoleID("900"), d.Settings().RegionPings["eu"])
}

func TestDirectoryRejectsInvalidCommunities(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeConfig(t, path, "[[communities]]\nid = \"alpha\"\n")

	v, err := config.NewViper(path)
	require.NoError(t, err)

	_, err = New(v)
	assert.ErrorContains(t, err, "ping role is required")

	writeConfig(t, path, "[[communities]]\nid = \"alpha\"\nping_role = \"r\"\n[[communities]]\nid = \"alpha\"\nping_role = \"r\"\n")
	require.NoError(t, v.ReadInConfig())
	_, err = New(v)
	assert.ErrorContains(t, err, "listed twice")
}

func TestDirectoryReloadKeepsPreviousOnError(t *testing.T) {
	d, path := newTestDirectory(t, sampleConfig)

	writeConfig(t, path, "[[communities]]\nid = \"gamma\"\n")
	require.NoError(t, d.cfg.ReadInConfig())
	require.Error(t, d.Reload())

	_, ok := d.Community("alpha")
	assert.True(t, ok)
	_, ok = d.Community("gamma")
	assert.False(t, ok)
}

func TestDirectoryWatchAppliesFileChanges(t *testing.T) {
	d, path := newTestDirectory(t, sampleConfig)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	d.Watch(ctx)

	writeConfig(t, path, sampleConfig+`
[[communities]]
id = "gamma"
name = "Gamma"
ping_role = "role-gamma"
`)

	assert.Eventually(t, func() bool {
		_, ok := d.Community("gamma")
		return ok
	}, 5*time.Second, 20*time.Millisecond)
}

func TestDirectoryEmptyConfigUsesDefaults(t *testing.T) {
	d, err := New(nil)
	require.NoError(t, err)

	assert.Empty(t, d.Communities())
	assert.Equal(t, domain.DefaultTimers(), d.Settings().Timers)
	assert.True(t, d.Settings().DeleteChannels)
}
