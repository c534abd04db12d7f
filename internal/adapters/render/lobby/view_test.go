package lobby

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/gathering-relay/internal/domain"
)

func TestRenderLobbiesSortsFullestFirstAndMarksLinks(t *testing.T) {
	output, err := RenderLobbies([]domain.Lobby{
		{OwnerIdentity: "Scout", ReportedCount: 2, Capacity: 6},
		{OwnerIdentity: "Rider", ReportedCount: 6, Capacity: 6},
		{OwnerIdentity: "Warden", ReportedCount: 4},
	}, LobbyOptions{Linked: map[string]domain.UserID{"scout": "user-7"}})
	require.NoError(t, err)

	assert.Contains(t, output, "lobbies: 3")
	assert.Contains(t, output, "6/6")
	assert.Contains(t, output, "4/6", "missing capacity defaults to six")
	assert.Contains(t, output, "full")
	assert.Contains(t, output, "linked to user-7")
	assert.Less(t, strings.Index(output, "Rider"), strings.Index(output, "Warden"))
	assert.Less(t, strings.Index(output, "Warden"), strings.Index(output, "Scout"))
}

func TestRenderLobbiesEmpty(t *testing.T) {
	output, err := RenderLobbies(nil, LobbyOptions{})
	require.NoError(t, err)

	assert.Contains(t, output, "lobbies: 0")
	assert.Contains(t, output, "No lobbies in the feed.")
}

func TestRenderCommunities(t *testing.T) {
	settings := domain.RelaySettings{
		Guild:       "relay",
		Category:    "lobbies",
		RegionPings: map[string]domain.RoleID{"eu": "900"},
	}

	output, err := RenderCommunities([]domain.Community{
		{ID: "alpha", Name: "Alpha", PingRole: "role-alpha", Region: "eu", CountChannel: "counts", Invite: "https://discord.gg/alpha"},
		{ID: "beta", PingRole: "role-beta", Category: "beta-lobbies"},
	}, settings)
	require.NoError(t, err)

	assert.Contains(t, output, "communities: 2  relay guild: relay")
	assert.Contains(t, output, "Alpha")
	assert.Contains(t, output, "broadcast role: 900")
	assert.Contains(t, output, "count channel: counts  category: lobbies")
	assert.Contains(t, output, "invite: https://discord.gg/alpha")
	assert.Contains(t, output, "category: beta-lobbies")
	assert.Contains(t, output, "region: none  broadcast role: none")
}

func TestRenderBarBounds(t *testing.T) {
	s := newStyles()

	assert.Equal(t, 12, strings.Count(renderBar(9, 6, s), "="))
	assert.Equal(t, 12, strings.Count(renderBar(-1, 6, s), "-"))
	assert.Equal(t, 6, strings.Count(renderBar(3, 6, s), "="))
}
