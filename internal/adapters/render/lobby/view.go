package lobby

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/gathering-relay/internal/domain"
)

const barWidth = 12

// LobbyOptions marks feed owners that are linked to a chat user.
type LobbyOptions struct {
	Linked map[string]domain.UserID
}

// RenderLobbies lists feed lobbies, fullest first.
func RenderLobbies(lobbies []domain.Lobby, opts LobbyOptions) (string, error) {
	return run(func(s styles) string { return lobbiesView(lobbies, opts, s) })
}

// RenderCommunities lists the configured communities with the region role
// their announcements mention.
func RenderCommunities(communities []domain.Community, settings domain.RelaySettings) (string, error) {
	return run(func(s styles) string { return communitiesView(communities, settings, s) })
}

func lobbiesView(lobbies []domain.Lobby, opts LobbyOptions, s styles) string {
	lines := []string{
		s.title.Render("Custom Lobbies"),
		s.header.Render(fmt.Sprintf("lobbies: %d", len(lobbies))),
	}
	if len(lobbies) == 0 {
		lines = append(lines, s.empty.Render("No lobbies in the feed."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	sorted := append([]domain.Lobby(nil), lobbies...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].ReportedCount != sorted[j].ReportedCount {
			return sorted[i].ReportedCount > sorted[j].ReportedCount
		}
		return strings.ToLower(sorted[i].OwnerIdentity) < strings.ToLower(sorted[j].OwnerIdentity)
	})

	linked := make(map[string]domain.UserID, len(opts.Linked))
	for identity, user := range opts.Linked {
		linked[strings.ToLower(identity)] = user
	}

	for _, l := range sorted {
		parts := []string{
			s.owner.Render(l.OwnerIdentity),
			renderBar(l.ReportedCount, capacity(l), s),
			s.detail.Render(fmt.Sprintf("%d/%d", l.ReportedCount, capacity(l))),
		}
		if l.ReportedCount >= capacity(l) {
			parts = append(parts, s.full.Render("full"))
		}
		if user, ok := linked[strings.ToLower(l.OwnerIdentity)]; ok {
			parts = append(parts, s.linked.Render("linked to "+string(user)))
		}
		lines = append(lines, strings.Join(parts, " "))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func communitiesView(communities []domain.Community, settings domain.RelaySettings, s styles) string {
	lines := []string{
		s.title.Render("Communities"),
		s.header.Render(fmt.Sprintf("communities: %d  relay guild: %s", len(communities), orNone(string(settings.Guild)))),
	}
	if len(communities) == 0 {
		lines = append(lines, s.empty.Render("No communities configured."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, c := range communities {
		title := c.Name
		if title == "" {
			title = string(c.ID)
		}
		block := []string{
			s.owner.Render(title),
			s.detail.Render(fmt.Sprintf("id: %s  ping role: %s", c.ID, c.PingRole)),
			s.detail.Render(fmt.Sprintf("region: %s  broadcast role: %s", orNone(c.Region), orNone(string(settings.RegionPing(c))))),
			s.detail.Render(fmt.Sprintf("count channel: %s  category: %s", orNone(string(c.CountChannel)), orNone(string(settings.CategoryFor(c))))),
		}
		if c.Invite != "" {
			block = append(block, s.detail.Render("invite: "+c.Invite))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, block...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderBar(count, size int, s styles) string {
	filled := count * barWidth / size
	filled = max(0, min(barWidth, filled))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", barWidth-filled)),
		s.barBracket.Render("]"),
	)
}

func capacity(l domain.Lobby) int {
	if l.Capacity <= 0 {
		return domain.Capacity
	}
	return l.Capacity
}

func orNone(v string) string {
	if v == "" {
		return "none"
	}
	return v
}
