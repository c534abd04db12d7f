package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bnema/gathering-relay/internal/domain"
)

// debug writes a diagnostic block for one count update to the debug
// channel, or to the log when no debug channel is configured.
func (l *Lifecycle) debug(ctx context.Context, s *domain.Session, community domain.Community, raw string, count int, rc Reconciliation) {
	settings := l.directory.Settings()
	block := debugBlock(s, community, settings, raw, count, rc)

	if settings.DebugChannel == "" {
		slog.DebugContext(ctx, "count update", "detail", block)
		return
	}
	l.sendText(ctx, settings.DebugChannel, "```\n"+block+"\n```")
}

func debugBlock(s *domain.Session, community domain.Community, settings domain.RelaySettings, raw string, count int, rc Reconciliation) string {
	var b strings.Builder
	line := func(key string, value any) {
		fmt.Fprintf(&b, "%-24s %v\n", key+":", value)
	}

	b.WriteString("COUNT UPDATE\n")
	line("session_id", s.ID)
	line("code", s.Code)
	line("channel", s.NotificationChannelID)
	line("origin_channel", orNone(string(s.OriginChannelID)))
	line("community", orNone(string(community.ID)))
	line("count_channel", orNone(string(community.CountChannel)))
	line("region_role", orNone(string(settings.RegionPing(community))))
	line("owner", s.OwnerID)
	line("raw_text", fmt.Sprintf("%q", raw))
	line("parsed_count", count)

	if reported, ok := s.ReportedCount(); ok {
		line("last_reported", reported)
	}
	if len(rc.Identities) > 0 {
		line("identities", strings.Join(rc.Identities, ","))
		line("feed_owner", orNone(rc.Lobby.OwnerIdentity))
	}
	if rc.Active {
		line("feed_players", fmt.Sprintf("%d/%d", rc.Lobby.ReportedCount, rc.Lobby.Capacity))
		line("reconciled", fmt.Sprintf("current=%d expected=%d remaining=%d", rc.State.Current, rc.State.Expected, rc.State.Remaining))
		line("duplicate", rc.Duplicate)
	}

	return strings.TrimRight(b.String(), "\n")
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
