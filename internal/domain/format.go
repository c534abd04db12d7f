package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Capacity is the player count of a full lobby.
const Capacity = 6

const (
	DefaultChannelPrefix = "the-gathering-begins"

	maxChannelCodeLen = 40
	maxChannelNameLen = 90

	UsageNote = "If the custom game lobby has reached its full six players, then this channel has served its purpose. Close it to maintain order."
	FullLine  = "full (6/6)"

	ReasonFull     = "session ended (full)"
	ReasonFullSix  = "session ended (full, 6/6)"
	ReasonInactive = "session ended (inactive)"
)

// ClampCount forces a derived count into [1, Capacity].
func ClampCount(count int) int {
	return max(1, min(Capacity, count))
}

var channelUnsafe = regexp.MustCompile(`[^a-z0-9-]`)

// ChannelName derives the notification channel name for a code. Reuse of an
// existing channel is keyed on this name.
func ChannelName(prefix string, code LobbyCode) string {
	if prefix == "" {
		prefix = DefaultChannelPrefix
	}
	safe := channelUnsafe.ReplaceAllString(strings.ToLower(string(code)), "")
	if len(safe) > maxChannelCodeLen {
		safe = safe[:maxChannelCodeLen]
	}
	name := prefix + "-" + safe
	if len(name) > maxChannelNameLen {
		name = name[:maxChannelNameLen]
	}

	return name
}

func RoleMention(role RoleID) string {
	return "<@&" + string(role) + ">"
}

// StatusLine renders "<code> | <n>/6".
func StatusLine(code LobbyCode, count int) string {
	return fmt.Sprintf("%s | %d/%d", code, count, Capacity)
}

// RawStatusMessage renders a message-derived count update. The first
// emission of a session carries the broadcast mention, later ones the
// community label line.
func RawStatusMessage(code LobbyCode, count int, mention RoleID, label string, first bool) string {
	line := StatusLine(code, count)
	switch {
	case first && mention != "":
		return RoleMention(mention) + " " + line
	case !first && label != "":
		return label + "\n" + line
	default:
		return line
	}
}

// ReconciledStatusMessage renders a feed-confirmed count together with the
// players announced in chat but not yet seen in the feed.
func ReconciledStatusMessage(code LobbyCode, state ReconciledState, mention RoleID, label string, first bool) string {
	var b strings.Builder
	switch {
	case first && mention != "":
		b.WriteString(RoleMention(mention))
		b.WriteString("\n")
	case !first && label != "":
		b.WriteString(label)
		b.WriteString("\n")
	}
	b.WriteString(StatusLine(code, state.Current))

	if state.Expected > 0 {
		plural := "s"
		if state.Expected == 1 {
			plural = ""
		}
		fmt.Fprintf(&b, "\n-# %d player%s are expected to join (soon).", state.Expected, plural)
		fmt.Fprintf(&b, "\n-# so, lobby needs %d more players to be full.", state.Remaining)
	}

	return b.String()
}

func ConfirmedFullMessage(delaySeconds int) string {
	return fmt.Sprintf("confirmed, full (6/6) \n-# closing channel in %d seconds", delaySeconds)
}

func ReplacedReason(code LobbyCode) string {
	return fmt.Sprintf("session ended (replaced by %s)", code)
}

func ClosedByReason(userTag string) string {
	if userTag == "" {
		return "session ended (closed)"
	}
	return fmt.Sprintf("session ended (closed by %s)", userTag)
}
