package domain

import (
	"fmt"
	"strings"
	"time"
)

// IdentityLink maps a chat user to the names they own in the lobby feed.
type IdentityLink struct {
	UserID     UserID
	Identities []string
	UpdatedAt  time.Time
}

func (l IdentityLink) Validate() error {
	if strings.TrimSpace(string(l.UserID)) == "" {
		return fmt.Errorf("user id is required")
	}
	if len(l.Identities) == 0 {
		return fmt.Errorf("at least one identity is required")
	}

	return nil
}

// NormalizeIdentities trims, drops empties and removes case-insensitive
// duplicates while keeping first-seen order.
func (l *IdentityLink) NormalizeIdentities() {
	if l == nil {
		return
	}

	identities := make([]string, 0, len(l.Identities))
	seen := make(map[string]struct{}, len(l.Identities))
	for _, identity := range l.Identities {
		trimmed := strings.TrimSpace(identity)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		identities = append(identities, trimmed)
	}

	l.Identities = identities
}
