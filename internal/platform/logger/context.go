package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields are added to every record logged with the enriched context.
type LogFields struct {
	CommunityID string
	ChannelID   string
	Code        string
	SessionID   string
	UserID      string
	Component   string // e.g. "relay.lifecycle"
}

// WithLogFields enriches ctx. Later calls override non-empty fields.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.CommunityID != "" {
		result.CommunityID = next.CommunityID
	}
	if next.ChannelID != "" {
		result.ChannelID = next.ChannelID
	}
	if next.Code != "" {
		result.Code = next.Code
	}
	if next.SessionID != "" {
		result.SessionID = next.SessionID
	}
	if next.UserID != "" {
		result.UserID = next.UserID
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Truncate shortens s to maxLen bytes, appending "..." when cut.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
