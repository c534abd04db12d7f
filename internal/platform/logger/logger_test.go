package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/gathering-relay/internal/platform/config"
)

func TestTraceHandlerAddsContextFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(NewHandler(config.Config{Env: "production"}, &buf))

	ctx := WithLogFields(context.Background(), LogFields{CommunityID: "alpha", Component: "relay.staging"})
	ctx = WithLogFields(ctx, LogFields{Code: "VerbNounAdjective"})
	log.InfoContext(ctx, "staged")

	out := buf.String()
	assert.Contains(t, out, `"community_id":"alpha"`)
	assert.Contains(t, out, `"code":"VerbNounAdjective"`)
	assert.Contains(t, out, `"component":"relay.staging"`)
	assert.NotContains(t, out, "trace_id")
}

func TestDevelopmentHandlerLogsDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(NewHandler(config.Config{Env: "development"}, &buf))
	log.Debug("visible")

	assert.Contains(t, buf.String(), "msg=visible")
}

func TestMergeFieldsKeepsExisting(t *testing.T) {
	t.Parallel()

	got := mergeFields(LogFields{CommunityID: "alpha", Code: "A"}, LogFields{Code: "B"})
	assert.Equal(t, LogFields{CommunityID: "alpha", Code: "B"}, got)
	assert.Equal(t, "abc...", Truncate("abcdef", 3))
}
