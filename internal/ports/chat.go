package ports

import (
	"context"

	"github.com/bnema/gathering-relay/internal/domain"
)

// ChatPlatform is the outbound side of the chat service hosting the
// notification channels.
type ChatPlatform interface {
	// CreateOrReuseChannel returns the existing channel named name under
	// parent, creating it when none exists.
	CreateOrReuseChannel(ctx context.Context, parent domain.ChannelID, name string) (domain.ChannelRef, error)
	SendMessage(ctx context.Context, channelID domain.ChannelID, msg domain.OutboundMessage) (domain.MessageID, error)
	EditMessage(ctx context.Context, channelID domain.ChannelID, messageID domain.MessageID, content string) error
	DeleteChannel(ctx context.Context, channelID domain.ChannelID) error
}
