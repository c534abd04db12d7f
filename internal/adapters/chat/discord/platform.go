package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/bnema/gathering-relay/internal/domain"
	"github.com/bnema/gathering-relay/internal/ports"
)

const closeButtonLabel = "delete channel"

// API is the part of *discordgo.Session the relay calls.
type API interface {
	GuildChannels(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Channel, error)
	GuildChannelCreateComplex(guildID string, data discordgo.GuildChannelCreateData, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEdit(channelID, messageID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelDelete(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

var _ API = (*discordgo.Session)(nil)

// Platform implements ports.ChatPlatform on the relay guild.
type Platform struct {
	api   API
	guild func() domain.CommunityID
}

var _ ports.ChatPlatform = (*Platform)(nil)

// NewPlatform creates channels in the guild returned by guild, read on every
// call so config reloads apply.
func NewPlatform(api API, guild func() domain.CommunityID) *Platform {
	return &Platform{api: api, guild: guild}
}

// CreateOrReuseChannel returns an existing text channel with name under
// parent, or creates one.
func (p *Platform) CreateOrReuseChannel(ctx context.Context, parent domain.ChannelID, name string) (domain.ChannelRef, error) {
	guild := string(p.guild())
	if guild == "" {
		return domain.ChannelRef{}, fmt.Errorf("create channel %s: relay guild is not configured", name)
	}

	channels, err := p.api.GuildChannels(guild, discordgo.WithContext(ctx))
	if err != nil {
		return domain.ChannelRef{}, fmt.Errorf("list relay channels: %w", err)
	}
	for _, ch := range channels {
		if ch.Name == name && ch.ParentID == string(parent) {
			return domain.ChannelRef{ID: domain.ChannelID(ch.ID), Reused: true}, nil
		}
	}

	ch, err := p.api.GuildChannelCreateComplex(guild, discordgo.GuildChannelCreateData{
		Name:     name,
		Type:     discordgo.ChannelTypeGuildText,
		ParentID: string(parent),
	}, discordgo.WithContext(ctx))
	if err != nil {
		return domain.ChannelRef{}, fmt.Errorf("create channel %s: %w", name, err)
	}

	return domain.ChannelRef{ID: domain.ChannelID(ch.ID)}, nil
}

// SendMessage posts msg. Only the listed roles may be pinged; a message
// without MentionRoles pings nobody.
func (p *Platform) SendMessage(ctx context.Context, channelID domain.ChannelID, msg domain.OutboundMessage) (domain.MessageID, error) {
	send := &discordgo.MessageSend{
		Content:         msg.Content,
		AllowedMentions: allowedMentions(msg.MentionRoles),
	}
	if msg.CloseButton {
		send.Components = closeButtonRow()
	}

	sent, err := p.api.ChannelMessageSendComplex(string(channelID), send, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("send to channel %s: %w", channelID, err)
	}

	return domain.MessageID(sent.ID), nil
}

func (p *Platform) EditMessage(ctx context.Context, channelID domain.ChannelID, messageID domain.MessageID, content string) error {
	if _, err := p.api.ChannelMessageEdit(string(channelID), string(messageID), content, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("edit message %s: %w", messageID, err)
	}
	return nil
}

func (p *Platform) DeleteChannel(ctx context.Context, channelID domain.ChannelID) error {
	if _, err := p.api.ChannelDelete(string(channelID), discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("delete channel %s: %w", channelID, err)
	}
	return nil
}

func allowedMentions(roles []domain.RoleID) *discordgo.MessageAllowedMentions {
	allowed := &discordgo.MessageAllowedMentions{Parse: []discordgo.AllowedMentionType{}}
	for _, role := range roles {
		allowed.Roles = append(allowed.Roles, string(role))
	}
	return allowed
}

func closeButtonRow() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    closeButtonLabel,
					Style:    discordgo.DangerButton,
					CustomID: domain.CloseButtonID,
				},
			},
		},
	}
}
