package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/bnema/gathering-relay/internal/domain"
	"github.com/bnema/gathering-relay/internal/platform/logger"
)

const (
	intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent

	closeAck = "deleting channel..."
)

// EventHandler receives the events the relay cares about.
type EventHandler interface {
	HandleMessage(ctx context.Context, msg domain.InboundMessage)
	HandleCloseRequest(ctx context.Context, req domain.CloseRequest)
}

// Gateway connects the bot session and forwards gateway events.
type Gateway struct {
	session *discordgo.Session
	api     API
	handler EventHandler
	ctx     context.Context
}

// NewSession opens nothing; it prepares a bot session with the intents the
// relay needs.
func NewSession(token string) (*discordgo.Session, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	s.Identify.Intents = intents
	return s, nil
}

func NewGateway(session *discordgo.Session, handler EventHandler) *Gateway {
	g := &Gateway{session: session, api: session, handler: handler, ctx: context.Background()}
	return g
}

// Run opens the gateway connection and blocks until ctx is done.
func (g *Gateway) Run(ctx context.Context) error {
	g.ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "discord"})

	removeMessage := g.session.AddHandler(g.onMessageCreate)
	removeInteraction := g.session.AddHandler(g.onInteractionCreate)
	defer removeMessage()
	defer removeInteraction()

	if err := g.session.Open(); err != nil {
		return fmt.Errorf("open discord gateway: %w", err)
	}
	slog.InfoContext(g.ctx, "discord gateway connected")

	<-ctx.Done()

	if err := g.session.Close(); err != nil {
		return fmt.Errorf("close discord gateway: %w", err)
	}
	slog.InfoContext(g.ctx, "discord gateway closed")
	return nil
}

func (g *Gateway) onMessageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	msg, ok := InboundMessage(m)
	if !ok {
		return
	}
	g.handler.HandleMessage(g.ctx, msg)
}

func (g *Gateway) onInteractionCreate(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	req, ok := CloseRequest(i)
	if !ok {
		return
	}

	err := g.api.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: closeAck,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}, discordgo.WithContext(g.ctx))
	if err != nil {
		slog.WarnContext(g.ctx, "acknowledge close button failed", "channel_id", req.ChannelID, "error", err)
	}

	g.handler.HandleCloseRequest(g.ctx, req)
}

// InboundMessage converts a guild message. Direct messages are dropped.
func InboundMessage(m *discordgo.MessageCreate) (domain.InboundMessage, bool) {
	if m == nil || m.Message == nil || m.Author == nil || m.GuildID == "" {
		return domain.InboundMessage{}, false
	}

	roles := make([]domain.RoleID, 0, len(m.MentionRoles))
	for _, role := range m.MentionRoles {
		roles = append(roles, domain.RoleID(role))
	}

	return domain.InboundMessage{
		CommunityID:      domain.CommunityID(m.GuildID),
		ChannelID:        domain.ChannelID(m.ChannelID),
		AuthorID:         domain.UserID(m.Author.ID),
		AuthorIsBot:      m.Author.Bot,
		Text:             m.Content,
		MentionedRoleIDs: roles,
	}, true
}

// CloseRequest converts a close button press.
func CloseRequest(i *discordgo.InteractionCreate) (domain.CloseRequest, bool) {
	if i == nil || i.Interaction == nil || i.Type != discordgo.InteractionMessageComponent || i.Data == nil {
		return domain.CloseRequest{}, false
	}
	if i.MessageComponentData().CustomID != domain.CloseButtonID {
		return domain.CloseRequest{}, false
	}

	user := i.User
	if i.Member != nil && i.Member.User != nil {
		user = i.Member.User
	}

	req := domain.CloseRequest{
		CommunityID: domain.CommunityID(i.GuildID),
		ChannelID:   domain.ChannelID(i.ChannelID),
	}
	if user != nil {
		req.UserID = domain.UserID(user.ID)
		req.UserTag = user.String()
	}

	return req, true
}
