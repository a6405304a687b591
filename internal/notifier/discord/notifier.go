package discord

import (
	"context"
	"time"

	"github.com/aleister1102/embedkit/internal/common/errorwrapper"
	"github.com/aleister1102/embedkit/internal/config"
	"github.com/aleister1102/embedkit/internal/embed"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// WebhookExecutor executes a webhook. *discordgo.Session satisfies it.
type WebhookExecutor interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordNotifier handles sending embeds to a Discord webhook
type DiscordNotifier struct {
	logger      zerolog.Logger
	executor    WebhookExecutor
	rateLimiter *rate.Limiter
	cfg         config.NotificationConfig
}

// NewDiscordNotifier creates a new DiscordNotifier instance. A nil executor
// selects an unauthenticated discordgo session, which is all webhook
// execution needs.
func NewDiscordNotifier(cfg config.NotificationConfig, logger zerolog.Logger, executor WebhookExecutor) (*DiscordNotifier, error) {
	if executor == nil {
		session, err := discordgo.New("")
		if err != nil {
			return nil, errorwrapper.WrapError(err, "failed to create Discord session")
		}
		session.Client.Timeout = cfg.Timeout()
		executor = session
	}

	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = config.DefaultNotificationRequestsPerMinute
	}
	burst := cfg.BurstLimit
	if burst <= 0 {
		burst = config.DefaultNotificationBurstLimit
	}

	return &DiscordNotifier{
		logger:      logger.With().Str("module", "DiscordNotifier").Logger(),
		executor:    executor,
		rateLimiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), burst),
		cfg:         cfg,
	}, nil
}

// SendNotification sends a prepared payload to webhookURL.
func (dn *DiscordNotifier) SendNotification(ctx context.Context, webhookURL string, params *discordgo.WebhookParams) error {
	if webhookURL == "" {
		dn.logger.Warn().Msg("Discord webhook URL is not configured, skipping notification")
		return nil
	}

	webhookID, token, err := ParseWebhookURL(webhookURL)
	if err != nil {
		return err
	}

	if err := dn.rateLimiter.Wait(ctx); err != nil {
		return errorwrapper.WrapError(err, "rate limiter wait aborted")
	}

	if timeout := dn.cfg.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if _, err := dn.executor.WebhookExecute(webhookID, token, true, params, discordgo.WithContext(ctx)); err != nil {
		dn.logger.Error().Err(err).Str("webhook_id", webhookID).Msg("Failed to send Discord notification")
		return errorwrapper.WrapError(err, "failed to execute webhook")
	}

	dn.logger.Info().Str("webhook_id", webhookID).Int("embeds", len(params.Embeds)).Msg("Discord notification sent successfully")
	return nil
}

// SendEmbeds converts embeds and delivers them to the configured webhook,
// MaxEmbedsPerMessage per message. Nothing is sent if any embed is refused
// by the converter.
func (dn *DiscordNotifier) SendEmbeds(ctx context.Context, embeds ...embed.Embed) error {
	var payloads []*discordgo.WebhookParams
	for start := 0; start < len(embeds); start += MaxEmbedsPerMessage {
		end := min(start+MaxEmbedsPerMessage, len(embeds))

		builder := NewPayloadBuilder().
			WithUsername(dn.cfg.Username).
			WithAvatarURL(dn.cfg.AvatarURL).
			WithMentionRoles(dn.cfg.MentionRoleIDs)
		for _, e := range embeds[start:end] {
			builder.AddEmbed(e)
		}

		params, err := builder.Build()
		if err != nil {
			dn.logger.Warn().Err(err).Int("offset", start).Msg("Embed batch refused")
			return errorwrapper.WrapError(err, "failed to build payload")
		}
		payloads = append(payloads, params)
	}

	if len(payloads) == 0 {
		return ErrEmptyPayload
	}

	for _, params := range payloads {
		if err := dn.SendNotification(ctx, dn.cfg.DiscordWebhookURL, params); err != nil {
			return err
		}
	}
	return nil
}
