package config

import "time"

// NotificationConfig defines configuration for webhook delivery
type NotificationConfig struct {
	DiscordWebhookURL string   `json:"discord_webhook_url,omitempty" yaml:"discord_webhook_url,omitempty" validate:"omitempty,url"`
	Username          string   `json:"username,omitempty" yaml:"username,omitempty"`
	AvatarURL         string   `json:"avatar_url,omitempty" yaml:"avatar_url,omitempty" validate:"omitempty,url"`
	MentionRoleIDs    []string `json:"mention_role_ids,omitempty" yaml:"mention_role_ids,omitempty" validate:"dive,numeric"`
	RequestsPerMinute int      `json:"requests_per_minute,omitempty" yaml:"requests_per_minute,omitempty" validate:"min=1"`
	BurstLimit        int      `json:"burst_limit,omitempty" yaml:"burst_limit,omitempty" validate:"min=1"`
	TimeoutSecs       int      `json:"timeout_secs,omitempty" yaml:"timeout_secs,omitempty" validate:"min=1"`
}

// NewDefaultNotificationConfig creates default notification configuration
func NewDefaultNotificationConfig() NotificationConfig {
	return NotificationConfig{
		DiscordWebhookURL: "",
		Username:          DefaultNotificationUsername,
		AvatarURL:         "",
		MentionRoleIDs:    []string{},
		RequestsPerMinute: DefaultNotificationRequestsPerMinute,
		BurstLimit:        DefaultNotificationBurstLimit,
		TimeoutSecs:       DefaultNotificationTimeoutSecs,
	}
}

// Timeout returns the per-request timeout
func (nc NotificationConfig) Timeout() time.Duration {
	return time.Duration(nc.TimeoutSecs) * time.Second
}
