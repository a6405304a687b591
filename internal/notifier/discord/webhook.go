package discord

import (
	"net/url"
	"strings"

	"github.com/aleister1102/embedkit/internal/common/errorwrapper"
)

// ParseWebhookURL extracts the webhook ID and token from a URL of the form
// https://discord.com/api/webhooks/{id}/{token}. Versioned API paths
// (/api/v10/webhooks/...) are accepted as well.
func ParseWebhookURL(raw string) (id, token string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", errorwrapper.WrapError(err, "invalid webhook URL")
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return "", "", errorwrapper.NewValidationError("webhook_url", raw, "scheme must be http or https")
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, p := range parts {
		if p == "webhooks" && i+2 < len(parts) {
			id, token = parts[i+1], parts[i+2]
			break
		}
	}
	if id == "" || token == "" {
		return "", "", errorwrapper.NewValidationError("webhook_url", raw, "expected /api/webhooks/{id}/{token}")
	}
	return id, token, nil
}
