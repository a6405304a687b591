package main

import (
	"github.com/aleister1102/embedkit/internal/notifier/discord"
	"github.com/spf13/cobra"
)

func newSendCmd(a *app) *cobra.Command {
	var webhookURL string

	cmd := &cobra.Command{
		Use:   "send <file>...",
		Short: "Convert embed documents and deliver them to a Discord webhook",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			embeds, err := a.decodeAll(args)
			if err != nil {
				return err
			}

			cfg := a.cfg.NotificationConfig
			if webhookURL != "" {
				cfg.DiscordWebhookURL = webhookURL
			}

			notifier, err := discord.NewDiscordNotifier(cfg, a.logger, nil)
			if err != nil {
				return err
			}
			return notifier.SendEmbeds(cmd.Context(), embeds...)
		},
	}

	cmd.Flags().StringVarP(&webhookURL, "webhook", "w", "", "Discord webhook URL (overrides config file if set)")
	return cmd
}
