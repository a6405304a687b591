package main

import (
	"github.com/aleister1102/embedkit/internal/config"
	"github.com/aleister1102/embedkit/internal/embed"
	"github.com/aleister1102/embedkit/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app carries state shared by the subcommands once the root command has
// loaded configuration.
type app struct {
	configPath string
	variant    string
	logLevel   string

	cfg           *config.GlobalConfig
	logger        zerolog.Logger
	parsedVariant embed.Variant
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "embedctl",
		Short: "Build, validate and deliver Discord embeds",
		Long: `embedctl reads embed documents (JSON or YAML), checks them against the
limits of the Discord embed API (description shorter than 4096 bytes, at most
25 fields) and converts or delivers them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to the YAML/JSON configuration file. If not set, searches default locations.")
	rootCmd.PersistentFlags().StringVar(&a.variant, "variant", "", "Embed data model variant: strict or relaxed (overrides config file if set)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config file if set)")

	rootCmd.AddCommand(newCheckCmd(a), newConvertCmd(a), newSendCmd(a))
	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	bootstrap := zerolog.New(cmd.ErrOrStderr()).Level(zerolog.InfoLevel).With().Timestamp().Logger()

	cfg, err := config.LoadGlobalConfig(a.configPath, bootstrap)
	if err != nil {
		return err
	}
	if a.variant != "" {
		cfg.EmbedConfig.Variant = a.variant
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return err
	}

	builder := logger.NewLoggerBuilder().
		WithConsoleOutput(cmd.ErrOrStderr()).
		WithComponent("embedctl").
		WithConfig(cfg.LogConfig)
	if a.logLevel != "" {
		level, err := logger.NewLogLevelParser().ParseLevel(a.logLevel)
		if err != nil {
			return err
		}
		builder.WithLevel(level)
	}

	l, err := builder.Build()
	if err != nil {
		return err
	}

	variant, err := embed.ParseVariant(cfg.EmbedConfig.Variant)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = *l.GetZerolog()
	a.parsedVariant = variant
	return nil
}

// decodeAll decodes every file in order, stopping at the first failure.
func (a *app) decodeAll(paths []string) ([]embed.Embed, error) {
	embeds := make([]embed.Embed, 0, len(paths))
	for _, path := range paths {
		e, err := embed.DecodeFile(path, a.parsedVariant)
		if err != nil {
			a.logger.Error().Err(err).Str("file", path).Msg("Failed to decode embed")
			return nil, err
		}
		embeds = append(embeds, e)
	}
	return embeds, nil
}
