package main

import (
	"encoding/json"
	"fmt"

	"github.com/aleister1102/embedkit/internal/converter"
	"github.com/spf13/cobra"
)

func newConvertCmd(a *app) *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "convert <file>...",
		Short: "Convert embed documents and print the Discord embed JSON",
		Long: `Convert decodes each document and prints the resulting Discord embed
objects. A single file prints one object, several files print an array.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			embeds, err := a.decodeAll(args)
			if err != nil {
				return err
			}

			converted, idx, err := converter.ConvertAll(embeds)
			if err != nil {
				a.logger.Error().Err(err).Str("file", args[idx]).Str("kind", converter.KindOf(err).String()).Msg("Embed refused")
				return fmt.Errorf("%s: %w", args[idx], err)
			}

			var out any = converted
			if len(converted) == 1 {
				out = converted[0]
			}

			var data []byte
			if compact {
				data, err = json.Marshal(out)
			} else {
				data, err = json.MarshalIndent(out, "", "  ")
			}
			if err != nil {
				return err
			}

			a.logger.Debug().Int("embeds", len(converted)).Msg("Conversion complete")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	cmd.Flags().BoolVar(&compact, "compact", false, "Print compact JSON")
	return cmd
}
