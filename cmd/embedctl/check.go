package main

import (
	"fmt"

	"github.com/aleister1102/embedkit/internal/converter"
	"github.com/aleister1102/embedkit/internal/embed"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Check embed documents against the downstream limits",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				e, err := embed.DecodeFile(path, a.parsedVariant)
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "INVALID %s: %v\n", path, err)
					failed++
					continue
				}

				description, _ := e.Description()
				if err := converter.Check(e); err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %s (%v)\n", path, converter.KindOf(err), err)
					failed++
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "OK %s: description %d/%d bytes, fields %d/%d\n",
					path, len(description), converter.MaxDescriptionLength-1, e.FieldCount(), converter.MaxFieldCount)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d embed(s) failed the check", failed, len(args))
			}
			return nil
		},
	}
}
