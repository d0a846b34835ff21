package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rook-computer/starfield/internal/starfield"
)

func newPaletteCmd(e *env) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "List the star colors used with --star-colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, c := range starfield.Palette {
				if plain {
					fmt.Fprintln(e.stdout, hexColor(c))
					continue
				}
				fmt.Fprintf(e.stdout, "%2d %s %s\n", i, swatch(c), hexColor(c))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print hex codes only")
	return cmd
}
