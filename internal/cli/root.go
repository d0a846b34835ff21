package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the starfield command tree writing to stdout and stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOpts{}
	e := &env{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "starfield",
		Short:         "Procedural starfield renderer",
		Long:          `starfield paints decorative night skies: a black background, an optional soft glow band and plus-shaped stars that can cluster along a random line of brightness.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(opts)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			e.close()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate(fmt.Sprintf("starfield %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "TOML config file (also STARFIELD_CONFIG)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging, also to "+debugLogPath)
	flags.StringVar(&opts.stdioLog, "stdio-log", "", "redirect stdout+stderr (including panics) to this file; also STARFIELD_STDIO_LOG")

	root.AddCommand(newRenderCmd(e))
	root.AddCommand(newServeCmd(e))
	root.AddCommand(newKioskCmd(e))
	root.AddCommand(newPaletteCmd(e))
	return root
}
