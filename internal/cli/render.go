package cli

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/rook-computer/starfield/internal/config"
	"github.com/rook-computer/starfield/internal/raster"
	"github.com/rook-computer/starfield/internal/starfield"
)

type renderOpts struct {
	output string
	width  int
	height int
	format string
	sf     starfieldFlags
}

func newRenderCmd(e *env) *cobra.Command {
	opts := &renderOpts{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one starfield to an image file",
		Example: `  starfield render -o sky.png --stars 2000 --glow --glow-intensity 30
  starfield render -o - --format jpeg --seed 42 > sky.jpg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, e, opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "starfield.png", `output file, "-" for stdout`)
	flags.IntVar(&opts.width, "width", 0, "image width (default from config)")
	flags.IntVar(&opts.height, "height", 0, "image height (default from config)")
	flags.StringVar(&opts.format, "format", "", "png, jpeg, bmp or tiff (default from the output extension)")
	opts.sf.register(cmd)
	return cmd
}

func runRender(cmd *cobra.Command, e *env, opts *renderOpts) error {
	cfg, err := opts.sf.apply(cmd, e.cfg.Starfield)
	if err != nil {
		return err
	}

	width, height := e.cfg.Canvas.Width, e.cfg.Canvas.Height
	if cmd.Flags().Changed("width") {
		width = opts.width
	}
	if cmd.Flags().Changed("height") {
		height = opts.height
	}
	if err := config.CheckSize(width, height); err != nil {
		return err
	}

	format, err := outputFormat(opts.format, opts.output, e.cfg.Canvas.Format)
	if err != nil {
		return err
	}

	seed := opts.sf.seedOr(cmd, e.cfg.Canvas.Seed)
	if seed == 0 {
		seed = starfield.NewSeed()
	}

	started := time.Now()
	img, sum := starfield.Generate(width, height, cfg, seed)
	e.log.Debugf("render", "generated %dx%d in %s", width, height, time.Since(started).Round(time.Millisecond))

	if err := writeImage(e.stdout, opts.output, img, format); err != nil {
		return err
	}
	e.log.Infof("render", "wrote %s", opts.output)
	if opts.output != "-" {
		printRenderSummary(e.stdout, opts.output, width, height, seed, sum)
	}
	return nil
}

// outputFormat picks --format, then the output extension, then the config default.
func outputFormat(flag, output, fallback string) (raster.Format, error) {
	if flag != "" {
		return raster.ParseFormat(flag)
	}
	if ext := filepath.Ext(output); ext != "" && output != "-" {
		return raster.ParseFormat(ext)
	}
	return raster.ParseFormat(fallback)
}

func writeImage(stdout io.Writer, output string, img image.Image, format raster.Format) error {
	if output == "-" {
		bw := bufio.NewWriter(stdout)
		if err := raster.Encode(bw, img, format); err != nil {
			return err
		}
		return bw.Flush()
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err := raster.Encode(bw, img, format); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", output, err)
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
