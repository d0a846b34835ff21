package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rook-computer/starfield/internal/starfield"
)

// starfieldFlags are the generator options shared by render and kiosk.
type starfieldFlags struct {
	cfg  starfield.Config
	seed uint64
}

func (f *starfieldFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntVar(&f.cfg.StarCount, "stars", 0, "number of stars")
	flags.BoolVar(&f.cfg.GlowBand, "glow", false, "paint the glow band")
	flags.IntVar(&f.cfg.GlowBandIntensity, "glow-intensity", 0, fmt.Sprintf("glow band brightness (0-%d)", starfield.MaxGlowBandIntensity))
	flags.BoolVar(&f.cfg.BrightConcentration, "bright-concentration", false, "make stars near the line of brightness larger")
	flags.BoolVar(&f.cfg.StarColors, "star-colors", false, "color stars from the palette instead of white")
	flags.Uint64Var(&f.seed, "seed", 0, "random seed; 0 draws a fresh one")
}

// apply overrides base with the flags the user set and checks the result.
func (f *starfieldFlags) apply(cmd *cobra.Command, base starfield.Config) (starfield.Config, error) {
	flags := cmd.Flags()
	cfg := base
	if flags.Changed("stars") {
		cfg.StarCount = f.cfg.StarCount
	}
	if flags.Changed("glow") {
		cfg.GlowBand = f.cfg.GlowBand
	}
	if flags.Changed("glow-intensity") {
		cfg.GlowBandIntensity = f.cfg.GlowBandIntensity
	}
	if flags.Changed("bright-concentration") {
		cfg.BrightConcentration = f.cfg.BrightConcentration
	}
	if flags.Changed("star-colors") {
		cfg.StarColors = f.cfg.StarColors
	}

	if cfg.StarCount < 0 {
		return cfg, fmt.Errorf("--stars must be >= 0 (got %d)", cfg.StarCount)
	}
	if i := cfg.GlowBandIntensity; i < 0 || i > starfield.MaxGlowBandIntensity {
		return cfg, fmt.Errorf("--glow-intensity must be in [0,%d] (got %d)", starfield.MaxGlowBandIntensity, i)
	}
	return cfg, nil
}

// seedOr returns the --seed flag when set, else fallback.
func (f *starfieldFlags) seedOr(cmd *cobra.Command, fallback uint64) uint64 {
	if cmd.Flags().Changed("seed") {
		return f.seed
	}
	return fallback
}
