// Package starfield procedurally paints decorative starfields: a black sky,
// an optional soft glow band and randomly placed plus-shaped stars whose size
// can be concentrated along a random line of brightness.
package starfield

// MaxGlowBandIntensity bounds Config.GlowBandIntensity.
const MaxGlowBandIntensity = 255

// Config selects what a render paints. The zero value paints a black sky.
type Config struct {
	StarCount           int  `json:"starCount" toml:"star_count"`
	GlowBand            bool `json:"glowBand" toml:"glow_band"`
	GlowBandIntensity   int  `json:"glowBandIntensity" toml:"glow_band_intensity"`
	BrightConcentration bool `json:"brightConcentration" toml:"bright_concentration"`
	StarColors          bool `json:"starColors" toml:"star_colors"`
}

// DefaultConfig matches the initial state of the web form.
func DefaultConfig() Config {
	return Config{
		StarCount:           1000,
		GlowBand:            true,
		GlowBandIntensity:   20,
		BrightConcentration: true,
		StarColors:          true,
	}
}

// Normalize clamps the numeric fields into their valid ranges.
func (c Config) Normalize() Config {
	if c.StarCount < 0 {
		c.StarCount = 0
	}
	if c.GlowBandIntensity < 0 {
		c.GlowBandIntensity = 0
	}
	if c.GlowBandIntensity > MaxGlowBandIntensity {
		c.GlowBandIntensity = MaxGlowBandIntensity
	}
	return c
}
