package cli

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	tealeaf "github.com/jdsimcoe/teaLeaf"
)

// fileConfig mirrors the optional tealeaf.toml configuration file. Every
// field is optional; flags override whatever the file sets.
type fileConfig struct {
	Size          int    `toml:"size"`
	Cutoff        int    `toml:"cutoff"`
	Boundary      string `toml:"boundary"`      // "inclusive" or "exclusive"
	Normalization string `toml:"normalization"` // "none" or "inverse"
	Scale         int    `toml:"scale"`
	Fill          string `toml:"fill"`       // hex color, e.g. "#1a4d2e"
	Background    string `toml:"background"` // hex color; empty = transparent
}

// loadConfig reads and parses a TOML configuration file.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// parseBoundary maps the config/flag spelling to a MaskBoundaryMode.
func parseBoundary(s string) (tealeaf.MaskBoundaryMode, error) {
	switch strings.ToLower(s) {
	case "", "inclusive":
		return tealeaf.BoundaryInclusive, nil
	case "exclusive":
		return tealeaf.BoundaryExclusive, nil
	default:
		return 0, fmt.Errorf("unknown boundary mode %q (want inclusive or exclusive)", s)
	}
}

// parseNormalization maps the config/flag spelling to a NormalizationMode.
func parseNormalization(s string) (tealeaf.NormalizationMode, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return tealeaf.NormalizeNone, nil
	case "inverse":
		return tealeaf.NormalizeInverse, nil
	default:
		return 0, fmt.Errorf("unknown normalization mode %q (want none or inverse)", s)
	}
}

// parseHexColor parses "#rgb" or "#rrggbb" into an opaque color.
func parseHexColor(s string) (color.Color, error) {
	s = strings.TrimPrefix(s, "#")

	hex := func(sub string) (uint8, error) {
		v, err := strconv.ParseUint(sub, 16, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid hex color %q", s)
		}
		return uint8(v), nil
	}

	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
		fallthrough
	case 6:
		r, err := hex(s[0:2])
		if err != nil {
			return nil, err
		}
		g, err := hex(s[2:4])
		if err != nil {
			return nil, err
		}
		b, err := hex(s[4:6])
		if err != nil {
			return nil, err
		}
		return color.RGBA{R: r, G: g, B: b, A: 255}, nil
	default:
		return nil, fmt.Errorf("invalid hex color %q", s)
	}
}
