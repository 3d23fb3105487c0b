package cli

import (
	"fmt"
	"image/color"
	"os"

	"github.com/spf13/cobra"

	tealeaf "github.com/jdsimcoe/teaLeaf"
	"github.com/jdsimcoe/teaLeaf/internal/render"
)

// generateFlags holds the flag values of the generate command.
type generateFlags struct {
	seed       string
	size       int
	cutoff     int
	boundary   string
	norm       string
	scale      int
	fill       string
	background string
	configPath string
	pngPath    string
	svgPath    string
}

func newGenerateCmd() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a stencil and write it as PNG and/or SVG",
		Long: `Generate derives a stencil from the given seed string and writes it to the
requested output files. The same seed, size, and cutoff always produce the
same image.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.seed, "seed", "s", "", "seed string (required)")
	cmd.Flags().IntVarP(&flags.size, "size", "n", 0, "field side length (overrides config)")
	cmd.Flags().IntVarP(&flags.cutoff, "cutoff", "c", -1, "frequency cutoff (overrides config)")
	cmd.Flags().StringVar(&flags.boundary, "boundary", "", "mask boundary mode: inclusive or exclusive")
	cmd.Flags().StringVar(&flags.norm, "normalization", "", "inverse normalization: none or inverse")
	cmd.Flags().IntVar(&flags.scale, "scale", 0, "pixels per cell (overrides config)")
	cmd.Flags().StringVar(&flags.fill, "fill", "", "fill color as hex (overrides config)")
	cmd.Flags().StringVar(&flags.background, "background", "", "background color as hex (overrides config)")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "path to a tealeaf.toml configuration file")
	cmd.Flags().StringVarP(&flags.pngPath, "out", "o", "", "PNG output path")
	cmd.Flags().StringVar(&flags.svgPath, "svg", "", "SVG outline output path")

	_ = cmd.MarkFlagRequired("seed")

	return cmd
}

// resolveConfig merges the optional config file with flag overrides into a
// pipeline Config plus render Options. Flags win over the file; defaults
// fill the rest.
func resolveConfig(flags generateFlags) (tealeaf.Config, render.Options, error) {
	var file fileConfig
	if flags.configPath != "" {
		var err error
		file, err = loadConfig(flags.configPath)
		if err != nil {
			return tealeaf.Config{}, render.Options{}, err
		}
	}

	size := file.Size
	if flags.size > 0 {
		size = flags.size
	}
	if size == 0 {
		size = 420
	}

	cutoff := file.Cutoff
	if flags.cutoff >= 0 {
		cutoff = flags.cutoff
	}

	boundarySpec := file.Boundary
	if flags.boundary != "" {
		boundarySpec = flags.boundary
	}
	boundary, err := parseBoundary(boundarySpec)
	if err != nil {
		return tealeaf.Config{}, render.Options{}, err
	}

	normSpec := file.Normalization
	if flags.norm != "" {
		normSpec = flags.norm
	}
	norm, err := parseNormalization(normSpec)
	if err != nil {
		return tealeaf.Config{}, render.Options{}, err
	}

	scale := file.Scale
	if flags.scale > 0 {
		scale = flags.scale
	}

	fillSpec := file.Fill
	if flags.fill != "" {
		fillSpec = flags.fill
	}
	var fill color.Color
	if fillSpec != "" {
		if fill, err = parseHexColor(fillSpec); err != nil {
			return tealeaf.Config{}, render.Options{}, err
		}
	}

	bgSpec := file.Background
	if flags.background != "" {
		bgSpec = flags.background
	}
	var background color.Color
	if bgSpec != "" {
		if background, err = parseHexColor(bgSpec); err != nil {
			return tealeaf.Config{}, render.Options{}, err
		}
	}

	cfg := tealeaf.Config{
		Size:          size,
		Cutoff:        cutoff,
		Boundary:      boundary,
		Normalization: norm,
	}
	opts := render.Options{
		Scale:      scale,
		Fill:       fill,
		Background: background,
	}

	return cfg, opts, nil
}

func runGenerate(cmd *cobra.Command, flags generateFlags) error {
	logger := loggerFromContext(cmd.Context())

	cfg, opts, err := resolveConfig(flags)
	if err != nil {
		return err
	}

	if flags.pngPath == "" && flags.svgPath == "" {
		return fmt.Errorf("no output requested: pass --out and/or --svg")
	}

	seed := tealeaf.SeedFromString(flags.seed)
	logger.Debug("resolved configuration",
		"seed", seed, "size", cfg.Size, "cutoff", cfg.Cutoff)

	prog := newProgress(logger)
	stencil, err := tealeaf.Generate(seed, cfg)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	prog.done(fmt.Sprintf("Generated %dx%d stencil for seed %q", cfg.Size, cfg.Size, flags.seed))

	if flags.pngPath != "" {
		if err := writePNGFile(flags.pngPath, stencil, opts); err != nil {
			return err
		}
		logger.Info("wrote PNG", "path", flags.pngPath)
	}

	if flags.svgPath != "" {
		if err := writeSVGFile(flags.svgPath, stencil, opts); err != nil {
			return err
		}
		logger.Info("wrote SVG", "path", flags.svgPath)
	}

	return nil
}

func writePNGFile(path string, s *tealeaf.Stencil, opts render.Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := render.WritePNG(f, s, opts); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return f.Close()
}

func writeSVGFile(path string, s *tealeaf.Stencil, opts render.Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := render.WriteSVG(f, s, opts); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}
