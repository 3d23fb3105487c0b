package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	tealeaf "github.com/jdsimcoe/teaLeaf"
)

func newFieldCmd() *cobra.Command {
	var (
		seed   string
		size   int
		cutoff int
		raw    bool
	)

	cmd := &cobra.Command{
		Use:   "field",
		Short: "Dump the generated field as text",
		Long: `Field prints the stencil to stdout, one row per line: '#' for set cells
and '.' for unset ones. With --raw it prints the pre-threshold real values
instead, which is the quickest way to inspect what a cutoff leaves behind.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := tealeaf.Config{Size: size, Cutoff: cutoff}

			stencil, err := tealeaf.Generate(tealeaf.SeedFromString(seed), cfg)
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}

			return dumpField(os.Stdout, stencil, raw)
		},
	}

	cmd.Flags().StringVarP(&seed, "seed", "s", "", "seed string (required)")
	cmd.Flags().IntVarP(&size, "size", "n", 64, "field side length")
	cmd.Flags().IntVarP(&cutoff, "cutoff", "c", 8, "frequency cutoff")
	cmd.Flags().BoolVar(&raw, "raw", false, "print pre-threshold real values")

	_ = cmd.MarkFlagRequired("seed")

	return cmd
}

func dumpField(out io.Writer, s *tealeaf.Stencil, raw bool) error {
	w := bufio.NewWriter(out)
	defer w.Flush()

	for r := 0; r < s.Side(); r++ {
		for c := 0; c < s.Side(); c++ {
			if raw {
				if c > 0 {
					if _, err := w.WriteString("\t"); err != nil {
						return err
					}
				}
				if _, err := w.WriteString(strconv.FormatFloat(s.Raw(r, c), 'g', -1, 64)); err != nil {
					return err
				}
			} else {
				ch := byte('.')
				if s.At(r, c) {
					ch = '#'
				}
				if err := w.WriteByte(ch); err != nil {
					return err
				}
			}
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}

	return w.Flush()
}
