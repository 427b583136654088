// Command fastcdc-gen regenerates the gear and mask tables in
// tables_gen.go. It is a build-time-only tool: the repository ships its
// generated output, so ordinary consumers never need to run this command;
// only changing GEAR_SEED requires it.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kalbasit/fastcdc/internal/gentables"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		seed    uint64
		outPath string
	)

	root := &cobra.Command{
		Use:   "fastcdc-gen",
		Short: "Regenerate the FastCDC gear and mask tables",
	}

	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate tables_gen.go from a seed",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = resolveSeed()
			}

			gear, err := gentables.GearTable(seed)
			if err != nil {
				return fmt.Errorf("fastcdc-gen: generate gear table: %w", err)
			}

			mask := gentables.MaskTable(gear)

			out := os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("fastcdc-gen: open %s: %w", outPath, err)
				}
				defer f.Close()

				out = f
			}

			return writeTables(out, seed, gear, mask)
		},
	}

	genCmd.Flags().Uint64Var(&seed, "seed", 0, "gear table seed (defaults to GEAR_SEED env var, then a fixed constant)")
	genCmd.Flags().StringVar(&outPath, "out", "", "output path for the generated Go source (defaults to stdout)")

	root.AddCommand(genCmd)

	return root
}

// resolveSeed implements the build-time seed override: GEAR_SEED, if set
// and parseable as a uint64, overrides gentables.DefaultSeed.
func resolveSeed() uint64 {
	if raw, ok := os.LookupEnv("GEAR_SEED"); ok {
		if v, err := strconv.ParseUint(raw, 10, 64); err == nil {
			return v
		}
	}

	return gentables.DefaultSeed
}
