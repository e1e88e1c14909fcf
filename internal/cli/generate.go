package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/roach88/joincheck/internal/tablefile"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	Power    int
	MaxValue int
	Seed     uint64
	Output   string
}

// GenerateResult describes a generated table file.
type GenerateResult struct {
	Output string `json:"output_file"`
	Rows   int    `json:"rows_per_table"`
	Seed   uint64 `json:"seed"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic table file",
		Long: `Write a table file with 2^(power-1) rows per table.

Keys run 1..n in both tables, so every row of one table matches exactly
one row of the other. Payloads are random integers in [1, max]. Without
--seed a random seed is picked and reported, so the file can be
regenerated.

Examples:
  joincheck generate --power 10 -o tables.txt
  joincheck generate --power 20 --max 1000 --seed 42 -o big.txt`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Power, "power", 0, "table size exponent: 2^(power-1) rows per table (required)")
	cmd.Flags().IntVar(&opts.MaxValue, "max", 100, "largest payload value")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "random seed (default random)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output table file (required)")
	_ = cmd.MarkFlagRequired("power")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runGenerate(opts *GenerateOptions, cmd *cobra.Command) error {
	seed := opts.Seed
	if !cmd.Flags().Changed("seed") {
		seed = rand.Uint64()
	}

	tables, err := tablefile.Generate(tablefile.GenerateOptions{
		Power:    opts.Power,
		MaxValue: opts.MaxValue,
		Seed:     seed,
	})
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid generator options", err)
	}

	if err := tablefile.WriteFile(opts.Output, tables, opts.settings().DataLength); err != nil {
		return WrapExitError(ExitCommandError, "failed to write table file", err)
	}
	opts.logger().Info("tables generated", "output", opts.Output, "rows", len(tables.T0), "seed", seed)

	result := GenerateResult{
		Output: opts.Output,
		Rows:   len(tables.T0),
		Seed:   seed,
	}

	f := opts.formatter(cmd)
	if f.Format == "json" {
		return f.Success(result)
	}
	fmt.Fprintf(f.Writer, "✓ Wrote %s (%d records per table, seed %d)\n", result.Output, result.Rows, result.Seed)
	return nil
}
