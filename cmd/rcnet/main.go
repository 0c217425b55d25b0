// Command rcnet is the driver program: it builds an RC network from a
// wire-geometry fixture and prints it. Because RC extraction does not
// parse LEF/DEF, --input populates a phydb.DB only through the fixture
// contract phydb.LoadFixture understands, not a real LEF/DEF lexer.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/phydb-rc/rcnet/phydb"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rcnet",
		Short: "Extract a lumped RC network from placed-and-routed wire geometry",
	}
	root.AddCommand(newGenerateCmd())
	return root
}

func newGenerateCmd() *cobra.Command {
	var (
		inputPath     string
		outputPath    string
		partitionSize float64
		neighborBins  int
		verbose       bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an RC network from a wire-geometry fixture and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := zerolog.Nop()
			if verbose {
				log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
			}

			inputs, err := phydb.LoadFixture(inputPath)
			if err != nil {
				return err
			}

			db := phydb.New(
				phydb.WithPartitionSize(partitionSize),
				phydb.WithNeighborhoodBins(neighborBins),
				phydb.WithLogger(log),
			)
			if err := db.Ingest(inputs); err != nil {
				return err
			}
			if err := db.GenerateRCNetwork(); err != nil {
				return err
			}

			out := os.Stdout
			if outputPath != "" {
				f, err := os.Create(outputPath)
				if err != nil {
					return fmt.Errorf("rcnet: creating output file: %w", err)
				}
				defer f.Close()
				return db.WriteRCNetwork(f)
			}
			return db.WriteRCNetwork(out)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "path to a wire-geometry JSON fixture (substitutes for LEF/DEF input, out of scope for this module)")
	cmd.Flags().StringVar(&outputPath, "out", "", "output path for the RC network text stream (default stdout)")
	cmd.Flags().Float64Var(&partitionSize, "partition-size", phydb.DefaultPartitionSize, "uniform spatial partition bucket width")
	cmd.Flags().IntVar(&neighborBins, "neighborhood-bins", phydb.DefaultNeighborhoodBins, "capacitance query neighborhood-bin radius")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "log soft warnings to stderr")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
