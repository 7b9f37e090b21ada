package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"MineRappa/internal/calc/premium/importer"
	"MineRappa/internal/calc/premium/recommend"
	"MineRappa/internal/calc/rap"
	"MineRappa/internal/calc/report"
	"MineRappa/internal/units"
)

// loadDesign reads a YAML design file. Unknown keys are errors so a
// misspelt field is not silently dropped.
func loadDesign(path string) (rap.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return rap.Input{}, fmt.Errorf("reading design: %w", err)
	}
	var in rap.Input
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&in); err != nil {
		return rap.Input{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return in, nil
}

func evaluateCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "evaluate [design.yaml]",
		Short: "Evaluate stress, strength and factors of safety of a design",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadDesign(args[0])
			if err != nil {
				return err
			}
			res, err := rap.Calculate(units.NewRegistry(), in)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), format, res)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or json")
	return cmd
}

func solveCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "solve [design.yaml]",
		Short: "Size a square pillar for the formula's recommended factor of safety",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadDesign(args[0])
			if err != nil {
				return err
			}
			res, err := rap.Solve(units.NewRegistry(), in)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), format, res)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or json")
	return cmd
}

func formulasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formulas",
		Short: "List the pillar strength formulas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printFormulas(cmd.OutOrStdout(), rap.Catalogue())
		},
	}
}

func recommendCmd() *cobra.Command {
	var in recommend.FormulaRecommendInput
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend a strength formula for an initial design",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := recommend.Formula(in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", res.Formula.Name, res.Notes)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.OreType, "ore", "", "ore type: hard_rock, coal, oil_shale or other")
	cmd.Flags().StringVar(&in.Location, "location", "", "location: estonia, india, south_africa or other")
	return cmd
}

func reportCmd() *cobra.Command {
	var (
		out  string
		meta report.Meta
	)
	cmd := &cobra.Command{
		Use:   "report [design.yaml]",
		Short: "Write a PDF report of a design",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadDesign(args[0])
			if err != nil {
				return err
			}
			d, err := rap.Build(units.NewRegistry(), in)
			if err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := report.Render(f, meta, d); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "report.pdf", "PDF file to write")
	cmd.Flags().StringVar(&meta.Project, "project", "", "project name")
	cmd.Flags().StringVar(&meta.Author, "author", "", "report author")
	cmd.Flags().StringVar(&meta.Title, "title", "", "report title")
	return cmd
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [designs.xlsx]",
		Short: "Evaluate every design in a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			reg := units.NewRegistry()
			rows, err := importer.ParseWorkbook(f, reg)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, row := range rows {
				if row.Error != "" {
					fmt.Fprintf(w, "row %d %s: %s\n", row.Line, row.Name, row.Error)
					continue
				}
				res, err := rap.Calculate(reg, row.Input)
				if err != nil {
					fmt.Fprintf(w, "row %d %s: %v\n", row.Line, row.Name, err)
					continue
				}
				fmt.Fprintf(w, "row %d %s: %s FOS %.2f, extraction %.2f%%\n", row.Line, row.Name, res.Formula, res.FactorOfSafety, res.ExtractionRatio)
			}
			return nil
		},
	}
}
