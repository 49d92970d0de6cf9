// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bmad/bmd"
	"github.com/katalvlaran/bmad/dataset"
	"github.com/katalvlaran/bmad/mlc"
)

// fitFlags are the decomposition flags shared by decompose and evaluate.
type fitFlags struct {
	labels    int
	size      int
	threshold float64
}

func (f *fitFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.labels, "labels", "l", 0, "number of leading label columns (required)")
	cmd.Flags().IntVar(&f.size, "size", 0, "number of latent labels (overrides config)")
	cmd.Flags().Float64Var(&f.threshold, "threshold", 0, "decomposition threshold in (0, 1] (overrides config)")
	_ = cmd.MarkFlagRequired("labels")
}

// resolve merges flags over the loaded configuration.
func (f *fitFlags) resolve(cmd *cobra.Command, a *app) (size int, threshold float64) {
	size, threshold = a.cfg.Decomposition.Size, a.cfg.Decomposition.Threshold
	if cmd.Flags().Changed("size") {
		size = f.size
	}
	if cmd.Flags().Changed("threshold") {
		threshold = f.threshold
	}

	return size, threshold
}

func newDecomposeCmd(a *app) *cobra.Command {
	var (
		flags  fitFlags
		output string
	)
	cmd := &cobra.Command{
		Use:   "decompose <data.csv>",
		Short: "Factor the label columns of a dataset and print the upper matrix",
		Long: `Factor the label columns of a CSV dataset into latent labels.

Prints the upper matrix (latent label → original labels) and the
reconstruction error. With --output the compressed training set
[latent labels | features] is written as CSV.

Examples:
  bmad decompose --labels 6 --size 3 scene.csv
  bmad decompose -l 6 --threshold 0.8 --output train.csv scene.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := readDataset(args[0], flags.labels)
			if err != nil {
				return err
			}
			size, threshold := flags.resolve(cmd, a)

			tr := mlc.NewTransformer(
				mlc.WithDecomposer(bmd.NewAsso(a.cfg.AssoOptions()...)),
				mlc.WithLogger(a.log),
			)
			train, err := tr.Fit(ds, size, threshold)
			if err != nil {
				return err
			}
			m, err := tr.Model()
			if err != nil {
				return err
			}
			if err = renderUpper(cmd.OutOrStdout(), m, ds.LabelNames()); err != nil {
				return err
			}
			if output == "" {
				return nil
			}

			return writeDataset(output, train)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the compressed training set to this CSV file")

	return cmd
}

// renderUpper prints one row per latent label with a mark under every
// original label it expands to.
func renderUpper(w io.Writer, m *mlc.Model, names []string) error {
	upper := m.Upper()
	header := table.Row{"LATENT"}
	for j := 0; j < upper.Cols(); j++ {
		header = append(header, columnName(names, j))
	}
	header = append(header, "USES")

	compressed := m.Compressed()
	uses := make([]int, upper.Rows())
	for i := 0; i < compressed.Rows(); i++ {
		for k := range uses {
			on, err := compressed.At(i, k)
			if err != nil {
				return err
			}
			if on {
				uses[k]++
			}
		}
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Upper Matrix")
	t.AppendHeader(header)
	for k := 0; k < upper.Rows(); k++ {
		bits, err := upper.Row(k)
		if err != nil {
			return err
		}
		row := table.Row{mlc.LatentPrefix + strconv.Itoa(k)}
		for _, on := range bits {
			row = append(row, mark(on))
		}
		row = append(row, uses[k])
		t.AppendRow(row)
	}
	t.AppendFooter(table.Row{"ERROR", fmt.Sprintf("%d cells", m.ReconstructionError())})
	t.Render()

	return nil
}

func columnName(names []string, j int) string {
	if j < len(names) && names[j] != "" {
		return names[j]
	}

	return "L" + strconv.Itoa(j)
}

func mark(on bool) string {
	if on {
		return "1"
	}

	return "."
}

func readDataset(path string, numLabels int) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return dataset.ReadCSV(f, numLabels)
}

func writeDataset(path string, d *dataset.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = dataset.WriteCSV(f, d); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
