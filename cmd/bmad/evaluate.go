// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bmad/bmd"
	"github.com/katalvlaran/bmad/mlc"
	"github.com/katalvlaran/bmad/scorer"
)

func newEvaluateCmd(a *app) *cobra.Command {
	var (
		flags      fitFlags
		neighbours int
	)
	cmd := &cobra.Command{
		Use:   "evaluate <train.csv> <test.csv>",
		Short: "Train a nearest-neighbour classifier on compressed labels and score it",
		Long: `Train a k-nearest-neighbour scorer on the latent labels of the training
set, predict every instance of the test set and print multi-label metrics.

Examples:
  bmad evaluate --labels 6 --size 3 train.csv test.csv
  bmad evaluate -l 6 --neighbours 5 train.csv test.csv`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			train, err := readDataset(args[0], flags.labels)
			if err != nil {
				return err
			}
			test, err := readDataset(args[1], flags.labels)
			if err != nil {
				return err
			}
			size, threshold := flags.resolve(cmd, a)
			k := a.cfg.Scorer.Neighbours
			if cmd.Flags().Changed("neighbours") {
				k = neighbours
			}

			nn, err := scorer.NewNearestNeighbour(k)
			if err != nil {
				return err
			}
			clf := mlc.NewClassifier(nn,
				mlc.WithDecomposer(bmd.NewAsso(a.cfg.AssoOptions()...)),
				mlc.WithLogger(a.log),
				mlc.WithSize(size),
				mlc.WithThreshold(threshold),
			)
			if err = clf.Train(train); err != nil {
				return err
			}
			ev, err := clf.Evaluate(test)
			if err != nil {
				return err
			}
			m, err := clf.Model()
			if err != nil {
				return err
			}
			renderEvaluation(cmd.OutOrStdout(), m, k, ev)

			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVarP(&neighbours, "neighbours", "k", 0, "neighbours used by the scorer (overrides config)")

	return cmd
}

func renderEvaluation(w io.Writer, m *mlc.Model, k int, ev mlc.Evaluation) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Evaluation")
	t.AppendHeader(table.Row{"METRIC", "VALUE"})
	t.AppendRows([]table.Row{
		{"Instances", ev.Instances},
		{"Labels", m.NumLabels()},
		{"Latent labels", m.Size()},
		{"Threshold", fmt.Sprintf("%.2f", m.Threshold())},
		{"Neighbours", k},
		{"Train reconstruction error", m.ReconstructionError()},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"Hamming loss", fmt.Sprintf("%.4f", ev.HammingLoss)},
		{"Exact match", fmt.Sprintf("%6.2f%%", 100*ev.ExactMatch)},
		{"Jaccard accuracy", fmt.Sprintf("%6.2f%%", 100*ev.JaccardAccuracy)},
	})
	t.Render()
}
