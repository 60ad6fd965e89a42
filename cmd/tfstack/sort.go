// File: cmd/tfstack/sort.go
// Brief: `tfstack sort` computes the stack deployment order.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/tfstack/internal/logging"
	"github.com/example/tfstack/internal/stack"
)

func newSortCommand(logLevel *string) *cobra.Command {
	var (
		chdir     string
		reverse   bool
		draw      bool
		dotOutput string
		maxDepth  int
		output    string
	)
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Emit the apply (or, with --reverse, destroy) order of all stacks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logging.New(*logLevel)
			if err != nil {
				return err
			}
			opts := stack.BuildOptions{MaxDepth: maxDepth, Logger: log}
			var dot *stack.DOTBuilder
			if draw {
				dot = stack.NewDOTBuilder()
				opts.Observer = dot
			}
			g, err := stack.Build(chdir, opts)
			if err != nil {
				return err
			}
			records := stack.Records(g.Order(reverse))
			raw, err := json.MarshalIndent(records, "", "  ")
			if err != nil {
				return err
			}
			raw = append(raw, '\n')
			if output != "" {
				if err := os.WriteFile(output, raw, 0o644); err != nil {
					return fmt.Errorf("write plan: %w", err)
				}
			} else {
				if _, err := cmd.OutOrStdout().Write(raw); err != nil {
					return err
				}
			}
			if dot != nil {
				f, err := os.Create(dotOutput)
				if err != nil {
					return fmt.Errorf("create DOT file: %w", err)
				}
				defer f.Close()
				if err := dot.WriteTo(f); err != nil {
					return fmt.Errorf("write DOT file: %w", err)
				}
				log.Info("wrote graph", "path", dotOutput)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&chdir, "chdir", "C", ".", "Base directory containing the stack directories")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "Reverse the order for a destroy pass")
	cmd.Flags().BoolVarP(&draw, "draw", "d", false, "Also render the dependency graph as DOT")
	cmd.Flags().StringVar(&dotOutput, "dot-output", "graph.dot", "Path of the DOT file written with --draw")
	cmd.Flags().IntVar(&maxDepth, "max-depth", stack.DefaultMaxDepth, "Maximum directory depth searched for stacks")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the plan to a file instead of stdout")
	return cmd
}
