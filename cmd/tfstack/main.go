// main.go bootstraps tfstack: it builds the root Cobra command and executes with a signal-aware context.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/example/tfstack/internal/buildinfo"
	"github.com/example/tfstack/internal/stack"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rootCmd := newRootCommand()
	err := rootCmd.ExecuteContext(ctx)
	handleError(err)
	if err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	logLevel := "info"
	cmd := &cobra.Command{
		Use:           "tfstack",
		Short:         "Deterministic apply/destroy ordering for Terraform stacks",
		Long:          "tfstack resolves the dependency graph declared by per-stack dependencies.json files and emits the order in which the stacks must be applied or destroyed.",
		Version:       buildinfo.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "Log level for tfstack output (debug, info, warn, error)")
	sortCmd := newSortCommand(&logLevel)
	versionCmd := newTerraformVersionCommand(&logLevel)
	cmd.AddCommand(sortCmd, versionCmd)
	bindViper(cmd, sortCmd, versionCmd)
	return cmd
}

func bindViper(commands ...*cobra.Command) {
	if len(commands) == 0 {
		return
	}
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix("TFSTACK")
	v.AutomaticEnv()

	cobra.OnInitialize(func() {
		for _, cmd := range commands {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				cobra.CheckErr(err)
			}
			if err := v.BindPFlags(cmd.PersistentFlags()); err != nil {
				cobra.CheckErr(err)
			}
		}
		for _, cmd := range commands {
			flagSets := []*pflag.FlagSet{cmd.Flags(), cmd.PersistentFlags()}
			for _, fs := range flagSets {
				fs.VisitAll(func(f *pflag.Flag) {
					if f.Changed {
						return
					}
					if !v.IsSet(f.Name) {
						return
					}
					val := fmt.Sprintf("%v", v.Get(f.Name))
					if val != "" {
						_ = f.Value.Set(val)
					}
				})
			}
		}
	})
}

func handleError(err error) {
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return
	}
	message := err.Error()
	var unknownDep *stack.UnknownDependencyError
	var cycle *stack.CycleError
	switch {
	case errors.As(err, &unknownDep):
		message = fmt.Sprintf("%s\nHint: every entry of dependencies.paths must name an existing stack directory relative to the base directory.", err)
	case errors.As(err, &cycle):
		message = fmt.Sprintf("%s\nHint: break the cycle by removing one of the two dependency declarations.", err)
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", color.New(color.FgRed, color.Bold).Sprint("Error:"), message)
}
