// File: cmd/tfstack/tfversion.go
// Brief: `tfstack tf-version` resolves the Terraform version to install.

package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/tfstack/internal/logging"
	"github.com/example/tfstack/internal/tfversion"
)

func newTerraformVersionCommand(logLevel *string) *cobra.Command {
	var (
		file         string
		versionsFile string
		timeout      time.Duration
	)
	cmd := &cobra.Command{
		Use:   "tf-version",
		Short: "Print the newest Terraform release satisfying required_version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logging.New(*logLevel)
			if err != nil {
				return err
			}
			src := &tfversion.Source{
				Client:       &http.Client{Timeout: timeout},
				Token:        os.Getenv("GITHUB_TOKEN"),
				VersionsFile: versionsFile,
				Log:          log,
			}
			resolved, err := tfversion.Resolve(cmd.Context(), file, src)
			if err != nil {
				return err
			}
			if resolved == "" {
				log.Info("no version satisfies the constraints", "file", file)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), resolved)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "./terraform.tf", "The terraform.tf file to read required_version from")
	cmd.Flags().StringVar(&versionsFile, "versions-file", "", "Local newline-separated version list merged with the release feed")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "HTTP timeout for the release feed")
	return cmd
}
