package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/redaphid/emo/internal/registry"
)

func runListModels(cmd *cobra.Command) error {
	reg := registry.New()
	models, err := reg.Fetch(cmd.Context())
	if err != nil {
		return err
	}

	width := 0
	for _, m := range models {
		if len(m.Name) > width {
			width = len(m.Name)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Available models:")
	fmt.Fprintln(cmd.OutOrStdout())
	for _, m := range models {
		fmt.Fprintf(cmd.OutOrStdout(), "  %-*s  %5d MB  %s\n", width, m.Name, m.SizeMB, m.Description)
	}
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), "Use --model <name> to select one.")
	return nil
}
