package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/redaphid/emo/internal/emoji"
	"github.com/redaphid/emo/internal/resolve"
)

func runDefine(cmd *cobra.Command, term string) error {
	recs, err := emoji.Load()
	if err != nil {
		return err
	}
	r, ok := resolve.Define(recs, term)
	if !ok {
		return nil
	}
	parts := []string{fmt.Sprintf("%c - %s", r.Char, r.Record.Name)}
	if r.Record.Definition != "" {
		parts = append(parts, r.Record.Definition)
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))
	return nil
}

func runRandom(cmd *cobra.Command) error {
	recs, err := emoji.Load()
	if err != nil {
		return err
	}
	r, err := resolve.Random(recs)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%c - %s\n", r.Char, r.Record.Name)
	return nil
}
