package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/redaphid/emo/internal/emoji"
	"github.com/redaphid/emo/internal/resolve"
)

func runSearch(cmd *cobra.Command, term string) error {
	recs, err := emoji.Load()
	if err != nil {
		return err
	}
	s, err := openStore()
	if err != nil {
		return err
	}
	results := resolve.Resolve(recs, s, term, countFlag)
	for i, r := range results {
		if numberFlag {
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %c\n", i+1, r.Char)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%c\n", r.Char)
		}
	}
	return nil
}
