package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/redaphid/emo/internal/emoji"
	"github.com/redaphid/emo/internal/resolve"
	"github.com/redaphid/emo/internal/store"
)

func runSave(cmd *cobra.Command, term string) error {
	recs, err := emoji.Load()
	if err != nil {
		return err
	}
	value, err := resolve.MemoValue(recs, term, memoFlag)
	if err != nil {
		return err
	}
	s, err := openStore()
	if err != nil {
		return err
	}
	s.Put(term, value)
	if err := s.Save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s ➡ %s ✅\n", term, value)
	return nil
}

func runErase(cmd *cobra.Command, term string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	if !s.Erase(term) {
		fmt.Fprintf(cmd.OutOrStdout(), "No mapping found for '%s'\n", term)
		return nil
	}
	if err := s.Save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Mapping for '%s' erased ✅\n", term)
	return nil
}

func runListMappings(cmd *cobra.Command) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	mappings := s.List()
	if len(mappings) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No saved mappings.")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Saved mappings:")
	for _, m := range mappings {
		printMapping(cmd, m)
	}
	return nil
}

func printMapping(cmd *cobra.Command, m store.Mapping) {
	fmt.Fprintf(cmd.OutOrStdout(), "  %s ➡ %s\n", m.Term, m.Emoji)
}
