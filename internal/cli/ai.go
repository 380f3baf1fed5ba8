package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/redaphid/emo/internal/ai"
	"github.com/redaphid/emo/internal/logger"
	"github.com/redaphid/emo/internal/registry"
)

// newSelector prepares the configured model and returns a selector backed by
// the local inference server. Precedence for the model id: --model flag, then
// the id remembered in the mappings file, then the registry's first result.
func newSelector(ctx context.Context) (*ai.Selector, error) {
	modelID := modelFlag
	if modelID == "" {
		s, err := openStore()
		if err != nil {
			return nil, err
		}
		modelID = s.Model()
	}

	reg := registry.New()
	info, err := reg.Find(ctx, modelID)
	if err != nil {
		return nil, err
	}
	logger.Logger.Debugw("model selected", "id", info.ID, "size_mb", info.SizeMB)

	dir, err := modelsDir()
	if err != nil {
		return nil, err
	}
	path, err := registry.Ensure(ctx, info, dir)
	if err != nil {
		return nil, err
	}

	engine := ai.NewLlamaEngine("", path)
	return ai.NewSelector(engine), nil
}

func runAISelect(cmd *cobra.Command, situation string) error {
	ctx := cmd.Context()
	sel, err := newSelector(ctx)
	if err != nil {
		return err
	}
	var chosen []string
	for i := 0; i < countFlag; i++ {
		e, err := sel.Select(ctx, situation, chosen)
		if err != nil {
			return err
		}
		if numberFlag {
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, e)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), e)
		}
		chosen = append(chosen, e)
	}
	return nil
}

func runSentences(cmd *cobra.Command, situation string) error {
	ctx := cmd.Context()
	sel, err := newSelector(ctx)
	if err != nil {
		return err
	}
	for i := 0; i < countFlag; i++ {
		sentence, err := sel.Sentence(ctx, situation, sentenceFlag)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), sentence)
	}
	return nil
}
