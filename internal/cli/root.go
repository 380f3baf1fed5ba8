// Package cli implements the emo command line interface.
package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/redaphid/emo/errors"
	"github.com/redaphid/emo/internal/logger"
	"github.com/redaphid/emo/internal/store"
)

var (
	countFlag      int
	defineFlag     bool
	memoFlag       string
	eraseFlag      bool
	numberFlag     bool
	listMapsFlag   bool
	randomFlag     bool
	aiFlag         bool
	modelFlag      string
	listModelsFlag bool
	sentenceFlag   int
	verboseFlag    bool
)

// RootCmd is the top-level command. emo is flag-driven: the trailing
// arguments are the search term (or, in AI mode, the situation).
var RootCmd = &cobra.Command{
	Use:           "emo [flags] [query...]",
	Short:         "CLI for finding emojis",
	Long:          "Find emojis by name, keyword or definition, save your own term mappings, or let a local language model pick one for your situation.",
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Initialize(verboseFlag)
	},
	RunE: run,
}

func init() {
	f := RootCmd.Flags()
	f.IntVarP(&countFlag, "count", "c", 1, "number of results to show")
	f.BoolVarP(&defineFlag, "define", "d", false, "define the specified emoji")
	f.StringVarP(&memoFlag, "memo", "m", "", "save a mapping for the search term to a specific emoji or index")
	f.BoolVarP(&eraseFlag, "erase", "e", false, "erase the mapping for the specified search term")
	f.BoolVarP(&numberFlag, "number", "n", false, "display the number of a given emoji result")
	f.BoolVarP(&listMapsFlag, "list-mappings", "l", false, "list all saved mappings")
	f.BoolVarP(&randomFlag, "random", "r", false, "get a random emoji")
	f.BoolVar(&aiFlag, "ai", false, "use AI to select the best emoji for your situation")
	f.StringVar(&modelFlag, "model", "", "specify the AI model to use")
	f.BoolVar(&listModelsFlag, "list-models", false, "list available AI models")
	f.IntVarP(&sentenceFlag, "sentence", "s", 0, "length of each emoji sentence (use with -c for multiple sentences)")
	f.BoolVar(&verboseFlag, "verbose", false, "log diagnostics to stderr")
}

func run(cmd *cobra.Command, args []string) error {
	// Info commands need no search term.
	if listModelsFlag {
		return runListModels(cmd)
	}
	if listMapsFlag {
		return runListMappings(cmd)
	}
	if randomFlag {
		return runRandom(cmd)
	}

	// A model override is remembered for later invocations.
	if modelFlag != "" {
		s, err := openStore()
		if err != nil {
			return err
		}
		s.SetModel(modelFlag)
		if err := s.Save(); err != nil {
			return err
		}
	}

	if len(args) == 0 {
		return errors.InvalidInputf("please provide a search term or situation")
	}
	term := strings.Join(args, " ")

	switch {
	case aiFlag || modelFlag != "":
		if sentenceFlag > 0 {
			return runSentences(cmd, term)
		}
		return runAISelect(cmd, term)
	case eraseFlag:
		return runErase(cmd, term)
	case cmd.Flags().Changed("memo"):
		return runSave(cmd, term)
	case defineFlag:
		return runDefine(cmd, term)
	default:
		return runSearch(cmd, term)
	}
}

func openStore() (*store.Store, error) {
	path, err := store.DefaultPath()
	if err != nil {
		return nil, err
	}
	return store.Load(path)
}

// modelsDir is where downloaded artifacts live, next to the mappings file.
func modelsDir() (string, error) {
	path, err := store.DefaultPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(path), "models"), nil
}
