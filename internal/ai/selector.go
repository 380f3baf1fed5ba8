package ai

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/redaphid/emo/errors"
	"github.com/redaphid/emo/internal/logger"
)

const (
	// maxSteps bounds how many stream pulls one selection may make.
	maxSteps = 20
	// maxGeneratedChars bounds the accumulated output before giving up.
	maxGeneratedChars = 50
	// contextWindow is the model context passed to the engine.
	contextWindow = 2048
	// temperature keeps sampling near-deterministic.
	temperature = 0.2
)

// emojiRanges approximates "is an emoji" by Unicode block membership.
var emojiRanges = [...][2]rune{
	{0x1F300, 0x1F9FF}, // symbols, pictographs, emoticons
	{0x2600, 0x26FF},   // miscellaneous symbols
	{0x2700, 0x27BF},   // dingbats
	{0x1F000, 0x1F02F}, // mahjong and domino tiles
	{0x1FA70, 0x1FAFF}, // extended symbols and pictographs
}

// IsEmoji reports whether r falls in one of the recognized emoji blocks.
func IsEmoji(r rune) bool {
	for _, rg := range emojiRanges {
		if r >= rg[0] && r <= rg[1] {
			return true
		}
	}
	return false
}

// Selector picks emojis for a situation by prompting an Engine.
type Selector struct {
	engine Engine
}

// NewSelector creates a selector over the given engine.
func NewSelector(engine Engine) *Selector {
	return &Selector{engine: engine}
}

// Select asks the model for one emoji representing situation, excluding any
// previously chosen characters. It pulls the generation fragment by
// fragment and returns the first emoji-range character, abandoning the rest
// of the generation. If the generation ends, or either the step or the
// character budget runs out before an emoji appears, Select fails with a
// configuration error carrying everything generated so far. It never falls
// back to a lexical result.
func (s *Selector) Select(ctx context.Context, situation string, exclude []string) (string, error) {
	prompt := buildPrompt(situation, exclude)

	stream, err := s.engine.Generate(ctx, prompt, Options{
		Temperature: temperature,
		ContextSize: contextWindow,
		MaxTokens:   maxSteps,
	})
	if err != nil {
		return "", errors.Mark(errors.Wrap(err, "start generation"), errors.ErrConfiguration)
	}
	defer stream.Close()

	var output strings.Builder
	for step := 0; step < maxSteps; step++ {
		frag, err := stream.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", errors.Mark(errors.Wrap(err, "pull generation"), errors.ErrConfiguration)
		}

		output.WriteString(frag)
		for _, r := range frag {
			if IsEmoji(r) {
				logger.Logger.Debugw("emoji found", "char", string(r), "steps", step+1)
				return string(r), nil
			}
		}

		if output.Len() > maxGeneratedChars {
			break
		}
	}

	return "", errors.Configurationf("model did not generate an emoji. Generated text: %q", output.String())
}

// Sentence generates length distinct emojis for situation. Each success is
// added to the exclusion list before the next call, so no character repeats
// within one sentence. Any single failure aborts the whole sentence.
func (s *Selector) Sentence(ctx context.Context, situation string, length int) (string, error) {
	var sentence strings.Builder
	exclude := make([]string, 0, length)

	for i := 0; i < length; i++ {
		e, err := s.Select(ctx, situation, exclude)
		if err != nil {
			return "", err
		}
		sentence.WriteString(e)
		exclude = append(exclude, e)
	}

	return sentence.String(), nil
}

func buildPrompt(situation string, exclude []string) string {
	if len(exclude) == 0 {
		return fmt.Sprintf("Task: Select ONE emoji that best represents: %s. Reply with only the emoji, nothing else.\nEmoji:", situation)
	}
	return fmt.Sprintf("Task: Select ONE emoji that best represents: %s. Do not use: %s. Reply with only the emoji.\nEmoji:",
		situation, strings.Join(exclude, ", "))
}
