package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/toeiz/internal/llm"
	"github.com/abhisek/toeiz/internal/questiongen"
	"github.com/abhisek/toeiz/internal/scoring"
	"github.com/abhisek/toeiz/internal/ui/theme"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Generate and answer a test in the terminal (no database)",
	Long: `Generate a grammar or reading test and answer it interactively.

This is a stateless developer tool: no database, no session history, no events.
Useful for evaluating question quality and prompt changes.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("type", "grammar", "Test type: grammar or reading")
}

func runPreview(cmd *cobra.Command, args []string) error {
	kind := questiongen.Kind(strings.ToLower(mustString(cmd, "type")))
	if kind != questiongen.KindGrammar && kind != questiongen.KindReading {
		return fmt.Errorf("invalid type %q: must be grammar or reading", kind)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	// No EventRepo: requests are only logged.
	ctx := cmd.Context()
	provider, err := llm.NewProvider(ctx, cfg.LLMConfig(), nil, logger)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gen := questiongen.New(provider, cfg.GeneratorConfig(logger))
	lipgloss.Fprintln(os.Stdout, theme.Title.Render(fmt.Sprintf("Generating a %s test with %s...", kind, provider.ModelID())))

	_, err = runPreviewTest(ctx, gen, kind, os.Stdin, os.Stdout)
	return err
}

// runPreviewTest generates one test, asks every question on out and
// returns the score.
func runPreviewTest(ctx context.Context, gen *questiongen.Generator, kind questiongen.Kind, in io.Reader, out io.Writer) (scoring.Score, error) {
	p := &prompter{scanner: bufio.NewScanner(in), out: out}

	switch kind {
	case questiongen.KindReading:
		res, _, err := gen.GenerateReading(ctx, questiongen.SessionState{})
		if err != nil {
			return scoring.Score{}, fmt.Errorf("generate reading test: %w", err)
		}
		p.warn(res.Warning)
		answers := make([][]string, len(res.Items))
		for i, passage := range res.Items {
			p.println(theme.Heading.Render(fmt.Sprintf("Passage %d/%d", i+1, len(res.Items))))
			p.println(theme.Passage.Render(passage.Passage))
			for j, q := range passage.Questions {
				a, err := p.ask(j+1, q)
				if err != nil {
					return scoring.Score{}, err
				}
				answers[i] = append(answers[i], a)
			}
		}
		return p.summary(scoring.Reading(res.Items, answers))

	default:
		res, _, err := gen.GenerateGrammar(ctx, questiongen.SessionState{})
		if err != nil {
			return scoring.Score{}, fmt.Errorf("generate grammar test: %w", err)
		}
		p.warn(res.Warning)
		answers := make([]string, 0, len(res.Items))
		for i, q := range res.Items {
			a, err := p.ask(i+1, q)
			if err != nil {
				return scoring.Score{}, err
			}
			answers = append(answers, a)
		}
		return p.summary(scoring.Grammar(res.Items, answers))
	}
}

type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func (p *prompter) println(s string) {
	lipgloss.Fprintln(p.out, s)
}

func (p *prompter) warn(msg string) {
	if msg != "" {
		p.println(theme.Warning.Render(msg))
	}
}

// ask shows q and reads answers until one names a choice.
func (p *prompter) ask(number int, q questiongen.GrammarItem) (string, error) {
	p.println("\n" + theme.Question(number, q.Question, q.Choices))
	for {
		fmt.Fprint(p.out, "Your answer: ")
		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return "", fmt.Errorf("read answer: %w", err)
			}
			return "", errors.New("input closed before the test was finished")
		}
		answer, ok := matchChoice(p.scanner.Text(), q.Choices)
		if !ok {
			p.println(theme.Hint.Render(fmt.Sprintf("Enter a letter A-%s, a number or the choice text.", theme.ChoiceLabel(len(q.Choices)-1))))
			continue
		}
		p.println(theme.Verdict(answer == q.CorrectAnswer, q.CorrectAnswer, q.Explanation))
		return answer, nil
	}
}

func (p *prompter) summary(score scoring.Score, err error) (scoring.Score, error) {
	if err != nil {
		return score, err
	}
	p.println("\n" + theme.Score(score.Correct, score.Total))
	return score, nil
}

// matchChoice resolves user input to one of choices: a letter, a 1-based
// number or the choice text itself, case-insensitively.
func matchChoice(input string, choices []string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", false
	}
	if len(input) == 1 {
		if i := int(strings.ToUpper(input)[0] - 'A'); i >= 0 && i < len(choices) {
			return choices[i], true
		}
	}
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(choices) {
		return choices[n-1], true
	}
	for _, c := range choices {
		if strings.EqualFold(c, input) {
			return c, true
		}
	}
	return "", false
}

func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}
