// Package theme styles the terminal output of the CLI.
package theme

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary = lipgloss.Color("#8B5CF6") // Vivid Purple
	Accent  = lipgloss.Color("#F97316") // Orange
	Success = lipgloss.Color("#22C55E") // Green
	Error   = lipgloss.Color("#F43F5E") // Rose
	TextDim = lipgloss.Color("#94A3B8") // Slate
	Border  = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Heading = lipgloss.NewStyle().
		Bold(true)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Warning = lipgloss.NewStyle().
		Foreground(Accent)
)

// Blocks
var (
	Passage = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1).
		Width(80)

	Choice = lipgloss.NewStyle().
		PaddingLeft(2)
)

// States
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// ChoiceLabel returns the letter shown before the i-th choice.
func ChoiceLabel(i int) string {
	return string(rune('A' + i))
}

// Question renders a numbered question with lettered choices.
func Question(number int, text string, choices []string) string {
	var b strings.Builder
	b.WriteString(Heading.Render(fmt.Sprintf("%d. %s", number, text)))
	for i, c := range choices {
		b.WriteString("\n")
		b.WriteString(Choice.Render(fmt.Sprintf("%s) %s", ChoiceLabel(i), c)))
	}
	return b.String()
}

// Verdict renders the outcome of one answer.
func Verdict(correct bool, answer, explanation string) string {
	var line string
	if correct {
		line = Correct.Render("✓ Correct!")
	} else {
		line = Incorrect.Render("✗ Wrong.") + " Answer: " + answer
	}
	if explanation != "" {
		line += "\n" + Hint.Render(explanation)
	}
	return line
}

// Score renders the final tally.
func Score(correct, total int) string {
	style := Correct
	if total > 0 && correct*2 < total {
		style = Incorrect
	}
	return Title.Render("Score: ") + style.Render(fmt.Sprintf("%d/%d", correct, total))
}
