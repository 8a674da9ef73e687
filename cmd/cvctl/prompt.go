package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/thanhdanh14/CV-Analyzer/internal/models"
)

// isTerminal is a test hook reporting whether in is an interactive terminal.
var isTerminal = defaultIsTerminal

func defaultIsTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// pickModel is a test hook for replacing the model picker in tests.
// It returns the chosen model ID, starting from current.
var pickModel = defaultPickModel

func defaultPickModel(in io.Reader, out io.Writer, title string, list []models.Model, current string) (string, error) {
	options := make([]huh.Option[string], 0, len(list))
	for _, m := range list {
		label := m.Name
		if m.Icon != "" {
			label = m.Icon + " " + label
		}
		if m.Provider != "" {
			label = fmt.Sprintf("%s (%s)", label, m.Provider)
		}
		options = append(options, huh.NewOption(label, m.ID))
	}

	selected := current
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(options...).
				Value(&selected),
		),
	).WithInput(in).WithOutput(out).Run()
	if err != nil {
		return "", fmt.Errorf("model selection aborted: %w", err)
	}
	return selected, nil
}
