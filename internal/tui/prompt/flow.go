// Package prompt asks the user which planned projects to convert and
// whether to go ahead.
package prompt

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"

	"github.com/DavidKarlas/CsprojToVs2017/internal/tui"
)

// Flow runs huh forms on the terminal.
type Flow struct {
	theme *huh.Theme
}

// NewFlow constructs a Flow with the shared huh theme.
func NewFlow() *Flow {
	return &Flow{theme: tui.NewHuhTheme()}
}

// SelectProjects lets the user pick a subset of files, all preselected.
// It returns nil without error when the user aborts.
func (f *Flow) SelectProjects(root string, files []string) ([]string, error) {
	selected := append([]string(nil), files...)

	keyMap := huh.NewDefaultKeyMap()
	keyMap.MultiSelect.Filter.SetEnabled(false)
	keyMap.MultiSelect.Toggle.SetKeys(" ")
	keyMap.MultiSelect.Toggle.SetHelp("space", "toggle selection")
	keyMap.MultiSelect.Submit.SetKeys("enter")
	keyMap.MultiSelect.Submit.SetHelp("enter", "convert")

	field := newProjectMultiSelect(&selected).Options(Options(root, files)...)

	form := huh.NewForm(
		huh.NewGroup(field).
			Title("Project Selection").
			Description(fmt.Sprintf("Select projects under %s to convert.", root)),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen()).
		WithKeyMap(keyMap)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to run project selection: %w", err)
	}

	return selected, nil
}

// Confirm asks a yes/no question. Aborting counts as no.
func (f *Flow) Confirm(message string) (bool, error) {
	confirmed := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(message).
				Affirmative("Convert").
				Negative("Cancel").
				Value(&confirmed),
		),
	).
		WithTheme(f.theme).
		WithShowHelp(true)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("failed to run confirmation: %w", err)
	}

	return confirmed, nil
}
