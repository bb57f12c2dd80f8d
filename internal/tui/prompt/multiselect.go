package prompt

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"
)

// projectMultiSelect submits the hovered project when enter is pressed with
// nothing selected, instead of submitting an empty list.
type projectMultiSelect struct {
	*huh.MultiSelect[string]
	keymap *huh.KeyMap
}

func newProjectMultiSelect(selected *[]string) *projectMultiSelect {
	return &projectMultiSelect{
		MultiSelect: huh.NewMultiSelect[string]().Value(selected),
	}
}

func (p *projectMultiSelect) Options(options ...huh.Option[string]) *projectMultiSelect {
	p.MultiSelect.Options(options...)
	return p
}

func (p *projectMultiSelect) WithKeyMap(k *huh.KeyMap) huh.Field {
	p.keymap = k
	p.MultiSelect.WithKeyMap(k)
	return p
}

func (p *projectMultiSelect) KeyBinds() []key.Binding {
	binds := p.MultiSelect.KeyBinds()
	if p.keymap == nil || p.selectedCount() > 0 {
		return binds
	}

	submit := p.keymap.MultiSelect.Submit.Keys()
	for i := range binds {
		if sameKeys(binds[i].Keys(), submit) {
			binds[i].SetHelp(binds[i].Help().Key, "convert hovered")
			break
		}
	}
	return binds
}

func (p *projectMultiSelect) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok && p.keymap != nil &&
		key.Matches(keyMsg, p.keymap.MultiSelect.Submit) && p.selectedCount() == 0 {
		if _, hovered := p.MultiSelect.Hovered(); hovered {
			model, cmd := p.MultiSelect.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			p.MultiSelect = model.(*huh.MultiSelect[string])
			cmds = append(cmds, cmd)
		}
	}

	model, cmd := p.MultiSelect.Update(msg)
	p.MultiSelect = model.(*huh.MultiSelect[string])
	cmds = append(cmds, cmd)
	return p, tea.Batch(cmds...)
}

func (p *projectMultiSelect) selectedCount() int {
	value, ok := p.MultiSelect.GetValue().([]string)
	if !ok {
		return 0
	}
	return len(value)
}

func sameKeys(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
