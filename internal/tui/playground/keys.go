// ============================================================================
// CDSL Visual Tester - Combinatorics Problem Front-End
// ============================================================================
//
// Package:     playground
// Description: Key bindings of the playground
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package playground

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/Sw1zzi/cdsl-visual-tester/pkg/core/i18n"
)

type keyMap struct {
	NextView key.Binding
	PrevView key.Binding
	Focus    key.Binding
	Clear    key.Binding
	Quit     key.Binding
}

func newKeyMap(tr *i18n.Manager) keyMap {
	return keyMap{
		NextView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", tr.T("help.next_view")),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", tr.T("help.prev_view")),
		),
		Focus: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", tr.T("help.focus")),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", tr.T("help.clear")),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", tr.T("help.quit")),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextView, k.Focus, k.Clear, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextView, k.PrevView},
		{k.Focus, k.Clear, k.Quit},
	}
}
