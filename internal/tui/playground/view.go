// ============================================================================
// CDSL Visual Tester - Combinatorics Problem Front-End
// ============================================================================
//
// Package:     playground
// Description: Rendering of the playground screen
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package playground

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Sw1zzi/cdsl-visual-tester/internal/tui"
)

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return m.tr.T("label.title") + "..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(m.renderPanels())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderHeader() string {
	kind := fmt.Sprintf("%s: %s", m.tr.T("label.kind"), tui.KindName(m.tr, m.result.Spec.Kind()))
	return lipgloss.JoinHorizontal(lipgloss.Top,
		tui.RenderTitle(m.tr.T("label.title")),
		"   ",
		kind,
	)
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, viewCount)
	for v := View(0); v < viewCount; v++ {
		label := m.tr.T("view." + v.catalogKey())
		if v == ViewDiagnostics && len(m.result.Diagnostics) > 0 {
			label = fmt.Sprintf("%s (%d)", label, len(m.result.Diagnostics))
		}
		if v == m.view {
			tabs = append(tabs, tui.ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, tui.TabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderPanels() string {
	editorStyle, viewStyle := tui.FocusedPanelStyle, tui.PanelStyle
	if !m.editorFocused {
		editorStyle, viewStyle = tui.PanelStyle, tui.FocusedPanelStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		editorStyle.Render(m.textarea.View()),
		viewStyle.Width(m.viewport.Width+2).Render(m.viewport.View()),
	)
}

func (m Model) renderStatusBar() string {
	res := m.result
	parts := []string{
		m.tr.Plural("count.tokens", len(res.Tokens), nil),
		m.tr.Plural("count.diagnostics", len(res.Diagnostics), nil),
		fmt.Sprintf("%s: %s", m.tr.T("label.duration"), res.Duration.Round(time.Microsecond)),
	}
	if len(res.RunID) >= 8 {
		parts = append(parts, fmt.Sprintf("%s: %s", m.tr.T("label.run_id"), res.RunID[:8]))
	}
	if res.Cached {
		parts = append(parts, m.tr.T("label.cached"))
	}
	return tui.StatusBarStyle.Width(m.width).Render(strings.Join(parts, " • "))
}
