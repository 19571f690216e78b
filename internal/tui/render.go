// ============================================================================
// CDSL Visual Tester - Combinatorics Problem Front-End
// ============================================================================
//
// Package:     tui
// Description: Renderers for tokens, diagnostics and specifications shared
//              by the CLI and the playground
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/diag"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/lexer"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/problem"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/core/i18n"
)

// KindName returns the localized display name of k
func KindName(tr *i18n.Manager, k problem.Kind) string {
	if !k.IsSet() {
		return tr.T("kind.unset")
	}
	return tr.T("kind." + strings.ToLower(k.String()))
}

// TokenTable renders tokens as a LINE/COL/TYPE/VALUE table. Keyword rows
// are highlighted.
func TokenTable(tokens []lexer.Token) string {
	rows := make([][]string, len(tokens))
	for i, tok := range tokens {
		rows[i] = []string{
			strconv.Itoa(tok.Line),
			strconv.Itoa(tok.Column),
			tok.Type.String(),
			tok.Value,
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorDimmed)).
		Headers("LINE", "COL", "TYPE", "VALUE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return TableHeaderStyle
			case col == 2 && row >= 0 && row < len(tokens) && tokens[row].Type.IsKeyword():
				return KeywordCellStyle
			default:
				return TableCellStyle
			}
		})
	return t.Render()
}

// DiagnosticLine renders one diagnostic as "severity line:col: message [code]"
func DiagnosticLine(tr *i18n.Manager, d diag.Diagnostic) string {
	var b strings.Builder
	b.WriteString(SeverityStyle(d.Severity).Render(tr.T("severity." + d.Severity.String())))
	if d.Line > 0 {
		fmt.Fprintf(&b, " %d:%d", d.Line, d.Column)
	}
	fmt.Fprintf(&b, ": %s ", d.Message)
	b.WriteString(HelpStyle.Render("[" + string(d.Code) + "]"))
	return b.String()
}

// Diagnostics renders list one per line, or the localized empty notice
func Diagnostics(tr *i18n.Manager, list diag.List) string {
	if len(list) == 0 {
		return StatusOKStyle.Render(tr.T("label.no_diagnostics"))
	}
	lines := make([]string, len(list))
	for i, d := range list {
		lines[i] = DiagnosticLine(tr, d)
	}
	return strings.Join(lines, "\n")
}

// SpecYAML renders the YAML document of spec
func SpecYAML(spec *problem.Specification) (string, error) {
	out, err := yaml.Marshal(spec)
	if err != nil {
		return "", fmt.Errorf("encode specification: %w", err)
	}
	return string(out), nil
}
