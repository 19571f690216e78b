// ============================================================================
// CDSL Visual Tester - Combinatorics Problem Front-End
// ============================================================================
//
// Package:     playground
// Description: Bubbletea model of the interactive CDSL editor. The editor
//              text is run through the pipeline on every change and the
//              tokens, tree, specification or diagnostics are shown beside it.
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package playground

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sw1zzi/cdsl-visual-tester/internal/tui"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/ast"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/core/i18n"
	cdsllog "github.com/Sw1zzi/cdsl-visual-tester/pkg/core/log"
)

// View selects what the right-hand panel shows
type View int

const (
	ViewTokens View = iota
	ViewAST
	ViewSpec
	ViewDiagnostics
	viewCount
)

// catalogKey returns the view's key below "view." in the catalogs
func (v View) catalogKey() string {
	switch v {
	case ViewTokens:
		return "tokens"
	case ViewAST:
		return "ast"
	case ViewSpec:
		return "spec"
	default:
		return "diagnostics"
	}
}

// Config holds playground configuration
type Config struct {
	// Pipeline runs the editor text (default: pipeline with a silent logger)
	Pipeline *cdsl.Pipeline

	// Translator supplies labels (default: embedded catalogs, English)
	Translator *i18n.Manager

	// Source is the initial editor text
	Source string

	// Logger for playground events (default: silent, the terminal belongs
	// to the UI)
	Logger *cdsllog.Logger
}

// Model is the Bubbletea model of the playground
type Model struct {
	// State
	width         int
	height        int
	ready         bool
	view          View
	editorFocused bool

	// Components
	textarea textarea.Model
	viewport viewport.Model
	help     help.Model
	keys     keyMap

	pipeline *cdsl.Pipeline
	tr       *i18n.Manager
	logger   *cdsllog.Logger

	// Last evaluated editor text and its result
	source string
	result *cdsl.Result
}

// New creates a playground model and evaluates cfg.Source
func New(cfg Config) Model {
	if cfg.Logger == nil {
		cfg.Logger = cdsllog.Nop()
	}
	if cfg.Pipeline == nil {
		cfg.Pipeline = cdsl.New(cdsl.Options{Logger: cfg.Logger})
	}
	if cfg.Translator == nil {
		cfg.Translator = i18n.MustNew(i18n.DefaultLocale)
	}

	ta := textarea.New()
	ta.Placeholder = cfg.Translator.T("label.empty_input")
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.SetValue(cfg.Source)
	ta.Focus()

	m := Model{
		view:          ViewSpec,
		editorFocused: true,
		textarea:      ta,
		viewport:      viewport.New(0, 0),
		help:          help.New(),
		keys:          newKeyMap(cfg.Translator),
		pipeline:      cfg.Pipeline,
		tr:            cfg.Translator,
		logger:        cfg.Logger.WithField("component", "playground"),
	}
	m.evaluate()
	return m
}

// Run starts the playground on the terminal and blocks until it quits
func Run(cfg Config) error {
	p := tea.NewProgram(
		New(cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextView):
			m.view = (m.view + 1) % viewCount
			m.refreshContent()
			return m, nil

		case key.Matches(msg, m.keys.PrevView):
			m.view = (m.view + viewCount - 1) % viewCount
			m.refreshContent()
			return m, nil

		case key.Matches(msg, m.keys.Focus):
			m.editorFocused = !m.editorFocused
			if m.editorFocused {
				return m, m.textarea.Focus()
			}
			m.textarea.Blur()
			return m, nil

		case key.Matches(msg, m.keys.Clear):
			m.textarea.Reset()
			m.evaluate()
			return m, nil
		}

		if !m.editorFocused {
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		m.textarea, cmd = m.textarea.Update(msg)
		if m.textarea.Value() != m.source {
			m.evaluate()
		}
		return m, cmd
	}

	// Cursor blink and mouse scrolling
	var cmds []tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// evaluate runs the editor text through the pipeline
func (m *Model) evaluate() {
	m.source = m.textarea.Value()
	m.result = m.pipeline.Run(m.source)
	m.logger.Trace("Editor text evaluated", cdsllog.Fields{
		"run_id": m.result.RunID,
		"cached": m.result.Cached,
	})
	m.refreshContent()
}

func (m *Model) refreshContent() {
	m.viewport.SetContent(m.content())
	m.viewport.GotoTop()
}

// content renders the current view of the last result
func (m Model) content() string {
	res := m.result
	switch m.view {
	case ViewTokens:
		if len(res.Tokens) == 0 {
			return tui.SubtitleStyle.Render(m.tr.T("label.empty_input"))
		}
		return tui.TokenTable(res.Tokens)
	case ViewAST:
		return ast.Sprint(res.AST)
	case ViewSpec:
		doc, err := tui.SpecYAML(res.Spec)
		if err != nil {
			return tui.RenderError(err.Error())
		}
		return doc
	default:
		return tui.Diagnostics(m.tr, res.Diagnostics)
	}
}

// Layout: header and tab line above the panels, status and help below
const chromeHeight = 4

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	panelHeight := max(height-chromeHeight, 5)
	editorWidth := width / 2
	viewWidth := width - editorWidth

	// Border and padding take two columns on each side, two rows in total
	m.textarea.SetWidth(max(editorWidth-4, 10))
	m.textarea.SetHeight(panelHeight - 2)
	m.viewport.Width = max(viewWidth-4, 10)
	m.viewport.Height = panelHeight - 2
	m.help.Width = width

	m.ready = true
	m.refreshContent()
}

// Result returns the result of the last evaluation
func (m Model) Result() *cdsl.Result {
	return m.result
}

// CurrentView returns the view shown in the right-hand panel
func (m Model) CurrentView() View {
	return m.view
}
