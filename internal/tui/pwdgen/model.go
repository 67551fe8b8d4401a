// ============================================================================
// pwdgen - Passwort-Generator
// ============================================================================
//
// Package:     pwdgen
// Description: Main Bubbletea model for the pwdgen window
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package pwdgen

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/pwdgen/internal/generator"
	"github.com/msto63/pwdgen/internal/shell"
	"github.com/msto63/pwdgen/pkg/core/logging"
	"github.com/msto63/pwdgen/pkg/core/version"
)

// control identifies a focusable element of the window
type control int

const (
	ctrlNumber control = iota
	ctrlLength
	ctrlComplexity
	ctrlGenerate
	ctrlCopy
	ctrlReset
	ctrlResult
	numControls
)

// Fixed rows around the result viewport: title panel (4), parameters
// group (6), actions group (4), result group frame (3), help bar (2).
const chromeHeight = 19

const minViewportHeight = 3

// Columns moved per left/right key in the result pane
const horizontalStep = 4

// Model is the main Bubbletea model for the pwdgen window
type Model struct {
	// State
	width    int
	height   int
	ready    bool
	focus    control
	notice   *shell.Notification
	quitting bool

	// Components
	viewport viewport.Model
	slider   progress.Model
	help     help.Model
	keys     keyMap

	shell   *shell.Shell
	logger  *logging.Logger
	version string
}

// Config holds window configuration
type Config struct {
	Shell   *shell.Shell
	Logger  *logging.Logger
	Version string
}

// DefaultConfig returns a window over the built-in parameters, the crypto
// generator and no clipboard
func DefaultConfig() Config {
	return Config{
		Shell:   shell.New(shell.DefaultParameters(), generator.New(), nil, nil),
		Logger:  logging.NewNop(),
		Version: version.Version,
	}
}

// New creates a new window model
func New(cfg Config) Model {
	if cfg.Shell == nil {
		cfg.Shell = DefaultConfig().Shell
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.NewNop()
	}
	if cfg.Version == "" {
		cfg.Version = version.Version
	}

	m := Model{
		focus:   ctrlNumber,
		slider:  progress.New(progress.WithGradient(string(ColorSecondary), string(ColorPrimary)), progress.WithoutPercentage()),
		help:    help.New(),
		keys:    defaultKeyMap(),
		shell:   cfg.Shell,
		logger:  cfg.Logger.Named("window"),
		version: cfg.Version,
	}
	m.syncKeys()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		viewportHeight := max(msg.Height-chromeHeight, minViewportHeight)
		viewportWidth := max(msg.Width-4, 10)

		if !m.ready {
			m.viewport = viewport.New(viewportWidth, viewportHeight)
			m.ready = true
		} else {
			m.viewport.Width = viewportWidth
			m.viewport.Height = viewportHeight
		}
		m.slider.Width = max(msg.Width-SliderLabelStyle.GetWidth()-42, 10)
		m.help.Width = msg.Width
		m.updateViewportContent()
		return m, nil

	case tea.MouseMsg:
		if m.notice != nil || !m.ready {
			return m, nil
		}
		if name, ok := m.focusedParam(); ok {
			m.handleSliderWheel(name, msg)
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A notification is modal: only dismissal and ctrl+c reach it.
	if m.notice != nil {
		switch {
		case msg.Type == tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Dismiss):
			m.notice = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
		return m, nil

	case key.Matches(msg, m.keys.Generate):
		m.generate()
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		m.copy()
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.reset()
		return m, nil
	}

	if name, ok := m.focusedParam(); ok {
		m.handleSliderKey(name, msg)
		return m, nil
	}

	if m.focus == ctrlResult {
		m.handleResultKey(msg)
		return m, nil
	}

	if key.Matches(msg, m.keys.Activate) {
		m.activate()
	}
	return m, nil
}

func (m *Model) handleSliderKey(name string, msg tea.KeyMsg) {
	p := m.param(name)
	page := max(p.Span()/10, 1)

	switch {
	case key.Matches(msg, m.keys.Decrease):
		m.shell.StepParam(name, -1)
	case key.Matches(msg, m.keys.Increase):
		m.shell.StepParam(name, 1)
	case key.Matches(msg, m.keys.PageDown):
		m.shell.StepParam(name, -page)
	case key.Matches(msg, m.keys.PageUp):
		m.shell.StepParam(name, page)
	case key.Matches(msg, m.keys.First):
		m.shell.StepParam(name, p.Min-p.Current())
	case key.Matches(msg, m.keys.Last):
		m.shell.StepParam(name, p.Max-p.Current())
	}
}

func (m *Model) handleSliderWheel(name string, msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress {
		return
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelRight:
		m.shell.StepParam(name, 1)
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelLeft:
		m.shell.StepParam(name, -1)
	}
}

func (m *Model) handleResultKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Decrease):
		m.viewport.ScrollLeft(horizontalStep)
	case key.Matches(msg, m.keys.Increase):
		m.viewport.ScrollRight(horizontalStep)
	case key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)
	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
	case key.Matches(msg, m.keys.First):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Last):
		m.viewport.GotoBottom()
	}
}

func (m *Model) activate() {
	switch m.focus {
	case ctrlGenerate:
		m.generate()
	case ctrlCopy:
		m.copy()
	case ctrlReset:
		m.reset()
	}
}

func (m *Model) generate() {
	m.notice = m.shell.Generate()
	m.afterAction()
	m.rewindResult()
}

func (m *Model) copy() {
	n := m.shell.Copy()
	m.notice = &n
	m.afterAction()
}

func (m *Model) reset() {
	m.shell.Reset()
	m.afterAction()
	m.rewindResult()
}

func (m *Model) rewindResult() {
	m.viewport.GotoTop()
	m.viewport.SetXOffset(0)
}

// afterAction refreshes everything derived from the shell state
func (m *Model) afterAction() {
	m.syncKeys()
	m.updateViewportContent()
	if !m.focusable(m.focus) {
		m.moveFocus(1)
	}
	if m.notice != nil {
		m.logger.Debug("notification shown", logging.Fields{
			"kind":  m.notice.Kind.String(),
			"title": m.notice.Title,
		})
	}
}

// syncKeys derives binding availability from the pane state
func (m *Model) syncKeys() {
	m.keys.Copy.SetEnabled(m.shell.CopyEnabled())
}

func (m *Model) moveFocus(dir int) {
	next := m.focus
	for range numControls {
		next = (next + control(dir) + numControls) % numControls
		if m.focusable(next) {
			m.focus = next
			return
		}
	}
}

func (m Model) focusable(c control) bool {
	return c != ctrlCopy || m.shell.CopyEnabled()
}

func (m Model) focusedParam() (string, bool) {
	switch m.focus {
	case ctrlNumber:
		return shell.ParamNumber, true
	case ctrlLength:
		return shell.ParamLength, true
	case ctrlComplexity:
		return shell.ParamComplexity, true
	default:
		return "", false
	}
}

func (m Model) param(name string) shell.Parameter {
	params := m.shell.Params()
	switch name {
	case shell.ParamNumber:
		return params.Number
	case shell.ParamLength:
		return params.Length
	default:
		return params.Complexity
	}
}

func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}
	if m.shell.PaneState() == shell.PaneEmpty {
		m.viewport.SetContent(EmptyResultStyle.Render("Press g to generate passwords."))
		return
	}
	m.viewport.SetContent(PasswordStyle.Render(m.shell.PaneText()))
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading pwdgen..."
	}

	if m.notice != nil {
		return m.renderNotification()
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderParameters())
	b.WriteString("\n")
	b.WriteString(m.renderActions())
	b.WriteString("\n")
	b.WriteString(m.renderResult())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())

	return b.String()
}

func (m Model) renderHeader() string {
	title := LogoStyle.Render(Logo) + " " + VersionStyle.Render("v"+m.version) +
		"  " + VersionStyle.Render("Passwort-Generator")
	return TitlePanelStyle.Width(max(m.width-2, 0)).Render(title)
}

func (m Model) renderParameters() string {
	params := m.shell.Params()

	rows := []string{
		GroupTitleStyle.Render("Parameters"),
		m.renderSlider("Number of passwords", params.Number, ctrlNumber, fmt.Sprintf("%d", params.Number.Current())),
		m.renderSlider("Length of passwords", params.Length, ctrlLength, fmt.Sprintf("%d", params.Length.Current())),
		m.renderSlider("Complexity", params.Complexity, ctrlComplexity, params.ComplexityTier().Name()),
	}

	return m.groupStyle(m.focus <= ctrlComplexity).Render(strings.Join(rows, "\n"))
}

func (m Model) renderSlider(label string, p shell.Parameter, c control, value string) string {
	labelStyle := SliderLabelStyle
	if m.focus == c {
		labelStyle = FocusedSliderLabelStyle
	}
	return labelStyle.Render(label) + m.slider.ViewAs(p.Fraction()) + "  " + SliderValueStyle.Render(value)
}

func (m Model) renderActions() string {
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderButton("Generate", ctrlGenerate, true),
		m.renderButton("Copy", ctrlCopy, m.shell.CopyEnabled()),
		m.renderButton("Reset", ctrlReset, true),
	)
	focused := m.focus >= ctrlGenerate && m.focus <= ctrlReset
	return m.groupStyle(focused).Render(GroupTitleStyle.Render("Actions") + "\n" + buttons)
}

func (m Model) renderButton(label string, c control, enabled bool) string {
	switch {
	case !enabled:
		return DisabledButtonStyle.Render(label)
	case m.focus == c:
		return FocusedButtonStyle.Render(label)
	default:
		return ButtonStyle.Render(label)
	}
}

func (m Model) renderResult() string {
	title := GroupTitleStyle.Render("Result")
	if r := m.shell.Result(); r != nil {
		title += VersionStyle.Render(fmt.Sprintf("  %d × %d, %s, %s",
			len(r.Passwords), r.Length, r.Complexity.Name(), r.CreatedAt.Format("15:04:05")))
	}
	return m.groupStyle(m.focus == ctrlResult).Render(title + "\n" + m.viewport.View())
}

func (m Model) renderNotification() string {
	style := NoticeInfoStyle
	switch m.notice.Kind {
	case shell.NotifyWarning:
		style = NoticeWarningStyle
	case shell.NotifyError:
		style = NoticeErrorStyle
	}

	body := NoticeTitleStyle.Render(m.notice.Title) + "\n\n" +
		m.notice.Message + "\n\n" +
		VersionStyle.Render("[ enter ] OK")

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, style.Render(body))
}

func (m Model) renderHelpBar() string {
	return HelpStyle.Render(m.help.View(m.keys))
}

func (m Model) groupStyle(focused bool) lipgloss.Style {
	style := GroupStyle
	if focused {
		style = FocusedGroupStyle
	}
	return style.Width(max(m.width-2, 0))
}

// Run starts the pwdgen window
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
