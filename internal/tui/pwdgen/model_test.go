package pwdgen

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/pwdgen/internal/generator"
	"github.com/msto63/pwdgen/internal/shell"
)

type fakeClipboard struct {
	writes []string
	err    error
}

func (f *fakeClipboard) Name() string { return "fake" }

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.writes = append(f.writes, text)
	return nil
}

func newTestModel(t *testing.T, clip *fakeClipboard) Model {
	t.Helper()
	sh := shell.New(shell.DefaultParameters(), generator.New(), clip, nil)
	m := New(Config{Shell: sh, Version: "1.2.3"})
	return update(m, tea.WindowSizeMsg{Width: 100, Height: 40})
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func press(m Model, keys ...tea.KeyMsg) Model {
	for _, k := range keys {
		m = update(m, k)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestView_BeforeWindowSize(t *testing.T) {
	m := New(Config{})
	if got := m.View(); got != "Loading pwdgen..." {
		t.Errorf("View() = %q, want loading message", got)
	}
}

func TestView_InitialWindow(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})
	view := m.View()

	for _, want := range []string{"pwdgen", "v1.2.3", "Parameters", "Number of passwords",
		"Length of passwords", "Complexity", "digits", "Generate", "Copy", "Reset", "Result"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
	if m.shell.PaneState() != shell.PaneEmpty {
		t.Errorf("PaneState = %v, want EMPTY", m.shell.PaneState())
	}
}

func TestGenerateShortcut(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})
	m = press(m, runes("g"))

	if m.shell.PaneState() != shell.PanePopulated {
		t.Fatalf("PaneState = %v, want POPULATED", m.shell.PaneState())
	}
	if m.notice != nil {
		t.Errorf("unexpected notification %+v", m.notice)
	}

	pw := m.shell.PaneText()
	if !regexp.MustCompile(`^[0-9]{8}$`).MatchString(pw) {
		t.Errorf("password %q does not match default parameters", pw)
	}
	if !strings.Contains(m.View(), pw) {
		t.Error("View() does not show the generated password")
	}
}

func TestFocusCycle_SkipsDisabledCopy(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})

	m = press(m, keyTab, keyTab, keyTab)
	if m.focus != ctrlGenerate {
		t.Fatalf("focus = %d, want Generate", m.focus)
	}
	m = press(m, keyTab)
	if m.focus != ctrlReset {
		t.Errorf("focus = %d, want Reset (Copy disabled)", m.focus)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != ctrlGenerate {
		t.Errorf("focus = %d after shift+tab, want Generate", m.focus)
	}

	m = press(m, runes("g"), keyTab)
	if m.focus != ctrlCopy {
		t.Errorf("focus = %d, want Copy once enabled", m.focus)
	}
}

func TestFocusCycle_Wraps(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})
	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != ctrlResult {
		t.Errorf("focus = %d, want Result", m.focus)
	}
	m = press(m, keyTab)
	if m.focus != ctrlNumber {
		t.Errorf("focus = %d, want Number", m.focus)
	}
}

func TestSliderKeys(t *testing.T) {
	tests := []struct {
		name  string
		tabs  int
		keys  []tea.KeyMsg
		param func(shell.Parameters) int
		want  int
	}{
		{"number right", 0, []tea.KeyMsg{keyRight, keyRight}, func(p shell.Parameters) int { return p.Number.Current() }, 3},
		{"number left clamps", 0, []tea.KeyMsg{keyLeft}, func(p shell.Parameters) int { return p.Number.Current() }, 1},
		{"number vim keys", 0, []tea.KeyMsg{runes("l"), runes("l"), runes("h")}, func(p shell.Parameters) int { return p.Number.Current() }, 2},
		{"length page up", 1, []tea.KeyMsg{{Type: tea.KeyPgUp}}, func(p shell.Parameters) int { return p.Length.Current() }, 14},
		{"length end", 1, []tea.KeyMsg{{Type: tea.KeyEnd}}, func(p shell.Parameters) int { return p.Length.Current() }, 64},
		{"length home", 1, []tea.KeyMsg{{Type: tea.KeyHome}}, func(p shell.Parameters) int { return p.Length.Current() }, 4},
		{"complexity right", 2, []tea.KeyMsg{keyRight, keyRight, keyRight}, func(p shell.Parameters) int { return p.Complexity.Current() }, 4},
		{"complexity clamps", 2, []tea.KeyMsg{{Type: tea.KeyEnd}, keyRight}, func(p shell.Parameters) int { return p.Complexity.Current() }, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, &fakeClipboard{})
			for range tt.tabs {
				m = press(m, keyTab)
			}
			m = press(m, tt.keys...)
			if got := tt.param(m.shell.Params()); got != tt.want {
				t.Errorf("value = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestComplexitySliderShowsTierName(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})
	m = press(m, keyTab, keyTab, tea.KeyMsg{Type: tea.KeyEnd})
	if !strings.Contains(m.View(), generator.AlphanumericSymbols.Name()) {
		t.Errorf("View() missing tier name %q", generator.AlphanumericSymbols.Name())
	}
}

func TestCopy_DisabledWhileEmpty(t *testing.T) {
	clip := &fakeClipboard{}
	m := newTestModel(t, clip)
	m = press(m, runes("c"))

	if m.notice != nil {
		t.Errorf("unexpected notification %+v", m.notice)
	}
	if len(clip.writes) != 0 {
		t.Errorf("clipboard written %d times, want 0", len(clip.writes))
	}
}

func TestCopy_ShowsConfirmation(t *testing.T) {
	clip := &fakeClipboard{}
	m := newTestModel(t, clip)
	m = press(m, runes("g"), runes("c"))

	if m.notice == nil || m.notice.Kind != shell.NotifyInfo {
		t.Fatalf("notice = %+v, want confirmation", m.notice)
	}
	if len(clip.writes) != 1 || clip.writes[0] != m.shell.PaneText()+"\n" {
		t.Errorf("clipboard writes = %q, want pane text with trailing newline", clip.writes)
	}

	view := m.View()
	if !strings.Contains(view, "Copied") || !strings.Contains(view, "The passwords are copied to the clipboard!") {
		t.Errorf("View() does not show the confirmation:\n%s", view)
	}
}

func TestNotification_IsModal(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})
	m = press(m, runes("g"), runes("c"))
	id := m.shell.Result().ID

	m = press(m, runes("g"), runes("r"), keyTab, runes("q"))
	if m.shell.Result() == nil || m.shell.Result().ID != id {
		t.Error("keys reached the window while a notification was shown")
	}
	if m.quitting {
		t.Error("q must not quit while a notification is shown")
	}

	m = press(m, keyEnter)
	if m.notice != nil {
		t.Error("enter did not dismiss the notification")
	}
}

func TestNotification_DismissWithEsc(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})
	m = press(m, runes("g"), runes("c"), keyEsc)
	if m.notice != nil {
		t.Error("esc did not dismiss the notification")
	}
}

func TestCopy_ClipboardFailure(t *testing.T) {
	clip := &fakeClipboard{err: errors.New("no display")}
	m := newTestModel(t, clip)
	m = press(m, runes("g"), runes("c"))

	if m.notice == nil || m.notice.Kind != shell.NotifyError {
		t.Fatalf("notice = %+v, want error", m.notice)
	}
	if !strings.Contains(m.View(), "Clipboard error") {
		t.Error("View() does not show the clipboard error")
	}
}

func TestButtons_ActivateWithEnter(t *testing.T) {
	clip := &fakeClipboard{}
	m := newTestModel(t, clip)

	m = press(m, keyTab, keyTab, keyTab, keyEnter)
	if m.shell.PaneState() != shell.PanePopulated {
		t.Fatal("enter on Generate did not generate")
	}

	m = press(m, keyTab, runes(" "))
	if len(clip.writes) != 1 {
		t.Fatalf("space on Copy wrote %d times, want 1", len(clip.writes))
	}
	m = press(m, keyEnter)

	m = press(m, keyTab, keyEnter)
	if m.shell.PaneState() != shell.PaneEmpty {
		t.Error("enter on Reset did not clear the pane")
	}
}

func TestReset_MovesFocusOffCopy(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})
	m = press(m, runes("g"), keyTab, keyTab, keyTab, keyTab)
	if m.focus != ctrlCopy {
		t.Fatalf("focus = %d, want Copy", m.focus)
	}

	m = press(m, runes("r"))
	if m.focus == ctrlCopy {
		t.Error("focus stayed on the disabled Copy button")
	}
}

func TestResultPane_Scrolls(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})
	m = update(m, tea.WindowSizeMsg{Width: 100, Height: 24})
	m = press(m, runes("l"))
	m = press(m, tea.KeyMsg{Type: tea.KeyEnd}, runes("g"))
	if got := len(m.shell.Result().Passwords); got != 50 {
		t.Fatalf("generated %d passwords, want 50", got)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	if m.viewport.YOffset != 2 {
		t.Errorf("YOffset = %d, want 2", m.viewport.YOffset)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyHome})
	if m.viewport.YOffset != 0 {
		t.Errorf("YOffset = %d after home, want 0", m.viewport.YOffset)
	}
}

func TestQuit(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
	}{
		{"q", runes("q")},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, &fakeClipboard{})
			next, cmd := m.Update(tt.key)
			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("command is not tea.Quit")
			}
			if next.(Model).View() != "" {
				t.Error("View() should be empty after quitting")
			}
		})
	}
}

func TestQuit_CtrlCDuringNotification(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})
	m = press(m, runes("c"))
	m = press(m, runes("g"), runes("c"))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c did not quit during a notification")
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})
	if m.help.ShowAll {
		t.Fatal("full help shown initially")
	}
	m = press(m, runes("?"))
	if !m.help.ShowAll {
		t.Error("? did not toggle full help")
	}
	if !strings.Contains(m.View(), "previous") {
		t.Error("full help missing shift+tab binding")
	}
}

func TestEndToEnd(t *testing.T) {
	clip := &fakeClipboard{}
	m := newTestModel(t, clip)

	// number 3, length 12, complexity 4
	m = press(m, keyRight, keyRight, keyTab)
	for range 4 {
		m = press(m, keyRight)
	}
	m = press(m, keyTab, keyRight, keyRight, keyRight)
	m = press(m, runes("g"))

	r := m.shell.Result()
	if r == nil || len(r.Passwords) != 3 {
		t.Fatalf("result = %+v, want 3 passwords", r)
	}
	re := regexp.MustCompile(`^[a-zA-Z0-9]{12}$`)
	for _, pw := range r.Passwords {
		if !re.MatchString(pw) {
			t.Errorf("password %q does not match", pw)
		}
	}

	m = press(m, runes("c"), keyEnter)
	if len(clip.writes) != 1 || clip.writes[0] != strings.Join(r.Passwords, "\n")+"\n" {
		t.Errorf("clipboard = %q", clip.writes)
	}

	m = press(m, runes("r"))
	p := m.shell.Params()
	if p.Length.Current() != 8 || p.Number.Current() != 1 || p.Complexity.Current() != 1 {
		t.Errorf("params after reset = %d/%d/%d, want 8/1/1",
			p.Length.Current(), p.Number.Current(), p.Complexity.Current())
	}
	if m.shell.PaneState() != shell.PaneEmpty {
		t.Error("pane not empty after reset")
	}
}

func TestSlider_MouseWheel(t *testing.T) {
	wheel := func(b tea.MouseButton) tea.MouseMsg {
		return tea.MouseMsg{Button: b, Action: tea.MouseActionPress}
	}

	m := newTestModel(t, &fakeClipboard{})
	m = update(m, wheel(tea.MouseButtonWheelUp))
	m = update(m, wheel(tea.MouseButtonWheelUp))
	if got := m.shell.Params().Number.Current(); got != 3 {
		t.Fatalf("Number = %d after two wheel-ups, want 3", got)
	}
	m = update(m, wheel(tea.MouseButtonWheelDown))
	if got := m.shell.Params().Number.Current(); got != 2 {
		t.Errorf("Number = %d after wheel-down, want 2", got)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = update(m, wheel(tea.MouseButtonWheelUp))
	if got := m.shell.Params().Number.Current(); got != 2 {
		t.Errorf("wheel on the result pane changed Number to %d", got)
	}
}

func TestResultPane_ScrollsSideways(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})
	m = update(m, tea.WindowSizeMsg{Width: 30, Height: 40})
	m = press(m, keyTab, tea.KeyMsg{Type: tea.KeyEnd}, runes("g"))

	pw := m.shell.PaneText()
	if len(pw) != 64 {
		t.Fatalf("password length = %d, want 64", len(pw))
	}
	tail := pw[32:52]
	if strings.Contains(m.viewport.View(), tail) {
		t.Fatal("tail of the password visible before scrolling")
	}

	// Length -> Number -> Result
	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	for range 8 {
		m = press(m, keyRight)
	}
	if !strings.Contains(m.viewport.View(), tail) {
		t.Errorf("tail %q not visible after scrolling right:\n%s", tail, m.viewport.View())
	}
	if got := m.shell.Params().Length.Current(); got != 64 {
		t.Errorf("scrolling changed Length to %d", got)
	}

	m = press(m, runes("g"))
	if !strings.HasPrefix(strings.TrimSpace(m.viewport.View()), m.shell.PaneText()[:20]) {
		t.Error("Generate did not rewind the result pane")
	}
}

func TestResultTitleShowsCreationTime(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})
	m = press(m, runes("g"))

	stamp := m.shell.Result().CreatedAt.Format("15:04:05")
	if !strings.Contains(m.View(), stamp) {
		t.Errorf("View() missing creation time %s", stamp)
	}
}
