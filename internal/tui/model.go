// Copyright (c) 2026 Keydash Team
// Keydash - API key dashboard
// This source code is licensed under the MIT license found in the LICENSE file.

// This file contains the dashboard model: it owns the dashboard state,
// routes key presses to the key list, the samples pane or an open dialog,
// and applies every mutation inside Update.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keydash/internal/activity"
	"github.com/toeirei/keydash/internal/dashboard"
	"github.com/toeirei/keydash/internal/i18n"
	"github.com/toeirei/keydash/internal/logging"
	"github.com/toeirei/keydash/internal/model"
)

// Copier writes text to the clipboard.
type Copier interface {
	Copy(text string) error
}

// Options configure the dashboard model.
type Options struct {
	Copier        Copier
	ToastDuration time.Duration
	// Simulator turns activity ticks into feed updates. Ticks are ignored
	// when it is nil.
	Simulator *activity.Simulator
}

// copyResultMsg reports the outcome of a clipboard write.
type copyResultMsg struct{ err error }

// activityTickMsg is posted by the background updater.
type activityTickMsg struct{ at time.Time }

type pane int

const (
	keysPane pane = iota
	samplesPane
)

type viewMode int

const (
	dashboardMode viewMode = iota
	createMode
	confirmMode
)

// keyListCell receives the store's snapshots through its change hook.
type keyListCell struct {
	keys []model.APIKey
}

// Model is the bubbletea model of the dashboard.
type Model struct {
	state   *dashboard.State
	list    *keyListCell
	samples []dashboard.Sample
	opts    Options

	keys KeyMap
	help help.Model

	cursor int
	sample int
	focus  pane
	mode   viewMode

	form    createFormModel
	confirm confirmRevokeModel
	toast   toast

	width  int
	height int
}

// NewModel creates the dashboard model over st and registers the key list
// redraw hook on its store.
func NewModel(st *dashboard.State, opts Options) Model {
	if opts.ToastDuration <= 0 {
		opts.ToastDuration = DefaultToastDuration
	}
	cell := &keyListCell{keys: st.Keys.List()}
	st.Keys.OnChange(func(keys []model.APIKey) { cell.keys = keys })

	return Model{
		state:   st,
		list:    cell,
		samples: dashboard.Samples(),
		opts:    opts,
		keys:    newKeyMap(),
		help:    help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// selected returns the key under the cursor.
func (m Model) selected() (model.APIKey, bool) {
	if m.cursor < 0 || m.cursor >= len(m.list.keys) {
		return model.APIKey{}, false
	}
	return m.list.keys[m.cursor], true
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.list.keys) {
		m.cursor = len(m.list.keys) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func copyCmd(c Copier, text string) tea.Cmd {
	return func() tea.Msg {
		if c == nil {
			return copyResultMsg{}
		}
		return copyResultMsg{err: c.Copy(text)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case toastExpiredMsg:
		m.toast.expire(msg)
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			logging.Warnf("%v", msg.err)
			return m, m.toast.show(i18n.T("toast.copy_failed"), true, m.opts.ToastDuration)
		}
		return m, m.toast.show(i18n.T("toast.copied"), false, m.opts.ToastDuration)

	case activityTickMsg:
		if m.opts.Simulator != nil {
			m.state.Feed.Apply(m.opts.Simulator.Step(msg.at))
		}
		return m, nil

	case createKeyMsg:
		k := m.state.Keys.Create(msg.name, msg.perm)
		logging.Infof("created API key %d (%s)", k.ID, k.Name)
		m.mode = dashboardMode
		m.focus = keysPane
		m.cursor = len(m.list.keys) - 1
		return m, m.toast.show(i18n.T("toast.created"), false, m.opts.ToastDuration)

	case revokeKeyMsg:
		m.mode = dashboardMode
		if !m.state.Keys.Revoke(msg.id) {
			return m, nil
		}
		logging.Infof("revoked API key %d", msg.id)
		m.clampCursor()
		return m, m.toast.show(i18n.T("toast.revoked"), false, m.opts.ToastDuration)

	case closeModalMsg:
		m.mode = dashboardMode
		return m, nil
	}

	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case createMode:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	case confirmMode:
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		return m, cmd
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(km, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(km, m.keys.Focus):
		if m.focus == keysPane {
			m.focus = samplesPane
		} else {
			m.focus = keysPane
		}

	case key.Matches(km, m.keys.Up):
		if m.focus == samplesPane {
			if m.sample > 0 {
				m.sample--
			}
		} else if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(km, m.keys.Down):
		if m.focus == samplesPane {
			if m.sample < len(m.samples)-1 {
				m.sample++
			}
		} else if m.cursor < len(m.list.keys)-1 {
			m.cursor++
		}

	case key.Matches(km, m.keys.Create):
		m.mode = createMode
		m.form = newCreateFormModel()
		return m, m.form.Init()

	case key.Matches(km, m.keys.Language):
		code := i18n.NextLocale()
		i18n.SetLang(code)
		m.keys = newKeyMap()
		return m, m.toast.show(i18n.T("toast.language", i18n.GetAvailableLocales()[code]), false, m.opts.ToastDuration)

	case key.Matches(km, m.keys.Copy):
		if m.focus == samplesPane {
			if m.sample < len(m.samples) {
				return m, copyCmd(m.opts.Copier, m.samples[m.sample].Code)
			}
			return m, nil
		}
		if k, ok := m.selected(); ok {
			if secret, ok := m.state.Keys.Reveal(k.ID); ok {
				return m, copyCmd(m.opts.Copier, secret.Reveal())
			}
		}

	case key.Matches(km, m.keys.Toggle):
		if k, ok := m.selected(); ok && m.focus == keysPane {
			m.state.Keys.ToggleVisibility(k.ID)
		}

	case key.Matches(km, m.keys.Revoke):
		if k, ok := m.selected(); ok && m.focus == keysPane {
			m.mode = confirmMode
			m.confirm = newConfirmRevokeModel(k)
		}
	}
	return m, nil
}

func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = 100
	}

	if m.mode != dashboardMode {
		dialog := m.form.View()
		if m.mode == confirmMode {
			dialog = m.confirm.View()
		}
		return lipgloss.Place(width, max(m.height, lipgloss.Height(dialog)),
			lipgloss.Center, lipgloss.Center, dialog)
	}

	data := m.state.Snapshot()
	header := lipgloss.JoinVertical(lipgloss.Left,
		mainTitleStyle.Render(i18n.T("app.title")),
		helpStyle.PaddingLeft(3).Render(i18n.T("app.subtitle")),
	)
	stats := renderStats(data.Stats, width)

	keysStyle, samplesStyle := focusedPaneStyle, paneStyle
	if m.focus == samplesPane {
		keysStyle, samplesStyle = paneStyle, focusedPaneStyle
	}
	cursor := m.cursor
	if m.focus != keysPane {
		cursor = -1
	}

	half := width/2 - 2
	keysPaneView := keysStyle.Width(half).Render(lipgloss.JoinVertical(lipgloss.Left,
		paneTitleStyle.Render(i18n.T("keys.title")),
		"",
		renderKeyList(m.list.keys, cursor, half-2),
	))
	chartPaneView := paneStyle.Width(half).Render(lipgloss.JoinVertical(lipgloss.Left,
		paneTitleStyle.Render(i18n.T("chart.title")),
		helpStyle.Render(i18n.T("chart.week_total", i18n.FormatNumber(data.WeekTotal))),
		renderChart(data.Chart, data.ChartPeak, 6),
	))
	activityPaneView := paneStyle.Width(half).Render(lipgloss.JoinVertical(lipgloss.Left,
		paneTitleStyle.Render(i18n.T("activity.title")),
		renderActivity(data.Activity),
		activitySummary(data.Activity, data.FailedCount),
	))
	samplesPaneView := samplesStyle.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left,
		paneTitleStyle.Render(i18n.T("samples.title")),
		renderSamples(m.samples, m.sample, m.focus == samplesPane),
	))

	var body string
	if width >= 100 {
		right := lipgloss.JoinVertical(lipgloss.Left, chartPaneView, activityPaneView)
		body = lipgloss.JoinHorizontal(lipgloss.Top, keysPaneView, " ", right)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, keysPaneView, chartPaneView, activityPaneView)
	}

	footer := AlignFooter(m.help.View(m.keys), m.toast.View(), width)
	return lipgloss.JoinVertical(lipgloss.Left, header, "", stats, body, samplesPaneView, footer)
}
