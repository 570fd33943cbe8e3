// Package queuepanel renders the pending queue and play history and turns
// key presses into queue operations.
package queuepanel

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"cueline/internal/media"
	"cueline/internal/playback"
)

// QueueChangedMsg is sent after any operation that modified the queue, so
// the parent can persist the session.
type QueueChangedMsg struct{}

// KeyMap defines the panel key bindings.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Jump     key.Binding
	Advance  key.Binding
	Retreat  key.Binding
	Remove   key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	Only     key.Binding
	Clear    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
		Top:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "bottom")),
		Jump:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "jump to entry")),
		Advance:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next")),
		Retreat:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "previous")),
		Remove:   key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "remove")),
		MoveUp:   key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "move up")),
		MoveDown: key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "move down")),
		Only:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "keep only this")),
		Clear:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear pending")),
	}
}

// Model represents the queue panel state.
type Model struct {
	svc    playback.Service
	keys   KeyMap
	items  []media.QueueItem
	played []media.QueueItem
	cursor int
	offset int
	width  int
	height int
	err    error
}

// New creates a queue panel backed by svc.
func New(svc playback.Service) Model {
	m := Model{
		svc:  svc,
		keys: DefaultKeyMap(),
	}
	m.refresh()
	return m
}

// SetSize sets the panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureCursorVisible()
}

func (m *Model) refresh() {
	m.items = m.svc.Items()
	m.played = m.svc.Played()
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

func (m *Model) ensureCursorVisible() {
	visible := m.listHeight()
	if visible <= 0 {
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}

func changed() tea.Cmd {
	return func() tea.Msg { return QueueChangedMsg{} }
}

// Update handles messages for the queue panel.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.err = nil

	switch {
	case key.Matches(keyMsg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(keyMsg, m.keys.Up):
		m.moveCursor(-1)

	case key.Matches(keyMsg, m.keys.Top):
		m.cursor = 0
		m.offset = 0

	case key.Matches(keyMsg, m.keys.Bottom):
		if len(m.items) > 0 {
			m.cursor = len(m.items) - 1
			m.ensureCursorVisible()
		}

	case key.Matches(keyMsg, m.keys.Jump):
		if len(m.items) > 0 {
			m.err = m.svc.JumpTo(m.cursor)
			m.refresh()
			m.cursor = 0
			return m, changed()
		}

	case key.Matches(keyMsg, m.keys.Advance):
		if _, err := m.svc.Advance(); err != nil {
			m.err = err
		}
		m.refresh()
		return m, changed()

	case key.Matches(keyMsg, m.keys.Retreat):
		if _, err := m.svc.Retreat(); err != nil {
			m.err = err
		}
		m.refresh()
		return m, changed()

	case key.Matches(keyMsg, m.keys.Remove):
		if len(m.items) > 0 {
			if _, err := m.svc.Remove(m.cursor); err != nil {
				m.err = err
			}
			m.refresh()
			return m, changed()
		}

	case key.Matches(keyMsg, m.keys.MoveUp):
		if m.cursor > 0 && m.svc.MoveItem(m.cursor, m.cursor-1) {
			m.cursor--
			m.refresh()
			return m, changed()
		}

	case key.Matches(keyMsg, m.keys.MoveDown):
		if m.cursor < len(m.items)-1 && m.svc.MoveItem(m.cursor, m.cursor+1) {
			m.cursor++
			m.refresh()
			return m, changed()
		}

	case key.Matches(keyMsg, m.keys.Only):
		if len(m.items) > 0 {
			m.err = m.svc.ClearExcept(m.cursor)
			m.refresh()
			m.cursor = 0
			return m, changed()
		}

	case key.Matches(keyMsg, m.keys.Clear):
		m.svc.Clear()
		m.refresh()
		return m, changed()
	}

	return m, nil
}
