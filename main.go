package main

import (
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"cueline/internal/config"
	"cueline/internal/media"
	"cueline/internal/playback"
	"cueline/internal/state"
	"cueline/internal/ui/queuepanel"
)

type model struct {
	panel     queuepanel.Model
	svc       playback.Service
	stateMgr  *state.Manager
	sessionID string
	width     int
	height    int
}

func initialModel(args []string) (model, error) {
	cfg, err := config.Load()
	if err != nil {
		return model{}, err
	}

	var stateMgr *state.Manager
	if cfg.StateDB != "" {
		stateMgr, err = state.OpenPath(cfg.StateDB)
	} else {
		stateMgr, err = state.Open()
	}
	if err != nil {
		return model{}, err
	}

	svc := playback.New(media.NewQueue(), cfg.HistoryLimit)

	var sessionID string
	if snapshot, err := stateMgr.GetQueue(); err == nil && snapshot != nil {
		svc.Restore(snapshot.Items, snapshot.Played, snapshot.Loop, snapshot.Shuffle)
		sessionID = snapshot.SessionID
	} else {
		svc.SetLoop(cfg.Loop)
	}

	// Tracks named on the command line are enqueued after the anchor, in
	// order, as an explicit human action.
	if len(args) > 0 {
		values := make([]media.ItemType, 0, len(args))
		for _, path := range args {
			values = append(values, media.Single(media.Track{
				Path:  path,
				Title: trackTitle(path),
			}))
		}
		svc.AddMulti(values, media.Source{}, true)
	}

	return model{
		panel:     queuepanel.New(svc),
		svc:       svc,
		stateMgr:  stateMgr,
		sessionID: sessionID,
	}, nil
}

func trackTitle(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) saveState() {
	err := m.stateMgr.SaveQueue(state.Snapshot{
		SessionID: m.sessionID,
		Items:     m.svc.Items(),
		Played:    m.svc.Played(),
		Loop:      m.svc.Loop(),
		Shuffle:   m.svc.ShuffleOrder(),
	})
	if err != nil {
		log.Error("failed to save queue state", "err", err)
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.panel.SetSize(msg.Width, msg.Height)
		return m, nil

	case queuepanel.QueueChangedMsg:
		m.saveState()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.saveState()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.panel, cmd = m.panel.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return m.panel.View()
}

func main() {
	m, err := initialModel(os.Args[1:])
	if err != nil {
		log.Fatal("failed to start", "err", err)
	}
	defer m.stateMgr.Close() //nolint:errcheck

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal("error running program", "err", err)
	}
}
