package queuepanel

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"cueline/internal/media"
	"cueline/queue"
)

const (
	borderOverhead = 2 // top + bottom border
	headerLines    = 2 // header + separator
	footerLines    = 2 // history summary + status line
	playedPreview  = 3 // most recent history entries shown
)

func (m Model) listHeight() int {
	return m.height - borderOverhead - headerLines - footerLines - playedPreview
}

// View renders the queue panel.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	innerWidth := m.width - borderOverhead

	var b strings.Builder
	b.WriteString(headerStyle.Render(truncateAndPad(
		fmt.Sprintf("Queue (%d pending / %d played)", len(m.items), len(m.played)),
		innerWidth,
	)))
	b.WriteString("\n")
	b.WriteString(dimmedStyle.Render(strings.Repeat("─", max(innerWidth, 0))))
	b.WriteString("\n")

	b.WriteString(m.renderEntries(innerWidth))
	b.WriteString(m.renderPlayed(innerWidth))
	b.WriteString(m.renderStatus(innerWidth))

	return panelStyle.Width(innerWidth).Render(b.String())
}

func (m Model) renderEntries(innerWidth int) string {
	var b strings.Builder
	visible := max(m.listHeight(), 1)

	if len(m.items) == 0 {
		b.WriteString(dimmedStyle.Render(truncateAndPad("  (empty)", innerWidth)))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.offset+visible, len(m.items))
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderEntry(i, innerWidth))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderEntry(i, innerWidth int) string {
	item := m.items[i]

	marker := " "
	switch {
	case i == 0:
		marker = currentSymbol
	case item.State == queue.AddHere:
		marker = anchorSymbol
	}

	attribution := " "
	if item.ByHuman {
		attribution = "*"
	}

	line := fmt.Sprintf("%s%s %s", marker, attribution, entryLabel(item))
	line = truncateAndPad(line, innerWidth)

	switch {
	case i == m.cursor:
		return cursorStyle.Render(line)
	case i == 0:
		return currentStyle.Render(line)
	case item.State == queue.AddHere:
		return anchorStyle.Render(line)
	default:
		return entryStyle.Render(line)
	}
}

func (m Model) renderPlayed(innerWidth int) string {
	var b strings.Builder
	b.WriteString(dimmedStyle.Render(truncateAndPad(
		fmt.Sprintf("Played (%d)", len(m.played)),
		innerWidth,
	)))
	b.WriteString("\n")

	start := max(len(m.played)-playedPreview, 0)
	for _, item := range m.played[start:] {
		b.WriteString(dimmedStyle.Render(truncateAndPad("  "+entryLabel(item), innerWidth)))
		b.WriteString("\n")
	}
	for range playedPreview - (len(m.played) - start) {
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderStatus(innerWidth int) string {
	if m.err != nil {
		return errorStyle.Render(truncateAndPad(m.err.Error(), innerWidth))
	}
	return dimmedStyle.Render(truncateAndPad(
		"n next · p prev · enter jump · d remove · o only · c clear", innerWidth,
	))
}

// entryLabel formats a queue entry for display.
func entryLabel(item media.QueueItem) string {
	if album, ok := item.Value.Group(); ok {
		return fmt.Sprintf("[album] %s - %s (%d tracks)", album.Artist, album.Title, len(album.Tracks()))
	}
	track, _ := item.Value.Single()
	if track.Artist != "" {
		return fmt.Sprintf("%s - %s", track.Title, track.Artist)
	}
	if track.Title != "" {
		return track.Title
	}
	return track.Path
}

// truncateAndPad fits s to exactly width display cells.
func truncateAndPad(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		return runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}
