// Package ui renders short-lived status notifications under a terminal view.
package ui

import (
	"strings"
	"time"

	"github.com/apod-cli/apod/style"
	tea "github.com/charmbracelet/bubbletea"
)

// Model holds the notification currently shown, if any.
type Model struct {
	notification string
	notifiedAt   time.Time
}

// NotificationMsg asks the model to show a notification.
type NotificationMsg string

// ClearNotificationMsg resets the notification.
type ClearNotificationMsg struct {
	at time.Time
}

// Notify returns a command showing msg for a few seconds.
func Notify(msg string) tea.Cmd {
	return func() tea.Msg {
		return NotificationMsg(msg)
	}
}

func clearAfter(at time.Time) tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return ClearNotificationMsg{at: at}
	})
}

// Update processes notification messages. Other messages are ignored.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotificationMsg:
		m.notification = string(msg)
		m.notifiedAt = time.Now()
		return clearAfter(m.notifiedAt)
	case ClearNotificationMsg:
		// a newer notification restarted the timer
		if msg.at.Equal(m.notifiedAt) {
			m.notification = ""
		}
	}
	return nil
}

// Current returns the notification being shown.
func (m *Model) Current() string {
	return m.notification
}

// View appends the notification to the last line of content.
func (m *Model) View(content string) string {
	if m.notification == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + style.Faint(m.notification)
	return strings.Join(lines, "\n")
}
