// Package debounce coalesces bursts of typed text into a single search.
//
// It is built for the bubbletea update loop: Notify returns a tea.Cmd that
// fires a FiredMsg after the interval, and only the message carrying the most
// recent sequence number is accepted.
package debounce

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FiredMsg is delivered when a debounce interval elapses.
type FiredMsg struct {
	seq  uint64
	text string
}

// Controller tracks the latest pending text. Its zero value is not usable;
// create one with New.
type Controller struct {
	interval time.Duration
	seq      uint64
	pending  string
	armed    bool
}

// New creates a controller that waits interval after the last change.
func New(interval time.Duration) *Controller {
	return &Controller{interval: interval}
}

// Notify records text as the latest input and restarts the quiet period.
// Earlier timers still fire but are rejected by Accept.
func (c *Controller) Notify(text string) tea.Cmd {
	c.seq++
	c.pending = text
	c.armed = true

	seq := c.seq
	return tea.Tick(c.interval, func(time.Time) tea.Msg {
		return FiredMsg{seq: seq, text: text}
	})
}

// Accept reports whether msg is the latest timer and returns its text.
// An accepted message disarms the controller.
func (c *Controller) Accept(msg FiredMsg) (string, bool) {
	if !c.armed || msg.seq != c.seq {
		return "", false
	}
	c.armed = false
	c.pending = ""
	return msg.text, true
}

// Pending returns the text waiting for the quiet period, if any.
func (c *Controller) Pending() (string, bool) {
	return c.pending, c.armed
}

// Cancel drops the pending text. Timers already scheduled are rejected.
func (c *Controller) Cancel() {
	c.seq++
	c.pending = ""
	c.armed = false
}

// Flush cancels the timer and returns the pending text for immediate use.
func (c *Controller) Flush() (string, bool) {
	text, ok := c.Pending()
	c.Cancel()
	return text, ok
}
