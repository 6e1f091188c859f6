package debounce

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// fire runs cmd synchronously and returns the FiredMsg it produces.
func fire(t *testing.T, cmd tea.Cmd) FiredMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("Notify() returned nil cmd")
	}
	msg, ok := cmd().(FiredMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want FiredMsg", msg)
	}
	return msg
}

func TestController_CoalescesBurst(t *testing.T) {
	c := New(time.Millisecond)

	var cmds []tea.Cmd
	for _, text := range []string{"r", "re", "rea", "react"} {
		cmds = append(cmds, c.Notify(text))
	}

	var accepted []string
	for _, cmd := range cmds {
		if text, ok := c.Accept(fire(t, cmd)); ok {
			accepted = append(accepted, text)
		}
	}

	if len(accepted) != 1 || accepted[0] != "react" {
		t.Errorf("accepted = %v, want [react]", accepted)
	}
}

func TestController_AcceptOnce(t *testing.T) {
	c := New(time.Millisecond)
	msg := fire(t, c.Notify("go"))

	if text, ok := c.Accept(msg); !ok || text != "go" {
		t.Fatalf("Accept() = %q, %v; want go, true", text, ok)
	}
	if _, ok := c.Accept(msg); ok {
		t.Error("second Accept() of the same message should be rejected")
	}
	if _, ok := c.Pending(); ok {
		t.Error("Pending() should be empty after Accept")
	}
}

func TestController_Cancel(t *testing.T) {
	c := New(time.Millisecond)
	msg := fire(t, c.Notify("rust"))

	c.Cancel()

	if _, ok := c.Accept(msg); ok {
		t.Error("Accept() after Cancel should be rejected")
	}
	if _, ok := c.Pending(); ok {
		t.Error("Pending() should be empty after Cancel")
	}
}

func TestController_Flush(t *testing.T) {
	c := New(time.Millisecond)
	msg := fire(t, c.Notify("zig"))

	text, ok := c.Flush()
	if !ok || text != "zig" {
		t.Fatalf("Flush() = %q, %v; want zig, true", text, ok)
	}
	if _, ok := c.Accept(msg); ok {
		t.Error("timer flushed early must not fire again")
	}

	if _, ok := c.Flush(); ok {
		t.Error("Flush() with nothing pending should report false")
	}
}

func TestController_EmptyTextIsPending(t *testing.T) {
	c := New(time.Millisecond)
	c.Notify("a")
	msg := fire(t, c.Notify(""))

	text, ok := c.Accept(msg)
	if !ok || text != "" {
		t.Errorf("Accept() = %q, %v; want empty text accepted", text, ok)
	}
}
