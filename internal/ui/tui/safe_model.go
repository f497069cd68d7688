package tui

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

const panicToast = "Unexpected error (see logs)"

// safeModel keeps a panic in Update or View from tearing down the terminal.
// After a panic the browser is put back to the unfiltered inventory.
type safeModel struct {
	inner tea.Model
	log   *slog.Logger
}

func wrapSafe(m model) safeModel {
	return safeModel{inner: m, log: m.deps.Logger}
}

func (s safeModel) Init() tea.Cmd {
	return s.inner.Init()
}

func (s safeModel) Update(msg tea.Msg) (tm tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("tui.update", r, fmt.Sprintf("%T", msg))
			if m, ok := s.inner.(model); ok {
				s.inner = m.reset(panicToast)
			}
			tm, cmd = s, nil
		}
	}()

	next, c := s.inner.Update(msg)
	if inner, ok := next.(safeModel); ok {
		next = inner.inner
	}
	s.inner = next
	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("tui.view", r, "")
			out = panicToast
			if m, ok := s.inner.(model); ok && m.loaded {
				out = fmt.Sprintf("%s: %s (%d apples)", panicToast, m.inv.Name, len(m.inv.Apples))
			}
		}
	}()
	return s.inner.View()
}

func (s safeModel) logPanic(where string, r any, msgType string) {
	if s.log == nil {
		return
	}
	attrs := []any{
		"where", where,
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	}
	if msgType != "" {
		attrs = append(attrs, "msg", msgType)
	}
	if m, ok := s.inner.(model); ok {
		attrs = append(attrs, "inventory", m.inv.Name, "toggles", fmt.Sprintf("%+v", m.toggles))
	}
	s.log.Error("panic.recovered", attrs...)
}

var _ tea.Model = safeModel{}
