package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/orchard/internal/domain"
	"github.com/aalvaropc/orchard/internal/filter"
	"github.com/aalvaropc/orchard/internal/usecase/criteria"
)

type appleItem struct {
	apple domain.Apple
}

func (i appleItem) Title() string       { return strings.ToLower(string(i.apple.Color)) + " apple" }
func (i appleItem) Description() string { return fmt.Sprintf("%dg", i.apple.Size) }
func (i appleItem) FilterValue() string { return string(i.apple.Color) }

type toggles struct {
	red    bool
	green  bool
	heavy  bool
	invert bool
}

type model struct {
	theme Theme
	deps  Deps

	list list.Model

	inv     domain.Inventory
	loaded  bool
	visible []domain.Apple
	toggles toggles
	toast   string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "orchard"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		list:  l,
	}
}

func (m model) Init() tea.Cmd { return cmdLoadInventory(m.deps) }

// predicate combines the active toggles: colors are ORed, then ANDed with "heavy".
func (m model) predicate() filter.Predicate[domain.Apple] {
	var colors []filter.Predicate[domain.Apple]
	if m.toggles.red {
		colors = append(colors, criteria.ColorIs(domain.ColorRed))
	}
	if m.toggles.green {
		colors = append(colors, criteria.ColorIs(domain.ColorGreen))
	}

	var parts []filter.Predicate[domain.Apple]
	if len(colors) > 0 {
		parts = append(parts, filter.Or(colors...))
	}
	if m.toggles.heavy {
		parts = append(parts, criteria.HeavierThan(m.deps.HeavyThreshold))
	}
	return filter.And(parts...)
}

// reset drops every toggle and shows the whole inventory again with toast set.
// It does not go through the filter, so it is safe to call after a failure there.
func (m model) reset(toast string) model {
	m.toggles = toggles{}
	m.visible = append([]domain.Apple{}, m.inv.Apples...)

	items := make([]list.Item, 0, len(m.visible))
	for _, a := range m.visible {
		items = append(items, appleItem{apple: a})
	}
	m.list.SetItems(items)
	m.list.Title = fmt.Sprintf("%s (%d of %d)", m.inv.Name, len(m.visible), len(m.visible))
	m.toast = toast
	return m
}

func (m model) refresh() (model, tea.Cmd) {
	apples := m.inv.Apples
	if apples == nil {
		apples = []domain.Apple{}
	}

	var kept []domain.Apple
	var err error
	if m.toggles.invert {
		kept, err = filter.Discard(apples, m.predicate())
	} else {
		kept, err = filter.Filter(apples, m.predicate())
	}
	if err != nil {
		m.deps.Logger.Error("tui.filter_failed", "err", err)
		m.toast = userMessage(err)
		return m, nil
	}

	m.visible = kept
	items := make([]list.Item, 0, len(kept))
	for _, a := range kept {
		items = append(items, appleItem{apple: a})
	}
	m.list.Title = fmt.Sprintf("%s (%d of %d)", m.inv.Name, len(kept), len(apples))
	cmd := m.list.SetItems(items)

	m.deps.Logger.Debug("tui.refresh",
		"inventory", m.inv.Name,
		"kept", len(kept),
		"red", m.toggles.red,
		"green", m.toggles.green,
		"heavy", m.toggles.heavy,
		"invert", m.toggles.invert,
	)
	return m, cmd
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case inventoryLoadedMsg:
		if msg.err != nil {
			m.deps.Logger.Error("tui.load_failed", "path", msg.path, "err", msg.err)
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.inv = msg.inv
		m.loaded = true
		m.toast = ""
		return m.refresh()

	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.list.SetSize(w-4, h-12)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "ctrl+r":
			return m, cmdLoadInventory(m.deps)
		case "r":
			m.toggles.red = !m.toggles.red
			return m.refresh()
		case "g":
			m.toggles.green = !m.toggles.green
			return m.refresh()
		case "h":
			m.toggles.heavy = !m.toggles.heavy
			return m.refresh()
		case "i":
			m.toggles.invert = !m.toggles.invert
			return m.refresh()
		case "a":
			m.toggles = toggles{}
			return m.refresh()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) toggle(key, label string, on bool) string {
	style := m.theme.Off
	if on {
		style = m.theme.On
	}
	return style.Render(fmt.Sprintf("[%s] %s", key, label))
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("orchard") + "\n" +
		m.theme.Subtitle.Render("apple inventory browser") + "\n"

	bar := strings.Join([]string{
		m.toggle("r", "red", m.toggles.red),
		m.toggle("g", "green", m.toggles.green),
		m.toggle("h", fmt.Sprintf("> %dg", m.deps.HeavyThreshold), m.toggles.heavy),
		m.toggle("i", "invert", m.toggles.invert),
	}, "  ")

	body := "Loading inventory..."
	if m.loaded {
		body = m.list.View()
		if len(m.visible) == 0 {
			body = m.list.Title + "\n\n(no apples matched)"
		}
	}

	var toast string
	if m.toast != "" {
		toast = "\n" + m.theme.Toast.Render(m.toast)
	}

	keys := "↑/↓ navigate • a reset • ctrl+r reload • q quit"
	if m.deps.Debug && m.deps.LogPath != "" {
		keys += " • log " + m.deps.LogPath
	}
	help := m.theme.Help.Render(keys)
	return wrap.Render(header + "\n" + bar + "\n\n" + m.theme.Card.Render(body) + toast + "\n" + help)
}
