package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
)

// Selection holds the level picked in the selector.
type Selection struct {
	Level int // 1-based index into the pack
	ID    string
}

// SelectorModel is the level picker for a pack.
type SelectorModel struct {
	pack         *levels.Pack
	visible      []int // Indexes into pack.Levels that match the filter
	cursor       int   // Position in visible
	scrollOffset int
	width        int
	height       int
	keys         MenuKeyMap
	help         help.Model
	filter       textinput.Model
	filtering    bool
	selection    Selection
	choosing     bool
	quitting     bool
	theme        Theme
}

// NewSelectorModel creates a level selector for the pack with the cursor on
// the 1-based level start.
func NewSelectorModel(pack *levels.Pack, width, height, start int) SelectorModel {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "name or id"
	ti.CharLimit = 32

	m := SelectorModel{
		pack:     pack,
		width:    width,
		height:   height,
		keys:     DefaultMenuKeyMap(),
		help:     help.New(),
		filter:   ti,
		choosing: true,
		theme:    DefaultTheme(),
	}
	m.applyFilter()
	if start >= 1 && start <= len(m.visible) {
		m.cursor = start - 1
		m.updateScroll()
	}
	return m
}

// Init initializes the model.
func (m SelectorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			return m.handleFilterKey(msg)
		}
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateScroll()
		return m, nil
	}
	return m, nil
}

func (m SelectorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.cursor < len(m.visible)-1 {
			m.cursor++
			m.updateScroll()
		}
	case MenuActionSelect:
		if len(m.visible) == 0 {
			return m, nil
		}
		lvl := m.pack.Levels[m.visible[m.cursor]]
		m.selection = Selection{Level: lvl.Index, ID: lvl.ID}
		m.choosing = false
		return m, tea.Quit
	case MenuActionFilter:
		m.filtering = true
		cmd := m.filter.Focus()
		return m, cmd
	case MenuActionBack:
		m.filter.SetValue("")
		m.applyFilter()
	}
	return m, nil
}

func (m SelectorModel) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		return m, nil
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		return m, nil
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

// applyFilter rebuilds the visible list from the filter text.
func (m *SelectorModel) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	var visible []int
	if m.pack != nil {
		for i, lvl := range m.pack.Levels {
			if query == "" ||
				strings.Contains(strings.ToLower(lvl.Name), query) ||
				strings.Contains(strings.ToLower(lvl.ID), query) {
				visible = append(visible, i)
			}
		}
	}
	m.visible = visible
	m.cursor = core.Clamp(m.cursor, 0, max(len(m.visible)-1, 0))
	m.scrollOffset = 0
	m.updateScroll()
}

func (m SelectorModel) visibleItems() int {
	return max(m.height-10, 3)
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *SelectorModel) updateScroll() {
	n := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+n {
		m.scrollOffset = m.cursor - n + 1
	}
}

// View renders the level selection.
func (m SelectorModel) View() string {
	if m.quitting || !m.choosing {
		return ""
	}

	var b strings.Builder
	line := func(s string) {
		b.WriteString(centerText(s, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	line(m.theme.MenuTitle.Render("S O K O B A N"))
	b.WriteString("\n")
	name := "levels"
	if m.pack != nil && m.pack.Name != "" {
		name = m.pack.Name
	}
	line(m.theme.MenuDescription.Render(fmt.Sprintf("%s: select a level", name)))
	b.WriteString("\n")

	if len(m.visible) == 0 {
		line(m.theme.MenuDescription.Render("No matching levels"))
	}

	end := min(m.scrollOffset+m.visibleItems(), len(m.visible))
	if m.scrollOffset > 0 {
		line(m.theme.MenuDescription.Render("... more above ..."))
	}
	for i := m.scrollOffset; i < end; i++ {
		lvl := m.pack.Levels[m.visible[i]]
		h, w := lvl.Size()
		cursor := "  "
		style := m.theme.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}
		item := fmt.Sprintf("%s%2d. %-16s %2dx%-2d %d crates", cursor, lvl.Index, lvl.Name, w, h, lvl.Data.Crates)
		line(style.Render(item))
	}
	if end < len(m.visible) {
		line(m.theme.MenuDescription.Render("... more below ..."))
	}

	b.WriteString("\n")
	if m.filtering || m.filter.Value() != "" {
		line(m.filter.View())
	}
	line(m.theme.Controls.Render(m.help.View(m.keys)))
	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m SelectorModel) Selected() *Selection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m SelectorModel) IsQuitting() bool {
	return m.quitting
}

// RunLevelSelector runs the level selection and returns the selection, or nil
// when the player quit.
func RunLevelSelector(pack *levels.Pack, cfg core.RuntimeConfig, start int) (*Selection, error) {
	p := tea.NewProgram(
		NewSelectorModel(pack, cfg.ScreenW, cfg.ScreenH, start),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := final.(SelectorModel)
	if !ok || m.IsQuitting() {
		return nil, nil
	}
	return m.Selected(), nil
}
