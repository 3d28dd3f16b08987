// Package tui is a terminal browser for the portfolio: a project list and a
// detail view with gallery navigation.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vpapic.dev/internal/gallery"
	"vpapic.dev/internal/models"
	"vpapic.dev/internal/services"
)

// detailView is an open project. It owns the navigator for as long as the
// view is open; closing the view discards it.
type detailView struct {
	project models.Project
	nav     *gallery.Navigator
}

// Model is the bubbletea model for the browser
type Model struct {
	title    string
	projects []models.Project
	cursor   int
	detail   *detailView
	keys     keyMap
	help     help.Model
	width    int
	err      error
	quitting bool
}

// NewModel lists every project from ps
func NewModel(title string, ps *services.ProjectService) Model {
	return Model{
		title:    title,
		projects: ps.GetAll(),
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
}

// Run starts the browser in the alternate screen
func Run(title string, ps *services.ProjectService) error {
	p := tea.NewProgram(NewModel(title, ps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		if m.detail != nil {
			return m.updateDetail(msg), nil
		}
		return m.updateList(msg), nil
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.projects)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Open):
		m = m.open()
	}
	return m
}

func (m Model) open() Model {
	if len(m.projects) == 0 {
		return m
	}
	p := m.projects[m.cursor]
	nav, err := gallery.New(len(p.Images))
	if err != nil {
		m.err = err
		return m
	}
	m.err = nil
	m.detail = &detailView{project: p, nav: nav}
	return m
}

func (m Model) updateDetail(msg tea.KeyMsg) Model {
	nav := m.detail.nav
	switch {
	case key.Matches(msg, m.keys.Back):
		m.detail = nil
	case !nav.HasControls():
		// single image: nothing to navigate
	case key.Matches(msg, m.keys.Next):
		nav.Advance()
	case key.Matches(msg, m.keys.Prev):
		nav.Retreat()
	case key.Matches(msg, m.keys.Jump):
		if i := int(msg.String()[0]-'1'); nav.Valid(i) {
			nav.JumpTo(i)
		}
	}
	return m
}

// Selected returns the open project and image index, if a project is open
func (m Model) Selected() (slug string, index int, ok bool) {
	if m.detail == nil {
		return "", 0, false
	}
	return m.detail.project.Slug, m.detail.nav.Index(), true
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.detail != nil {
		return m.viewDetail()
	}
	return m.viewList()
}

func (m Model) viewList() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render(m.title))
	b.WriteString("\n")

	if len(m.projects) == 0 {
		b.WriteString(styles.Muted.Render("No projects"))
		b.WriteString("\n")
	}
	for i, p := range m.projects {
		line := fmt.Sprintf("%s  %s", p.Title, styles.Muted.Render(p.Description))
		if i == m.cursor {
			b.WriteString(styles.Selected.Render("> " + line))
		} else {
			b.WriteString(styles.Item.Render(line))
		}
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString("\n" + m.err.Error() + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(listKeys{m.keys}))
	return b.String()
}

func (m Model) viewDetail() string {
	p := m.detail.project
	nav := m.detail.nav

	var b strings.Builder
	b.WriteString(styles.Title.Render(p.Title))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(wrap(p.FullDescription, m.width)))
	b.WriteString("\n\n")

	if len(p.Tags) > 0 {
		tags := make([]string, len(p.Tags))
		for i, t := range p.Tags {
			tags[i] = styles.Tag.Render(t)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tags...))
		b.WriteString("\n")
	}

	if u, ok := p.GitHubURL(); ok {
		b.WriteString("Source: " + u + "\n")
	}
	if u, ok := p.LiveURL(); ok {
		b.WriteString("Live:   " + u + "\n")
	}
	if u, ok := p.VideoURL(); ok {
		b.WriteString("Video:  " + u + "\n")
	} else {
		b.WriteString(styles.Muted.Render("Video coming soon") + "\n")
	}

	screen := fmt.Sprintf("Screenshot %d / %d\n%s", nav.Index()+1, nav.Len(), p.Images[nav.Index()])
	if nav.HasControls() {
		screen += "\n\n" + dots(nav)
	}
	b.WriteString(styles.Box.Render(screen))
	b.WriteString("\n")

	if len(p.Features) > 0 {
		b.WriteString(styles.Title.Render("Key Features"))
		b.WriteString("\n")
		for _, f := range p.Features {
			b.WriteString("  • " + f + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(detailKeys{keyMap: m.keys, gallery: nav.HasControls()}))
	return b.String()
}

func dots(nav *gallery.Navigator) string {
	parts := make([]string, nav.Len())
	for i := range parts {
		if i == nav.Index() {
			parts[i] = styles.DotOn.Render("●")
		} else {
			parts[i] = styles.Dot.Render("○")
		}
	}
	return strings.Join(parts, " ")
}

func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}
