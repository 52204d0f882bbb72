package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"skillcycle/internal/engine"
)

// listCursor tracks the highlighted row of a library list.
type listCursor struct {
	pos int
}

func (c *listCursor) move(key string, n int) bool {
	switch key {
	case "up", "k":
		if c.pos > 0 {
			c.pos--
		}
	case "down", "j":
		if c.pos < n-1 {
			c.pos++
		}
	default:
		return false
	}
	return true
}

func cursorMark(selected bool) string {
	if selected {
		return accentStyle.Render("▸ ")
	}
	return "  "
}

// TextbookModel browses the textbook library.
type TextbookModel struct {
	browser *engine.TextbookBrowser
	cursor  listCursor
	err     error
}

func NewTextbookModel(deps Deps) *TextbookModel {
	return &TextbookModel{browser: engine.NewTextbookBrowser(deps.Catalog.Textbooks)}
}

// Init implements tea.Model.
func (m *TextbookModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *TextbookModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	s := m.browser.Snapshot()
	switch k := key.String(); k {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "enter":
		if s.Selected == nil && len(s.Books) > 0 {
			m.err = m.browser.Open(s.Books[m.cursor.pos].ID)
		}
	case "esc", "backspace":
		m.err = m.browser.Back()
	default:
		if s.Selected == nil {
			m.cursor.move(k, len(s.Books))
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *TextbookModel) View() string {
	s := m.browser.Snapshot()
	var b strings.Builder
	if s.Selected == nil {
		for i, book := range s.Books {
			fmt.Fprintf(&b, "%s%s %s  %s\n", cursorMark(i == m.cursor.pos), book.Icon, book.Title,
				subtleStyle.Render(fmt.Sprintf("%s · %d chapters", book.Subject, book.Chapters)))
		}
		return render("Digital Textbooks", strings.TrimRight(b.String(), "\n"), statusText(m.err), "↑/↓ move • enter open • q quit")
	}

	v := s.Selected
	fmt.Fprintf(&b, "%s %s\n%s\n\n", v.Book.Icon, v.Book.Title, subtleStyle.Render(v.Book.Subject))
	for _, ch := range v.Chapters {
		b.WriteString(ch + "\n")
	}
	if v.MoreChapters > 0 {
		fmt.Fprintf(&b, "%s\n", subtleStyle.Render(fmt.Sprintf("+ %d more chapters", v.MoreChapters)))
	}
	return render("Digital Textbooks", strings.TrimRight(b.String(), "\n"), statusText(m.err), "esc back to library • q quit")
}

// VideoModel browses the video library.
type VideoModel struct {
	browser *engine.VideoBrowser
	cursor  listCursor
	err     error
}

func NewVideoModel(deps Deps) *VideoModel {
	return &VideoModel{browser: engine.NewVideoBrowser(deps.Catalog.Videos)}
}

// Init implements tea.Model.
func (m *VideoModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *VideoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	s := m.browser.Snapshot()
	switch k := key.String(); k {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "enter":
		if s.Selected == nil && len(s.Videos) > 0 {
			m.err = m.browser.Open(s.Videos[m.cursor.pos].ID)
		}
	case " ", "p":
		m.err = m.browser.TogglePlay()
	case "esc", "backspace":
		m.err = m.browser.Back()
	default:
		if s.Selected == nil {
			m.cursor.move(k, len(s.Videos))
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *VideoModel) View() string {
	s := m.browser.Snapshot()
	var b strings.Builder
	if s.Selected == nil {
		for i, v := range s.Videos {
			fmt.Fprintf(&b, "%s%s %s  %s\n", cursorMark(i == m.cursor.pos), v.Thumbnail, v.Title,
				subtleStyle.Render(fmt.Sprintf("%s · %s", v.Subject, v.Duration)))
		}
		return render("Video Lessons", strings.TrimRight(b.String(), "\n"), statusText(m.err), "↑/↓ move • enter watch • q quit")
	}

	v := s.Selected
	fmt.Fprintf(&b, "%s %s\n%s\n\n", v.Thumbnail, v.Title, subtleStyle.Render(v.Subject+" · "+v.Duration))
	if s.Playing {
		b.WriteString(correctStyle.Render("▶ Playing"))
	} else {
		b.WriteString(subtleStyle.Render("❚❚ Paused"))
	}
	return render("Video Lessons", b.String(), statusText(m.err), "space play/pause • esc back • q quit")
}
