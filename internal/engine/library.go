package engine

import (
	"fmt"

	"skillcycle/internal/domain"
)

// ChapterPreviewLimit caps the chapter titles shown for an opened textbook.
const ChapterPreviewLimit = 5

// TextbookBrowser lists textbooks and opens one at a time.
type TextbookBrowser struct {
	books    []domain.Textbook
	selected *domain.Textbook
}

func NewTextbookBrowser(books []domain.Textbook) *TextbookBrowser {
	return &TextbookBrowser{books: books}
}

func (b *TextbookBrowser) Open(id int) error {
	if b.selected != nil {
		return domain.NewInvalidActionError(domain.ActionOpen, "reading")
	}
	for i := range b.books {
		if b.books[i].ID == id {
			book := b.books[i]
			b.selected = &book
			return nil
		}
	}
	return domain.NewItemNotFoundError(id)
}

func (b *TextbookBrowser) Back() error {
	if b.selected == nil {
		return domain.NewInvalidActionError(domain.ActionBack, "library")
	}
	b.selected = nil
	return nil
}

// Reset returns to the library list.
func (b *TextbookBrowser) Reset() {
	b.selected = nil
}

type TextbookView struct {
	Book         domain.Textbook `json:"book"`
	Chapters     []string        `json:"chapters"`
	MoreChapters int             `json:"more_chapters,omitempty"`
}

type TextbookSnapshot struct {
	Books    []domain.Textbook `json:"books"`
	Selected *TextbookView     `json:"selected,omitempty"`
}

func (b *TextbookBrowser) Snapshot() TextbookSnapshot {
	s := TextbookSnapshot{Books: append([]domain.Textbook(nil), b.books...)}
	if b.selected != nil {
		s.Selected = PreviewTextbook(*b.selected)
	}
	return s
}

// PreviewTextbook lists the first chapters of book and counts the rest.
func PreviewTextbook(book domain.Textbook) *TextbookView {
	n := min(ChapterPreviewLimit, book.Chapters)
	view := &TextbookView{Book: book, Chapters: make([]string, n)}
	for i := 0; i < n; i++ {
		view.Chapters[i] = fmt.Sprintf("Chapter %d: Introduction to Topic %d", i+1, i+1)
	}
	if book.Chapters > n {
		view.MoreChapters = book.Chapters - n
	}
	return view
}

// VideoBrowser lists videos and plays one at a time.
type VideoBrowser struct {
	videos   []domain.Video
	selected *domain.Video
	playing  bool
}

func NewVideoBrowser(videos []domain.Video) *VideoBrowser {
	return &VideoBrowser{videos: videos}
}

func (b *VideoBrowser) Open(id int) error {
	if b.selected != nil {
		return domain.NewInvalidActionError(domain.ActionOpen, "watching")
	}
	for i := range b.videos {
		if b.videos[i].ID == id {
			v := b.videos[i]
			b.selected = &v
			b.playing = false
			return nil
		}
	}
	return domain.NewItemNotFoundError(id)
}

func (b *VideoBrowser) Back() error {
	if b.selected == nil {
		return domain.NewInvalidActionError(domain.ActionBack, "library")
	}
	b.selected = nil
	b.playing = false
	return nil
}

func (b *VideoBrowser) TogglePlay() error {
	if b.selected == nil {
		return domain.NewInvalidActionError(domain.ActionTogglePlay, "library")
	}
	b.playing = !b.playing
	return nil
}

func (b *VideoBrowser) Reset() {
	b.selected = nil
	b.playing = false
}

type VideoSnapshot struct {
	Videos   []domain.Video `json:"videos"`
	Selected *domain.Video  `json:"selected,omitempty"`
	Playing  bool           `json:"playing"`
}

func (b *VideoBrowser) Snapshot() VideoSnapshot {
	s := VideoSnapshot{Videos: append([]domain.Video(nil), b.videos...), Playing: b.playing}
	if b.selected != nil {
		v := *b.selected
		s.Selected = &v
	}
	return s
}
