package library

import (
	"errors"
	"slices"
)

var (
	// ErrNotFound is returned when no book matches the requested name.
	ErrNotFound = errors.New("book not found")
	// ErrReviewNotAdded is returned when the store matched a book but reported no modification.
	ErrReviewNotAdded = errors.New("review not added")
)

// DefaultSummary is shown for books stored without a summary.
const DefaultSummary = "No summary available"

// Author is the top-level stored document. Books only exist embedded in it.
type Author struct {
	Name  string `bson:"author_name" json:"author_name"`
	Books []Book `bson:"books" json:"books"`
}

// Book is embedded in an Author document and identified by its name.
type Book struct {
	Name     string   `bson:"book_name" json:"book_name"`
	Summary  string   `bson:"summary,omitempty" json:"summary,omitempty"`
	Genres   []string `bson:"genres" json:"genres"`
	ImageURL string   `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Reviews  []string `bson:"reviews" json:"reviews"`
}

// Match is a single book projected out of its author document.
type Match struct {
	AuthorName string
	Book       Book
}

// SummaryOrDefault returns the stored summary, or DefaultSummary when empty.
func (b Book) SummaryOrDefault() string {
	if b.Summary == "" {
		return DefaultSummary
	}
	return b.Summary
}

// HasGenre reports whether genre is literally present in the book's genres.
func (b Book) HasGenre(genre string) bool {
	return slices.Contains(b.Genres, genre)
}

func (b *Book) normalize() {
	if b.Genres == nil {
		b.Genres = []string{}
	}
	if b.Reviews == nil {
		b.Reviews = []string{}
	}
}

func (a *Author) normalize() {
	if a.Books == nil {
		a.Books = []Book{}
	}
	for i := range a.Books {
		a.Books[i].normalize()
	}
}

// normalized returns a normalized copy that shares no slices with a's books.
func (a Author) normalized() Author {
	a.Books = append([]Book(nil), a.Books...)
	a.normalize()
	return a
}

// BookDetails is the response of the detail and search routes.
type BookDetails struct {
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Summary     string   `json:"summary"`
	Genres      []string `json:"genres"`
	PieChartURL string   `json:"pie_chart_url"`
}

// GenreMatch is one entry of the genre filter response.
type GenreMatch struct {
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	ImageURL string `json:"image_url"`
}
