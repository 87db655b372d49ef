package library

import (
	"context"

	"bookreviews/internal/chart"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=library

// Repository defines the contract for the author/book document store.
type Repository interface {
	// BookNames returns every distinct book name across all authors.
	BookNames(ctx context.Context) ([]string, error)
	// AllBooks returns the books of every author, flattened.
	AllBooks(ctx context.Context) ([]Book, error)
	// FindBook returns the first book whose name equals name exactly.
	FindBook(ctx context.Context, name string) (Match, error)
	// SearchBook returns the first book whose name matches pattern, case-insensitively.
	SearchBook(ctx context.Context, pattern string) (Match, error)
	// AppendReview pushes review onto the first book named name.
	AppendReview(ctx context.Context, name, review string) error
	// AuthorsWithGenre returns the authors owning at least one book tagged genre.
	AuthorsWithGenre(ctx context.Context, genre string) ([]Author, error)
	// InsertAuthors stores new author documents and reports how many were written.
	InsertAuthors(ctx context.Context, authors []Author) (int, error)
	Ping(ctx context.Context) error
}

// Classifier scores the polarity of a review.
type Classifier interface {
	Polarity(text string) float64
}

// PieRenderer turns chart slices into PNG bytes.
type PieRenderer interface {
	Render(slices []chart.Slice) ([]byte, error)
}
