package library

import (
	"context"
	"fmt"
	"image/color"
	"regexp"

	"bookreviews/internal/chart"
	"bookreviews/internal/sentiment"
)

const positiveExplode = 0.1

var (
	positiveColor = color.RGBA{R: 144, G: 238, B: 144, A: 255} // lightgreen
	negativeColor = color.RGBA{R: 240, G: 128, B: 128, A: 255} // lightcoral
	neutralColor  = color.RGBA{R: 135, G: 206, B: 250, A: 255} // lightskyblue
)

// Service provides the book and review operations behind the HTTP routes.
type Service struct {
	repo       Repository
	classifier Classifier
	renderer   PieRenderer
}

// NewService creates a new library service.
func NewService(repo Repository, classifier Classifier, renderer PieRenderer) *Service {
	return &Service{repo: repo, classifier: classifier, renderer: renderer}
}

// BookNames returns the distinct names of all stored books.
func (s *Service) BookNames(ctx context.Context) ([]string, error) {
	names, err := s.repo.BookNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("list book names: %w", err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// AllBooks returns every book of every author as one list.
func (s *Service) AllBooks(ctx context.Context) ([]Book, error) {
	books, err := s.repo.AllBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	if books == nil {
		books = []Book{}
	}
	return books, nil
}

// BookDetails looks a book up by exact name and attaches its review breakdown chart.
func (s *Service) BookDetails(ctx context.Context, name string) (BookDetails, error) {
	m, err := s.repo.FindBook(ctx, name)
	if err != nil {
		return BookDetails{}, err
	}
	return s.details(m)
}

// SearchBook is BookDetails with a case-insensitive regular expression match.
// A pattern that does not compile matches nothing.
func (s *Service) SearchBook(ctx context.Context, pattern string) (BookDetails, error) {
	if _, err := regexp.Compile("(?i)" + pattern); err != nil {
		return BookDetails{}, ErrNotFound
	}
	m, err := s.repo.SearchBook(ctx, pattern)
	if err != nil {
		return BookDetails{}, err
	}
	return s.details(m)
}

func (s *Service) details(m Match) (BookDetails, error) {
	png, err := s.ReviewChart(m.Book.Reviews)
	if err != nil {
		return BookDetails{}, err
	}

	genres := m.Book.Genres
	if genres == nil {
		genres = []string{}
	}
	return BookDetails{
		Title:       m.Book.Name,
		Author:      m.AuthorName,
		Summary:     m.Book.SummaryOrDefault(),
		Genres:      genres,
		PieChartURL: chart.EncodeBase64(png),
	}, nil
}

// ReviewChart classifies reviews and renders the positive/negative/neutral
// breakdown as a PNG pie chart.
func (s *Service) ReviewChart(reviews []string) ([]byte, error) {
	counts := sentiment.Tally(s.classifier, reviews)
	png, err := s.renderer.Render(breakdownSlices(counts))
	if err != nil {
		return nil, fmt.Errorf("render review chart: %w", err)
	}
	return png, nil
}

func breakdownSlices(c sentiment.Counts) []chart.Slice {
	return []chart.Slice{
		{Label: sentiment.Positive.String(), Value: c.Positive, Color: positiveColor, Explode: positiveExplode},
		{Label: sentiment.Negative.String(), Value: c.Negative, Color: negativeColor},
		{Label: sentiment.Neutral.String(), Value: c.Neutral, Color: neutralColor},
	}
}

// AddReview appends review to the first book named name. It returns
// ErrNotFound when no book matches and ErrReviewNotAdded when the store
// reports no modification.
func (s *Service) AddReview(ctx context.Context, name, review string) error {
	return s.repo.AppendReview(ctx, name, review)
}

// FilterByGenre lists the books whose genres contain genre exactly.
func (s *Service) FilterByGenre(ctx context.Context, genre string) ([]GenreMatch, error) {
	authors, err := s.repo.AuthorsWithGenre(ctx, genre)
	if err != nil {
		return nil, fmt.Errorf("filter by genre: %w", err)
	}

	matches := []GenreMatch{}
	for _, a := range authors {
		for _, b := range a.Books {
			if !b.HasGenre(genre) {
				continue
			}
			matches = append(matches, GenreMatch{
				Title:    b.Name,
				Summary:  b.SummaryOrDefault(),
				ImageURL: b.ImageURL,
			})
		}
	}
	return matches, nil
}
