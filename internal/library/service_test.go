package library

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookreviews/internal/chart"
)

var fakePNG = []byte{0x89, 'P', 'N', 'G'}

type serviceMocks struct {
	repo       *MockRepository
	classifier *MockClassifier
	renderer   *MockPieRenderer
}

func newTestService(t *testing.T) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		repo:       NewMockRepository(ctrl),
		classifier: NewMockClassifier(ctrl),
		renderer:   NewMockPieRenderer(ctrl),
	}
	return NewService(m.repo, m.classifier, m.renderer), m
}

func sliceValues(slices []chart.Slice) map[string]int {
	out := make(map[string]int, len(slices))
	for _, s := range slices {
		out[s.Label] = s.Value
	}
	return out
}

func TestService_BookDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("classifies every review", func(t *testing.T) {
		svc, m := newTestService(t)
		m.repo.EXPECT().FindBook(gomock.Any(), "Dune").Return(Match{
			AuthorName: "Frank Herbert",
			Book: Book{
				Name:    "Dune",
				Genres:  []string{"Science Fiction"},
				Reviews: []string{"I loved it!", "Terrible pacing", "It was fine"},
			},
		}, nil)
		m.classifier.EXPECT().Polarity("I loved it!").Return(0.8)
		m.classifier.EXPECT().Polarity("Terrible pacing").Return(-0.3)
		m.classifier.EXPECT().Polarity("It was fine").Return(0.1)
		m.renderer.EXPECT().Render(gomock.Any()).DoAndReturn(func(slices []chart.Slice) ([]byte, error) {
			assert.Equal(t, map[string]int{"Positive": 1, "Negative": 1, "Neutral": 1}, sliceValues(slices))
			assert.Equal(t, "Positive", slices[0].Label)
			assert.Equal(t, 0.1, slices[0].Explode)
			assert.Zero(t, slices[1].Explode)
			assert.Zero(t, slices[2].Explode)
			return fakePNG, nil
		})

		details, err := svc.BookDetails(ctx, "Dune")
		require.NoError(t, err)
		assert.Equal(t, "Dune", details.Title)
		assert.Equal(t, "Frank Herbert", details.Author)
		assert.Equal(t, DefaultSummary, details.Summary)
		assert.Equal(t, []string{"Science Fiction"}, details.Genres)

		decoded, err := base64.StdEncoding.DecodeString(details.PieChartURL)
		require.NoError(t, err)
		assert.Equal(t, fakePNG, decoded)
	})

	t.Run("no reviews still renders", func(t *testing.T) {
		svc, m := newTestService(t)
		m.repo.EXPECT().FindBook(gomock.Any(), "Emma").Return(Match{
			AuthorName: "Jane Austen",
			Book:       Book{Name: "Emma", Summary: "Matchmaking."},
		}, nil)
		m.renderer.EXPECT().Render(gomock.Any()).DoAndReturn(func(slices []chart.Slice) ([]byte, error) {
			assert.Equal(t, map[string]int{"Positive": 0, "Negative": 0, "Neutral": 0}, sliceValues(slices))
			return fakePNG, nil
		})

		details, err := svc.BookDetails(ctx, "Emma")
		require.NoError(t, err)
		assert.Equal(t, "Matchmaking.", details.Summary)
		assert.NotNil(t, details.Genres)
		assert.Empty(t, details.Genres)
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newTestService(t)
		m.repo.EXPECT().FindBook(gomock.Any(), "Missing").Return(Match{}, ErrNotFound)

		_, err := svc.BookDetails(ctx, "Missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("render failure", func(t *testing.T) {
		svc, m := newTestService(t)
		m.repo.EXPECT().FindBook(gomock.Any(), "Dune").Return(Match{Book: Book{Name: "Dune"}}, nil)
		m.renderer.EXPECT().Render(gomock.Any()).Return(nil, errors.New("boom"))

		_, err := svc.BookDetails(ctx, "Dune")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestService_SearchBook(t *testing.T) {
	ctx := context.Background()

	t.Run("same shape as details", func(t *testing.T) {
		svc, m := newTestService(t)
		match := Match{
			AuthorName: "Frank Herbert",
			Book:       Book{Name: "Dune", Summary: "Spice.", Genres: []string{"Classic"}, Reviews: []string{"ok"}},
		}
		m.repo.EXPECT().FindBook(gomock.Any(), "Dune").Return(match, nil)
		m.repo.EXPECT().SearchBook(gomock.Any(), "du").Return(match, nil)
		m.classifier.EXPECT().Polarity("ok").Return(0.2).Times(2)
		m.renderer.EXPECT().Render(gomock.Any()).Return(fakePNG, nil).Times(2)

		byName, err := svc.BookDetails(ctx, "Dune")
		require.NoError(t, err)
		bySearch, err := svc.SearchBook(ctx, "du")
		require.NoError(t, err)
		assert.Equal(t, byName, bySearch)
	})

	t.Run("invalid pattern never reaches the store", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.SearchBook(ctx, "([")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("no match", func(t *testing.T) {
		svc, m := newTestService(t)
		m.repo.EXPECT().SearchBook(gomock.Any(), "zzz").Return(Match{}, ErrNotFound)

		_, err := svc.SearchBook(ctx, "zzz")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_Listing(t *testing.T) {
	ctx := context.Background()

	t.Run("nil names become empty", func(t *testing.T) {
		svc, m := newTestService(t)
		m.repo.EXPECT().BookNames(gomock.Any()).Return(nil, nil)

		names, err := svc.BookNames(ctx)
		require.NoError(t, err)
		assert.NotNil(t, names)
		assert.Empty(t, names)
	})

	t.Run("book names error is wrapped", func(t *testing.T) {
		svc, m := newTestService(t)
		m.repo.EXPECT().BookNames(gomock.Any()).Return(nil, context.DeadlineExceeded)

		_, err := svc.BookNames(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("all books passes through", func(t *testing.T) {
		svc, m := newTestService(t)
		books := []Book{{Name: "Dune"}, {Name: "Dune Messiah"}, {Name: "Emma"}}
		m.repo.EXPECT().AllBooks(gomock.Any()).Return(books, nil)

		got, err := svc.AllBooks(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})
}

func TestService_AddReview(t *testing.T) {
	ctx := context.Background()

	for _, want := range []error{nil, ErrNotFound, ErrReviewNotAdded} {
		svc, m := newTestService(t)
		m.repo.EXPECT().AppendReview(gomock.Any(), "Dune", "Great").Return(want)

		err := svc.AddReview(ctx, "Dune", "Great")
		if want == nil {
			assert.NoError(t, err)
		} else {
			assert.ErrorIs(t, err, want)
		}
	}
}

func TestService_FilterByGenre(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps only literal genre members", func(t *testing.T) {
		svc, m := newTestService(t)
		m.repo.EXPECT().AuthorsWithGenre(gomock.Any(), "Classic").Return([]Author{
			{
				Name: "Frank Herbert",
				Books: []Book{
					{Name: "Dune", Genres: []string{"Science Fiction"}},
					{Name: "Dune Messiah", Summary: "Sequel.", Genres: []string{"Classic"}, ImageURL: "m.jpg"},
				},
			},
			{
				Name:  "Jane Austen",
				Books: []Book{{Name: "Emma", Genres: []string{"Classic", "Romance"}}, {Name: "Sanditon", Genres: []string{"classic"}}},
			},
		}, nil)

		got, err := svc.FilterByGenre(ctx, "Classic")
		require.NoError(t, err)
		assert.Equal(t, []GenreMatch{
			{Title: "Dune Messiah", Summary: "Sequel.", ImageURL: "m.jpg"},
			{Title: "Emma", Summary: DefaultSummary},
		}, got)
	})

	t.Run("no authors", func(t *testing.T) {
		svc, m := newTestService(t)
		m.repo.EXPECT().AuthorsWithGenre(gomock.Any(), "Horror").Return(nil, nil)

		got, err := svc.FilterByGenre(ctx, "Horror")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("store error", func(t *testing.T) {
		svc, m := newTestService(t)
		m.repo.EXPECT().AuthorsWithGenre(gomock.Any(), "Horror").Return(nil, errors.New("down"))

		_, err := svc.FilterByGenre(ctx, "Horror")
		assert.Error(t, err)
	})
}
