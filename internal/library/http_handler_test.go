package library

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookreviews/internal/httpx"
)

func newTestHandler(t *testing.T) (*HTTPHandler, serviceMocks) {
	svc, m := newTestService(t)
	return NewHTTPHandler(svc), m
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func reviewRequest(name string, form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/add_review/"+url.PathEscape(name), strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.SetPathValue("book_name", name)
	return r
}

func TestHTTPHandler_Index(t *testing.T) {
	t.Run("lists names as links", func(t *testing.T) {
		handler, m := newTestHandler(t)
		m.repo.EXPECT().BookNames(gomock.Any()).Return([]string{"Dune", "Dune Messiah"}, nil)

		w := httptest.NewRecorder()
		handler.Index(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), `href="/book/Dune"`)
		assert.Contains(t, w.Body.String(), `href="/book/Dune%20Messiah"`)
	})

	t.Run("links escape reserved characters", func(t *testing.T) {
		handler, m := newTestHandler(t)
		m.repo.EXPECT().BookNames(gomock.Any()).Return([]string{"What If?", "AC/DC", "Tom & Jerry #2"}, nil)

		w := httptest.NewRecorder()
		handler.Index(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `href="/book/What%20If%3F"`)
		assert.Contains(t, body, `href="/book/AC%2FDC"`)
		assert.Contains(t, body, `href="/book/Tom%20&amp;%20Jerry%20%232"`)
		assert.Contains(t, body, ">What If?</a>")
	})

	t.Run("empty store", func(t *testing.T) {
		handler, m := newTestHandler(t)
		m.repo.EXPECT().BookNames(gomock.Any()).Return([]string{}, nil)

		w := httptest.NewRecorder()
		handler.Index(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "No books yet.")
	})

	t.Run("store error", func(t *testing.T) {
		handler, m := newTestHandler(t)
		m.repo.EXPECT().BookNames(gomock.Any()).Return(nil, context.DeadlineExceeded)

		w := httptest.NewRecorder()
		handler.Index(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHTTPHandler_AllBooks(t *testing.T) {
	handler, m := newTestHandler(t)
	m.repo.EXPECT().AllBooks(gomock.Any()).Return([]Book{
		{Name: "Dune", Genres: []string{}, Reviews: []string{"I loved it!"}},
		{Name: "Emma", Summary: "Matchmaking.", Genres: []string{"Classic"}, Reviews: []string{}},
	}, nil)

	w := httptest.NewRecorder()
	handler.AllBooks(w, httptest.NewRequest(http.MethodGet, "/all_books", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var books []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &books))
	require.Len(t, books, 2)
	assert.Equal(t, "Dune", books[0]["book_name"])
	assert.NotContains(t, books[0], "summary")
	assert.Equal(t, "Matchmaking.", books[1]["summary"])
}

func TestHTTPHandler_GetBook(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler, m := newTestHandler(t)
		m.repo.EXPECT().FindBook(gomock.Any(), "Dune").Return(Match{
			AuthorName: "Frank Herbert",
			Book:       Book{Name: "Dune", Reviews: []string{"I loved it!"}},
		}, nil)
		m.classifier.EXPECT().Polarity("I loved it!").Return(0.7)
		m.renderer.EXPECT().Render(gomock.Any()).Return(fakePNG, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/book/Dune", nil)
		r.SetPathValue("book_name", "Dune")
		handler.GetBook(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Dune", body["title"])
		assert.Equal(t, "Frank Herbert", body["author"])
		assert.Equal(t, DefaultSummary, body["summary"])
		assert.Equal(t, []any{}, body["genres"])
		assert.NotEmpty(t, body["pie_chart_url"])
	})

	t.Run("not found", func(t *testing.T) {
		handler, m := newTestHandler(t)
		m.repo.EXPECT().FindBook(gomock.Any(), "Missing").Return(Match{}, ErrNotFound)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/book/Missing", nil)
		r.SetPathValue("book_name", "Missing")
		handler.GetBook(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, map[string]any{"error": "Book not found"}, decodeBody(t, w))
	})

	t.Run("store error", func(t *testing.T) {
		handler, m := newTestHandler(t)
		m.repo.EXPECT().FindBook(gomock.Any(), "Dune").Return(Match{}, context.DeadlineExceeded)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/book/Dune", nil)
		r.SetPathValue("book_name", "Dune")
		handler.GetBook(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHTTPHandler_Search(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler, m := newTestHandler(t)
		m.repo.EXPECT().SearchBook(gomock.Any(), "dune").Return(Match{
			AuthorName: "Frank Herbert",
			Book:       Book{Name: "Dune"},
		}, nil)
		m.renderer.EXPECT().Render(gomock.Any()).Return(fakePNG, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/search/dune", nil)
		r.SetPathValue("book_name", "dune")
		handler.Search(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.ElementsMatch(t, []string{"title", "author", "summary", "genres", "pie_chart_url"}, keys(body))
	})

	t.Run("invalid pattern", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/search/x", nil)
		r.SetPathValue("book_name", "a(")
		handler.Search(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestHTTPHandler_AddReview(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler, m := newTestHandler(t)
		m.repo.EXPECT().AppendReview(gomock.Any(), "Dune", "Great").Return(nil)

		w := httptest.NewRecorder()
		handler.AddReview(w, reviewRequest("Dune", url.Values{"review": {"Great"}}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, map[string]any{"success": "Review added"}, decodeBody(t, w))
	})

	t.Run("missing review never touches the store", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		w := httptest.NewRecorder()
		handler.AddReview(w, reviewRequest("Dune", url.Values{}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, map[string]any{"error": "No review content provided"}, decodeBody(t, w))
	})

	t.Run("empty review", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		w := httptest.NewRecorder()
		handler.AddReview(w, reviewRequest("Dune", url.Values{"review": {""}}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("oversized streamed body", func(t *testing.T) {
		handler, _ := newTestHandler(t)
		limited := httpx.RequestSizeLimitMiddleware(16)(http.HandlerFunc(handler.AddReview))

		r := reviewRequest("Dune", url.Values{"review": {strings.Repeat("x", 100)}})
		r.ContentLength = -1

		w := httptest.NewRecorder()
		limited.ServeHTTP(w, r)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Equal(t, map[string]any{"error": "Request body too large"}, decodeBody(t, w))
	})

	for name, err := range map[string]error{"unknown book": ErrNotFound, "not modified": ErrReviewNotAdded} {
		t.Run(name, func(t *testing.T) {
			handler, m := newTestHandler(t)
			m.repo.EXPECT().AppendReview(gomock.Any(), "Missing", "Great").Return(err)

			w := httptest.NewRecorder()
			handler.AddReview(w, reviewRequest("Missing", url.Values{"review": {"Great"}}))

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, map[string]any{"error": "Failed to add review"}, decodeBody(t, w))
		})
	}
}

func TestHTTPHandler_FilterGenre(t *testing.T) {
	t.Run("matches", func(t *testing.T) {
		handler, m := newTestHandler(t)
		m.repo.EXPECT().AuthorsWithGenre(gomock.Any(), "Classic").Return([]Author{
			{Name: "Jane Austen", Books: []Book{{Name: "Emma", Genres: []string{"Classic"}, ImageURL: "e.jpg"}}},
		}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/filter_genre/Classic", nil)
		r.SetPathValue("genre", "Classic")
		handler.FilterGenre(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, map[string]any{
			"books": []any{map[string]any{"title": "Emma", "summary": DefaultSummary, "image_url": "e.jpg"}},
		}, decodeBody(t, w))
	})

	t.Run("no matches", func(t *testing.T) {
		handler, m := newTestHandler(t)
		m.repo.EXPECT().AuthorsWithGenre(gomock.Any(), "Horror").Return(nil, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/filter_genre/Horror", nil)
		r.SetPathValue("genre", "Horror")
		handler.FilterGenre(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, map[string]any{"books": []any{}}, decodeBody(t, w))
	})
}
