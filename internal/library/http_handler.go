package library

import (
	_ "embed"
	"errors"
	"html/template"
	"net/http"
	"net/url"

	"bookreviews/internal/httpx"
)

//go:embed templates/index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Funcs(template.FuncMap{
	"pathEscape": url.PathEscape,
}).Parse(indexHTML))

const (
	msgBookNotFound      = "Book not found"
	msgNoReviewContent   = "No review content provided"
	msgReviewAdded       = "Review added"
	msgFailedToAddReview = "Failed to add review"
	msgBodyTooLarge      = "Request body too large"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Index handles GET /
func (h *HTTPHandler) Index(w http.ResponseWriter, r *http.Request) {
	names, err := h.service.BookNames(r.Context())
	if err != nil {
		httpx.InternalError(w, r, err)
		return
	}
	httpx.HTML(w, r, http.StatusOK, indexTemplate, map[string]any{
		"BookNames": names,
	})
}

// AllBooks handles GET /all_books
func (h *HTTPHandler) AllBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.AllBooks(r.Context())
	if err != nil {
		httpx.InternalError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

// GetBook handles GET /book/{book_name}
func (h *HTTPHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	details, err := h.service.BookDetails(r.Context(), r.PathValue("book_name"))
	h.writeDetails(w, r, details, err)
}

// Search handles GET /search/{book_name}
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	details, err := h.service.SearchBook(r.Context(), r.PathValue("book_name"))
	h.writeDetails(w, r, details, err)
}

func (h *HTTPHandler) writeDetails(w http.ResponseWriter, r *http.Request, details BookDetails, err error) {
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, msgBookNotFound)
			return
		}
		httpx.InternalError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, details)
}

type addReviewForm struct {
	Review string `validate:"required"`
}

// AddReview handles POST /add_review/{book_name}
//
// A missing book answers 500, not 404, to stay compatible with existing clients.
func (h *HTTPHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpx.JSONError(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
			return
		}
		httpx.JSONError(w, http.StatusBadRequest, msgNoReviewContent)
		return
	}

	form := addReviewForm{Review: r.PostForm.Get("review")}
	if errs := httpx.ValidateStruct(form); len(errs) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, msgNoReviewContent)
		return
	}

	name := r.PathValue("book_name")
	err := h.service.AddReview(r.Context(), name, form.Review)
	switch {
	case err == nil:
		httpx.JSONSuccess(w, msgReviewAdded)
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrReviewNotAdded):
		logger := httpx.Logger(r)
		logger.Warn().Err(err).Str("book_name", name).Msg("review not added")
		httpx.JSONError(w, http.StatusInternalServerError, msgFailedToAddReview)
	default:
		httpx.InternalError(w, r, err)
	}
}

// FilterGenre handles GET /filter_genre/{genre}
func (h *HTTPHandler) FilterGenre(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.FilterByGenre(r.Context(), r.PathValue("genre"))
	if err != nil {
		httpx.InternalError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"books": books})
}
