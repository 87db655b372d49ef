package httpx

import (
	"bytes"
	"encoding/json"
	"html/template"
	"net/http"
)

// ErrorResponse is the payload of every domain error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is the payload of write operations that return no data.
type SuccessResponse struct {
	Success string `json:"success"`
}

func JSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

func JSONError(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, ErrorResponse{Error: message})
}

func JSONSuccess(w http.ResponseWriter, message string) {
	JSON(w, http.StatusOK, SuccessResponse{Success: message})
}

// InternalError logs err against the request and answers with a bare 500.
// Infrastructure failures carry no JSON payload.
func InternalError(w http.ResponseWriter, r *http.Request, err error) {
	logger := Logger(r)
	logger.Error().Err(err).Msg("request failed")
	PlainInternalError(w)
}

func PlainInternalError(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// HTML renders tmpl into a buffer first so a template failure still yields a clean 500.
func HTML(w http.ResponseWriter, r *http.Request, statusCode int, tmpl *template.Template, data interface{}) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		InternalError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	w.Write(buf.Bytes())
}
