package handler

import (
	"net/http"

	"github.com/jdabachine3378-svg/TP-3-Application-CRUD-avec-MySQL-EJS-et-Express/internal/middleware"
	"github.com/jdabachine3378-svg/TP-3-Application-CRUD-avec-MySQL-EJS-et-Express/internal/view"

	"github.com/rs/zerolog"
)

// Renderer renders an HTML page with a status code.
type Renderer interface {
	Render(w http.ResponseWriter, status int, page string, data view.Page) error
}

// render writes a page, falling back to a plain-text 500 if the template fails.
func render(w http.ResponseWriter, r *http.Request, renderer Renderer, status int, page string, data view.Page, logger zerolog.Logger) {
	if err := renderer.Render(w, status, page, data); err != nil {
		logger.Error().
			Err(err).
			Str("page", page).
			Str("request_id", middleware.RequestIDFromContext(r.Context())).
			Msg("failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// renderError writes the error page with the given status code and message.
func renderError(w http.ResponseWriter, r *http.Request, renderer Renderer, status int, title, message string, logger zerolog.Logger) {
	render(w, r, renderer, status, view.PageError, view.Page{Title: title, Message: message}, logger)
}

// NotFound renders the 404 page for requests no route matches.
func NotFound(renderer Renderer, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderError(w, r, renderer, http.StatusNotFound,
			"Page not found", "The page you are looking for does not exist.", logger)
	}
}

// InternalError renders the generic 500 page.
func InternalError(renderer Renderer, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderError(w, r, renderer, http.StatusInternalServerError,
			"Server error", "Something went wrong on the server.", logger)
	}
}
