package router

import (
	"context"
	"io/fs"
	"net/http"
	"path"
	"time"

	"github.com/jdabachine3378-svg/TP-3-Application-CRUD-avec-MySQL-EJS-et-Express/internal/handler"
	"github.com/jdabachine3378-svg/TP-3-Application-CRUD-avec-MySQL-EJS-et-Express/internal/middleware"
	"github.com/jdabachine3378-svg/TP-3-Application-CRUD-avec-MySQL-EJS-et-Express/internal/view"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Pinger reports whether the data store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// New creates the HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	renderer handler.Renderer,
	db Pinger,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	notFound := handler.NotFound(renderer, logger)
	internalError := handler.InternalError(renderer, logger)

	// RequestID -> RealIP -> Logging -> Recovery, so recovered panics are
	// logged with their request id and their 500 status.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Recovery(logger, internalError))

	r.NotFound(notFound)
	// A known path with the wrong method is still an unmatched route.
	r.MethodNotAllowed(notFound)

	r.Get("/health", health(db, logger))

	r.Handle("/static/*", staticFiles(view.Static(), notFound))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/products", http.StatusFound)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", productHandler.List)
		r.Get("/create", productHandler.ShowCreateForm)
		r.Post("/create", productHandler.Create)
		r.Get("/edit/{id}", productHandler.ShowEditForm)
		r.Get("/{id}", productHandler.Show)
		r.Post("/{id}/update", productHandler.Update)
		r.Post("/{id}/delete", productHandler.Delete)
	})

	return r
}

// staticFiles serves regular files from files. Missing files and directories
// go to notFound, so there are no listings and no plain-text 404s.
func staticFiles(files fs.FS, notFound http.Handler) http.Handler {
	fileServer := http.StripPrefix("/static/", http.FileServer(http.FS(files)))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := path.Clean(chi.URLParam(r, "*"))
		if !fs.ValidPath(name) {
			notFound.ServeHTTP(w, r)
			return
		}

		info, err := fs.Stat(files, name)
		if err != nil || info.IsDir() {
			notFound.ServeHTTP(w, r)
			return
		}

		fileServer.ServeHTTP(w, r)
	})
}

// health answers with the store status. It is the only JSON endpoint.
func health(db Pinger, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		w.Header().Set("Content-Type", "application/json")

		if err := db.Ping(ctx); err != nil {
			logger.Warn().Err(err).Msg("health check failed")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status": "unavailable"}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status": "healthy"}`))
	}
}
