package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jdabachine3378-svg/TP-3-Application-CRUD-avec-MySQL-EJS-et-Express/internal/handler"
	"github.com/jdabachine3378-svg/TP-3-Application-CRUD-avec-MySQL-EJS-et-Express/internal/model"
	"github.com/jdabachine3378-svg/TP-3-Application-CRUD-avec-MySQL-EJS-et-Express/internal/service"
	"github.com/jdabachine3378-svg/TP-3-Application-CRUD-avec-MySQL-EJS-et-Express/internal/view"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

// stubService records which operation the router dispatched to.
type stubService struct {
	called string
	id     int64
}

func (s *stubService) List(ctx context.Context) ([]model.Product, error) {
	s.called = "List"
	return []model.Product{}, nil
}

func (s *stubService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	s.called, s.id = "GetByID", id
	return &model.Product{ID: id, Name: "Stub"}, nil
}

func (s *stubService) Create(ctx context.Context, input model.ProductInput) (int64, error) {
	s.called = "Create"
	return 1, nil
}

func (s *stubService) Update(ctx context.Context, id int64, input model.ProductInput) error {
	s.called, s.id = "Update", id
	return nil
}

func (s *stubService) Delete(ctx context.Context, id int64) error {
	s.called, s.id = "Delete", id
	return nil
}

type panicService struct{ stubService }

func (p *panicService) List(ctx context.Context) ([]model.Product, error) {
	panic("unexpected nil")
}

func newTestRouter(t *testing.T, svc service.ProductService, pinger Pinger) http.Handler {
	t.Helper()

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	logger := zerolog.Nop()
	return New(handler.NewProductHandler(svc, renderer, logger), renderer, pinger, logger)
}

func TestRouter_Dispatch(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
		expectedCall   string
		expectedID     int64
	}{
		{name: "List", method: http.MethodGet, path: "/products", expectedStatus: http.StatusOK, expectedCall: "List"},
		{name: "List trailing slash", method: http.MethodGet, path: "/products/", expectedStatus: http.StatusOK, expectedCall: "List"},
		{name: "Create form", method: http.MethodGet, path: "/products/create", expectedStatus: http.StatusOK},
		{name: "Create submit", method: http.MethodPost, path: "/products/create", body: "name=A&price=1", expectedStatus: http.StatusSeeOther, expectedCall: "Create"},
		{name: "Details", method: http.MethodGet, path: "/products/42", expectedStatus: http.StatusOK, expectedCall: "GetByID", expectedID: 42},
		{name: "Edit form", method: http.MethodGet, path: "/products/edit/42", expectedStatus: http.StatusOK, expectedCall: "GetByID", expectedID: 42},
		{name: "Update submit", method: http.MethodPost, path: "/products/42/update", body: "name=A&price=1", expectedStatus: http.StatusSeeOther, expectedCall: "Update", expectedID: 42},
		{name: "Delete submit", method: http.MethodPost, path: "/products/42/delete", expectedStatus: http.StatusSeeOther, expectedCall: "Delete", expectedID: 42},
		{name: "Unknown route", method: http.MethodGet, path: "/nowhere", expectedStatus: http.StatusNotFound},
		{name: "Wrong method on known path", method: http.MethodPost, path: "/products/42", expectedStatus: http.StatusNotFound},
		{name: "GET on update path", method: http.MethodGet, path: "/products/42/update", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{}
			r := newTestRouter(t, svc, fakePinger{})

			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedCall, svc.called)
			assert.Equal(t, tt.expectedID, svc.id)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestRouter_RootRedirects(t *testing.T) {
	r := newTestRouter(t, &stubService{}, fakePinger{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/products", w.Header().Get("Location"))
}

func TestRouter_NotFoundRendersErrorPage(t *testing.T) {
	r := newTestRouter(t, &stubService{}, fakePinger{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/does/not/exist", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Page not found")
}

func TestRouter_PanicRendersServerErrorPage(t *testing.T) {
	r := newTestRouter(t, &panicService{}, fakePinger{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Something went wrong on the server.")
	assert.NotContains(t, w.Body.String(), "unexpected nil")
}

func TestRouter_Static(t *testing.T) {
	r := newTestRouter(t, &stubService{}, fakePinger{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/css/style.css", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/css")
}

func TestRouter_StaticUnmatchedRendersErrorPage(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "Missing file", path: "/static/missing.css"},
		{name: "Missing nested file", path: "/static/css/missing.css"},
		{name: "Static root directory", path: "/static/"},
		{name: "Nested directory", path: "/static/css/"},
		{name: "Nested directory without slash", path: "/static/css"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t, &stubService{}, fakePinger{})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
			assert.Contains(t, w.Body.String(), "Page not found")
			assert.NotContains(t, w.Body.String(), `href="style.css"`)
			assert.NotContains(t, w.Body.String(), `href="css/"`)
		})
	}
}

func TestRouter_Health(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		expectedStatus int
		expectedBody   string
	}{
		{name: "Healthy", expectedStatus: http.StatusOK, expectedBody: `{"status": "healthy"}`},
		{name: "Store down", pingErr: errors.New("no route to host"), expectedStatus: http.StatusServiceUnavailable, expectedBody: `{"status": "unavailable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t, &stubService{}, fakePinger{err: tt.pingErr})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.expectedBody, w.Body.String())
		})
	}
}
