package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jdabachine3378-svg/TP-3-Application-CRUD-avec-MySQL-EJS-et-Express/internal/middleware"
	"github.com/jdabachine3378-svg/TP-3-Application-CRUD-avec-MySQL-EJS-et-Express/internal/model"
	"github.com/jdabachine3378-svg/TP-3-Application-CRUD-avec-MySQL-EJS-et-Express/internal/service"
	"github.com/jdabachine3378-svg/TP-3-Application-CRUD-avec-MySQL-EJS-et-Express/internal/view"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const productListPath = "/products"

// ProductHandler handles the product pages and form submissions.
type ProductHandler struct {
	service  service.ProductService
	renderer Renderer
	logger   zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, renderer Renderer, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service:  service,
		renderer: renderer,
		logger:   logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		h.failure(w, r, err, 0, "Could not load the products.")
		return
	}

	h.render(w, r, http.StatusOK, view.PageProductList, view.Page{
		Title:    "Products",
		Products: products,
	})
}

// ShowCreateForm handles GET /products/create.
func (h *ProductHandler) ShowCreateForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageProductCreate, view.Page{Title: "Add a product"})
}

// Create handles POST /products/create.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, err := decodeProductForm(r)
	if err != nil {
		h.rejectForm(w, r, err, 0, "Could not create the product.")
		return
	}

	if _, err := h.service.Create(r.Context(), input); err != nil {
		h.failure(w, r, err, 0, "Could not create the product.")
		return
	}

	http.Redirect(w, r, productListPath, http.StatusSeeOther)
}

// Show handles GET /products/{id}.
func (h *ProductHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.failure(w, r, err, id, "Could not load the product.")
		return
	}

	h.render(w, r, http.StatusOK, view.PageProductDetails, view.Page{
		Title:   product.Name,
		Product: product,
	})
}

// ShowEditForm handles GET /products/edit/{id}.
func (h *ProductHandler) ShowEditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.failure(w, r, err, id, "Could not load the product.")
		return
	}

	h.render(w, r, http.StatusOK, view.PageProductEdit, view.Page{
		Title:   "Edit product",
		Product: product,
	})
}

// Update handles POST /products/{id}/update.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	input, err := decodeProductForm(r)
	if err != nil {
		h.rejectForm(w, r, err, id, "Could not update the product.")
		return
	}

	if err := h.service.Update(r.Context(), id, input); err != nil {
		h.failure(w, r, err, id, "Could not update the product.")
		return
	}

	http.Redirect(w, r, productListPath, http.StatusSeeOther)
}

// Delete handles POST /products/{id}/delete.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.failure(w, r, err, id, "Could not delete the product.")
		return
	}

	http.Redirect(w, r, productListPath, http.StatusSeeOther)
}

// productID parses the {id} URL parameter. Values that are not integers can
// never match a stored key, so they are reported as absent.
func productID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (h *ProductHandler) render(w http.ResponseWriter, r *http.Request, status int, page string, data view.Page) {
	render(w, r, h.renderer, status, page, data, h.logger)
}

func (h *ProductHandler) notFound(w http.ResponseWriter, r *http.Request) {
	renderError(w, r, h.renderer, http.StatusNotFound, "Error", model.ErrProductNotFound.Message, h.logger)
}

// rejectForm handles a price the NUMERIC column could never store. It ends
// the same way a store failure does: logged, then the generic 500 page.
func (h *ProductHandler) rejectForm(w http.ResponseWriter, r *http.Request, err error, id int64, message string) {
	event := h.logger.Warn().
		Err(err).
		Str("code", model.ErrCodeInvalidForm).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("request_id", middleware.RequestIDFromContext(r.Context()))
	if id != 0 {
		event = event.Int64("product_id", id)
	}
	event.Msg("rejected product form")

	renderError(w, r, h.renderer, http.StatusInternalServerError, "Error", message, h.logger)
}

// failure maps a service error to the not-found page or the generic 500 page.
// Store errors are logged here and never shown to the client.
func (h *ProductHandler) failure(w http.ResponseWriter, r *http.Request, err error, id int64, message string) {
	if errors.Is(err, model.ErrProductNotFound) {
		h.notFound(w, r)
		return
	}

	event := h.logger.Error().
		Err(err).
		Str("code", model.ErrCodeInternalError).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("request_id", middleware.RequestIDFromContext(r.Context()))
	if id != 0 {
		event = event.Int64("product_id", id)
	}
	event.Msg("product request failed")

	renderError(w, r, h.renderer, http.StatusInternalServerError, "Error", message, h.logger)
}
