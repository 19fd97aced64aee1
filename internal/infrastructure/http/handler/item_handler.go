package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mrops-br/storefront/internal/app/dto"
	"github.com/mrops-br/storefront/internal/app/service"
	"github.com/mrops-br/storefront/internal/infrastructure/http/response"
)

// MaxBodyBytes caps the size of a request body
const MaxBodyBytes = 64 << 10

// ItemHandler handles HTTP requests for catalog items
type ItemHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewItemHandler creates a new item handler
func NewItemHandler(service *service.CatalogService, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		service: service,
		logger:  logger,
	}
}

func (h *ItemHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body",
			slog.String("error", err.Error()),
		)
		response.Error(w, http.StatusBadRequest, err)
		return false
	}
	return true
}

// CreateItem handles POST /items
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateItemRequest
	if !h.decode(w, r, &req) {
		return
	}

	item, err := h.service.CreateItem(r.Context(), &req)
	if err != nil {
		response.Error(w, response.StatusFor(err), err)
		return
	}

	response.JSON(w, http.StatusCreated, item)
}

// GetItem handles GET /items/{id}
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.GetItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, response.StatusFor(err), err)
		return
	}

	response.JSON(w, http.StatusOK, item)
}

// ListItems handles GET /items
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListItems(r.Context())
	if err != nil {
		response.Error(w, response.StatusFor(err), err)
		return
	}

	response.JSON(w, http.StatusOK, items)
}

// UpdatePrice handles PATCH /items/{id}/price
func (h *ItemHandler) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdatePriceRequest
	if !h.decode(w, r, &req) {
		return
	}

	item, err := h.service.UpdatePrice(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		response.Error(w, response.StatusFor(err), err)
		return
	}

	response.JSON(w, http.StatusOK, item)
}
