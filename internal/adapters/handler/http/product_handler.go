package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vendio/api/internal/core/domain"
	"github.com/vendio/api/internal/core/ports"
)

type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

type createProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, false, serverErrorMessage)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"products": products,
	})
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body.")
		return
	}

	product, err := h.service.Create(r.Context(), ports.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			writeMessage(w, http.StatusBadRequest, false, verr.Message)
			return
		}
		writeMessage(w, http.StatusInternalServerError, false, serverErrorMessage)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Product created.",
		"product": product,
	})
}
