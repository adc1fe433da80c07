package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/ecommerce/internal/api/dto"
	"github.com/RoyceAzure/lab/ecommerce/internal/service"
)

type CartHandler struct {
	cartService service.ICartService
}

func NewCartHandler(cartService service.ICartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GetCart GET /api/v1/carts/{customerID}
// 沒有購物車也回空車，前端不用特判 404
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	customerID, err := parseUintParam(r, "customerID")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	cart, err := h.cartService.GetActiveCart(r.Context(), customerID)
	if err != nil {
		serviceErrorResponse(w, err)
		return
	}
	successResponse(w, http.StatusOK, convertCartToDTO(cart))
}

// AddItem POST /api/v1/carts/{customerID}/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	customerID, err := parseUintParam(r, "customerID")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	var req dto.AddToCartDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cart, err := h.cartService.AddItem(r.Context(), customerID, req.ProductID, req.Quantity)
	if err != nil {
		serviceErrorResponse(w, err)
		return
	}
	successResponse(w, http.StatusOK, convertCartToDTO(cart))
}

// UpdateItemQuantity PUT /api/v1/carts/{customerID}/items/{itemID}
func (h *CartHandler) UpdateItemQuantity(w http.ResponseWriter, r *http.Request) {
	customerID, err := parseUintParam(r, "customerID")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid customer id")
		return
	}
	itemID, err := parseUintParam(r, "itemID")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid cart item id")
		return
	}

	var req dto.UpdateCartItemDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cart, err := h.cartService.UpdateItemQuantity(r.Context(), customerID, itemID, req.Quantity)
	if err != nil {
		serviceErrorResponse(w, err)
		return
	}
	successResponse(w, http.StatusOK, convertCartToDTO(cart))
}

// RemoveItem DELETE /api/v1/carts/{customerID}/items/{itemID}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	customerID, err := parseUintParam(r, "customerID")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid customer id")
		return
	}
	itemID, err := parseUintParam(r, "itemID")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid cart item id")
		return
	}

	cart, err := h.cartService.RemoveItem(r.Context(), customerID, itemID)
	if err != nil {
		serviceErrorResponse(w, err)
		return
	}
	successResponse(w, http.StatusOK, convertCartToDTO(cart))
}

// ClearCart DELETE /api/v1/carts/{customerID}
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	customerID, err := parseUintParam(r, "customerID")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	cart, err := h.cartService.ClearCart(r.Context(), customerID)
	if err != nil {
		serviceErrorResponse(w, err)
		return
	}
	successResponse(w, http.StatusOK, convertCartToDTO(cart))
}
