package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RoyceAzure/lab/ecommerce/internal/service"
	"github.com/rs/zerolog/log"
)

// ApiResponse 統一回應格式，前端依 Success 判斷結果
type ApiResponse struct {
	StatusCode int    `json:"StatusCode"`
	Success    bool   `json:"Success"`
	Data       any    `json:"Data,omitempty"`
	Errors     string `json:"Errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, resp ApiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func successResponse(w http.ResponseWriter, statusCode int, data any) {
	writeJSON(w, statusCode, ApiResponse{
		StatusCode: statusCode,
		Success:    true,
		Data:       data,
	})
}

func errorResponse(w http.ResponseWriter, statusCode int, msg string) {
	writeJSON(w, statusCode, ApiResponse{
		StatusCode: statusCode,
		Success:    false,
		Errors:     msg,
	})
}

// serviceErrorResponse 將 service 層錯誤轉成對應的 HTTP status
// 沒對應到的一律回 500，細節只進 log 不外洩
func serviceErrorResponse(w http.ResponseWriter, err error) {
	var stockErr *service.InsufficientStockError
	switch {
	case errors.As(err, &stockErr):
		errorResponse(w, http.StatusBadRequest, stockErr.Error())
	case errors.Is(err, service.ErrInvalidQuantity):
		errorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrCartNotFound),
		errors.Is(err, service.ErrCartItemNotFound),
		errors.Is(err, service.ErrCustomerNotFound),
		errors.Is(err, service.ErrAddressNotFound),
		errors.Is(err, service.ErrCategoryNotFound):
		errorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrProductUnavailable),
		errors.Is(err, service.ErrCartConflict):
		errorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrEmailAlreadyUsed),
		errors.Is(err, service.ErrCategoryNameUsed),
		errors.Is(err, service.ErrProductNameUsed),
		errors.Is(err, service.ErrCustomerNotActive):
		errorResponse(w, http.StatusBadRequest, err.Error())
	default:
		log.Error().Err(err).Msg("unexpected service error")
		errorResponse(w, http.StatusInternalServerError, "an unexpected error occurred while processing your request")
	}
}
