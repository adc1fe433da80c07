package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/ecommerce/internal/api/dto"
	"github.com/RoyceAzure/lab/ecommerce/internal/domain/model"
	"github.com/RoyceAzure/lab/ecommerce/internal/service"
)

type CustomerHandler struct {
	customerService service.ICustomerService
	addressService  service.IAddressService
}

func NewCustomerHandler(customerService service.ICustomerService, addressService service.IAddressService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService, addressService: addressService}
}

// RegisterCustomer POST /api/v1/customers
func (h *CustomerHandler) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	var req dto.CustomerRegistrationDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.FirstName == "" || req.LastName == "" {
		errorResponse(w, http.StatusBadRequest, "first name, last name and email are required")
		return
	}

	customer := &model.Customer{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		DateOfBirth: req.DateOfBirth,
	}
	created, err := h.customerService.RegisterCustomer(r.Context(), customer)
	if err != nil {
		serviceErrorResponse(w, err)
		return
	}
	successResponse(w, http.StatusCreated, convertCustomerToDTO(created))
}

// GetCustomer GET /api/v1/customers/{customerID}
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := parseUintParam(r, "customerID")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	customer, err := h.customerService.GetCustomer(r.Context(), customerID)
	if err != nil {
		serviceErrorResponse(w, err)
		return
	}
	successResponse(w, http.StatusOK, convertCustomerToDTO(customer))
}

// UpdateCustomer PUT /api/v1/customers/{customerID}
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := parseUintParam(r, "customerID")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	var req dto.CustomerUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	customer := &model.Customer{
		CustomerID:  customerID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		DateOfBirth: req.DateOfBirth,
	}
	updated, err := h.customerService.UpdateCustomer(r.Context(), customer)
	if err != nil {
		serviceErrorResponse(w, err)
		return
	}
	successResponse(w, http.StatusOK, convertCustomerToDTO(updated))
}

// DeleteCustomer DELETE /api/v1/customers/{customerID}
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := parseUintParam(r, "customerID")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	if err := h.customerService.DeleteCustomer(r.Context(), customerID); err != nil {
		serviceErrorResponse(w, err)
		return
	}
	successResponse(w, http.StatusOK, nil)
}

// CreateAddress POST /api/v1/customers/{customerID}/addresses
func (h *CustomerHandler) CreateAddress(w http.ResponseWriter, r *http.Request) {
	customerID, err := parseUintParam(r, "customerID")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	var req dto.AddressCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	address := &model.Address{
		CustomerID:   customerID,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		Country:      req.Country,
	}
	created, err := h.addressService.CreateAddress(r.Context(), address)
	if err != nil {
		serviceErrorResponse(w, err)
		return
	}
	successResponse(w, http.StatusCreated, convertAddressToDTO(created))
}

// GetAddresses GET /api/v1/customers/{customerID}/addresses
func (h *CustomerHandler) GetAddresses(w http.ResponseWriter, r *http.Request) {
	customerID, err := parseUintParam(r, "customerID")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	addresses, err := h.addressService.GetAddressesByCustomer(r.Context(), customerID)
	if err != nil {
		serviceErrorResponse(w, err)
		return
	}

	res := make([]dto.AddressResponseDTO, 0, len(addresses))
	for i := range addresses {
		res = append(res, convertAddressToDTO(&addresses[i]))
	}
	successResponse(w, http.StatusOK, res)
}

// UpdateAddress PUT /api/v1/addresses/{addressID}
func (h *CustomerHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	addressID, err := parseUintParam(r, "addressID")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid address id")
		return
	}

	var req dto.AddressUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	address := &model.Address{
		AddressID:    addressID,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		Country:      req.Country,
	}
	updated, err := h.addressService.UpdateAddress(r.Context(), address)
	if err != nil {
		serviceErrorResponse(w, err)
		return
	}
	successResponse(w, http.StatusOK, convertAddressToDTO(updated))
}

// DeleteAddress DELETE /api/v1/addresses/{addressID}
func (h *CustomerHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	addressID, err := parseUintParam(r, "addressID")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid address id")
		return
	}

	if err := h.addressService.DeleteAddress(r.Context(), addressID); err != nil {
		serviceErrorResponse(w, err)
		return
	}
	successResponse(w, http.StatusOK, nil)
}
