package handler

import (
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/ecommerce/internal/api/dto"
	"github.com/RoyceAzure/lab/ecommerce/internal/domain/model"
	"github.com/RoyceAzure/lab/ecommerce/internal/service"
	"github.com/go-chi/chi/v5"
)

func parseUintParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}

func convertCartToDTO(cart *model.Cart) dto.CartResponseDTO {
	items := make([]dto.CartItemResponseDTO, 0, len(cart.Items))
	for _, item := range cart.Items {
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		items = append(items, dto.CartItemResponseDTO{
			Id:          item.CartItemID,
			ProductId:   item.ProductID,
			ProductName: name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Discount:    item.Discount,
			TotalPrice:  item.TotalPrice,
		})
	}

	aggregates := service.CalculateCartAggregates(cart.Items)
	return dto.CartResponseDTO{
		Id:             cart.CartID,
		CustomerId:     cart.CustomerID,
		IsCheckedOut:   cart.IsCheckedOut,
		CreatedAt:      cart.CreatedAt,
		UpdatedAt:      cart.UpdatedAt,
		CartItems:      items,
		TotalBasePrice: aggregates.TotalBasePrice,
		TotalDiscount:  aggregates.TotalDiscount,
		TotalAmount:    aggregates.TotalAmount,
	}
}

func convertProductToDTO(product *model.Product) dto.ProductResponseDTO {
	return dto.ProductResponseDTO{
		Id:                 product.ProductID,
		Name:               product.Name,
		Description:        product.Description,
		Price:              product.Price,
		StockQuantity:      product.StockQuantity,
		DiscountPercentage: product.DiscountPercentage,
		ImageUrl:           product.ImageUrl,
		IsAvailable:        product.IsAvailable,
		CategoryId:         product.CategoryID,
	}
}

func convertCustomerToDTO(customer *model.Customer) dto.CustomerResponseDTO {
	return dto.CustomerResponseDTO{
		Id:          customer.CustomerID,
		FirstName:   customer.FirstName,
		LastName:    customer.LastName,
		Email:       customer.Email,
		PhoneNumber: customer.PhoneNumber,
		DateOfBirth: customer.DateOfBirth,
		IsActive:    customer.IsActive,
	}
}

func convertAddressToDTO(address *model.Address) dto.AddressResponseDTO {
	return dto.AddressResponseDTO{
		Id:           address.AddressID,
		CustomerId:   address.CustomerID,
		AddressLine1: address.AddressLine1,
		AddressLine2: address.AddressLine2,
		City:         address.City,
		State:        address.State,
		PostalCode:   address.PostalCode,
		Country:      address.Country,
	}
}

func convertCategoryToDTO(category *model.Category) dto.CategoryResponseDTO {
	return dto.CategoryResponseDTO{
		Id:          category.CategoryID,
		Name:        category.Name,
		Description: category.Description,
	}
}
