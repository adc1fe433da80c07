package api

import "github.com/RoyceAzure/lab/ecommerce/internal/api/handler"

type Server struct {
	CartHandler     *handler.CartHandler
	ProductHandler  *handler.ProductHandler
	CustomerHandler *handler.CustomerHandler
	CategoryHandler *handler.CategoryHandler
}

func NewServer(
	cartHandler *handler.CartHandler,
	productHandler *handler.ProductHandler,
	customerHandler *handler.CustomerHandler,
	categoryHandler *handler.CategoryHandler,
) *Server {
	return &Server{
		CartHandler:     cartHandler,
		ProductHandler:  productHandler,
		CustomerHandler: customerHandler,
		CategoryHandler: categoryHandler,
	}
}
