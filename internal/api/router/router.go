package router

import (
	"github.com/RoyceAzure/lab/ecommerce/internal/api"
	m "github.com/RoyceAzure/lab/ecommerce/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func SetupRouter(server *api.Server, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))

	// API 路由
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/carts", func(r chi.Router) {
			r.Get("/{customerID}", server.CartHandler.GetCart)
			r.Delete("/{customerID}", server.CartHandler.ClearCart)
			r.Post("/{customerID}/items", server.CartHandler.AddItem)
			r.Put("/{customerID}/items/{itemID}", server.CartHandler.UpdateItemQuantity)
			r.Delete("/{customerID}/items/{itemID}", server.CartHandler.RemoveItem)
		})

		r.Route("/products", func(r chi.Router) {
			r.Post("/", server.ProductHandler.CreateProduct)
			r.Get("/", server.ProductHandler.GetAllProducts)
			r.Get("/{productID}", server.ProductHandler.GetProduct)
			r.Put("/{productID}", server.ProductHandler.UpdateProduct)
			r.Patch("/{productID}/availability", server.ProductHandler.SetAvailability)
			r.Delete("/{productID}", server.ProductHandler.DeleteProduct)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Post("/", server.CategoryHandler.CreateCategory)
			r.Get("/", server.CategoryHandler.GetAllCategories)
			r.Get("/{categoryID}", server.CategoryHandler.GetCategory)
			r.Put("/{categoryID}", server.CategoryHandler.UpdateCategory)
			r.Delete("/{categoryID}", server.CategoryHandler.DeleteCategory)
			r.Get("/{categoryID}/products", server.ProductHandler.GetProductsByCategory)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Post("/", server.CustomerHandler.RegisterCustomer)
			r.Get("/{customerID}", server.CustomerHandler.GetCustomer)
			r.Put("/{customerID}", server.CustomerHandler.UpdateCustomer)
			r.Delete("/{customerID}", server.CustomerHandler.DeleteCustomer)
			r.Post("/{customerID}/addresses", server.CustomerHandler.CreateAddress)
			r.Get("/{customerID}/addresses", server.CustomerHandler.GetAddresses)
		})

		r.Route("/addresses", func(r chi.Router) {
			r.Put("/{addressID}", server.CustomerHandler.UpdateAddress)
			r.Delete("/{addressID}", server.CustomerHandler.DeleteAddress)
		})
	})

	return r
}
