package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RoyceAzure/lab/ecommerce/internal/api"
	"github.com/RoyceAzure/lab/ecommerce/internal/api/handler"
	"github.com/RoyceAzure/lab/ecommerce/internal/api/router"
	"github.com/RoyceAzure/lab/ecommerce/internal/appcontext"
	"github.com/RoyceAzure/lab/ecommerce/internal/config"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

func main() {
	app, err := appcontext.NewApplicationContext(config.GetConfig())
	if err != nil {
		log.Fatal(err)
		return
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("moduler", app.Cf.ModulerName).Logger()

	// 初始化 handler
	cartHandler := handler.NewCartHandler(app.CartService)
	productHandler := handler.NewProductHandler(app.ProductService)
	customerHandler := handler.NewCustomerHandler(app.CustomerService, app.AddressService)
	categoryHandler := handler.NewCategoryHandler(app.CategoryService)

	server := api.NewServer(cartHandler, productHandler, customerHandler, categoryHandler)

	// 設置路由
	r := router.SetupRouter(server, &logger)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", app.Cf.ServerPort),
		Handler: r,
	}

	// 設置訊號監聽
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	shutDonwCompleted := make(chan struct{}, 1)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}

		if err := app.Shutdown(shutdownCtx); err != nil {
			log.Printf("Application shutdown error: %v", err)
		}

		shutDonwCompleted <- struct{}{}
	}()

	g, gCtx := errgroup.WithContext(context.Background())

	// 啟動時先把商品塞進redis，失敗不影響服務啟動
	g.Go(func() error {
		warmCtx, cancel := context.WithTimeout(gCtx, 30*time.Second)
		defer cancel()
		products, err := app.ProductService.GetAllProducts(warmCtx)
		if err != nil {
			log.Printf("product cache warm up failed: %v", err)
			return nil
		}
		for i := range products {
			if _, err := app.ProductService.GetProduct(warmCtx, products[i].ProductID); err != nil {
				log.Printf("product cache warm up failed for product %d: %v", products[i].ProductID, err)
			}
		}
		return nil
	})

	g.Go(func() error {
		log.Printf("Server starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
	<-shutDonwCompleted
	log.Printf("closed completed")
}
