package appcontext

import (
	"context"
	"fmt"
	"log"

	"github.com/RoyceAzure/lab/ecommerce/internal/config"
	"github.com/RoyceAzure/lab/ecommerce/internal/infra/producer"
	"github.com/RoyceAzure/lab/ecommerce/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/ecommerce/internal/infra/repository/redis_decorator"
	"github.com/RoyceAzure/lab/ecommerce/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/ecommerce/internal/service"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type ApplicationContext struct {
	DbConn            *gorm.DB
	DbDao             *db.DbDao
	RedisClient       *redis.Client
	Cf                *config.Config
	CartEventProducer producer.ICartEventProducer
	CartService       service.ICartService
	ProductService    service.IProductService
	CustomerService   service.ICustomerService
	AddressService    service.IAddressService
	CategoryService   service.ICategoryService
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	err := app.Init()
	if err != nil {
		return nil, err
	}

	return &app, nil
}

func (app *ApplicationContext) Init() error {
	err := app.setUpdbConn()
	if err != nil {
		return err
	}
	err = app.setUpdbDao()
	if err != nil {
		return err
	}
	err = app.setUpRedisClient()
	if err != nil {
		return err
	}
	err = app.setUpCartEventProducer()
	if err != nil {
		return err
	}
	err = app.setUpServices()
	if err != nil {
		return err
	}
	return nil
}

func (app *ApplicationContext) setUpdbConn() error {
	log.Printf("Start setup database connection")
	conn, err := db.GetDbConn(app.Cf.DbName, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbUser, app.Cf.DbPas)
	if err != nil {
		return err
	}
	app.DbConn = conn
	log.Printf("Finish setup database connection")
	return nil
}

func (app *ApplicationContext) setUpdbDao() error {
	log.Printf("Start setup database DAO")
	app.DbDao = db.NewDbDao(app.DbConn)
	if err := app.DbDao.InitMigrate(); err != nil {
		return err
	}
	log.Printf("Finish setup database DAO")
	return nil
}

func (app *ApplicationContext) setUpRedisClient() error {
	log.Printf("Start setup redis client")
	app.RedisClient = redis.NewClient(&redis.Options{
		Addr:     app.Cf.RedisAddr,
		Password: app.Cf.RedisPassword,
	})
	if err := app.RedisClient.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	log.Printf("Finish setup redis client")
	return nil
}

func (app *ApplicationContext) setUpCartEventProducer() error {
	log.Printf("Start setup cart event producer")
	app.CartEventProducer = producer.NewCartEventProducer(app.Cf.KafkaBrokerList(), app.Cf.KafkaCartTopic)
	log.Printf("Finish setup cart event producer")
	return nil
}

func (app *ApplicationContext) setUpServices() error {
	log.Printf("Start setup services")

	cartRepo := db.NewCartRepo(app.DbDao)
	customerRepo := db.NewCustomerRepo(app.DbDao)
	addressRepo := db.NewAddressRepo(app.DbDao)
	categoryRepo := db.NewCategoryRepo(app.DbDao)

	// product讀取走cache aside，寫入同步更新redis
	productDBRepo := db.NewProductDBRepo(app.DbDao)
	productRedisRepo := redis_repo.NewProductRedisRepo(app.RedisClient)
	productRepo := redis_decorator.NewCacheAsideProductRepo(productDBRepo, productRedisRepo)

	app.CartService = service.NewCartService(cartRepo, productRepo, app.CartEventProducer)
	app.ProductService = service.NewProductService(productRepo, categoryRepo)
	app.CustomerService = service.NewCustomerService(customerRepo)
	app.AddressService = service.NewAddressService(addressRepo, customerRepo)
	app.CategoryService = service.NewCategoryService(categoryRepo)

	log.Printf("Finish setup services")
	return nil
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	log.Printf("Start application shutdown")

	done := make(chan error)
	go func() {
		defer close(done)

		if app.CartEventProducer != nil {
			log.Printf("Closing cart event producer...")
			if err := app.CartEventProducer.Close(); err != nil {
				//有錯誤不結束流程
				log.Printf("cart event producer shutdown error: %v", err)
			}
		}

		if app.RedisClient != nil {
			log.Printf("Closing redis client...")
			if err := app.RedisClient.Close(); err != nil {
				log.Printf("redis client shutdown error: %v", err)
			}
		}

		if app.DbConn != nil {
			log.Printf("Closing database connection...")
			if sqlDB, err := app.DbConn.DB(); err == nil {
				sqlDB.Close()
			}
		}

		log.Printf("Application shutdown complete")
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}
