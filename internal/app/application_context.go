package app

import (
	"context"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/checkout/internal/infra/producer"
	"github.com/RoyceAzure/lab/checkout/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/checkout/internal/infra/repository/redis_decorator"
	"github.com/RoyceAzure/lab/checkout/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/checkout/internal/pkg/config"
	"github.com/RoyceAzure/lab/checkout/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// 集中依賴組裝
// db與redis連線失敗直接回錯，kafka broker沒設定時事件發佈降級成不發佈
type ApplicationContext struct {
	Cf            *config.Config
	DbConn        *gorm.DB
	UnifiedDB     db.UnifiedDB
	RedisConn     *redis.Client
	EventProducer producer.IOrderEventProducer

	CheckoutService service.ICheckoutService
	CartService     service.ICartService
	OrderService    service.IOrderService
	ProductService  *service.ProductService
	CustomerService *service.CustomerService
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := &ApplicationContext{
		Cf: cf,
	}
	if err := app.init(); err != nil {
		return nil, err
	}
	return app, nil
}

func (app *ApplicationContext) init() error {
	if err := app.setUpDbConn(); err != nil {
		return err
	}
	if err := app.setUpRedisConn(); err != nil {
		return err
	}
	app.setUpEventProducer()
	app.setUpServices()
	return nil
}

func (app *ApplicationContext) setUpDbConn() error {
	log.Info().Msg("start setup postgres connection")
	conn, err := db.GetDbConn(app.Cf.DbName, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbUser, app.Cf.DbPas)
	if err != nil {
		return fmt.Errorf("failed to connect postgres: %w", err)
	}
	app.DbConn = conn

	unifiedDB := db.NewUnifiedDB(conn)
	if err := unifiedDB.InitMigrate(); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	app.UnifiedDB = unifiedDB
	log.Info().Msg("finish setup postgres connection")
	return nil
}

func (app *ApplicationContext) setUpRedisConn() error {
	log.Info().Msg("start setup redis connection")
	rdb := redis.NewClient(&redis.Options{
		Addr:     app.Cf.RedisAddr,
		Password: app.Cf.RedisPas,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("failed to connect redis: %w", err)
	}
	app.RedisConn = rdb
	log.Info().Msg("finish setup redis connection")
	return nil
}

func (app *ApplicationContext) setUpEventProducer() {
	brokers := app.Cf.Brokers()
	if len(brokers) == 0 {
		log.Warn().Msg("no kafka brokers configured, order events will not be published")
		return
	}
	app.EventProducer = producer.NewOrderEventProducer(brokers, app.Cf.OrderEventTopic)
	log.Info().Strs("brokers", brokers).Str("topic", app.Cf.OrderEventTopic).Msg("order event producer ready")
}

func (app *ApplicationContext) setUpServices() {
	ttl := time.Duration(app.Cf.ProductCacheTTL) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	// 目錄讀取路徑走cache-aside，結帳凍結價格仍由交易內讀db
	productRedisRepo := redis_repo.NewProductRedisRepo(app.RedisConn, ttl)
	catalogRepo := redis_decorator.NewCacheAsideProductRepo(app.UnifiedDB, productRedisRepo)

	app.CheckoutService = service.NewCheckoutService(
		app.UnifiedDB,
		app.UnifiedDB,
		app.UnifiedDB,
		app.UnifiedDB,
		app.UnifiedDB,
		app.EventProducer,
	)
	app.CartService = service.NewCartService(app.UnifiedDB, app.UnifiedDB)
	app.OrderService = service.NewOrderService(app.UnifiedDB)
	app.ProductService = service.NewProductService(catalogRepo)
	app.CustomerService = service.NewCustomerService(app.UnifiedDB)
}

// Close 依序釋放producer、redis與db連線
func (app *ApplicationContext) Close() {
	if app.EventProducer != nil {
		if err := app.EventProducer.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close order event producer")
		}
	}
	if app.RedisConn != nil {
		if err := app.RedisConn.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close redis connection")
		}
	}
	if app.DbConn != nil {
		if sqlDB, err := app.DbConn.DB(); err == nil {
			sqlDB.Close()
		}
	}
}
