package app

import (
	"context"
	"fmt"
	"time"

	"github.com/NabinS-D/TodoList/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type App struct {
	cfg     config.Config
	mongo   *mongo.Client
	redis   *redis.Client
	router  *gin.Engine
	stopHub context.CancelFunc
}

func New(cfg config.Config) (*App, error) {
	a := &App{cfg: cfg}

	client, db, err := newMongo(cfg.Mongo)
	if err != nil {
		return nil, err
	}
	a.mongo = client

	rdb, err := newRedis(cfg.Redis)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	a.redis = rdb

	hubCtx, stopHub := context.WithCancel(context.Background())
	a.stopHub = stopHub

	a.router = newRouter(cfg, db, rdb, hubCtx)
	return a, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func (a *App) Close(ctx context.Context) error {
	if a.stopHub != nil {
		a.stopHub()
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.mongo != nil {
		_ = a.mongo.Disconnect(ctx)
	}
	return nil
}

func newMongo(cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer pingCancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.DB), nil
}

func newRedis(cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return rdb, nil
}

func newRouter(cfg config.Config, db *mongo.Database, rdb *redis.Client, hubCtx context.Context) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "Cookie"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	Setup(r, cfg, db, rdb, hubCtx)
	return r
}
