package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"github.com/Patrick-M8/tabelog-map/clock"
	"github.com/Patrick-M8/tabelog-map/config"
	redisdao "github.com/Patrick-M8/tabelog-map/dao/redis"
	"github.com/Patrick-M8/tabelog-map/db"
	"github.com/Patrick-M8/tabelog-map/server"
	"github.com/Patrick-M8/tabelog-map/server/handlers"
	services "github.com/Patrick-M8/tabelog-map/service"
)

// Container holds all application dependencies.
type Container struct {
	Config                  *config.Config
	Clock                   clock.Clock
	RedisClient             db.RedisClient
	RedisVenueDao           *redisdao.RedisVenueDAO
	VenueService            *services.VenueService
	VenueHandler            *handlers.VenueHandler
	MuxRouter               *mux.Router
	Router                  *server.Router
	TabelogMapHttpServer    *server.TabelogMapHttpServer
	DatasetRefresherService *services.DatasetRefresherService
	GeoJSONBuildService     *services.GeoJSONBuildService
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	zoneClock, err := clock.NewZoneClock(cfg.Timezone)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize clock for %q: %v", cfg.Timezone, err))
	}

	var redisClient db.RedisClient
	if env != "prod" {
		redisClient = db.NewMockRedisClient(ctx)
		log.Printf("Using in-memory redis client")
	} else {
		internalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		redisClient = db.NewGeoRedisClient(ctx, internalClient)
		if err := redisClient.Ping(); err != nil {
			panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
	}

	redisVenueDao := redisdao.NewRedisVenueDAO(redisClient)

	venueService := services.NewVenueService(redisVenueDao, zoneClock)
	venueHandler := handlers.NewVenueHandler(venueService)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(venueHandler, muxRouter)
	httpServer := server.NewTabelogMapHttpServer(router, muxRouter, cfg.HTTPAddr)

	refresherService := services.NewDatasetRefresherService(redisVenueDao, cfg.DatasetDir)
	geoJSONBuildService := services.NewGeoJSONBuildService(
		zoneClock, cfg.GeoJSONOutDir, cfg.GeoJSONVersion, cfg.CentroidMax, cfg.CoordDecimals)

	return &Container{
		Config:                  cfg,
		Clock:                   zoneClock,
		RedisClient:             redisClient,
		RedisVenueDao:           redisVenueDao,
		VenueService:            venueService,
		VenueHandler:            venueHandler,
		MuxRouter:               muxRouter,
		Router:                  router,
		TabelogMapHttpServer:    httpServer,
		DatasetRefresherService: refresherService,
		GeoJSONBuildService:     geoJSONBuildService,
	}
}
