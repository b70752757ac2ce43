package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/api"
	api_i "github.com/beka-birhanu/vinom-pathfinder/api/i"
	"github.com/beka-birhanu/vinom-pathfinder/api/identity"
	pathfindingapi "github.com/beka-birhanu/vinom-pathfinder/api/pathfinding"
	"github.com/beka-birhanu/vinom-pathfinder/config"
	logger "github.com/beka-birhanu/vinom-pathfinder/infrastruture/log"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/metrics"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/repo"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/sortedstorage"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/token"
	"github.com/beka-birhanu/vinom-pathfinder/pathfinding"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient        *mongo.Client
	redisClient        *redis.Client
	registry           *prometheus.Registry
	recorder           i.SearchRecorder
	userRepo           i.UserRepo
	gridRepo           i.GridRepo
	playbackQueue      i.SortedQueue
	jwtTokenizer       i.Tokenizer
	authService        i.Authenticator
	pathfinder         i.Pathfinder
	playbackService    i.Playback
	authController     api_i.Controller
	searchController   api_i.Controller
	playbackController api_i.Controller
	router             *api.Router
	appLogger          i.Logger
)

func newLogger(prefix, color string) *logger.Logger {
	l, err := logger.New(prefix, color, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating %s logger: %v", prefix, err))
		os.Exit(1)
	}
	return l
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
		DB:       config.Envs.RedisDB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initRepos(ctx context.Context, client *mongo.Client) {
	users := repo.NewUserRepo(client, config.Envs.DBName, "users")
	if err := users.EnsureIndexes(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Creating user indexes: %v", err))
		os.Exit(1)
	}
	userRepo = users
	gridRepo = repo.NewGridRepo(client, config.Envs.DBName, "grids")
	appLogger.Info("Repositories initialized")
}

func initMetrics() {
	registry = prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder = metrics.NewRecorder(registry)
	appLogger.Info("Metrics initialized")
}

func initPlaybackQueue() {
	var err error
	playbackQueue, err = sortedstorage.NewRedisSortedQueue(redisClient, config.Envs.PlaybackTTL)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating playback queue: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Playback queue initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func engineOptions() []pathfinding.Option {
	var opts []pathfinding.Option
	if config.Envs.StrictEndpoints {
		opts = append(opts, pathfinding.WithStrictEndpoints())
	}
	if config.Envs.LegacyWrapPair {
		opts = append(opts, pathfinding.WithLegacyWrapPairing())
	}
	if config.Envs.EmitChecked {
		opts = append(opts, pathfinding.WithCheckedEvents())
	}
	return opts
}

func initPathfinder() {
	var err error
	pathfinder, err = service.NewPathfinding(&service.PathfinderConfig{
		GridRepo:      gridRepo,
		Recorder:      recorder,
		Logger:        newLogger("PATHFINDER", config.ColorCyan),
		MaxDimension:  config.Envs.MaxGridDimension,
		EngineOptions: engineOptions(),
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating pathfinding service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Pathfinding service initialized")
}

func initPlayback() {
	var err error
	playbackService, err = service.NewPlayback(playbackQueue, recorder, newLogger("PLAYBACK", config.ColorPurple), &service.PlaybackOptions{
		BatchSize: config.Envs.PlaybackBatch,
		Tick:      config.Envs.PlaybackTick,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating playback service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Playback service initialized")
}

func initControllers() {
	var err error
	authController = identity.NewIdentityServer(authService)

	searchController, err = pathfindingapi.NewSearchController(pathfinder)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating search controller: %v", err))
		os.Exit(1)
	}

	playbackController, err = pathfindingapi.NewPlaybackController(pathfinder, playbackService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating playback controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, searchController, playbackController},
		AuthorizationMiddleware: identity.Authoriz(t),
		MetricsHandler:          promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
	})
	appLogger.Info("Router initialized")
}

func main() {
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)
	config.Load()
	gin.SetMode(config.Envs.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	initRedis(ctx)
	defer redisClient.Close()

	initRepos(ctx, mongoClient)
	initMetrics()
	initPlaybackQueue()
	initJWTTokenizer()
	initAuthService()
	initPathfinder()
	initPlayback()
	initControllers()
	initRouter(jwtTokenizer)

	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
