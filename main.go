package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/amazeing-labs/amazeing-api/api"
	api_i "github.com/amazeing-labs/amazeing-api/api/i"
	"github.com/amazeing-labs/amazeing-api/api/identity"
	mazeapi "github.com/amazeing-labs/amazeing-api/api/maze"
	"github.com/amazeing-labs/amazeing-api/config"
	"github.com/amazeing-labs/amazeing-api/infrastruture/cache"
	"github.com/amazeing-labs/amazeing-api/infrastruture/repo"
	"github.com/amazeing-labs/amazeing-api/infrastruture/sortedstorage"
	"github.com/amazeing-labs/amazeing-api/infrastruture/token"
	"github.com/amazeing-labs/amazeing-api/logger"
	"github.com/amazeing-labs/amazeing-api/service"
	"github.com/amazeing-labs/amazeing-api/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	userRepo       i.UserRepo
	mazeRepo       i.MazeRepo
	mazeCache      i.MazeCache
	recentFeed     i.SortedQueue
	jwtTokenizer   i.Tokenizer
	authService    i.Authenticator
	mazeService    i.MazeCarver
	authController api_i.Controller
	mazeController api_i.Controller
	router         *api.Router
	appLogger      logger.Logger
)

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
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initRepos(client *mongo.Client) {
	userRepo = repo.NewUserRepo(client, config.Envs.DBName, "users")
	mazeRepo = repo.NewMazeRepo(client, config.Envs.DBName, "mazes")
	appLogger.Info("Repositories initialized")
}

func initRedisStores() {
	mazeCache = cache.NewRedisMazeCache(redisClient, config.Envs.MazeCacheTTL)

	var err error
	recentFeed, err = sortedstorage.NewRedisSortedQueue(redisClient, config.Envs.RecentFeedTTL)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating recent-maze feed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Redis stores initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuth(userRepo, jwtTokenizer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initMazeService() {
	mazeLogger, err := logger.New("MAZE", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service logger: %v", err))
		os.Exit(1)
	}

	mazeService, err = service.NewMazeService(service.MazeServiceConfig{
		Repo:         mazeRepo,
		Cache:        mazeCache,
		RecentFeed:   recentFeed,
		Logger:       mazeLogger,
		MaxDimension: config.Envs.MaxMazeDimension,
		RecentSize:   config.Envs.RecentFeedSize,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze service initialized")
}

func initControllers() {
	authController = identity.NewIdentityServer(authService)

	var err error
	mazeController, err = mazeapi.NewMazeController(mazeService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, mazeController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initRepos(mongoClient)
	initRedisStores()
	initJWTTokenizer()
	initAuthService()
	initMazeService()
	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
