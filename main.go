package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-solver/api"
	api_i "github.com/beka-birhanu/vinom-solver/api/i"
	"github.com/beka-birhanu/vinom-solver/api/identity"
	solveapi "github.com/beka-birhanu/vinom-solver/api/solve"
	"github.com/beka-birhanu/vinom-solver/config"
	"github.com/beka-birhanu/vinom-solver/infrastruture/cache"
	"github.com/beka-birhanu/vinom-solver/infrastruture/repo"
	"github.com/beka-birhanu/vinom-solver/infrastruture/token"
	"github.com/beka-birhanu/vinom-solver/logger"
	"github.com/beka-birhanu/vinom-solver/service"
	"github.com/beka-birhanu/vinom-solver/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient     *mongo.Client
	redisClient     *redis.Client
	userRepo        *repo.UserRepo
	solveRepo       *repo.SolveRepo
	animationCache  i.AnimationCache
	jwtTokenizer    i.Tokenizer
	authService     i.Authenticator
	solveService    i.Solver
	authController  api_i.Controller
	solveController api_i.Controller
	router          *api.Router
	appLogger       *logger.Logger
)

func newLogger(prefix, color string) *logger.Logger {
	l, err := logger.New(prefix, color, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating %s logger: %v\n", prefix, err)
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

func initRepos(ctx context.Context) {
	userRepo = repo.NewUserRepo(mongoClient, config.Envs.DBName, "users")
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Creating user indexes: %v", err))
		os.Exit(1)
	}

	solveRepo = repo.NewSolveRepo(mongoClient, config.Envs.DBName, "solves")
	if err := solveRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Creating solve indexes: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Repositories initialized")
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

func initAnimationCache() {
	var err error
	animationCache, err = cache.NewRedisAnimationCache(redisClient, config.Envs.AnimationTTLSeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating animation cache: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Animation cache initialized")
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

func initSolveService() {
	var err error
	solveService, err = service.NewSolveService(&service.Config{
		SolveRepo: solveRepo,
		UserRepo:  userRepo,
		Cache:     animationCache,
		Logger:    newLogger("SOLVE", config.ColorCyan),
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating solve service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Solve service initialized")
}

func initControllers() {
	authController = identity.NewIdentityServer(authService)

	var err error
	solveController, err = solveapi.NewSolveController(solveService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating solve controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, solveController},
		AuthorizationMiddleware: identity.Authoriz(t),
		AccessLog:               newLogger("HTTP", config.ColorBlue).Writer(),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	appLogger = newLogger("APP", config.ColorGreen)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	initRepos(ctx)
	initRedis(ctx)
	defer redisClient.Close()

	initAnimationCache()
	initJWTTokenizer()
	initAuthService()
	initSolveService()
	initControllers()
	initRouter(jwtTokenizer)

	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
