package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beka-birhanu/vinom-mazestats/api"
	analysisapi "github.com/beka-birhanu/vinom-mazestats/api/analysis"
	api_i "github.com/beka-birhanu/vinom-mazestats/api/i"
	"github.com/beka-birhanu/vinom-mazestats/api/identity"
	"github.com/beka-birhanu/vinom-mazestats/config"
	"github.com/beka-birhanu/vinom-mazestats/domain"
	logger "github.com/beka-birhanu/vinom-mazestats/infrastruture/log"
	pb "github.com/beka-birhanu/vinom-mazestats/infrastruture/pb_encoder"
	"github.com/beka-birhanu/vinom-mazestats/infrastruture/repo"
	"github.com/beka-birhanu/vinom-mazestats/infrastruture/sortedstorage"
	"github.com/beka-birhanu/vinom-mazestats/infrastruture/token"
	"github.com/beka-birhanu/vinom-mazestats/report"
	"github.com/beka-birhanu/vinom-mazestats/service"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

const usage = `usage: mazestats [command] [flags]

commands:
  analyze            generate mazes and print their percentiles (default)
  serve              run the analysis API and its queue worker
  token [-ttl d] <subject>
                     print an API access token for subject
`

// Global variables for dependencies
var (
	appLogger          *logger.Logger
	analyzer           *service.Analyzer
	redisClient        *redis.Client
	mongoClient        *mongo.Client
	analysisQueue      *service.AnalysisQueue
	analysisController api_i.Controller
	jwtTokenizer       *token.JwtService
	router             *api.Router
)

func exitOn(err error, what string) {
	if err != nil {
		appLogger.Error(fmt.Sprintf("%s: %v", what, err))
		os.Exit(1)
	}
}

func defaultAnalysisConfig() domain.AnalysisConfig {
	return domain.AnalysisConfig{
		Width:   config.Envs.MazeWidth,
		Height:  config.Envs.MazeHeight,
		Samples: config.Envs.Samples,
		Workers: config.Envs.Workers,
		Seed:    config.Envs.Seed,
	}
}

func initAnalyzer() {
	analyzerLogger, err := logger.New("ANALYZER", config.ColorCyan, os.Stderr)
	exitOn(err, "Creating analyzer logger")

	analyzer, err = service.NewAnalyzer(analyzerLogger, nil)
	exitOn(err, "Creating analyzer")
	appLogger.Info("Analyzer initialized")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
		DB:       config.Envs.RedisDB,
	})
	exitOn(redisClient.Ping(ctx).Err(), "Redis ping failed")
	appLogger.Info("Connected to Redis")
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%v", config.Envs.DBHost, config.Envs.DBPort)
	if config.Envs.DBUser != "" {
		uri = fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)
	}

	var err error
	mongoClient, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
	exitOn(err, "Failed to connect to MongoDB")
	exitOn(mongoClient.Ping(ctx, nil), "MongoDB ping failed")
	appLogger.Info("Connected to MongoDB")
}

func initAnalysisQueue() {
	queueLogger, err := logger.New("ANALYSIS-QUEUE", config.ColorPurple, os.Stdout)
	exitOn(err, "Creating analysis queue logger")

	sortedQueue, err := sortedstorage.NewRedisSortedQueue(redisClient, config.Envs.QueueTTL)
	exitOn(err, "Creating sorted queue")

	analysisQueue, err = service.NewAnalysisQueue(&service.QueueConfig{
		SortedQueue: sortedQueue,
		Encoder:     &pb.Protobuf{},
		Repo:        repo.NewReportRepo(mongoClient, config.Envs.DBName, "reports"),
		Analyzer:    analyzer,
		Logger:      queueLogger,
		Options: &service.QueueOptions{
			Prefix:       config.Envs.QueuePrefix,
			PollInterval: time.Duration(config.Envs.QueuePollMS) * time.Millisecond,
		},
	})
	exitOn(err, "Creating analysis queue")
	appLogger.Info("Analysis queue initialized")
}

func initAnalysisController() {
	var err error
	analysisController, err = analysisapi.NewController(analysisapi.Config{
		Queue:          analysisQueue,
		Analyzer:       analyzer,
		Inspector:      analyzer,
		Defaults:       defaultAnalysisConfig(),
		MaxSyncSamples: config.Envs.MaxSyncSamples,
	})
	exitOn(err, "Creating analysis controller")
	appLogger.Info("Analysis controller initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Mode:                    config.Envs.GinMode,
		Controllers:             []api_i.Controller{analysisController},
		AuthorizationMiddleware: identity.Authoriz(jwtTokenizer),
	})
	appLogger.Info("Router initialized")
}

// runAnalyze generates the configured sample and prints the percentile table.
func runAnalyze(ctx context.Context, args []string) {
	cfg := defaultAnalysisConfig()
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "maze width in cells")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "maze height in cells")
	fs.IntVar(&cfg.Samples, "samples", cfg.Samples, "number of mazes to generate")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of parallel sample workers")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 seeds from the clock")
	_ = fs.Parse(args)

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	initAnalyzer()
	result, err := analyzer.Run(ctx, cfg)
	exitOn(err, "Running analysis")
	exitOn(report.WriteText(os.Stdout, result), "Writing report")
}

// runServe serves the API and drains the job queue until interrupted.
func runServe(ctx context.Context) {
	exitOn(config.Envs.ValidateServer(), "Invalid server configuration")

	connectCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	initAnalyzer()
	initRedis(connectCtx)
	defer redisClient.Close()

	initMongo(connectCtx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	initAnalysisQueue()
	initAnalysisController()
	initJWTTokenizer()
	initRouter()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return analysisQueue.Work(gctx)
	})
	g.Go(func() error {
		return router.Run(gctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Error(fmt.Sprintf("Server stopped: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Server stopped")
}

// runToken prints an access token for the subject named in args.
func runToken(args []string) {
	fs := flag.NewFlagSet("token", flag.ExitOnError)
	ttl := fs.Duration("ttl", 24*time.Hour, "token lifetime")
	_ = fs.Parse(args)

	if fs.NArg() != 1 || config.Envs.JWTSecret == "" {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	initJWTTokenizer()
	accessToken, err := jwtTokenizer.GenerateAccess(fs.Arg(0), *ttl)
	exitOn(err, "Generating token")
	fmt.Println(accessToken)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Logs go to stderr so the analyze table and tokens stay pipeable.
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stderr)

	command, args := "analyze", os.Args[1:]
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		command, args = args[0], args[1:]
	}

	switch command {
	case "analyze":
		runAnalyze(ctx, args)
	case "serve":
		runServe(ctx)
	case "token":
		runToken(args)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}
