package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"omok/internal/adapters"
	"omok/internal/bootstrap"
	engineDelivery "omok/internal/delivery/engine"
	gameDelivery "omok/internal/delivery/game"
	"omok/internal/domain/omok"
	ownMiddleware "omok/internal/middleware"
	repo "omok/internal/repository"
	engineUC "omok/internal/usecase/engine"
	gameUC "omok/internal/usecase/game"
)

type mainDeliveryHandler struct {
	game   *gameDelivery.GameHandler
	engine *engineDelivery.EngineHandler
}

type dataBaseAdapters struct {
	redisAdapter *adapters.AdapterRedis
	kafkaAdapter *adapters.AdapterKafka
}

func main() {
	logger := NewLogger()
	defer logger.Sync()

	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		logger.Error("Failed to setup configuration", zap.Error(err))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go handleShutdown(cancel, logger)

	databaseAdapters := initDatabaseAdapters(ctx, logger, cfg)
	defer databaseAdapters.redisAdapter.Close(ctx)
	defer databaseAdapters.kafkaAdapter.Close()

	var remote gameUC.MoveGenerator
	if cfg.EngineGrpcAddr != "" {
		conn, err := grpc.NewClient(cfg.EngineGrpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			logger.Fatal("Failed to create engine grpc client", zap.Error(err))
		}
		defer conn.Close()
		remote = engineUC.NewRemoteEngine(conn)
		logger.Infof("Using remote engine at %s", cfg.EngineGrpcAddr)
	}

	r := chi.NewRouter()
	handlers := initializeDeliveryHandlers(*cfg, logger, remote, databaseAdapters)
	handlers.Router(r, cfg.IsLocalCors)

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Infof("Server is running on port %s", cfg.ServerPort)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

func NewLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

func (h *mainDeliveryHandler) Router(r *chi.Mux, isLocalCors bool) {
	if isLocalCors {
		r.Use(ownMiddleware.CORS)
	}
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	h.game.Routes(r)
	r.Post("/engine/move", h.engine.HandleGenerateMove)
}

func initDatabaseAdapters(ctx context.Context, log *zap.SugaredLogger, cfg *bootstrap.Config) *dataBaseAdapters {
	redisAdapter := adapters.NewAdapterRedis(cfg, log)
	if err := redisAdapter.Init(ctx); err != nil {
		log.Fatal("Failed to initialize Redis", zap.Error(err))
	}

	kafkaAdapter := adapters.NewAdapterKafka(cfg, log)
	if kafkaAdapter.Enabled() {
		log.Infof("Publishing events to kafka topic %s", cfg.KafkaTopic)
	}

	log.Info("Adapters initialized")
	return &dataBaseAdapters{
		redisAdapter: redisAdapter,
		kafkaAdapter: kafkaAdapter,
	}
}

func initializeDeliveryHandlers(
	cfg bootstrap.Config,
	log *zap.SugaredLogger,
	remote gameUC.MoveGenerator,
	databaseAdapters *dataBaseAdapters,
) *mainDeliveryHandler {
	eval := omok.NewEvaluator(cfg.ThreatBlockWeight)
	searcher := omok.NewSearcher(eval, omok.NewCandidateGenerator(eval, cfg.CandidateRadius, cfg.CandidateLimit))

	uc := gameUC.NewGameUseCase(
		repo.NewGameRepository(log, databaseAdapters.redisAdapter.GetClient(), cfg.GameTTL),
		searcher,
		remote,
		gameUC.NewDifficultyTable(cfg),
		cfg.BoardSize,
		databaseAdapters.kafkaAdapter,
		log,
	)

	return &mainDeliveryHandler{
		game:   gameDelivery.NewGameHandler(log, uc),
		engine: engineDelivery.NewEngineHandler(log, uc),
	}
}

func handleShutdown(cancelFunc context.CancelFunc, log *zap.SugaredLogger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("Received shutdown signal")
	cancelFunc()
}
