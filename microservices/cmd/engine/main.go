package main

import (
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"omok/internal/bootstrap"
	"omok/internal/domain/omok"
	engineRPC "omok/microservices/proto"
	"omok/microservices/usecase"
)

func main() {
	logger := NewLogger()
	defer logger.Sync()

	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		logger.Error("Failed to setup configuration", zap.Error(err))
		return
	}

	lis, err := net.Listen("tcp", ":"+cfg.EngineGrpcPort)
	if err != nil {
		logger.Fatal("Failed to listen", zap.Error(err))
	}

	eval := omok.NewEvaluator(cfg.ThreatBlockWeight)
	searcher := omok.NewSearcher(eval, omok.NewCandidateGenerator(eval, cfg.CandidateRadius, cfg.CandidateLimit))

	server := grpc.NewServer()
	engineRPC.RegisterEngineServer(server, usecase.NewEngineUseCase(searcher, cfg.DepthHard, logger))

	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		<-sigs
		logger.Info("Received shutdown signal")
		server.GracefulStop()
	}()

	logger.Infof("Engine is serving gRPC on port %s", cfg.EngineGrpcPort)
	if err := server.Serve(lis); err != nil {
		logger.Fatal("Failed to serve", zap.Error(err))
	}
}

func NewLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}
