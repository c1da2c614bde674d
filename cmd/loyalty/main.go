package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"go.uber.org/zap"

	"github.com/salonhq/loyalty/internal/app"
)

//	@title			Loyalty API
//	@version		1.0
//	@description	Loyalty points ledger and cancellation-penalty service

// @host		localhost:8080
// @BasePath	/
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	application := app.New()
	if err := application.Start(ctx); err != nil {
		// zap may not be installed yet if startup failed early.
		log.Error().Err(err).Msg("application start failed")
		zap.L().Fatal("application start failed: ", zap.Error(err))
	}

	if err := application.Wait(ctx, cancel); err != nil {
		zap.L().Fatal("shutdown finished with errors. LastError:", zap.Error(err))
	}

	zap.L().Info("shutdown finished without errors")
}
