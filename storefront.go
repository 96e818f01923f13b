//go:build !cli

package main

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"

	"github.com/common-nighthawk/go-figure"
	"go.uber.org/zap"

	"storefront.GO/config"
	"storefront.GO/server"
)

func main() {
	envLoaded := config.LoadEnv()
	config.LoadAppConfig()

	logger, err := config.NewLogger(config.AppConfig.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	logger.Info("environment loaded", zap.Bool("dotenv", envLoaded), zap.String("env", config.AppConfig.Env))

	e, err := server.New(config.AppConfig, logger)
	if err != nil {
		logger.Fatal("failed to build server", zap.Error(err))
	}

	// ASCII banner on start (random font each run)
	fonts := []string{"banner", "big", "slant", "standard", "small", "doom", "larry3d", "puffy"}
	figure.NewFigure(config.AppConfig.AppName, fonts[rand.Intn(len(fonts))], true).Print()

	addr := ":" + config.AppConfig.Port
	logger.Info("server running",
		zap.String("addr", addr),
		zap.String("product_data_url", config.AppConfig.ProductDataURL))
	if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
