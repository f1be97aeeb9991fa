package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/tdiabate/farmpay/internal/auth"
	"github.com/tdiabate/farmpay/internal/config"
	"github.com/tdiabate/farmpay/internal/db"
	"github.com/tdiabate/farmpay/internal/excel"
	httphandler "github.com/tdiabate/farmpay/internal/http"
	"github.com/tdiabate/farmpay/internal/http/middleware"
	"github.com/tdiabate/farmpay/internal/logger"
	"github.com/tdiabate/farmpay/internal/pdf"
	"github.com/tdiabate/farmpay/internal/repository"
	"github.com/tdiabate/farmpay/internal/service"
	"github.com/tdiabate/farmpay/internal/settlement"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	policy, err := settlement.ParseNegativeNetPolicy(cfg.Settlement.NegativeNetPolicy)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid negative net policy")
	}
	defaultTaxRate, err := decimal.NewFromString(cfg.Settlement.DefaultTaxRate)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid default tax rate")
	}

	farmerRepo := repository.NewFarmerRepository(database)
	registryRepo := repository.NewRegistryRepository(database)
	weighingRepo := repository.NewWeighingRepository(database)
	creditRepo := repository.NewCreditRepository(database)
	bulletinRepo := repository.NewBulletinRepository(database)
	reportRepo := repository.NewReportRepository(database)

	pdfGenerator := pdf.NewGenerator(cfg.Settlement.CooperativeName)
	excelGenerator := excel.NewGenerator()

	registryService := service.NewRegistryService(farmerRepo, registryRepo)
	weighingService := service.NewWeighingService(weighingRepo, farmerRepo, policy)
	creditService := service.NewCreditService(creditRepo, farmerRepo)
	bulletinService := service.NewBulletinService(bulletinRepo, weighingRepo, creditRepo, farmerRepo, pdfGenerator)
	reportService := service.NewReportService(reportRepo, farmerRepo, registryRepo, excelGenerator)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(
		registryService,
		weighingService,
		creditService,
		bulletinService,
		reportService,
		defaultTaxRate,
		log,
	)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting farmpay service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
