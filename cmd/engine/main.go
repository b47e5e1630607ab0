package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/pressurex/pkg"
	"github.com/lintang-b-s/pressurex/pkg/datastructure"
	"github.com/lintang-b-s/pressurex/pkg/engine"
	"github.com/lintang-b-s/pressurex/pkg/http"
	"github.com/lintang-b-s/pressurex/pkg/http/usecases"
	"github.com/lintang-b-s/pressurex/pkg/logger"
	"github.com/lintang-b-s/pressurex/pkg/parser"
	"github.com/lintang-b-s/pressurex/pkg/util"
	"go.uber.org/zap"
)

var (
	scanPath     = flag.String("scan", "./data/scan.txt", "valve scan file (.txt, or .bz2 compressed)")
	maxBudget    = flag.Int("max_budget", 60, "largest time budget the API accepts")
	useRateLimit = flag.Bool("rate_limit", false, "rate limit the API per client ip")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	if err := util.ReadConfig(); err != nil {
		logger.Sugar().Warnf("no config file found, using defaults: %v", err)
	}

	valves, err := parser.NewScanParser().ParseFile(*scanPath)
	if err != nil {
		panic(err)
	}
	graph, err := datastructure.NewValveGraph(valves, pkg.START_VALVE)
	if err != nil {
		panic(err)
	}
	planningEngine, err := engine.NewEngine(graph, logger)
	if err != nil {
		panic(err)
	}

	api := http.NewServer(logger)

	plannerService := usecases.NewPlannerService(logger, planningEngine, *maxBudget)
	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	api.Use(ctx,
		logger, *useRateLimit, plannerService)

	signal := http.GracefulShutdown()

	logger.Info("pressurex Planning Engine Server Stopped", zap.String("signal", signal.String()))
	cleanup()
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
